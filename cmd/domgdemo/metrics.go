package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusMetrics struct {
	rendersTotal prometheus.Counter
}

var metrics = &prometheusMetrics{
	rendersTotal: prometheus.NewCounter(prometheus.CounterOpts{
		Name: "domgdemo_renders_total",
		Help: "Total number of server-side page renders.",
	}),
}

func (m *prometheusMetrics) IncRendersTotal() {
	m.rendersTotal.Inc()
}

// initMetrics serves metrics from r on httpAddr.
// cancel is called if the metrics server stops.
func initMetrics(cancel context.CancelFunc, httpAddr string, r *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r, promhttp.HandlerOpts{}))
	go func() {
		err := http.ListenAndServe(httpAddr, mux)
		log.Println("initMetrics: http.ListenAndServe:", err)
		cancel()
	}()
}
