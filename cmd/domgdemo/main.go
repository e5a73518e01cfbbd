// domgdemo serves a page built with domg.
//
// The page is rendered on the server through the x/net/html host.
// If -assets is set, the directory is served under /assets/ and the page
// loads the wasm frontend from it, which builds the same page in the
// browser through the DOM host.
package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shurcooL/domg/httputil"
	"github.com/shurcooL/httpgzip"
)

var (
	httpFlag        = flag.String("http", ":8080", "Listen for HTTP connections on this address.")
	metricsHTTPFlag = flag.String("metrics-http", "", "Serve Prometheus metrics on this address (default: /metrics on -http).")
	assetsFlag      = flag.String("assets", "", "Directory with the compiled frontend (frontend.wasm, wasm_exec.js). Optional.")
	detailedFlag    = flag.Bool("detailed-errors", false, "Include error details in 5xx responses.")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.rendersTotal)

	s := &server{assets: *assetsFlag != ""}
	// Render once up front, so a broken page fails at startup.
	var buf bytes.Buffer
	err := s.renderPage(&buf)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Demo page renders to %s.\n", humanize.Bytes(uint64(buf.Len())))

	var metricsRegistry *prometheus.Registry
	if *metricsHTTPFlag == "" {
		metricsRegistry = registry
	} else {
		initMetrics(cancel, *metricsHTTPFlag, registry)
	}
	r := newRouter(s, *detailedFlag, *assetsFlag, metricsRegistry)

	httpServer := &http.Server{Addr: *httpFlag, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		if err != nil {
			log.Println("httpServer.Shutdown:", err)
		}
	}()

	log.Println("Started.")

	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}

// newRouter returns the demo routes. assetsDir is served under /assets/
// if not empty, and metrics under /metrics if metricsRegistry is not nil.
func newRouter(s *server, detailed bool, assetsDir string, metricsRegistry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	// ServePage checks the method itself.
	r.Handle("/", httputil.ErrorHandler(detailed, s.ServePage))
	r.Handle("/robots.txt", http.NotFoundHandler())
	if assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets", httpgzip.FileServer(http.Dir(assetsDir), httpgzip.FileServerOptions{ServeError: httpgzip.Detailed})))
	}
	if metricsRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	}
	return r
}
