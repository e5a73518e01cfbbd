// Package httputil contains helpers for HTTP handlers that return errors.
package httputil

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/shurcooL/httperror"
)

// ErrorHandler factors error handling out of the HTTP handler.
// If detailed is true, error messages are included in 5xx responses.
func ErrorHandler(detailed bool, handler func(w http.ResponseWriter, req *http.Request) error) http.Handler {
	return &errorHandler{handler: handler, detailed: detailed}
}

type errorHandler struct {
	handler  func(w http.ResponseWriter, req *http.Request) error
	detailed bool
}

func (h *errorHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rw := &responseWriter{ResponseWriter: w}
	err := h.handler(rw, req)
	if err == nil {
		// Do nothing.
		return
	}
	if rw.WroteHeader {
		// The header has already been written, so it's too late to send
		// a different status code. Just log the error and move on.
		log.Println(err)
		return
	}
	if err, ok := httperror.IsMethod(err); ok {
		httperror.HandleMethod(w, err)
		return
	}
	if err, ok := httperror.IsHTTP(err); ok {
		code := err.Code
		error := fmt.Sprintf("%d %s", code, http.StatusText(code))
		if h.detailed {
			error += "\n\n" + err.Error()
		}
		http.Error(w, error, code)
		return
	}
	if os.IsNotExist(err) {
		log.Println(err)
		error := "404 Not Found"
		if h.detailed {
			error += "\n\n" + err.Error()
		}
		http.Error(w, error, http.StatusNotFound)
		return
	}

	log.Println(err)
	error := "500 Internal Server Error"
	if h.detailed {
		error += "\n\n" + err.Error()
	}
	http.Error(w, error, http.StatusInternalServerError)
}

// responseWriter wraps a real http.ResponseWriter and captures
// whether or not the header has been written.
type responseWriter struct {
	http.ResponseWriter

	WroteHeader bool // Write or WriteHeader was called.
}

func (rw *responseWriter) Write(p []byte) (n int, err error) {
	rw.WroteHeader = true
	return rw.ResponseWriter.Write(p)
}
func (rw *responseWriter) WriteHeader(code int) {
	rw.WroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

// AllowMethods returns nil if req.Method is one of allowed,
// or an httperror.Method error otherwise.
func AllowMethods(req *http.Request, allowed ...string) error {
	for _, method := range allowed {
		if req.Method == method {
			return nil
		}
	}
	return httperror.Method{Allowed: allowed}
}
