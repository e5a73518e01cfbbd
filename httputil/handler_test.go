package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/shurcooL/domg/httputil"
	"github.com/shurcooL/httperror"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		detailed bool
		err      error
		wantCode int
		wantBody string // Prefix.
	}{
		{"nil", false, nil, http.StatusOK, "ok"},
		{"method", false, httperror.Method{Allowed: []string{http.MethodGet}}, http.StatusMethodNotAllowed, ""},
		{"http", false, httperror.HTTP{Code: http.StatusTeapot, Err: errors.New("short")}, http.StatusTeapot, "418 I'm a teapot"},
		{"not exist", false, os.ErrNotExist, http.StatusNotFound, "404 Not Found"},
		{"internal", false, errors.New("secret"), http.StatusInternalServerError, "500 Internal Server Error\n"},
		{"internal detailed", true, errors.New("secret"), http.StatusInternalServerError, "500 Internal Server Error\n\nsecret"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := httputil.ErrorHandler(tc.detailed, func(w http.ResponseWriter, req *http.Request) error {
				if tc.err == nil {
					_, err := w.Write([]byte("ok"))
					return err
				}
				return tc.err
			})
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			if rr.Code != tc.wantCode {
				t.Errorf("got status %d, want %d", rr.Code, tc.wantCode)
			}
			if body := rr.Body.String(); !strings.HasPrefix(body, tc.wantBody) {
				t.Errorf("got body %q, want prefix %q", body, tc.wantBody)
			}
			if !tc.detailed && strings.Contains(rr.Body.String(), "secret") {
				t.Error("error details leaked into a non-detailed response")
			}
		})
	}
}

func TestAllowMethods(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := httputil.AllowMethods(req, http.MethodGet, http.MethodHead); err == nil {
		t.Error("got nil error for POST")
	}
	if err := httputil.AllowMethods(req, http.MethodPost); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}
