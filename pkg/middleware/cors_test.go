package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedilists/list-manager/pkg/middleware"
)

func TestCORS_Disabled_PassesThrough(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: false}
	wrapped := middleware.CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"https://example.com"},
	}
	cfg.Finalize(nil)
	wrapped := middleware.CORS(cfg)(okHandler())

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origin: "https://example.com", wantHeader: "https://example.com"},
		{name: "unknown origin", origin: "https://evil.example", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/info", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"https://example.com"},
	}
	cfg.Finalize(nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	wrapped := middleware.CORS(cfg)(next)

	req := httptest.NewRequest(http.MethodOptions, "/info", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if called {
		t.Error("preflight request should not reach the handler")
	}
}
