package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedilists/list-manager/pkg/web"
)

func TestRouter_FallbackForUnmatched(t *testing.T) {
	router := web.NewRouter()
	router.HandleFunc("GET /login", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "login")
	})
	router.SetFallback(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "custom 404")
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/login", wantStatus: http.StatusOK, wantBody: "login"},
		{path: "/unknown", wantStatus: http.StatusNotFound, wantBody: "custom 404"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_NoFallback_UsesMuxDefault(t *testing.T) {
	router := web.NewRouter()
	router.HandleFunc("GET /login", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
