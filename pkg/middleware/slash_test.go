package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedilists/list-manager/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{name: "root preserved", path: "/", wantStatus: http.StatusOK},
		{name: "no trailing slash", path: "/info", wantStatus: http.StatusOK},
		{name: "trailing slash redirects", path: "/info/", wantStatus: http.StatusMovedPermanently, wantLocation: "/info"},
		{name: "nested trailing slash", path: "/lists/add/", wantStatus: http.StatusMovedPermanently, wantLocation: "/lists/add"},
	}

	wrapped := middleware.TrimSlash()(okHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if loc := w.Header().Get("Location"); loc != tt.wantLocation {
					t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
				}
			}
		})
	}
}

func TestTrimSlash_PreservesQueryString(t *testing.T) {
	wrapped := middleware.TrimSlash()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/lists/?list_name=friends", nil)
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	want := "/lists?list_name=friends"
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestAddSlash_SkipsFileExtensions(t *testing.T) {
	wrapped := middleware.AddSlash()(okHandler())

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/docs", wantStatus: http.StatusMovedPermanently},
		{path: "/dist/app.css", wantStatus: http.StatusOK},
		{path: "/docs/", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
