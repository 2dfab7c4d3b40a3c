package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/pkg/module"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, basePath string) *module.Router {
	t.Helper()

	m, err := NewModule(&config.AppConfig{BasePath: basePath}, discard())
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func get(router *module.Router, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouteTable(t *testing.T) {
	if got := len(views) + len(redirects); got != 4 {
		t.Errorf("route entries = %d, want 4", got)
	}

	seen := map[string]bool{}
	for _, v := range views {
		if seen[v.Route] {
			t.Errorf("duplicate route %q", v.Route)
		}
		seen[v.Route] = true
	}
	for _, rd := range redirects {
		if seen[rd.Route] {
			t.Errorf("duplicate route %q", rd.Route)
		}
		seen[rd.Route] = true
	}

	for _, route := range []string{"/manager", "/login", "/callback"} {
		if !seen[route] {
			t.Errorf("missing view route %q", route)
		}
	}

	if len(redirects) != 1 || redirects[0].Route != "/{$}" || redirects[0].Target != "/login" {
		t.Errorf("redirects = %+v, want root redirect to /login", redirects)
	}
}

func TestViews_ServedAtRoot(t *testing.T) {
	router := newTestRouter(t, "")

	tests := []struct {
		path     string
		wantText string
	}{
		{path: "/manager", wantText: "List Manager"},
		{path: "/login", wantText: "Log in"},
		{path: "/callback", wantText: "Signing in"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(router, tt.path)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			if !strings.Contains(w.Body.String(), tt.wantText) {
				t.Errorf("body missing %q", tt.wantText)
			}
		})
	}
}

func TestRootRedirect_AtRoot(t *testing.T) {
	router := newTestRouter(t, "")

	w := get(router, "/")

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}
}

func TestViews_ServedUnderBasePath(t *testing.T) {
	router := newTestRouter(t, "/lists")

	for _, path := range []string{"/lists/manager", "/lists/login", "/lists/callback"} {
		t.Run(path, func(t *testing.T) {
			if w := get(router, path); w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}

	// Unprefixed paths are not claimed by the module.
	if w := get(router, "/manager"); w.Code != http.StatusNotFound {
		t.Errorf("unprefixed status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRootRedirect_UnderBasePath(t *testing.T) {
	router := newTestRouter(t, "/lists")

	w := get(router, "/lists")

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/lists/login" {
		t.Errorf("Location = %q, want %q", loc, "/lists/login")
	}
}

func TestBasePath_RewritesAssetLinks(t *testing.T) {
	router := newTestRouter(t, "/lists")

	w := get(router, "/lists/login")

	body := w.Body.String()
	if !strings.Contains(body, `src="/lists/dist/login.js"`) {
		t.Errorf("body missing prefixed bundle link:\n%s", body)
	}
	if !strings.Contains(body, `data-base-path="/lists"`) {
		t.Errorf("body missing base path attribute")
	}
}

func TestRender_IsRepeatable(t *testing.T) {
	router := newTestRouter(t, "")

	first := get(router, "/manager")
	second := get(router, "/manager")

	if first.Code != second.Code {
		t.Errorf("status differs: %d vs %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("repeated requests rendered different bodies")
	}
}

func TestUnknownPath_RendersNotFoundView(t *testing.T) {
	router := newTestRouter(t, "")

	w := get(router, "/nope")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Not Found") {
		t.Errorf("body = %q, want 404 view", w.Body.String())
	}
}

func TestAssets_Served(t *testing.T) {
	router := newTestRouter(t, "")

	for _, path := range []string{"/dist/app.css", "/dist/login.js", "/favicon.svg", "/robots.txt"} {
		t.Run(path, func(t *testing.T) {
			if w := get(router, path); w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}
}
