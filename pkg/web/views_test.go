package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fedilists/list-manager/pkg/web"
)

//go:embed testdata/layouts/*.html testdata/views/*.html
var testFS embed.FS

var testViews = []web.ViewDef{
	{Route: "/home", Template: "home.html", Title: "Home", Bundle: "home"},
	{Route: "/missing", Template: "missing.html", Title: "Missing"},
}

func newTestSet(t *testing.T, basePath string) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, testFS, "testdata/layouts/*.html", "testdata/views", basePath, testViews)
	if err != nil {
		t.Fatalf("NewTemplateSet() failed: %v", err)
	}
	return ts
}

func TestNewTemplateSet_UnknownTemplate(t *testing.T) {
	bad := []web.ViewDef{{Route: "/nope", Template: "nope.html"}}
	if _, err := web.NewTemplateSet(testFS, testFS, "testdata/layouts/*.html", "testdata/views", "", bad); err == nil {
		t.Error("NewTemplateSet() should fail for missing template file")
	}
}

func TestPageHandler_RendersView(t *testing.T) {
	ts := newTestSet(t, "/base")
	handler := ts.PageHandler("test", testViews[0])

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<title>Home</title>") {
		t.Errorf("body missing title: %q", body)
	}
	if !strings.Contains(body, `data-base="/base"`) {
		t.Errorf("body missing base path: %q", body)
	}
}

func TestPageHandler_RenderIsRepeatable(t *testing.T) {
	ts := newTestSet(t, "")
	handler := ts.PageHandler("test", testViews[0])

	var bodies []string
	for range 2 {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/home", nil))
		bodies = append(bodies, w.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Errorf("repeated renders differ:\n%q\n%q", bodies[0], bodies[1])
	}
}

func TestErrorHandler_SetsStatus(t *testing.T) {
	ts := newTestSet(t, "")
	handler := ts.ErrorHandler("test", testViews[1], http.StatusNotFound)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "missing") {
		t.Errorf("body = %q, want error view content", w.Body.String())
	}
}

func TestRedirectHandler_PrefixesBasePath(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		target   string
		want     string
	}{
		{name: "root mount", basePath: "", target: "/login", want: "/login"},
		{name: "prefixed mount", basePath: "/lists", target: "/login", want: "/lists/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestSet(t, tt.basePath)
			handler := ts.RedirectHandler(web.RedirectDef{Route: "/{$}", Target: tt.target})

			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != http.StatusFound {
				t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
			}
			if loc := w.Header().Get("Location"); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
		})
	}
}
