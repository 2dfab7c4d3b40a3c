// Package module provides URL-prefix scoped composition of HTTP handlers.
// A Module owns a single path segment (e.g. /api, /app) and an optional
// middleware chain; a Router dispatches requests to mounted modules by
// their prefix, stripping it before inner dispatch.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Module binds a handler to a single-segment URL prefix.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware []Middleware
}

// New creates a module for the given prefix. The prefix must start with "/"
// and contain at most one path segment ("/" mounts at the root). Invalid
// prefixes panic: modules are wired at startup and a bad prefix is a
// programming error.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(fmt.Sprintf("module: %v", err))
	}
	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's chain. Middleware runs in
// registration order, outermost first.
func (m *Module) Use(mw Middleware) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module's handler with all middleware applied.
// Middleware sees the original request path, with the mount prefix still
// present, so redirects it issues stay within the mount. The prefix is
// stripped just before the inner handler dispatches.
func (m *Module) Handler() http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = stripPrefix(r.URL.Path, m.prefix)
		m.handler.ServeHTTP(w, r2)
	})
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve dispatches the request through the module's middleware chain and
// prefix-stripping handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	m.Handler().ServeHTTP(w, r)
}

func stripPrefix(path, prefix string) string {
	if prefix == "/" {
		return path
	}
	stripped := strings.TrimPrefix(path, prefix)
	if stripped == "" {
		return "/"
	}
	return stripped
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix %q must start with /", prefix)
	}
	if strings.Count(prefix, "/") > 1 {
		return fmt.Errorf("prefix %q must be a single path segment", prefix)
	}
	return nil
}
