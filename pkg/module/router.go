package module

import (
	"net/http"
	"path"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment.
// Routes registered natively (health and readiness probes, metrics) take
// precedence over module prefixes.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
	root    *Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: map[string]*Module{},
	}
}

// HandleNative registers a handler on the router's own mux, outside any module.
func (r *Router) HandleNative(pattern string, fn http.HandlerFunc) {
	r.native.HandleFunc(pattern, fn)
}

// Mount attaches a module at its prefix. A module with prefix "/" becomes
// the root fallback for requests no other module or native route claims.
func (r *Router) Mount(m *Module) {
	if m.Prefix() == "/" {
		r.root = m
		return
	}
	r.modules[m.Prefix()] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if clean := path.Clean(req.URL.Path); clean != req.URL.Path && clean+"/" != req.URL.Path {
		req = req.Clone(req.Context())
		req.URL.Path = clean
	}

	if _, pattern := r.native.Handler(req); pattern != "" {
		r.native.ServeHTTP(w, req)
		return
	}

	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}

	if r.root != nil {
		r.root.Serve(w, req)
		return
	}

	http.NotFound(w, req)
}

func firstSegment(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	rest := p[1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return "/" + rest[:i]
	}
	return p
}
