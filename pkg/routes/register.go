package routes

import "net/http"

// Register binds all routes in the given groups onto the mux. Patterns are
// composed from the group prefix chain plus the route pattern.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		registerGroup(mux, "", g)
	}
}

// RegisterRoutes binds standalone routes onto the mux.
func RegisterRoutes(mux *http.ServeMux, rts ...Route) {
	for _, rt := range rts {
		mux.HandleFunc(rt.Method+" "+rt.Pattern, rt.Handler)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, g Group) {
	fullPrefix := parentPrefix + g.Prefix
	for _, rt := range g.Routes {
		mux.HandleFunc(rt.Method+" "+fullPrefix+rt.Pattern, rt.Handler)
	}
	for _, child := range g.Children {
		registerGroup(mux, fullPrefix, child)
	}
}
