// Package routes provides declarative HTTP route tables. Handlers declare
// their routes as data; registration walks the tables and binds them onto
// a ServeMux.
package routes

import "net/http"

// Route represents one routing rule: a method and path pattern bound to a
// handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group collects routes under a common URL prefix. Groups can nest through
// Children for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}
