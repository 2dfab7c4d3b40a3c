// Package app serves the list manager web application: the login, callback,
// and manager views, their built assets, and the root redirect into the
// login flow.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/pkg/middleware"
	"github.com/fedilists/list-manager/pkg/module"
	"github.com/fedilists/list-manager/pkg/web"
)

//go:embed server/layouts/*.html
var layoutFS embed.FS

//go:embed server/views/*.html
var viewFS embed.FS

//go:embed all:dist
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

const layout = "app"

// views declares every rendered page. Adding a page means adding an entry
// here and its template under server/views.
var views = []web.ViewDef{
	{Route: "/manager", Template: "manager.html", Title: "List Manager", Bundle: "manager"},
	{Route: "/login", Template: "login.html", Title: "Log In", Bundle: "login"},
	{Route: "/callback", Template: "callback.html", Title: "Signing In", Bundle: "callback"},
}

// redirects declares route aliases. The bare root forwards into the login
// flow, which bounces already-authenticated visitors on to the manager.
var redirects = []web.RedirectDef{
	{Route: "/{$}", Target: "/login"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found"}

// NewModule builds the web app module mounted at cfg.BasePath. An empty
// base path mounts the app at the server root.
func NewModule(cfg *config.AppConfig, logger *slog.Logger) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"server/layouts/*.html", "server/views",
		cfg.BasePath,
		append(views, notFoundView),
	)
	if err != nil {
		return nil, err
	}

	prefix := cfg.BasePath
	if prefix == "" {
		prefix = "/"
	}

	m := module.New(prefix, buildRouter(ts))
	m.Use(middleware.Logger(logger.With("module", "app")))
	return m, nil
}

// buildRouter registers the view, redirect, and asset routes. Paths are
// relative to the module mount; the module strips its prefix before
// dispatch.
func buildRouter(ts *web.TemplateSet) *web.Router {
	router := web.NewRouter()

	for _, v := range views {
		router.HandleFunc("GET "+v.Route, ts.PageHandler(layout, v))
	}
	for _, rd := range redirects {
		router.HandleFunc("GET "+rd.Route, ts.RedirectHandler(rd))
	}

	router.Handle("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))
	for _, rt := range web.PublicFileRoutes(publicFS, "public", "favicon.svg", "robots.txt") {
		router.HandleFunc(rt.Method+" "+rt.Pattern, rt.Handler)
	}

	router.SetFallback(ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))
	return router
}
