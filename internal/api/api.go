// Package api assembles the JSON API module: the login flow and list
// management endpoints mounted under the configured API base path.
package api

import (
	"net/http"

	"github.com/fedilists/list-manager/internal/auth"
	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/internal/fediverse"
	"github.com/fedilists/list-manager/internal/infrastructure"
	"github.com/fedilists/list-manager/internal/lists"
	"github.com/fedilists/list-manager/internal/sessions"
	"github.com/fedilists/list-manager/pkg/middleware"
	"github.com/fedilists/list-manager/pkg/module"
	"github.com/fedilists/list-manager/pkg/routes"
)

// NewModule wires the domain systems and returns the API module mounted at
// cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) *module.Module {
	sessionSys := sessions.New(infra.Database.Connection(), &cfg.Sessions, infra.Logger)
	sessionSys.Start(infra.Lifecycle)

	clients := fediverse.NewFactory(&cfg.Auth)

	authSys := auth.New(sessionSys, clients, &cfg.Auth, infra.Logger)
	listSys := lists.New(clients, infra.Logger)

	mux := http.NewServeMux()
	routes.Register(mux,
		auth.NewHandler(authSys, sessionSys, &cfg.Sessions, infra.Logger).Routes(),
		lists.NewHandler(listSys, sessionSys, &cfg.Sessions, infra.Logger).Routes(),
	)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.Logger(infra.Logger.With("module", "api")))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(maxBody(cfg.API.MaxBodySizeBytes()))
	return m
}

// maxBody caps request body reads. Every endpoint takes its input from the
// URL, so anything beyond a small body is a client error.
func maxBody(limit int64) module.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
