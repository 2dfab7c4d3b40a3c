package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fedilists/list-manager/internal/api"
	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/internal/infrastructure"
	"github.com/fedilists/list-manager/internal/metrics"
	"github.com/fedilists/list-manager/pkg/module"
	"github.com/fedilists/list-manager/web/app"
)

// Server composes the infrastructure, the mounted modules, and the HTTP
// listener.
type Server struct {
	cfg   *config.Config
	infra *infrastructure.Infrastructure
	http  *http.Server
}

// NewServer builds the server from configuration: infrastructure first,
// then the API and web app modules mounted on the module router.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := infra.Start(); err != nil {
		return nil, err
	}

	router := module.NewRouter()
	router.Mount(api.NewModule(cfg, infra))

	appModule, err := app.NewModule(&cfg.App, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("app module: %w", err)
	}
	router.Mount(appModule)

	registerProbes(router, infra)
	if cfg.Metrics.Enabled {
		router.HandleNative("GET /metrics", metrics.Handler().ServeHTTP)
	}

	appMount := cfg.App.BasePath
	if appMount == "" {
		appMount = "/"
	}

	var handler http.Handler = router
	if cfg.Metrics.Enabled {
		handler = metrics.Instrument(handler,
			cfg.API.BasePath, appMount, "/healthz", "/readyz", "/metrics")
	}

	return &Server{
		cfg:   cfg,
		infra: infra,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
			WriteTimeout: cfg.Server.WriteTimeoutDuration(),
			IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
		},
	}, nil
}

// registerProbes adds liveness and readiness endpoints on the router's
// native mux so they resolve regardless of module mounts.
func registerProbes(router *module.Router, infra *infrastructure.Infrastructure) {
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			http.Error(w, "starting", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ready")
	})
}

// Run starts the listener and registers its shutdown with the lifecycle
// coordinator. It blocks until the listener stops.
func (s *Server) Run() error {
	lc := s.infra.Lifecycle

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeoutDuration())
		defer cancel()
		if err := s.http.Shutdown(ctx); err != nil {
			s.infra.Logger.Error("http shutdown error", "error", err)
		}
	})

	lc.WaitForStartup()
	s.infra.Logger.Info("listening",
		"addr", s.http.Addr,
		"app_base_path", s.cfg.App.BasePath,
		"api_base_path", s.cfg.API.BasePath,
		"version", s.cfg.Version,
	)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown cancels the application context and waits for subsystems to
// finish.
func (s *Server) Shutdown() error {
	return s.infra.Lifecycle.Shutdown(s.cfg.ShutdownTimeoutDuration())
}
