// Package infrastructure assembles the cross-cutting subsystems the server
// depends on: lifecycle coordination, logging, and the database pool.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/migrations"
	"github.com/fedilists/list-manager/pkg/database"
	"github.com/fedilists/list-manager/pkg/lifecycle"
	"github.com/fedilists/list-manager/pkg/logging"
)

// Infrastructure holds the shared subsystems handed to domain systems.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New builds the infrastructure from configuration. The database pool is
// opened but not verified until Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start verifies database connectivity and applies pending schema
// migrations.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return err
	}

	if err := database.Migrate(i.Database.Connection(), migrations.Files, "."); err != nil {
		return err
	}

	i.Logger.Info("infrastructure started")
	return nil
}
