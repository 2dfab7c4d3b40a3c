package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvAppBasePath overrides the web app base path. An empty value serves the
// app at the domain root.
const EnvAppBasePath = "LM_APP_BASE_PATH"

// AppConfig contains settings for the web app module. BasePath is read once
// at startup; every app route and redirect target is served under it.
type AppConfig struct {
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *AppConfig) loadEnv() {
	if v, ok := os.LookupEnv(EnvAppBasePath); ok {
		c.BasePath = v
	}
}

func (c *AppConfig) validate() error {
	if c.BasePath == "" {
		return nil
	}
	if !strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") > 1 {
		return fmt.Errorf("base_path %q must be empty or a single path segment", c.BasePath)
	}
	if c.BasePath == "/" {
		return fmt.Errorf("base_path: use empty value to serve from root")
	}
	return nil
}
