package config

import "os"

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Finalize loads environment overrides for the metrics configuration.
func (c *MetricsConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
}

func (c *MetricsConfig) loadEnv() {
	if v := os.Getenv("LM_METRICS_ENABLED"); v != "" {
		c.Enabled = v == "true"
	}
}
