package config

import (
	"fmt"
	"os"
	"time"
)

// SessionsConfig contains session cookie and retention settings.
type SessionsConfig struct {
	CookieName    string `toml:"cookie_name"`
	CookieDomain  string `toml:"cookie_domain"`
	CookieSecure  bool   `toml:"cookie_secure"`
	TTL           string `toml:"ttl"`
	PurgeInterval string `toml:"purge_interval"`
}

// TTLDuration parses and returns the session lifetime as a time.Duration.
func (c *SessionsConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// PurgeIntervalDuration parses and returns the purge interval as a time.Duration.
func (c *SessionsConfig) PurgeIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.PurgeInterval)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the sessions configuration.
func (c *SessionsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SessionsConfig) Merge(overlay *SessionsConfig) {
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.CookieDomain != "" {
		c.CookieDomain = overlay.CookieDomain
	}
	if overlay.CookieSecure {
		c.CookieSecure = true
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.PurgeInterval != "" {
		c.PurgeInterval = overlay.PurgeInterval
	}
}

func (c *SessionsConfig) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "list-manager-cookie"
	}
	if c.TTL == "" {
		c.TTL = "24h"
	}
	if c.PurgeInterval == "" {
		c.PurgeInterval = "1h"
	}
}

func (c *SessionsConfig) loadEnv() {
	if v := os.Getenv("LM_SESSIONS_TTL"); v != "" {
		c.TTL = v
	}
	if v := os.Getenv("LM_SESSIONS_COOKIE_DOMAIN"); v != "" {
		c.CookieDomain = v
	}
	if v := os.Getenv("LM_SESSIONS_COOKIE_SECURE"); v != "" {
		c.CookieSecure = v == "true"
	}
}

func (c *SessionsConfig) validate() error {
	if _, err := time.ParseDuration(c.TTL); err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.PurgeInterval); err != nil {
		return fmt.Errorf("invalid purge_interval: %w", err)
	}
	return nil
}
