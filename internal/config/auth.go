package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// AuthConfig contains OAuth client settings for the Mastodon instance the
// service authenticates against.
type AuthConfig struct {
	// Server is the instance domain users of this deployment log in to.
	Server       string   `toml:"server"`
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	RedirectURL  string   `toml:"redirect_url"`
	Scopes       []string `toml:"scopes"`
}

// ServerURL returns the instance base URL.
func (c *AuthConfig) ServerURL() string {
	return "https://" + c.Server
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Server != "" {
		c.Server = overlay.Server
	}
	if overlay.ClientID != "" {
		c.ClientID = overlay.ClientID
	}
	if overlay.ClientSecret != "" {
		c.ClientSecret = overlay.ClientSecret
	}
	if overlay.RedirectURL != "" {
		c.RedirectURL = overlay.RedirectURL
	}
	if len(overlay.Scopes) > 0 {
		c.Scopes = overlay.Scopes
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.Server == "" {
		c.Server = "hachyderm.io"
	}
	if len(c.Scopes) == 0 {
		c.Scopes = []string{"read:lists", "read:follows", "read:accounts", "write:lists"}
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv("LM_AUTH_SERVER"); v != "" {
		c.Server = v
	}
	if v := os.Getenv("LM_AUTH_CLIENT_ID"); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv("LM_AUTH_CLIENT_SECRET"); v != "" {
		c.ClientSecret = v
	}
	if v := os.Getenv("LM_AUTH_REDIRECT_URL"); v != "" {
		c.RedirectURL = v
	}
}

func (c *AuthConfig) validate() error {
	if strings.Contains(c.Server, "://") {
		return fmt.Errorf("server %q must be a bare domain", c.Server)
	}
	if c.ClientID == "" {
		return fmt.Errorf("client_id required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client_secret required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("redirect_url required")
	}
	if _, err := url.Parse(c.RedirectURL); err != nil {
		return fmt.Errorf("invalid redirect_url: %w", err)
	}
	return nil
}
