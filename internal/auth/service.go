package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/internal/fediverse"
	"github.com/fedilists/list-manager/internal/sessions"
)

type service struct {
	sessions sessions.System
	clients  fediverse.Factory
	oauth    *oauth2.Config
	domain   string
	logger   *slog.Logger
}

// New creates the login flow system for the configured instance.
func New(sess sessions.System, clients fediverse.Factory, cfg *config.AuthConfig, logger *slog.Logger) System {
	return &service{
		sessions: sess,
		clients:  clients,
		oauth:    oauthConfig(cfg),
		domain:   cfg.Server,
		logger:   logger.With("system", "auth"),
	}
}

// oauthConfig builds the OAuth client configuration for a Mastodon
// instance, which serves the standard authorize and token endpoints under
// /oauth.
func oauthConfig(cfg *config.AuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.ServerURL() + "/oauth/authorize",
			TokenURL: cfg.ServerURL() + "/oauth/token",
		},
	}
}

func (s *service) Begin(ctx context.Context, sess *sessions.Session) Status {
	if sess != nil {
		// Confirm the instance still honors the token; sessions can
		// outlive a revocation.
		if _, err := s.clients(sess.Domain, sess.Token).Me(ctx); err == nil {
			return Status{Authorized: true}
		}
		s.logger.Info("stale session, restarting login", "session", sess.Key)
	}
	return Status{URL: s.oauth.AuthCodeURL("")}
}

func (s *service) Callback(ctx context.Context, code string) (*sessions.Session, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	sess, err := s.sessions.Create(ctx, sessions.CreateCommand{
		Token:  token.AccessToken,
		Domain: s.domain,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session issued", "session", sess.Key, "domain", sess.Domain)
	return sess, nil
}
