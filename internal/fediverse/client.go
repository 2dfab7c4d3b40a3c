// Package fediverse wraps the Mastodon REST API behind a narrow client
// interface. Clients are built per session, bound to the token and instance
// domain the session was issued for.
package fediverse

import (
	"context"
	"errors"
	"net/http"

	"github.com/mattn/go-mastodon"

	"github.com/fedilists/list-manager/internal/config"
)

// Client exposes the subset of the Mastodon API the service consumes.
type Client interface {
	// Me returns the account the bound token belongs to.
	Me(ctx context.Context) (*mastodon.Account, error)

	// Following returns every account the given account follows,
	// walking all pages.
	Following(ctx context.Context, id mastodon.ID) ([]*mastodon.Account, error)

	// Lists returns the account's lists.
	Lists(ctx context.Context) ([]*mastodon.List, error)

	// ListAccounts returns the members of a list.
	ListAccounts(ctx context.Context, id mastodon.ID) ([]*mastodon.Account, error)

	// CreateList creates a list with the given title.
	CreateList(ctx context.Context, title string) (*mastodon.List, error)

	// DeleteList removes a list.
	DeleteList(ctx context.Context, id mastodon.ID) error

	// AddToList adds an account to a list.
	AddToList(ctx context.Context, list, account mastodon.ID) error

	// RemoveFromList removes an account from a list.
	RemoveFromList(ctx context.Context, list, account mastodon.ID) error
}

// Factory builds a Client bound to an instance domain and access token.
type Factory func(domain, token string) Client

// NewFactory returns a Factory carrying the configured OAuth client
// credentials.
func NewFactory(cfg *config.AuthConfig) Factory {
	clientID := cfg.ClientID
	clientSecret := cfg.ClientSecret
	return func(domain, token string) Client {
		return &client{
			m: mastodon.NewClient(&mastodon.Config{
				Server:       "https://" + domain,
				ClientID:     clientID,
				ClientSecret: clientSecret,
				AccessToken:  token,
			}),
		}
	}
}

type client struct {
	m *mastodon.Client
}

func (c *client) Me(ctx context.Context) (*mastodon.Account, error) {
	return c.m.GetAccountCurrentUser(ctx)
}

func (c *client) Following(ctx context.Context, id mastodon.ID) ([]*mastodon.Account, error) {
	var all []*mastodon.Account
	var pg mastodon.Pagination
	for {
		page, err := c.m.GetAccountFollowing(ctx, id, &pg)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if pg.MaxID == "" {
			return all, nil
		}
	}
}

func (c *client) Lists(ctx context.Context) ([]*mastodon.List, error) {
	return c.m.GetLists(ctx)
}

func (c *client) ListAccounts(ctx context.Context, id mastodon.ID) ([]*mastodon.Account, error) {
	return c.m.GetListAccounts(ctx, id)
}

func (c *client) CreateList(ctx context.Context, title string) (*mastodon.List, error) {
	return c.m.CreateList(ctx, title)
}

func (c *client) DeleteList(ctx context.Context, id mastodon.ID) error {
	return c.m.DeleteList(ctx, id)
}

func (c *client) AddToList(ctx context.Context, list, account mastodon.ID) error {
	return c.m.AddToList(ctx, list, account)
}

func (c *client) RemoveFromList(ctx context.Context, list, account mastodon.ID) error {
	return c.m.RemoveFromList(ctx, list, account)
}

// Unauthorized reports whether the instance rejected the access token.
func Unauthorized(err error) bool {
	var apiErr *mastodon.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
