// Package sessions maps browser cookies to Mastodon access tokens. Each
// session row associates an opaque cookie key with the token and instance
// domain it was issued for, expiring after a configurable lifetime.
package sessions

import "time"

// Session associates a cookie key with an access token for an instance.
type Session struct {
	Key       string    `json:"key"`
	Token     string    `json:"-"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// CreateCommand contains the data needed to create a session.
type CreateCommand struct {
	Token  string
	Domain string
}
