// Package auth implements the OAuth login flow against the configured
// Mastodon instance and issues sessions for exchanged tokens.
package auth

import (
	"context"

	"github.com/fedilists/list-manager/internal/sessions"
)

// Status is the outcome of an authorization check.
type Status struct {
	// Authorized is true when the caller already holds a session whose
	// token the instance still accepts.
	Authorized bool

	// URL is the instance authorization URL the client should redirect
	// to when not authorized.
	URL string
}

// System defines the interface for the login flow.
type System interface {
	// Begin checks whether the given session still authorizes against
	// the instance. A nil session, or one whose token the instance
	// rejects, yields an authorization URL instead.
	Begin(ctx context.Context, sess *sessions.Session) Status

	// Callback exchanges an authorization code for a token and creates
	// a session for it.
	Callback(ctx context.Context, code string) (*sessions.Session, error)
}
