package lists

import (
	"context"

	"github.com/fedilists/list-manager/internal/sessions"
)

// System defines the interface for list management operations. Every
// operation acts on behalf of the account the session's token belongs to.
type System interface {
	// Info aggregates the signed-in account, its followed accounts, its
	// lists, and the membership of each list.
	Info(ctx context.Context, sess *sessions.Session) (*Directory, error)

	// AddAccount adds an account to a list.
	AddAccount(ctx context.Context, sess *sessions.Session, listID, accountID string) error

	// RemoveAccount removes an account from a list.
	RemoveAccount(ctx context.Context, sess *sessions.Session, listID, accountID string) error

	// CreateList creates a list with the given title.
	CreateList(ctx context.Context, sess *sessions.Session, title string) (*List, error)

	// DeleteList removes a list.
	DeleteList(ctx context.Context, sess *sessions.Session, listID string) error
}
