package sessions

import (
	"context"

	"github.com/fedilists/list-manager/pkg/lifecycle"
)

// System defines the interface for session management operations.
type System interface {
	// Find returns the unexpired session for the given cookie key.
	Find(ctx context.Context, key string) (*Session, error)

	// Create stores a new session and returns it with its generated key.
	Create(ctx context.Context, cmd CreateCommand) (*Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, key string) error

	// PurgeExpired removes all expired sessions and returns the count removed.
	PurgeExpired(ctx context.Context) (int64, error)

	// Start registers the background purge loop with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator)
}
