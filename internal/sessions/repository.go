package sessions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/pkg/lifecycle"
	"github.com/fedilists/list-manager/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	ttl    time.Duration
	purge  time.Duration
}

// New creates a session system backed by the given connection pool.
func New(db *sql.DB, cfg *config.SessionsConfig, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "sessions"),
		ttl:    cfg.TTLDuration(),
		purge:  cfg.PurgeIntervalDuration(),
	}
}

func scanSession(s repository.Scanner) (Session, error) {
	var sess Session
	err := s.Scan(&sess.Key, &sess.Token, &sess.Domain, &sess.CreatedAt, &sess.ExpiresAt)
	return sess, err
}

func (r *repo) Find(ctx context.Context, key string) (*Session, error) {
	q := `
		SELECT key, token, domain, created_at, expires_at
		FROM sessions
		WHERE key = $1 AND expires_at > now()`

	sess, err := repository.QueryOne(ctx, r.db, q, []any{key}, scanSession)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &sess, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Session, error) {
	q := `
		INSERT INTO sessions (key, token, domain, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING key, token, domain, created_at, expires_at`

	key := uuid.New().URN()
	expires := time.Now().Add(r.ttl)

	sess, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Session, error) {
		return repository.QueryOne(ctx, tx, q, []any{key, cmd.Token, cmd.Domain, expires}, scanSession)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("session created", "domain", sess.Domain, "expires_at", sess.ExpiresAt)
	return &sess, nil
}

func (r *repo) Delete(ctx context.Context, key string) error {
	q := `DELETE FROM sessions WHERE key = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, key); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("session deleted")
	return nil
}

func (r *repo) PurgeExpired(ctx context.Context) (int64, error) {
	q := `DELETE FROM sessions WHERE expires_at <= now()`

	result, err := r.db.ExecContext(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return result.RowsAffected()
}

// Start runs the purge loop until the application context is cancelled.
// Postgres has no native row TTL, so expired sessions are reaped here.
func (r *repo) Start(lc *lifecycle.Coordinator) {
	lc.OnShutdown(func() {
		ticker := time.NewTicker(r.purge)
		defer ticker.Stop()

		for {
			select {
			case <-lc.Context().Done():
				return
			case <-ticker.C:
				n, err := r.PurgeExpired(lc.Context())
				if err != nil {
					r.logger.Error("session purge failed", "error", err)
					continue
				}
				if n > 0 {
					r.logger.Info("sessions purged", "count", n)
				}
			}
		}
	})
}
