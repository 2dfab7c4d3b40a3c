package lists

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mattn/go-mastodon"
	"golang.org/x/sync/errgroup"

	"github.com/fedilists/list-manager/internal/fediverse"
	"github.com/fedilists/list-manager/internal/sessions"
)

// membershipWorkers bounds concurrent list-member fetches against the
// instance. Mastodon rate limits per token, so keep this small.
const membershipWorkers = 4

type service struct {
	clients fediverse.Factory
	logger  *slog.Logger
}

// New creates a list management system backed by per-session Mastodon
// clients.
func New(clients fediverse.Factory, logger *slog.Logger) System {
	return &service{
		clients: clients,
		logger:  logger.With("system", "lists"),
	}
}

func (s *service) Info(ctx context.Context, sess *sessions.Session) (*Directory, error) {
	client := s.clients(sess.Domain, sess.Token)

	me, err := client.Me(ctx)
	if err != nil {
		return nil, s.mapError("resolve account", err)
	}

	following, err := client.Following(ctx, me.ID)
	if err != nil {
		return nil, s.mapError("fetch following", err)
	}

	rawLists, err := client.Lists(ctx)
	if err != nil {
		return nil, s.mapError("fetch lists", err)
	}

	members := make([][]*mastodon.Account, len(rawLists))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(membershipWorkers)
	for i, l := range rawLists {
		group.Go(func() error {
			accounts, err := client.ListAccounts(gctx, l.ID)
			if err != nil {
				return fmt.Errorf("list %s: %w", l.ID, err)
			}
			members[i] = accounts
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, s.mapError("fetch list members", err)
	}

	dir := &Directory{
		Lists:     make([]List, 0, len(rawLists)),
		Followers: make([]Follower, 0, len(following)),
		Me: Me{
			Username:    me.Username,
			Acct:        fmt.Sprintf("%s@%s", me.Acct, sess.Domain),
			DisplayName: me.DisplayName,
		},
	}

	membership := make(map[string][]string, len(following))
	for i, l := range rawLists {
		dir.Lists = append(dir.Lists, newList(l))
		for _, a := range members[i] {
			id := string(a.ID)
			membership[id] = append(membership[id], string(l.ID))
		}
	}

	for _, a := range following {
		f := newFollower(a)
		if ids, ok := membership[f.ID]; ok {
			f.Lists = ids
		}
		dir.Followers = append(dir.Followers, f)
	}

	s.logger.Debug("aggregated directory",
		"lists", len(dir.Lists),
		"followers", len(dir.Followers),
	)
	return dir, nil
}

func (s *service) AddAccount(ctx context.Context, sess *sessions.Session, listID, accountID string) error {
	client := s.clients(sess.Domain, sess.Token)
	if err := client.AddToList(ctx, mastodon.ID(listID), mastodon.ID(accountID)); err != nil {
		return s.mapError("add account to list", err)
	}
	return nil
}

func (s *service) RemoveAccount(ctx context.Context, sess *sessions.Session, listID, accountID string) error {
	client := s.clients(sess.Domain, sess.Token)
	if err := client.RemoveFromList(ctx, mastodon.ID(listID), mastodon.ID(accountID)); err != nil {
		return s.mapError("remove account from list", err)
	}
	return nil
}

func (s *service) CreateList(ctx context.Context, sess *sessions.Session, title string) (*List, error) {
	client := s.clients(sess.Domain, sess.Token)
	created, err := client.CreateList(ctx, title)
	if err != nil {
		return nil, s.mapError("create list", err)
	}
	l := newList(created)
	return &l, nil
}

func (s *service) DeleteList(ctx context.Context, sess *sessions.Session, listID string) error {
	client := s.clients(sess.Domain, sess.Token)
	if err := client.DeleteList(ctx, mastodon.ID(listID)); err != nil {
		return s.mapError("delete list", err)
	}
	return nil
}

func (s *service) mapError(op string, err error) error {
	if fediverse.Unauthorized(err) {
		s.logger.Warn("token rejected", "operation", op)
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	s.logger.Error("instance request failed", "operation", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
