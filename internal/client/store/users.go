package store

import (
	"context"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// UserStore caches the account list for the admin's user-management view.
type UserStore struct {
	Collection[models.User]
	client api.Client
	log    logging.Logger
}

func NewUserStore(client api.Client, log logging.Logger) *UserStore {
	return &UserStore{client: client, log: log.With("store", "users")}
}

func (s *UserStore) Fetch(ctx context.Context) error {
	err := fetchInto(ctx, &s.Collection, s.client.Users)
	if err != nil {
		s.log.Warn(ctx, "fetch failed", "err", err)
	}
	return err
}

// Verify marks an account verified server-side, then patches the cached row
// in place. The verify endpoint returns no entity body, so the patch flips
// only the flag the operation is defined to change.
func (s *UserStore) Verify(ctx context.Context, id string) error {
	if err := s.client.VerifyUser(ctx, id); err != nil {
		return err
	}
	s.patchByID(id, func(u *models.User) { u.IsVerified = true })
	return nil
}

// Unverify is the inverse of Verify.
func (s *UserStore) Unverify(ctx context.Context, id string) error {
	if err := s.client.UnverifyUser(ctx, id); err != nil {
		return err
	}
	s.patchByID(id, func(u *models.User) { u.IsVerified = false })
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}
