package service

import (
	"context"
	"errors"

	"faithmedia-api/internal/data"
	"faithmedia-api/internal/sanitize"
)

// updateUser records the author of a submission. The write is a single
// atomic upsert; the read beforehand only short-circuits when the stored
// name already matches.
func (s *Service) updateUser(ctx context.Context, userID, userName string) error {
	name := sanitize.Name(userName)

	existing, err := s.users.Get(ctx, userID)
	if err == nil && existing.UserName == name {
		return nil
	}
	if err != nil && !errors.Is(err, data.ErrNotFound) {
		return err
	}

	now := s.timestamp()
	return s.users.Upsert(ctx, &data.User{
		ID:       userID,
		UserName: name,
		Created:  now,
		Updated:  now,
	})
}
