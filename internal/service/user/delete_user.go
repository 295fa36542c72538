package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// DeleteUser removes a user and returns the removed document.
// Friend references held by other users are left in place.
// Returns ErrNotFound if no such user exists.
func (s *Service) DeleteUser(ctx context.Context, input DeleteUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Delete(ctx, input.ID, input.Fields)
	if err != nil {
		return nil, fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", input.ID))

	return user, nil
}
