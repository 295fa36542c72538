package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// UpdateUser renames a user and returns the resulting document.
// ClearName stores a null name. Without either, nothing is written and the
// current document is returned.
// Returns ErrNotFound if no such user exists.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Name == nil && !input.ClearName {
		user, err := s.users.GetByID(ctx, input.ID, input.Fields)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateUser: %w", err)
		}
		return user, nil
	}

	user, err := s.users.UpdateName(ctx, input.ID, input.Name, input.Fields)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", input.ID))

	return user, nil
}
