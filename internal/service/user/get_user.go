package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// GetUser returns the user with the given id.
// Returns ErrNotFound if no such user exists.
func (s *Service) GetUser(ctx context.Context, input GetUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, input.ID, input.Fields)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}

	return user, nil
}
