package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// CreateUser stores a new user with an optional name and an empty friends list.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", user.ID))

	return user, nil
}
