package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id string, fields []domain.UserField) (*domain.User, error)
	Create(ctx context.Context, name *string) (*domain.User, error)
	UpdateName(ctx context.Context, id string, name *string, fields []domain.UserField) (*domain.User, error)
	Delete(ctx context.Context, id string, fields []domain.UserField) (*domain.User, error)
}

// Service implements the user CRUD operations exposed over GraphQL.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
