package resolver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
	"github.com/heartmarshall/usergraph-backend/internal/service/user"
	"github.com/heartmarshall/usergraph-backend/internal/transport/middleware"
)

//go:generate moq -out user_service_mock_test.go -pkg resolver . userService

// userService defines what resolver needs from User service.
type userService interface {
	GetUser(ctx context.Context, input user.GetUserInput) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, input user.DeleteUserInput) (*domain.User, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	user        userService
	requireAuth bool
	log         *slog.Logger
}

// NewResolver creates a new Resolver. When requireAuth is set, mutations
// need an authenticated subject in the request context.
func NewResolver(log *slog.Logger, user userService, requireAuth bool) *Resolver {
	return &Resolver{
		user:        user,
		requireAuth: requireAuth,
		log:         log.With("component", "graphql"),
	}
}

// authorizeMutation rejects anonymous callers when mutations are guarded.
func (r *Resolver) authorizeMutation(ctx context.Context) error {
	if !r.requireAuth {
		return nil
	}
	return middleware.RequireSubject(ctx)
}

// nullable turns a missing user into a GraphQL null.
func nullable(u *domain.User, err error) (interface{}, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return u, nil
}
