// Package seeder loads user fixtures into the store.
package seeder

import (
	"context"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// UserRepo is the write side of the user store consumed by the pipeline.
// Implemented by the MongoDB user repository.
type UserRepo interface {
	Create(ctx context.Context, name *string) (*domain.User, error)
	SetFriends(ctx context.Context, id string, friendIDs []string) error
}
