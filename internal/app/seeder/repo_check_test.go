package seeder_test

import (
	mongouser "github.com/heartmarshall/usergraph-backend/internal/adapter/mongodb/user"
	"github.com/heartmarshall/usergraph-backend/internal/app/seeder"
)

// Compile-time check: *mongouser.Repo must satisfy UserRepo.
var _ seeder.UserRepo = (*mongouser.Repo)(nil)
