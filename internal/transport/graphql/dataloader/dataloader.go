// Package dataloader provides per-request DataLoaders for batching friend
// lookups into single $in queries. DataLoaders call the repository directly,
// bypassing the service layer.
package dataloader

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
	"github.com/heartmarshall/usergraph-backend/internal/transport/middleware"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []string, fields []domain.UserField) ([]domain.User, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User userRepo
}

// Loaders holds the per-request user loaders, one per projection signature.
// Created per-request via NewLoaders.
type Loaders struct {
	repos Repos

	mu        sync.Mutex
	usersByID map[string]*dataloader.Loader[string, *domain.User]
}

// NewLoaders creates an empty loader set backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos Repos) *Loaders {
	return &Loaders{
		repos:     repos,
		usersByID: make(map[string]*dataloader.Loader[string, *domain.User]),
	}
}

// UsersByID returns the loader that fetches users limited to fields.
// Calls with the same field set share one loader and therefore one batch.
func (l *Loaders) UsersByID(fields []domain.UserField) *dataloader.Loader[string, *domain.User] {
	sig := signature(fields)

	l.mu.Lock()
	defer l.mu.Unlock()

	if loader, ok := l.usersByID[sig]; ok {
		return loader
	}
	loader := newLoader(newUsersBatchFn(l.repos.User, fields))
	l.usersByID[sig] = loader
	return loader
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

func newUsersBatchFn(repo userRepo, fields []domain.UserField) dataloader.BatchFunc[string, *domain.User] {
	fields = append([]domain.UserField(nil), fields...)

	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys, fields)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[string]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			if u, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.User]{Data: u}
			} else {
				results[i] = &dataloader.Result[*domain.User]{Error: domain.ErrNotFound}
			}
		}
		return results
	}
}

// signature is the canonical cache key of a field set.
func signature(fields []domain.UserField) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// errorResults creates n results all containing the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

// Middleware attaches a fresh Loaders to every request so batches and caches
// never outlive one GraphQL operation.
func Middleware(repos Repos) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(repos))))
		})
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
