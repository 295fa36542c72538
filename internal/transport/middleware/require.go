package middleware

import (
	"context"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
	"github.com/heartmarshall/usergraph-backend/pkg/ctxutil"
)

// RequireSubject returns domain.ErrUnauthorized if the context carries no
// authenticated subject. Use in resolver methods or REST handlers, not as
// HTTP middleware.
func RequireSubject(ctx context.Context) error {
	if _, ok := ctxutil.SubjectFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
