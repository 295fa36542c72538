package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
	"github.com/heartmarshall/usergraph-backend/pkg/ctxutil"
)

// ErrorPresenterFunc rewrites one execution error before it reaches the client.
type ErrorPresenterFunc func(ctx context.Context, err gqlerrors.FormattedError) gqlerrors.FormattedError

// NewErrorPresenter returns an error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) ErrorPresenterFunc {
	return func(ctx context.Context, gqlErr gqlerrors.FormattedError) gqlerrors.FormattedError {
		origErr := resolverError(gqlErr)
		if origErr == nil {
			// Syntax, validation and variable errors come from the engine itself.
			return gqlErr
		}

		code := domain.CodeOf(origErr)
		gqlErr.Extensions = map[string]interface{}{"code": code}

		switch code {
		case domain.CodeValidation:
			var ve *domain.ValidationError
			if errors.As(origErr, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}

		case domain.CodeInternal:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", origErr.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
				slog.Any("path", gqlErr.Path),
			)
			gqlErr.Message = "internal error"
		}

		return gqlErr
	}
}

// PresentAll applies present to every error in errs.
func PresentAll(ctx context.Context, present ErrorPresenterFunc, errs []gqlerrors.FormattedError) []gqlerrors.FormattedError {
	if len(errs) == 0 {
		return errs
	}
	out := make([]gqlerrors.FormattedError, len(errs))
	for i, e := range errs {
		out[i] = present(ctx, e)
	}
	return out
}

// resolverError returns the error a resolver produced, or nil when the
// engine raised the error on its own. Resolver errors always arrive located
// at a field, so anything else belongs to the engine.
func resolverError(gqlErr gqlerrors.FormattedError) error {
	located, ok := gqlErr.OriginalError().(*gqlerrors.Error)
	if !ok {
		return nil
	}
	// Errors returned from deferred resolvers arrive formatted once more.
	if inner, ok := located.OriginalError.(gqlerrors.FormattedError); ok {
		return inner.OriginalError()
	}
	return located.OriginalError
}
