package ctxutil

import "context"

type ctxKey string

const (
	subjectKey   ctxKey = "subject"
	requestIDKey ctxKey = "request_id"
	variablesKey ctxKey = "variables"
)

// WithSubject stores the authenticated token subject in the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromCtx extracts the token subject from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithVariables stores the GraphQL variables exactly as the client sent them.
func WithVariables(ctx context.Context, vars map[string]interface{}) context.Context {
	return context.WithValue(ctx, variablesKey, vars)
}

// VariablesFromCtx returns the raw GraphQL variables, or nil if absent.
func VariablesFromCtx(ctx context.Context) map[string]interface{} {
	vars, _ := ctx.Value(variablesKey).(map[string]interface{})
	return vars
}
