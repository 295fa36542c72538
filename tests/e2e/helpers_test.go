//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	mongouser "github.com/heartmarshall/usergraph-backend/internal/adapter/mongodb/user"
	"github.com/heartmarshall/usergraph-backend/internal/adapter/mongodb/testhelper"
	"github.com/heartmarshall/usergraph-backend/internal/app"
	authpkg "github.com/heartmarshall/usergraph-backend/internal/auth"
	"github.com/heartmarshall/usergraph-backend/internal/config"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlUser extracts a user object from the data map; nil when the field is null.
func gqlUser(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	v, ok := data[field]
	require.True(t, ok, "expected %q in data", field)
	if v == nil {
		return nil
	}
	u, ok := v.(map[string]any)
	require.True(t, ok, "expected object for %q", field)
	return u
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errs, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errs)

	firstErr, ok := errs[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Users  *mongouser.Repo
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// dbPinger adapts a database handle to the readiness probe.
type dbPinger struct{ db *mongo.Database }

func (p dbPinger) Ping(ctx context.Context) error {
	return p.db.Client().Ping(ctx, nil)
}

type serverOption func(*config.Config)

func withAuth() serverOption {
	return func(cfg *config.Config) { cfg.Auth.JWTSecret = jwtSecret }
}

func withMaxDepth(n int) serverOption {
	return func(cfg *config.Config) { cfg.GraphQL.MaxDepth = n }
}

// setupTestServer bootstraps the full application stack backed by a fresh
// database on the shared MongoDB container.
func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	db := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Mongo:     config.MongoConfig{Database: db.Name(), Collection: "users"},
		Auth:      config.AuthConfig{JWTIssuer: jwtIssuer, TokenTTL: 15 * time.Minute},
		GraphQL:   config.GraphQLConfig{MaxDepth: 8, PlaygroundEnabled: true},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Authorization,Content-Type"},
		RateLimit: config.RateLimitConfig{CleanupInterval: time.Minute},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	users := mongouser.New(db.Collection(cfg.Mongo.Collection))

	router, err := app.NewRouter(app.RouterDeps{
		Config:   cfg,
		Logger:   logger,
		Users:    users,
		DB:       dbPinger{db: db},
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		router.Close()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Users:  users,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, cfg.Auth.TokenTTL),
	}
}

// token mints a bearer token for subject.
func (ts *testServer) token(t *testing.T, subject string) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(subject)
	require.NoError(t, err)
	return tok
}

// graphqlQuery POSTs a GraphQL operation and decodes the JSON response.
func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/graphql", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return resp.StatusCode, result
}

// createUser runs the createUser mutation and returns the new id.
func (ts *testServer) createUser(t *testing.T, name, token string) string {
	t.Helper()

	_, result := ts.graphqlQuery(t,
		`mutation($name: String) { createUser(name: $name) { id } }`,
		map[string]any{"name": name}, token)
	requireNoErrors(t, result)

	id, ok := gqlUser(t, result, "createUser")["id"].(string)
	require.True(t, ok)
	return id
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
