package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/usergraph-backend/internal/auth"
	"github.com/heartmarshall/usergraph-backend/internal/config"
	"github.com/heartmarshall/usergraph-backend/internal/domain"
	"github.com/heartmarshall/usergraph-backend/internal/service/user"
	gql "github.com/heartmarshall/usergraph-backend/internal/transport/graphql"
	"github.com/heartmarshall/usergraph-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/usergraph-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/usergraph-backend/internal/transport/middleware"
	"github.com/heartmarshall/usergraph-backend/internal/transport/rest"
)

// UserStore is the persistence the HTTP stack needs: single-document CRUD
// for the service and id-set lookups for the friends dataloader.
type UserStore interface {
	GetByID(ctx context.Context, id string, fields []domain.UserField) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []string, fields []domain.UserField) ([]domain.User, error)
	Create(ctx context.Context, name *string) (*domain.User, error)
	UpdateName(ctx context.Context, id string, name *string, fields []domain.UserField) (*domain.User, error)
	Delete(ctx context.Context, id string, fields []domain.UserField) (*domain.User, error)
}

// Pinger reports store reachability for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps groups everything NewRouter wires together.
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Users    UserStore
	DB       Pinger
	Registry *prometheus.Registry
}

// Router is the root HTTP handler. Close releases background workers.
type Router struct {
	http.Handler
	closers []func()
}

// Close stops background workers started by NewRouter.
func (r *Router) Close() {
	for _, c := range r.closers {
		c()
	}
}

// NewRouter builds the HTTP routes:
//
//	/graphql     GraphQL over GET and POST
//	/playground  GraphQL playground (when enabled)
//	/live        liveness probe
//	/ready       readiness probe
//	/health      dependency status and version
//	/metrics     Prometheus exposition
func NewRouter(deps RouterDeps) (*Router, error) {
	cfg := deps.Config
	logger := deps.Logger
	router := &Router{}

	svc := user.NewService(logger, deps.Users)
	schema, err := gql.NewSchema(resolver.NewResolver(logger, svc, cfg.Auth.Enabled()))
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	graphqlHandler := gql.NewHandler(gql.HandlerConfig{
		Schema:   schema,
		MaxDepth: cfg.GraphQL.MaxDepth,
		Metrics:  gql.NewMetrics(deps.Registry),
		Logger:   logger,
	})

	httpMetrics := middleware.NewHTTPMetrics(deps.Registry)

	var limit, authn middleware.Middleware
	if rpm := cfg.RateLimit.RequestsPerMinute; rpm > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		router.closers = append(router.closers, limiter.Stop)
		limit = limiter.Limit(rpm)
	}
	if cfg.Auth.Enabled() {
		authn = middleware.Auth(auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL))
	}

	health := rest.NewHealthHandler(BuildVersion(), rest.Dependency{Name: "mongo", Pinger: deps.DB})
	probe := httpMetrics.Instrument("probe")

	mux := http.NewServeMux()
	// Logger sits inside Auth so access lines carry the token subject.
	mux.Handle("/graphql", middleware.Chain(
		httpMetrics.Instrument("graphql"),
		limit,
		authn,
		middleware.Logger(logger),
		dataloader.Middleware(dataloader.Repos{User: deps.Users}),
	)(graphqlHandler))
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", playground.Handler("usergraph", "/graphql"))
	}
	mux.Handle("GET /live", probe(http.HandlerFunc(health.Live)))
	mux.Handle("GET /ready", probe(http.HandlerFunc(health.Ready)))
	mux.Handle("GET /health", probe(http.HandlerFunc(health.Health)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	router.Handler = middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return router, nil
}
