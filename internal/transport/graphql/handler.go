package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/heartmarshall/usergraph-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// Handler serves GraphQL over HTTP.
type Handler struct {
	schema   graphql.Schema
	present  ErrorPresenterFunc
	maxDepth int
	metrics  *Metrics
	log      *slog.Logger
}

// HandlerConfig configures a Handler. Metrics may be nil.
type HandlerConfig struct {
	Schema   graphql.Schema
	MaxDepth int
	Metrics  *Metrics
	Logger   *slog.Logger
}

// NewHandler creates a GraphQL HTTP handler.
func NewHandler(cfg HandlerConfig) *Handler {
	log := cfg.Logger.With("component", "graphql_http")
	return &Handler{
		schema:   cfg.Schema,
		present:  NewErrorPresenter(log),
		maxDepth: cfg.MaxDepth,
		metrics:  cfg.Metrics,
		log:      log,
	}
}

// Request is a GraphQL request in its JSON transport form.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Response is the JSON body written for every executed or rejected operation.
type Response struct {
	Data   interface{}                `json:"data"`
	Errors []gqlerrors.FormattedError `json:"errors,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		var status *statusError
		if errors.As(err, &status) {
			writeJSON(w, status.code, Response{Errors: []gqlerrors.FormattedError{gqlerrors.NewFormattedError(status.Error())}})
			return
		}
		writeJSON(w, http.StatusBadRequest, Response{Errors: []gqlerrors.FormattedError{gqlerrors.NewFormattedError(err.Error())}})
		return
	}

	ctx := r.Context()

	// Unparseable documents fall through; the executor reports syntax errors.
	analysis, _ := Analyze(req.Query, req.OperationName)

	if r.Method == http.MethodGet && analysis.Kind == OperationMutation {
		h.metrics.observe(analysis.Kind, outcomeRejected)
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, Response{Errors: []gqlerrors.FormattedError{
			gqlerrors.NewFormattedError("mutations must be sent with POST"),
		}})
		return
	}

	if h.maxDepth > 0 && analysis.Depth > h.maxDepth {
		h.metrics.observe(analysis.Kind, outcomeRejected)
		h.log.WarnContext(ctx, "query depth limit exceeded",
			slog.Int("depth", analysis.Depth),
			slog.Int("max_depth", h.maxDepth),
		)
		writeJSON(w, http.StatusOK, Response{Errors: []gqlerrors.FormattedError{depthError(analysis.Depth, h.maxDepth)}})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctxutil.WithVariables(ctx, req.Variables),
	})

	outcome := outcomeOK
	if result.HasErrors() {
		outcome = outcomeError
	}
	h.metrics.observe(analysis.Kind, outcome)

	writeJSON(w, http.StatusOK, Response{
		Data:   result.Data,
		Errors: PresentAll(ctx, h.present, result.Errors),
	})
}

func depthError(depth, limit int) gqlerrors.FormattedError {
	e := gqlerrors.NewFormattedError(fmt.Sprintf("query depth %d exceeds the limit of %d", depth, limit))
	e.Extensions = map[string]interface{}{"code": "DEPTH_LIMIT_EXCEEDED"}
	return e
}

type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string { return e.msg }

// decodeRequest reads a GraphQL request from query parameters (GET) or the
// body (POST, as application/json or application/graphql).
func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				return req, fmt.Errorf("variables must be a JSON object: %w", err)
			}
		}

	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		mediaType := "application/json"
		if ct := r.Header.Get("Content-Type"); ct != "" {
			parsed, _, err := mime.ParseMediaType(ct)
			if err != nil {
				return req, &statusError{code: http.StatusUnsupportedMediaType, msg: "invalid content type"}
			}
			mediaType = parsed
		}

		switch mediaType {
		case "application/json":
			if err := json.NewDecoder(body).Decode(&req); err != nil {
				return req, fmt.Errorf("invalid JSON body: %w", err)
			}
		case "application/graphql":
			raw, err := io.ReadAll(body)
			if err != nil {
				return req, fmt.Errorf("read body: %w", err)
			}
			req.Query = string(raw)
		default:
			return req, &statusError{code: http.StatusUnsupportedMediaType, msg: "unsupported content type " + mediaType}
		}

	default:
		w.Header().Set("Allow", "GET, POST")
		return req, &statusError{code: http.StatusMethodNotAllowed, msg: "method not allowed"}
	}

	if req.Query == "" {
		return req, errors.New("query is required")
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
