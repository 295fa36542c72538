// Package rest serves the plain HTTP endpoints next to GraphQL: liveness,
// readiness and health.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is a named backend the service cannot serve without.
type Dependency struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	deps    []Dependency
	version string
}

// NewHealthHandler creates a HealthHandler over deps.
func NewHealthHandler(version string, deps ...Dependency) *HealthHandler {
	return &HealthHandler{deps: deps, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 200 when every dependency answers a ping, 503 otherwise.
// Only failing components are listed.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	for name, c := range components {
		if c.Status == statusOK {
			delete(components, name)
		}
	}

	resp := HealthResponse{Status: statusOK, Components: components, Timestamp: time.Now()}
	code := http.StatusOK
	if !ok {
		resp.Status = statusDown
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// Health reports every dependency with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	resp := HealthResponse{Status: statusOK, Version: h.version, Components: components, Timestamp: time.Now()}
	code := http.StatusOK
	if !ok {
		resp.Status = statusDown
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// check pings all dependencies concurrently within probeTimeout.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.deps))
		healthy    = true
	)

	var g errgroup.Group
	for _, d := range h.deps {
		g.Go(func() error {
			start := time.Now()
			err := d.Pinger.Ping(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[d.Name] = CompStatus{Status: statusDown, Error: err.Error()}
				healthy = false
				return nil
			}
			components[d.Name] = CompStatus{Status: statusOK, Latency: latency.String()}
			return nil
		})
	}
	_ = g.Wait()

	return components, healthy
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
