package graphql

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for executed operations.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeRejected = "rejected"
)

// Metrics counts GraphQL operations by kind and outcome.
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics registers the GraphQL collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "usergraph",
			Subsystem: "graphql",
			Name:      "operations_total",
			Help:      "GraphQL operations by kind and outcome.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(m.operations)
	return m
}

func (m *Metrics) observe(kind OperationKind, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(string(kind), outcome).Inc()
}
