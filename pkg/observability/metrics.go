package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avelarq/remesa/pkg/domain"
)

// Metrics collects counters for the dialogue surface. Each instance owns
// its own registry so tests and embedded services never collide on
// duplicate registration.
type Metrics struct {
	registry *prometheus.Registry

	turns        *prometheus.CounterVec
	turnDuration prometheus.Histogram
	turnErrors   prometheus.Counter
	transfers    prometheus.Counter
}

// NewMetrics creates a metric set backed by a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		turns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "remesa",
			Name:      "turns_total",
			Help:      "Processed conversational turns, labeled by the action taken.",
		}, []string{"action"}),
		turnDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "remesa",
			Name:      "turn_duration_seconds",
			Help:      "Wall-clock latency of a single turn, including persistence.",
			Buckets:   prometheus.DefBuckets,
		}),
		turnErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "remesa",
			Name:      "turn_errors_total",
			Help:      "Turns that failed before producing a response.",
		}),
		transfers: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "remesa",
			Name:      "transfers_executed_total",
			Help:      "Transfers that reached successful execution.",
		}),
	}
}

// ObserveTurn records the outcome and latency of one processed turn.
func (m *Metrics) ObserveTurn(action domain.Action, elapsed time.Duration) {
	m.turns.WithLabelValues(string(action)).Inc()
	m.turnDuration.Observe(elapsed.Seconds())
	if action == domain.ActionExecuted {
		m.transfers.Inc()
	}
}

// ObserveError records a turn that errored out.
func (m *Metrics) ObserveError() {
	m.turnErrors.Inc()
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
