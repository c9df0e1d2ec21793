package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the provider clients.
type Metrics struct {
	// Fetch latencies by source
	FetchLatency *prometheus.HistogramVec

	// Fetch outcomes by source and result
	FetchOutcome *prometheus.CounterVec

	// Retry attempts by source
	Retries *prometheus.CounterVec
}

// New creates a new Metrics instance with all provider metrics registered.
// Call once per process; tests pass a nil *Metrics instead.
func New() *Metrics {
	return &Metrics{
		FetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caseflow_provider_fetch_duration_seconds",
			Help:    "Duration of provider fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"source"}),

		FetchOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_provider_fetch_outcomes_total",
			Help: "Total provider fetch outcomes by source and result",
		}, []string{"source", "outcome"}), // outcome: "ok", "unavailable"

		Retries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_provider_retries_total",
			Help: "Total provider retry attempts by source",
		}, []string{"source"}),
	}
}

// ObserveFetch records one settled fetch.
func (m *Metrics) ObserveFetch(source string, d time.Duration, ok bool) {
	if m == nil {
		return
	}
	m.FetchLatency.WithLabelValues(source).Observe(d.Seconds())
	outcome := "unavailable"
	if ok {
		outcome = "ok"
	}
	m.FetchOutcome.WithLabelValues(source, outcome).Inc()
}

// IncrementRetry records one retry attempt.
func (m *Metrics) IncrementRetry(source string) {
	if m == nil {
		return
	}
	m.Retries.WithLabelValues(source).Inc()
}
