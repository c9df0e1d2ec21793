package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the event publisher.
type Metrics struct {
	// Publish failures by channel
	Failures *prometheus.CounterVec

	// Payment escalations
	Escalations prometheus.Counter
}

// New creates a new Metrics instance with all publisher metrics registered.
// Call once per process; tests pass a nil *Metrics instead.
func New() *Metrics {
	return &Metrics{
		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_publish_failures_total",
			Help: "Total publish failures by channel",
		}, []string{"channel"}), // channel: "broadcast", "payment", "document"

		Escalations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_payment_escalations_total",
			Help: "Total payment enqueue failures escalated to the alert topic",
		}),
	}
}

// IncrementFailure records one failed delivery on the given channel.
func (m *Metrics) IncrementFailure(channel string) {
	if m != nil {
		m.Failures.WithLabelValues(channel).Inc()
	}
}

// IncrementEscalation records one payment escalation.
func (m *Metrics) IncrementEscalation() {
	if m != nil {
		m.Escalations.Inc()
	}
}
