package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the case processing pipeline.
type Metrics struct {
	// Processed cases by outcome and case type
	Processed *prometheus.CounterVec

	// Stage latencies
	StageLatency *prometheus.HistogramVec

	// Whole pipeline latency
	PipelineLatency prometheus.Histogram
}

// New creates a new Metrics instance with all pipeline metrics registered.
// Call once per process; tests pass a nil *Metrics instead.
func New() *Metrics {
	return &Metrics{
		Processed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_cases_processed_total",
			Help: "Total processed cases by outcome and case type",
		}, []string{"outcome", "case_type"}), // outcome: "success", "failed"

		StageLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caseflow_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"stage"}),

		PipelineLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caseflow_pipeline_duration_seconds",
			Help:    "Duration of full case processing runs",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementProcessed records one finished run.
func (m *Metrics) IncrementProcessed(outcome, caseType string) {
	if m != nil {
		m.Processed.WithLabelValues(outcome, caseType).Inc()
	}
}

// ObserveStage records the duration of one pipeline stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// ObservePipeline records the duration of one whole run.
func (m *Metrics) ObservePipeline(d time.Duration) {
	if m != nil {
		m.PipelineLatency.Observe(d.Seconds())
	}
}
