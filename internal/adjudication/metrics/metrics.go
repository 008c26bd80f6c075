// Package metrics provides observability for the adjudication module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the adjudication module's Prometheus metrics. All methods
// are nil-safe so tests can run without a registry.
type Metrics struct {
	// Adjudication outcomes by disposition and score provenance.
	Outcomes *prometheus.CounterVec

	// External analyzer call latency.
	AnalyzerLatency prometheus.Histogram

	// Absorbed analyzer failures that triggered the fallback scorer.
	AnalyzerFallbacks prometheus.Counter

	// Full adjudication latency including the analyzer call.
	AdjudicateLatency prometheus.Histogram
}

// New creates a Metrics instance with all adjudication metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trustlynk_adjudication_outcomes_total",
			Help: "Total adjudication outcomes by disposition and provenance",
		}, []string{"disposition", "provenance"}),

		AnalyzerLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "trustlynk_analyzer_call_duration_seconds",
			Help:    "Duration of external fraud analyzer calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		AnalyzerFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trustlynk_analyzer_fallbacks_total",
			Help: "Analyzer failures absorbed by the synthetic fallback scorer",
		}),

		AdjudicateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "trustlynk_adjudication_duration_seconds",
			Help:    "Duration of full claim adjudication",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementOutcome records one adjudication outcome.
func (m *Metrics) IncrementOutcome(disposition, provenance string) {
	if m != nil {
		m.Outcomes.WithLabelValues(disposition, provenance).Inc()
	}
}

// ObserveAnalyzerLatency records the duration of one analyzer call.
func (m *Metrics) ObserveAnalyzerLatency(d time.Duration) {
	if m != nil {
		m.AnalyzerLatency.Observe(d.Seconds())
	}
}

// IncrementFallback records an absorbed analyzer failure.
func (m *Metrics) IncrementFallback() {
	if m != nil {
		m.AnalyzerFallbacks.Inc()
	}
}

// ObserveAdjudicateLatency records the total adjudication duration.
func (m *Metrics) ObserveAdjudicateLatency(d time.Duration) {
	if m != nil {
		m.AdjudicateLatency.Observe(d.Seconds())
	}
}
