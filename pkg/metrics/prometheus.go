package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	remoteCalls   *prometheus.CounterVec
	remoteLatency *prometheus.HistogramVec
	staleResults  *prometheus.CounterVec
	phases        *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder registered on the default registry.
func New() *Recorder {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates a recorder registered on reg.
func NewWith(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		remoteCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nivesh_remote_calls_total",
				Help: "Total number of calls to the prediction service",
			},
			[]string{"operation", "outcome"},
		),
		remoteLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nivesh_remote_call_duration_seconds",
				Help:    "Duration of calls to the prediction service in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		staleResults: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nivesh_stale_results_total",
				Help: "Fetch results dropped because the view moved on",
			},
			[]string{"slot"},
		),
		phases: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nivesh_view_phase_transitions_total",
				Help: "Detail view phase transitions",
			},
			[]string{"phase"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nivesh_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

// RecordRemoteCall records one call to the prediction service.
func (r *Recorder) RecordRemoteCall(op, outcome string, seconds float64) {
	r.remoteCalls.WithLabelValues(op, outcome).Inc()
	r.remoteLatency.WithLabelValues(op).Observe(seconds)
}

// RecordStaleResult records a result dropped by the staleness guard.
func (r *Recorder) RecordStaleResult(slot string) {
	r.staleResults.WithLabelValues(slot).Inc()
}

// RecordPhase records a view entering phase.
func (r *Recorder) RecordPhase(phase string) {
	r.phases.WithLabelValues(phase).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
