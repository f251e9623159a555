package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	HandlerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nivesh",
			Subsystem: "dashboard",
			Name:      "latency_seconds",
			Help:      "Latency of dashboard endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	HandlerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nivesh",
			Subsystem: "dashboard",
			Name:      "errors_total",
			Help:      "Errors by dashboard endpoint",
		},
		[]string{"endpoint"},
	)

	GenerateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nivesh",
			Subsystem: "dashboard",
			Name:      "generate_requests_total",
			Help:      "Forecast generation requests by outcome",
		},
		[]string{"outcome"},
	)

	ActiveViewers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "nivesh",
			Subsystem: "dashboard",
			Name:      "active_viewers",
			Help:      "Viewer sessions currently held in memory",
		},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(HandlerLatency, HandlerErrors, GenerateRequests, ActiveViewers)
	})
}
