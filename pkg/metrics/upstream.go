package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics records latency and failures of shop API calls.
type UpstreamMetrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewUpstreamMetrics registers the upstream call metrics on the provided registerer.
func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	if reg == nil {
		return &UpstreamMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of shop API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "method"})
	errors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_request_errors_total",
		Help: "Failed shop API requests.",
	}, []string{"endpoint", "method"})
	reg.MustRegister(duration, errors)
	return &UpstreamMetrics{
		duration: duration,
		errors:   errors,
	}
}

// ObserveDuration records the duration for the named endpoint.
func (u *UpstreamMetrics) ObserveDuration(endpoint, method string, duration time.Duration) {
	if u == nil || u.duration == nil {
		return
	}
	u.duration.WithLabelValues(normalizeLabel(endpoint), normalizeLabel(method)).Observe(duration.Seconds())
}

// IncError increments the failure counter for the named endpoint.
func (u *UpstreamMetrics) IncError(endpoint, method string) {
	if u == nil || u.errors == nil {
		return
	}
	u.errors.WithLabelValues(normalizeLabel(endpoint), normalizeLabel(method)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
