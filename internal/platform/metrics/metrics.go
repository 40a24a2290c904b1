// Package metrics holds the Prometheus collectors shared by the console and its API client.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics records outbound calls to the Product API.
type ClientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientMetrics registers the collectors on reg. A nil reg leaves them unregistered.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	m := &ClientMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "product_console",
			Name:      "api_requests_total",
			Help:      "Requests sent to the Product API, by operation and outcome.",
		}, []string{"operation", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "product_console",
			Name:      "api_request_duration_seconds",
			Help:      "Latency of Product API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// Observe records one call. statusCode 0 means the request never got a response.
func (m *ClientMetrics) Observe(operation string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "network_error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	m.requests.WithLabelValues(operation, code).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RequestCount returns the counter for operation/code. Exposed for tests and diagnostics.
func (m *ClientMetrics) RequestCount(operation, code string) prometheus.Counter {
	return m.requests.WithLabelValues(operation, code)
}
