// Package metrics holds the Prometheus instruments exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the HTTP layer, the OAuth provider
// calls and the contact relay. All methods are safe on a nil receiver.
type Metrics struct {
	// HTTP requests by route pattern, method and status code
	HTTPRequests *prometheus.CounterVec

	// HTTP handling latency by route pattern
	HTTPDuration *prometheus.HistogramVec

	// Outbound OAuth provider call latency by operation and outcome
	ProviderCalls *prometheus.HistogramVec

	// Authentication outcomes by operation ("initial", "check")
	AuthOutcomes *prometheus.CounterVec

	// Contact messages by outcome
	ContactMessages *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "site_api_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "site_api_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling by route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),

		ProviderCalls: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "site_api_oauth_provider_call_duration_seconds",
			Help:    "Duration of calls to the OAuth provider by operation and outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation", "outcome"}),

		AuthOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "site_api_auth_outcomes_total",
			Help: "Authentication outcomes by operation and result",
		}, []string{"operation", "outcome"}),

		ContactMessages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "site_api_contact_messages_total",
			Help: "Contact form messages by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest records one handled request.
func (m *Metrics) ObserveHTTPRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, status).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveProviderCall records the duration of one outbound provider call.
func (m *Metrics) ObserveProviderCall(operation, outcome string, d time.Duration) {
	if m != nil {
		m.ProviderCalls.WithLabelValues(operation, outcome).Observe(d.Seconds())
	}
}

// IncrementAuthOutcome records the result of an authentication attempt.
func (m *Metrics) IncrementAuthOutcome(operation, outcome string) {
	if m != nil {
		m.AuthOutcomes.WithLabelValues(operation, outcome).Inc()
	}
}

// IncrementContactMessage records the result of a contact relay attempt.
func (m *Metrics) IncrementContactMessage(outcome string) {
	if m != nil {
		m.ContactMessages.WithLabelValues(outcome).Inc()
	}
}
