package metrics

import (
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every exported metric
const Namespace = "remitbridge"

// PrometheusMetrics implements core.Metrics with Prometheus collectors
type PrometheusMetrics struct {
	quotes         *prometheus.CounterVec
	webhooks       *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	bridgeAttempts *prometheus.HistogramVec
	providerCalls  *prometheus.CounterVec
	breakerState   *prometheus.GaugeVec
	httpRequests   *prometheus.HistogramVec
}

var _ core.Metrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates and registers the collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "quotes_served_total",
				Help:      "Quotes returned, by delivery speed and pricing source.",
			},
			[]string{"speed", "source"},
		),
		webhooks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "webhooks_processed_total",
				Help:      "Provider webhooks handled, by kind and result.",
			},
			[]string{"kind", "result"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "status_transitions_total",
				Help:      "Transaction status transitions.",
			},
			[]string{"from", "to"},
		),
		bridgeAttempts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "bridge_attempt_seconds",
				Help:      "Duration of bridge attempts, by outcome.",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"outcome"},
		),
		providerCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "provider_calls_total",
				Help:      "Calls to external providers, by provider, operation and outcome.",
			},
			[]string{"provider", "operation", "outcome"},
		),
		breakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "circuitbreaker_state",
				Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open).",
			},
			[]string{"breaker"},
		),
		httpRequests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_seconds",
				Help:      "HTTP request latency, by route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	reg.MustRegister(
		m.quotes,
		m.webhooks,
		m.transitions,
		m.bridgeAttempts,
		m.providerCalls,
		m.breakerState,
		m.httpRequests,
	)
	return m
}

// QuoteServed implements core.Metrics
func (m *PrometheusMetrics) QuoteServed(speed, source string) {
	m.quotes.WithLabelValues(speed, source).Inc()
}

// WebhookProcessed implements core.Metrics
func (m *PrometheusMetrics) WebhookProcessed(kind, result string) {
	m.webhooks.WithLabelValues(kind, result).Inc()
}

// StatusChanged implements core.Metrics
func (m *PrometheusMetrics) StatusChanged(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

// BridgeAttempt implements core.Metrics
func (m *PrometheusMetrics) BridgeAttempt(outcome string, elapsed core.Duration) {
	m.bridgeAttempts.WithLabelValues(outcome).Observe(elapsed.Std().Seconds())
}

// ProviderCall implements core.Metrics
func (m *PrometheusMetrics) ProviderCall(provider, operation, outcome string) {
	m.providerCalls.WithLabelValues(provider, operation, outcome).Inc()
}

// BreakerState records a circuit breaker state change
func (m *PrometheusMetrics) BreakerState(breaker string, state int) {
	m.breakerState.WithLabelValues(breaker).Set(float64(state))
}

// HTTPRequest records a served request
func (m *PrometheusMetrics) HTTPRequest(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Observe(seconds)
}
