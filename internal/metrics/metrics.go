package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio_chat"

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	chatRequests     *prometheus.CounterVec
	chatDuration     *prometheus.HistogramVec
	chatFailures     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	rateLimitRejects prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// Labels: category, outcome (refused, answered, failed)
		chatRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Chat messages handled by category and outcome",
		}, []string{"category", "outcome"}),

		chatDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "handle_duration_seconds",
			Help:      "Time to produce a chat reply",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"category"}),

		// Labels: stage (store, classify, retrieve, generate)
		chatFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "failures_total",
			Help:      "Generation path failures by stage",
		}, []string{"stage"}),

		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		rateLimitRejects: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}
}

// ObserveChat records one handled chat message.
func (m *Metrics) ObserveChat(category, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.chatRequests.WithLabelValues(category, outcome).Inc()
	m.chatDuration.WithLabelValues(category).Observe(d.Seconds())
}

// IncChatFailure counts a failure at stage.
func (m *Metrics) IncChatFailure(stage string) {
	if m == nil {
		return
	}
	m.chatFailures.WithLabelValues(stage).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// IncRateLimited counts a request rejected by the rate limiter.
func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.rateLimitRejects.Inc()
}
