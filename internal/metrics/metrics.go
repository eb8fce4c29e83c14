package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmytroh/fxpulse/internal/domain/models"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	HistoryRequestsTotal prometheus.Counter
	DayFetchesTotal      *prometheus.CounterVec
	WSClients            prometheus.Gauge
	WSMessagesTotal      prometheus.Counter
}

// NewMetrics registers all collectors on reg. Production code passes
// prometheus.DefaultRegisterer; tests pass a fresh registry so repeated
// construction does not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		HistoryRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "history_requests_total",
				Help: "Total number of exchange history requests",
			},
		),

		DayFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "day_fetches_total",
				Help: "Per-date fetch outcomes of history requests",
			},
			[]string{"outcome"},
		),

		WSClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ws_connected_clients",
				Help: "Currently connected websocket clients",
			},
		),

		WSMessagesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ws_messages_total",
				Help: "Total number of websocket messages received",
			},
		),
	}
}

// ObserveHistory counts one history request and its per-date outcomes.
func (m *Metrics) ObserveHistory(res models.HistoryResult) {
	m.HistoryRequestsTotal.Inc()
	if n := len(res.Days); n > 0 {
		m.DayFetchesTotal.WithLabelValues("ok").Add(float64(n))
	}
	for _, kind := range res.Failures {
		m.DayFetchesTotal.WithLabelValues(kind).Inc()
	}
}
