// Package metrics provides Prometheus metrics for the coin converter service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Piece counts grow roughly with amount/10000, so the buckets are exponential.
var defaultPieceBuckets = prometheus.ExponentialBuckets(1, 2, 16)

// Manager owns every metric the service exports.
// A disabled Manager accepts observations and drops them.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	enabled        bool
	registry       *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	conversions         *prometheus.CounterVec
	conversionPieces    *prometheus.HistogramVec
	conversionRemainder prometheus.Counter
	conversionErrors    *prometheus.CounterVec
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh registry that also carries the Go and process collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "coin_converter",
		subsystem:      "api",
		latencyBuckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		enabled:        true,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.latencyBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.conversions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversions_total",
			Help:      "Total number of successful conversions by kind",
		},
		[]string{"kind"},
	)

	m.conversionPieces = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversion_pieces",
			Help:      "Number of bills and coins handed out per conversion",
			Buckets:   defaultPieceBuckets,
		},
		[]string{"kind"},
	)

	m.conversionRemainder = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "conversion_remainder_cents_total",
		Help:      "Cents left over by bills-only conversions",
	})

	m.conversionErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversion_errors_total",
			Help:      "Total number of rejected conversions by kind",
		},
		[]string{"kind"},
	)
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Manager) RecordHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}
	code := strconv.Itoa(statusCode)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(float64(duration) / float64(time.Millisecond))
}

// RecordConversion records a successful conversion of the given kind.
func (m *Manager) RecordConversion(kind string, pieces, remainderCents int64) {
	if !m.enabled {
		return
	}
	m.conversions.WithLabelValues(kind).Inc()
	m.conversionPieces.WithLabelValues(kind).Observe(float64(pieces))
	if remainderCents > 0 {
		m.conversionRemainder.Add(float64(remainderCents))
	}
}

// RecordConversionError records a rejected conversion of the given kind.
func (m *Manager) RecordConversionError(kind string) {
	if !m.enabled {
		return
	}
	m.conversionErrors.WithLabelValues(kind).Inc()
}

// Enabled reports whether observations are being recorded.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
