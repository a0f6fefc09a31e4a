// Package metrics provides Prometheus metrics for the scorebook
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Aggregation and reporting
	summariesComputed prometheus.Counter
	reportsGenerated  prometheus.Counter
	reportBytes       prometheus.Histogram

	// Registration
	registrationsAccepted prometheus.Counter
	registrationsRejected prometheus.Counter
	validationFailures    *prometheus.CounterVec

	// Roster state
	matchesRecorded prometheus.Counter
	playersTracked  prometheus.Gauge
	accountsTracked prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global manager on a custom registry, so default Go runtime
// collectors stay out of the scrape.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scorebook",
		subsystem:        "teams",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.register()
	return m
}

func (m *Manager) register() {
	auto := promauto.With(m.registry)

	m.summariesComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "summaries_computed_total",
		Help:      "Total number of team summaries computed",
	})
	m.reportsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_generated_total",
		Help:      "Total number of CSV reports serialized",
	})
	m.reportBytes = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_bytes",
		Help:      "Size distribution of serialized reports in bytes",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
	})

	m.registrationsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "registrations_accepted_total",
		Help:      "Total number of registrations that passed validation and were stored",
	})
	m.registrationsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "registrations_rejected_total",
		Help:      "Total number of registrations rejected by validation",
	})
	m.validationFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Validation rule failures by field",
	}, []string{"field"})

	m.matchesRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_recorded_total",
		Help:      "Total number of match scores folded into player records",
	})
	m.playersTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_tracked",
		Help:      "Current number of player records stored",
	})
	m.accountsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "accounts_tracked",
		Help:      "Current number of registered accounts",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// Package-level helpers operating on the global manager.

func RecordSummaryComputed() { globalManager.summariesComputed.Inc() }

func RecordReportGenerated(sizeBytes int) {
	globalManager.reportsGenerated.Inc()
	globalManager.reportBytes.Observe(float64(sizeBytes))
}

func RecordRegistrationAccepted() { globalManager.registrationsAccepted.Inc() }

func RecordRegistrationRejected(fields []string) {
	globalManager.registrationsRejected.Inc()
	for _, field := range fields {
		globalManager.validationFailures.WithLabelValues(field).Inc()
	}
}

func RecordMatchRecorded() { globalManager.matchesRecorded.Inc() }

func UpdatePlayersTracked(count int)  { globalManager.playersTracked.Set(float64(count)) }
func UpdateAccountsTracked(count int) { globalManager.accountsTracked.Set(float64(count)) }

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// GetRegistry exposes the custom registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
