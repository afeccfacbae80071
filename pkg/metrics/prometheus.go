// Package metrics provides Prometheus instrumentation for the analytics
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric the service records.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Report engine
	reportsBuilt        prometheus.Counter
	reportErrors        prometheus.Counter
	reportBuildDuration prometheus.Histogram
	degradedSchedules   prometheus.Counter

	// Store
	storeQueryLatency *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry keeps default Go collectors out of /healthz output.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hirelens",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
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
			Help:      "Total HTTP requests by endpoint, method and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_errors_total",
			Help:      "Total HTTP error responses by endpoint and method",
		},
		[]string{"endpoint", "method"},
	)

	m.reportsBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_built_total",
		Help:      "Total analytics reports built successfully",
	})

	m.reportErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_errors_total",
		Help:      "Total report computations aborted by store failures",
	})

	m.reportBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_build_duration_milliseconds",
		Help:      "Report fetch-and-fold duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.degradedSchedules = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "degraded_schedule_reads_total",
		Help:      "Reports served with the schedule source absent",
	})

	m.storeQueryLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_query_latency_milliseconds",
			Help:      "Store query latency in milliseconds by operation",
			Buckets:   m.histogramBuckets,
		},
		[]string{"op"},
	)
}

// GetRegistry exposes the gatherer backing /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordHTTPRequest increments the request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes a request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByEndpoint increments the error counter for an endpoint.
func RecordErrorByEndpoint(endpoint, method string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method).Inc()
}

// RecordReportBuilt increments the successful-report counter.
func RecordReportBuilt() {
	globalManager.reportsBuilt.Inc()
}

// RecordReportError increments the aborted-report counter.
func RecordReportError() {
	globalManager.reportErrors.Inc()
}

// RecordReportBuildDuration observes a report build duration.
func RecordReportBuildDuration(ms float64) {
	globalManager.reportBuildDuration.Observe(ms)
}

// RecordDegradedScheduleRead notes a report served without a schedule source.
func RecordDegradedScheduleRead() {
	globalManager.degradedSchedules.Inc()
}

// RecordStoreQueryLatency observes a store query duration for op.
func RecordStoreQueryLatency(op string, ms float64) {
	globalManager.storeQueryLatency.WithLabelValues(op).Observe(ms)
}
