// Package metrics provides Prometheus metrics for the bizmatch service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// matchScoreBuckets follow the score bands used for labels.
var matchScoreBuckets = []float64{20, 25, 40, 60, 80, 100} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the bizmatch service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Matching
	scoringPasses      *prometheus.CounterVec
	scoringLatency     prometheus.Histogram
	modelsScored       prometheus.Counter
	matchScores        prometheus.Histogram
	recommendations    prometheus.Counter
	catalogModels      prometheus.Gauge
	validationFailures prometheus.Counter

	// Sessions
	sessionsCreated prometheus.Counter
	sessionsDeleted prometheus.Counter
	answersSaved    *prometheus.CounterVec

	// Answer store
	storeLatency *prometheus.HistogramVec
	storeErrors  *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "bizmatch",
		subsystem:        "matcher",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     buckets,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric family
	auto := promauto.With(m.registry)

	m.scoringPasses = auto.NewCounterVec(
		m.counterOpts("scoring_passes_total", "Total number of scoring passes by kind (rank or detail)"),
		[]string{"kind"},
	)
	m.scoringLatency = auto.NewHistogram(
		m.histogramOpts("scoring_latency_milliseconds", "Latency of one scoring pass in milliseconds", m.histogramBuckets),
	)
	m.modelsScored = auto.NewCounter(
		m.counterOpts("models_scored_total", "Total number of business models scored"),
	)
	m.matchScores = auto.NewHistogram(
		m.histogramOpts("match_score", "Distribution of match percentages handed out", matchScoreBuckets),
	)
	m.recommendations = auto.NewCounter(
		m.counterOpts("recommendations_served_total", "Total number of recommendations returned to callers"),
	)
	m.catalogModels = auto.NewGauge(
		m.gaugeOpts("catalog_models", "Number of business models in the loaded catalog"),
	)
	m.validationFailures = auto.NewCounter(
		m.counterOpts("answer_validation_failures_total", "Total number of rejected answer submissions"),
	)

	m.sessionsCreated = auto.NewCounter(
		m.counterOpts("sessions_created_total", "Total number of questionnaire sessions created"),
	)
	m.sessionsDeleted = auto.NewCounter(
		m.counterOpts("sessions_deleted_total", "Total number of questionnaire sessions deleted"),
	)
	m.answersSaved = auto.NewCounterVec(
		m.counterOpts("answers_saved_total", "Total number of answers persisted by mode (replace or append)"),
		[]string{"mode"},
	)

	m.storeLatency = auto.NewHistogramVec(
		m.histogramOpts("store_operation_latency_milliseconds", "Answer store operation latency in milliseconds", m.histogramBuckets),
		[]string{"backend", "op"},
	)
	m.storeErrors = auto.NewCounterVec(
		m.counterOpts("store_errors_total", "Total number of failed answer store operations"),
		[]string{"backend", "op"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)

	m.systemMemoryUsage = auto.NewGauge(
		m.gaugeOpts("system_memory_usage_bytes", "Heap memory in use in bytes"),
	)
	m.systemGoroutineCount = auto.NewGauge(
		m.gaugeOpts("system_goroutine_count", "Number of goroutines"),
	)
}

// RecordScoringPass counts one scoring pass of the given kind.
func RecordScoringPass(kind string) {
	globalManager.scoringPasses.WithLabelValues(kind).Inc()
}

// RecordScoringLatency records scoring latency in milliseconds.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordModelsScored adds n to the models scored counter.
func RecordModelsScored(n int) {
	globalManager.modelsScored.Add(float64(n))
}

// RecordMatchScore observes a match percentage.
func RecordMatchScore(score int) {
	globalManager.matchScores.Observe(float64(score))
}

// RecordRecommendationsServed adds n to the served recommendations counter.
func RecordRecommendationsServed(n int) {
	globalManager.recommendations.Add(float64(n))
}

// UpdateCatalogModels sets the catalog size.
func UpdateCatalogModels(count int) {
	globalManager.catalogModels.Set(float64(count))
}

// RecordValidationFailure increments the rejected submissions counter.
func RecordValidationFailure() {
	globalManager.validationFailures.Inc()
}

// RecordSessionCreated increments the created sessions counter.
func RecordSessionCreated() {
	globalManager.sessionsCreated.Inc()
}

// RecordSessionDeleted increments the deleted sessions counter.
func RecordSessionDeleted() {
	globalManager.sessionsDeleted.Inc()
}

// RecordAnswersSaved adds n answers persisted with the given mode.
func RecordAnswersSaved(mode string, n int) {
	globalManager.answersSaved.WithLabelValues(mode).Add(float64(n))
}

// RecordStoreLatency records the latency of one store operation.
func RecordStoreLatency(backend, op string, latencyMs float64) {
	globalManager.storeLatency.WithLabelValues(backend, op).Observe(latencyMs)
}

// RecordStoreError increments the store error counter.
func RecordStoreError(backend, op string) {
	globalManager.storeErrors.WithLabelValues(backend, op).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage sets the heap memory in use.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
