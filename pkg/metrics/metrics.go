// Package metrics provides Prometheus metrics for the scorebox scoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric the engine records.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Submission pipeline
	resultsSubmitted  prometheus.Counter
	resultsRemoved    prometheus.Counter
	resultsRejected   *prometheus.CounterVec
	batchItemOutcomes *prometheus.CounterVec

	// Ranking and aggregation
	rankingRuns         prometheus.Counter
	rankingDuration     prometheus.Histogram
	aggregationRuns     prometheus.Counter
	aggregationDuration prometheus.Histogram

	// Per-category serialization
	lockWaitDuration prometheus.Histogram
	lockTimeouts     prometheus.Counter

	// Store state
	resultCount   prometheus.Gauge
	categoryCount prometheus.Gauge

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets sets custom histogram buckets for latency metrics.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry sets the Prometheus registerer metrics attach to.
func WithRegistry(r prometheus.Registerer) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// Global manager on a custom registry, so default Go runtime metrics stay out
// of the scrape unless explicitly added.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry
var globalManager *Manager                    //nolint:gochecknoglobals // singleton manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scorebox",
		subsystem:        "engine",
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

	m.resultsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_submitted_total",
		Help:      "Total number of result submissions accepted",
	})

	m.resultsRemoved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_removed_total",
		Help:      "Total number of result records removed",
	})

	m.resultsRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_rejected_total",
		Help:      "Total number of rejected submissions by reason code",
	}, []string{"reason"})

	m.batchItemOutcomes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_items_total",
		Help:      "Total number of batch items by outcome",
	}, []string{"outcome"})

	m.rankingRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_runs_total",
		Help:      "Total number of workout ranking recomputations",
	})

	m.rankingDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_duration_milliseconds",
		Help:      "Histogram of workout ranking recomputation time in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.aggregationRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_runs_total",
		Help:      "Total number of category total recomputations",
	})

	m.aggregationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_duration_milliseconds",
		Help:      "Histogram of category total recomputation time in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.lockWaitDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_lock_wait_milliseconds",
		Help:      "Histogram of time spent waiting for the per-category lock",
		Buckets:   m.histogramBuckets,
	})

	m.lockTimeouts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_lock_timeouts_total",
		Help:      "Total number of submissions rejected because the category lock timed out",
	})

	m.resultCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_records",
		Help:      "Current number of stored result records",
	})

	m.categoryCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "categories",
		Help:      "Current number of known categories",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// Package-level helpers recording on the global manager.

// RecordResultSubmitted counts an accepted submission.
func RecordResultSubmitted() { globalManager.resultsSubmitted.Inc() }

// RecordResultRemoved counts a removed record.
func RecordResultRemoved() { globalManager.resultsRemoved.Inc() }

// RecordResultRejected counts a rejected submission by reason code.
func RecordResultRejected(reason string) {
	globalManager.resultsRejected.WithLabelValues(reason).Inc()
}

// RecordBatchItem counts one batch item outcome ("ok" or "failed").
func RecordBatchItem(outcome string) {
	globalManager.batchItemOutcomes.WithLabelValues(outcome).Inc()
}

// RecordRankingRun counts a ranking recomputation and its duration.
func RecordRankingRun(durationMs float64) {
	globalManager.rankingRuns.Inc()
	globalManager.rankingDuration.Observe(durationMs)
}

// RecordAggregationRun counts a total recomputation and its duration.
func RecordAggregationRun(durationMs float64) {
	globalManager.aggregationRuns.Inc()
	globalManager.aggregationDuration.Observe(durationMs)
}

// RecordLockWait observes time spent acquiring a category lock.
func RecordLockWait(durationMs float64) {
	globalManager.lockWaitDuration.Observe(durationMs)
}

// RecordLockTimeout counts a category lock acquisition timeout.
func RecordLockTimeout() { globalManager.lockTimeouts.Inc() }

// UpdateResultCount sets the stored result record gauge.
func UpdateResultCount(count int) { globalManager.resultCount.Set(float64(count)) }

// UpdateCategoryCount sets the known category gauge.
func UpdateCategoryCount(count int) { globalManager.categoryCount.Set(float64(count)) }

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry for scrape handlers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
