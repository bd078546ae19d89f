// Package metrics provides Prometheus metrics for the rating engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a rating run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics
	matchesApplied *prometheus.CounterVec
	teamsDefaulted prometheus.Counter
	ratingDelta    prometheus.Histogram

	// Run health metrics
	runDuration prometheus.Histogram
	runFailures prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "elorun",
		subsystem:        "rating",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchesApplied = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_applied_total",
		Help:      "Total number of matches applied, by series kind",
	}, []string{"series"})

	m.teamsDefaulted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_defaulted_total",
		Help:      "Total number of teams inserted at the default rating",
	})

	m.ratingDelta = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_delta",
		Help:      "Histogram of absolute per-side rating changes",
		Buckets:   m.histogramBuckets,
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Histogram of full-run wall time in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.runFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_failures_total",
		Help:      "Total number of runs aborted before output was written",
	})
}

// Registry returns the registry metrics are collected into, for optional
// exposition or test scraping.
func Registry() *prometheus.Registry {
	return customRegistry
}

// RecordMatchApplied increments the applied-match counter for a series kind.
func RecordMatchApplied(series string) {
	if globalManager.enabled {
		globalManager.matchesApplied.WithLabelValues(series).Inc()
	}
}

// RecordTeamDefaulted increments the defaulted-team counter.
func RecordTeamDefaulted() {
	if globalManager.enabled {
		globalManager.teamsDefaulted.Inc()
	}
}

// ObserveRatingDelta records the absolute rating change of one side.
func ObserveRatingDelta(delta float64) {
	if globalManager.enabled {
		globalManager.ratingDelta.Observe(delta)
	}
}

// ObserveRunDuration records a completed run's wall time in milliseconds.
func ObserveRunDuration(ms float64) {
	if globalManager.enabled {
		globalManager.runDuration.Observe(ms)
	}
}

// RecordRunFailure increments the aborted-run counter.
func RecordRunFailure() {
	if globalManager.enabled {
		globalManager.runFailures.Inc()
	}
}
