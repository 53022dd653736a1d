// Package metrics provides Prometheus metrics for the beamplot chart pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the chart pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Chart production metrics - what the batch actually delivered
	chartsRendered *prometheus.CounterVec
	chartsSkipped  *prometheus.CounterVec
	chartsFailed   *prometheus.CounterVec
	renderDuration prometheus.Histogram

	// Dataset metrics - scale of the run being processed
	hitsLoaded  prometheus.Gauge
	eventsTotal prometheus.Gauge

	// Queue metrics - render job flow
	queueSize   prometheus.Gauge
	workerCount prometheus.Gauge
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
		namespace:        "beamplot",
		subsystem:        "charts",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.chartsRendered = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rendered_total",
			Help:      "Total number of chart files written, by chart family",
		},
		[]string{"family"},
	)

	m.chartsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "skipped_total",
			Help:      "Total number of charts skipped because their sample was empty",
		},
		[]string{"family"},
	)

	m.chartsFailed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "failed_total",
			Help:      "Total number of charts that failed to render",
		},
		[]string{"family"},
	)

	m.renderDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_duration_seconds",
		Help:      "Histogram of per-chart render duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.hitsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "dataset",
		Name:      "hits_loaded",
		Help:      "Number of hit rows loaded for the current dataset",
	})

	m.eventsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "dataset",
		Name:      "events_total",
		Help:      "Number of distinct events in the current dataset",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current number of pending render jobs",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of render workers",
	})
}

// Registry returns the registry metrics are registered on, for serving /metrics.
func Registry() *prometheus.Registry { return customRegistry }

// Get returns the global metrics manager.
func Get() *Manager { return globalManager }

// ChartRendered increments the rendered counter for a chart family.
func (m *Manager) ChartRendered(family string) {
	if !m.enabled {
		return
	}
	m.chartsRendered.WithLabelValues(family).Inc()
}

// ChartSkipped increments the skipped counter for a chart family.
func (m *Manager) ChartSkipped(family string) {
	if !m.enabled {
		return
	}
	m.chartsSkipped.WithLabelValues(family).Inc()
}

// ChartFailed increments the failed counter for a chart family.
func (m *Manager) ChartFailed(family string) {
	if !m.enabled {
		return
	}
	m.chartsFailed.WithLabelValues(family).Inc()
}

// ObserveRenderDuration records how long one chart took to render.
func (m *Manager) ObserveRenderDuration(d time.Duration) {
	if !m.enabled {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}

// SetDatasetSize records the scale of the dataset being processed.
func (m *Manager) SetDatasetSize(hits, events int) {
	if !m.enabled {
		return
	}
	m.hitsLoaded.Set(float64(hits))
	m.eventsTotal.Set(float64(events))
}

// SetQueueSize records the current render-job backlog.
func (m *Manager) SetQueueSize(n int) {
	if !m.enabled {
		return
	}
	m.queueSize.Set(float64(n))
}

// SetWorkerCount records the number of render workers.
func (m *Manager) SetWorkerCount(n int) {
	if !m.enabled {
		return
	}
	m.workerCount.Set(float64(n))
}
