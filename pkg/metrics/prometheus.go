// Package metrics provides Prometheus metrics for the evaluation engine.
// A run writes them to a node-exporter textfile instead of serving them.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	constLabels    prometheus.Labels
	registry       *prometheus.Registry

	// Evaluation
	evaluations       *prometheus.CounterVec
	scoreDistribution *prometheus.HistogramVec
	evaluationLatency prometheus.Histogram
	evaluationErrors  *prometheus.CounterVec
	projections       *prometheus.CounterVec
	duplicates        prometheus.Counter
	corpusSize        prometheus.Gauge

	// Batch pipeline
	batches       prometheus.Counter
	batchDuration prometheus.Histogram
	queueSize     prometheus.Gauge
	queueCapacity prometheus.Gauge
	queueEnqueued prometheus.Counter
	queueDequeued prometheus.Counter
	workerActive  prometheus.Gauge
	workerLatency prometheus.Histogram
	boardSize     prometheus.Gauge
	boardTopScore prometheus.Gauge
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

var globalManager = NewManager(WithPrometheusRegistry(customRegistry)) //nolint:gochecknoglobals // process-wide manager

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "cooperstown",
		subsystem:      "engine",
		latencyBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		registry:       prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per collector
	auto := promauto.With(m.registry)

	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "evaluations_total",
		Help: "Players evaluated, by sport and tier",
	}, []string{"sport", "tier"})

	m.scoreDistribution = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name:    "overall_score",
		Help:    "Distribution of overall worthiness scores",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	}, []string{"sport"})

	m.evaluationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name:    "evaluation_latency_milliseconds",
		Help:    "Time to evaluate one player",
		Buckets: m.latencyBuckets,
	})

	m.evaluationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "errors_total",
		Help: "Errors by component and kind",
	}, []string{"component", "kind"})

	m.projections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "projections_total",
		Help: "Career projections, by sport and whether one applied",
	}, []string{"sport", "applicable"})

	m.duplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "duplicate_players_total",
		Help: "Player records skipped as duplicates",
	})

	m.corpusSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "similarity_corpus_size",
		Help: "Inductees available to the similarity matcher",
	})

	m.batches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "batches_total",
		Help: "Batch runs completed",
	})

	m.batchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name:    "batch_duration_seconds",
		Help:    "Wall time of a batch run",
		Buckets: prometheus.DefBuckets,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "queue_size",
		Help: "Players waiting in the batch queue",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "queue_capacity",
		Help: "Batch queue capacity",
	})

	m.queueEnqueued = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "queue_enqueued_total",
		Help: "Players enqueued",
	})

	m.queueDequeued = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "queue_dequeued_total",
		Help: "Players dequeued by workers",
	})

	m.workerActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "workers_active",
		Help: "Running evaluation workers",
	})

	m.workerLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name:    "worker_job_latency_milliseconds",
		Help:    "Time a worker spends on one job",
		Buckets: m.latencyBuckets,
	})

	m.boardSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "board_size",
		Help: "Players ranked on the board",
	})

	m.boardTopScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name: "board_top_score",
		Help: "Overall score of the top ranked player",
	})
}

// Registry returns the registry the manager's collectors live on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// RecordEvaluation counts one evaluation and observes its score and latency.
func (m *Manager) RecordEvaluation(sport, tier string, overall int, latency time.Duration) {
	m.evaluations.WithLabelValues(sport, tier).Inc()
	m.scoreDistribution.WithLabelValues(sport).Observe(float64(overall))
	m.evaluationLatency.Observe(float64(latency) / float64(time.Millisecond))
}

// RecordProjection counts one projection.
func (m *Manager) RecordProjection(sport string, applicable bool) {
	m.projections.WithLabelValues(sport, strconv.FormatBool(applicable)).Inc()
}

// RecordError counts an error by component and kind.
func (m *Manager) RecordError(component, kind string) {
	m.evaluationErrors.WithLabelValues(component, kind).Inc()
}

// RecordDuplicate counts a skipped duplicate record.
func (m *Manager) RecordDuplicate() { m.duplicates.Inc() }

// UpdateCorpusSize sets the similarity corpus size.
func (m *Manager) UpdateCorpusSize(n int) { m.corpusSize.Set(float64(n)) }

// RecordBatch counts a finished batch.
func (m *Manager) RecordBatch(d time.Duration) {
	m.batches.Inc()
	m.batchDuration.Observe(d.Seconds())
}

// UpdateQueueSize sets the queue length.
func (m *Manager) UpdateQueueSize(n int) { m.queueSize.Set(float64(n)) }

// UpdateQueueCapacity sets the queue capacity.
func (m *Manager) UpdateQueueCapacity(n int) { m.queueCapacity.Set(float64(n)) }

// RecordQueueEnqueue counts an enqueue.
func (m *Manager) RecordQueueEnqueue() { m.queueEnqueued.Inc() }

// RecordQueueDequeue counts a dequeue.
func (m *Manager) RecordQueueDequeue() { m.queueDequeued.Inc() }

// UpdateWorkerActiveCount sets the running worker count.
func (m *Manager) UpdateWorkerActiveCount(n int) { m.workerActive.Set(float64(n)) }

// RecordWorkerLatency observes one job's duration.
func (m *Manager) RecordWorkerLatency(d time.Duration) {
	m.workerLatency.Observe(float64(d) / float64(time.Millisecond))
}

// UpdateBoard sets board size and top score.
func (m *Manager) UpdateBoard(size, top int) {
	m.boardSize.Set(float64(size))
	m.boardTopScore.Set(float64(top))
}

// WriteTextfile writes every collector to path in the text exposition
// format, atomically.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrWriteTextfile, err)
	}
	return nil
}

// Package-level helpers over the process-wide manager.

// RecordEvaluation records on the global manager.
func RecordEvaluation(sport, tier string, overall int, latency time.Duration) {
	globalManager.RecordEvaluation(sport, tier, overall, latency)
}

// RecordProjection records on the global manager.
func RecordProjection(sport string, applicable bool) {
	globalManager.RecordProjection(sport, applicable)
}

// RecordError records on the global manager.
func RecordError(component, kind string) { globalManager.RecordError(component, kind) }

// RecordDuplicate records on the global manager.
func RecordDuplicate() { globalManager.RecordDuplicate() }

// UpdateCorpusSize records on the global manager.
func UpdateCorpusSize(n int) { globalManager.UpdateCorpusSize(n) }

// RecordBatch records on the global manager.
func RecordBatch(d time.Duration) { globalManager.RecordBatch(d) }

// UpdateQueueSize records on the global manager.
func UpdateQueueSize(n int) { globalManager.UpdateQueueSize(n) }

// UpdateQueueCapacity records on the global manager.
func UpdateQueueCapacity(n int) { globalManager.UpdateQueueCapacity(n) }

// RecordQueueEnqueue records on the global manager.
func RecordQueueEnqueue() { globalManager.RecordQueueEnqueue() }

// RecordQueueDequeue records on the global manager.
func RecordQueueDequeue() { globalManager.RecordQueueDequeue() }

// UpdateWorkerActiveCount records on the global manager.
func UpdateWorkerActiveCount(n int) { globalManager.UpdateWorkerActiveCount(n) }

// RecordWorkerLatency records on the global manager.
func RecordWorkerLatency(d time.Duration) { globalManager.RecordWorkerLatency(d) }

// UpdateBoard records on the global manager.
func UpdateBoard(size, top int) { globalManager.UpdateBoard(size, top) }

// WriteTextfile writes the global registry to path.
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

// GetRegistry returns the process-wide registry.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
