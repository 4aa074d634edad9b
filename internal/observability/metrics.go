package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
)

const namespace = "surf_engine"

// Metrics holds the Prometheus counters, histograms, and gauges for the engine service.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Evaluation outcome metrics.
	Evaluations  *prometheus.CounterVec // labels: tier, status
	IntelResults *prometheus.CounterVec // labels: matched={true,false}
	NextSessions *prometheus.CounterVec // labels: found={true,false}

	// Evaluation cache metrics.
	EvalCache        *prometheus.CounterVec // labels: result={hit,miss}
	EvalCacheEnabled prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total evaluation requests read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total evaluations written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total requests that could not be decoded or evaluated.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of requests per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-evaluate-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Evaluations by objective tier and verdict status.",
		}, []string{"tier", "status"}),
		IntelResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intel_results_total",
			Help:      "Evaluations by whether a local intel rule matched.",
		}, []string{"matched"}),
		NextSessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "next_sessions_total",
			Help:      "Evaluations by whether the timeline produced a next session.",
		}, []string{"found"}),
		EvalCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eval_cache_total",
			Help:      "Evaluation cache lookups by result.",
		}, []string{"result"}),
		EvalCacheEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "eval_cache_enabled",
			Help:      "1 when evaluation memoisation is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.Evaluations,
		m.IntelResults,
		m.NextSessions,
		m.EvalCache,
		m.EvalCacheEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		MessagesConsumed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "messages_consumed_total"}),
		MessagesProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "messages_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "batch_processing_duration_seconds"}),
		Evaluations:             prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "evaluations_total"}, []string{"tier", "status"}),
		IntelResults:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "intel_results_total"}, []string{"matched"}),
		NextSessions:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "next_sessions_total"}, []string{"found"}),
		EvalCache:               prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "eval_cache_total"}, []string{"result"}),
		EvalCacheEnabled:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "eval_cache_enabled"}),
	}
}

// ObserveEvaluation records the outcome of one evaluation.
func (m *Metrics) ObserveEvaluation(eval domain.Evaluation) {
	m.Evaluations.WithLabelValues(string(eval.Tier), string(eval.Verdict.Status)).Inc()
	m.IntelResults.WithLabelValues(strconv.FormatBool(eval.Intel != nil)).Inc()
	m.NextSessions.WithLabelValues(strconv.FormatBool(eval.NextSession != nil)).Inc()
}
