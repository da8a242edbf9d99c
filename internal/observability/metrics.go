package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// corpus pipeline.
type Metrics struct {
	ObservationsGenerated prometheus.Counter
	ObservationsLoaded    prometheus.Counter
	LoadErrors            prometheus.Counter
	PipelineRunning       prometheus.Gauge
	CorpusSize            prometheus.Gauge

	// Batch generation metrics.
	BatchSize          prometheus.Histogram
	GenerationDuration prometheus.Histogram

	// Classification metrics.
	QuartileRecomputes prometheus.Counter
	Classifications    *prometheus.CounterVec // label: tier={Low,Medium,High,VeryHigh}
	PredictRequests    prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ObservationsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footfall_etl",
			Name:      "observations_generated_total",
			Help:      "Total synthetic observations generated.",
		}),
		ObservationsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footfall_etl",
			Name:      "observations_loaded_total",
			Help:      "Total labeled observations written to the sink.",
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footfall_etl",
			Name:      "load_errors_total",
			Help:      "Total sink write failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "footfall_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		CorpusSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "footfall_etl",
			Name:      "corpus_size",
			Help:      "Observations currently held in the corpus.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "footfall_etl",
			Name:      "batch_size",
			Help:      "Observations generated per batch.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000},
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "footfall_etl",
			Name:      "generation_duration_seconds",
			Help:      "Duration of a complete corpus build.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		QuartileRecomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footfall_etl",
			Name:      "quartile_recomputes_total",
			Help:      "Total quartile boundary recomputations.",
		}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "footfall_etl",
			Name:      "classifications_total",
			Help:      "Observations classified, by density tier.",
		}, []string{"tier"}),
		PredictRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "footfall_etl",
			Name:      "predict_requests_total",
			Help:      "Live what-if prediction requests served.",
		}),
	}

	prometheus.MustRegister(
		m.ObservationsGenerated,
		m.ObservationsLoaded,
		m.LoadErrors,
		m.PipelineRunning,
		m.CorpusSize,
		m.BatchSize,
		m.GenerationDuration,
		m.QuartileRecomputes,
		m.Classifications,
		m.PredictRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ObservationsGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "footfall_etl", Name: "observations_generated_total"}),
		ObservationsLoaded:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "footfall_etl", Name: "observations_loaded_total"}),
		LoadErrors:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "footfall_etl", Name: "load_errors_total"}),
		PipelineRunning:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "footfall_etl", Name: "pipeline_running"}),
		CorpusSize:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "footfall_etl", Name: "corpus_size"}),
		BatchSize:             prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "footfall_etl", Name: "batch_size"}),
		GenerationDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "footfall_etl", Name: "generation_duration_seconds"}),
		QuartileRecomputes:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "footfall_etl", Name: "quartile_recomputes_total"}),
		Classifications:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "footfall_etl", Name: "classifications_total"}, []string{"tier"}),
		PredictRequests:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "footfall_etl", Name: "predict_requests_total"}),
	}
}
