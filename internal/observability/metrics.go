package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// PIREP pipeline.
type Metrics struct {
	RecordsProcessed prometheus.Counter
	BatchesProcessed prometheus.Counter
	StructuralErrors prometheus.Counter
	Findings         *prometheus.CounterVec // label: kind={missing_value,out_of_range,malformed_type}

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Station lookup metrics.
	StationLookups *prometheus.CounterVec // labels: outcome={success,error,empty}
	StationCache   *prometheus.CounterVec // labels: result={hit,miss}
	StationEnabled prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pirep_etl",
			Name:      "records_processed_total",
			Help:      "Total telemetry records converted to PIREP entries.",
		}),
		BatchesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pirep_etl",
			Name:      "batches_processed_total",
			Help:      "Total uploaded batches processed to completion.",
		}),
		StructuralErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pirep_etl",
			Name:      "structural_errors_total",
			Help:      "Total whole-batch rejections (empty or oversized payloads).",
		}),
		Findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pirep_etl",
			Name:      "findings_total",
			Help:      "Validation findings by kind.",
		}, []string{"kind"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pirep_etl",
			Name:      "batch_size",
			Help:      "Number of records per uploaded batch.",
			Buckets:   []float64{1, 5, 10, 20, 50, 100, 250, 500, 1000},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pirep_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete validate-transform-summarize cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		StationLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pirep_etl",
			Name:      "station_lookups_total",
			Help:      "Station directory lookups by outcome.",
		}, []string{"outcome"}),
		StationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pirep_etl",
			Name:      "station_cache_total",
			Help:      "Station cache lookups by result.",
		}, []string{"result"}),
		StationEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pirep_etl",
			Name:      "station_enabled",
			Help:      "1 when station enrichment is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsProcessed,
		m.BatchesProcessed,
		m.StructuralErrors,
		m.Findings,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.StationLookups,
		m.StationCache,
		m.StationEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsProcessed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pirep_etl", Name: "records_processed_total"}),
		BatchesProcessed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pirep_etl", Name: "batches_processed_total"}),
		StructuralErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pirep_etl", Name: "structural_errors_total"}),
		Findings:                prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pirep_etl", Name: "findings_total"}, []string{"kind"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "pirep_etl", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "pirep_etl", Name: "batch_processing_duration_seconds"}),
		StationLookups:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pirep_etl", Name: "station_lookups_total"}, []string{"outcome"}),
		StationCache:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pirep_etl", Name: "station_cache_total"}, []string{"result"}),
		StationEnabled:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "pirep_etl", Name: "station_enabled"}),
	}
}
