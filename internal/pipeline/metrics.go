package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the consolidation run's Prometheus metrics.
type Metrics struct {
	RecordsProcessed *prometheus.CounterVec
	RecordsSkipped   *prometheus.CounterVec
	RecordsFailed    *prometheus.CounterVec
	ProfilesMerged   prometheus.Counter
	FinalProfiles    prometheus.Gauge

	SourceDuration *prometheus.HistogramVec
	WriteDuration  prometheus.Histogram
}

// NewMetrics registers the pipeline metrics on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "consolidator_records_processed_total",
			Help: "Raw records read and turned into profiles",
		}, []string{"source"}),

		RecordsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "consolidator_records_skipped_total",
			Help: "Raw records skipped for missing or noise names",
		}, []string{"source"}),

		RecordsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "consolidator_records_failed_total",
			Help: "Raw records that failed profile construction",
		}, []string{"source"}),

		ProfilesMerged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consolidator_profiles_merged_total",
			Help: "Duplicate profiles folded into an existing identity",
		}),

		FinalProfiles: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "consolidator_final_profiles",
			Help: "Unified profiles written by the last completed run",
		}),

		SourceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "consolidator_source_duration_seconds",
			Help:    "Time to read and ingest one source database",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}, []string{"source"}),

		WriteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "consolidator_write_duration_seconds",
			Help:    "Time to replace the target collection",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300},
		}),
	}
}
