package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Parse metrics
	ParsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlp_urls_parsed_total",
			Help: "Total URLs parsed successfully",
		},
	)
	ParseErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlp_parse_errors_total",
			Help: "Total URLs rejected by the parser",
		},
		[]string{"reason"},
	)

	// Input metrics
	LinesReadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlp_lines_read_total",
			Help: "Total input lines read, including skipped blanks and comments",
		},
	)
	LinesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlp_lines_skipped_total",
			Help: "Total blank or comment lines skipped",
		},
	)

	// Pipeline metrics
	BatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlp_batches_total",
			Help: "Total batches processed by the worker pool",
		},
	)
	FilteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlp_filtered_total",
			Help: "Total records excluded by the filter expression",
		},
	)
	ParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "urlp_batch_duration_seconds",
			Help:    "Wall time spent parsing one batch",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)
)
