// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gradebook_mutations_total",
			Help: "Total number of in-memory record mutations",
		},
		[]string{"kind"},
	)

	StudentsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gradebook_students_imported_total",
			Help: "Students created via batch or spreadsheet import",
		},
		[]string{"source"},
	)

	DraftSavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gradebook_draft_saves_total",
			Help: "Debounced draft snapshots written",
		},
	)

	ProxyRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "proxy_request_duration_seconds",
			Help:    "Record proxy request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
