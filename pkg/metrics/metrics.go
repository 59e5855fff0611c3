package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_resolutions_total",
			Help: "Total number of intent resolutions by resulting action",
		},
		[]string{"action"},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "resolver_resolution_duration_seconds",
			Help: "Duration of intent resolution",
		},
		[]string{"action"},
	)

	PrefillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resolver_prefills_total",
			Help: "Total number of project pre-fill resolutions",
		},
	)

	SnapshotReloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resolver_snapshot_reloads_total",
			Help: "Total number of pattern snapshot rebuilds",
		},
	)
)
