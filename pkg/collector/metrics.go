package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_collection_duration_seconds",
			Help:    "Time taken to fetch all instance type pages",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	collectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_collection_total",
			Help: "Total number of collection attempts",
		},
		[]string{"status"}, // success or error
	)

	pagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_collection_pages_total",
			Help: "Total number of result pages fetched",
		},
	)

	recordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_collection_records_total",
			Help: "Total number of instance type records accepted",
		},
	)

	skippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_collection_skipped_records_total",
			Help: "Total number of records skipped for lacking a usable identifier",
		},
	)
)
