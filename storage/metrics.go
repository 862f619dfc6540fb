package storage

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// storageOps counts KV operations on annotation records.
	// Labels: operation (create, get, put, delete, list), status (ok, not_found, error)
	storageOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oagraph",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Total annotation record operations by outcome",
	}, []string{"operation", "status"})

	// recordStatements tracks the statement count of written records.
	recordStatements = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "oagraph",
		Subsystem: "storage",
		Name:      "record_statements",
		Help:      "Number of statements in written annotation records",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
)

func recordOp(operation string, err error) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		status = "not_found"
	default:
		status = "error"
	}
	storageOps.WithLabelValues(operation, status).Inc()
}
