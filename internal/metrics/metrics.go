package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "resultboard_store_operation_duration_seconds",
	Help: "Duration of store operations by backend and operation",
}, []string{"backend", "operation"})

var StoreDialTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "resultboard_store_dial_total",
	Help: "The total number of store connection attempts by outcome",
}, []string{"outcome"})

var PDFExportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "resultboard_pdf_export_total",
	Help: "The total number of PDF exports by outcome",
}, []string{"outcome"})

var PDFExportBytes = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "resultboard_pdf_export_bytes",
	Help:    "Size of rendered result PDFs",
	Buckets: prometheus.ExponentialBuckets(1024, 2, 10),
})

// ObserveStore records the time since start for one store call.
func ObserveStore(backend, operation string, start time.Time) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}
