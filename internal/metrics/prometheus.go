package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "route", "status"},
	)

	ImportRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_total",
			Help: "Spreadsheet rows processed by replace-imports",
		},
		[]string{"domain", "outcome"},
	)

	ImportFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_failures_total",
			Help: "Replace-imports that ended in an error",
		},
		[]string{"domain"},
	)

	ReportCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_cache_total",
			Help: "Filter option cache lookups",
		},
		[]string{"domain", "result"},
	)

	OutboxPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_total",
			Help: "Outbox events handled by the publisher worker",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		ImportRows,
		ImportFailures,
		ReportCache,
		OutboxPublished,
	)
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
