package rest

import (
	"docadmin/pkg/pagination"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docadmin",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration measures request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docadmin",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PageDocuments observes how many documents each list response carries.
	PageDocuments = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docadmin",
			Name:      "page_documents",
			Help:      "Documents returned per list page",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		},
		[]string{"direction"},
	)
)

func observePage(cursor *pagination.Cursor, n int) {
	direction := "first"
	if cursor != nil {
		direction = cursor.Direction.String()
	}
	PageDocuments.WithLabelValues(direction).Observe(float64(n))
}
