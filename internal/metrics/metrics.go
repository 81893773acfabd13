// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"

	"artisan/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "artisan",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "artisan",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "route"})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "artisan",
		Name:      "orders_created_total",
		Help:      "Total number of orders successfully created.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "artisan",
		Name:      "operation_errors_total",
		Help:      "Total number of failed order operations.",
	}, []string{"operation"})

	OrdersByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "artisan",
		Name:      "orders_by_status",
		Help:      "Number of stored orders per status, as of the last statistics run.",
	}, []string{"status"})
)

// SetOrdersByStatus replaces every status gauge; statuses missing from counts are set to 0.
func SetOrdersByStatus(counts map[order.Status]int64) {
	for _, s := range order.Statuses() {
		OrdersByStatus.WithLabelValues(s.String()).Set(float64(counts[s]))
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
