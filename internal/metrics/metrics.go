// Package metrics provides Prometheus metrics for the tile estimator.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// EstimateCalculationsTotal counts estimate calculations by outcome.
	EstimateCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimate_calculations_total",
			Help: "Total number of estimate calculations",
		},
		[]string{"status"},
	)

	// EstimateCalculationDuration tracks how long a full estimate takes.
	EstimateCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimate_calculation_duration_seconds",
			Help:    "Estimate calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// SkippedApplicationsTotal counts applications dropped for unusable input.
	SkippedApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skipped_applications_total",
			Help: "Total number of tile applications skipped during estimation",
		},
		[]string{"kind", "reason"},
	)

	// CustomerSavesTotal counts customer persistence attempts by store and outcome.
	CustomerSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_saves_total",
			Help: "Total number of customer save attempts",
		},
		[]string{"store", "status"},
	)

	// EstimateGrandTotal observes the grand total of computed estimates in rupees.
	EstimateGrandTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimate_grand_total_rupees",
			Help:    "Grand total of computed estimates in rupees",
			Buckets: prometheus.ExponentialBuckets(1000, 2.5, 10),
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEstimateCalculation records one estimate run.
func RecordEstimateCalculation(duration time.Duration, status string, grandTotal float64) {
	EstimateCalculationDuration.Observe(duration.Seconds())
	EstimateCalculationsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		EstimateGrandTotal.Observe(grandTotal)
	}
}

// RecordSkippedApplication records an application left out of a room total.
func RecordSkippedApplication(kind, reason string) {
	SkippedApplicationsTotal.WithLabelValues(kind, reason).Inc()
}

// RecordCustomerSave records a customer save against the given store.
func RecordCustomerSave(store, status string) {
	CustomerSavesTotal.WithLabelValues(store, status).Inc()
}
