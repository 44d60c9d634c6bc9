// Package metrics provides Prometheus metrics collection for the craft service.
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

	// CraftCalculationsTotal tracks total craft cost/profit calculations.
	CraftCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craft_calculations_total",
			Help: "Total number of craft cost/profit calculations",
		},
		[]string{"status"},
	)

	// CraftCalculationDuration tracks craft calculation duration.
	CraftCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "craft_calculation_duration_seconds",
			Help:    "Craft calculation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// AssistantCapabilityTotal tracks assistant capability dispatches.
	AssistantCapabilityTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_capability_dispatches_total",
			Help: "Total number of assistant capability dispatches",
		},
		[]string{"capability", "status"},
	)

	// AssistantCapabilityDuration tracks assistant capability dispatch duration.
	AssistantCapabilityDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_capability_duration_seconds",
			Help:    "Assistant capability dispatch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"capability"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
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

// RecordCraftCalculation records metrics for a craft calculation.
func RecordCraftCalculation(duration time.Duration, status string) {
	CraftCalculationDuration.Observe(duration.Seconds())
	CraftCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordAssistantCapability records metrics for one capability dispatch.
func RecordAssistantCapability(capability string, success bool, seconds float64) {
	status := "success"
	if !success {
		status = "error"
	}
	AssistantCapabilityTotal.WithLabelValues(capability, status).Inc()
	AssistantCapabilityDuration.WithLabelValues(capability).Observe(seconds)
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
