package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// StatusCodeCategoryCounter tracks responses by status category
	StatusCodeCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"service", "category", "method", "path"},
	)
)

// HTTPMetrics holds configuration and state for HTTP metrics collection
type HTTPMetrics struct {
	ServiceName string
	initialized bool
}

// NewHTTPMetrics creates a new HTTP metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		ServiceName: serviceName,
	}
	m.register()
	return m
}

// register registers the prometheus metrics if they haven't been registered already
func (m *HTTPMetrics) register() {
	if !m.initialized {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(StatusCodeCategoryCounter)
		m.initialized = true
	}
}

// incrementStatusCounter increments the category counter for the status code
func (m *HTTPMetrics) incrementStatusCounter(status int, method, path string) {
	category := ""

	switch {
	case status >= 200 && status < 300:
		category = "2xx"
	case status >= 400 && status < 500:
		category = "4xx"
	case status >= 500 && status < 600:
		category = "5xx"
	}

	if category != "" {
		StatusCodeCategoryCounter.WithLabelValues(m.ServiceName, category, method, path).Inc()
	}
}

// Middleware creates a Gin middleware function that records HTTP request metrics
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Record metrics after the request is processed
		status := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()
		m.incrementStatusCounter(status, method, path)

		duration := time.Since(start).Seconds()
		RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).Observe(duration)
	}
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
