package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request counts and latencies per route template.
// It owns its registry so several servers (or tests) can coexist in one process.
type MetricsMiddleware struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware creates the collectors for the given service name.
func NewMetricsMiddleware(serviceName string) *MetricsMiddleware {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &MetricsMiddleware{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handle observes the request after the rest of the chain has run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		// Unmatched routes would otherwise explode label cardinality.
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(statusOf(c, err))

		m.requests.WithLabelValues(c.Request().Method, path, status).Inc()
		m.duration.WithLabelValues(c.Request().Method, path, status).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *MetricsMiddleware) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// statusOf predicts the status the error handler will write, since it runs after this middleware returns.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
