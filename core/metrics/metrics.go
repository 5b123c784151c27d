// Package metrics exposes Prometheus instrumentation for the API.
//
//	e.Use(metrics.Middleware())
//	e.GET("/metrics", metrics.Handler())
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is private so tests can build servers repeatedly without
// duplicate-registration panics on the default registerer.
var Registry = prometheus.NewRegistry()

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotbray",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotbray",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// PartResolutions counts fast-order lookups by outcome:
	// "exact" | "substituted" | "kept_obsolete" | "not_found".
	PartResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotbray",
			Subsystem: "fastorder",
			Name:      "resolutions_total",
			Help:      "Part number resolutions by outcome.",
		},
		[]string{"outcome"},
	)

	QuotesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hotbray",
		Subsystem: "quotes",
		Name:      "created_total",
		Help:      "Quotes persisted.",
	})

	// SearchRequests counts index calls by op ("search" | "suggest" | "bulk") and result.
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotbray",
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Calls to the search index.",
		},
		[]string{"op", "result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RequestDuration,
		RequestTotal,
		PartResolutions,
		QuotesCreated,
		SearchRequests,
	)
}

// Middleware records request count and latency per route template.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			RequestTotal.WithLabelValues(labels...).Inc()
			RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
