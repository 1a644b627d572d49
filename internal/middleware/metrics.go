package middleware

import (
	"strconv"
	"time"

	"casecare-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route. The
// scrape endpoint itself is excluded so it does not inflate its own series.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/metrics" {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		method := c.Request().Method
		route := c.Path()
		status := strconv.Itoa(c.Response().Status)

		prometheus.HttpRequestsTotal.WithLabelValues(method, route, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())

		return err
	}
}
