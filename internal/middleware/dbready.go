package middleware

import (
	"net/http"

	"casecare-service/pkg/database"
	"casecare-service/prometheus"

	"github.com/labstack/echo/v4"
)

// DatabaseReadyMiddleware rejects API requests while the database is
// unavailable. The process keeps serving so /health and /metrics stay up.
func DatabaseReadyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !database.Ready() {
			prometheus.DatabaseUnavailableCounter.Inc()
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"error": "database is unavailable",
			})
		}
		return next(c)
	}
}
