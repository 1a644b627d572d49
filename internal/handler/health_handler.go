package handler

import (
	"net/http"

	"casecare-service/pkg/database"

	"github.com/labstack/echo/v4"
)

// Health reports liveness and whether database-backed features are usable
func Health(c echo.Context) error {
	dbStatus := "connected"
	if !database.Ready() {
		dbStatus = "degraded"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "ok",
		"database": dbStatus,
	})
}
