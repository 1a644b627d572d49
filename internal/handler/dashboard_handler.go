package handler

import (
	"net/http"
	"time"

	"casecare-service/internal/middleware"
	"casecare-service/internal/model"
	"casecare-service/internal/service"
	"casecare-service/pkg/database"
	"casecare-service/pkg/logger"
	"casecare-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetDashboardStats handles retrieving the dashboard summary counts.
// Admins and managers see agency-wide numbers; everyone else sees only
// their own caseload. Anonymous callers may scope explicitly with the
// case_manager_id query parameter.
func GetDashboardStats(c echo.Context) error {
	log := logger.FromEcho(c)

	caseManagerID := c.QueryParam("case_manager_id")
	isAdmin := false

	if claims := middleware.ClaimsFromContext(c); claims != nil {
		caseManagerID = claims.UserID
		isAdmin = claims.Role == model.RoleAdmin || claims.Role == model.RoleManager
	} else if caseManagerID == "" {
		isAdmin = true
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewStatsService(database.GetDB())
	stats, err := svc.DashboardStats(caseManagerID, isAdmin)
	if err != nil {
		log.Error("Failed to compute dashboard stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve dashboard stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

// GetPendingTaskCount handles the badge count of pending tasks, scoped
// the same way as the dashboard stats
func GetPendingTaskCount(c echo.Context) error {
	log := logger.FromEcho(c)

	assigneeID := c.QueryParam("assignee_id")
	if claims := middleware.ClaimsFromContext(c); claims != nil {
		assigneeID = claims.UserID
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewTaskService(database.GetDB())

	var count int64
	var err error
	if assigneeID == "" {
		count, err = svc.TotalPendingCount()
	} else {
		count, err = svc.PendingCountForUser(assigneeID)
	}
	if err != nil {
		log.Error("Failed to count pending tasks", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to count pending tasks"})
	}

	return c.JSON(http.StatusOK, echo.Map{"pending": count})
}
