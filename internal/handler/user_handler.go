package handler

import (
	"net/http"
	"time"

	"casecare-service/internal/model"
	"casecare-service/internal/service"
	"casecare-service/pkg/database"
	"casecare-service/pkg/logger"
	"casecare-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserRequest defines the structure for user creation/update requests
type UserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Team   string `json:"team"`
	Status string `json:"status"`
}

// ListUsers handles retrieving all staff users
func ListUsers(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewUserService(database.GetDB())
	users, err := svc.ListAll()
	if err != nil {
		log.Error("Failed to list users", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve users"})
	}

	return c.JSON(http.StatusOK, users)
}

// GetUser handles retrieving a single user by ID
func GetUser(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewUserService(database.GetDB())
	user, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err, "user not found")
	}

	return c.JSON(http.StatusOK, user)
}

// CreateUser handles creating a new staff user
func CreateUser(c echo.Context) error {
	log := logger.FromEcho(c)

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email are required"})
	}

	user := model.User{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Team:   req.Team,
		Status: req.Status,
	}
	if user.Role == "" {
		user.Role = model.RoleCoordinator
	}
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	svc := service.NewUserService(database.GetDB())
	if err := svc.Create(&user); err != nil {
		log.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return serviceError(c, err, "user not found")
	}

	prometheus.RecordEntityOperation("user", "create")
	log.Info("User created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser handles updating an existing staff user
func UpdateUser(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	updates := model.User{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Team:   req.Team,
		Status: req.Status,
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewUserService(database.GetDB())
	user, err := svc.Update(id, &updates)
	if err != nil {
		return serviceError(c, err, "user not found")
	}

	prometheus.RecordEntityOperation("user", "update")
	log.Info("User updated", zap.String("user_id", id))
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles deleting a staff user. Users referenced by tasks
// cannot be deleted.
func DeleteUser(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	svc := service.NewUserService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete user", zap.String("user_id", id), zap.Error(err))
		return serviceError(c, err, "user not found")
	}

	prometheus.RecordEntityOperation("user", "delete")
	log.Info("User deleted", zap.String("user_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}

// GetUserDashboardPreferences returns a user's dashboard widget layout
func GetUserDashboardPreferences(c echo.Context) error {
	id := c.Param("id")

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewUserService(database.GetDB())
	prefs, err := svc.GetDashboardPreferences(id)
	if err != nil {
		return serviceError(c, err, "user not found")
	}

	return c.JSON(http.StatusOK, prefs)
}

// SaveUserDashboardPreferences stores a user's dashboard widget layout
func SaveUserDashboardPreferences(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var prefs model.DashboardPreferences
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	svc := service.NewUserService(database.GetDB())
	if err := svc.SaveDashboardPreferences(id, prefs); err != nil {
		return serviceError(c, err, "user not found")
	}

	log.Info("Dashboard preferences saved", zap.String("user_id", id), zap.Int("widgets", len(prefs.Widgets)))
	return c.JSON(http.StatusOK, echo.Map{"message": "preferences saved"})
}
