package handler

import (
	"net/http"
	"time"

	"casecare-service/internal/service"
	"casecare-service/pkg/database"
	"casecare-service/pkg/jwtutil"
	"casecare-service/pkg/logger"
	"casecare-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TokenRequest identifies the staff member a token is issued for.
// There is no password check; authentication is out of scope and tokens
// only carry identity for request scoping.
type TokenRequest struct {
	Email string `json:"email"`
}

// IssueToken issues a JWT for a known staff user
func IssueToken(c echo.Context) error {
	log := logger.FromEcho(c)

	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	defer prometheus.TrackDBOperation("select")(time.Now())
	svc := service.NewUserService(database.GetDB())
	user, err := svc.GetByEmail(req.Email)
	if err != nil {
		log.Warn("Token requested for unknown email", zap.String("email", req.Email))
		return serviceError(c, err, "user not found")
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to generate token"})
	}

	log.Info("Token issued", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}
