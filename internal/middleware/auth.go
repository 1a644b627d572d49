package middleware

import (
	"net/http"
	"strings"

	"casecare-service/pkg/jwtutil"
	"casecare-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserContextMiddleware attaches staff identity from a Bearer token when
// one is supplied. Requests without a token pass through anonymously; a
// token that is present but invalid is rejected. There is no role
// enforcement here, only identity for scoping.
func UserContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("claims", claims)

		return next(c)
	}
}

// ClaimsFromContext returns the staff claims attached by
// UserContextMiddleware, or nil for anonymous requests
func ClaimsFromContext(c echo.Context) *jwtutil.UserClaims {
	claims, ok := c.Get("claims").(*jwtutil.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
