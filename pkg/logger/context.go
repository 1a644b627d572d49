package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contextKey string

const loggerKey contextKey = "logger"

// WithContext returns a context carrying the given logger.
func WithContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in the context, or the
// process-wide logger when none was stored.
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return log
	}
	return GetLogger()
}

// FromEcho returns the request-scoped logger prepared by the request ID
// middleware. When the token middleware identified a caller, the logger
// also carries the user id.
func FromEcho(c echo.Context) *zap.Logger {
	log, ok := c.Get("logger").(*zap.Logger)
	if !ok {
		log = GetLogger()
	}
	if userID, ok := c.Get("user_id").(string); ok && userID != "" {
		log = log.With(zap.String("user_id", userID))
	}
	return log
}
