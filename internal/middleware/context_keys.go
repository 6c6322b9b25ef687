package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/domain"
)

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userCtxKey   = contextKey("user")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context. It
// returns the default logger if none is found, so callers never get nil.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ContextWithLogger returns a child context carrying the given logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// ContextWithUser returns a child context carrying the authenticated user.
func ContextWithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user placed in the request
// context by the auth middleware.
func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	user, ok := c.Request.Context().Value(userCtxKey).(domain.User)
	return user, ok
}
