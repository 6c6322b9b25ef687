package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/ports"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens and loads the authenticated user into the request context. The
// token may also be carried in the "token" query parameter, which file
// download links use because they cannot set headers.
func AuthMiddleware(tokens ports.TokenSvc, users ports.UserSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractToken(c)
		if tokenString == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		uid, email, err := tokens.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.Provision(c.Request.Context(), uid, email)
		if err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("Disabled account attempted access", slog.String("user_id", uid))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
				return
			}
			logger.Error("Failed to load user for token", slog.String("user_id", uid), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UID))
		ctx := ContextWithUser(c.Request.Context(), *user)
		ctx = ContextWithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	return c.Query("token")
}
