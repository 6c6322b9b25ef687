package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/middleware"
)

// BaseService provides common logging and authorization helpers for all
// services.
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// RequireAdmin rejects non-admin actors before any mutation happens.
func (s *BaseService) RequireAdmin(actor domain.User) error {
	if !actor.Role.IsAdmin() {
		return fmt.Errorf("admins only: %w", apperrors.ErrForbidden)
	}
	return nil
}
