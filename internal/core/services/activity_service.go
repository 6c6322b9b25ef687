package services

import (
	"context"
	"log/slog"

	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
)

// activityService records and lists audit entries.
type activityService struct {
	BaseService
	repo ports.ActivityRepository
}

// NewActivityService creates the audit-trail service.
func NewActivityService(repo ports.ActivityRepository) ports.ActivitySvc {
	return &activityService{repo: repo}
}

var _ ports.ActivitySvc = (*activityService)(nil)

// Record appends one audit entry. It is deliberately best-effort: a storage
// failure is logged to the operational log and swallowed so the primary
// mutation that triggered it is never failed or rolled back.
func (s *activityService) Record(ctx context.Context, actor domain.User, action domain.ActionType, details string) {
	entry := domain.ActivityLogEntry{
		UserUID:    actor.UID,
		UserEmail:  actor.Email,
		ActionType: action,
		Details:    details,
	}
	if err := s.repo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to log activity",
			slog.String("action_type", string(action)),
			slog.String("actor_uid", actor.UID))
	}
}

func (s *activityService) ListEntries(ctx context.Context, admin domain.User) ([]domain.ActivityLogEntry, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.repo.FindEntries(ctx)
}
