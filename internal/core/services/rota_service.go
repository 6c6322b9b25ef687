package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type rotaService struct {
	BaseService
	shiftRepo ports.ShiftRepository
	activity  ports.ActivityRecorder
}

// NewRotaService creates the scheduling service covering shift templates,
// assignments and the published rota.
func NewRotaService(shiftRepo ports.ShiftRepository, activity ports.ActivityRecorder) ports.RotaSvc {
	return &rotaService{shiftRepo: shiftRepo, activity: activity}
}

var _ ports.RotaSvc = (*rotaService)(nil)

func (s *rotaService) validateTemplate(req dto.ShiftTemplateRequest) (domain.ShiftTemplate, error) {
	if err := domain.ValidateTimeOfDay(req.StartTime); err != nil {
		return domain.ShiftTemplate{}, fmt.Errorf("invalid start_time: %w", apperrors.ErrValidation)
	}
	if err := domain.ValidateTimeOfDay(req.EndTime); err != nil {
		return domain.ShiftTemplate{}, fmt.Errorf("invalid end_time: %w", apperrors.ErrValidation)
	}
	return domain.ShiftTemplate{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ColorCode: req.ColorCode,
	}, nil
}

func (s *rotaService) CreateTemplate(ctx context.Context, admin domain.User, req dto.ShiftTemplateRequest) (*domain.ShiftTemplate, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	tpl, err := s.validateTemplate(req)
	if err != nil {
		return nil, err
	}
	saved, err := s.shiftRepo.SaveTemplate(ctx, tpl)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, admin, domain.ActionCreateShiftTemplate, fmt.Sprintf("Name: %s", saved.Name))
	return saved, nil
}

func (s *rotaService) ListTemplates(ctx context.Context, actor domain.User) ([]domain.ShiftTemplate, error) {
	return s.shiftRepo.FindTemplates(ctx)
}

func (s *rotaService) UpdateTemplate(ctx context.Context, admin domain.User, id int64, req dto.ShiftTemplateRequest) (*domain.ShiftTemplate, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	tpl, err := s.validateTemplate(req)
	if err != nil {
		return nil, err
	}
	tpl.ID = id
	updated, err := s.shiftRepo.UpdateTemplate(ctx, tpl)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, admin, domain.ActionUpdateShiftTemplate, fmt.Sprintf("ID: %d, Name: %s", id, updated.Name))
	return updated, nil
}

// DeleteTemplate cascades to any scheduled shifts using the template.
func (s *rotaService) DeleteTemplate(ctx context.Context, admin domain.User, id int64) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if err := s.shiftRepo.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionDeleteShiftTemplate, fmt.Sprintf("ID: %d", id))
	return nil
}

func (s *rotaService) AssignShift(ctx context.Context, admin domain.User, req dto.AssignShiftRequest) (*domain.ScheduledShift, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	shiftDate, err := time.Parse("2006-01-02", req.ShiftDate)
	if err != nil {
		return nil, fmt.Errorf("invalid shift_date: %w", apperrors.ErrValidation)
	}
	shift := domain.ScheduledShift{
		UserUID:         req.UserUID,
		ShiftTemplateID: req.ShiftTemplateID,
		ShiftDate:       shiftDate,
	}
	saved, err := s.shiftRepo.SaveScheduledShift(ctx, shift)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, admin, domain.ActionCreateSchedule,
		fmt.Sprintf("User: %s, Date: %s", req.UserUID, req.ShiftDate))
	return saved, nil
}

func (s *rotaService) RemoveShift(ctx context.Context, admin domain.User, id int64) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if err := s.shiftRepo.DeleteScheduledShift(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionDeleteSchedule, fmt.Sprintf("Shift ID: %d", id))
	return nil
}

func (s *rotaService) PublishRange(ctx context.Context, admin domain.User, start, end time.Time) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date before start_date: %w", apperrors.ErrValidation)
	}
	if err := s.shiftRepo.PublishShifts(ctx, start, end); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionPublishRota,
		fmt.Sprintf("Week of %s", start.Format("2006-01-02")))
	return nil
}

// WeeklyRota returns every scheduled shift in the range plus the projected
// labor cost of the draft.
func (s *rotaService) WeeklyRota(ctx context.Context, admin domain.User, start, end time.Time) ([]domain.RotaEntry, decimal.Decimal, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, decimal.Zero, err
	}
	entries, err := s.shiftRepo.FindRota(ctx, start, end)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return entries, domain.TotalLaborCost(entries), nil
}

func (s *rotaService) MySchedule(ctx context.Context, actor domain.User, start, end time.Time) ([]domain.RotaEntry, error) {
	return s.shiftRepo.FindPublishedShiftsForUser(ctx, actor.UID, start, end)
}
