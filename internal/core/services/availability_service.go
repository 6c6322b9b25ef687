package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type availabilityService struct {
	BaseService
	availRepo ports.AvailabilityRepository
	activity  ports.ActivityRecorder
}

// NewAvailabilityService creates the time-off request service.
func NewAvailabilityService(availRepo ports.AvailabilityRepository, activity ports.ActivityRecorder) ports.AvailabilitySvc {
	return &availabilityService{availRepo: availRepo, activity: activity}
}

var _ ports.AvailabilitySvc = (*availabilityService)(nil)

func (s *availabilityService) Submit(ctx context.Context, actor domain.User, req dto.CreateAvailabilityRequest) (*domain.AvailabilityRequest, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", apperrors.ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end_time: %w", apperrors.ErrValidation)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end_time must be after start_time: %w", apperrors.ErrValidation)
	}
	saved, err := s.availRepo.SaveRequest(ctx, domain.AvailabilityRequest{
		UserUID:  actor.UID,
		Start:    start,
		End:      end,
		Reason:   req.Reason,
		Status:   domain.AvailabilityPending,
		IsAllDay: req.IsAllDay,
	})
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actor, domain.ActionAddUnavailability,
		fmt.Sprintf("From %s to %s", start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04")))
	return saved, nil
}

// ListForUser returns one employee's requests. Staff may only read their
// own; admins may read anyone's.
func (s *availabilityService) ListForUser(ctx context.Context, actor domain.User, targetUID string) ([]domain.AvailabilityRequest, error) {
	if targetUID == "" {
		targetUID = actor.UID
	}
	if targetUID != actor.UID && !actor.Role.IsAdmin() {
		return nil, fmt.Errorf("cannot read another user's requests: %w", apperrors.ErrForbidden)
	}
	return s.availRepo.FindRequestsByOwner(ctx, targetUID)
}

func (s *availabilityService) ListPending(ctx context.Context, admin domain.User) ([]domain.AvailabilityRequest, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.availRepo.FindPendingRequests(ctx)
}

func (s *availabilityService) ListOverlapping(ctx context.Context, admin domain.User, start, end time.Time, approvedOnly bool) ([]domain.AvailabilityRequest, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.availRepo.FindOverlapping(ctx, start, end, approvedOnly)
}

func (s *availabilityService) Approve(ctx context.Context, admin domain.User, id int64) (*domain.AvailabilityRequest, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	approved, err := s.availRepo.ApproveRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, admin, domain.ActionApproveAvailability, fmt.Sprintf("Request ID: %d", id))
	return approved, nil
}

// Reject removes the request outright; a rejected request leaves no row
// behind, so the requester simply sees it disappear from their list.
func (s *availabilityService) Reject(ctx context.Context, admin domain.User, id int64) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if err := s.availRepo.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionRejectAvailability, fmt.Sprintf("Request ID: %d", id))
	return nil
}

// Delete lets the owner withdraw their own request; admins may delete any.
func (s *availabilityService) Delete(ctx context.Context, actor domain.User, id int64) error {
	req, err := s.availRepo.FindRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if req.UserUID != actor.UID && !actor.Role.IsAdmin() {
		return fmt.Errorf("cannot delete another user's request: %w", apperrors.ErrForbidden)
	}
	if err := s.availRepo.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, actor, domain.ActionDeleteUnavailability, fmt.Sprintf("Request ID: %d", id))
	return nil
}
