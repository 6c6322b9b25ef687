package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
)

type timeClockService struct {
	BaseService
	timeRepo  ports.TimeEntryRepository
	txnRepo   ports.TransactionRepository
	reporting ports.ReportingRepository
	activity  ports.ActivityRecorder
	now       func() time.Time
}

// NewTimeClockService creates the clock-in/out service and its payroll
// reporting.
func NewTimeClockService(
	timeRepo ports.TimeEntryRepository,
	txnRepo ports.TransactionRepository,
	reporting ports.ReportingRepository,
	activity ports.ActivityRecorder,
) ports.TimeClockSvc {
	return &timeClockService{
		timeRepo:  timeRepo,
		txnRepo:   txnRepo,
		reporting: reporting,
		activity:  activity,
		now:       time.Now,
	}
}

var _ ports.TimeClockSvc = (*timeClockService)(nil)

// ClockIn opens a new entry. The fast-path check gives a friendly error;
// the partial unique index on open entries is what actually prevents a
// double clock-in under concurrent requests.
func (s *timeClockService) ClockIn(ctx context.Context, actor domain.User) (*domain.TimeEntry, error) {
	open, err := s.openEntry(ctx, actor.UID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("already clocked in: %w", apperrors.ErrConflict)
	}

	entry, err := s.timeRepo.InsertClockIn(ctx, actor.UID, s.now())
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actor, domain.ActionClockIn, fmt.Sprintf("Entry ID: %d", entry.ID))
	s.LogInfo(ctx, "Clock in", slog.Int64("entry_id", entry.ID))
	return entry, nil
}

func (s *timeClockService) ClockOut(ctx context.Context, actor domain.User) (*domain.TimeEntry, error) {
	open, err := s.openEntry(ctx, actor.UID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("no open time entry: %w", apperrors.ErrNotFound)
	}

	at := s.now()
	entry, err := s.timeRepo.CloseEntry(ctx, open.ID, at, domain.HoursBetween(open.ClockIn, at))
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actor, domain.ActionClockOut,
		fmt.Sprintf("Entry ID: %d, Hours: %s", entry.ID, entry.HoursWorked.StringFixed(2)))
	return entry, nil
}

// Status returns the caller's open entry, or nil when they are clocked out.
func (s *timeClockService) Status(ctx context.Context, actor domain.User) (*domain.TimeEntry, error) {
	return s.openEntry(ctx, actor.UID)
}

// openEntry looks up the caller's open entry, mapping both no-row spellings
// (nil entry, or a NotFound translation) to the clocked-out state.
func (s *timeClockService) openEntry(ctx context.Context, uid string) (*domain.TimeEntry, error) {
	open, err := s.timeRepo.FindOpenEntry(ctx, uid)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return open, nil
}

func (s *timeClockService) ListEntries(ctx context.Context, admin domain.User, start, end time.Time) ([]domain.TimeEntry, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.timeRepo.FindEntriesInRange(ctx, start, end)
}

func (s *timeClockService) TimesheetReport(ctx context.Context, admin domain.User, start, end time.Time) ([]domain.TimesheetRow, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.timeRepo.TimesheetRows(ctx, start, end)
}

func (s *timeClockService) TimesheetCSV(ctx context.Context, admin domain.User, start, end time.Time) (string, error) {
	rows, err := s.TimesheetReport(ctx, admin, start, end)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Employee", "Email", "Pay Rate", "Total Hours", "Total Pay"})
	for _, row := range rows {
		payRate := decimal.Zero
		if row.PayRate != nil {
			payRate = *row.PayRate
		}
		_ = w.Write([]string{
			row.FullName,
			row.Email,
			payRate.StringFixed(2),
			row.TotalHours.StringFixed(2),
			row.TotalPay.StringFixed(2),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *timeClockService) LaborVsSales(ctx context.Context, admin domain.User, date time.Time) (*domain.LaborVsSales, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	sales, err := s.txnRepo.SumAmountsForDate(ctx, domain.Sale, date)
	if err != nil {
		return nil, err
	}
	laborCost, err := s.reporting.LaborCostForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return &domain.LaborVsSales{
		Date:                date.Format("2006-01-02"),
		TotalSales:          sales,
		TotalLaborCost:      laborCost,
		LaborCostPercentage: domain.LaborCostPercentage(laborCost, sales),
	}, nil
}
