package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shopspring/decimal"
)

type PgxTimeEntryRepository struct {
	db *pgxpool.Pool
}

// NewTimeEntryRepository returns a pgx-backed time-entry repository.
func NewTimeEntryRepository(db *pgxpool.Pool) ports.TimeEntryRepository {
	return &PgxTimeEntryRepository{db: db}
}

var _ ports.TimeEntryRepository = (*PgxTimeEntryRepository)(nil)

func scanTimeEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	err := row.Scan(&e.ID, &e.UserUID, &e.ClockIn, &e.ClockOut, &e.HoursWorked, &e.IsApproved)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxTimeEntryRepository) FindOpenEntry(ctx context.Context, uid string) (*domain.TimeEntry, error) {
	query := `
        SELECT id, user_uid, clock_in_timestamp, clock_out_timestamp, actual_hours_worked, is_approved
        FROM time_entries
        WHERE user_uid = $1 AND clock_out_timestamp IS NULL
        ORDER BY clock_in_timestamp DESC LIMIT 1;
    `
	entry, err := scanTimeEntry(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		// No open entry is a normal state, not an error.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open time entry: %w", err)
	}
	return entry, nil
}

func (r *PgxTimeEntryRepository) InsertClockIn(ctx context.Context, uid string, at time.Time) (*domain.TimeEntry, error) {
	// The partial unique index on open entries is the real guard; the
	// service-level pre-check only exists for a friendlier error.
	query := `
        INSERT INTO time_entries (user_uid, clock_in_timestamp)
        VALUES ($1, $2)
        RETURNING id, user_uid, clock_in_timestamp, clock_out_timestamp, actual_hours_worked, is_approved;
    `
	entry, err := scanTimeEntry(r.db.QueryRow(ctx, query, uid, at))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("open time entry already exists: %w", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert clock-in: %w", err)
	}
	return entry, nil
}

func (r *PgxTimeEntryRepository) CloseEntry(ctx context.Context, id int64, at time.Time, hours decimal.Decimal) (*domain.TimeEntry, error) {
	query := `
        UPDATE time_entries SET clock_out_timestamp = $1, actual_hours_worked = $2
        WHERE id = $3 AND clock_out_timestamp IS NULL
        RETURNING id, user_uid, clock_in_timestamp, clock_out_timestamp, actual_hours_worked, is_approved;
    `
	entry, err := scanTimeEntry(r.db.QueryRow(ctx, query, at, hours, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to close time entry %d: %w", id, err)
	}
	return entry, nil
}

func (r *PgxTimeEntryRepository) FindEntriesInRange(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error) {
	// End date is inclusive of its whole calendar day: [start, end + 1 day).
	query := `
        SELECT te.id, te.user_uid, te.clock_in_timestamp, te.clock_out_timestamp,
               te.actual_hours_worked, te.is_approved, u.full_name, u.email
        FROM time_entries te
        JOIN users u ON te.user_uid = u.uid
        WHERE te.clock_in_timestamp >= $1 AND te.clock_in_timestamp < ($2::date + 1)
        ORDER BY te.clock_in_timestamp DESC;
    `
	rows, err := r.db.Query(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		var e domain.TimeEntry
		var fullName *string
		err := rows.Scan(&e.ID, &e.UserUID, &e.ClockIn, &e.ClockOut, &e.HoursWorked, &e.IsApproved, &fullName, &e.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry row: %w", err)
		}
		if fullName != nil {
			e.FullName = *fullName
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxTimeEntryRepository) TimesheetRows(ctx context.Context, start, end time.Time) ([]domain.TimesheetRow, error) {
	// Left join so employees with no approved entries still appear with
	// zero totals. Only approved entries count toward pay.
	query := `
        SELECT u.uid, u.full_name, u.email, u.pay_rate,
               COALESCE(SUM(te.actual_hours_worked), 0) AS total_hours,
               COALESCE(SUM(te.actual_hours_worked * u.pay_rate), 0) AS total_pay
        FROM users u
        LEFT JOIN time_entries te ON u.uid = te.user_uid
            AND te.clock_in_timestamp >= $1
            AND te.clock_in_timestamp < ($2::date + 1)
            AND te.is_approved = true
        GROUP BY u.uid, u.full_name, u.email, u.pay_rate
        ORDER BY u.full_name;
    `
	rows, err := r.db.Query(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet: %w", err)
	}
	defer rows.Close()

	result := []domain.TimesheetRow{}
	for rows.Next() {
		var tr domain.TimesheetRow
		var fullName *string
		if err := rows.Scan(&tr.UserUID, &fullName, &tr.Email, &tr.PayRate, &tr.TotalHours, &tr.TotalPay); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		if fullName != nil {
			tr.FullName = *fullName
		}
		result = append(result, tr)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timesheet rows: %w", rows.Err())
	}
	return result, nil
}
