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
)

type PgxAvailabilityRepository struct {
	db *pgxpool.Pool
}

// NewAvailabilityRepository returns a pgx-backed availability repository.
func NewAvailabilityRepository(db *pgxpool.Pool) ports.AvailabilityRepository {
	return &PgxAvailabilityRepository{db: db}
}

var _ ports.AvailabilityRepository = (*PgxAvailabilityRepository)(nil)

func scanAvailability(row pgx.Row) (*domain.AvailabilityRequest, error) {
	var a domain.AvailabilityRequest
	var reason *string
	err := row.Scan(&a.ID, &a.UserUID, &a.Start, &a.End, &reason, &a.Status, &a.IsAllDay)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		a.Reason = *reason
	}
	return &a, nil
}

func (r *PgxAvailabilityRepository) SaveRequest(ctx context.Context, req domain.AvailabilityRequest) (*domain.AvailabilityRequest, error) {
	query := `
        INSERT INTO availability (user_uid, start_time, end_time, reason, status, is_all_day)
        VALUES ($1, $2, $3, $4, 'pending', $5)
        RETURNING id, user_uid, start_time, end_time, reason, status, is_all_day;
    `
	saved, err := scanAvailability(r.db.QueryRow(ctx, query,
		req.UserUID, req.Start, req.End, nullIfEmpty(req.Reason), req.IsAllDay,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save availability request: %w", err)
	}
	return saved, nil
}

func (r *PgxAvailabilityRepository) FindRequestByID(ctx context.Context, id int64) (*domain.AvailabilityRequest, error) {
	query := `
        SELECT id, user_uid, start_time, end_time, reason, status, is_all_day
        FROM availability WHERE id = $1;
    `
	req, err := scanAvailability(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find availability request %d: %w", id, err)
	}
	return req, nil
}

func (r *PgxAvailabilityRepository) FindRequestsByOwner(ctx context.Context, ownerUID string) ([]domain.AvailabilityRequest, error) {
	query := `
        SELECT id, user_uid, start_time, end_time, reason, status, is_all_day
        FROM availability WHERE user_uid = $1 ORDER BY start_time ASC;
    `
	return r.queryRequests(ctx, query, ownerUID)
}

func (r *PgxAvailabilityRepository) FindPendingRequests(ctx context.Context) ([]domain.AvailabilityRequest, error) {
	query := `
        SELECT a.id, a.user_uid, a.start_time, a.end_time, a.reason, a.status, a.is_all_day, u.full_name, u.email
        FROM availability a JOIN users u ON a.user_uid = u.uid
        WHERE a.status = 'pending' ORDER BY a.start_time ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending availability: %w", err)
	}
	defer rows.Close()

	reqs := []domain.AvailabilityRequest{}
	for rows.Next() {
		var a domain.AvailabilityRequest
		var reason, fullName *string
		if err := rows.Scan(&a.ID, &a.UserUID, &a.Start, &a.End, &reason, &a.Status, &a.IsAllDay, &fullName, &a.Email); err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}
		if reason != nil {
			a.Reason = *reason
		}
		if fullName != nil {
			a.FullName = *fullName
		}
		reqs = append(reqs, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating availability rows: %w", rows.Err())
	}
	return reqs, nil
}

func (r *PgxAvailabilityRepository) FindOverlapping(ctx context.Context, start, end time.Time, approvedOnly bool) ([]domain.AvailabilityRequest, error) {
	// Half-open overlap: start < rangeEnd AND end > rangeStart.
	query := `
        SELECT id, user_uid, start_time, end_time, reason, status, is_all_day
        FROM availability WHERE start_time < $2 AND end_time > $1
    `
	if approvedOnly {
		query += ` AND status = 'approved'`
	}
	query += ` ORDER BY start_time ASC;`
	return r.queryRequests(ctx, query, start, end)
}

func (r *PgxAvailabilityRepository) ApproveRequest(ctx context.Context, id int64) (*domain.AvailabilityRequest, error) {
	query := `
        UPDATE availability SET status = 'approved' WHERE id = $1
        RETURNING id, user_uid, start_time, end_time, reason, status, is_all_day;
    `
	req, err := scanAvailability(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to approve availability request %d: %w", id, err)
	}
	return req, nil
}

func (r *PgxAvailabilityRepository) DeleteRequest(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM availability WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete availability request %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("availability request not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAvailabilityRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.AvailabilityRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	reqs := []domain.AvailabilityRequest{}
	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}
		reqs = append(reqs, *a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating availability rows: %w", rows.Err())
	}
	return reqs, nil
}
