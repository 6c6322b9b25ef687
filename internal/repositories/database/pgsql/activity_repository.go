package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
)

type PgxActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository returns a pgx-backed activity log repository.
func NewActivityRepository(db *pgxpool.Pool) ports.ActivityRepository {
	return &PgxActivityRepository{db: db}
}

var _ ports.ActivityRepository = (*PgxActivityRepository)(nil)

func (r *PgxActivityRepository) AppendEntry(ctx context.Context, entry domain.ActivityLogEntry) error {
	query := `
        INSERT INTO activity_logs (user_uid, user_email, action_type, details)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, entry.UserUID, entry.UserEmail, entry.ActionType, entry.Details)
	if err != nil {
		return fmt.Errorf("failed to append activity log entry: %w", err)
	}
	return nil
}

func (r *PgxActivityRepository) FindEntries(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	query := `
        SELECT id, user_uid, user_email, action_type, details, timestamp
        FROM activity_logs ORDER BY timestamp DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.ActivityLogEntry{}
	for rows.Next() {
		var e domain.ActivityLogEntry
		var details *string
		if err := rows.Scan(&e.ID, &e.UserUID, &e.UserEmail, &e.ActionType, &details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		if details != nil {
			e.Details = *details
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity log rows: %w", rows.Err())
	}
	return entries, nil
}
