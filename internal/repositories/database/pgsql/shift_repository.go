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

type PgxShiftRepository struct {
	db *pgxpool.Pool
}

// NewShiftRepository returns a pgx-backed shift repository covering both
// templates and scheduled shifts.
func NewShiftRepository(db *pgxpool.Pool) ports.ShiftRepository {
	return &PgxShiftRepository{db: db}
}

var _ ports.ShiftRepository = (*PgxShiftRepository)(nil)

func scanTemplate(row pgx.Row) (*domain.ShiftTemplate, error) {
	var t domain.ShiftTemplate
	var color *string
	err := row.Scan(&t.ID, &t.Name, &t.StartTime, &t.EndTime, &color)
	if err != nil {
		return nil, err
	}
	if color != nil {
		t.ColorCode = *color
	}
	return &t, nil
}

func (r *PgxShiftRepository) SaveTemplate(ctx context.Context, tmpl domain.ShiftTemplate) (*domain.ShiftTemplate, error) {
	query := `
        INSERT INTO shift_templates (name, start_time, end_time, color_code)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, start_time::text, end_time::text, color_code;
    `
	saved, err := scanTemplate(r.db.QueryRow(ctx, query,
		tmpl.Name, tmpl.StartTime, tmpl.EndTime, nullIfEmpty(tmpl.ColorCode),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save shift template: %w", err)
	}
	return saved, nil
}

func (r *PgxShiftRepository) FindTemplates(ctx context.Context) ([]domain.ShiftTemplate, error) {
	query := `
        SELECT id, name, start_time::text, end_time::text, color_code
        FROM shift_templates ORDER BY start_time;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift templates: %w", err)
	}
	defer rows.Close()

	tmpls := []domain.ShiftTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift template row: %w", err)
		}
		tmpls = append(tmpls, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating shift template rows: %w", rows.Err())
	}
	return tmpls, nil
}

func (r *PgxShiftRepository) UpdateTemplate(ctx context.Context, tmpl domain.ShiftTemplate) (*domain.ShiftTemplate, error) {
	query := `
        UPDATE shift_templates SET name = $1, start_time = $2, end_time = $3, color_code = $4
        WHERE id = $5
        RETURNING id, name, start_time::text, end_time::text, color_code;
    `
	updated, err := scanTemplate(r.db.QueryRow(ctx, query,
		tmpl.Name, tmpl.StartTime, tmpl.EndTime, nullIfEmpty(tmpl.ColorCode), tmpl.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update shift template %d: %w", tmpl.ID, err)
	}
	return updated, nil
}

func (r *PgxShiftRepository) DeleteTemplate(ctx context.Context, id int64) error {
	// scheduled_shifts rows go with the template via ON DELETE CASCADE.
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM shift_templates WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift template %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("shift template not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxShiftRepository) SaveScheduledShift(ctx context.Context, shift domain.ScheduledShift) (*domain.ScheduledShift, error) {
	query := `
        INSERT INTO scheduled_shifts (user_uid, shift_template_id, shift_date)
        VALUES ($1, $2, $3)
        RETURNING id, user_uid, shift_template_id, shift_date, is_published;
    `
	var s domain.ScheduledShift
	err := r.db.QueryRow(ctx, query,
		shift.UserUID, shift.ShiftTemplateID, shift.ShiftDate.Format("2006-01-02"),
	).Scan(&s.ID, &s.UserUID, &s.ShiftTemplateID, &s.ShiftDate, &s.IsPublished)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("employee already scheduled that day: %w", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to save scheduled shift: %w", err)
	}
	return &s, nil
}

func (r *PgxShiftRepository) DeleteScheduledShift(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM scheduled_shifts WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled shift %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("scheduled shift not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxShiftRepository) PublishShifts(ctx context.Context, start, end time.Time) error {
	query := `UPDATE scheduled_shifts SET is_published = true WHERE shift_date BETWEEN $1 AND $2;`
	_, err := r.db.Exec(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to publish shifts: %w", err)
	}
	return nil
}

func (r *PgxShiftRepository) FindRota(ctx context.Context, start, end time.Time) ([]domain.RotaEntry, error) {
	query := `
        SELECT ss.id, ss.shift_date, u.uid, u.full_name, u.job_role, u.pay_rate,
               st.name, st.start_time::text, st.end_time::text, st.color_code
        FROM scheduled_shifts ss
        JOIN users u ON ss.user_uid = u.uid
        JOIN shift_templates st ON ss.shift_template_id = st.id
        WHERE ss.shift_date BETWEEN $1 AND $2
        ORDER BY ss.shift_date, st.start_time;
    `
	rows, err := r.db.Query(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query rota: %w", err)
	}
	defer rows.Close()

	entries := []domain.RotaEntry{}
	for rows.Next() {
		var e domain.RotaEntry
		var fullName, jobRole, color *string
		err := rows.Scan(&e.ID, &e.ShiftDate, &e.UserUID, &fullName, &jobRole, &e.PayRate,
			&e.ShiftName, &e.StartTime, &e.EndTime, &color)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rota row: %w", err)
		}
		if fullName != nil {
			e.FullName = *fullName
		}
		if jobRole != nil {
			e.JobRole = *jobRole
		}
		if color != nil {
			e.ColorCode = *color
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rota rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxShiftRepository) FindPublishedShiftsForUser(ctx context.Context, uid string, start, end time.Time) ([]domain.RotaEntry, error) {
	// Unpublished shifts must never be visible to staff.
	query := `
        SELECT ss.id, ss.shift_date, st.name, st.start_time::text, st.end_time::text
        FROM scheduled_shifts ss
        JOIN shift_templates st ON ss.shift_template_id = st.id
        WHERE ss.user_uid = $1 AND ss.is_published = true AND ss.shift_date BETWEEN $2 AND $3
        ORDER BY ss.shift_date ASC;
    `
	rows, err := r.db.Query(ctx, query, uid, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query published shifts: %w", err)
	}
	defer rows.Close()

	entries := []domain.RotaEntry{}
	for rows.Next() {
		var e domain.RotaEntry
		if err := rows.Scan(&e.ID, &e.ShiftDate, &e.ShiftName, &e.StartTime, &e.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		e.UserUID = uid
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", rows.Err())
	}
	return entries, nil
}
