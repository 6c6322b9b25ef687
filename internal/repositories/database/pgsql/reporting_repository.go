package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

// NewReportingRepository returns a pgx-backed reporting repository.
func NewReportingRepository(db *pgxpool.Pool) ports.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ ports.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) LaborCostForDate(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	// Projected cost: template duration in hours times the assigned
	// employee's pay rate, summed over the day's scheduled shifts.
	query := `
        SELECT COALESCE(SUM(
            EXTRACT(EPOCH FROM (st.end_time - st.start_time)) / 3600 * COALESCE(u.pay_rate, 0)
        ), 0)
        FROM scheduled_shifts ss
        JOIN users u ON ss.user_uid = u.uid
        JOIN shift_templates st ON ss.shift_template_id = st.id
        WHERE ss.shift_date = $1;
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute labor cost: %w", err)
	}
	return total, nil
}
