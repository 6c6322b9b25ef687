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

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository returns a pgx-backed transaction repository.
func NewTransactionRepository(db *pgxpool.Pool) ports.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ ports.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var category *string
	err := row.Scan(&t.ID, &t.UserUID, &t.Description, &t.Amount, &t.Type, &category, &t.Status, &t.Date)
	if err != nil {
		return nil, err
	}
	if category != nil {
		t.Category = *category
	}
	return &t, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_uid, description, amount, type, category, status, transaction_date)
        VALUES ($1, $2, $3, $4, $5, 'approved', $6)
        RETURNING id, user_uid, description, amount, type, category, status, transaction_date;
    `
	saved, err := scanTransaction(r.db.QueryRow(ctx, query,
		txn.UserUID,
		txn.Description,
		txn.Amount,
		txn.Type,
		nullIfEmpty(txn.Category),
		txn.Date,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return saved, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
        SELECT id, user_uid, description, amount, type, category, status, transaction_date
        FROM transactions WHERE id = $1;
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByOwner(ctx context.Context, ownerUID string, date *time.Time) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_uid, description, amount, type, category, status, transaction_date
        FROM transactions WHERE user_uid = $1
    `
	args := []any{ownerUID}
	if date != nil {
		query += ` AND DATE(transaction_date) = $2`
		args = append(args, date.Format("2006-01-02"))
	}
	query += ` ORDER BY transaction_date DESC;`
	return r.queryTransactions(ctx, query, args...)
}

func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error) {
	query := `
        SELECT t.id, t.user_uid, t.description, t.amount, t.type, t.category, t.status, t.transaction_date, u.email
        FROM transactions t JOIN users u ON t.user_uid = u.uid
    `
	args := []any{}
	if date != nil {
		query += ` WHERE DATE(t.transaction_date) = $1`
		args = append(args, date.Format("2006-01-02"))
	}
	query += ` ORDER BY t.transaction_date DESC;`
	return r.queryJoinedTransactions(ctx, query, args...)
}

func (r *PgxTransactionRepository) FindPendingDeletion(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT t.id, t.user_uid, t.description, t.amount, t.type, t.category, t.status, t.transaction_date, u.email
        FROM transactions t JOIN users u ON t.user_uid = u.uid
        WHERE t.status = 'pending_delete'
        ORDER BY t.transaction_date ASC;
    `
	return r.queryJoinedTransactions(ctx, query)
}

func (r *PgxTransactionRepository) MarkPendingDelete(ctx context.Context, id int64, ownerUID string) error {
	query := `UPDATE transactions SET status = 'pending_delete' WHERE id = $1 AND user_uid = $2;`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerUID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction pending delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or not owned by requester: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) RestoreTransaction(ctx context.Context, id int64) error {
	query := `UPDATE transactions SET status = 'approved' WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to restore transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
        UPDATE transactions
        SET description = $1, amount = $2, transaction_date = $3, category = $4
        WHERE id = $5
        RETURNING id, user_uid, description, amount, type, category, status, transaction_date;
    `
	updated, err := scanTransaction(r.db.QueryRow(ctx, query,
		txn.Description,
		txn.Amount,
		txn.Date,
		nullIfEmpty(txn.Category),
		txn.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update transaction %d: %w", txn.ID, err)
	}
	return updated, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) SumAmountsForDate(ctx context.Context, txnType domain.TransactionType, date time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = $1 AND DATE(transaction_date) = $2;`
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, query, txnType, date.Format("2006-01-02")).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s amounts: %w", txnType, err)
	}
	return sum, nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxTransactionRepository) queryJoinedTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		var category *string
		err := rows.Scan(&t.ID, &t.UserUID, &t.Description, &t.Amount, &t.Type, &category, &t.Status, &t.Date, &t.OwnerEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		if category != nil {
			t.Category = *category
		}
		txns = append(txns, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}
