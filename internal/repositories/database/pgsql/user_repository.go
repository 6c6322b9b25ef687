package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository returns a pgx-backed user repository.
func NewUserRepository(db *pgxpool.Pool) ports.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ ports.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `uid, email, role, status, full_name, phone_number, job_role, pay_rate`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var fullName, phone, jobRole sql.NullString
	err := row.Scan(&u.UID, &u.Email, &u.Role, &u.Status, &fullName, &phone, &jobRole, &u.PayRate)
	if err != nil {
		return nil, err
	}
	u.FullName = fullName.String
	u.PhoneNumber = phone.String
	u.JobRole = jobRole.String
	return &u, nil
}

func (r *PgxUserRepository) EnsureUser(ctx context.Context, uid, email string) error {
	query := `
        INSERT INTO users (uid, email, role, status)
        VALUES ($1, $2, 'staff', 'active')
        ON CONFLICT (uid) DO NOTHING;
    `
	if _, err := r.db.Exec(ctx, query, uid, email); err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", uid, err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by uid %s: %w", uid, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY full_name NULLS LAST, email;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User, passwordHash string) error {
	query := `
        INSERT INTO users (uid, email, role, status, full_name, phone_number, job_role, pay_rate, password_hash)
        VALUES ($1, $2, $3, 'active', $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		user.UID,
		user.Email,
		user.Role,
		nullIfEmpty(user.FullName),
		nullIfEmpty(user.PhoneNumber),
		nullIfEmpty(user.JobRole),
		user.PayRate,
		nullIfEmpty(passwordHash),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with that email already exists: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateEmployee(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET full_name = $1, phone_number = $2, job_role = $3, pay_rate = $4, role = $5, status = $6
        WHERE uid = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		nullIfEmpty(user.FullName),
		nullIfEmpty(user.PhoneNumber),
		nullIfEmpty(user.JobRole),
		user.PayRate,
		user.Role,
		user.Status,
		user.UID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) SetUserStatus(ctx context.Context, uid string, status domain.UserStatus) error {
	query := `UPDATE users SET status = $1 WHERE uid = $2;`
	cmdTag, err := r.db.Exec(ctx, query, status, uid)
	if err != nil {
		return fmt.Errorf("failed to set user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) CredentialHash(ctx context.Context, email string) (string, string, error) {
	query := `SELECT uid, password_hash FROM users WHERE email = $1 AND password_hash IS NOT NULL;`
	var uid, hash string
	err := r.db.QueryRow(ctx, query, email).Scan(&uid, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperrors.ErrNotFound
		}
		return "", "", fmt.Errorf("failed to look up credential: %w", err)
	}
	return uid, hash, nil
}

// nullIfEmpty maps "" to SQL NULL so optional profile fields stay null
// instead of empty strings.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
