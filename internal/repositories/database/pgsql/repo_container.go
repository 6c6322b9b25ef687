package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiftbooks/backoffice/internal/core/ports"
)

// RepositoryContainer bundles all pgx-backed repositories over one pool.
type RepositoryContainer struct {
	User         ports.UserRepository
	Transaction  ports.TransactionRepository
	Activity     ports.ActivityRepository
	Availability ports.AvailabilityRepository
	Shift        ports.ShiftRepository
	TimeEntry    ports.TimeEntryRepository
	Reporting    ports.ReportingRepository
}

// NewRepositoryContainer wires every repository to the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		User:         NewUserRepository(pool),
		Transaction:  NewTransactionRepository(pool),
		Activity:     NewActivityRepository(pool),
		Availability: NewAvailabilityRepository(pool),
		Shift:        NewShiftRepository(pool),
		TimeEntry:    NewTimeEntryRepository(pool),
		Reporting:    NewReportingRepository(pool),
	}
}

// uniqueViolation is the Postgres error code raised by unique constraints.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint failure, the
// single source of truth for Conflict translation at this boundary.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
