package ports

import (
	"context"
	"time"

	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserRepository persists local user records keyed by external uid.
type UserRepository interface {
	// EnsureUser inserts a staff/active row for a first-seen uid.
	// It is an upsert (ON CONFLICT DO NOTHING) and safe under concurrent
	// first-sight requests.
	EnsureUser(ctx context.Context, uid, email string) error
	FindUserByUID(ctx context.Context, uid string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User, passwordHash string) error
	UpdateEmployee(ctx context.Context, user domain.User) error
	SetUserStatus(ctx context.Context, uid string, status domain.UserStatus) error
	// CredentialHash returns the stored bcrypt hash for local login, or
	// ErrNotFound when the user has no local credential.
	CredentialHash(ctx context.Context, email string) (uid string, hash string, err error)
}

// TransactionRepository persists ledger entries and their deletion state.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindTransactionsByOwner(ctx context.Context, ownerUID string, date *time.Time) ([]domain.Transaction, error)
	FindAllTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error)
	FindPendingDeletion(ctx context.Context) ([]domain.Transaction, error)
	// MarkPendingDelete flips approved -> pending_delete for a row owned by
	// ownerUID; ErrNotFound when the row is absent or owned by someone else.
	MarkPendingDelete(ctx context.Context, id int64, ownerUID string) error
	RestoreTransaction(ctx context.Context, id int64) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	// SumAmountsForDate totals amounts of the given type on a calendar day;
	// zero rows yield decimal zero, not an error.
	SumAmountsForDate(ctx context.Context, txnType domain.TransactionType, date time.Time) (decimal.Decimal, error)
}

// ActivityRepository appends audit entries. There are deliberately no
// update or delete operations.
type ActivityRepository interface {
	AppendEntry(ctx context.Context, entry domain.ActivityLogEntry) error
	FindEntries(ctx context.Context) ([]domain.ActivityLogEntry, error)
}

// AvailabilityRepository persists time-off requests.
type AvailabilityRepository interface {
	SaveRequest(ctx context.Context, req domain.AvailabilityRequest) (*domain.AvailabilityRequest, error)
	FindRequestByID(ctx context.Context, id int64) (*domain.AvailabilityRequest, error)
	FindRequestsByOwner(ctx context.Context, ownerUID string) ([]domain.AvailabilityRequest, error)
	FindPendingRequests(ctx context.Context) ([]domain.AvailabilityRequest, error)
	// FindOverlapping returns requests overlapping [start, end). When
	// approvedOnly is set, pending requests are excluded (the staff-facing
	// rota variant); the raw admin variant passes false.
	FindOverlapping(ctx context.Context, start, end time.Time, approvedOnly bool) ([]domain.AvailabilityRequest, error)
	ApproveRequest(ctx context.Context, id int64) (*domain.AvailabilityRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

// ShiftRepository persists shift templates and scheduled shifts.
type ShiftRepository interface {
	SaveTemplate(ctx context.Context, tmpl domain.ShiftTemplate) (*domain.ShiftTemplate, error)
	FindTemplates(ctx context.Context) ([]domain.ShiftTemplate, error)
	UpdateTemplate(ctx context.Context, tmpl domain.ShiftTemplate) (*domain.ShiftTemplate, error)
	// DeleteTemplate cascades to the template's scheduled shifts.
	DeleteTemplate(ctx context.Context, id int64) error

	// SaveScheduledShift returns ErrConflict when the employee already
	// holds a shift on that date.
	SaveScheduledShift(ctx context.Context, shift domain.ScheduledShift) (*domain.ScheduledShift, error)
	DeleteScheduledShift(ctx context.Context, id int64) error
	PublishShifts(ctx context.Context, start, end time.Time) error
	FindRota(ctx context.Context, start, end time.Time) ([]domain.RotaEntry, error)
	FindPublishedShiftsForUser(ctx context.Context, uid string, start, end time.Time) ([]domain.RotaEntry, error)
}

// TimeEntryRepository persists clock-in/out records and payroll aggregates.
type TimeEntryRepository interface {
	// FindOpenEntry returns the user's open entry, or (nil, nil) when the
	// user is clocked out. Being clocked out is a normal state, never an
	// error.
	FindOpenEntry(ctx context.Context, uid string) (*domain.TimeEntry, error)
	// InsertClockIn returns ErrConflict when an open entry already exists.
	InsertClockIn(ctx context.Context, uid string, at time.Time) (*domain.TimeEntry, error)
	CloseEntry(ctx context.Context, id int64, at time.Time, hours decimal.Decimal) (*domain.TimeEntry, error)
	FindEntriesInRange(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error)
	// TimesheetRows aggregates approved hours and pay per employee over
	// [start, end+1d), left-joined so idle employees appear with zeros.
	TimesheetRows(ctx context.Context, start, end time.Time) ([]domain.TimesheetRow, error)
}

// ReportingRepository serves cross-entity aggregates.
type ReportingRepository interface {
	// LaborCostForDate sums duration x pay rate over the day's scheduled
	// shifts; zero when none are scheduled.
	LaborCostForDate(ctx context.Context, date time.Time) (decimal.Decimal, error)
}
