package ports

import (
	"context"
	"time"

	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// ActivityRecorder appends audit entries for state-changing actions. It is
// best-effort: implementations must swallow storage failures so the primary
// mutation never rolls back or fails because of logging.
type ActivityRecorder interface {
	Record(ctx context.Context, actor domain.User, action domain.ActionType, details string)
}

// ActivitySvc exposes the audit trail to admins.
type ActivitySvc interface {
	ActivityRecorder
	ListEntries(ctx context.Context, admin domain.User) ([]domain.ActivityLogEntry, error)
}

// UserSvc covers identity provisioning and employee management.
type UserSvc interface {
	// Provision upserts a first-seen external identity as staff/active and
	// returns the local user row; ErrForbidden when the row is inactive.
	Provision(ctx context.Context, uid, email string) (*domain.User, error)
	GetUser(ctx context.Context, uid string) (*domain.User, error)
	ListEmployees(ctx context.Context, admin domain.User) ([]domain.User, error)
	GetEmployee(ctx context.Context, admin domain.User, uid string) (*domain.User, error)
	CreateEmployee(ctx context.Context, admin domain.User, req dto.CreateEmployeeRequest) (*domain.User, error)
	UpdateEmployee(ctx context.Context, admin domain.User, uid string, req dto.UpdateEmployeeRequest) (*domain.User, error)
	DisableUser(ctx context.Context, admin domain.User, uid string) error
	// VerifyCredentials backs the local login route.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenSvc mints and verifies the bearer tokens the API trusts.
type TokenSvc interface {
	IssueToken(ctx context.Context, user *domain.User) (token string, expiresAt time.Time, err error)
	// VerifyToken returns the external uid and email carried by the token.
	VerifyToken(ctx context.Context, token string) (uid, email string, err error)
	// ExchangeGoogleCode trades an OAuth authorization code for a verified
	// Google identity (subject + email).
	ExchangeGoogleCode(ctx context.Context, code string) (uid, email string, err error)
}

// TransactionSvc is the ledger plus its deletion-approval workflow.
type TransactionSvc interface {
	CreateTransaction(ctx context.Context, actor domain.User, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListOwnTransactions(ctx context.Context, actor domain.User, date *time.Time) ([]domain.Transaction, error)
	ListAllTransactions(ctx context.Context, admin domain.User, date *time.Time) ([]domain.Transaction, error)
	ListPendingDeletion(ctx context.Context, admin domain.User) ([]domain.Transaction, error)
	RequestDeletion(ctx context.Context, actor domain.User, id int64) error
	ApproveDeletion(ctx context.Context, admin domain.User, id int64) error
	RejectDeletion(ctx context.Context, admin domain.User, id int64) error
	UpdateTransaction(ctx context.Context, admin domain.User, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, admin domain.User, id int64) error
	DashboardSummary(ctx context.Context, admin domain.User, date time.Time) (*domain.DashboardSummary, error)
}

// AvailabilitySvc is the time-off request workflow.
type AvailabilitySvc interface {
	Submit(ctx context.Context, actor domain.User, req dto.CreateAvailabilityRequest) (*domain.AvailabilityRequest, error)
	ListForUser(ctx context.Context, actor domain.User, targetUID string) ([]domain.AvailabilityRequest, error)
	ListPending(ctx context.Context, admin domain.User) ([]domain.AvailabilityRequest, error)
	ListOverlapping(ctx context.Context, admin domain.User, start, end time.Time, approvedOnly bool) ([]domain.AvailabilityRequest, error)
	Approve(ctx context.Context, admin domain.User, id int64) (*domain.AvailabilityRequest, error)
	Reject(ctx context.Context, admin domain.User, id int64) error
	Delete(ctx context.Context, actor domain.User, id int64) error
}

// RotaSvc builds and publishes the weekly schedule.
type RotaSvc interface {
	CreateTemplate(ctx context.Context, admin domain.User, req dto.ShiftTemplateRequest) (*domain.ShiftTemplate, error)
	ListTemplates(ctx context.Context, admin domain.User) ([]domain.ShiftTemplate, error)
	UpdateTemplate(ctx context.Context, admin domain.User, id int64, req dto.ShiftTemplateRequest) (*domain.ShiftTemplate, error)
	DeleteTemplate(ctx context.Context, admin domain.User, id int64) error

	AssignShift(ctx context.Context, admin domain.User, req dto.AssignShiftRequest) (*domain.ScheduledShift, error)
	RemoveShift(ctx context.Context, admin domain.User, id int64) error
	PublishRange(ctx context.Context, admin domain.User, start, end time.Time) error
	WeeklyRota(ctx context.Context, admin domain.User, start, end time.Time) ([]domain.RotaEntry, decimal.Decimal, error)
	MySchedule(ctx context.Context, actor domain.User, start, end time.Time) ([]domain.RotaEntry, error)
}

// TimeClockSvc is the clock-in/out workflow and payroll aggregation.
type TimeClockSvc interface {
	ClockIn(ctx context.Context, actor domain.User) (*domain.TimeEntry, error)
	ClockOut(ctx context.Context, actor domain.User) (*domain.TimeEntry, error)
	Status(ctx context.Context, actor domain.User) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, admin domain.User, start, end time.Time) ([]domain.TimeEntry, error)
	TimesheetReport(ctx context.Context, admin domain.User, start, end time.Time) ([]domain.TimesheetRow, error)
	// TimesheetCSV renders the same aggregation as CSV text.
	TimesheetCSV(ctx context.Context, admin domain.User, start, end time.Time) (string, error)
	LaborVsSales(ctx context.Context, admin domain.User, date time.Time) (*domain.LaborVsSales, error)
}

// ServiceContainer holds instances of all application services and is the
// entry point handlers use.
type ServiceContainer struct {
	User         UserSvc
	Token        TokenSvc
	Activity     ActivitySvc
	Transaction  TransactionSvc
	Availability AvailabilitySvc
	Rota         RotaSvc
	TimeClock    TimeClockSvc
}
