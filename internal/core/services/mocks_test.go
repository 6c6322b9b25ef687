package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shiftbooks/backoffice/internal/core/domain"
)

// --- Mock ActivityRecorder ---

type MockActivityRecorder struct {
	mock.Mock
}

func (m *MockActivityRecorder) Record(ctx context.Context, actor domain.User, action domain.ActionType, details string) {
	m.Called(ctx, actor, action, details)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, uid, email string) error {
	args := m.Called(ctx, uid, email)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateEmployee(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserStatus(ctx context.Context, uid string, status domain.UserStatus) error {
	args := m.Called(ctx, uid, status)
	return args.Error(0)
}

func (m *MockUserRepository) CredentialHash(ctx context.Context, email string) (string, string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.String(1), args.Error(2)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByOwner(ctx context.Context, ownerUID string, date *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerUID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAllTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindPendingDeletion(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) MarkPendingDelete(ctx context.Context, id int64, ownerUID string) error {
	args := m.Called(ctx, id, ownerUID)
	return args.Error(0)
}

func (m *MockTransactionRepository) RestoreTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumAmountsForDate(ctx context.Context, txnType domain.TransactionType, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, txnType, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock AvailabilityRepository ---

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) SaveRequest(ctx context.Context, req domain.AvailabilityRequest) (*domain.AvailabilityRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityRequest), args.Error(1)
}

func (m *MockAvailabilityRepository) FindRequestByID(ctx context.Context, id int64) (*domain.AvailabilityRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityRequest), args.Error(1)
}

func (m *MockAvailabilityRepository) FindRequestsByOwner(ctx context.Context, ownerUID string) ([]domain.AvailabilityRequest, error) {
	args := m.Called(ctx, ownerUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityRequest), args.Error(1)
}

func (m *MockAvailabilityRepository) FindPendingRequests(ctx context.Context) ([]domain.AvailabilityRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityRequest), args.Error(1)
}

func (m *MockAvailabilityRepository) FindOverlapping(ctx context.Context, start, end time.Time, approvedOnly bool) ([]domain.AvailabilityRequest, error) {
	args := m.Called(ctx, start, end, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityRequest), args.Error(1)
}

func (m *MockAvailabilityRepository) ApproveRequest(ctx context.Context, id int64) (*domain.AvailabilityRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityRequest), args.Error(1)
}

func (m *MockAvailabilityRepository) DeleteRequest(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock ShiftRepository ---

type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) SaveTemplate(ctx context.Context, tmpl domain.ShiftTemplate) (*domain.ShiftTemplate, error) {
	args := m.Called(ctx, tmpl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftTemplate), args.Error(1)
}

func (m *MockShiftRepository) FindTemplates(ctx context.Context) ([]domain.ShiftTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftTemplate), args.Error(1)
}

func (m *MockShiftRepository) UpdateTemplate(ctx context.Context, tmpl domain.ShiftTemplate) (*domain.ShiftTemplate, error) {
	args := m.Called(ctx, tmpl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftTemplate), args.Error(1)
}

func (m *MockShiftRepository) DeleteTemplate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShiftRepository) SaveScheduledShift(ctx context.Context, shift domain.ScheduledShift) (*domain.ScheduledShift, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledShift), args.Error(1)
}

func (m *MockShiftRepository) DeleteScheduledShift(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShiftRepository) PublishShifts(ctx context.Context, start, end time.Time) error {
	args := m.Called(ctx, start, end)
	return args.Error(0)
}

func (m *MockShiftRepository) FindRota(ctx context.Context, start, end time.Time) ([]domain.RotaEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RotaEntry), args.Error(1)
}

func (m *MockShiftRepository) FindPublishedShiftsForUser(ctx context.Context, uid string, start, end time.Time) ([]domain.RotaEntry, error) {
	args := m.Called(ctx, uid, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RotaEntry), args.Error(1)
}

// --- Mock TimeEntryRepository ---

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) FindOpenEntry(ctx context.Context, uid string) (*domain.TimeEntry, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) InsertClockIn(ctx context.Context, uid string, at time.Time) (*domain.TimeEntry, error) {
	args := m.Called(ctx, uid, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) CloseEntry(ctx context.Context, id int64, at time.Time, hours decimal.Decimal) (*domain.TimeEntry, error) {
	args := m.Called(ctx, id, at, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) FindEntriesInRange(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) TimesheetRows(ctx context.Context, start, end time.Time) ([]domain.TimesheetRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetRow), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) LaborCostForDate(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Shared fixtures ---

func staffUser(uid string) domain.User {
	return domain.User{UID: uid, Email: uid + "@example.com", Role: domain.RoleStaff, Status: domain.UserActive}
}

func adminUser(uid string) domain.User {
	return domain.User{UID: uid, Email: uid + "@example.com", Role: domain.RolePrimaryAdmin, Status: domain.UserActive}
}
