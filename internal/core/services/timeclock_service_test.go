package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/core/services"
)

type TimeClockServiceTestSuite struct {
	suite.Suite
	mockTimeRepo  *MockTimeEntryRepository
	mockTxnRepo   *MockTransactionRepository
	mockReporting *MockReportingRepository
	mockRecorder  *MockActivityRecorder
	service       ports.TimeClockSvc
}

func (suite *TimeClockServiceTestSuite) SetupTest() {
	suite.mockTimeRepo = new(MockTimeEntryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockReporting = new(MockReportingRepository)
	suite.mockRecorder = new(MockActivityRecorder)
	suite.service = services.NewTimeClockService(suite.mockTimeRepo, suite.mockTxnRepo, suite.mockReporting, suite.mockRecorder)
}

func (suite *TimeClockServiceTestSuite) TestClockIn_Success() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	entry := &domain.TimeEntry{ID: 5, UserUID: actor.UID}

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(nil, nil)
	suite.mockTimeRepo.On("InsertClockIn", ctx, actor.UID, mock.AnythingOfType("time.Time")).Return(entry, nil)
	suite.mockRecorder.On("Record", ctx, actor, domain.ActionClockIn, "Entry ID: 5").Return()

	got, err := suite.service.ClockIn(ctx, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), got.ID)
	suite.mockTimeRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *TimeClockServiceTestSuite) TestClockIn_NotFoundLookupMeansClockedOut() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	entry := &domain.TimeEntry{ID: 6, UserUID: actor.UID}

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(nil, apperrors.ErrNotFound)
	suite.mockTimeRepo.On("InsertClockIn", ctx, actor.UID, mock.AnythingOfType("time.Time")).Return(entry, nil)
	suite.mockRecorder.On("Record", ctx, actor, domain.ActionClockIn, "Entry ID: 6").Return()

	got, err := suite.service.ClockIn(ctx, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(6), got.ID)
	suite.mockTimeRepo.AssertExpectations(suite.T())
}

func (suite *TimeClockServiceTestSuite) TestClockIn_AlreadyOpen() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	open := &domain.TimeEntry{ID: 4, UserUID: actor.UID}

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(open, nil)

	_, err := suite.service.ClockIn(ctx, actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockTimeRepo.AssertNotCalled(suite.T(), "InsertClockIn", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimeClockServiceTestSuite) TestClockOut_NoOpenEntry() {
	ctx := context.Background()
	actor := staffUser("staff-1")

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(nil, nil)

	_, err := suite.service.ClockOut(ctx, actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockTimeRepo.AssertNotCalled(suite.T(), "CloseEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimeClockServiceTestSuite) TestClockOut_ClosesOpenEntry() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	clockIn := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	open := &domain.TimeEntry{ID: 4, UserUID: actor.UID, ClockIn: clockIn}
	hours := decimal.RequireFromString("8.5")
	closed := &domain.TimeEntry{ID: 4, UserUID: actor.UID, ClockIn: clockIn, HoursWorked: &hours}

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(open, nil)
	suite.mockTimeRepo.On("CloseEntry", ctx, int64(4), mock.AnythingOfType("time.Time"), mock.AnythingOfType("decimal.Decimal")).Return(closed, nil)
	suite.mockRecorder.On("Record", ctx, actor, domain.ActionClockOut, "Entry ID: 4, Hours: 8.50").Return()

	got, err := suite.service.ClockOut(ctx, actor)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), got.HoursWorked.Equal(decimal.RequireFromString("8.5")))
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *TimeClockServiceTestSuite) TestStatus_NilWhenClockedOut() {
	ctx := context.Background()
	actor := staffUser("staff-1")

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(nil, nil)

	got, err := suite.service.Status(ctx, actor)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *TimeClockServiceTestSuite) TestStatus_NotFoundLookupIsNotAnError() {
	ctx := context.Background()
	actor := staffUser("staff-1")

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(nil, apperrors.ErrNotFound)

	got, err := suite.service.Status(ctx, actor)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *TimeClockServiceTestSuite) TestClockOut_NotFoundLookupMeansNoOpenEntry() {
	ctx := context.Background()
	actor := staffUser("staff-1")

	suite.mockTimeRepo.On("FindOpenEntry", ctx, actor.UID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ClockOut(ctx, actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.EqualError(suite.T(), err, "no open time entry: resource not found")
	suite.mockTimeRepo.AssertNotCalled(suite.T(), "CloseEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimeClockServiceTestSuite) TestTimesheetReport_RequiresAdmin() {
	ctx := context.Background()
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	_, err := suite.service.TimesheetReport(ctx, staffUser("staff-1"), start, end)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockTimeRepo.AssertNotCalled(suite.T(), "TimesheetRows", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimeClockServiceTestSuite) TestTimesheetCSV_FormatsRows() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	payRate := decimal.RequireFromString("10.50")
	rows := []domain.TimesheetRow{
		{
			UserUID:    "staff-1",
			FullName:   "Alice Smith",
			Email:      "alice@example.com",
			PayRate:    &payRate,
			TotalHours: decimal.RequireFromString("8.5"),
			TotalPay:   decimal.RequireFromString("89.25"),
		},
	}

	suite.mockTimeRepo.On("TimesheetRows", ctx, start, end).Return(rows, nil)

	csvOut, err := suite.service.TimesheetCSV(ctx, admin, start, end)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(),
		"Employee,Email,Pay Rate,Total Hours,Total Pay\nAlice Smith,alice@example.com,10.50,8.50,89.25\n",
		csvOut)
}

func (suite *TimeClockServiceTestSuite) TestLaborVsSales_ZeroSalesGivesZeroPercentage() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("SumAmountsForDate", ctx, domain.Sale, date).Return(decimal.Zero, nil)
	suite.mockReporting.On("LaborCostForDate", ctx, date).Return(decimal.RequireFromString("40"), nil)

	report, err := suite.service.LaborVsSales(ctx, admin, date)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2024-06-03", report.Date)
	assert.True(suite.T(), report.TotalLaborCost.Equal(decimal.RequireFromString("40")))
	assert.True(suite.T(), report.LaborCostPercentage.IsZero())
}

func (suite *TimeClockServiceTestSuite) TestLaborVsSales_ComputesPercentage() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("SumAmountsForDate", ctx, domain.Sale, date).Return(decimal.RequireFromString("200"), nil)
	suite.mockReporting.On("LaborCostForDate", ctx, date).Return(decimal.RequireFromString("50"), nil)

	report, err := suite.service.LaborVsSales(ctx, admin, date)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), report.LaborCostPercentage.Equal(decimal.RequireFromString("25")))
}

func TestTimeClockService(t *testing.T) {
	suite.Run(t, new(TimeClockServiceTestSuite))
}
