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
	"github.com/shiftbooks/backoffice/internal/dto"
)

type RotaServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockShiftRepository
	mockRecorder *MockActivityRecorder
	service      ports.RotaSvc
}

func (suite *RotaServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockShiftRepository)
	suite.mockRecorder = new(MockActivityRecorder)
	suite.service = services.NewRotaService(suite.mockRepo, suite.mockRecorder)
}

func (suite *RotaServiceTestSuite) TestCreateTemplate_Success() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	req := dto.ShiftTemplateRequest{Name: "Morning", StartTime: "09:00:00", EndTime: "13:00:00"}
	saved := &domain.ShiftTemplate{ID: 1, Name: "Morning", StartTime: "09:00:00", EndTime: "13:00:00"}

	suite.mockRepo.On("SaveTemplate", ctx, mock.AnythingOfType("domain.ShiftTemplate")).Return(saved, nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionCreateShiftTemplate, "Name: Morning").Return()

	got, err := suite.service.CreateTemplate(ctx, admin, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.ID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *RotaServiceTestSuite) TestCreateTemplate_RejectsBadTime() {
	ctx := context.Background()
	req := dto.ShiftTemplateRequest{Name: "Morning", StartTime: "nine", EndTime: "13:00:00"}

	_, err := suite.service.CreateTemplate(ctx, adminUser("admin-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTemplate", mock.Anything, mock.Anything)
}

func (suite *RotaServiceTestSuite) TestCreateTemplate_RequiresAdmin() {
	ctx := context.Background()
	req := dto.ShiftTemplateRequest{Name: "Morning", StartTime: "09:00:00", EndTime: "13:00:00"}

	_, err := suite.service.CreateTemplate(ctx, staffUser("staff-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *RotaServiceTestSuite) TestAssignShift_ConflictPassesThrough() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	req := dto.AssignShiftRequest{UserUID: "staff-1", ShiftTemplateID: 2, ShiftDate: "2024-06-03"}

	suite.mockRepo.On("SaveScheduledShift", ctx, mock.AnythingOfType("domain.ScheduledShift")).
		Return(nil, apperrors.ErrConflict)

	_, err := suite.service.AssignShift(ctx, admin, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockRecorder.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RotaServiceTestSuite) TestAssignShift_RejectsBadDate() {
	ctx := context.Background()
	req := dto.AssignShiftRequest{UserUID: "staff-1", ShiftTemplateID: 2, ShiftDate: "03/06/2024"}

	_, err := suite.service.AssignShift(ctx, adminUser("admin-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveScheduledShift", mock.Anything, mock.Anything)
}

func (suite *RotaServiceTestSuite) TestPublishRange_RecordsAudit() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	suite.mockRepo.On("PublishShifts", ctx, start, end).Return(nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionPublishRota, "Week of 2024-06-03").Return()

	err := suite.service.PublishRange(ctx, admin, start, end)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *RotaServiceTestSuite) TestPublishRange_RejectsInvertedRange() {
	ctx := context.Background()
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	err := suite.service.PublishRange(ctx, adminUser("admin-1"), start, start.AddDate(0, 0, -1))

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "PublishShifts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RotaServiceTestSuite) TestWeeklyRota_ComputesLaborCost() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	rate := decimal.RequireFromString("10")
	entries := []domain.RotaEntry{
		{ID: 1, UserUID: "staff-1", ShiftName: "Morning", StartTime: "09:00:00", EndTime: "13:00:00", PayRate: &rate},
		{ID: 2, UserUID: "staff-2", ShiftName: "Evening", StartTime: "17:00:00", EndTime: "22:00:00", PayRate: &rate},
	}

	suite.mockRepo.On("FindRota", ctx, start, end).Return(entries, nil)

	got, total, err := suite.service.WeeklyRota(ctx, admin, start, end)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.True(suite.T(), total.Equal(decimal.RequireFromString("90")))
}

func (suite *RotaServiceTestSuite) TestMySchedule_ScopedToCaller() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	suite.mockRepo.On("FindPublishedShiftsForUser", ctx, actor.UID, start, end).
		Return([]domain.RotaEntry{{ID: 1, UserUID: actor.UID}}, nil)

	got, err := suite.service.MySchedule(ctx, actor, start, end)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
}

func TestRotaService(t *testing.T) {
	suite.Run(t, new(RotaServiceTestSuite))
}
