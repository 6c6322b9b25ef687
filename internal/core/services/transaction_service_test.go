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

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockTransactionRepository
	mockRecorder *MockActivityRecorder
	service      ports.TransactionSvc
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockRecorder = new(MockActivityRecorder)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockRecorder)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	req := dto.CreateTransactionRequest{
		Description: "Till takings",
		Amount:      decimal.NewFromInt(120),
		Type:        "sale",
		Category:    "Food",
	}
	saved := &domain.Transaction{
		ID:          1,
		UserUID:     actor.UID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        domain.Sale,
		Category:    req.Category,
		Status:      domain.StatusApproved,
	}
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(saved, nil)
	suite.mockRecorder.On("Record", ctx, actor, domain.ActionCreateSale, mock.AnythingOfType("string")).Return()

	got, err := suite.service.CreateTransaction(ctx, actor, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.ID)
	assert.Equal(suite.T(), domain.StatusApproved, got.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Description: "Broken glass",
		Amount:      decimal.NewFromInt(-5),
		Type:        "expense",
	}

	got, err := suite.service.CreateTransaction(ctx, staffUser("staff-1"), req)

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsMissingDescription() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Description: "   ",
		Amount:      decimal.NewFromInt(10),
		Type:        "sale",
	}

	_, err := suite.service.CreateTransaction(ctx, staffUser("staff-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListAllTransactions_RequiresAdmin() {
	ctx := context.Background()

	_, err := suite.service.ListAllTransactions(ctx, staffUser("staff-1"), nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAllTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRequestDeletion_RecordsAudit() {
	ctx := context.Background()
	actor := staffUser("staff-1")
	suite.mockRepo.On("MarkPendingDelete", ctx, int64(7), actor.UID).Return(nil)
	suite.mockRecorder.On("Record", ctx, actor, domain.ActionRequestDeletion, "Transaction ID: 7").Return()

	err := suite.service.RequestDeletion(ctx, actor, 7)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRequestDeletion_NotOwnerReadsAsNotFound() {
	ctx := context.Background()
	actor := staffUser("staff-2")
	suite.mockRepo.On("MarkPendingDelete", ctx, int64(7), actor.UID).Return(apperrors.ErrNotFound)

	err := suite.service.RequestDeletion(ctx, actor, 7)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRecorder.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApproveDeletion_DeletesRow() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	suite.mockRepo.On("DeleteTransaction", ctx, int64(7)).Return(nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionApproveDeletion, "Transaction ID: 7").Return()

	err := suite.service.ApproveDeletion(ctx, admin, 7)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRejectDeletion_Restores() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	suite.mockRepo.On("RestoreTransaction", ctx, int64(7)).Return(nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionRejectDeletion, "Transaction ID: 7").Return()

	err := suite.service.RejectDeletion(ctx, admin, 7)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RequiresReason() {
	ctx := context.Background()
	req := dto.UpdateTransactionRequest{
		Description: "Corrected",
		Amount:      decimal.NewFromInt(12),
		Date:        "2024-06-03",
		Reason:      "",
	}

	_, err := suite.service.UpdateTransaction(ctx, adminUser("admin-1"), 7, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AuditCarriesDiffAndReason() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	before := &domain.Transaction{
		ID:          7,
		Description: "Groceries run",
		Amount:      decimal.NewFromInt(10),
		Category:    "Groceries",
		Date:        time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	after := *before
	after.Category = "Rent"
	req := dto.UpdateTransactionRequest{
		Description: before.Description,
		Amount:      before.Amount,
		Date:        "2024-06-03",
		Category:    "Rent",
		Reason:      "miscategorized",
	}

	suite.mockRepo.On("FindTransactionByID", ctx, int64(7)).Return(before, nil)
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(&after, nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionUpdateTransaction,
		`Reason: miscategorized. Changes: Category changed from "Groceries" to "Rent".`).Return()

	got, err := suite.service.UpdateTransaction(ctx, admin, 7, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Rent", got.Category)
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDashboardSummary_SumsBothDays() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	today := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	suite.mockRepo.On("SumAmountsForDate", ctx, domain.Sale, today).Return(decimal.NewFromInt(200), nil)
	suite.mockRepo.On("SumAmountsForDate", ctx, domain.Expense, today).Return(decimal.NewFromInt(50), nil)
	suite.mockRepo.On("SumAmountsForDate", ctx, domain.Sale, yesterday).Return(decimal.NewFromInt(180), nil)
	suite.mockRepo.On("SumAmountsForDate", ctx, domain.Expense, yesterday).Return(decimal.Zero, nil)

	summary, err := suite.service.DashboardSummary(ctx, admin, today)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), summary.TodaysBalance().Equal(decimal.NewFromInt(150)))
	assert.True(suite.T(), summary.YesterdaysBalance().Equal(decimal.NewFromInt(180)))
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
