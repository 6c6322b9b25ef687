package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type transactionService struct {
	BaseService
	txnRepo  ports.TransactionRepository
	activity ports.ActivityRecorder
	now      func() time.Time
}

// NewTransactionService creates the ledger service with its deletion
// approval workflow.
func NewTransactionService(txnRepo ports.TransactionRepository, activity ports.ActivityRecorder) ports.TransactionSvc {
	return &transactionService{txnRepo: txnRepo, activity: activity, now: time.Now}
}

var _ ports.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.User, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero: %w", apperrors.ErrValidation)
	}
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("type must be sale or expense: %w", apperrors.ErrValidation)
	}

	date := s.now()
	if req.Date != "" {
		parsed, err := parseFlexibleTime(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction_date: %w", apperrors.ErrValidation)
		}
		date = parsed
	}

	txn := domain.Transaction{
		UserUID:     actor.UID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        txnType,
		Category:    req.Category,
		Status:      domain.StatusApproved,
		Date:        date,
	}
	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	action := domain.ActionCreateExpense
	if txnType == domain.Sale {
		action = domain.ActionCreateSale
	}
	s.activity.Record(ctx, actor, action,
		fmt.Sprintf("Desc: %s, Cat: %s, Amt: %s", saved.Description, saved.Category, saved.Amount.StringFixed(2)))
	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", saved.ID), slog.String("type", string(txnType)))
	return saved, nil
}

func (s *transactionService) ListOwnTransactions(ctx context.Context, actor domain.User, date *time.Time) ([]domain.Transaction, error) {
	return s.txnRepo.FindTransactionsByOwner(ctx, actor.UID, date)
}

func (s *transactionService) ListAllTransactions(ctx context.Context, admin domain.User, date *time.Time) ([]domain.Transaction, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.txnRepo.FindAllTransactions(ctx, date)
}

func (s *transactionService) ListPendingDeletion(ctx context.Context, admin domain.User) ([]domain.Transaction, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.txnRepo.FindPendingDeletion(ctx)
}

// RequestDeletion stages a transaction for admin review. Only the owner may
// request; a row owned by someone else reads as NotFound so the endpoint
// does not leak other users' ledger entries.
func (s *transactionService) RequestDeletion(ctx context.Context, actor domain.User, id int64) error {
	if err := s.txnRepo.MarkPendingDelete(ctx, id, actor.UID); err != nil {
		return err
	}
	s.activity.Record(ctx, actor, domain.ActionRequestDeletion, fmt.Sprintf("Transaction ID: %d", id))
	return nil
}

func (s *transactionService) ApproveDeletion(ctx context.Context, admin domain.User, id int64) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionApproveDeletion, fmt.Sprintf("Transaction ID: %d", id))
	return nil
}

func (s *transactionService) RejectDeletion(ctx context.Context, admin domain.User, id int64) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if err := s.txnRepo.RestoreTransaction(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionRejectDeletion, fmt.Sprintf("Transaction ID: %d", id))
	return nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, admin domain.User, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("a reason for the edit is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero: %w", apperrors.ErrValidation)
	}
	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction_date: %w", apperrors.ErrValidation)
	}

	before, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	after := *before
	after.Description = req.Description
	after.Amount = req.Amount
	after.Date = date
	after.Category = req.Category

	updated, err := s.txnRepo.UpdateTransaction(ctx, after)
	if err != nil {
		return nil, err
	}

	diff := domain.DiffTransactions(*before, *updated)
	s.activity.Record(ctx, admin, domain.ActionUpdateTransaction,
		fmt.Sprintf("Reason: %s. Changes: %s", req.Reason, diff))
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, admin domain.User, id int64) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionAdminDeleteTransaction,
		fmt.Sprintf("Admin directly deleted Transaction ID: %d", id))
	return nil
}

func (s *transactionService) DashboardSummary(ctx context.Context, admin domain.User, date time.Time) (*domain.DashboardSummary, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	yesterday := date.AddDate(0, 0, -1)

	summary := &domain.DashboardSummary{}
	var err error
	if summary.TodaysSales, err = s.txnRepo.SumAmountsForDate(ctx, domain.Sale, date); err != nil {
		return nil, err
	}
	if summary.TodaysExpenses, err = s.txnRepo.SumAmountsForDate(ctx, domain.Expense, date); err != nil {
		return nil, err
	}
	if summary.YesterdaysSales, err = s.txnRepo.SumAmountsForDate(ctx, domain.Sale, yesterday); err != nil {
		return nil, err
	}
	if summary.YesterdaysExpenses, err = s.txnRepo.SumAmountsForDate(ctx, domain.Expense, yesterday); err != nil {
		return nil, err
	}
	return summary, nil
}

// parseFlexibleTime accepts RFC 3339 timestamps or bare YYYY-MM-DD dates,
// both of which the client sends depending on the form.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
