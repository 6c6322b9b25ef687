package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Sale    TransactionType = "sale"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Sale || t == Expense
}

// TransactionStatus is the deletion-workflow state of a transaction.
// Physical deletion removes the row and is therefore not a status value.
type TransactionStatus string

const (
	// StatusApproved is the normal, visible state of a transaction.
	StatusApproved TransactionStatus = "approved"
	// StatusPendingDelete marks a transaction whose owner has requested
	// removal and is awaiting an admin decision.
	StatusPendingDelete TransactionStatus = "pending_delete"
)

// Transaction is a single ledger entry (a sale or an expense) owned by the
// user who recorded it.
type Transaction struct {
	ID          int64             `json:"id"`
	UserUID     string            `json:"user_uid"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        TransactionType   `json:"type"`
	Category    string            `json:"category,omitempty"`
	Status      TransactionStatus `json:"status"`
	Date        time.Time         `json:"transaction_date"`

	// OwnerEmail is populated on admin listings that join the owner.
	OwnerEmail string `json:"user_email,omitempty"`
}

// DiffTransactions compares a transaction before and after an admin edit and
// renders the human-readable change summary recorded in the activity log.
// Returns "No data fields were changed." when nothing differs.
func DiffTransactions(before, after Transaction) string {
	var changes []string
	if before.Description != after.Description {
		changes = append(changes, "Description updated.")
	}
	if !before.Amount.Equal(after.Amount) {
		changes = append(changes, fmt.Sprintf("Amount changed from £%s to £%s.",
			before.Amount.StringFixed(2), after.Amount.StringFixed(2)))
	}
	if !before.Date.Equal(after.Date) {
		changes = append(changes, "Date changed.")
	}
	if before.Category != after.Category {
		changes = append(changes, fmt.Sprintf("Category changed from %q to %q.",
			orNA(before.Category), orNA(after.Category)))
	}
	if len(changes) == 0 {
		return "No data fields were changed."
	}
	return strings.Join(changes, " ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
