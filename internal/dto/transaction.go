package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest carries a new sale or expense. Date is optional
// and defaults to now; category is free text from the client's suggestion
// list.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=sale expense"`
	Date        string          `json:"transaction_date"`
	Category    string          `json:"category"`
}

// UpdateTransactionRequest is the admin edit. Reason is mandatory and is
// recorded verbatim in the audit log alongside the field diff.
type UpdateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"transaction_date" binding:"required"`
	Category    string          `json:"category"`
	Reason      string          `json:"reason" binding:"required"`
}
