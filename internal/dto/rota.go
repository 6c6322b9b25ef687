package dto

import (
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftTemplateRequest creates or replaces a shift template. Times are
// time-of-day values (HH:MM or HH:MM:SS) with no date component.
type ShiftTemplateRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	ColorCode string `json:"color_code"`
}

// AssignShiftRequest places one employee on one template instance for a date.
type AssignShiftRequest struct {
	UserUID         string `json:"user_uid" binding:"required"`
	ShiftTemplateID int64  `json:"shift_template_id" binding:"required"`
	ShiftDate       string `json:"shift_date" binding:"required,datetime=2006-01-02"`
}

// PublishRotaRequest marks every scheduled shift in the inclusive date range
// as published. Re-publishing is a no-op.
type PublishRotaRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// RotaResponse is the weekly rota plus its recomputed labor total.
type RotaResponse struct {
	Shifts         []domain.RotaEntry `json:"shifts"`
	TotalLaborCost decimal.Decimal    `json:"total_labor_cost"`
}
