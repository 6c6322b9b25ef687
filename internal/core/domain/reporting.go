package domain

import "github.com/shopspring/decimal"

// DashboardSummary holds same-day and prior-day ledger aggregates. All sums
// are zero, not null, when no rows match.
type DashboardSummary struct {
	TodaysSales        decimal.Decimal `json:"todaysSales"`
	TodaysExpenses     decimal.Decimal `json:"todaysExpenses"`
	YesterdaysSales    decimal.Decimal `json:"yesterdaysSales"`
	YesterdaysExpenses decimal.Decimal `json:"yesterdaysExpenses"`
}

// TodaysBalance is sales minus expenses for the summary day.
func (s DashboardSummary) TodaysBalance() decimal.Decimal {
	return s.TodaysSales.Sub(s.TodaysExpenses)
}

// YesterdaysBalance is sales minus expenses for the prior day.
func (s DashboardSummary) YesterdaysBalance() decimal.Decimal {
	return s.YesterdaysSales.Sub(s.YesterdaysExpenses)
}

// TimesheetRow is one employee's payroll aggregate over a reporting window.
// Employees with no approved entries still appear with zero totals.
type TimesheetRow struct {
	UserUID    string           `json:"uid"`
	FullName   string           `json:"full_name"`
	Email      string           `json:"email"`
	PayRate    *decimal.Decimal `json:"pay_rate,omitempty"`
	TotalHours decimal.Decimal  `json:"total_hours"`
	TotalPay   decimal.Decimal  `json:"total_pay"`
}

// LaborVsSales compares a day's projected labor cost against its sales.
type LaborVsSales struct {
	Date                string          `json:"date"`
	TotalSales          decimal.Decimal `json:"totalSales"`
	TotalLaborCost      decimal.Decimal `json:"totalLaborCost"`
	LaborCostPercentage decimal.Decimal `json:"laborCostPercentage"`
}

// LaborCostPercentage computes laborCost/sales as a percentage, returning
// zero when sales are zero so the report never divides by zero.
func LaborCostPercentage(laborCost, sales decimal.Decimal) decimal.Decimal {
	if sales.IsZero() {
		return decimal.Zero
	}
	return laborCost.Div(sales).Mul(decimal.NewFromInt(100)).Round(2)
}
