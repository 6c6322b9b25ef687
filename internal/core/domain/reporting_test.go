package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shiftbooks/backoffice/internal/core/domain"
)

func TestLaborCostPercentage(t *testing.T) {
	pct := domain.LaborCostPercentage(decimal.RequireFromString("50"), decimal.RequireFromString("200"))
	assert.True(t, pct.Equal(decimal.RequireFromString("25")))
}

func TestLaborCostPercentage_ZeroSales(t *testing.T) {
	pct := domain.LaborCostPercentage(decimal.RequireFromString("40"), decimal.Zero)
	assert.True(t, pct.IsZero())
}

func TestLaborCostPercentage_Rounds(t *testing.T) {
	pct := domain.LaborCostPercentage(decimal.RequireFromString("1"), decimal.RequireFromString("3"))
	assert.True(t, pct.Equal(decimal.RequireFromString("33.33")))
}

func TestDashboardSummary_Balances(t *testing.T) {
	s := domain.DashboardSummary{
		TodaysSales:        decimal.RequireFromString("200"),
		TodaysExpenses:     decimal.RequireFromString("50"),
		YesterdaysSales:    decimal.RequireFromString("180"),
		YesterdaysExpenses: decimal.RequireFromString("30"),
	}

	assert.True(t, s.TodaysBalance().Equal(decimal.RequireFromString("150")))
	assert.True(t, s.YesterdaysBalance().Equal(decimal.RequireFromString("150")))
}

func TestHoursBetween(t *testing.T) {
	in := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 6, 3, 17, 30, 0, 0, time.UTC)

	assert.True(t, domain.HoursBetween(in, out).Equal(decimal.RequireFromString("8.5")))
}

func TestHoursBetween_RoundsToTwoPlaces(t *testing.T) {
	in := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	out := in.Add(100 * time.Minute)

	assert.True(t, domain.HoursBetween(in, out).Equal(decimal.RequireFromString("1.67")))
}
