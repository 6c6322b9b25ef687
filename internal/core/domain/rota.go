package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// timeOfDayLayout matches the ::text rendering of a Postgres TIME column.
const timeOfDayLayout = "15:04:05"

// ShiftTemplate is a reusable named time-of-day interval. Templates carry no
// date of their own; both times are treated as falling on the same day.
type ShiftTemplate struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	ColorCode string `json:"color_code,omitempty"`
}

// DurationHours returns the template's length in hours as a decimal.
// A malformed or zero-length template yields zero rather than an error so
// labor summaries degrade gracefully.
func (t ShiftTemplate) DurationHours() decimal.Decimal {
	start, err := time.Parse(timeOfDayLayout, t.StartTime)
	if err != nil {
		return decimal.Zero
	}
	end, err := time.Parse(timeOfDayLayout, t.EndTime)
	if err != nil {
		return decimal.Zero
	}
	d := end.Sub(start)
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(d.Hours())
}

// ValidateTimeOfDay checks that s is an HH:MM or HH:MM:SS clock value.
func ValidateTimeOfDay(s string) error {
	if _, err := time.Parse("15:04", s); err == nil {
		return nil
	}
	if _, err := time.Parse(timeOfDayLayout, s); err == nil {
		return nil
	}
	return fmt.Errorf("invalid time of day %q", s)
}

// ScheduledShift assigns a user to one shift-template instance on a date.
// A user holds at most one shift per calendar day; the store enforces it.
type ScheduledShift struct {
	ID              int64     `json:"id"`
	UserUID         string    `json:"user_uid"`
	ShiftTemplateID int64     `json:"shift_template_id"`
	ShiftDate       time.Time `json:"shift_date"`
	IsPublished     bool      `json:"is_published"`
}

// RotaEntry is a scheduled shift joined with its employee and template
// detail, as rendered in the weekly rota view.
type RotaEntry struct {
	ID        int64            `json:"id"`
	ShiftDate time.Time        `json:"shift_date"`
	UserUID   string           `json:"user_uid"`
	FullName  string           `json:"full_name"`
	JobRole   string           `json:"job_role,omitempty"`
	ShiftName string           `json:"shift_name"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	ColorCode string           `json:"color_code,omitempty"`
	PayRate   *decimal.Decimal `json:"pay_rate,omitempty"`
}

// Cost is the projected wage expense of this entry: template duration times
// the employee's pay rate. A missing pay rate counts as zero.
func (e RotaEntry) Cost() decimal.Decimal {
	rate := decimal.Zero
	if e.PayRate != nil {
		rate = *e.PayRate
	}
	tmpl := ShiftTemplate{StartTime: e.StartTime, EndTime: e.EndTime}
	return tmpl.DurationHours().Mul(rate).Round(2)
}

// TotalLaborCost sums the projected cost of all entries, recomputed on every
// view and never cached.
func TotalLaborCost(entries []RotaEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Cost())
	}
	return total
}
