package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is a single clock-in/clock-out record. ClockOut and HoursWorked
// are nil while the entry is open; HoursWorked is fixed at clock-out and
// never recomputed afterwards.
type TimeEntry struct {
	ID          int64            `json:"id"`
	UserUID     string           `json:"user_uid"`
	ClockIn     time.Time        `json:"clock_in_timestamp"`
	ClockOut    *time.Time       `json:"clock_out_timestamp,omitempty"`
	HoursWorked *decimal.Decimal `json:"actual_hours_worked,omitempty"`
	IsApproved  bool             `json:"is_approved"`

	// Populated on admin listings that join the employee.
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// IsOpen reports whether the entry has no clock-out yet.
func (e TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// HoursBetween computes worked hours between two instants, rounded to two
// decimal places, as stored at clock-out.
func HoursBetween(clockIn, clockOut time.Time) decimal.Decimal {
	return decimal.NewFromFloat(clockOut.Sub(clockIn).Hours()).Round(2)
}
