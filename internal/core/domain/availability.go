package domain

import "time"

// AvailabilityStatus is the review state of an unavailability request.
// Rejection deletes the row outright, so there is no rejected value here.
type AvailabilityStatus string

const (
	AvailabilityPending  AvailabilityStatus = "pending"
	AvailabilityApproved AvailabilityStatus = "approved"
)

// AvailabilityRequest is a staff-submitted time-off window awaiting (or
// holding) admin approval.
type AvailabilityRequest struct {
	ID       int64              `json:"id"`
	UserUID  string             `json:"user_uid"`
	Start    time.Time          `json:"start_time"`
	End      time.Time          `json:"end_time"`
	Reason   string             `json:"reason,omitempty"`
	Status   AvailabilityStatus `json:"status"`
	IsAllDay bool               `json:"is_all_day"`

	// Populated on the admin pending queue, which joins the requester.
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Overlaps reports whether the request's window intersects [start, end)
// using half-open interval semantics.
func (a AvailabilityRequest) Overlaps(start, end time.Time) bool {
	return a.Start.Before(end) && a.End.After(start)
}
