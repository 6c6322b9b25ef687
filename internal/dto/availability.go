package dto

// CreateAvailabilityRequest is a staff time-off submission. Times are
// RFC 3339; start must precede end (checked in the service).
type CreateAvailabilityRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
	IsAllDay  bool   `json:"is_all_day"`
}
