package dto

// DataResponse is the success envelope: every 2xx payload sits under "data".
type DataResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Wrap puts a payload under the data key.
func Wrap(payload any) DataResponse {
	return DataResponse{Data: payload}
}

// MessageResponse is the body for mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DateRangeParams binds the start_date/end_date query pair used by the rota,
// time-entry, and report endpoints. Dates are YYYY-MM-DD.
type DateRangeParams struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}
