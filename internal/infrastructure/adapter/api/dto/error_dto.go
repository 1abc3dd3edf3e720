package dto

import "time"

// ErrorResponse is the failure envelope of every JSON endpoint
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds a failure envelope. detail is omitted when empty.
func NewErrorResponse(code int, message, detail string, now time.Time) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      code,
		Error:     detail,
		Timestamp: now,
	}
}
