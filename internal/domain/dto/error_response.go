package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint. It also implements the error interface so middleware can attach
// one to a gin context directly.
type ErrorResponse struct {
	Message      string    `json:"message" example:"days must be between 1 and 10"`
	ErrorDetails string    `json:"error,omitempty" example:"history depth exceeded: 15 days requested, max 10"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// The inner error is optional; when present its text is exposed as details.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
