package dto

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
//
// The message travels under the "error" key; details carry the inner error
// text when one is available (e.g., the store's duplicate-key message).
type ErrorResponse struct {
	Message      string    `json:"error" example:"invalid date format, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"details,omitempty" example:"parsing time ..."`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
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

// Error implements the error interface so an ErrorResponse can be passed
// where an error is expected (e.g., gin's error list).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
