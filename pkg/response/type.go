package response

import (
	"errors"
	"net/http"
)

// Resp is the envelope used by system endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorResp is the body written for failed API calls.
type ErrorResp struct {
	Error string `json:"error"`
}

// HTTPError carries the status and client-facing message of a failed request.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Common errors
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, DefaultErrorMessage)
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "Service unavailable")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)

// AsHTTPError unwraps err into an HTTPError, falling back to ErrInternalServerError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServerError
}
