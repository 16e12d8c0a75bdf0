package response

import "net/http"

// HTTPError is an error that knows its HTTP status. Message is shown to the client as is.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common client errors
var (
	ErrTooManyRequests    = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
	ErrServiceUnavailable = NewHTTPError(http.StatusServiceUnavailable, "Service is not ready")
)
