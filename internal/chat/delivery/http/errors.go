package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"internship-assistant/internal/chat"
	"internship-assistant/pkg/response"
)

var (
	errInvalidBody    = response.NewHTTPError(http.StatusBadRequest, "request body must be valid JSON")
	errEmptyMessage   = response.NewHTTPError(http.StatusBadRequest, "message must not be empty")
	errChatDisabled   = response.NewHTTPError(http.StatusServiceUnavailable, "chat is not available")
	errRequestTimeout = response.NewHTTPError(http.StatusRequestTimeout, "request was cancelled")
)

// validationError reports the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errInvalidBody
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return response.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is required", fe.Field()))
	case "oneof":
		return response.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
	default:
		return response.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// mapError translates use-case errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion):
		return errEmptyMessage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errRequestTimeout
	default:
		return nil
	}
}
