package http

import (
	"errors"
	"net/http"

	"internship-assistant/internal/talent"
	"internship-assistant/pkg/response"
)

var errInvalidLimit = response.NewHTTPError(http.StatusBadRequest, talent.ErrInvalidLimit.Error())

// mapError translates use-case errors into HTTP errors. nil means 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, talent.ErrInvalidLimit):
		return errInvalidLimit
	default:
		return nil
	}
}
