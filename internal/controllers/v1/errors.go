package v1

import (
	"errors"
	"net/http"

	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/narrator"
)

type httpError struct {
	Error string `json:"error" example:"the amount must be greater than zero"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, narrator.ErrNarrationUnavailable) {
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

// errorString returns the error message for the response body.
//
// Internal errors only show the general message, details are logged
// where they occur.
func errorString(err error) *string {
	s := err.Error()
	if errors.Is(err, models.ErrGeneral) {
		s = models.ErrGeneral.Error()
	}

	return &s
}

var (
	errMonthsTooLarge     = errors.New("the months parameter must not be larger than 120")
	errDescriptionMissing = errors.New("the description parameter must be set")
)
