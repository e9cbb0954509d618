package api

import (
	"errors"
	"net/http"

	"github.com/hearthealth/heart-health-api/internal/service/auth"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients. Note that absent
// documents never reach this path: the stores report them as valid empty
// results, so there is no 404 mapping.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest

	// Default: store or processor failure, surfaced as a generic 500.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "unauthorized access"
	case errors.Is(err, store.ErrInvalidID):
		return "Invalid document id"
	default:
		return "Internal server error"
	}
}
