// Package apperr defines the error kinds shared between the service layer
// and the HTTP handlers. Services wrap these sentinels with context and
// handlers match them with errors.Is to pick a response status.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation covers missing or malformed input. Recoverable by
	// resubmitting corrected input.
	ErrValidation = errors.New("invalid input")

	// ErrConflict covers duplicate unique fields, e.g. an email that is
	// already registered.
	ErrConflict = errors.New("already exists")

	// ErrAuthentication covers every no-valid-identity case: missing
	// token, bad signature, expired token and failed logins. Login
	// failures never say whether the email or the password was wrong.
	ErrAuthentication = errors.New("invalid credentials")

	// ErrAuthorization means the caller is known but has no rights over
	// the target resource.
	ErrAuthorization = errors.New("forbidden")

	ErrNotFound = errors.New("not found")

	// ErrStorage reports a blob-store failure that didn't stop the
	// metadata operation itself.
	ErrStorage = errors.New("storage error")
)

// HTTPStatus maps an error to the status code handlers respond with.
// Anything that isn't one of the known kinds is an internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns a client-safe description of err. Internal errors are
// collapsed to a generic message so details only reach the logs.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
