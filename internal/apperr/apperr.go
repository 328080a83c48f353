// Package apperr defines the error taxonomy shared by all usecases.
// Delivery layers map these sentinels onto HTTP statuses; nothing below
// the delivery layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a unique key (email) is already taken.
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials means the password check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSignature means payment verification failed. The ledger
	// must not be mutated when this is returned.
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrUpstream means an external collaborator (media host, mail,
	// payment gateway, model endpoint) failed. Never retried here.
	ErrUpstream = errors.New("upstream failure")

	// ErrValidation means required request fields are missing or malformed.
	ErrValidation = errors.New("validation failure")
)

// Wrap attaches context to a sentinel while keeping errors.Is working.
func Wrap(sentinel error, msg string) error {
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// HTTPStatus translates a usecase error into the status the original API
// surfaced. Login's not-found intentionally maps to 400, so the login
// handler overrides this table for that one case.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidSignature),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
