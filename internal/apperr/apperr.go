// Package apperr defines the error kinds shared by the store, services and
// handlers. Handlers map them to HTTP statuses; everything below the transport
// works with errors.Is against these sentinels.
package apperr

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("storage unavailable")
)
