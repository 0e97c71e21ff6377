package models

import "errors"

// Shared error taxonomy. Services wrap these with context via fmt.Errorf and
// %w; handlers map them onto HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
)
