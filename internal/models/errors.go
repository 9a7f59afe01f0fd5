package models

import "errors"

// Sentinel errors for domain-level error discrimination.
// Repositories and services wrap these so handlers can map failures to
// HTTP status codes without leaking storage details.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("storage unavailable")
)
