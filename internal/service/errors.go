package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDisabled is returned when a deactivated account logs in
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrLedgerUnavailable is returned when the billing ledger cannot be reached
	ErrLedgerUnavailable = errors.New("billing ledger unavailable")
)
