// Package common defines shared constants and sentinel errors used across
// drawerfinder layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Credential store errors.
	ErrDuplicateUser = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")

	// Auth errors.
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUnauthorized      = errors.New("not logged in")
	ErrForbidden         = errors.New("administrator role required")

	// Validation errors.
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidDrawer        = errors.New("invalid drawer number")

	// Inventory store errors.
	ErrIndexOutOfRange = errors.New("index out of range")

	// Storage wiring errors.
	ErrUnknownStorage = errors.New("unknown storage backend")
)
