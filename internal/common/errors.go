// Package common defines sentinel errors shared across the record store,
// session, and CLI layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Caller-supplied data rejected before it reaches storage.
	ErrValidation = errors.New("validation error")

	// No resolvable identity for an operation that requires one.
	ErrUnauthorized = errors.New("unauthorized")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// PIN gate errors.
	ErrPinMismatch = errors.New("incorrect pin")
	ErrPinNotSet   = errors.New("pin not set")
)
