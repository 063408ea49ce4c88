package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound signals that a referenced template, item, or user record
	// is absent. Propagated to the caller as-is; the engine cannot
	// fabricate domain data.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists signals a uniqueness conflict in the backing store.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput signals input rejected before any state mutation
	// (non-positive xp amount, empty template, out-of-range rating).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState signals an operation applied to a record in the
	// wrong state (e.g. completing an already-completed review slot).
	// Indicates a caller-side bug or a stale view of the record.
	ErrInvalidState = errors.New("invalid state")

	// ErrUnauthorized signals that no acting user is present in the
	// context. Identity itself is an external collaborator; this only
	// guards the engine's ownership checks.
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// Unwraps to ErrInvalidInput so callers can match on the sentinel.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
