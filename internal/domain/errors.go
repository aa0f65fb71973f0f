package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrValidation marks caller input errors (blank text, blank sentence).
	// No upstream call is attempted for these.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration marks missing or broken process configuration,
	// discovered on first use (e.g. absent upstream API key).
	ErrConfiguration = errors.New("configuration error")

	// ErrProcessing marks upstream transport or status failures. It aborts
	// the whole analysis; malformed LLM content does NOT raise it and
	// degrades to an empty component list instead.
	ErrProcessing = errors.New("processing error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
