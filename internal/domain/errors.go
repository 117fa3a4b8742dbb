package domain

import (
	"errors"
	"fmt"
)

// Common domain errors surfaced by strict configuration validation.
// Parsing and aggregation never return errors; malformed input degrades
// to documented defaults instead.
var (
	// ErrUnknownMode indicates an unrecognized protocol identifier in a
	// context requiring strict validation.
	ErrUnknownMode = errors.New("unknown deliberation mode")

	// ErrUnknownDateRange indicates an unrecognized date-range preset.
	ErrUnknownDateRange = errors.New("unknown date range preset")

	// ErrInvalidConfiguration indicates that configuration is invalid or
	// incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrTooFewContestants indicates a tournament seeded with fewer than
	// two contestants.
	ErrTooFewContestants = errors.New("tournament requires at least two contestants")
)

// ValidationError represents an error that occurred during validation.
// It can contain multiple validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
