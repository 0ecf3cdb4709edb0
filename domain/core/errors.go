package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrRunNotFound     = fmt.Errorf("%w: run", ErrNotFound)
	ErrDomainNotFound  = fmt.Errorf("%w: domain", ErrNotFound)
	ErrPatternNotFound = fmt.Errorf("%w: pattern", ErrNotFound)

	// Validation errors
	ErrMissingField     = errors.New("missing required field")
	ErrEmptyActionSet   = errors.New("action set is empty")
	ErrEmptyScenario    = errors.New("scenario is empty")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Determinism errors
	ErrSeedMismatch = errors.New("seed mismatch")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewMissingFieldError(fields ...string) error {
	if len(fields) == 1 {
		return fmt.Errorf("%w: %s", ErrMissingField, fields[0])
	}
	return fmt.Errorf("%w: %v", ErrMissingField, fields)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrEmptyActionSet) ||
		errors.Is(err, ErrEmptyScenario)
}
