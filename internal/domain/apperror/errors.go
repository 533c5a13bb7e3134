// Package apperror defines the error categories shared by the persistence
// adapters, the use cases and the HTTP layer.
//
// Every named error in the application wraps exactly one of these
// categories, so callers can branch with errors.Is on either the specific
// error (usecase.ErrMunicipalityNotFound) or its category (ErrNotFound).
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")
	ErrValidation       = errors.New("validation failed")
	ErrPersistence      = errors.New("persistence failure")
)

var categories = []error{ErrNotFound, ErrAlreadyExists, ErrInvalidReference, ErrValidation, ErrPersistence}

type namedError struct {
	message  string
	category error
}

func (e *namedError) Error() string { return e.message }

func (e *namedError) Unwrap() error { return e.category }

// New returns a named error belonging to category. The message is reported
// as-is; the category is only visible through errors.Is.
func New(message string, category error) error {
	return &namedError{message: message, category: category}
}

// Validation builds a ValidationError for a single field.
func Validation(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

// Category reports which of the known categories err belongs to, or nil.
func Category(err error) error {
	for _, c := range categories {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}

// ConstraintError is an integrity violation reported by the store. It
// belongs to Category and names the violated constraint.
type ConstraintError struct {
	Constraint string
	Message    string
	Category   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (constraint %s)", e.Message, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Category }

// ViolatedConstraint returns the constraint name carried by err, if any.
func ViolatedConstraint(err error) (string, bool) {
	var cErr *ConstraintError
	if errors.As(err, &cErr) {
		return cErr.Constraint, true
	}
	return "", false
}
