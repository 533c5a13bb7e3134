package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedErrorKeepsMessageAndCategory(t *testing.T) {
	errRoleNotFound := New("role not found", ErrInvalidReference)
	wrapped := fmt.Errorf("%w: id %d", errRoleNotFound, 7)

	assert.Equal(t, "role not found: id 7", wrapped.Error())
	assert.ErrorIs(t, wrapped, errRoleNotFound)
	assert.ErrorIs(t, wrapped, ErrInvalidReference)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
}

func TestValidation(t *testing.T) {
	err := Validation("name", "must not be empty")

	assert.EqualError(t, err, "validation failed: name must not be empty")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", New("x not found", ErrNotFound), ErrNotFound},
		{"already exists", fmt.Errorf("save: %w", ErrAlreadyExists), ErrAlreadyExists},
		{"persistence", New("boom", ErrPersistence), ErrPersistence},
		{"unknown", errors.New("db down"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.err))
		})
	}
}

func TestConstraintError(t *testing.T) {
	err := fmt.Errorf("save user: %w", &ConstraintError{
		Constraint: "ux_users_email",
		Message:    "duplicate key value",
		Category:   ErrAlreadyExists,
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
	name, ok := ViolatedConstraint(err)
	assert.True(t, ok)
	assert.Equal(t, "ux_users_email", name)

	_, ok = ViolatedConstraint(errors.New("db down"))
	assert.False(t, ok)
}
