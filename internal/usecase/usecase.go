// Package usecase orchestrates the blood bank operations. Each family checks
// references and natural keys against the repositories before writing; the
// store constraints remain the final backstop.
package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
)

const dateLayout = "2006-01-02"

func notFound(err error, id int64) error {
	return fmt.Errorf("%w: id %d", err, id)
}

// storeError maps an AlreadyExists reported by the store onto duplicate, the
// error the advisory check returns for the same conflict.
func storeError(err error, duplicate error) error {
	if duplicate != nil && errors.Is(err, apperror.ErrAlreadyExists) {
		return fmt.Errorf("%w: %v", duplicate, err)
	}
	return err
}

// setText applies value to dst when present and reports whether dst changed.
func setText(field string, value *string, dst *string, required bool) (bool, error) {
	if value == nil || *value == *dst {
		return false, nil
	}
	if required && strings.TrimSpace(*value) == "" {
		return false, apperror.Validation(field, "must not be empty")
	}
	*dst = *value
	return true, nil
}

func setID(value *int64, dst *int64) bool {
	if value == nil || *value == *dst {
		return false
	}
	*dst = *value
	return true
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, *value)
	}
	return &t, nil
}
