// Package entity holds the domain records of the blood bank. The gorm tags
// describe the row shape; the schema itself is owned by the SQL migrations.
package entity

import (
	"strings"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation(field, "must not be empty")
	}
	return nil
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return DateOnly(*a).Equal(DateOnly(*b))
}

// DateOnly drops the clock part of t, keeping its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
