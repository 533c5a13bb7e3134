package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
)

// first runs tx and returns the first row, or nil when there is none.
func first[T any](tx *gorm.DB) (*T, error) {
	var out T
	if err := tx.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// save inserts value when id is zero and otherwise rewrites every column of
// the row with that id. Associations are never written.
func save(tx *gorm.DB, value any, id int64, name string, omit ...string) error {
	if id == 0 {
		return translateError(tx.Omit(clause.Associations).Create(value).Error)
	}

	omit = append(omit, "id", "created_at", clause.Associations)
	result := tx.Model(value).Select("*").Omit(omit...).Updates(value)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(name, id)
	}
	return nil
}

// remove deletes the row with id from model's table.
func remove(tx *gorm.DB, model any, id int64, name string) error {
	result := tx.Delete(model, id)
	if result.Error != nil {
		return translateDeleteError(result.Error, name, id)
	}
	if result.RowsAffected == 0 {
		return notFound(name, id)
	}
	return nil
}

func notFound(name string, id int64) error {
	return fmt.Errorf("%s %d: %w", name, id, apperror.ErrNotFound)
}

// translateError maps postgres integrity violations onto apperror
// categories. Other errors are returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgUniqueViolation:
		return &apperror.ConstraintError{Constraint: pgErr.ConstraintName, Message: pgErr.Message, Category: apperror.ErrAlreadyExists}
	case pgErr.Code == pgForeignKeyViolation:
		return &apperror.ConstraintError{Constraint: pgErr.ConstraintName, Message: pgErr.Message, Category: apperror.ErrInvalidReference}
	case strings.HasPrefix(pgErr.Code, pgIntegrityClass):
		return &apperror.ConstraintError{Constraint: pgErr.ConstraintName, Message: pgErr.Message, Category: apperror.ErrPersistence}
	}
	return err
}

// translateDeleteError reports a row still referenced by others as a
// persistence failure instead of an invalid reference.
func translateDeleteError(err error, name string, id int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return &apperror.ConstraintError{
			Constraint: pgErr.ConstraintName,
			Message:    fmt.Sprintf("%s %d is still referenced: %s", name, id, pgErr.Message),
			Category:   apperror.ErrPersistence,
		}
	}
	return translateError(err)
}
