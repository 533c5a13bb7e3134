// Package memory implements the repository ports over process memory. It
// enforces the same unique keys and references as the SQL schema and is used
// by tests and by the server when APP_STORAGE=memory.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

// Store holds every table. Repositories built on the same Store see each
// other's rows.
type Store struct {
	mu  sync.RWMutex
	seq map[string]int64
	now func() time.Time

	municipalities map[int64]entity.Municipality
	neighborhoods  map[int64]entity.Neighborhood
	coordinates    map[int64]entity.Coordinate
	addresses      map[int64]entity.Address
	roles          map[int64]entity.Role
	users          map[int64]entity.User
	donors         map[int64]entity.Donor
	appointments   map[int64]entity.Appointment
	auditLogs      []entity.AuditLog
}

func NewStore() *Store {
	return &Store{
		seq:            make(map[string]int64),
		now:            time.Now,
		municipalities: make(map[int64]entity.Municipality),
		neighborhoods:  make(map[int64]entity.Neighborhood),
		coordinates:    make(map[int64]entity.Coordinate),
		addresses:      make(map[int64]entity.Address),
		roles:          make(map[int64]entity.Role),
		users:          make(map[int64]entity.User),
		donors:         make(map[int64]entity.Donor),
		appointments:   make(map[int64]entity.Appointment),
	}
}

// SeedRoles inserts the admin and default donor roles the SQL migrations seed.
func (s *Store) SeedRoles() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, role := range []entity.Role{
		{Name: entity.RoleAdmin, Permissions: []string{"*"}},
		{Name: entity.RoleDonor, Permissions: []string{"donors.read", "donors.write", "appointments.read", "appointments.write"}, IsDefault: true},
	} {
		role.ID = s.nextID("roles")
		role.CreatedAt = s.now()
		role.UpdatedAt = role.CreatedAt
		s.roles[role.ID] = role
	}
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func uniqueViolation(constraint string) error {
	return &apperror.ConstraintError{
		Constraint: constraint,
		Message:    "duplicate key value violates unique constraint",
		Category:   apperror.ErrAlreadyExists,
	}
}

func foreignKeyViolation(constraint string) error {
	return &apperror.ConstraintError{
		Constraint: constraint,
		Message:    "insert or update violates foreign key constraint",
		Category:   apperror.ErrInvalidReference,
	}
}

func stillReferenced(name string, id int64, constraint string) error {
	return &apperror.ConstraintError{
		Constraint: constraint,
		Message:    fmt.Sprintf("%s %d is still referenced", name, id),
		Category:   apperror.ErrPersistence,
	}
}

func notFound(name string, id int64) error {
	return fmt.Errorf("%s %d: %w", name, id, apperror.ErrNotFound)
}

// values returns the rows of table ordered by less, falling back to id.
func values[T any](table map[int64]T, id func(T) int64, less func(a, b T) bool) []T {
	out := make([]T, 0, len(table))
	for _, v := range table {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if less != nil {
			if less(out[i], out[j]) {
				return true
			}
			if less(out[j], out[i]) {
				return false
			}
		}
		return id(out[i]) < id(out[j])
	})
	return out
}

func byLowerText(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// stamp sets the timestamps of a row about to be written.
func stamp(created, updated *time.Time, previous time.Time, now time.Time) {
	if previous.IsZero() {
		*created = now
	} else {
		*created = previous
	}
	*updated = now
}
