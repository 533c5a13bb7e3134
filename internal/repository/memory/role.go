package memory

import (
	"context"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type roleRepository struct {
	s *Store
}

func NewRoleRepository(s *Store) domainRepo.RoleRepository {
	return &roleRepository{s: s}
}

func (r *roleRepository) FindAll(_ context.Context) ([]entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := values(r.s.roles, func(role entity.Role) int64 { return role.ID }, nil)
	for i := range rows {
		rows[i] = cloneRole(rows[i])
	}
	return rows, nil
}

func (r *roleRepository) find(match func(entity.Role) bool) *entity.Role {
	for _, role := range values(r.s.roles, func(role entity.Role) int64 { return role.ID }, nil) {
		if match(role) {
			cloned := cloneRole(role)
			return &cloned
		}
	}
	return nil
}

func (r *roleRepository) FindByID(_ context.Context, id int64) (*entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.find(func(role entity.Role) bool { return role.ID == id }), nil
}

func (r *roleRepository) FindByName(_ context.Context, name string) (*entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.find(func(role entity.Role) bool { return strings.EqualFold(role.Name, name) }), nil
}

func (r *roleRepository) FindDefault(_ context.Context) (*entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.find(func(role entity.Role) bool { return role.IsDefault }), nil
}

func (r *roleRepository) Save(_ context.Context, role *entity.Role) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.roles {
		if id != role.ID && strings.EqualFold(existing.Name, role.Name) {
			return nil, uniqueViolation(domainRepo.ConstraintRoleName)
		}
	}

	previous, exists := r.s.roles[role.ID]
	if role.ID != 0 && !exists {
		return nil, notFound("role", role.ID)
	}

	if role.IsDefault {
		for id, existing := range r.s.roles {
			if id != role.ID && existing.IsDefault {
				existing.IsDefault = false
				existing.UpdatedAt = r.s.now()
				r.s.roles[id] = existing
			}
		}
	}

	if role.ID == 0 {
		role.ID = r.s.nextID("roles")
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}
	stamp(&role.CreatedAt, &role.UpdatedAt, previous.CreatedAt, r.s.now())

	row := cloneRole(*role)
	r.s.roles[row.ID] = row
	saved := cloneRole(row)
	return &saved, nil
}

func (r *roleRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.roles[id]; !ok {
		return notFound("role", id)
	}
	for _, u := range r.s.users {
		if u.RoleID == id {
			return stillReferenced("role", id, domainRepo.ConstraintUserRole)
		}
	}
	delete(r.s.roles, id)
	return nil
}
