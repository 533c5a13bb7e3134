package memory

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/repository"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) domainRepo.UserRepository {
	return &userRepository{s: s}
}

func (r *userRepository) FindAll(_ context.Context) ([]entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := values(r.s.users, func(u entity.User) int64 { return u.ID }, nil)
	out := make([]entity.User, 0, len(rows))
	for _, u := range rows {
		out = append(out, *r.s.loadUser(u))
	}
	return out, nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if u, ok := r.s.users[id]; ok {
		return r.s.loadUser(u), nil
	}
	return nil, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return r.s.loadUser(u), nil
		}
	}
	return nil, nil
}

func (r *userRepository) Save(_ context.Context, user *entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	previous, exists := r.s.users[user.ID]
	if user.ID != 0 && !exists {
		return nil, notFound("user", user.ID)
	}

	if _, ok := r.s.roles[user.RoleID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintUserRole)
	}
	for id, u := range r.s.users {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email {
			return nil, uniqueViolation(domainRepo.ConstraintUserEmail)
		}
		if u.Username == user.Username {
			return nil, uniqueViolation(domainRepo.ConstraintUserUsername)
		}
	}

	switch {
	case user.Password != "":
		if err := repository.HashPassword(user); err != nil {
			return nil, err
		}
	case user.ID == 0:
		return nil, apperror.Validation("password", "is required")
	default:
		user.PasswordHash = previous.PasswordHash
	}

	if user.ID == 0 {
		user.ID = r.s.nextID("users")
	}
	stamp(&user.CreatedAt, &user.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *user
	row.Role = entity.Role{}
	r.s.users[row.ID] = row
	return r.s.loadUser(row), nil
}

func (r *userRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return notFound("user", id)
	}
	for _, d := range r.s.donors {
		if d.UserID == id {
			return stillReferenced("user", id, domainRepo.ConstraintDonorUserRef)
		}
	}
	delete(r.s.users, id)
	return nil
}
