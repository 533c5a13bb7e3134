package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type RoleRepository interface {
	FindAll(ctx context.Context) ([]entity.Role, error)
	FindByID(ctx context.Context, id int64) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	// FindDefault returns the role flagged is_default, or nil when none is.
	FindDefault(ctx context.Context) (*entity.Role, error)
	// Save clears the default flag of every other role when role.IsDefault is set.
	Save(ctx context.Context, role *entity.Role) (*entity.Role, error)
	Delete(ctx context.Context, id int64) error
}
