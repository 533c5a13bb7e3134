package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) domainRepo.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindAll(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	return first[entity.Role](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	return first[entity.Role](r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name))
}

func (r *roleRepository) FindDefault(ctx context.Context) (*entity.Role, error) {
	return first[entity.Role](r.db.WithContext(ctx).Where("is_default = ?", true))
}

func (r *roleRepository) Save(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if role.IsDefault {
			err := tx.Model(&entity.Role{}).
				Where("is_default = ? AND id <> ?", true, role.ID).
				Update("is_default", false).Error
			if err != nil {
				return translateError(err)
			}
		}
		return save(tx, role, role.ID, "role")
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Role{}, id, "role")
}
