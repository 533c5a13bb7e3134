package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type municipalityRepository struct {
	db *gorm.DB
}

func NewMunicipalityRepository(db *gorm.DB) domainRepo.MunicipalityRepository {
	return &municipalityRepository{db: db}
}

func (r *municipalityRepository) FindAll(ctx context.Context) ([]entity.Municipality, error) {
	var municipalities []entity.Municipality
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&municipalities).Error; err != nil {
		return nil, err
	}
	return municipalities, nil
}

func (r *municipalityRepository) FindByID(ctx context.Context, id int64) (*entity.Municipality, error) {
	return first[entity.Municipality](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *municipalityRepository) FindByName(ctx context.Context, name string) (*entity.Municipality, error) {
	return first[entity.Municipality](r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name))
}

func (r *municipalityRepository) Save(ctx context.Context, municipality *entity.Municipality) (*entity.Municipality, error) {
	if err := save(r.db.WithContext(ctx), municipality, municipality.ID, "municipality"); err != nil {
		return nil, err
	}
	return municipality, nil
}

func (r *municipalityRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Municipality{}, id, "municipality")
}
