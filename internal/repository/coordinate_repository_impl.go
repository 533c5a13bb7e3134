package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type coordinateRepository struct {
	db *gorm.DB
}

func NewCoordinateRepository(db *gorm.DB) domainRepo.CoordinateRepository {
	return &coordinateRepository{db: db}
}

func (r *coordinateRepository) FindAll(ctx context.Context) ([]entity.Coordinate, error) {
	var coordinates []entity.Coordinate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&coordinates).Error; err != nil {
		return nil, err
	}
	return coordinates, nil
}

func (r *coordinateRepository) FindByID(ctx context.Context, id int64) (*entity.Coordinate, error) {
	return first[entity.Coordinate](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *coordinateRepository) FindByLatLon(ctx context.Context, latitude, longitude string) (*entity.Coordinate, error) {
	return first[entity.Coordinate](r.db.WithContext(ctx).
		Where("latitude = ? AND longitude = ?", latitude, longitude))
}

func (r *coordinateRepository) Save(ctx context.Context, coordinate *entity.Coordinate) (*entity.Coordinate, error) {
	if err := save(r.db.WithContext(ctx), coordinate, coordinate.ID, "coordinate"); err != nil {
		return nil, err
	}
	return coordinate, nil
}

func (r *coordinateRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Coordinate{}, id, "coordinate")
}
