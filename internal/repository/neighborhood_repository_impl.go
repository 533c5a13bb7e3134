package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type neighborhoodRepository struct {
	db *gorm.DB
}

func NewNeighborhoodRepository(db *gorm.DB) domainRepo.NeighborhoodRepository {
	return &neighborhoodRepository{db: db}
}

func (r *neighborhoodRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Municipality")
}

func (r *neighborhoodRepository) FindAll(ctx context.Context) ([]entity.Neighborhood, error) {
	var neighborhoods []entity.Neighborhood
	if err := r.query(ctx).Order("name ASC").Find(&neighborhoods).Error; err != nil {
		return nil, err
	}
	return neighborhoods, nil
}

func (r *neighborhoodRepository) FindByID(ctx context.Context, id int64) (*entity.Neighborhood, error) {
	return first[entity.Neighborhood](r.query(ctx).Where("id = ?", id))
}

func (r *neighborhoodRepository) FindByNameAndMunicipality(ctx context.Context, name string, municipalityID int64) (*entity.Neighborhood, error) {
	return first[entity.Neighborhood](r.query(ctx).
		Where("LOWER(name) = LOWER(?) AND municipality_id = ?", name, municipalityID))
}

func (r *neighborhoodRepository) FindByMunicipality(ctx context.Context, municipalityID int64) ([]entity.Neighborhood, error) {
	var neighborhoods []entity.Neighborhood
	err := r.query(ctx).
		Where("municipality_id = ?", municipalityID).
		Order("name ASC").
		Find(&neighborhoods).Error
	if err != nil {
		return nil, err
	}
	return neighborhoods, nil
}

func (r *neighborhoodRepository) Save(ctx context.Context, neighborhood *entity.Neighborhood) (*entity.Neighborhood, error) {
	if err := save(r.db.WithContext(ctx), neighborhood, neighborhood.ID, "neighborhood"); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, neighborhood.ID)
}

func (r *neighborhoodRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Neighborhood{}, id, "neighborhood")
}
