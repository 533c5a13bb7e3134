package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) domainRepo.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Neighborhood").Preload("Coordinate")
}

func (r *addressRepository) FindAll(ctx context.Context) ([]entity.Address, error) {
	var addresses []entity.Address
	if err := r.query(ctx).Order("street ASC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	return first[entity.Address](r.query(ctx).Where("id = ?", id))
}

func (r *addressRepository) FindByFullAddress(ctx context.Context, street, interiorNumber, exteriorNumber string, neighborhoodID int64) (*entity.Address, error) {
	return first[entity.Address](r.query(ctx).
		Where("LOWER(street) = LOWER(?)", street).
		Where("interior_number = ? AND exterior_number = ?", interiorNumber, exteriorNumber).
		Where("neighborhood_id = ?", neighborhoodID))
}

func (r *addressRepository) FindByNeighborhood(ctx context.Context, neighborhoodID int64) ([]entity.Address, error) {
	var addresses []entity.Address
	err := r.query(ctx).
		Where("neighborhood_id = ?", neighborhoodID).
		Order("street ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Save(ctx context.Context, address *entity.Address) (*entity.Address, error) {
	if err := save(r.db.WithContext(ctx), address, address.ID, "address"); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, address.ID)
}

func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Address{}, id, "address")
}
