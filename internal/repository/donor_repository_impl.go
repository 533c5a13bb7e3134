package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type donorRepository struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) domainRepo.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User.Role").
		Preload("Address.Neighborhood").
		Preload("Address.Coordinate")
}

func (r *donorRepository) FindAll(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error) {
	query := r.query(ctx)

	if filter != nil {
		if filter.BloodType != "" {
			query = query.Where("blood_type = ?", filter.BloodType)
		}
		if filter.Active != nil {
			query = query.Where("active = ?", *filter.Active)
		}
		if filter.NeighborhoodID != 0 {
			addresses := r.db.WithContext(ctx).Model(&entity.Address{}).
				Select("id").
				Where("neighborhood_id = ?", filter.NeighborhoodID)
			query = query.Where("address_id IN (?)", addresses)
		}
	}

	var donors []entity.Donor
	if err := query.Order("id ASC").Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *donorRepository) FindByID(ctx context.Context, id int64) (*entity.Donor, error) {
	return first[entity.Donor](r.query(ctx).Where("id = ?", id))
}

func (r *donorRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Donor, error) {
	return first[entity.Donor](r.query(ctx).Where("user_id = ?", userID))
}

func (r *donorRepository) Save(ctx context.Context, donor *entity.Donor) (*entity.Donor, error) {
	if err := save(r.db.WithContext(ctx), donor, donor.ID, "donor"); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, donor.ID)
}

func (r *donorRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Donor{}, id, "donor")
}
