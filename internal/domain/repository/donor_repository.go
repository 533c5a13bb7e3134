package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type DonorRepository interface {
	FindAll(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error)
	FindByID(ctx context.Context, id int64) (*entity.Donor, error)
	FindByUserID(ctx context.Context, userID int64) (*entity.Donor, error)
	Save(ctx context.Context, donor *entity.Donor) (*entity.Donor, error)
	Delete(ctx context.Context, id int64) error
}
