package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type AddressRepository interface {
	FindAll(ctx context.Context) ([]entity.Address, error)
	FindByID(ctx context.Context, id int64) (*entity.Address, error)
	// FindByFullAddress matches the street case-insensitively and the numbers exactly.
	FindByFullAddress(ctx context.Context, street, interiorNumber, exteriorNumber string, neighborhoodID int64) (*entity.Address, error)
	FindByNeighborhood(ctx context.Context, neighborhoodID int64) ([]entity.Address, error)
	Save(ctx context.Context, address *entity.Address) (*entity.Address, error)
	Delete(ctx context.Context, id int64) error
}
