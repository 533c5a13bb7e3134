package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type NeighborhoodRepository interface {
	FindAll(ctx context.Context) ([]entity.Neighborhood, error)
	FindByID(ctx context.Context, id int64) (*entity.Neighborhood, error)
	// FindByNameAndMunicipality matches the name case-insensitively.
	FindByNameAndMunicipality(ctx context.Context, name string, municipalityID int64) (*entity.Neighborhood, error)
	FindByMunicipality(ctx context.Context, municipalityID int64) ([]entity.Neighborhood, error)
	Save(ctx context.Context, neighborhood *entity.Neighborhood) (*entity.Neighborhood, error)
	Delete(ctx context.Context, id int64) error
}
