package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type CoordinateRepository interface {
	FindAll(ctx context.Context) ([]entity.Coordinate, error)
	FindByID(ctx context.Context, id int64) (*entity.Coordinate, error)
	FindByLatLon(ctx context.Context, latitude, longitude string) (*entity.Coordinate, error)
	Save(ctx context.Context, coordinate *entity.Coordinate) (*entity.Coordinate, error)
	Delete(ctx context.Context, id int64) error
}
