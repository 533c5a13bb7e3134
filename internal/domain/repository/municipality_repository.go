package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type MunicipalityRepository interface {
	FindAll(ctx context.Context) ([]entity.Municipality, error)
	FindByID(ctx context.Context, id int64) (*entity.Municipality, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Municipality, error)
	Save(ctx context.Context, municipality *entity.Municipality) (*entity.Municipality, error)
	Delete(ctx context.Context, id int64) error
}
