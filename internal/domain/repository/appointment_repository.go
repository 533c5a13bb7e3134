package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	// FindByDonorID lists the appointments where donorID is the donor.
	FindByDonorID(ctx context.Context, donorID int64) ([]entity.Appointment, error)
	Save(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
	Delete(ctx context.Context, id int64) error
}
