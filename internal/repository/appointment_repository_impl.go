package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Order("scheduled_at ASC, id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	return first[entity.Appointment](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *appointmentRepository) FindByDonorID(ctx context.Context, donorID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("scheduled_at ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	if err := save(r.db.WithContext(ctx), appointment, appointment.ID, "appointment"); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.Appointment{}, id, "appointment")
}
