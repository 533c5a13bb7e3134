package usecase

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	GetAll(ctx context.Context) ([]entity.Appointment, error)
	GetByID(ctx context.Context, id int64) (*entity.Appointment, error)
	GetByDonor(ctx context.Context, donorID int64) ([]entity.Appointment, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	donorRepo       repository.DonorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	donorRepo repository.DonorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		donorRepo:       donorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, notFound(ErrAppointmentNotFound, id)
	}
	return appointment, nil
}

func (u *appointmentUsecase) GetByDonor(ctx context.Context, donorID int64) ([]entity.Appointment, error) {
	if err := u.checkDonor(ctx, donorID, ErrDonorNotValid); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDonorID(ctx, donorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by donor: %+v", err)
		return nil, err
	}
	return appointments, nil
}

// checkDonor resolves donorID, failing with invalid when it does not exist.
func (u *appointmentUsecase) checkDonor(ctx context.Context, donorID int64, invalid error) error {
	donor, err := u.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor by ID: %+v", err)
		return err
	}
	if donor == nil {
		return notFound(invalid, donorID)
	}
	return nil
}

// Create books a pending appointment.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	appointment, err := entity.NewAppointment(req.ScheduledAt, req.DonorID, req.RecipientID)
	if err != nil {
		return nil, err
	}

	if err := u.checkDonor(ctx, appointment.DonorID, ErrDonorNotValid); err != nil {
		return nil, err
	}
	if err := u.checkDonor(ctx, appointment.RecipientID, ErrRecipientNotValid); err != nil {
		return nil, err
	}

	saved, err := u.appointmentRepo.Save(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityAppointment, saved.ID, saved)
	return saved, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	appointment, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *appointment

	if req.ScheduledAt != nil && !req.ScheduledAt.Equal(appointment.ScheduledAt) {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if setID(req.DonorID, &appointment.DonorID) {
		if err := u.checkDonor(ctx, appointment.DonorID, ErrDonorNotValid); err != nil {
			return nil, err
		}
	}
	if setID(req.RecipientID, &appointment.RecipientID) {
		if err := u.checkDonor(ctx, appointment.RecipientID, ErrRecipientNotValid); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := appointment.UpdateStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	return u.save(ctx, &old, appointment)
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Appointment, error) {
	appointment, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *appointment

	if err := appointment.UpdateStatus(status); err != nil {
		return nil, err
	}

	return u.save(ctx, &old, appointment)
}

func (u *appointmentUsecase) save(ctx context.Context, old, appointment *entity.Appointment) (*entity.Appointment, error) {
	saved, err := u.appointmentRepo.Save(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityAppointment, saved.ID, old, saved)
	}
	return saved, nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int64) error {
	appointment, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityAppointment, id, appointment)
	return nil
}
