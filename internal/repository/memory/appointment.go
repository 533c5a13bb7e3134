package memory

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type appointmentRepository struct {
	s *Store
}

func NewAppointmentRepository(s *Store) domainRepo.AppointmentRepository {
	return &appointmentRepository{s: s}
}

func (r *appointmentRepository) list(match func(entity.Appointment) bool) []entity.Appointment {
	out := []entity.Appointment{}
	rows := values(r.s.appointments,
		func(a entity.Appointment) int64 { return a.ID },
		func(a, b entity.Appointment) bool { return a.ScheduledAt.Before(b.ScheduledAt) },
	)
	for _, a := range rows {
		if match == nil || match(a) {
			out = append(out, a)
		}
	}
	return out
}

func (r *appointmentRepository) FindAll(_ context.Context) ([]entity.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(nil), nil
}

func (r *appointmentRepository) FindByID(_ context.Context, id int64) (*entity.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if a, ok := r.s.appointments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *appointmentRepository) FindByDonorID(_ context.Context, donorID int64) ([]entity.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(func(a entity.Appointment) bool { return a.DonorID == donorID }), nil
}

func (r *appointmentRepository) Save(_ context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := entity.ParseAppointmentStatus(string(appointment.Status)); err != nil {
		return nil, &apperror.ConstraintError{
			Constraint: "chk_appointments_status",
			Message:    "new row violates check constraint",
			Category:   apperror.ErrPersistence,
		}
	}
	if _, ok := r.s.donors[appointment.DonorID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintAppointmentDonor)
	}
	if _, ok := r.s.donors[appointment.RecipientID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintAppointmentRecipient)
	}

	previous, exists := r.s.appointments[appointment.ID]
	if appointment.ID == 0 {
		appointment.ID = r.s.nextID("appointments")
	} else if !exists {
		return nil, notFound("appointment", appointment.ID)
	}
	stamp(&appointment.CreatedAt, &appointment.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *appointment
	r.s.appointments[row.ID] = row
	return &row, nil
}

func (r *appointmentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return notFound("appointment", id)
	}
	delete(r.s.appointments, id)
	return nil
}
