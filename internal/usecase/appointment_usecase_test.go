package usecase

import (
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

var scheduledAt = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func (s *UsecaseSuite) appointment() (*entity.Appointment, *entity.Donor, *entity.Donor) {
	donor := s.donor("ana")
	recipient := s.donor("bea")
	a, err := s.appointments.Create(s.ctx, &dto.CreateAppointmentRequest{
		ScheduledAt: scheduledAt,
		DonorID:     donor.ID,
		RecipientID: recipient.ID,
	})
	s.Require().NoError(err)
	return a, donor, recipient
}

func (s *UsecaseSuite) TestAppointment_StatusLifecycle() {
	a, _, _ := s.appointment()
	s.Equal(entity.AppointmentStatusPending, a.Status)
	s.True(a.IsPending())

	accepted, err := s.appointments.UpdateStatus(s.ctx, a.ID, "accepted")
	s.Require().NoError(err)
	s.Equal(entity.AppointmentStatusAccepted, accepted.Status)

	_, err = s.appointments.UpdateStatus(s.ctx, a.ID, "not_a_status")
	s.ErrorIs(err, apperror.ErrValidation)

	// any status is reachable from any other
	back, err := s.appointments.UpdateStatus(s.ctx, a.ID, "pending")
	s.Require().NoError(err)
	s.True(back.IsPending())

	_, err = s.appointments.UpdateStatus(s.ctx, 999, "accepted")
	s.ErrorIs(err, ErrAppointmentNotFound)

	s.Equal([]string{
		"appointment.update",
		"appointment.update",
		"appointment.create",
	}, s.auditActions()[:3])
}

func (s *UsecaseSuite) TestAppointment_CreateReferences() {
	donor := s.donor("ana")

	_, err := s.appointments.Create(s.ctx, &dto.CreateAppointmentRequest{ScheduledAt: scheduledAt, DonorID: 99, RecipientID: donor.ID})
	s.ErrorIs(err, ErrDonorNotValid)

	_, err = s.appointments.Create(s.ctx, &dto.CreateAppointmentRequest{ScheduledAt: scheduledAt, DonorID: donor.ID, RecipientID: 99})
	s.ErrorIs(err, ErrRecipientNotValid)
	s.ErrorIs(err, apperror.ErrInvalidReference)

	_, err = s.appointments.Create(s.ctx, &dto.CreateAppointmentRequest{DonorID: donor.ID, RecipientID: donor.ID})
	s.ErrorIs(err, apperror.ErrValidation)
}

func (s *UsecaseSuite) TestAppointment_Update() {
	a, donor, recipient := s.appointment()
	later := scheduledAt.Add(48 * time.Hour)

	updated, err := s.appointments.Update(s.ctx, a.ID, &dto.UpdateAppointmentRequest{
		ScheduledAt: &later,
		DonorID:     ptr(recipient.ID),
		RecipientID: ptr(donor.ID),
		Status:      ptr("completed"),
	})
	s.Require().NoError(err)
	s.True(updated.ScheduledAt.Equal(later))
	s.Equal(recipient.ID, updated.DonorID)
	s.Equal(donor.ID, updated.RecipientID)
	s.Equal(entity.AppointmentStatusCompleted, updated.Status)

	_, err = s.appointments.Update(s.ctx, a.ID, &dto.UpdateAppointmentRequest{RecipientID: ptr(int64(99))})
	s.ErrorIs(err, ErrRecipientNotValid)

	_, err = s.appointments.Update(s.ctx, a.ID, &dto.UpdateAppointmentRequest{Status: ptr("lost")})
	s.ErrorIs(err, apperror.ErrValidation)

	unchanged, err := s.appointments.Update(s.ctx, a.ID, &dto.UpdateAppointmentRequest{})
	s.Require().NoError(err)
	s.True(updated.Equal(unchanged))
}

func (s *UsecaseSuite) TestAppointment_GetByDonor() {
	a, donor, recipient := s.appointment()

	byDonor, err := s.appointments.GetByDonor(s.ctx, donor.ID)
	s.Require().NoError(err)
	s.Require().Len(byDonor, 1)
	s.Equal(a.ID, byDonor[0].ID)

	byRecipient, err := s.appointments.GetByDonor(s.ctx, recipient.ID)
	s.Require().NoError(err)
	s.Empty(byRecipient, "only the donor side is listed")

	_, err = s.appointments.GetByDonor(s.ctx, 999)
	s.ErrorIs(err, ErrDonorNotValid)
}

func (s *UsecaseSuite) TestAppointment_Delete() {
	a, donor, _ := s.appointment()

	s.Require().NoError(s.appointments.Delete(s.ctx, a.ID))

	_, err := s.appointments.GetByID(s.ctx, a.ID)
	s.ErrorIs(err, ErrAppointmentNotFound)

	err = s.appointments.Delete(s.ctx, a.ID)
	s.ErrorIs(err, ErrAppointmentNotFound)

	s.NoError(s.donors.Delete(s.ctx, donor.ID), "no appointment references the donor any more")
}
