package usecase

import (
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/config"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/repository/memory"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/shopspring/decimal"
)

func (s *UsecaseSuite) TestDonor_Create() {
	d := s.donor("ana")

	s.EqualValues(1, d.ID)
	s.True(d.Active)
	s.Equal("Ana Lopez", d.FullName())
	s.Require().NotNil(d.User)
	s.Equal("ana", d.User.Username)
	s.Require().NotNil(d.Address)
	s.Require().NotNil(d.Address.Neighborhood)
	s.True(d.Weight.Equal(decimal.RequireFromString("62.5")))

	byUser, err := s.donors.GetByUserID(s.ctx, d.UserID)
	s.Require().NoError(err)
	s.Equal(d.ID, byUser.ID)
}

func (s *UsecaseSuite) TestDonor_CreateReferences() {
	u := s.user("ana")
	a := s.address("Orizaba")

	_, err := s.donors.Create(s.ctx, s.donorRequest(99, a.ID))
	s.ErrorIs(err, ErrUserNotValid)
	s.ErrorIs(err, apperror.ErrInvalidReference)

	_, err = s.donors.Create(s.ctx, s.donorRequest(u.ID, 99))
	s.ErrorIs(err, ErrAddressNotValid)

	_, err = s.donors.Create(s.ctx, s.donorRequest(u.ID, a.ID))
	s.Require().NoError(err)

	_, err = s.donors.Create(s.ctx, s.donorRequest(u.ID, a.ID))
	s.ErrorIs(err, ErrDonorAlreadyExists)
}

func (s *UsecaseSuite) TestDonor_CreateValidation() {
	u := s.user("ana")
	a := s.address("Orizaba")

	tests := []struct {
		name   string
		modify func(req *dto.CreateDonorRequest)
		want   error
	}{
		{"bad blood type", func(req *dto.CreateDonorRequest) { req.BloodType = "C+" }, apperror.ErrValidation},
		{"zero weight", func(req *dto.CreateDonorRequest) { req.Weight = decimal.Zero }, apperror.ErrValidation},
		{"empty phone", func(req *dto.CreateDonorRequest) { req.PhoneOne = " " }, apperror.ErrValidation},
		{"bad date", func(req *dto.CreateDonorRequest) { req.LastDonation = ptr("01/02/2024") }, ErrInvalidDateFormat},
		{"last before first", func(req *dto.CreateDonorRequest) {
			req.FirstDonation = ptr("2024-05-01")
			req.LastDonation = ptr("2024-01-01")
		}, apperror.ErrValidation},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.donorRequest(u.ID, a.ID)
			tt.modify(req)
			_, err := s.donors.Create(s.ctx, req)
			s.ErrorIs(err, tt.want)
		})
	}

	donors, err := s.donors.GetAll(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(donors)
}

func (s *UsecaseSuite) TestDonor_AgeRangeIsOptIn() {
	u := s.user("ana")
	a := s.address("Orizaba")
	req := s.donorRequest(u.ID, a.ID)
	req.Age = 16

	strict := NewDonorUsecase(quietLogger(),
		memory.NewDonorRepository(s.store),
		memory.NewUserRepository(s.store),
		memory.NewAddressRepository(s.store),
		service.NewAuditService(quietLogger(), s.auditRepo),
		config.DonorConfig{EnforceAgeRange: true},
	)
	_, err := strict.Create(s.ctx, req)
	s.ErrorIs(err, apperror.ErrValidation)

	d, err := s.donors.Create(s.ctx, req)
	s.Require().NoError(err)
	s.False(d.IsAdult())
}

func (s *UsecaseSuite) TestDonor_Filters() {
	ana := s.donor("ana")
	bea := s.donor("bea")

	_, err := s.donors.Update(s.ctx, bea.ID, &dto.UpdateDonorRequest{BloodType: ptr("AB-"), Active: ptr(false)})
	s.Require().NoError(err)

	onlyO, err := s.donors.GetAll(s.ctx, &entity.DonorFilter{BloodType: entity.BloodTypeOPositive})
	s.Require().NoError(err)
	s.Require().Len(onlyO, 1)
	s.Equal(ana.ID, onlyO[0].ID)

	inactive, err := s.donors.GetAll(s.ctx, &entity.DonorFilter{Active: ptr(false)})
	s.Require().NoError(err)
	s.Require().Len(inactive, 1)
	s.Equal(bea.ID, inactive[0].ID)

	byNeighborhood, err := s.donors.GetAll(s.ctx, &entity.DonorFilter{NeighborhoodID: ana.Address.NeighborhoodID})
	s.Require().NoError(err)
	s.Len(byNeighborhood, 1)

	_, err = s.donors.GetAll(s.ctx, &entity.DonorFilter{BloodType: "Z"})
	s.ErrorIs(err, apperror.ErrValidation)

	pins, err := s.donors.GetForMap(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(pins, 2)
	for _, p := range pins {
		s.NotNil(p.Address.Coordinate)
	}
}

func (s *UsecaseSuite) TestDonor_Update() {
	d := s.donor("ana")
	other := s.user("bea")
	s.donor("cy")

	updated, err := s.donors.Update(s.ctx, d.ID, &dto.UpdateDonorRequest{
		MaternalSurname: ptr("Ruiz"),
		LastDonation:    ptr("2024-01-01"),
		UserID:          ptr(other.ID),
	})
	s.Require().NoError(err)
	s.Equal("Ana Lopez Ruiz", updated.FullName())
	s.Equal(other.ID, updated.UserID)
	s.Equal("bea", updated.User.Username)

	cy, err := s.users.GetByEmail(s.ctx, "cy@example.com")
	s.Require().NoError(err)
	_, err = s.donors.Update(s.ctx, d.ID, &dto.UpdateDonorRequest{UserID: ptr(cy.ID)})
	s.ErrorIs(err, ErrDonorAlreadyExists)

	_, err = s.donors.Update(s.ctx, d.ID, &dto.UpdateDonorRequest{AddressID: ptr(int64(999))})
	s.ErrorIs(err, ErrAddressNotValid)

	_, err = s.donors.Update(s.ctx, d.ID, &dto.UpdateDonorRequest{FirstDonation: ptr("2024-02-01")})
	s.ErrorIs(err, apperror.ErrValidation)

	_, err = s.donors.Update(s.ctx, 999, &dto.UpdateDonorRequest{Name: ptr("X")})
	s.ErrorIs(err, ErrDonorNotFound)
}

func (s *UsecaseSuite) TestDonor_Eligibility() {
	d := s.donor("ana")
	_, err := s.donors.Update(s.ctx, d.ID, &dto.UpdateDonorRequest{LastDonation: ptr("2024-01-01")})
	s.Require().NoError(err)

	uc := s.donors.(*donorUsecase)
	lastDonation := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		days     int
		eligible bool
	}{
		{89, false},
		{90, true},
		{91, true},
	}

	for _, tt := range tests {
		uc.now = func() time.Time { return lastDonation.AddDate(0, 0, tt.days).Add(15 * time.Hour) }

		got, err := s.donors.CheckEligibility(s.ctx, d.ID)
		s.Require().NoError(err)
		s.Equal(tt.eligible, got.Eligible, "after %d days", tt.days)
		s.Require().NotNil(got.DaysSinceLastDonation)
		s.Equal(tt.days, *got.DaysSinceLastDonation)
		s.Require().NotNil(got.NextEligibleDate)
		s.Equal("2024-03-31", got.NextEligibleDate.Format("2006-01-02"))
	}

	fresh := s.donor("bea")
	got, err := s.donors.CheckEligibility(s.ctx, fresh.ID)
	s.Require().NoError(err)
	s.True(got.Eligible)
	s.Nil(got.DaysSinceLastDonation)
	s.Nil(got.NextEligibleDate)

	_, err = s.donors.CheckEligibility(s.ctx, 999)
	s.ErrorIs(err, ErrDonorNotFound)
}

func (s *UsecaseSuite) TestDonor_DeleteWithAppointments() {
	donor := s.donor("ana")
	recipient := s.donor("bea")

	_, err := s.appointments.Create(s.ctx, &dto.CreateAppointmentRequest{
		ScheduledAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		DonorID:     donor.ID,
		RecipientID: recipient.ID,
	})
	s.Require().NoError(err)

	err = s.donors.Delete(s.ctx, recipient.ID)
	s.ErrorIs(err, apperror.ErrPersistence)

	err = s.donors.Delete(s.ctx, 999)
	s.ErrorIs(err, ErrDonorNotFound)
}
