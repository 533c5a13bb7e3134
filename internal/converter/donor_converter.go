package converter

import (
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

// DonorToResponse converts a Donor entity, eligibility evaluated today.
func DonorToResponse(d *entity.Donor) *dto.DonorResponse {
	if d == nil {
		return nil
	}
	return &dto.DonorResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		FullName:        d.FullName(),
		Name:            d.Name,
		PaternalSurname: d.PaternalSurname,
		MaternalSurname: d.MaternalSurname,
		Age:             d.Age,
		BloodType:       string(d.BloodType),
		Weight:          d.Weight,
		PhoneOne:        d.PhoneOne,
		PhoneTwo:        d.PhoneTwo,
		Active:          d.Active,
		FirstDonation:   formatDate(d.FirstDonation),
		LastDonation:    formatDate(d.LastDonation),
		CanDonate:       d.CanDonate(),
		AddressID:       d.AddressID,
		User:            UserToResponse(d.User),
		Address:         AddressToResponse(d.Address),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func DonorsToResponses(donors []entity.Donor) []dto.DonorResponse {
	return toResponses(donors, DonorToResponse)
}

// DonorToMapResponse reads the coordinate from the address snapshot.
func DonorToMapResponse(d *entity.Donor) *dto.DonorMapResponse {
	if d == nil {
		return nil
	}
	pin := &dto.DonorMapResponse{
		ID:        d.ID,
		FullName:  d.FullName(),
		BloodType: string(d.BloodType),
		Active:    d.Active,
		CanDonate: d.CanDonate(),
	}
	if d.Address != nil {
		pin.NeighborhoodID = d.Address.NeighborhoodID
		if d.Address.Coordinate != nil {
			pin.Latitude = d.Address.Coordinate.Latitude
			pin.Longitude = d.Address.Coordinate.Longitude
		}
	}
	return pin
}

func DonorsToMapResponses(donors []entity.Donor) []dto.DonorMapResponse {
	return toResponses(donors, DonorToMapResponse)
}

func EligibilityToResponse(e *entity.Eligibility) *dto.EligibilityResponse {
	return &dto.EligibilityResponse{
		DonorID:               e.DonorID,
		Eligible:              e.Eligible,
		DaysSinceLastDonation: e.DaysSinceLastDonation,
		NextEligibleDate:      formatDate(e.NextEligibleDate),
	}
}

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		ScheduledAt: a.ScheduledAt,
		DonorID:     a.DonorID,
		RecipientID: a.RecipientID,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func AppointmentsToResponses(items []entity.Appointment) []dto.AppointmentResponse {
	return toResponses(items, AppointmentToResponse)
}
