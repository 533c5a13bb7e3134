package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// Dates use the YYYY-MM-DD layout.
type CreateDonorRequest struct {
	UserID          int64           `json:"user_id" validate:"required,gt=0"`
	Name            string          `json:"name" validate:"required,max=100"`
	PaternalSurname string          `json:"paternal_surname" validate:"required,max=100"`
	MaternalSurname *string         `json:"maternal_surname" validate:"omitempty,max=100"`
	Age             int             `json:"age" validate:"gte=0,lte=120"`
	BloodType       string          `json:"blood_type" validate:"required,bloodtype"`
	Weight          decimal.Decimal `json:"weight" validate:"gt=0"`
	PhoneOne        string          `json:"phone_one" validate:"required,max=20"`
	PhoneTwo        *string         `json:"phone_two" validate:"omitempty,max=20"`
	Active          *bool           `json:"active"`
	FirstDonation   *string         `json:"first_donation" validate:"omitempty,datetime=2006-01-02"`
	LastDonation    *string         `json:"last_donation" validate:"omitempty,datetime=2006-01-02"`
	AddressID       int64           `json:"address_id" validate:"required,gt=0"`
}

type UpdateDonorRequest struct {
	UserID          *int64           `json:"user_id" validate:"omitempty,gt=0"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=100"`
	PaternalSurname *string          `json:"paternal_surname" validate:"omitempty,min=1,max=100"`
	MaternalSurname *string          `json:"maternal_surname" validate:"omitempty,max=100"`
	Age             *int             `json:"age" validate:"omitempty,gte=0,lte=120"`
	BloodType       *string          `json:"blood_type" validate:"omitempty,bloodtype"`
	Weight          *decimal.Decimal `json:"weight" validate:"omitempty,gt=0"`
	PhoneOne        *string          `json:"phone_one" validate:"omitempty,min=1,max=20"`
	PhoneTwo        *string          `json:"phone_two" validate:"omitempty,max=20"`
	Active          *bool            `json:"active"`
	FirstDonation   *string          `json:"first_donation" validate:"omitempty,datetime=2006-01-02"`
	LastDonation    *string          `json:"last_donation" validate:"omitempty,datetime=2006-01-02"`
	AddressID       *int64           `json:"address_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type DonorResponse struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	FullName        string           `json:"full_name"`
	Name            string           `json:"name"`
	PaternalSurname string           `json:"paternal_surname"`
	MaternalSurname *string          `json:"maternal_surname,omitempty"`
	Age             int              `json:"age"`
	BloodType       string           `json:"blood_type"`
	Weight          decimal.Decimal  `json:"weight"`
	PhoneOne        string           `json:"phone_one"`
	PhoneTwo        *string          `json:"phone_two,omitempty"`
	Active          bool             `json:"active"`
	FirstDonation   *string          `json:"first_donation,omitempty"`
	LastDonation    *string          `json:"last_donation,omitempty"`
	CanDonate       bool             `json:"can_donate"`
	AddressID       int64            `json:"address_id"`
	User            *UserResponse    `json:"user,omitempty"`
	Address         *AddressResponse `json:"address,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DonorMapResponse is a donor pin on the map view.
type DonorMapResponse struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	BloodType      string `json:"blood_type"`
	Active         bool   `json:"active"`
	CanDonate      bool   `json:"can_donate"`
	NeighborhoodID int64  `json:"neighborhood_id"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
}

type EligibilityResponse struct {
	DonorID               int64   `json:"donor_id"`
	Eligible              bool    `json:"eligible"`
	DaysSinceLastDonation *int    `json:"days_since_last_donation,omitempty"`
	NextEligibleDate      *string `json:"next_eligible_date,omitempty"`
}
