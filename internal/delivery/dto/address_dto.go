package dto

import "time"

// Request DTOs

type CreateAddressRequest struct {
	Street         string `json:"street" validate:"required,max=150"`
	InteriorNumber string `json:"interior_number" validate:"max=20"`
	ExteriorNumber string `json:"exterior_number" validate:"required,max=20"`
	NeighborhoodID int64  `json:"neighborhood_id" validate:"required,gt=0"`
	CoordinateID   int64  `json:"coordinate_id" validate:"required,gt=0"`
}

type UpdateAddressRequest struct {
	Street         *string `json:"street" validate:"omitempty,min=1,max=150"`
	InteriorNumber *string `json:"interior_number" validate:"omitempty,max=20"`
	ExteriorNumber *string `json:"exterior_number" validate:"omitempty,min=1,max=20"`
	NeighborhoodID *int64  `json:"neighborhood_id" validate:"omitempty,gt=0"`
	CoordinateID   *int64  `json:"coordinate_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type AddressResponse struct {
	ID             int64                 `json:"id"`
	Street         string                `json:"street"`
	InteriorNumber string                `json:"interior_number"`
	ExteriorNumber string                `json:"exterior_number"`
	NeighborhoodID int64                 `json:"neighborhood_id"`
	CoordinateID   int64                 `json:"coordinate_id"`
	Neighborhood   *NeighborhoodResponse `json:"neighborhood,omitempty"`
	Coordinate     *CoordinateResponse   `json:"coordinate,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
