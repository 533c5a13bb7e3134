package dto

import "time"

// Request DTOs

type CreateNeighborhoodRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	MunicipalityID int64  `json:"municipality_id" validate:"required,gt=0"`
}

type UpdateNeighborhoodRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	MunicipalityID *int64  `json:"municipality_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type NeighborhoodResponse struct {
	ID             int64                 `json:"id"`
	Name           string                `json:"name"`
	MunicipalityID int64                 `json:"municipality_id"`
	Municipality   *MunicipalityResponse `json:"municipality,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
