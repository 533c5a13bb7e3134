package dto

import "time"

// Request DTOs

type CreateMunicipalityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateMunicipalityRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type MunicipalityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
