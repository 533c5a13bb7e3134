package dto

import "time"

// Request DTOs

type CreateCoordinateRequest struct {
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}

type UpdateCoordinateRequest struct {
	Latitude  *string `json:"latitude" validate:"omitempty,latitude"`
	Longitude *string `json:"longitude" validate:"omitempty,longitude"`
}

// Response DTOs

type CoordinateResponse struct {
	ID        int64     `json:"id"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
