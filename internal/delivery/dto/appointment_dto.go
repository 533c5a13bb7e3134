package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	DonorID     int64     `json:"donor_id" validate:"required,gt=0"`
	RecipientID int64     `json:"recipient_id" validate:"required,gt=0"`
}

type UpdateAppointmentRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	DonorID     *int64     `json:"donor_id" validate:"omitempty,gt=0"`
	RecipientID *int64     `json:"recipient_id" validate:"omitempty,gt=0"`
	Status      *string    `json:"status"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int64     `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DonorID     int64     `json:"donor_id"`
	RecipientID int64     `json:"recipient_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
