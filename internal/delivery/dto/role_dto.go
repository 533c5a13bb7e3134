package dto

import "time"

// Request DTOs

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,required"`
	IsDefault   bool     `json:"is_default"`
}

type UpdateRoleRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=50"`
	Permissions *[]string `json:"permissions" validate:"omitempty,dive,required"`
	IsDefault   *bool     `json:"is_default"`
}

// Response DTOs

type RoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
