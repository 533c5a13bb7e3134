package dto

import "time"

// Request DTOs

// CreateUserRequest registers an account. Without role_id the default role
// is assigned.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Sex      string `json:"sex" validate:"required,oneof=M F X"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   *int64 `json:"role_id" validate:"omitempty,gt=0"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Sex      *string `json:"sex" validate:"omitempty,oneof=M F X"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleID   *int64  `json:"role_id" validate:"omitempty,gt=0"`
	IsActive *bool   `json:"is_active"`
	IsStaff  *bool   `json:"is_staff"`
}

// Privileged reports whether the update touches fields only staff may set.
func (r *UpdateUserRequest) Privileged() bool {
	return r.RoleID != nil || r.IsActive != nil || r.IsStaff != nil
}

// Response DTOs

type UserResponse struct {
	ID        int64         `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Sex       string        `json:"sex"`
	RoleID    int64         `json:"role_id"`
	Role      *RoleResponse `json:"role,omitempty"`
	IsActive  bool          `json:"is_active"`
	IsStaff   bool          `json:"is_staff"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
