package converter

import (
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}
	permissions := []string(role.Permissions)
	if permissions == nil {
		permissions = []string{}
	}
	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: permissions,
		IsDefault:   role.IsDefault,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	return toResponses(roles, RoleToResponse)
}

// UserToResponse converts a User entity to UserResponse DTO.
// The role is included when it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Sex:       user.Sex,
		RoleID:    user.RoleID,
		IsActive:  user.IsActive,
		IsStaff:   user.IsStaff,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Role.ID != 0 {
		response.Role = RoleToResponse(&user.Role)
	}

	return response
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	return toResponses(users, UserToResponse)
}
