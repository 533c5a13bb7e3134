package usecase

import (
	"errors"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
)

var (
	ErrMunicipalityNotFound      = apperror.New("municipality not found", apperror.ErrNotFound)
	ErrMunicipalityAlreadyExists = apperror.New("municipality already exists", apperror.ErrAlreadyExists)
	ErrMunicipalityNotValid      = apperror.New("municipality is not valid", apperror.ErrInvalidReference)

	ErrNeighborhoodNotFound      = apperror.New("neighborhood not found", apperror.ErrNotFound)
	ErrNeighborhoodAlreadyExists = apperror.New("neighborhood already exists in municipality", apperror.ErrAlreadyExists)
	ErrNeighborhoodNotValid      = apperror.New("neighborhood is not valid", apperror.ErrInvalidReference)

	ErrCoordinateNotFound      = apperror.New("coordinate not found", apperror.ErrNotFound)
	ErrCoordinateAlreadyExists = apperror.New("coordinate already exists", apperror.ErrAlreadyExists)
	ErrCoordinateNotValid      = apperror.New("coordinate is not valid", apperror.ErrInvalidReference)

	ErrAddressNotFound      = apperror.New("address not found", apperror.ErrNotFound)
	ErrAddressAlreadyExists = apperror.New("address already exists", apperror.ErrAlreadyExists)
	ErrAddressNotValid      = apperror.New("address is not valid", apperror.ErrInvalidReference)

	ErrRoleNotFound        = apperror.New("role not found", apperror.ErrNotFound)
	ErrRoleAlreadyExists   = apperror.New("role already exists", apperror.ErrAlreadyExists)
	ErrRoleNotValid        = apperror.New("role is not valid", apperror.ErrInvalidReference)
	ErrDefaultRoleNotFound = apperror.New("default role not found", apperror.ErrInvalidReference)

	ErrUserNotFound          = apperror.New("user not found", apperror.ErrNotFound)
	ErrEmailAlreadyExists    = apperror.New("email already exists", apperror.ErrAlreadyExists)
	ErrUsernameAlreadyExists = apperror.New("username already exists", apperror.ErrAlreadyExists)
	ErrUserNotValid          = apperror.New("user is not valid", apperror.ErrInvalidReference)

	ErrDonorNotFound      = apperror.New("donor not found", apperror.ErrNotFound)
	ErrDonorAlreadyExists = apperror.New("user already has a donor profile", apperror.ErrAlreadyExists)
	ErrDonorNotValid      = apperror.New("donor is not valid", apperror.ErrInvalidReference)
	ErrRecipientNotValid  = apperror.New("recipient is not valid", apperror.ErrInvalidReference)

	ErrAppointmentNotFound = apperror.New("appointment not found", apperror.ErrNotFound)

	ErrAuditLogNotFound = apperror.New("audit log not found", apperror.ErrNotFound)

	ErrInvalidDateFormat = apperror.New("invalid date format, use YYYY-MM-DD", apperror.ErrValidation)
)

// Authentication failures carry no category: the HTTP layer answers them
// with 401 or 403.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserInactive       = errors.New("user account is inactive")
)
