package handler

import (
	"net/http"

	"github.com/AlexCL0320/backend-banco-angeles/internal/converter"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/usecase"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/requestctx"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/response"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/validator"

	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log          *logrus.Logger
	userUsecase  usecase.UserUsecase
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewUserHandler(
	log *logrus.Logger,
	userUsecase usecase.UserUsecase,
	donorUsecase usecase.DonorUsecase,
	validator *validator.CustomValidator,
) *UserHandler {
	return &UserHandler{
		log:          log,
		userUsecase:  userUsecase,
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

// CreateUser handles user registration
// @Summary Register a user
// @Description Public registration. Users without an explicit role get the default role; only staff may pick one.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	if req.RoleID != nil && !requestctx.IsStaff(r.Context()) {
		response.Forbidden(w, "Only staff can assign a role")
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", converter.UserToResponse(user))
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", converter.UsersToResponses(users))
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", converter.UserToResponse(user))
}

// GetUserByEmail handles lookup by exact email
// @Summary Find a user by email
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/by-email [get]
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "email query parameter is required")
		return
	}

	user, err := h.userUsecase.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", converter.UserToResponse(user))
}

func (h *UserHandler) GetUserDonor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	donor, err := h.donorUsecase.GetByUserID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Donor retrieved successfully", converter.DonorToResponse(donor))
}

// UpdateUser handles user update. Owners may edit their profile and
// password; role and account flags are reserved to staff.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.UpdateUserRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	if req.Privileged() && !requestctx.IsStaff(r.Context()) {
		response.Forbidden(w, "Only staff can change role or account flags")
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", converter.UserToResponse(user))
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.userUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}
