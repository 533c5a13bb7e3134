package handler

import (
	"net/http"

	"github.com/AlexCL0320/backend-banco-angeles/internal/converter"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/usecase"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/response"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/validator"

	"github.com/sirupsen/logrus"
)

type RoleHandler struct {
	log         *logrus.Logger
	roleUsecase usecase.RoleUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(log *logrus.Logger, roleUsecase usecase.RoleUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		log:         log,
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

// CreateRole handles role creation
// @Summary Create a role
// @Description Flagging the role as default clears the flag on the previous default
// @Tags Roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRoleRequest true "Create Role Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /roles [post]
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoleRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	role, err := h.roleUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Role created successfully", converter.RoleToResponse(role))
}

func (h *RoleHandler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", converter.RolesToResponses(roles))
}

func (h *RoleHandler) GetDefaultRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.roleUsecase.GetDefault(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Role retrieved successfully", converter.RoleToResponse(role))
}

func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid role ID", nil)
		return
	}

	role, err := h.roleUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Role retrieved successfully", converter.RoleToResponse(role))
}

func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid role ID", nil)
		return
	}

	var req dto.UpdateRoleRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	role, err := h.roleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Role updated successfully", converter.RoleToResponse(role))
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid role ID", nil)
		return
	}

	if err := h.roleUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Role deleted successfully", nil)
}
