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

type NeighborhoodHandler struct {
	log                 *logrus.Logger
	neighborhoodUsecase usecase.NeighborhoodUsecase
	addressUsecase      usecase.AddressUsecase
	validator           *validator.CustomValidator
}

func NewNeighborhoodHandler(
	log *logrus.Logger,
	neighborhoodUsecase usecase.NeighborhoodUsecase,
	addressUsecase usecase.AddressUsecase,
	validator *validator.CustomValidator,
) *NeighborhoodHandler {
	return &NeighborhoodHandler{
		log:                 log,
		neighborhoodUsecase: neighborhoodUsecase,
		addressUsecase:      addressUsecase,
		validator:           validator,
	}
}

// CreateNeighborhood handles neighborhood creation
// @Summary Create a neighborhood
// @Description Neighborhood names are unique within their municipality
// @Tags Neighborhoods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNeighborhoodRequest true "Create Neighborhood Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /neighborhoods [post]
func (h *NeighborhoodHandler) CreateNeighborhood(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNeighborhoodRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	neighborhood, err := h.neighborhoodUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Neighborhood created successfully", converter.NeighborhoodToResponse(neighborhood))
}

func (h *NeighborhoodHandler) GetAllNeighborhoods(w http.ResponseWriter, r *http.Request) {
	neighborhoods, err := h.neighborhoodUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Neighborhoods retrieved successfully", converter.NeighborhoodsToResponses(neighborhoods))
}

func (h *NeighborhoodHandler) GetNeighborhood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid neighborhood ID", nil)
		return
	}

	neighborhood, err := h.neighborhoodUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Neighborhood retrieved successfully", converter.NeighborhoodToResponse(neighborhood))
}

func (h *NeighborhoodHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid neighborhood ID", nil)
		return
	}

	addresses, err := h.addressUsecase.GetByNeighborhood(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Addresses retrieved successfully", converter.AddressesToResponses(addresses))
}

func (h *NeighborhoodHandler) UpdateNeighborhood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid neighborhood ID", nil)
		return
	}

	var req dto.UpdateNeighborhoodRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	neighborhood, err := h.neighborhoodUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Neighborhood updated successfully", converter.NeighborhoodToResponse(neighborhood))
}

func (h *NeighborhoodHandler) DeleteNeighborhood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid neighborhood ID", nil)
		return
	}

	if err := h.neighborhoodUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Neighborhood deleted successfully", nil)
}
