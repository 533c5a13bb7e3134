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

type CoordinateHandler struct {
	log               *logrus.Logger
	coordinateUsecase usecase.CoordinateUsecase
	validator         *validator.CustomValidator
}

func NewCoordinateHandler(log *logrus.Logger, coordinateUsecase usecase.CoordinateUsecase, validator *validator.CustomValidator) *CoordinateHandler {
	return &CoordinateHandler{
		log:               log,
		coordinateUsecase: coordinateUsecase,
		validator:         validator,
	}
}

func (h *CoordinateHandler) CreateCoordinate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCoordinateRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	coordinate, err := h.coordinateUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Coordinate created successfully", converter.CoordinateToResponse(coordinate))
}

func (h *CoordinateHandler) GetAllCoordinates(w http.ResponseWriter, r *http.Request) {
	coordinates, err := h.coordinateUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Coordinates retrieved successfully", converter.CoordinatesToResponses(coordinates))
}

func (h *CoordinateHandler) GetCoordinate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid coordinate ID", nil)
		return
	}

	coordinate, err := h.coordinateUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Coordinate retrieved successfully", converter.CoordinateToResponse(coordinate))
}

func (h *CoordinateHandler) UpdateCoordinate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid coordinate ID", nil)
		return
	}

	var req dto.UpdateCoordinateRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	coordinate, err := h.coordinateUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Coordinate updated successfully", converter.CoordinateToResponse(coordinate))
}

func (h *CoordinateHandler) DeleteCoordinate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid coordinate ID", nil)
		return
	}

	if err := h.coordinateUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Coordinate deleted successfully", nil)
}
