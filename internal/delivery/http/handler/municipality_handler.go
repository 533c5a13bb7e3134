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

type MunicipalityHandler struct {
	log                 *logrus.Logger
	municipalityUsecase usecase.MunicipalityUsecase
	neighborhoodUsecase usecase.NeighborhoodUsecase
	validator           *validator.CustomValidator
}

func NewMunicipalityHandler(
	log *logrus.Logger,
	municipalityUsecase usecase.MunicipalityUsecase,
	neighborhoodUsecase usecase.NeighborhoodUsecase,
	validator *validator.CustomValidator,
) *MunicipalityHandler {
	return &MunicipalityHandler{
		log:                 log,
		municipalityUsecase: municipalityUsecase,
		neighborhoodUsecase: neighborhoodUsecase,
		validator:           validator,
	}
}

// CreateMunicipality handles municipality creation
// @Summary Create a municipality
// @Tags Municipalities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMunicipalityRequest true "Create Municipality Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /municipalities [post]
func (h *MunicipalityHandler) CreateMunicipality(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMunicipalityRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	municipality, err := h.municipalityUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Municipality created successfully", converter.MunicipalityToResponse(municipality))
}

// GetAllMunicipalities lists municipalities ordered by name. With ?name= it
// returns the single municipality of that name instead.
// @Summary List municipalities
// @Tags Municipalities
// @Security BearerAuth
// @Produce json
// @Param name query string false "Exact name, case-insensitive"
// @Success 200 {object} response.Response
// @Router /municipalities [get]
func (h *MunicipalityHandler) GetAllMunicipalities(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		municipality, err := h.municipalityUsecase.GetByName(r.Context(), name)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		response.Success(w, http.StatusOK, "Municipality retrieved successfully", converter.MunicipalityToResponse(municipality))
		return
	}

	municipalities, err := h.municipalityUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Municipalities retrieved successfully", converter.MunicipalitiesToResponses(municipalities))
}

func (h *MunicipalityHandler) GetMunicipality(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid municipality ID", nil)
		return
	}

	municipality, err := h.municipalityUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Municipality retrieved successfully", converter.MunicipalityToResponse(municipality))
}

func (h *MunicipalityHandler) GetNeighborhoods(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid municipality ID", nil)
		return
	}

	neighborhoods, err := h.neighborhoodUsecase.GetByMunicipality(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Neighborhoods retrieved successfully", converter.NeighborhoodsToResponses(neighborhoods))
}

func (h *MunicipalityHandler) UpdateMunicipality(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid municipality ID", nil)
		return
	}

	var req dto.UpdateMunicipalityRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	municipality, err := h.municipalityUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Municipality updated successfully", converter.MunicipalityToResponse(municipality))
}

func (h *MunicipalityHandler) DeleteMunicipality(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid municipality ID", nil)
		return
	}

	if err := h.municipalityUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Municipality deleted successfully", nil)
}
