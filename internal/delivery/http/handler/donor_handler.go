package handler

import (
	"net/http"
	"strconv"

	"github.com/AlexCL0320/backend-banco-angeles/internal/converter"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/usecase"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/response"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/validator"

	"github.com/sirupsen/logrus"
)

type DonorHandler struct {
	log                *logrus.Logger
	donorUsecase       usecase.DonorUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewDonorHandler(
	log *logrus.Logger,
	donorUsecase usecase.DonorUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *DonorHandler {
	return &DonorHandler{
		log:                log,
		donorUsecase:       donorUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// donorFilter reads ?blood_type=&active=&neighborhood_id=. Blood type is
// validated by the use case.
func donorFilter(r *http.Request) (*entity.DonorFilter, error) {
	query := r.URL.Query()
	filter := &entity.DonorFilter{BloodType: entity.BloodType(query.Get("blood_type"))}

	if v := query.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		filter.Active = &active
	}
	if v := query.Get("neighborhood_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.NeighborhoodID = id
	}
	return filter, nil
}

// CreateDonor handles donor registration
// @Summary Create a donor profile
// @Description A user has at most one donor profile. Dates use YYYY-MM-DD.
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDonorRequest true "Create Donor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /donors [post]
func (h *DonorHandler) CreateDonor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDonorRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	donor, err := h.donorUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Donor created successfully", converter.DonorToResponse(donor))
}

// GetAllDonors lists donors
// @Summary List donors
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Param blood_type query string false "Blood type, e.g. O+"
// @Param active query bool false "Active flag"
// @Param neighborhood_id query int false "Neighborhood of the donor address"
// @Success 200 {object} response.Response
// @Router /donors [get]
func (h *DonorHandler) GetAllDonors(w http.ResponseWriter, r *http.Request) {
	filter, err := donorFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid donor filter")
		return
	}

	donors, err := h.donorUsecase.GetAll(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Donors retrieved successfully", converter.DonorsToResponses(donors))
}

func (h *DonorHandler) GetDonorMap(w http.ResponseWriter, r *http.Request) {
	filter, err := donorFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid donor filter")
		return
	}

	donors, err := h.donorUsecase.GetForMap(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Donor map retrieved successfully", converter.DonorsToMapResponses(donors))
}

func (h *DonorHandler) GetDonor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	donor, err := h.donorUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Donor retrieved successfully", converter.DonorToResponse(donor))
}

func (h *DonorHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	eligibility, err := h.donorUsecase.CheckEligibility(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Eligibility checked successfully", converter.EligibilityToResponse(eligibility))
}

func (h *DonorHandler) GetDonorAppointments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.GetByDonor(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", converter.AppointmentsToResponses(appointments))
}

func (h *DonorHandler) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	var req dto.UpdateDonorRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	donor, err := h.donorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Donor updated successfully", converter.DonorToResponse(donor))
}

func (h *DonorHandler) DeleteDonor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	if err := h.donorUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Donor deleted successfully", nil)
}
