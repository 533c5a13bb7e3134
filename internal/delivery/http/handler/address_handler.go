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

type AddressHandler struct {
	log            *logrus.Logger
	addressUsecase usecase.AddressUsecase
	validator      *validator.CustomValidator
}

func NewAddressHandler(log *logrus.Logger, addressUsecase usecase.AddressUsecase, validator *validator.CustomValidator) *AddressHandler {
	return &AddressHandler{
		log:            log,
		addressUsecase: addressUsecase,
		validator:      validator,
	}
}

// CreateAddress handles address creation
// @Summary Create an address
// @Description The neighborhood and coordinate must exist
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Create Address Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /addresses [post]
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAddressRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	address, err := h.addressUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Address created successfully", converter.AddressToResponse(address))
}

func (h *AddressHandler) GetAllAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Addresses retrieved successfully", converter.AddressesToResponses(addresses))
}

func (h *AddressHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid address ID", nil)
		return
	}

	address, err := h.addressUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Address retrieved successfully", converter.AddressToResponse(address))
}

func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid address ID", nil)
		return
	}

	var req dto.UpdateAddressRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	address, err := h.addressUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Address updated successfully", converter.AddressToResponse(address))
}

func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid address ID", nil)
		return
	}

	if err := h.addressUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Address deleted successfully", nil)
}
