// Package handler adapts the use cases to JSON over HTTP. Every handler
// decodes and validates its request DTO, calls one use case operation and
// converts the result with the converter package.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/response"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// writeError translates an error category into its HTTP status. Errors
// outside the known categories are logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	switch apperror.Category(err) {
	case apperror.ErrNotFound:
		response.NotFound(w, err.Error())
	case apperror.ErrAlreadyExists, apperror.ErrPersistence:
		response.Conflict(w, err.Error())
	case apperror.ErrInvalidReference, apperror.ErrValidation:
		response.BadRequest(w, err.Error())
	default:
		log.Errorf("Unhandled error: %+v", err)
		response.InternalServerError(w, "Internal server error")
	}
}

var errInvalidID = errors.New("id must be a positive integer")

// pathID reads a positive integer route variable.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decode reads a JSON body into req and validates it, writing the 400 itself.
func decode(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}
