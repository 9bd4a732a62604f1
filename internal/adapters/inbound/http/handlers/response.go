package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	msgDeviceNotFound   = "Device not found"
	msgLocationNotFound = "Location not found"
	msgAPIUserNotFound  = "ApiUser not found"
	msgDuplicateEmail   = "ApiUser with this email already exists"
	msgDuplicate        = "resource already exists"
	msgInternalError    = "internal server error"
	msgResourceNotFound = "resource not found"
	msgMethodNotAllowed = "method not allowed"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSONResponse(w, status, errorResponse{Error: message})
}

// errorStatus maps a failure to its status code and client message. It is
// the only place error kinds are turned into HTTP semantics.
func errorStatus(err error, notFoundMsg string) (int, string) {
	var (
		validationErrs *model.ValidationErrors
		referenceErr   *model.ReferenceNotFoundError
	)

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &referenceErr):
		return http.StatusUnprocessableEntity, referenceErr.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, notFoundMsg
	case errors.Is(err, model.ErrDuplicateEmail):
		return http.StatusConflict, msgDuplicateEmail
	case errors.Is(err, model.ErrDuplicateKey):
		return http.StatusConflict, msgDuplicate
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	status, message := errorStatus(err, notFoundMsg)

	log := h.logger.WithContext(r.Context())

	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.
		Err(err).
		Int("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")

	writeErrorResponse(w, status, message)
}

// NotFound answers requests for routes that do not exist.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeErrorResponse(w, http.StatusNotFound, msgResourceNotFound)
}

// MethodNotAllowed answers requests whose route exists under another method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeErrorResponse(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
