package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

const statusDeleted = "deleted"

type (
	deviceCreatedResponse struct {
		ID model.DeviceID `json:"id"`
	}

	// deviceResponse renders references as raw ids.
	deviceResponse struct {
		ID       model.DeviceID   `json:"id"`
		Name     string           `json:"name"`
		Type     string           `json:"type"`
		Login    string           `json:"login"`
		Password string           `json:"password"`
		Location model.LocationID `json:"location"`
		APIUser  model.APIUserID  `json:"api_user"`
	}

	statusResponse struct {
		Status string `json:"status"`
	}
)

func toDeviceResponse(device *model.Device) deviceResponse {
	return deviceResponse{
		ID:       device.ID,
		Name:     device.Name,
		Type:     device.Type,
		Login:    device.Login,
		Password: device.Password,
		Location: device.LocationID,
		APIUser:  device.APIUserID,
	}
}

func (h *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	device, err := h.app.Commands.CreateDevice.Handle(r.Context(), commands.CreateDeviceCommand{
		Name:       *req.Name,
		Type:       *req.Type,
		Login:      *req.Login,
		Password:   *req.Password,
		LocationID: *req.Location,
		APIUserID:  *req.APIUser,
	})
	if err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	writeJSONResponse(w, http.StatusCreated, deviceCreatedResponse{ID: device.ID})
}

func (h *Handler) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseDeviceID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	device, err := h.app.Queries.GetDevice.Execute(r.Context(), queries.GetDeviceQuery{ID: id})
	if err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceResponse(device))
}

func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseDeviceID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	var req updateDeviceRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	device, err := h.app.Commands.UpdateDevice.Handle(r.Context(), commands.UpdateDeviceCommand{
		ID:    id,
		Patch: req.toPatch(),
	})
	if err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceResponse(device))
}

func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseDeviceID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	if _, err := h.app.Commands.DeleteDevice.Handle(r.Context(), commands.DeleteDeviceCommand{ID: id}); err != nil {
		h.writeServiceError(w, r, err, msgDeviceNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, statusResponse{Status: statusDeleted})
}
