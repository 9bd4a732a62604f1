package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

type locationResponse struct {
	ID   model.LocationID `json:"id"`
	Name string           `json:"name"`
}

func toLocationResponse(location *model.Location) locationResponse {
	return locationResponse{
		ID:   location.ID,
		Name: location.Name,
	}
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		h.writeServiceError(w, r, err, msgLocationNotFound)

		return
	}

	location, err := h.app.Commands.CreateLocation.Handle(r.Context(), commands.CreateLocationCommand{
		Name: *req.Name,
	})
	if err != nil {
		h.writeServiceError(w, r, err, msgLocationNotFound)

		return
	}

	writeJSONResponse(w, http.StatusCreated, toLocationResponse(location))
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseLocationID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, msgLocationNotFound)

		return
	}

	location, err := h.app.Queries.GetLocation.Execute(r.Context(), queries.GetLocationQuery{ID: id})
	if err != nil {
		h.writeServiceError(w, r, err, msgLocationNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, toLocationResponse(location))
}
