package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

type (
	apiUserCreatedResponse struct {
		ID   model.APIUserID `json:"id"`
		Name string          `json:"name"`
	}

	// apiUserResponse never carries the password.
	apiUserResponse struct {
		ID    model.APIUserID `json:"id"`
		Name  string          `json:"name"`
		Email string          `json:"email"`
	}
)

func (h *Handler) CreateAPIUser(w http.ResponseWriter, r *http.Request) {
	var req createAPIUserRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		h.writeServiceError(w, r, err, msgAPIUserNotFound)

		return
	}

	user, err := h.app.Commands.CreateAPIUser.Handle(r.Context(), commands.CreateAPIUserCommand{
		Name:     *req.Name,
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		h.writeServiceError(w, r, err, msgAPIUserNotFound)

		return
	}

	writeJSONResponse(w, http.StatusCreated, apiUserCreatedResponse{
		ID:   user.ID,
		Name: user.Name,
	})
}

func (h *Handler) GetAPIUser(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseAPIUserID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, msgAPIUserNotFound)

		return
	}

	user, err := h.app.Queries.GetAPIUser.Execute(r.Context(), queries.GetAPIUserQuery{ID: id})
	if err != nil {
		h.writeServiceError(w, r, err, msgAPIUserNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, apiUserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
