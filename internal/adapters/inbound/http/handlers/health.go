package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/usecases/queries"
)

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		h.writeServiceError(w, r, err, msgResourceNotFound)

		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// Readiness reports 503 while the database is unreachable.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil {
		h.writeServiceError(w, r, err, msgResourceNotFound)

		return
	}

	status := http.StatusOK
	if !result.Ready {
		status = http.StatusServiceUnavailable
	}

	writeJSONResponse(w, status, result)
}
