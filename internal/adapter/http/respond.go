package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"launchpad/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondErr maps the domain failure taxonomy onto HTTP statuses: validation
// failures are 400 (409 for the used organizer slot), lifecycle-state
// failures 409, economic failures 422. Anything else is an internal error
// whose detail is logged but not leaked.
func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCampaignExists):
		status = http.StatusConflict
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsState(err):
		status = http.StatusConflict
	case domain.IsEconomic(err):
		status = http.StatusUnprocessableEntity
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.respondJSON(w, status, errorResponse{Error: err.Error()})
}
