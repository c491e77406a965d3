package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/port"
)

type contributeRequest struct {
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
}

type contributeView struct {
	Tokens          int64           `json:"tokens"`
	Raised          decimal.Decimal `json:"raised"`
	RemainingTokens int64           `json:"remaining_tokens"`
}

// handleContribute pays funds into an active campaign. The credited token
// quantity is floor(amount / unit price); any fractional remainder is spent
// but not credited, which the response makes visible to the caller.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.Contribute(r.Context(), port.ContributeReq{
		Organizer:   chi.URLParam(r, "organizer"),
		Contributor: req.Contributor,
		Amount:      req.Amount,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, contributeView{
		Tokens:          resp.Tokens,
		Raised:          resp.Raised,
		RemainingTokens: resp.RemainingTokens,
	})
}

type contributionView struct {
	Organizer     string          `json:"organizer"`
	Contributor   string          `json:"contributor"`
	Amount        decimal.Decimal `json:"amount"`
	ClaimedTokens int64           `json:"claimed_tokens"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetContribution(r.Context(), chi.URLParam(r, "organizer"), chi.URLParam(r, "contributor"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	if entry == nil {
		http.NotFound(w, r)
		return
	}
	h.respondJSON(w, http.StatusOK, contributionView{
		Organizer:     entry.Organizer,
		Contributor:   entry.Contributor,
		Amount:        entry.Amount,
		ClaimedTokens: entry.ClaimedTokens,
		UpdatedAt:     entry.UpdatedAt,
	})
}
