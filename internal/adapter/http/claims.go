package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type claimRequest struct {
	Contributor string `json:"contributor"`
}

type claimTokensView struct {
	Claimed int64 `json:"claimed"`
}

// handleClaimTokens releases the contributor's vested, unclaimed tokens.
// Nothing claimable returns claimed: 0 rather than an error.
func (h *Handler) handleClaimTokens(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.ClaimTokens(r.Context(), chi.URLParam(r, "organizer"), req.Contributor)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, claimTokensView{Claimed: resp.Claimed})
}

type refundView struct {
	Refunded decimal.Decimal `json:"refunded"`
}

// handleClaimRefund returns the contributor's recorded contribution after
// termination or abandonment. A second call reports refunded: 0.
func (h *Handler) handleClaimRefund(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.ClaimRefund(r.Context(), chi.URLParam(r, "organizer"), req.Contributor)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, refundView{Refunded: resp.Refunded})
}
