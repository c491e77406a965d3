package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/port"
)

// handleTerminate cancels a campaign before completion. Repeated calls are
// no-ops, matching the idempotent terminate semantics.
func (h *Handler) handleTerminate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Terminate(r.Context(), chi.URLParam(r, "organizer")); err != nil {
		h.respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type settleRequest struct {
	TokenAmount int64 `json:"token_amount"`
}

type settleView struct {
	PoolFunds    decimal.Decimal `json:"pool_funds"`
	FeeFunds     decimal.Decimal `json:"fee_funds"`
	VestingStart time.Time       `json:"vesting_start"`
}

// handleSettle completes a campaign: fee split, funding-pool seed and the
// start of vesting. An implied pool price below the campaign's unit price
// yields HTTP 422.
func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.Settle(r.Context(), port.SettleReq{
		Organizer:   chi.URLParam(r, "organizer"),
		TokenAmount: req.TokenAmount,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, settleView{
		PoolFunds:    resp.PoolFunds,
		FeeFunds:     resp.FeeFunds,
		VestingStart: resp.VestingStart,
	})
}
