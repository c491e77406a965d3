package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

type createCampaignRequest struct {
	Organizer     string          `json:"organizer"`
	TokenID       string          `json:"token_id"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalTokens   int64           `json:"total_tokens"`
	DurationSecs  int64           `json:"duration_secs"`
	VestingSecs   int64           `json:"vesting_secs"`
}

type campaignView struct {
	Organizer       string          `json:"organizer"`
	TokenID         string          `json:"token_id"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalTokens     int64           `json:"total_tokens"`
	RemainingTokens int64           `json:"remaining_tokens"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	Raised          decimal.Decimal `json:"raised"`
	VestingStart    *time.Time      `json:"vesting_start,omitempty"`
	VestingSecs     int64           `json:"vesting_secs"`
	Phase           domain.Phase    `json:"phase"`
	Completed       bool            `json:"completed"`
	Terminated      bool            `json:"terminated"`
}

func (h *Handler) campaignView(c *domain.Campaign) campaignView {
	return campaignView{
		Organizer:       c.Organizer,
		TokenID:         c.TokenID,
		UnitPrice:       c.UnitPrice,
		TotalTokens:     c.TotalTokens,
		RemainingTokens: c.RemainingTokens,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime(),
		Raised:          c.Raised,
		VestingStart:    c.VestingStart,
		VestingSecs:     int64(c.VestingPeriod / time.Second),
		Phase:           c.PhaseAt(h.clock.Now().UTC(), h.grace),
		Completed:       c.Completed,
		Terminated:      c.Terminated,
	}
}

// handleCreateCampaign opens a campaign. The offered tokens are escrowed from
// the organizer as part of the call; a used organizer slot yields HTTP 409.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Organizer:     req.Organizer,
		TokenID:       req.TokenID,
		UnitPrice:     req.UnitPrice,
		TotalTokens:   req.TotalTokens,
		Duration:      time.Duration(req.DurationSecs) * time.Second,
		VestingPeriod: time.Duration(req.VestingSecs) * time.Second,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, h.campaignView(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	organizer := chi.URLParam(r, "organizer")
	c, err := h.svc.GetCampaign(r.Context(), organizer)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	h.respondJSON(w, http.StatusOK, h.campaignView(c))
}

type statsView struct {
	Contributors  int64           `json:"contributors"`
	Contributed   decimal.Decimal `json:"contributed"`
	TokensClaimed int64           `json:"tokens_claimed"`
}

func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	organizer := chi.URLParam(r, "organizer")
	stats, err := h.svc.GetStats(r.Context(), organizer)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, statsView{
		Contributors:  stats.Contributors,
		Contributed:   stats.Contributed,
		TokensClaimed: stats.TokensClaimed,
	})
}
