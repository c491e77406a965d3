package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchpad/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the campaign use case, a
// structured logger and the clock used to derive lifecycle phases for read
// responses. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	clock  clockwork.Clock
	grace  time.Duration
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The grace period
// must match the one the use case was built with; it only affects the phase
// reported on reads.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, clock clockwork.Clock, grace time.Duration) *Handler {
	h := &Handler{svc: svc, logger: logger, clock: clock, grace: grace}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Route("/campaigns/{organizer}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Get("/stats", h.handleGetStats)
			r.Post("/contributions", h.handleContribute)
			r.Get("/contributions/{contributor}", h.handleGetContribution)
			r.Post("/terminate", h.handleTerminate)
			r.Post("/settle", h.handleSettle)
			r.Post("/claims/tokens", h.handleClaimTokens)
			r.Post("/claims/refund", h.handleClaimRefund)
		})
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
