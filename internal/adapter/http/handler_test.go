package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"launchpad/internal/adapter/memory"
	"launchpad/internal/adapter/usecase"
)

const grace = 72 * time.Hour

// newTestServer wires the handler over the in-memory adapters with funded
// demo identities, so requests exercise the full stack below the router.
func newTestServer(t *testing.T) (*httptest.Server, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	tokens := memory.NewTokenService("custody")
	tokens.Mint("LPT", "org-1", decimal.NewFromInt(10_000))
	tokens.Mint("USD", "alice", decimal.NewFromInt(1_000))

	svc, err := usecase.NewCampaignUseCase(usecase.Config{
		Repo:           memory.NewCampaignRepository(),
		Tokens:         tokens,
		Pool:           memory.NewLiquidityPool(),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:          clock,
		FeePercent:     1,
		FeeRecipient:   "treasury",
		CustodyAccount: "custody",
		FundsToken:     "USD",
		GracePeriod:    grace,
	})
	require.NoError(t, err)

	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), clock, grace)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, clock
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func createBody() map[string]any {
	return map[string]any{
		"organizer":     "org-1",
		"token_id":      "LPT",
		"unit_price":    "0.1",
		"total_tokens":  1000,
		"duration_secs": 5 * 24 * 3600,
		"vesting_secs":  10 * 24 * 3600,
	}
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns", createBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "active", body["phase"])

	// duplicate organizer slot
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns", createBody())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/contributions",
		map[string]any{"contributor": "alice", "amount": "1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(10), body["tokens"])
	require.Equal(t, float64(990), body["remaining_tokens"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/v1/campaigns/org-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "1", body["raised"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/v1/campaigns/org-1/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), body["contributors"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/terminate", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/claims/refund",
		map[string]any{"contributor": "alice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "1", body["refunded"])

	// second refund is a no-op
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/claims/refund",
		map[string]any{"contributor": "alice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "0", body["refunded"])
}

func TestSettleAndClaimOverHTTP(t *testing.T) {
	srv, clock := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns", createBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/contributions",
		map[string]any{"contributor": "alice", "amount": "1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	clock.Advance(5*24*time.Hour + time.Hour)

	// pool funds 0.99 against 10 tokens implies 0.099 < 0.1
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/settle",
		map[string]any{"token_amount": 10})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/settle",
		map[string]any{"token_amount": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "0.99", body["pool_funds"])
	require.Equal(t, "0.01", body["fee_funds"])

	clock.Advance(10 * 24 * time.Hour)
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/claims/tokens",
		map[string]any{"contributor": "alice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(10), body["claimed"])
}

func TestErrorMapping(t *testing.T) {
	srv, _ := newTestServer(t)

	// unknown campaign
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/campaigns/ghost", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// validation failure
	body := createBody()
	body["token_id"] = ""
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// state failure: refund while active
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns", createBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/claims/refund",
		map[string]any{"contributor": "alice"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// economic failure: supply exhausted
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/campaigns/org-1/contributions",
		map[string]any{"contributor": "alice", "amount": "500"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// malformed body
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/campaigns", bytes.NewBufferString("{"))
	require.NoError(t, err)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
