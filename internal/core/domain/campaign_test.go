package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestTokensAtPriceFloors(t *testing.T) {
	tests := []struct {
		amount string
		price  string
		want   int64
	}{
		{"1", "0.1", 10},
		{"0.35", "0.1", 3},
		{"0.05", "0.1", 0},
		{"200.1", "0.1", 2001},
		{"1", "3", 0},
		{"10", "3", 3},
		{"0.3", "0.1", 3}, // exact despite binary-float pitfalls
	}
	for _, tt := range tests {
		got := TokensAtPrice(dec(t, tt.amount), dec(t, tt.price))
		require.Equal(t, tt.want, got, "%s / %s", tt.amount, tt.price)
	}
}

func TestPhaseTransitions(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	grace := 72 * time.Hour
	c := Campaign{
		StartTime: start,
		Duration:  5 * 24 * time.Hour,
	}

	require.Equal(t, PhaseActive, c.PhaseAt(start, grace))
	require.Equal(t, PhaseActive, c.PhaseAt(c.EndTime(), grace))
	require.Equal(t, PhaseEndedPending, c.PhaseAt(c.EndTime().Add(time.Second), grace))
	require.Equal(t, PhaseEndedPending, c.PhaseAt(c.GraceDeadline(grace), grace))
	require.Equal(t, PhaseAbandoned, c.PhaseAt(c.GraceDeadline(grace).Add(time.Second), grace))

	c.Terminated = true
	require.Equal(t, PhaseTerminated, c.PhaseAt(start, grace))

	c.Terminated = false
	c.Completed = true
	require.Equal(t, PhaseCompleted, c.PhaseAt(start, grace))
}

func TestAbandonedBoundary(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	grace := 72 * time.Hour
	c := Campaign{StartTime: start, Duration: 24 * time.Hour}

	// refunds open at exactly the grace deadline
	require.False(t, c.Abandoned(c.GraceDeadline(grace).Add(-time.Second), grace))
	require.True(t, c.Abandoned(c.GraceDeadline(grace), grace))

	c.Completed = true
	require.False(t, c.Abandoned(c.GraceDeadline(grace).Add(time.Hour), grace))
}

func TestSettlementSplitConserves(t *testing.T) {
	tests := []struct {
		raised     string
		feePercent int
		wantPool   string
		wantFee    string
	}{
		{"1", 1, "0.99", "0.01"},
		{"100", 5, "95", "5"},
		{"0.03", 10, "0.027", "0.003"},
		{"123.45", 0, "123.45", "0"},
		{"7", 100, "0", "7"},
	}
	for _, tt := range tests {
		pool, fee := SettlementSplit(dec(t, tt.raised), tt.feePercent)
		require.True(t, pool.Equal(dec(t, tt.wantPool)), "pool %s", pool)
		require.True(t, fee.Equal(dec(t, tt.wantFee)), "fee %s", fee)
		require.True(t, pool.Add(fee).Equal(dec(t, tt.raised)), "split must conserve")
	}
}

func TestMeetsPriceFloor(t *testing.T) {
	// raised 1, fee 1% -> pool 0.99 against 5 tokens implies 0.198
	pool, _ := SettlementSplit(dec(t, "1"), 1)
	require.True(t, MeetsPriceFloor(pool, 5, dec(t, "0.1")))
	// same pool against 10 tokens implies 0.099 < 0.1
	require.False(t, MeetsPriceFloor(pool, 10, dec(t, "0.1")))
	// boundary: implied price exactly at the floor passes
	require.True(t, MeetsPriceFloor(dec(t, "1"), 10, dec(t, "0.1")))
}

func TestVestedTokensCapped(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	period := 10 * 24 * time.Hour

	require.Equal(t, int64(0), VestedTokens(10, start, period, start))
	require.Equal(t, int64(5), VestedTokens(10, start, period, start.Add(5*24*time.Hour)))
	require.Equal(t, int64(10), VestedTokens(10, start, period, start.Add(period)))
	// elapsed beyond the period never vests more than the entitlement
	require.Equal(t, int64(10), VestedTokens(10, start, period, start.Add(100*period)))
	// before the start nothing is vested
	require.Equal(t, int64(0), VestedTokens(10, start, period, start.Add(-time.Hour)))
}

func TestVestedTokensPartialFloors(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	period := 3 * time.Hour
	// 10 * 1/3 = 3.33 floors to 3
	require.Equal(t, int64(3), VestedTokens(10, start, period, start.Add(time.Hour)))
}

func TestVestedTokensLargeValuesNoOverflow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	period := 4 * 365 * 24 * time.Hour
	entitled := int64(1_000_000_000_000)
	got := VestedTokens(entitled, start, period, start.Add(period/2))
	require.Equal(t, entitled/2, got)
}

func TestEntitlementMatchesContributionMath(t *testing.T) {
	price := dec(t, "0.1")
	e := Contribution{Amount: dec(t, "1")}
	require.Equal(t, int64(10), e.Entitlement(price))
	e.Amount = dec(t, "0.35")
	require.Equal(t, int64(3), e.Entitlement(price))
}
