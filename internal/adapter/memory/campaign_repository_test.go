package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

func testCampaign(organizer string) *domain.Campaign {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		Organizer:       organizer,
		TokenID:         "LPT",
		UnitPrice:       decimal.RequireFromString("0.1"),
		TotalTokens:     1000,
		RemainingTokens: 1000,
		StartTime:       now,
		Duration:        24 * time.Hour,
		Raised:          decimal.Zero,
		VestingPeriod:   48 * time.Hour,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestAtomicallyCommits(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	err := repo.Atomically(ctx, func(tx port.LedgerTx) error {
		if err := tx.PutCampaign(ctx, testCampaign("org")); err != nil {
			return err
		}
		return tx.PutContribution(ctx, &domain.Contribution{
			Organizer:   "org",
			Contributor: "alice",
			Amount:      decimal.RequireFromString("2"),
		})
	})
	require.NoError(t, err)

	c, err := repo.Campaign(ctx, "org")
	require.NoError(t, err)
	require.NotNil(t, c)
	e, err := repo.Contribution(ctx, "org", "alice")
	require.NoError(t, err)
	require.True(t, e.Amount.Equal(decimal.RequireFromString("2")))
}

func TestAtomicallyRollsBackOnError(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	require.NoError(t, repo.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.PutCampaign(ctx, testCampaign("org"))
	}))

	boom := errors.New("collaborator failed")
	err := repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.Campaign(ctx, "org")
		if err != nil {
			return err
		}
		c.Raised = decimal.RequireFromString("5")
		c.Terminated = true
		if err := tx.PutCampaign(ctx, c); err != nil {
			return err
		}
		if err := tx.PutContribution(ctx, &domain.Contribution{Organizer: "org", Contributor: "bob", Amount: decimal.RequireFromString("5")}); err != nil {
			return err
		}
		if err := tx.AppendEvent(ctx, &domain.Event{ID: "ev", Type: domain.EventContributed, Organizer: "org"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// nothing staged survived
	c, err := repo.Campaign(ctx, "org")
	require.NoError(t, err)
	require.True(t, c.Raised.IsZero())
	require.False(t, c.Terminated)
	e, err := repo.Contribution(ctx, "org", "bob")
	require.NoError(t, err)
	require.Nil(t, e)
	require.Empty(t, repo.Events())
}

func TestTxReadsSeeStagedWrites(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	err := repo.Atomically(ctx, func(tx port.LedgerTx) error {
		if err := tx.PutCampaign(ctx, testCampaign("org")); err != nil {
			return err
		}
		c, err := tx.Campaign(ctx, "org")
		if err != nil {
			return err
		}
		require.NotNil(t, c)
		c.Raised = decimal.RequireFromString("1")
		if err := tx.PutCampaign(ctx, c); err != nil {
			return err
		}
		c, err = tx.Campaign(ctx, "org")
		if err != nil {
			return err
		}
		require.True(t, c.Raised.Equal(decimal.RequireFromString("1")))
		return nil
	})
	require.NoError(t, err)
}

func TestStatsAggregatesLedger(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	require.NoError(t, repo.Atomically(ctx, func(tx port.LedgerTx) error {
		if err := tx.PutContribution(ctx, &domain.Contribution{Organizer: "org", Contributor: "alice", Amount: decimal.RequireFromString("1.5"), ClaimedTokens: 3}); err != nil {
			return err
		}
		if err := tx.PutContribution(ctx, &domain.Contribution{Organizer: "org", Contributor: "bob", Amount: decimal.RequireFromString("2.5"), ClaimedTokens: 4}); err != nil {
			return err
		}
		return tx.PutContribution(ctx, &domain.Contribution{Organizer: "other", Contributor: "carol", Amount: decimal.RequireFromString("9")})
	}))

	stats, err := repo.Stats(ctx, "org")
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Contributors)
	require.True(t, stats.Contributed.Equal(decimal.RequireFromString("4")))
	require.Equal(t, int64(7), stats.TokensClaimed)
}
