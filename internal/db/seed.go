package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the launchpad database: one live campaign with
// two contributors and a terminated one awaiting refunds. The rows keep the
// ledger invariant (sum of contributions == raised) intact.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()

	type contribution struct {
		contributor string
		amount      string
		tokens      int64
	}
	campaigns := []struct {
		organizer     string
		tokenID       string
		unitPrice     string
		totalTokens   int64
		durationSecs  int64
		vestingSecs   int64
		terminated    bool
		contributions []contribution
	}{
		{
			organizer:    "demo-organizer",
			tokenID:      "DEMO",
			unitPrice:    "0.1",
			totalTokens:  1000,
			durationSecs: 5 * 24 * 3600,
			vestingSecs:  10 * 24 * 3600,
			contributions: []contribution{
				{"demo-alice", "1", 10},
				{"demo-bob", "2.5", 25},
			},
		},
		{
			organizer:    "demo-cancelled",
			tokenID:      "CNL",
			unitPrice:    "2",
			totalTokens:  500,
			durationSecs: 24 * 3600,
			vestingSecs:  48 * 3600,
			terminated:   true,
			contributions: []contribution{
				{"demo-carol", "10", 5},
			},
		},
	}

	for _, c := range campaigns {
		raised := "0"
		remaining := c.totalTokens
		for _, e := range c.contributions {
			remaining -= e.tokens
		}
		switch c.organizer {
		case "demo-organizer":
			raised = "3.5"
		case "demo-cancelled":
			raised = "10"
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
			(organizer, token_id, unit_price, total_tokens, remaining_tokens, start_time,
			 duration_secs, raised, vesting_start, vesting_secs, completed, terminated,
			 created_at, updated_at)
			VALUES ($1,$2,$3::numeric,$4,$5,$6,$7,$8::numeric,NULL,$9,FALSE,$10,$11,$11)
			ON CONFLICT DO NOTHING`,
			c.organizer, c.tokenID, c.unitPrice, c.totalTokens, remaining, now,
			c.durationSecs, raised, c.vestingSecs, c.terminated, now)
		if err != nil {
			return err
		}
		for _, e := range c.contributions {
			_, err = db.Exec(ctx, `INSERT INTO contributions
				(organizer, contributor, amount, claimed_tokens, created_at, updated_at)
				VALUES ($1,$2,$3::numeric,0,$4,$4) ON CONFLICT DO NOTHING`,
				c.organizer, e.contributor, e.amount, now)
			if err != nil {
				return err
			}
			_, err = db.Exec(ctx, `INSERT INTO campaign_events
				(id, type, organizer, contributor, amount, tokens, created_at)
				VALUES ($1,'contributed',$2,$3,$4::numeric,$5,$6) ON CONFLICT DO NOTHING`,
				uuid.NewString(), c.organizer, e.contributor, e.amount, e.tokens, now)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
