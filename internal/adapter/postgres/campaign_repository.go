package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool. All
// transactional scopes run at Serializable isolation and lock the campaign
// row with FOR UPDATE, so concurrent operations on one campaign serialize.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Numeric columns are cast to text on read and back to numeric on write so
// amounts round-trip through shopspring decimals without precision loss.
const campaignColumns = `organizer, token_id, unit_price::text, total_tokens, remaining_tokens,
		start_time, duration_secs, raised::text, vesting_start, vesting_secs,
		completed, terminated, created_at, updated_at`

func (r *CampaignRepository) Campaign(ctx context.Context, organizer string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE organizer = $1`, organizer)
	return scanCampaign(row)
}

func (r *CampaignRepository) Contribution(ctx context.Context, organizer, contributor string) (*domain.Contribution, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT organizer, contributor, amount::text, claimed_tokens, created_at, updated_at
		 FROM contributions WHERE organizer = $1 AND contributor = $2`, organizer, contributor)
	return scanContribution(row)
}

func (r *CampaignRepository) Stats(ctx context.Context, organizer string) (*port.CampaignStats, error) {
	var (
		stats       port.CampaignStats
		contributed string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0)::text, COALESCE(SUM(claimed_tokens), 0)
		 FROM contributions WHERE organizer = $1`, organizer).
		Scan(&stats.Contributors, &contributed, &stats.TokensClaimed)
	if err != nil {
		return nil, err
	}
	if stats.Contributed, err = decimal.NewFromString(contributed); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *CampaignRepository) Atomically(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	err = fn(&ledgerTx{tx: tx})
	return err
}

type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Campaign(ctx context.Context, organizer string) (*domain.Campaign, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE organizer = $1 FOR UPDATE`, organizer)
	return scanCampaign(row)
}

func (t *ledgerTx) Contribution(ctx context.Context, organizer, contributor string) (*domain.Contribution, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT organizer, contributor, amount::text, claimed_tokens, created_at, updated_at
		 FROM contributions WHERE organizer = $1 AND contributor = $2 FOR UPDATE`, organizer, contributor)
	return scanContribution(row)
}

func (t *ledgerTx) PutCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO campaigns
		(organizer, token_id, unit_price, total_tokens, remaining_tokens, start_time,
		 duration_secs, raised, vesting_start, vesting_secs, completed, terminated,
		 created_at, updated_at)
		VALUES ($1,$2,$3::numeric,$4,$5,$6,$7,$8::numeric,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (organizer) DO UPDATE SET
		 remaining_tokens = EXCLUDED.remaining_tokens,
		 raised = EXCLUDED.raised,
		 vesting_start = EXCLUDED.vesting_start,
		 completed = EXCLUDED.completed,
		 terminated = EXCLUDED.terminated,
		 updated_at = EXCLUDED.updated_at`,
		c.Organizer, c.TokenID, c.UnitPrice.String(), c.TotalTokens, c.RemainingTokens,
		c.StartTime, int64(c.Duration/time.Second), c.Raised.String(), c.VestingStart,
		int64(c.VestingPeriod/time.Second), c.Completed, c.Terminated, c.CreatedAt, c.UpdatedAt)
	return err
}

func (t *ledgerTx) PutContribution(ctx context.Context, e *domain.Contribution) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO contributions
		(organizer, contributor, amount, claimed_tokens, created_at, updated_at)
		VALUES ($1,$2,$3::numeric,$4,$5,$6)
		ON CONFLICT (organizer, contributor) DO UPDATE SET
		 amount = EXCLUDED.amount,
		 claimed_tokens = EXCLUDED.claimed_tokens,
		 updated_at = EXCLUDED.updated_at`,
		e.Organizer, e.Contributor, e.Amount.String(), e.ClaimedTokens, e.CreatedAt, e.UpdatedAt)
	return err
}

func (t *ledgerTx) AppendEvent(ctx context.Context, ev *domain.Event) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO campaign_events
		(id, type, organizer, contributor, amount, tokens, created_at)
		VALUES ($1,$2,$3,$4,$5::numeric,$6,$7)`,
		ev.ID, string(ev.Type), ev.Organizer, ev.Contributor, ev.Amount.String(), ev.Tokens, ev.CreatedAt)
	return err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c            domain.Campaign
		unitPrice    string
		raised       string
		durationSecs int64
		vestingSecs  int64
	)
	err := row.Scan(
		&c.Organizer,
		&c.TokenID,
		&unitPrice,
		&c.TotalTokens,
		&c.RemainingTokens,
		&c.StartTime,
		&durationSecs,
		&raised,
		&c.VestingStart,
		&vestingSecs,
		&c.Completed,
		&c.Terminated,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, err
	}
	if c.Raised, err = decimal.NewFromString(raised); err != nil {
		return nil, err
	}
	c.Duration = time.Duration(durationSecs) * time.Second
	c.VestingPeriod = time.Duration(vestingSecs) * time.Second
	return &c, nil
}

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var (
		e      domain.Contribution
		amount string
	)
	err := row.Scan(&e.Organizer, &e.Contributor, &amount, &e.ClaimedTokens, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	return &e, nil
}
