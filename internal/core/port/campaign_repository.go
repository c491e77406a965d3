package port

import (
	"context"

	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
)

// CampaignRepository is the outbound persistence port for the campaign
// registry and contribution ledger. Implementations must make Atomically
// all-or-nothing: every mutation staged inside the closure is discarded when
// it returns an error.
type CampaignRepository interface {
	// Campaign returns the record for an organizer, or (nil, nil) when the
	// organizer has never created a campaign.
	Campaign(ctx context.Context, organizer string) (*domain.Campaign, error)
	// Contribution returns the ledger entry for an (organizer, contributor)
	// pair, or (nil, nil) when the contributor never paid in.
	Contribution(ctx context.Context, organizer, contributor string) (*domain.Contribution, error)
	// Stats aggregates the ledger for one campaign.
	Stats(ctx context.Context, organizer string) (*CampaignStats, error)
	// Atomically runs fn in one transactional scope. Reads through the
	// LedgerTx see staged writes; campaign reads lock the record against
	// concurrent mutation for the duration of the scope.
	Atomically(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx is the read/write surface available inside a transactional scope.
type LedgerTx interface {
	Campaign(ctx context.Context, organizer string) (*domain.Campaign, error)
	Contribution(ctx context.Context, organizer, contributor string) (*domain.Contribution, error)
	PutCampaign(ctx context.Context, c *domain.Campaign) error
	PutContribution(ctx context.Context, e *domain.Contribution) error
	AppendEvent(ctx context.Context, ev *domain.Event) error
}

// CampaignStats aggregates a campaign's ledger. Contributed must equal the
// campaign's raised funds while the campaign is live; refunds reduce
// Contributed without touching raised.
type CampaignStats struct {
	Contributors  int64
	Contributed   decimal.Decimal
	TokensClaimed int64
}
