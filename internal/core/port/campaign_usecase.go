package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
)

// CampaignUseCase defines the business operations of the fundraising ledger.
// This is the primary inbound port; the HTTP adapter is a thin layer over it.
// Every mutating operation is all-or-nothing: a failed precondition or
// collaborator call leaves prior state untouched.
type CampaignUseCase interface {
	// CreateCampaign validates terms, escrows the offered tokens from the
	// organizer into platform custody and stores the record. One campaign per
	// organizer identity, forever.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// Contribute pays funds into an active campaign. The token quantity is
	// amount/unitPrice rounded down; the remainder is spent but not credited.
	Contribute(ctx context.Context, req ContributeReq) (*ContributeResp, error)

	// Terminate cancels a campaign before completion, enabling refunds.
	// Terminating an already terminated campaign is a harmless no-op.
	Terminate(ctx context.Context, organizer string) error

	// Settle converts raised funds into a funding-pool deposit plus the
	// platform fee, escrowing tokenAmount additional tokens from the
	// organizer, and starts vesting. Legal until the grace deadline.
	Settle(ctx context.Context, req SettleReq) (*SettleResp, error)

	// ClaimTokens transfers the contributor's vested, not yet claimed tokens.
	// Nothing claimable is a silent no-op.
	ClaimTokens(ctx context.Context, organizer, contributor string) (*ClaimResp, error)

	// ClaimRefund returns the contributor's full recorded contribution once
	// the campaign is terminated or abandoned. A zero balance is a silent
	// no-op; the entry is zeroed so a repeat call transfers nothing.
	ClaimRefund(ctx context.Context, organizer, contributor string) (*RefundResp, error)

	// GetCampaign returns the campaign record, or (nil, nil) when absent.
	GetCampaign(ctx context.Context, organizer string) (*domain.Campaign, error)
	// GetContribution returns the ledger entry, or (nil, nil) when absent.
	GetContribution(ctx context.Context, organizer, contributor string) (*domain.Contribution, error)
	// GetStats aggregates the campaign's ledger.
	GetStats(ctx context.Context, organizer string) (*CampaignStats, error)
}

type CreateCampaignReq struct {
	Organizer     string
	TokenID       string
	UnitPrice     decimal.Decimal
	TotalTokens   int64
	Duration      time.Duration
	VestingPeriod time.Duration
}

type ContributeReq struct {
	Organizer   string
	Contributor string
	Amount      decimal.Decimal
}

// ContributeResp reports the accounting outcome of a contribution.
type ContributeResp struct {
	Tokens          int64
	Raised          decimal.Decimal
	RemainingTokens int64
}

type SettleReq struct {
	Organizer   string
	TokenAmount int64
}

// SettleResp reports the settlement split.
type SettleResp struct {
	PoolFunds    decimal.Decimal
	FeeFunds     decimal.Decimal
	VestingStart time.Time
}

type ClaimResp struct {
	Claimed int64
}

type RefundResp struct {
	Refunded decimal.Decimal
}
