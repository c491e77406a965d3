package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is the per (organizer, contributor) ledger entry. Amount is
// the funds contributed to date; ClaimedTokens only ever grows and is bounded
// by the entitlement. A refund zeroes Amount exactly once.
type Contribution struct {
	Organizer     string
	Contributor   string
	Amount        decimal.Decimal
	ClaimedTokens int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Entitlement returns the total token quantity this entry has purchased at
// the campaign's unit price. The price is immutable per campaign, so the
// result is consistent with the quantities credited at contribution time.
func (c *Contribution) Entitlement(unitPrice decimal.Decimal) int64 {
	return TokensAtPrice(c.Amount, unitPrice)
}
