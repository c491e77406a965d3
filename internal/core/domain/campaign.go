package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents one organizer's fundraising offer. A record is created
// once per organizer identity and is never deleted; the organizer slot stays
// used even after termination or abandonment.
// Funds are exact decimals, token quantities are integers.
type Campaign struct {
	Organizer       string
	TokenID         string
	UnitPrice       decimal.Decimal // funds per token, fixed for the campaign lifetime
	TotalTokens     int64
	RemainingTokens int64
	StartTime       time.Time
	Duration        time.Duration
	Raised          decimal.Decimal
	VestingStart    *time.Time // set iff Completed
	VestingPeriod   time.Duration
	Completed       bool
	Terminated      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Phase is the derived lifecycle state of a campaign at a point in time.
type Phase string

const (
	PhaseActive       Phase = "active"
	PhaseEndedPending Phase = "ended_pending" // past deadline, settlement still possible
	PhaseCompleted    Phase = "completed"
	PhaseTerminated   Phase = "terminated"
	PhaseAbandoned    Phase = "abandoned"
)

// EndTime returns the contribution deadline.
func (c *Campaign) EndTime() time.Time {
	return c.StartTime.Add(c.Duration)
}

// GraceDeadline returns the last instant at which settlement is allowed.
func (c *Campaign) GraceDeadline(grace time.Duration) time.Time {
	return c.EndTime().Add(grace)
}

// PhaseAt derives the lifecycle state at the given instant. Completed and
// Terminated are terminal and mutually exclusive.
func (c *Campaign) PhaseAt(now time.Time, grace time.Duration) Phase {
	switch {
	case c.Completed:
		return PhaseCompleted
	case c.Terminated:
		return PhaseTerminated
	case !now.After(c.EndTime()):
		return PhaseActive
	case !now.After(c.GraceDeadline(grace)):
		return PhaseEndedPending
	default:
		return PhaseAbandoned
	}
}

// Active reports whether contributions are still accepted.
func (c *Campaign) Active(now time.Time) bool {
	return !c.Completed && !c.Terminated && !now.After(c.EndTime())
}

// Abandoned reports whether the grace window elapsed without settlement or
// explicit termination. Refunds become available at exactly the grace
// deadline.
func (c *Campaign) Abandoned(now time.Time, grace time.Duration) bool {
	return !c.Completed && !c.Terminated && !now.Before(c.GraceDeadline(grace))
}

// TokensFor converts a funds amount into a token quantity at the campaign's
// unit price using floor division. The fractional remainder is retained by
// the contributor as spent but not credited; contributors should size their
// payments as multiples of the unit price.
func (c *Campaign) TokensFor(amount decimal.Decimal) int64 {
	return TokensAtPrice(amount, c.UnitPrice)
}

// TokensAtPrice is the floor division used both at contribution time and at
// claim time. It is exact: QuoRem with precision 0 truncates the quotient to
// a whole number without intermediate rounding.
func TokensAtPrice(amount, unitPrice decimal.Decimal) int64 {
	q, _ := amount.QuoRem(unitPrice, 0)
	return q.IntPart()
}
