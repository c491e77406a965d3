package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType enumerates the emitted domain notifications. Settlement emits
// Settled; there is no separate completion notification.
type EventType string

const (
	EventCampaignCreated    EventType = "campaign_created"
	EventContributed        EventType = "contributed"
	EventCampaignTerminated EventType = "campaign_terminated"
	EventSettled            EventType = "settled"
	EventTokensClaimed      EventType = "tokens_claimed"
	EventRefundIssued       EventType = "refund_issued"
)

// Event is a domain notification appended in the same transaction as the
// state change it describes. Amount and Tokens carry the funds and token
// quantities involved, zero when not applicable.
type Event struct {
	ID          string
	Type        EventType
	Organizer   string
	Contributor string
	Amount      decimal.Decimal
	Tokens      int64
	CreatedAt   time.Time
}
