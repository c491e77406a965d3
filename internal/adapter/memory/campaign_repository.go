package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

type ledgerKey struct {
	organizer   string
	contributor string
}

// CampaignRepository implements port.CampaignRepository over owned in-memory
// keyed containers: one campaign record per organizer, one ledger entry per
// (organizer, contributor) pair, plus an append-only event log. A single
// mutex serializes transactional scopes; writes are staged and applied only
// when the scope succeeds, which gives the required all-or-nothing semantics.
type CampaignRepository struct {
	mu            sync.Mutex
	campaigns     map[string]domain.Campaign
	contributions map[ledgerKey]domain.Contribution
	events        []domain.Event
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns:     make(map[string]domain.Campaign),
		contributions: make(map[ledgerKey]domain.Contribution),
	}
}

func (r *CampaignRepository) Campaign(_ context.Context, organizer string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[organizer]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CampaignRepository) Contribution(_ context.Context, organizer, contributor string) (*domain.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.contributions[ledgerKey{organizer, contributor}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *CampaignRepository) Stats(_ context.Context, organizer string) (*port.CampaignStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &port.CampaignStats{Contributed: decimal.Zero}
	for k, e := range r.contributions {
		if k.organizer != organizer {
			continue
		}
		stats.Contributors++
		stats.Contributed = stats.Contributed.Add(e.Amount)
		stats.TokensClaimed += e.ClaimedTokens
	}
	return stats, nil
}

// Events returns a copy of the event log, newest last. Used by dev tooling
// and tests; the port interface does not expose it.
func (r *CampaignRepository) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *CampaignRepository) Atomically(_ context.Context, fn func(tx port.LedgerTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx := &ledgerTx{
		repo:          r,
		campaigns:     make(map[string]domain.Campaign),
		contributions: make(map[ledgerKey]domain.Contribution),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for k, c := range tx.campaigns {
		r.campaigns[k] = c
	}
	for k, e := range tx.contributions {
		r.contributions[k] = e
	}
	r.events = append(r.events, tx.events...)
	return nil
}

// ledgerTx stages writes; reads see staged values first, then the base maps.
type ledgerTx struct {
	repo          *CampaignRepository
	campaigns     map[string]domain.Campaign
	contributions map[ledgerKey]domain.Contribution
	events        []domain.Event
}

func (tx *ledgerTx) Campaign(_ context.Context, organizer string) (*domain.Campaign, error) {
	if c, ok := tx.campaigns[organizer]; ok {
		return &c, nil
	}
	if c, ok := tx.repo.campaigns[organizer]; ok {
		return &c, nil
	}
	return nil, nil
}

func (tx *ledgerTx) Contribution(_ context.Context, organizer, contributor string) (*domain.Contribution, error) {
	k := ledgerKey{organizer, contributor}
	if e, ok := tx.contributions[k]; ok {
		return &e, nil
	}
	if e, ok := tx.repo.contributions[k]; ok {
		return &e, nil
	}
	return nil, nil
}

func (tx *ledgerTx) PutCampaign(_ context.Context, c *domain.Campaign) error {
	tx.campaigns[c.Organizer] = *c
	return nil
}

func (tx *ledgerTx) PutContribution(_ context.Context, e *domain.Contribution) error {
	tx.contributions[ledgerKey{e.Organizer, e.Contributor}] = *e
	return nil
}

func (tx *ledgerTx) AppendEvent(_ context.Context, ev *domain.Event) error {
	tx.events = append(tx.events, *ev)
	return nil
}
