package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
	"launchpad/internal/metrics"
)

// poolDepositWindow bounds how long the funding pool may take to accept a
// settlement deposit.
const poolDepositWindow = 5 * time.Minute

// Config carries the construction-time platform parameters. They are
// immutable for the life of the deployment.
type Config struct {
	Repo   port.CampaignRepository
	Tokens port.TokenService
	Pool   port.LiquidityPool
	Logger *slog.Logger
	Clock  clockwork.Clock

	// FeePercent is the whole-number percentage of raised funds kept by the
	// platform at settlement.
	FeePercent int
	// FeeRecipient receives the fee funds.
	FeeRecipient string
	// CustodyAccount is the platform identity holding escrowed tokens and
	// contributed funds.
	CustodyAccount string
	// FundsToken is the identifier of the paired funds token contributions
	// are denominated in.
	FundsToken string
	// GracePeriod is the settlement window after a campaign's deadline,
	// shared by all campaigns.
	GracePeriod time.Duration
}

func (cfg *Config) Validate() error {
	if cfg.Repo == nil {
		return errors.New("repository is required")
	}
	if cfg.Tokens == nil {
		return errors.New("token service is required")
	}
	if cfg.Pool == nil {
		return errors.New("liquidity pool is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.FeePercent < 0 || cfg.FeePercent > 100 {
		return fmt.Errorf("fee percent must be within 0-100, got %d", cfg.FeePercent)
	}
	if cfg.FeeRecipient == "" {
		return errors.New("fee recipient is required")
	}
	if cfg.CustodyAccount == "" {
		return errors.New("custody account is required")
	}
	if cfg.FundsToken == "" {
		return errors.New("funds token is required")
	}
	if cfg.GracePeriod <= 0 {
		return errors.New("grace period must be greater than 0")
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return nil
}

// CampaignUseCase implements port.CampaignUseCase. Every mutating operation
// follows the same discipline inside one transactional scope: validate the
// lifecycle state, mutate the authoritative registry/ledger, then perform
// outward transfers and collaborator calls. Any failure discards the whole
// scope, so in-flight state is never observable.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	tokens port.TokenService
	pool   port.LiquidityPool
	log    *slog.Logger
	clock  clockwork.Clock

	feePercent   int
	feeRecipient string
	custody      string
	fundsToken   string
	gracePeriod  time.Duration
}

func NewCampaignUseCase(cfg Config) (*CampaignUseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CampaignUseCase{
		repo:         cfg.Repo,
		tokens:       cfg.Tokens,
		pool:         cfg.Pool,
		log:          cfg.Logger,
		clock:        cfg.Clock,
		feePercent:   cfg.FeePercent,
		feeRecipient: cfg.FeeRecipient,
		custody:      cfg.CustodyAccount,
		fundsToken:   cfg.FundsToken,
		gracePeriod:  cfg.GracePeriod,
	}, nil
}

// GracePeriod exposes the deployment-wide settlement window.
func (u *CampaignUseCase) GracePeriod() time.Duration {
	return u.gracePeriod
}

func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	switch {
	case req.TokenID == "":
		return nil, u.fail("create", domain.ErrInvalidToken)
	case !req.UnitPrice.IsPositive():
		return nil, u.fail("create", fmt.Errorf("%w: unit price %s", domain.ErrZeroPrice, req.UnitPrice))
	case req.TotalTokens <= 0:
		return nil, u.fail("create", fmt.Errorf("%w: total tokens %d", domain.ErrZeroAmount, req.TotalTokens))
	case req.Duration <= 0:
		return nil, u.fail("create", domain.ErrZeroDuration)
	case req.VestingPeriod <= 0:
		return nil, u.fail("create", domain.ErrZeroVestingPeriod)
	}

	var created *domain.Campaign
	err := u.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		existing, err := tx.Campaign(ctx, req.Organizer)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignExists, req.Organizer)
		}
		now := u.clock.Now().UTC()
		c := &domain.Campaign{
			Organizer:       req.Organizer,
			TokenID:         req.TokenID,
			UnitPrice:       req.UnitPrice,
			TotalTokens:     req.TotalTokens,
			RemainingTokens: req.TotalTokens,
			StartTime:       now,
			Duration:        req.Duration,
			Raised:          decimal.Zero,
			VestingPeriod:   req.VestingPeriod,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err = tx.PutCampaign(ctx, c); err != nil {
			return err
		}
		if err = tx.AppendEvent(ctx, u.event(domain.EventCampaignCreated, req.Organizer, "", decimal.Zero, req.TotalTokens)); err != nil {
			return err
		}
		// Escrow the offered tokens into platform custody. A collaborator
		// failure here unwinds the record and the event with the scope.
		if err = u.tokens.TransferFrom(ctx, req.TokenID, req.Organizer, u.custody, decimal.NewFromInt(req.TotalTokens)); err != nil {
			return fmt.Errorf("escrow offered tokens: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, u.fail("create", err)
	}
	u.done("create")
	u.emitted(domain.EventCampaignCreated)
	u.log.Info("campaign created",
		slog.String("organizer", req.Organizer),
		slog.String("token", req.TokenID),
		slog.Int64("total_tokens", req.TotalTokens))
	return created, nil
}

func (u *CampaignUseCase) Contribute(ctx context.Context, req port.ContributeReq) (*port.ContributeResp, error) {
	if !req.Amount.IsPositive() {
		return nil, u.fail("contribute", fmt.Errorf("%w: amount %s", domain.ErrZeroAmount, req.Amount))
	}

	var resp *port.ContributeResp
	err := u.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.Campaign(ctx, req.Organizer)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignNotFound, req.Organizer)
		}
		now := u.clock.Now().UTC()
		if !c.Active(now) {
			return fmt.Errorf("%w: phase %s", domain.ErrCampaignEnded, c.PhaseAt(now, u.gracePeriod))
		}
		tokens := c.TokensFor(req.Amount)
		if tokens > c.RemainingTokens {
			return fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientSupply, tokens, c.RemainingTokens)
		}

		c.Raised = c.Raised.Add(req.Amount)
		c.RemainingTokens -= tokens
		c.UpdatedAt = now
		if err = tx.PutCampaign(ctx, c); err != nil {
			return err
		}

		entry, err := tx.Contribution(ctx, req.Organizer, req.Contributor)
		if err != nil {
			return err
		}
		if entry == nil {
			entry = &domain.Contribution{
				Organizer:   req.Organizer,
				Contributor: req.Contributor,
				Amount:      decimal.Zero,
				CreatedAt:   now,
			}
		}
		entry.Amount = entry.Amount.Add(req.Amount)
		entry.UpdatedAt = now
		if err = tx.PutContribution(ctx, entry); err != nil {
			return err
		}
		if err = tx.AppendEvent(ctx, u.event(domain.EventContributed, req.Organizer, req.Contributor, req.Amount, tokens)); err != nil {
			return err
		}
		// Ledger is mutated; now pull the funds from the contributor.
		if err = u.tokens.TransferFrom(ctx, u.fundsToken, req.Contributor, u.custody, req.Amount); err != nil {
			return fmt.Errorf("collect contribution: %w", err)
		}
		resp = &port.ContributeResp{
			Tokens:          tokens,
			Raised:          c.Raised,
			RemainingTokens: c.RemainingTokens,
		}
		return nil
	})
	if err != nil {
		return nil, u.fail("contribute", err)
	}
	u.done("contribute")
	u.emitted(domain.EventContributed)
	u.log.Info("contribution recorded",
		slog.String("organizer", req.Organizer),
		slog.String("contributor", req.Contributor),
		slog.String("amount", req.Amount.String()),
		slog.Int64("tokens", resp.Tokens))
	return resp, nil
}

func (u *CampaignUseCase) Terminate(ctx context.Context, organizer string) error {
	var already bool
	err := u.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.Campaign(ctx, organizer)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignNotFound, organizer)
		}
		if c.Completed {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignCompleted, organizer)
		}
		if c.Terminated {
			// idempotent no-op, no event
			already = true
			return nil
		}
		c.Terminated = true
		c.UpdatedAt = u.clock.Now().UTC()
		if err = tx.PutCampaign(ctx, c); err != nil {
			return err
		}
		return tx.AppendEvent(ctx, u.event(domain.EventCampaignTerminated, organizer, "", decimal.Zero, 0))
	})
	if err != nil {
		return u.fail("terminate", err)
	}
	u.done("terminate")
	if !already {
		u.emitted(domain.EventCampaignTerminated)
		u.log.Info("campaign terminated", slog.String("organizer", organizer))
	}
	return nil
}

func (u *CampaignUseCase) Settle(ctx context.Context, req port.SettleReq) (*port.SettleResp, error) {
	if req.TokenAmount <= 0 {
		return nil, u.fail("settle", fmt.Errorf("%w: token amount %d", domain.ErrZeroAmount, req.TokenAmount))
	}

	var resp *port.SettleResp
	err := u.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.Campaign(ctx, req.Organizer)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignNotFound, req.Organizer)
		}
		if c.Completed {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignCompleted, req.Organizer)
		}
		now := u.clock.Now().UTC()
		if c.Terminated || now.After(c.GraceDeadline(u.gracePeriod)) {
			return fmt.Errorf("%w: phase %s", domain.ErrTerminatedOrAbandoned, c.PhaseAt(now, u.gracePeriod))
		}

		poolFunds, feeFunds := domain.SettlementSplit(c.Raised, u.feePercent)
		if !domain.MeetsPriceFloor(poolFunds, req.TokenAmount, c.UnitPrice) {
			return fmt.Errorf("%w: implied %s, floor %s",
				domain.ErrPriceBelowFloor, domain.ImpliedPrice(poolFunds, req.TokenAmount), c.UnitPrice)
		}

		vestingStart := now
		c.VestingStart = &vestingStart
		c.Completed = true
		c.UpdatedAt = now
		if err = tx.PutCampaign(ctx, c); err != nil {
			return err
		}
		if err = tx.AppendEvent(ctx, u.event(domain.EventSettled, req.Organizer, "", poolFunds, req.TokenAmount)); err != nil {
			return err
		}

		// Outward effects, all inside the scope: escrow the pool tokens from
		// the organizer, seed the funding pool crediting the platform, then
		// pay the fee. The registry rollback does not undo a completed token
		// pull, so any failure after the escrow returns the tokens before
		// discarding the scope.
		tokenAmount := decimal.NewFromInt(req.TokenAmount)
		if err = u.tokens.TransferFrom(ctx, c.TokenID, req.Organizer, u.custody, tokenAmount); err != nil {
			return fmt.Errorf("escrow settlement tokens: %w", err)
		}
		if _, err = u.pool.DepositPaired(ctx, port.PoolDeposit{
			TokenID:        c.TokenID,
			TokenAmount:    tokenAmount,
			FundsAmount:    poolFunds,
			MinTokenAmount: tokenAmount,
			MinFundsAmount: poolFunds,
			Recipient:      u.custody,
			Deadline:       now.Add(poolDepositWindow),
		}); err != nil {
			u.returnEscrow(ctx, c.TokenID, req.Organizer, tokenAmount)
			return fmt.Errorf("seed funding pool: %w", err)
		}
		if err = u.tokens.Transfer(ctx, u.fundsToken, u.feeRecipient, feeFunds); err != nil {
			u.returnEscrow(ctx, c.TokenID, req.Organizer, tokenAmount)
			return fmt.Errorf("pay platform fee: %w", err)
		}
		resp = &port.SettleResp{
			PoolFunds:    poolFunds,
			FeeFunds:     feeFunds,
			VestingStart: vestingStart,
		}
		return nil
	})
	if err != nil {
		return nil, u.fail("settle", err)
	}
	u.done("settle")
	u.emitted(domain.EventSettled)
	u.log.Info("campaign settled",
		slog.String("organizer", req.Organizer),
		slog.String("pool_funds", resp.PoolFunds.String()),
		slog.String("fee_funds", resp.FeeFunds.String()),
		slog.Int64("pool_tokens", req.TokenAmount))
	return resp, nil
}

func (u *CampaignUseCase) ClaimTokens(ctx context.Context, organizer, contributor string) (*port.ClaimResp, error) {
	resp := &port.ClaimResp{}
	err := u.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.Campaign(ctx, organizer)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignNotFound, organizer)
		}
		if !c.Completed {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignNotCompleted, organizer)
		}
		entry, err := tx.Contribution(ctx, organizer, contributor)
		if err != nil {
			return err
		}
		if entry == nil {
			// nothing contributed, nothing claimable
			return nil
		}
		now := u.clock.Now().UTC()
		entitled := entry.Entitlement(c.UnitPrice)
		vested := domain.VestedTokens(entitled, *c.VestingStart, c.VestingPeriod, now)
		claimable := vested - entry.ClaimedTokens
		if claimable <= 0 {
			return nil
		}
		entry.ClaimedTokens += claimable
		entry.UpdatedAt = now
		if err = tx.PutContribution(ctx, entry); err != nil {
			return err
		}
		if err = tx.AppendEvent(ctx, u.event(domain.EventTokensClaimed, organizer, contributor, decimal.Zero, claimable)); err != nil {
			return err
		}
		// Claimed counter is bumped; now release the tokens from custody.
		if err = u.tokens.Transfer(ctx, c.TokenID, contributor, decimal.NewFromInt(claimable)); err != nil {
			return fmt.Errorf("release vested tokens: %w", err)
		}
		resp.Claimed = claimable
		return nil
	})
	if err != nil {
		return nil, u.fail("claim_tokens", err)
	}
	u.done("claim_tokens")
	if resp.Claimed > 0 {
		u.emitted(domain.EventTokensClaimed)
		u.log.Info("tokens claimed",
			slog.String("organizer", organizer),
			slog.String("contributor", contributor),
			slog.Int64("tokens", resp.Claimed))
	}
	return resp, nil
}

func (u *CampaignUseCase) ClaimRefund(ctx context.Context, organizer, contributor string) (*port.RefundResp, error) {
	resp := &port.RefundResp{Refunded: decimal.Zero}
	err := u.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.Campaign(ctx, organizer)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: organizer %s", domain.ErrCampaignNotFound, organizer)
		}
		now := u.clock.Now().UTC()
		if !c.Terminated && !c.Abandoned(now, u.gracePeriod) {
			return fmt.Errorf("%w: phase %s", domain.ErrNotTerminatedOrAbandoned, c.PhaseAt(now, u.gracePeriod))
		}
		entry, err := tx.Contribution(ctx, organizer, contributor)
		if err != nil {
			return err
		}
		if entry == nil || entry.Amount.IsZero() {
			// nothing recorded or already refunded
			return nil
		}
		amount := entry.Amount
		// Zero the entry before the outward transfer so a re-entrant call
		// observes an empty balance.
		entry.Amount = decimal.Zero
		entry.UpdatedAt = now
		if err = tx.PutContribution(ctx, entry); err != nil {
			return err
		}
		if err = tx.AppendEvent(ctx, u.event(domain.EventRefundIssued, organizer, contributor, amount, 0)); err != nil {
			return err
		}
		if err = u.tokens.Transfer(ctx, u.fundsToken, contributor, amount); err != nil {
			return fmt.Errorf("return contribution: %w", err)
		}
		resp.Refunded = amount
		return nil
	})
	if err != nil {
		return nil, u.fail("claim_refund", err)
	}
	u.done("claim_refund")
	if resp.Refunded.IsPositive() {
		u.emitted(domain.EventRefundIssued)
		u.log.Info("refund issued",
			slog.String("organizer", organizer),
			slog.String("contributor", contributor),
			slog.String("amount", resp.Refunded.String()))
	}
	return resp, nil
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, organizer string) (*domain.Campaign, error) {
	return u.repo.Campaign(ctx, organizer)
}

func (u *CampaignUseCase) GetContribution(ctx context.Context, organizer, contributor string) (*domain.Contribution, error) {
	return u.repo.Contribution(ctx, organizer, contributor)
}

func (u *CampaignUseCase) GetStats(ctx context.Context, organizer string) (*port.CampaignStats, error) {
	return u.repo.Stats(ctx, organizer)
}

// returnEscrow hands settlement tokens back to the organizer when a
// collaborator call fails after the escrow pull already went through; the
// repository rollback alone cannot undo the transfer. A failure here leaves
// the tokens in custody and is logged for manual reconciliation.
func (u *CampaignUseCase) returnEscrow(ctx context.Context, tokenID, organizer string, amount decimal.Decimal) {
	if err := u.tokens.Transfer(ctx, tokenID, organizer, amount); err != nil {
		u.log.Error("failed to return escrowed settlement tokens",
			slog.String("organizer", organizer),
			slog.String("token", tokenID),
			slog.String("amount", amount.String()),
			slog.Any("error", err))
	}
}

func (u *CampaignUseCase) event(t domain.EventType, organizer, contributor string, amount decimal.Decimal, tokens int64) *domain.Event {
	return &domain.Event{
		ID:          uuid.NewString(),
		Type:        t,
		Organizer:   organizer,
		Contributor: contributor,
		Amount:      amount,
		Tokens:      tokens,
		CreatedAt:   u.clock.Now().UTC(),
	}
}

func (u *CampaignUseCase) fail(op string, err error) error {
	metrics.OperationsTotal.WithLabelValues(op, "error").Inc()
	return err
}

func (u *CampaignUseCase) done(op string) {
	metrics.OperationsTotal.WithLabelValues(op, "ok").Inc()
}

// emitted counts a notification once its transactional scope has committed;
// events built inside a rolled-back scope are never counted.
func (u *CampaignUseCase) emitted(t domain.EventType) {
	metrics.EventsTotal.WithLabelValues(string(t)).Inc()
}
