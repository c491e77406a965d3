package memory

import (
	"context"
	"sync"

	"launchpad/internal/core/port"
)

// LiquidityPool is an in-memory funding-pool collaborator that accepts every
// paired deposit at face value and records the resulting positions per
// recipient. Used by dev mode and tests.
type LiquidityPool struct {
	mu        sync.Mutex
	positions map[string][]port.PoolPosition
}

func NewLiquidityPool() *LiquidityPool {
	return &LiquidityPool{positions: make(map[string][]port.PoolPosition)}
}

func (p *LiquidityPool) DepositPaired(_ context.Context, dep port.PoolDeposit) (*port.PoolPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos := port.PoolPosition{
		TokenDeposited: dep.TokenAmount,
		FundsDeposited: dep.FundsAmount,
	}
	p.positions[dep.Recipient] = append(p.positions[dep.Recipient], pos)
	return &pos, nil
}

// Positions returns the deposits recorded for a recipient.
func (p *LiquidityPool) Positions(recipient string) []port.PoolPosition {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]port.PoolPosition, len(p.positions[recipient]))
	copy(out, p.positions[recipient])
	return out
}
