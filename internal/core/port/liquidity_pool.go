package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PoolDeposit describes a paired deposit into the external funding pool:
// TokenAmount of TokenID against FundsAmount of the paired funds token. The
// minimums bound acceptable slippage; Deadline bounds how long the pool may
// take to accept the deposit.
type PoolDeposit struct {
	TokenID        string
	TokenAmount    decimal.Decimal
	FundsAmount    decimal.Decimal
	MinTokenAmount decimal.Decimal
	MinFundsAmount decimal.Decimal
	Recipient      string
	Deadline       time.Time
}

// PoolPosition reports the amounts the pool actually accepted.
type PoolPosition struct {
	TokenDeposited decimal.Decimal
	FundsDeposited decimal.Decimal
}

// LiquidityPool is the external funding-pool collaborator. Any failure from
// DepositPaired must abort the settlement that requested it.
type LiquidityPool interface {
	DepositPaired(ctx context.Context, dep PoolDeposit) (*PoolPosition, error)
}
