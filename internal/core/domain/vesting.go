package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VestedTokens returns how many of the entitled tokens have unlocked by now
// on a linear schedule starting at vestingStart. Elapsed time is capped at
// the vesting period before the ratio is applied, so the result never
// exceeds the entitlement regardless of how late the claim arrives.
func VestedTokens(entitled int64, vestingStart time.Time, period time.Duration, now time.Time) int64 {
	if entitled <= 0 || period <= 0 {
		return 0
	}
	elapsed := now.Sub(vestingStart)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= period {
		return entitled
	}
	// entitled * elapsed / period in decimal space to avoid int64 overflow
	// on the intermediate product.
	q, _ := decimal.NewFromInt(entitled).
		Mul(decimal.NewFromInt(int64(elapsed))).
		QuoRem(decimal.NewFromInt(int64(period)), 0)
	return q.IntPart()
}
