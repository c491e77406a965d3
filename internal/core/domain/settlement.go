package domain

import "github.com/shopspring/decimal"

// SettlementSplit divides raised funds between the funding pool and the
// platform fee. feePercent is a whole-number percentage fixed at deployment.
// The split is exact: pool + fee == raised to the digit.
func SettlementSplit(raised decimal.Decimal, feePercent int) (pool, fee decimal.Decimal) {
	pool = raised.
		Mul(decimal.NewFromInt(int64(100 - feePercent))).
		Div(decimal.NewFromInt(100))
	fee = raised.Sub(pool)
	return pool, fee
}

// MeetsPriceFloor reports whether seeding the pool with poolFunds against
// tokenAmount tokens implies a price of at least unitPrice. The comparison is
// cross-multiplied (poolFunds >= unitPrice * tokenAmount) so no division
// precision is lost.
func MeetsPriceFloor(poolFunds decimal.Decimal, tokenAmount int64, unitPrice decimal.Decimal) bool {
	return poolFunds.GreaterThanOrEqual(unitPrice.Mul(decimal.NewFromInt(tokenAmount)))
}

// ImpliedPrice is poolFunds / tokenAmount, used for error detail only; the
// floor check itself goes through MeetsPriceFloor.
func ImpliedPrice(poolFunds decimal.Decimal, tokenAmount int64) decimal.Decimal {
	return poolFunds.Div(decimal.NewFromInt(tokenAmount))
}
