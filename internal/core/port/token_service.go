package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// TokenService is the fungible-token collaborator, addressed per token
// identifier. Standard conservation semantics are assumed: no transfer fees,
// no rebasing. The platform itself is the implicit sender of Transfer and the
// implicit spender of TransferFrom.
type TokenService interface {
	// TransferFrom moves amount from owner to recipient using the platform's
	// allowance on owner's balance.
	TransferFrom(ctx context.Context, tokenID, owner, recipient string, amount decimal.Decimal) error
	// Transfer moves amount from the platform's own balance to recipient.
	Transfer(ctx context.Context, tokenID, recipient string, amount decimal.Decimal) error
	// Approve grants spender the right to move amount from the platform's
	// balance.
	Approve(ctx context.Context, tokenID, spender string, amount decimal.Decimal) error
	// BalanceOf returns identity's balance of the token.
	BalanceOf(ctx context.Context, tokenID, identity string) (decimal.Decimal, error)
}
