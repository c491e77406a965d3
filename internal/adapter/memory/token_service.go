package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

type holdingKey struct {
	token    string
	identity string
}

// TokenService is an in-memory fungible-token collaborator with ERC-20-like
// semantics: balances per (token, identity) and allowances granted to the
// platform account for TransferFrom. Used by dev mode, seeding and tests.
type TokenService struct {
	platform string

	mu         sync.Mutex
	balances   map[holdingKey]decimal.Decimal
	allowances map[holdingKey]decimal.Decimal // owner's allowance to the platform
	approvals  map[holdingKey]decimal.Decimal // platform's grants to other spenders
}

func NewTokenService(platform string) *TokenService {
	return &TokenService{
		platform:   platform,
		balances:   make(map[holdingKey]decimal.Decimal),
		allowances: make(map[holdingKey]decimal.Decimal),
		approvals:  make(map[holdingKey]decimal.Decimal),
	}
}

// Mint credits identity with amount and grants the platform an equal
// allowance, so freshly minted dev balances are immediately usable.
func (s *TokenService) Mint(tokenID, identity string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := holdingKey{tokenID, identity}
	s.balances[k] = s.balances[k].Add(amount)
	s.allowances[k] = s.allowances[k].Add(amount)
}

func (s *TokenService) TransferFrom(_ context.Context, tokenID, owner, recipient string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := holdingKey{tokenID, owner}
	if s.allowances[ok].LessThan(amount) {
		return fmt.Errorf("token %s: allowance of %s below %s", tokenID, owner, amount)
	}
	if err := s.move(tokenID, owner, recipient, amount); err != nil {
		return err
	}
	s.allowances[ok] = s.allowances[ok].Sub(amount)
	return nil
}

func (s *TokenService) Transfer(_ context.Context, tokenID, recipient string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(tokenID, s.platform, recipient, amount)
}

func (s *TokenService) Approve(_ context.Context, tokenID, spender string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Only allowances granted to the platform are consulted by TransferFrom;
	// grants to other spenders are recorded but inert in this implementation.
	s.approvals[holdingKey{tokenID, spender}] = amount
	return nil
}

func (s *TokenService) BalanceOf(_ context.Context, tokenID, identity string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[holdingKey{tokenID, identity}], nil
}

func (s *TokenService) move(tokenID, from, to string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("token %s: negative transfer amount %s", tokenID, amount)
	}
	fk := holdingKey{tokenID, from}
	if s.balances[fk].LessThan(amount) {
		return fmt.Errorf("token %s: balance of %s below %s", tokenID, from, amount)
	}
	tk := holdingKey{tokenID, to}
	s.balances[fk] = s.balances[fk].Sub(amount)
	s.balances[tk] = s.balances[tk].Add(amount)
	return nil
}
