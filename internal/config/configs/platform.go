package configs

import (
	"fmt"
	"time"
)

// Platform holds the construction-time ledger parameters. They are fixed for
// the life of the deployment; there is no post-launch governance of fee or
// pool settings.
type Platform struct {
	// FeePercent is the whole-number percentage of raised funds kept by the
	// platform at settlement.
	FeePercent int `env:"FEE_PERCENT" envDefault:"1"`
	// FeeRecipient is the identity fee funds are transferred to.
	FeeRecipient string `env:"FEE_RECIPIENT" envDefault:"platform-treasury"`
	// CustodyAccount is the platform identity that escrows offered tokens
	// and holds contributed funds.
	CustodyAccount string `env:"CUSTODY_ACCOUNT" envDefault:"platform-custody"`
	// FundsToken identifies the paired funds token contributions are
	// denominated in.
	FundsToken string `env:"FUNDS_TOKEN" envDefault:"USD"`
	// GracePeriod is the settlement window after a campaign's deadline,
	// shared by all campaigns.
	GracePeriod time.Duration `env:"GRACE_PERIOD" envDefault:"72h"`
}

// Validate checks the platform parameters for internal consistency.
func (c Platform) Validate() error {
	if c.FeePercent < 0 || c.FeePercent > 100 {
		return fmt.Errorf("fee percent must be within 0-100, got %d", c.FeePercent)
	}
	if c.GracePeriod <= 0 {
		return fmt.Errorf("grace period must be positive, got %s", c.GracePeriod)
	}
	return nil
}
