package domain

import "errors"

// Failure taxonomy. Every failure is immediate and fully reverting; callers
// match with errors.Is. Operations wrap these sentinels with the offending
// values (requested vs available, implied vs floor price).
var (
	// validation errors
	ErrCampaignExists    = errors.New("campaign already exists")
	ErrInvalidToken      = errors.New("invalid token identifier")
	ErrZeroAmount        = errors.New("amount must be positive")
	ErrZeroPrice         = errors.New("unit price must be positive")
	ErrZeroDuration      = errors.New("duration must be positive")
	ErrZeroVestingPeriod = errors.New("vesting period must be positive")

	// state errors
	ErrCampaignNotFound         = errors.New("campaign not found")
	ErrCampaignEnded            = errors.New("campaign is not accepting contributions")
	ErrCampaignCompleted        = errors.New("campaign already completed")
	ErrCampaignNotCompleted     = errors.New("campaign not completed")
	ErrTerminatedOrAbandoned    = errors.New("campaign terminated or settlement window elapsed")
	ErrNotTerminatedOrAbandoned = errors.New("campaign not terminated or abandoned")

	// economic errors
	ErrInsufficientSupply = errors.New("insufficient token supply")
	ErrPriceBelowFloor    = errors.New("implied price below unit price")
)

// IsValidation reports whether err is a parameter/validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrCampaignExists) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrZeroPrice) ||
		errors.Is(err, ErrZeroDuration) ||
		errors.Is(err, ErrZeroVestingPeriod)
}

// IsState reports whether err means the operation is not legal in the
// campaign's current lifecycle state.
func IsState(err error) bool {
	return errors.Is(err, ErrCampaignNotFound) ||
		errors.Is(err, ErrCampaignEnded) ||
		errors.Is(err, ErrCampaignCompleted) ||
		errors.Is(err, ErrCampaignNotCompleted) ||
		errors.Is(err, ErrTerminatedOrAbandoned) ||
		errors.Is(err, ErrNotTerminatedOrAbandoned)
}

// IsEconomic reports whether err is a supply or pricing failure.
func IsEconomic(err error) bool {
	return errors.Is(err, ErrInsufficientSupply) ||
		errors.Is(err, ErrPriceBelowFloor)
}
