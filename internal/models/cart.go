package models

// ApplyTier is one of the three paid service levels a job seeker picks when
// applying to a posting.
type ApplyTier string

const (
	TierQuick  ApplyTier = "quick"
	TierSmart  ApplyTier = "smart"
	TierManual ApplyTier = "manual"
)

// Fixed per-tier prices in whole dollars.
const (
	PriceQuick  = 5
	PriceSmart  = 10
	PriceManual = 15
)

// CurrencyUSD is the only currency the payment backend charges in.
const CurrencyUSD = "usd"

func (t ApplyTier) Valid() bool {
	switch t {
	case TierQuick, TierSmart, TierManual:
		return true
	}
	return false
}

// Price returns the fixed charge for the tier. Unknown tiers price as manual,
// matching how the upstream checkout treats anything that is not AI or Smart.
func (t ApplyTier) Price() int {
	switch t {
	case TierQuick:
		return PriceQuick
	case TierSmart:
		return PriceSmart
	default:
		return PriceManual
	}
}

// Wire returns the tier label the payment backend expects.
func (t ApplyTier) Wire() string {
	switch t {
	case TierQuick:
		return "AI"
	case TierSmart:
		return "Smart"
	default:
		return "Manual"
	}
}

// CartItem ties a job to the tier it will be applied with and to the user the
// entry belongs to. OwnerID partitions the shared cart blob between accounts
// using the same browser profile.
type CartItem struct {
	Job     Job       `json:"job"`
	Tier    ApplyTier `json:"applyType"`
	OwnerID int64     `json:"owner_id"`
}
