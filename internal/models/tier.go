package models

import "strings"

// Tier is a user's subscription level.
type Tier string

// Supported tiers
const (
	TierFree     Tier = "free"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// ParseTier converts a stored role into a Tier. Unknown values are reported as not ok.
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierFree:
		return TierFree, true
	case TierStandard:
		return TierStandard, true
	case TierPremium:
		return TierPremium, true
	}
	return TierFree, false
}

// IsPaid reports whether the tier comes from an active subscription.
func (t Tier) IsPaid() bool {
	return t == TierStandard || t == TierPremium
}
