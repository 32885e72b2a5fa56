package models

import (
	"time"

	"github.com/google/uuid"
)

// Billing providers
const (
	ProviderStripe       = "stripe"
	ProviderLemonSqueezy = "lemonsqueezy"
)

// SubscriptionDB represents a subscriptions row, one per user.
type SubscriptionDB struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	UserID           string     `json:"user_id" db:"user_id"`
	Provider         string     `json:"provider" db:"provider"`       // stripe or lemonsqueezy
	ExternalID       string     `json:"external_id" db:"external_id"` // Provider subscription id
	Status           string     `json:"status" db:"status"`
	PlanType         string     `json:"plan_type" db:"plan_type"`
	CurrentPeriodEnd *time.Time `json:"current_period_end" db:"current_period_end"`
	CanceledAt       *time.Time `json:"canceled_at" db:"canceled_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// SubscriptionChange is a provider-neutral view of a billing webhook event.
type SubscriptionChange struct {
	UserID           string
	Provider         string
	ExternalID       string
	Status           string
	PlanType         string
	CurrentPeriodEnd *time.Time
	CanceledAt       *time.Time
}

// Entitled reports whether the subscription status still grants its plan tier.
func (c SubscriptionChange) Entitled() bool {
	switch c.Status {
	case "active", "trialing", "on_trial", "past_due":
		return true
	}
	return false
}

// Tier returns the role the change grants.
func (c SubscriptionChange) Tier() Tier {
	if !c.Entitled() {
		return TierFree
	}
	t, ok := ParseTier(c.PlanType)
	if !ok || t == TierFree {
		return TierStandard
	}
	return t
}

// WebhookResponse acknowledges a billing webhook
// swagger:model WebhookResponse
type WebhookResponse struct {
	// example: true
	Received bool `json:"received"`
}
