package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

//go:generate mockgen -source=billing.go -destination=billing_mock_test.go -package=services

// SubscriptionWriter upserts the user's subscription.
type SubscriptionWriter interface {
	Save(ctx context.Context, change models.SubscriptionChange) error
}

// RoleWriter upserts the user's role.
type RoleWriter interface {
	Save(ctx context.Context, userID string, tier models.Tier) error
}

// StripeSubscriptionFetcher loads a subscription from the Stripe API.
type StripeSubscriptionFetcher interface {
	Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
}

// CommitHook runs fn once the request transaction has committed.
type CommitHook func(ctx context.Context, fn func(context.Context))

// runNow is the CommitHook used when no transaction wraps the call.
func runNow(ctx context.Context, fn func(context.Context)) {
	fn(ctx)
}

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	// ErrProviderUnavailable is returned when the billing provider API could not be reached.
	ErrProviderUnavailable = errors.New("billing provider unavailable")
	// ErrIgnoredEvent is returned for events that do not change a subscription.
	ErrIgnoredEvent = errors.New("ignored webhook event")
)

const (
	stripeTolerance = 5 * time.Minute

	HeaderStripeSignature       = "Stripe-Signature"
	HeaderLemonSqueezySignature = "X-Signature"
)

// BillingService applies billing provider webhooks to subscriptions and roles.
type BillingService struct {
	subs         SubscriptionWriter
	roles        RoleWriter
	cache        RoleCache
	afterCommit  CommitHook
	stripeSecret string
	stripeSubs   StripeSubscriptionFetcher
	lemonSecret  string
	now          func() time.Time
}

// NewBillingService creates a new BillingService. cache and afterCommit may be nil.
func NewBillingService(
	subs SubscriptionWriter,
	roles RoleWriter,
	cache RoleCache,
	afterCommit CommitHook,
	stripeSecret, lemonSecret string,
) *BillingService {
	if afterCommit == nil {
		afterCommit = runNow
	}
	return &BillingService{
		subs:         subs,
		roles:        roles,
		cache:        cache,
		afterCommit:  afterCommit,
		stripeSecret: stripeSecret,
		lemonSecret:  lemonSecret,
		now:          time.Now,
	}
}

// WithClock replaces the time source. Used in tests.
func (svc *BillingService) WithClock(now func() time.Time) *BillingService {
	svc.now = now
	return svc
}

// WithStripeSubscriptions lets checkout events load the subscription they created.
// Without it checkout.session.completed is ignored and the customer.subscription.* events apply the change.
func (svc *BillingService) WithStripeSubscriptions(subs StripeSubscriptionFetcher) *BillingService {
	svc.stripeSubs = subs
	return svc
}

// Apply stores the change and the resulting role. The cached role is overwritten after commit.
func (svc *BillingService) Apply(ctx context.Context, change *models.SubscriptionChange) (models.Tier, error) {
	if err := svc.subs.Save(ctx, *change); err != nil {
		logger.Log.Errorw("failed to save subscription", "userID", change.UserID, "provider", change.Provider, "error", err)
		return "", fmt.Errorf("save subscription: %w", err)
	}

	tier := change.Tier()
	if err := svc.roles.Save(ctx, change.UserID, tier); err != nil {
		logger.Log.Errorw("failed to save role", "userID", change.UserID, "tier", tier, "error", err)
		return "", fmt.Errorf("save role: %w", err)
	}

	if svc.cache != nil {
		svc.afterCommit(ctx, func(ctx context.Context) {
			if err := svc.cache.Set(ctx, change.UserID, tier); err != nil {
				logger.Log.Warnw("failed to refresh cached role", "userID", change.UserID, "error", err)
			}
		})
	}

	logger.Log.Infow("subscription applied",
		"userID", change.UserID,
		"provider", change.Provider,
		"status", change.Status,
		"plan", change.PlanType,
		"tier", tier,
	)
	return tier, nil
}

// VerifyLemonSqueezySignature checks the hex HMAC-SHA256 of the body.
func (svc *BillingService) VerifyLemonSqueezySignature(payload []byte, header string) error {
	if svc.lemonSecret == "" {
		return fmt.Errorf("%w: lemonsqueezy webhook secret not configured", ErrInvalidSignature)
	}
	got, err := hex.DecodeString(strings.TrimSpace(header))
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(svc.lemonSecret))
	mac.Write(payload)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyStripeSignature checks the Stripe-Signature header and decodes the event.
func (svc *BillingService) VerifyStripeSignature(payload []byte, header string) (stripe.Event, error) {
	if svc.stripeSecret == "" {
		return stripe.Event{}, fmt.Errorf("%w: stripe webhook secret not configured", ErrInvalidSignature)
	}

	ev, err := webhook.ConstructEventWithOptions(payload, header, svc.stripeSecret, webhook.ConstructEventOptions{
		Tolerance:                stripeTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	switch {
	case errors.Is(err, webhook.ErrNotSigned), errors.Is(err, webhook.ErrInvalidHeader),
		errors.Is(err, webhook.ErrNoValidSignature), errors.Is(err, webhook.ErrTooOld):
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case err != nil:
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return ev, nil
}

// ParseStripe verifies and decodes a Stripe webhook. A completed checkout is resolved
// through the Stripe API so the stored status and period come from the subscription itself.
func (svc *BillingService) ParseStripe(ctx context.Context, payload []byte, signature string) (*models.SubscriptionChange, error) {
	ev, err := svc.VerifyStripeSignature(payload, signature)
	if err != nil {
		return nil, err
	}
	if ev.Data == nil {
		return nil, fmt.Errorf("%w: stripe %s has no data", ErrInvalidPayload, ev.ID)
	}

	var change *models.SubscriptionChange
	switch ev.Type {
	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if ev.Type == stripe.EventTypeCustomerSubscriptionDeleted && sub.Status == "" {
			sub.Status = stripe.SubscriptionStatusCanceled
		}
		change = stripeChange(&sub)
	case stripe.EventTypeCheckoutSessionCompleted:
		change, err = svc.stripeCheckout(ctx, ev)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: stripe %s", ErrIgnoredEvent, ev.Type)
	}

	if change.UserID == "" {
		return nil, fmt.Errorf("%w: stripe %s %s has no user_id", ErrIgnoredEvent, ev.Type, ev.ID)
	}
	return change, nil
}

func (svc *BillingService) stripeCheckout(ctx context.Context, ev stripe.Event) (*models.SubscriptionChange, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(ev.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if session.Subscription == nil || session.Subscription.ID == "" {
		return nil, fmt.Errorf("%w: stripe checkout %s has no subscription", ErrIgnoredEvent, session.ID)
	}
	if svc.stripeSubs == nil {
		return nil, fmt.Errorf("%w: stripe checkout %s needs STRIPE_SECRET_KEY", ErrIgnoredEvent, session.ID)
	}

	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	sub, err := svc.stripeSubs.Get(session.Subscription.ID, params)
	if err != nil {
		logger.Log.Errorw("failed to load stripe subscription", "subscription", session.Subscription.ID, "event", ev.ID, "error", err)
		return nil, fmt.Errorf("%w: load subscription %s: %v", ErrProviderUnavailable, session.Subscription.ID, err)
	}

	change := stripeChange(sub)
	if userID := session.Metadata["user_id"]; userID != "" {
		change.UserID = userID
	} else if change.UserID == "" {
		change.UserID = session.ClientReferenceID
	}
	if plan := session.Metadata["plan_type"]; plan != "" {
		change.PlanType = plan
	}
	return change, nil
}

func stripeChange(sub *stripe.Subscription) *models.SubscriptionChange {
	return &models.SubscriptionChange{
		Provider:         models.ProviderStripe,
		UserID:           sub.Metadata["user_id"],
		ExternalID:       sub.ID,
		Status:           string(sub.Status),
		PlanType:         sub.Metadata["plan_type"],
		CurrentPeriodEnd: stripePeriodEnd(sub),
		CanceledAt:       unixTime(sub.CanceledAt),
	}
}

// stripePeriodEnd returns the latest period end across the subscription items.
func stripePeriodEnd(sub *stripe.Subscription) *time.Time {
	var end int64
	if sub.Items != nil {
		for _, item := range sub.Items.Data {
			if item != nil && item.CurrentPeriodEnd > end {
				end = item.CurrentPeriodEnd
			}
		}
	}
	return unixTime(end)
}

type lemonSqueezyEvent struct {
	Meta struct {
		EventName  string            `json:"event_name"`
		CustomData map[string]string `json:"custom_data"`
	} `json:"meta"`
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Status      string     `json:"status"`
			VariantName string     `json:"variant_name"`
			RenewsAt    *time.Time `json:"renews_at"`
			EndsAt      *time.Time `json:"ends_at"`
			Cancelled   bool       `json:"cancelled"`
		} `json:"attributes"`
	} `json:"data"`
}

// ParseLemonSqueezy verifies and decodes a LemonSqueezy webhook.
func (svc *BillingService) ParseLemonSqueezy(_ context.Context, payload []byte, signature string) (*models.SubscriptionChange, error) {
	if err := svc.VerifyLemonSqueezySignature(payload, signature); err != nil {
		return nil, err
	}

	var ev lemonSqueezyEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch ev.Meta.EventName {
	case "subscription_created", "subscription_updated", "subscription_cancelled",
		"subscription_expired", "subscription_resumed":
	default:
		return nil, fmt.Errorf("%w: lemonsqueezy %s", ErrIgnoredEvent, ev.Meta.EventName)
	}

	attrs := ev.Data.Attributes
	change := &models.SubscriptionChange{
		Provider:   models.ProviderLemonSqueezy,
		UserID:     ev.Meta.CustomData["user_id"],
		ExternalID: ev.Data.ID,
		Status:     attrs.Status,
		PlanType:   ev.Meta.CustomData["plan_type"],
	}
	if change.PlanType == "" {
		change.PlanType = planFromVariant(attrs.VariantName)
	}

	change.CurrentPeriodEnd = attrs.RenewsAt
	if attrs.EndsAt != nil {
		change.CurrentPeriodEnd = attrs.EndsAt
	}
	if attrs.Cancelled || ev.Meta.EventName == "subscription_cancelled" {
		now := svc.now().UTC()
		change.CanceledAt = &now
	}

	if change.UserID == "" {
		return nil, fmt.Errorf("%w: lemonsqueezy %s %s has no user_id", ErrIgnoredEvent, ev.Meta.EventName, ev.Data.ID)
	}
	return change, nil
}

// planFromVariant maps a product variant name such as "Premium Monthly" to a plan.
func planFromVariant(name string) string {
	lower := strings.ToLower(name)
	for _, tier := range []models.Tier{models.TierPremium, models.TierStandard} {
		if strings.Contains(lower, string(tier)) {
			return string(tier)
		}
	}
	return lower
}

func unixTime(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
