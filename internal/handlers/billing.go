package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
	"github.com/mydocmaker/api/internal/services"
)

//go:generate mockgen -source=billing.go -destination=billing_mock_test.go -package=handlers

// WebhookProcessor defines the interface for billing webhooks
type WebhookProcessor interface {
	ParseStripe(ctx context.Context, payload []byte, signature string) (*models.SubscriptionChange, error)
	ParseLemonSqueezy(ctx context.Context, payload []byte, signature string) (*models.SubscriptionChange, error)
	Apply(ctx context.Context, change *models.SubscriptionChange) (models.Tier, error)
}

type webhookParser func(ctx context.Context, payload []byte, signature string) (*models.SubscriptionChange, error)

func newWebhookHandler(provider, signatureHeader string, parse webhookParser, svc WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		change, err := parse(r.Context(), payload, r.Header.Get(signatureHeader))
		switch {
		case errors.Is(err, services.ErrIgnoredEvent):
			logger.Log.Infow("billing webhook ignored", "provider", provider, "reason", err)
			writeJSON(w, http.StatusOK, models.WebhookResponse{Received: true})
			return
		case errors.Is(err, services.ErrInvalidSignature):
			logger.Log.Warnw("billing webhook rejected", "provider", provider, "error", err)
			writeError(w, http.StatusBadRequest, "invalid signature")
			return
		case errors.Is(err, services.ErrProviderUnavailable):
			// Non-2xx makes the provider retry the delivery.
			writeError(w, http.StatusBadGateway, msgInternal)
			return
		case err != nil:
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := svc.Apply(r.Context(), change); err != nil {
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, models.WebhookResponse{Received: true})
	}
}

// NewStripeWebhookHandler ingests Stripe subscription events
// @Summary Stripe webhook
// @Description Verifies the Stripe-Signature header and applies subscription changes to the caller's role
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} models.WebhookResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /billing-webhook/stripe [post]
func NewStripeWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return newWebhookHandler(models.ProviderStripe, services.HeaderStripeSignature, svc.ParseStripe, svc)
}

// NewLemonSqueezyWebhookHandler ingests LemonSqueezy subscription events
// @Summary LemonSqueezy webhook
// @Description Verifies the X-Signature header and applies subscription changes to the caller's role
// @Tags billing
// @Accept json
// @Produce json
// @Param X-Signature header string true "LemonSqueezy signature"
// @Success 200 {object} models.WebhookResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /billing-webhook/lemonsqueezy [post]
func NewLemonSqueezyWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return newWebhookHandler(models.ProviderLemonSqueezy, services.HeaderLemonSqueezySignature, svc.ParseLemonSqueezy, svc)
}

// RegisterBillingWebhookHandlers registers the webhook routes
func RegisterBillingWebhookHandlers(r chi.Router, stripe, lemonSqueezy http.HandlerFunc) {
	r.Post("/billing-webhook/stripe", stripe)
	r.Post("/billing-webhook/lemonsqueezy", lemonSqueezy)
}
