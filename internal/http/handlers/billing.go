package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

const maxWebhookBody = 1 << 20

type createSubscriptionRequest struct {
	Plan string `json:"plan"`
}

// CreateSubscription subscribes the user to a paid tier and raises their
// monthly prompt limit.
func (a *App) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req createSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	result, err := a.Billing.CreateSubscription(r.Context(), userID, domain.Plan(req.Plan))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlan), errors.Is(err, domain.ErrValidation):
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "not_found", "user not found")
		default:
			a.Logger.Error().Err(err).Msg("create subscription failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to create subscription")
		}
		return
	}
	a.json(w, http.StatusOK, result)
}

// StripeWebhook verifies and processes Stripe events. The raw body must be
// read before any decoding so signature verification sees the exact bytes.
func (a *App) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unreadable payload")
		return
	}

	if err := a.Billing.HandleWebhook(payload, r.Header.Get("Stripe-Signature")); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.error(w, http.StatusBadRequest, "bad_request", "webhook verification failed")
			return
		}
		a.Logger.Error().Err(err).Msg("webhook processing failed")
		a.error(w, http.StatusInternalServerError, "internal", "webhook processing failed")
		return
	}
	a.json(w, http.StatusOK, map[string]bool{"received": true})
}
