package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/product"
	"github.com/stripe/stripe-go/v79/subscription"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

// Service owns the single billing side effect the enhancement workflow
// depends on: updating a user's plan and monthly prompt limit when a
// subscription is created. Without a Stripe key it runs in preview mode and
// applies the plan change immediately.
type Service struct {
	users         domain.UserRepository
	secretKey     string
	webhookSecret string
	logger        zerolog.Logger
}

// NewService configures the billing service. secretKey may be empty for
// preview mode.
func NewService(users domain.UserRepository, secretKey, webhookSecret string, logger zerolog.Logger) *Service {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &Service{
		users:         users,
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// SubscriptionResult is returned to the client so it can complete payment.
type SubscriptionResult struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	Success        bool   `json:"success,omitempty"`
	Message        string `json:"message,omitempty"`
}

// CreateSubscription creates (or resumes) a monthly subscription for the
// given plan and updates the user's quota limit on the ledger.
func (s *Service) CreateSubscription(ctx context.Context, userID string, plan domain.Plan) (*SubscriptionResult, error) {
	cfg, ok := PlanConfigs[plan]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlan, plan)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: user email required", domain.ErrValidation)
	}

	if s.secretKey == "" {
		if _, err := s.users.UpdatePlan(ctx, userID, plan, cfg.PromptsLimit); err != nil {
			return nil, err
		}
		now := time.Now().UnixMilli()
		return &SubscriptionResult{
			SubscriptionID: fmt.Sprintf("preview_subscription_%d", now),
			ClientSecret:   fmt.Sprintf("preview_client_secret_%d", now),
			Success:        true,
			Message:        "Preview mode - subscription would be created with real Stripe keys",
		}, nil
	}

	if user.StripeSubscriptionID != "" {
		params := &stripe.SubscriptionParams{}
		params.Context = ctx
		params.AddExpand("latest_invoice.payment_intent")
		existing, err := subscription.Get(user.StripeSubscriptionID, params)
		if err != nil {
			return nil, fmt.Errorf("retrieve subscription: %w", err)
		}
		return &SubscriptionResult{
			SubscriptionID: existing.ID,
			ClientSecret:   clientSecretOf(existing),
		}, nil
	}

	customerID := user.StripeCustomerID
	if customerID == "" {
		name := user.FirstName + " " + user.LastName
		if name == " " {
			name = user.Email
		}
		custParams := &stripe.CustomerParams{
			Email: stripe.String(user.Email),
			Name:  stripe.String(name),
		}
		custParams.Context = ctx
		cust, err := customer.New(custParams)
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
		customerID = cust.ID
	}

	prodParams := &stripe.ProductParams{
		Name:        stripe.String(PlanDisplayName(plan)),
		Description: stripe.String(fmt.Sprintf("%d prompts per month", cfg.PromptsLimit)),
	}
	prodParams.Context = ctx
	prod, err := product.New(prodParams)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				PriceData: &stripe.SubscriptionItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					Product:    stripe.String(prod.ID),
					UnitAmount: stripe.Int64(cfg.PriceCents),
					Recurring: &stripe.SubscriptionItemPriceDataRecurringParams{
						Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
					},
				},
			},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.Context = ctx
	subParams.AddExpand("latest_invoice.payment_intent")
	sub, err := subscription.New(subParams)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	if err := s.users.UpdateStripeInfo(ctx, userID, customerID, sub.ID); err != nil {
		return nil, err
	}
	if _, err := s.users.UpdatePlan(ctx, userID, plan, cfg.PromptsLimit); err != nil {
		return nil, err
	}

	return &SubscriptionResult{
		SubscriptionID: sub.ID,
		ClientSecret:   clientSecretOf(sub),
	}, nil
}

// HandleWebhook verifies the event signature and acknowledges payment
// events. Resetting prompts_used on renewal is intentionally not performed:
// the product behavior is unconfirmed, so the handler only records the event.
func (s *Service) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return fmt.Errorf("%w: webhook signature: %v", domain.ErrValidation, err)
	}

	switch event.Type {
	case "invoice.payment_succeeded":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return fmt.Errorf("%w: invoice payload: %v", domain.ErrValidation, err)
		}
		subscriptionID := ""
		if invoice.Subscription != nil {
			subscriptionID = invoice.Subscription.ID
		}
		s.logger.Info().
			Str("subscription_id", subscriptionID).
			Msg("invoice payment succeeded")
	default:
		s.logger.Debug().Str("type", string(event.Type)).Msg("ignoring stripe event")
	}
	return nil
}

// Configured reports whether real Stripe credentials are present.
func (s *Service) Configured() bool {
	return s.secretKey != ""
}

func clientSecretOf(sub *stripe.Subscription) string {
	if sub == nil || sub.LatestInvoice == nil || sub.LatestInvoice.PaymentIntent == nil {
		return ""
	}
	return sub.LatestInvoice.PaymentIntent.ClientSecret
}
