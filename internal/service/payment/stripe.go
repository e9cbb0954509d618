package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeIntentCreator implements IntentCreator against the Stripe API.
type StripeIntentCreator struct {
	api *client.API
}

// NewStripeIntentCreator creates a Stripe-backed intent creator with the
// given secret key. The key is process-wide configuration; an invalid key
// surfaces as a per-request processor failure.
func NewStripeIntentCreator(secretKey string) *StripeIntentCreator {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeIntentCreator{api: api}
}

// Ensure StripeIntentCreator implements IntentCreator.
var _ IntentCreator = (*StripeIntentCreator)(nil)

// CreateIntent implements IntentCreator.CreateIntent.
func (c *StripeIntentCreator) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
