// Package payment translates a requested price into a processor-side
// payment intent and hands the resulting client secret back to the
// caller. The processor owns everything past intent creation; nothing is
// stored locally.
package payment

import "context"

// IntentCreator defines the payment-intent gateway. Implementations talk
// to the external processor; tests substitute a fake.
type IntentCreator interface {
	// CreateIntent creates a card-payable intent for the given amount in
	// minor US-dollar units and returns the processor's client-side
	// secret. Processor failures (network, bad key, rejection) are
	// returned as-is and surface on the generic request-failure path.
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}
