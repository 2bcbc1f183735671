package service

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// IntentCreator creates a client-confirmable payment intent and returns
// its client secret. Wrapped in an interface so handlers are testable
// without the gateway.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error)
}

// StripeService is the Stripe-backed IntentCreator. Intents are created
// in fixed currency USD with card as the only payment method.
type StripeService struct{}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{}
}

func (s *StripeService) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
