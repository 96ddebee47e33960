// File: services/payment/stripe.go
package payment

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"homeserve/models"
)

// StripeGateway implements Gateway over Stripe payment intents.
type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway creates a Gateway backed by Stripe. The package-level
// stripe.Key must be set before use (done in main from config).
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

// toMinorUnits converts a decimal amount to the integer minor units Stripe
// expects (cents).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateAuthorization opens a payment intent for the amount.
func (g *StripeGateway) CreateAuthorization(ctx context.Context, amount float64, currency string) (*models.PaymentAuthorization, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, g.wrap(err, "failed to create payment authorization")
	}

	g.logger.Info("Payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("amount", pi.Amount),
		zap.String("currency", string(pi.Currency)))

	return &models.PaymentAuthorization{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// Confirm completes the charge behind a payment intent.
func (g *StripeGateway) Confirm(ctx context.Context, intentID, paymentMethodID string) error {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
	}
	params.Context = ctx

	pi, err := paymentintent.Confirm(intentID, params)
	if err != nil {
		return g.wrap(err, "payment was not accepted")
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		g.logger.Warn("Payment intent not settled",
			zap.String("intent", intentID),
			zap.String("status", string(pi.Status)))
		return &GatewayError{Reason: "payment could not be completed"}
	}

	g.logger.Info("Payment confirmed", zap.String("intent", intentID))
	return nil
}

// wrap converts a Stripe error into a GatewayError, keeping the processor's
// user-facing message when it provides one.
func (g *StripeGateway) wrap(err error, fallback string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		g.logger.Warn("Stripe call failed",
			zap.String("code", string(stripeErr.Code)),
			zap.String("type", string(stripeErr.Type)))
		if stripeErr.Msg != "" {
			return &GatewayError{Reason: stripeErr.Msg}
		}
	} else {
		g.logger.Error("Stripe call failed", zap.Error(err))
	}
	return &GatewayError{Reason: fallback}
}
