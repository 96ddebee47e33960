package payment

import (
	"context"
	"fmt"

	"homeserve/models"
)

// GatewayError is a failure reported by the payment processor. Reason is a
// human-readable message safe to surface to the client; raw processor
// errors never propagate past the adapter.
type GatewayError struct {
	Reason string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s", e.Reason)
}

// Gateway abstracts the card-payment processor. It is an untrusted network
// boundary: every failure comes back as a *GatewayError.
type Gateway interface {
	// CreateAuthorization opens a pending charge for the amount and returns
	// the handle the client (or Confirm) completes it with.
	CreateAuthorization(ctx context.Context, amount float64, currency string) (*models.PaymentAuthorization, error)
	// Confirm completes the charge behind the handle using a tokenized
	// payment method. A declined or failed charge returns *GatewayError.
	Confirm(ctx context.Context, intentID, paymentMethodID string) error
}
