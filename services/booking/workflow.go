// File: services/booking/workflow.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "homeserve/database/repository/booking"
	"homeserve/models"
	"homeserve/services/payment"
)

// CreateBooking runs the forward path of the booking state machine:
// reserve slot -> create ledger record -> open payment authorization.
// Steps already committed when a later step fails are compensated with their
// inverse; there is no storage-level transaction spanning all three.
func (wf *DefaultWorkflow) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.BookingReceipt, error) {
	if !req.Slot.After(time.Now()) {
		return nil, newValidationError("please select a future date and time")
	}

	offering, err := wf.Offerings.Get(ctx, req.Offering)
	if err != nil {
		return nil, err
	}
	totalPrice := offering.FinalPrice()

	if err := wf.Offerings.ReserveSlot(ctx, req.Offering, req.Slot); err != nil {
		// Slot race lost or timestamp never existed; no booking row yet.
		return nil, err
	}

	record := &models.Booking{
		UserID:     userID,
		Offering:   req.Offering,
		Slot:       req.Slot.UTC(),
		TotalPrice: totalPrice,
	}
	if err := wf.Ledger.Create(ctx, record); err != nil {
		wf.compensateSlot(req.Offering, req.Slot)
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	auth, err := wf.Gateway.CreateAuthorization(ctx, totalPrice, wf.currency())
	if err != nil {
		wf.rollback(record, "authorization failed")
		return nil, err
	}

	record.PaymentIntentID = auth.IntentID
	if err := wf.Ledger.SetPaymentIntent(ctx, record.ID, auth.IntentID); err != nil {
		wf.Logger.Warn("failed to attach payment intent to booking",
			zap.String("booking", record.ID), zap.Error(err))
	}

	wf.Logger.Info("Booking created",
		zap.String("booking", record.ID),
		zap.String("user", userID),
		zap.String("offering", req.Offering.ID),
		zap.Float64("total", totalPrice))

	return &models.BookingReceipt{
		Booking:      *record,
		IntentID:     auth.IntentID,
		ClientSecret: auth.ClientSecret,
	}, nil
}

// ConfirmPayment completes the charge for a pending booking and reconciles
// the ledger with the outcome.
func (wf *DefaultWorkflow) ConfirmPayment(ctx context.Context, userID, bookingID, paymentMethodID string) (*models.Booking, error) {
	record, err := wf.Ledger.GetByID(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.BookingPending {
		return nil, bookingRepo.ErrInvalidTransition
	}

	if err := wf.Gateway.Confirm(ctx, record.PaymentIntentID, paymentMethodID); err != nil {
		// Compensation always precedes surfacing the gateway failure:
		// a kept reservation would strand inventory, a kept pending row
		// would be a ghost record.
		wf.rollback(record, "charge failed")
		var gwErr *payment.GatewayError
		if errors.As(err, &gwErr) {
			return nil, gwErr
		}
		return nil, err
	}

	confirmed, err := wf.Ledger.Transition(ctx, bookingID, userID, models.BookingConfirmed, models.PaymentPaid)
	if err != nil {
		return nil, fmt.Errorf("payment settled but booking %s could not be confirmed: %w", bookingID, err)
	}

	wf.Logger.Info("Booking confirmed", zap.String("booking", bookingID), zap.String("user", userID))
	return confirmed, nil
}

// CancelBooking cancels a pending or confirmed booking. A pending booking is
// an abandoned checkout: its slot goes back to the open pool and no payment
// was taken. A confirmed booking is refunded, and its slot stays out of the
// pool.
func (wf *DefaultWorkflow) CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	record, err := wf.Ledger.GetByID(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	switch record.Status {
	case models.BookingPending:
		// Conditional cancel: a confirm settling between the read above and
		// this write must win, keeping the slot reserved.
		ok, err := wf.Ledger.CancelIfPending(ctx, bookingID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, bookingRepo.ErrInvalidTransition
		}
		wf.compensateSlot(record.Offering, record.Slot)
		wf.Logger.Info("Pending booking cancelled", zap.String("booking", bookingID))
		return wf.Ledger.GetByID(ctx, bookingID, userID)
	case models.BookingConfirmed:
		cancelled, err := wf.Ledger.Transition(ctx, bookingID, userID, models.BookingCancelled, models.PaymentRefunded)
		if err != nil {
			return nil, err
		}
		wf.Logger.Info("Confirmed booking cancelled and refunded", zap.String("booking", bookingID))
		return cancelled, nil
	default:
		return nil, bookingRepo.ErrInvalidTransition
	}
}

// CompleteBooking marks a confirmed booking as completed.
func (wf *DefaultWorkflow) CompleteBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	completed, err := wf.Ledger.Transition(ctx, bookingID, userID, models.BookingCompleted, models.PaymentPaid)
	if err != nil {
		return nil, err
	}
	wf.Logger.Info("Booking completed", zap.String("booking", bookingID))
	return completed, nil
}

// rollback cancels a still-pending booking and returns its slot to the open
// pool. Used on every failure after the reservation has been committed. The
// cancel is conditional on the stored status: a duplicate submit that loses
// the race to a successful confirm must leave the settled booking and its
// reservation alone, so the slot is released only when the cancel fired.
func (wf *DefaultWorkflow) rollback(record *models.Booking, reason string) {
	// The request context may already be dead; compensation must still run.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cancelled, err := wf.Ledger.CancelIfPending(ctx, record.ID, record.UserID)
	if err != nil {
		wf.Logger.Error("rollback: failed to cancel booking",
			zap.String("booking", record.ID), zap.String("reason", reason), zap.Error(err))
		return
	}
	if !cancelled {
		wf.Logger.Warn("rollback: booking no longer pending, keeping reservation",
			zap.String("booking", record.ID), zap.String("reason", reason))
		return
	}
	if err := wf.Offerings.ReleaseSlot(ctx, record.Offering, record.Slot); err != nil {
		wf.Logger.Error("rollback: failed to release slot",
			zap.String("booking", record.ID), zap.Time("slot", record.Slot), zap.Error(err))
	}
}

// compensateSlot releases a reserved slot when no booking record remains to
// roll back.
func (wf *DefaultWorkflow) compensateSlot(ref models.OfferingRef, slot time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := wf.Offerings.ReleaseSlot(ctx, ref, slot); err != nil {
		wf.Logger.Error("failed to release slot during compensation",
			zap.String("offering", ref.ID), zap.Time("slot", slot), zap.Error(err))
	}
}

func (wf *DefaultWorkflow) currency() string {
	if wf.Currency != "" {
		return wf.Currency
	}
	return "aud"
}
