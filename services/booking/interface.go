package booking

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "homeserve/database/repository/booking"
	offeringRepo "homeserve/database/repository/offering"
	"homeserve/models"
	"homeserve/services/payment"
)

// Workflow orchestrates the booking lifecycle: slot reservation, ledger
// record, payment authorization, confirmation and cancellation. Creation and
// transition are separate operations; which one runs is decided by the
// route, never by sniffing which fields a request carries.
type Workflow interface {
	// CreateBooking reserves the slot, records a pending booking and opens a
	// payment authorization for it.
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.BookingReceipt, error)
	// ConfirmPayment completes the charge for a pending booking. On gateway
	// failure the booking is cancelled and its slot released before the
	// failure is surfaced.
	ConfirmPayment(ctx context.Context, userID, bookingID, paymentMethodID string) (*models.Booking, error)
	// CancelBooking cancels a pending or confirmed booking.
	CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	// CompleteBooking marks a confirmed booking as completed.
	CompleteBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	// GetBooking returns one of the user's bookings, enriched with offering
	// display fields.
	GetBooking(ctx context.Context, userID, bookingID string) (*models.BookingView, error)
	// ListUserBookings returns the user's bookings, enriched, newest first.
	ListUserBookings(ctx context.Context, userID string) ([]models.BookingView, error)
	// ReleaseStalePending cancels pending bookings older than the cutoff and
	// returns their slots to the open pool.
	ReleaseStalePending(ctx context.Context) (int, error)
}

// DefaultWorkflow implements Workflow.
type DefaultWorkflow struct {
	Offerings offeringRepo.OfferingRepository
	Ledger    bookingRepo.BookingRepository
	Gateway   payment.Gateway
	Logger    *zap.Logger

	// Currency for payment authorizations; defaults to "aud".
	Currency string

	// PendingTTL bounds how long a booking may sit in pending before the
	// reconciliation sweep reclaims its slot.
	PendingTTL int // minutes
}
