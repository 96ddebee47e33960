package bookingRepo

import (
	"context"
	"errors"
	"time"

	"homeserve/models"
)

// ErrNotFound is returned when a booking does not exist or is owned by
// another user.
var ErrNotFound = errors.New("booking not found")

// ErrInvalidTransition is returned when a status change violates the
// booking lifecycle policy.
var ErrInvalidTransition = errors.New("invalid booking status transition")

// BookingRepository is the ledger of booking records. Bookings are never
// deleted; every state change is a guarded transition.
type BookingRepository interface {
	// Create inserts a new booking with status pending/pending.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking scoped to its owning user.
	GetByID(ctx context.Context, id, userID string) (*models.Booking, error)
	// Transition moves a booking to a new status and payment status. The
	// lifecycle policy (models.AllowedFrom) is enforced atomically against
	// the stored status; violations return ErrInvalidTransition.
	Transition(ctx context.Context, id, userID string, status models.BookingStatus, payStatus models.PaymentStatus) (*models.Booking, error)
	// CancelIfPending cancels a booking only if it is still pending, in one
	// atomic update. It reports whether the cancel fired; a booking that has
	// already been confirmed (or otherwise left pending) is untouched.
	CancelIfPending(ctx context.Context, id, userID string) (bool, error)
	// SetPaymentIntent binds a payment authorization handle to a booking.
	SetPaymentIntent(ctx context.Context, id, intentID string) error
	// ListForUser returns the user's bookings, newest first.
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListStalePending returns pending/pending bookings created before the
	// cutoff, for the reconciliation sweep.
	ListStalePending(ctx context.Context, before time.Time) ([]models.Booking, error)
}
