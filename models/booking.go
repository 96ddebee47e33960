package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// PaymentStatus tracks how far the payment for a booking has progressed.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// AllowedFrom returns the statuses a booking may hold immediately before
// moving to the target status. Cancelled and completed are terminal.
func AllowedFrom(target BookingStatus) []BookingStatus {
	switch target {
	case BookingConfirmed:
		return []BookingStatus{BookingPending}
	case BookingCancelled:
		return []BookingStatus{BookingPending, BookingConfirmed}
	case BookingCompleted:
		return []BookingStatus{BookingConfirmed}
	default:
		return nil
	}
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, s := range AllowedFrom(to) {
		if s == from {
			return true
		}
	}
	return false
}

// Booking records a user's reservation of one offering slot. Bookings are
// never deleted; cancellation is a status transition.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"userId" json:"userId"`
	Offering        OfferingRef   `bson:"offering" json:"offering"`
	Slot            time.Time     `bson:"slot" json:"slot"`
	TotalPrice      float64       `bson:"totalPrice" json:"totalPrice"`
	Status          BookingStatus `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingView is a booking joined with offering display fields at read time.
type BookingView struct {
	Booking      `bson:",inline"`
	OfferingName string `json:"offeringName"`
	Restrictions string `json:"restrictions,omitempty"`
}

// BookingRequest is the input for creating a booking: a tagged offering
// reference plus the chosen timestamp.
type BookingRequest struct {
	Offering OfferingRef `json:"offering" binding:"required"`
	Slot     time.Time   `json:"slot" binding:"required"`
}

// BookingReceipt is returned after a booking is created: the pending record
// plus the payment authorization the client completes the charge with.
type BookingReceipt struct {
	Booking      Booking `json:"booking"`
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
}
