// File: services/booking/views.go
package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	offeringRepo "homeserve/database/repository/offering"
	"homeserve/models"
)

// GetBooking returns one of the user's bookings enriched with the referenced
// offering's display name and restriction text.
func (wf *DefaultWorkflow) GetBooking(ctx context.Context, userID, bookingID string) (*models.BookingView, error) {
	record, err := wf.Ledger.GetByID(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	view := wf.enrich(ctx, *record)
	return &view, nil
}

// ListUserBookings returns the user's bookings enriched with offering
// display fields, newest first.
func (wf *DefaultWorkflow) ListUserBookings(ctx context.Context, userID string) ([]models.BookingView, error) {
	records, err := wf.Ledger.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.BookingView, 0, len(records))
	for _, record := range records {
		views = append(views, wf.enrich(ctx, record))
	}
	return views, nil
}

// enrich joins offering display fields onto a booking at read time. A
// missing offering degrades to a bare view rather than failing the listing.
func (wf *DefaultWorkflow) enrich(ctx context.Context, record models.Booking) models.BookingView {
	view := models.BookingView{Booking: record}

	offering, err := wf.Offerings.Get(ctx, record.Offering)
	if err != nil {
		if !errors.Is(err, offeringRepo.ErrNotFound) {
			wf.Logger.Warn("failed to enrich booking",
				zap.String("booking", record.ID), zap.Error(err))
		}
		return view
	}
	view.OfferingName = offering.DisplayName()
	view.Restrictions = offering.Restrictions()
	return view
}
