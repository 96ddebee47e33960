// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homeserve/models"
)

// Create inserts a new booking with status pending/pending.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.Status = models.BookingPending
	booking.PaymentStatus = models.PaymentPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking scoped to its owning user.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id, userID string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// Transition moves a booking to a new status and payment status. The filter
// pins the stored status to the set the lifecycle policy allows, so the
// guard and the write are one atomic document update.
func (r *MongoBookingRepo) Transition(ctx context.Context, id, userID string, status models.BookingStatus, payStatus models.PaymentStatus) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	allowed := models.AllowedFrom(status)
	if len(allowed) == 0 {
		return nil, ErrInvalidTransition
	}

	filter := bson.M{
		"id":     id,
		"userId": userID,
		"status": bson.M{"$in": allowed},
	}
	update := bson.M{"$set": bson.M{
		"status":        status,
		"paymentStatus": payStatus,
		"updatedAt":     time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		// Disambiguate: the booking may not exist at all, or its current
		// status may forbid the move.
		if _, getErr := r.GetByID(ctx, id, userID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrInvalidTransition
	}
	if err != nil {
		return nil, fmt.Errorf("failed to transition booking %s: %w", id, err)
	}
	return &booking, nil
}

// CancelIfPending cancels a booking only if it is still pending. The pending
// status sits in the update filter, so a booking that a concurrent confirm
// has already settled is never touched. Compensation paths rely on this: a
// losing duplicate submit must not cancel the winner's paid booking.
func (r *MongoBookingRepo) CancelIfPending(ctx context.Context, id, userID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"userId": userID,
		"status": models.BookingPending,
	}
	update := bson.M{"$set": bson.M{
		"status":    models.BookingCancelled,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending booking %s: %w", id, err)
	}
	return result.ModifiedCount == 1, nil
}

// SetPaymentIntent binds a payment authorization handle to a booking.
func (r *MongoBookingRepo) SetPaymentIntent(ctx context.Context, id, intentID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"paymentIntentId": intentID, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set payment intent on booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForUser returns the user's bookings, newest first.
func (r *MongoBookingRepo) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListStalePending returns pending/pending bookings created before the cutoff.
func (r *MongoBookingRepo) ListStalePending(ctx context.Context, before time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":        models.BookingPending,
		"paymentStatus": models.PaymentPending,
		"createdAt":     bson.M{"$lt": before},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode stale pending bookings: %w", err)
	}
	return bookings, nil
}
