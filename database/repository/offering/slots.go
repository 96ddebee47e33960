// File: database/repository/offering/slots.go
package offeringRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homeserve/models"
)

// ListSlots returns the offering's open timestamps in ascending order.
func (r *MongoOfferingRepo) ListSlots(ctx context.Context, ref models.OfferingRef) ([]time.Time, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"openSlots": 1})
	var doc struct {
		OpenSlots []time.Time `bson:"openSlots"`
	}
	err := r.coll(ref.Kind).FindOne(ctx, bson.M{"id": ref.ID}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for %s %s: %w", ref.Kind, ref.ID, err)
	}

	sort.Slice(doc.OpenSlots, func(i, j int) bool { return doc.OpenSlots[i].Before(doc.OpenSlots[j]) })
	return doc.OpenSlots, nil
}

// ReserveSlot removes the timestamp from the open-slot set if and only if it
// is currently present. The filter and $pull run as one document update, so
// concurrent reservations of the same timestamp are linearized by the
// storage engine: exactly one caller observes ModifiedCount == 1.
func (r *MongoOfferingRepo) ReserveSlot(ctx context.Context, ref models.OfferingRef, slot time.Time) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": ref.ID, "openSlots": slot.UTC()}
	update := bson.M{"$pull": bson.M{"openSlots": slot.UTC()}}

	res, err := r.coll(ref.Kind).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot for %s %s: %w", ref.Kind, ref.ID, err)
	}
	if res.ModifiedCount == 0 {
		// Absent offering, unknown timestamp and lost race all look the same.
		return ErrSlotNotAvailable
	}
	return nil
}

// ReleaseSlot re-adds a timestamp to the open-slot set. $addToSet makes the
// re-add of an already-present timestamp a no-op.
func (r *MongoOfferingRepo) ReleaseSlot(ctx context.Context, ref models.OfferingRef, slot time.Time) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": ref.ID}
	update := bson.M{"$addToSet": bson.M{"openSlots": slot.UTC()}}

	res, err := r.coll(ref.Kind).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release slot for %s %s: %w", ref.Kind, ref.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
