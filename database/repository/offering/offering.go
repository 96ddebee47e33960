package offeringRepo

import (
	"context"
	"errors"
	"time"

	"homeserve/models"
)

// ErrNotFound is returned when an offering does not exist.
var ErrNotFound = errors.New("offering not found")

// ErrSlotNotAvailable is returned when a reservation loses the race for a
// timestamp, or the timestamp was never in the offering's open set. Callers
// cannot distinguish the two cases.
var ErrSlotNotAvailable = errors.New("slot not available")

// OfferingRepository provides catalog reads and the open-slot set operations
// for services and packages.
type OfferingRepository interface {
	// Get resolves a tagged offering reference to its current document.
	Get(ctx context.Context, ref models.OfferingRef) (models.Offering, error)
	// SearchServices filters services by free-text query and category,
	// cheapest first, capped at 20 results.
	SearchServices(ctx context.Context, query, category string) ([]models.Service, error)
	// GetService retrieves a single service by ID.
	GetService(ctx context.Context, id string) (*models.Service, error)
	// ListPackages retrieves all packages with component services populated.
	ListPackages(ctx context.Context) ([]models.ServicePackage, error)
	// GetPackage retrieves a single package with component services populated.
	GetPackage(ctx context.Context, id string) (*models.ServicePackage, error)

	// ListSlots returns the offering's open timestamps in ascending order.
	ListSlots(ctx context.Context, ref models.OfferingRef) ([]time.Time, error)
	// ReserveSlot atomically removes the timestamp from the open-slot set if
	// and only if it is present. Exactly one concurrent caller succeeds; the
	// rest receive ErrSlotNotAvailable.
	ReserveSlot(ctx context.Context, ref models.OfferingRef, slot time.Time) error
	// ReleaseSlot re-adds a timestamp to the open-slot set. Idempotent.
	ReleaseSlot(ctx context.Context, ref models.OfferingRef, slot time.Time) error
}
