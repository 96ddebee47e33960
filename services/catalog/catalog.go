package catalog

import (
	"context"

	offeringRepo "homeserve/database/repository/offering"
	"homeserve/models"
)

// CatalogService exposes the browsable side of the platform: service
// search, package listings, grouped slot availability and restriction text.
type CatalogService interface {
	SearchServices(ctx context.Context, query, category string) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListPackages(ctx context.Context) ([]models.ServicePackage, error)
	GetPackage(ctx context.Context, id string) (*models.ServicePackage, error)
	// ListSlots returns an offering's open slots grouped by calendar date.
	ListSlots(ctx context.Context, ref models.OfferingRef) ([]models.SlotGroup, error)
	// GetRestrictions returns the restriction text for an offering.
	GetRestrictions(ctx context.Context, ref models.OfferingRef) (string, error)
	// CheckZone reports whether a coordinate falls inside a restricted hot
	// zone and which rules apply there.
	CheckZone(point models.LatLng) models.ZoneReport
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo offeringRepo.OfferingRepository
}

func (svc *DefaultCatalogService) SearchServices(ctx context.Context, query, category string) ([]models.Service, error) {
	return svc.Repo.SearchServices(ctx, query, category)
}

func (svc *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return svc.Repo.GetService(ctx, id)
}

func (svc *DefaultCatalogService) ListPackages(ctx context.Context) ([]models.ServicePackage, error) {
	return svc.Repo.ListPackages(ctx)
}

func (svc *DefaultCatalogService) GetPackage(ctx context.Context, id string) (*models.ServicePackage, error) {
	return svc.Repo.GetPackage(ctx, id)
}

// ListSlots returns the offering's open slots grouped by calendar date for
// client display.
func (svc *DefaultCatalogService) ListSlots(ctx context.Context, ref models.OfferingRef) ([]models.SlotGroup, error) {
	slots, err := svc.Repo.ListSlots(ctx, ref)
	if err != nil {
		return nil, err
	}
	return models.GroupSlotsByDate(slots), nil
}

// GetRestrictions returns the restriction text for an offering.
func (svc *DefaultCatalogService) GetRestrictions(ctx context.Context, ref models.OfferingRef) (string, error) {
	offering, err := svc.Repo.Get(ctx, ref)
	if err != nil {
		return "", err
	}
	return offering.Restrictions(), nil
}
