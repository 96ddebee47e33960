// File: database/repository/offering/queries.go
package offeringRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homeserve/models"
)

const searchResultLimit = 20

// SearchServices filters services by a case-insensitive free-text query over
// name and description, optionally by category, cheapest first.
func (r *MongoOfferingRepo) SearchServices(ctx context.Context, query, category string) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if query != "" {
		regex := primitive.Regex{Pattern: query, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "price", Value: 1}}).
		SetLimit(searchResultLimit)

	cursor, err := r.serviceColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetService retrieves a single service by ID.
func (r *MongoOfferingRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// ListPackages retrieves all packages with their component services populated.
func (r *MongoOfferingRepo) ListPackages(ctx context.Context) ([]models.ServicePackage, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.packageColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.ServicePackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}

	for i := range packages {
		if err := r.populateItems(ctx, &packages[i]); err != nil {
			return nil, err
		}
	}
	return packages, nil
}

// GetPackage retrieves a single package with component services populated.
func (r *MongoOfferingRepo) GetPackage(ctx context.Context, id string) (*models.ServicePackage, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var pkg models.ServicePackage
	err := r.packageColl.FindOne(ctx, bson.M{"id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	if err := r.populateItems(ctx, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// populateItems resolves the component service references of a package.
func (r *MongoOfferingRepo) populateItems(ctx context.Context, pkg *models.ServicePackage) error {
	if len(pkg.Items) == 0 {
		return nil
	}

	ids := make([]string, len(pkg.Items))
	for i, item := range pkg.Items {
		ids[i] = item.ServiceID
	}

	cursor, err := r.serviceColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("failed to populate package %s: %w", pkg.ID, err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]models.Service)
	for cursor.Next(ctx) {
		var svc models.Service
		if err := cursor.Decode(&svc); err != nil {
			return fmt.Errorf("failed to decode component service: %w", err)
		}
		byID[svc.ID] = svc
	}

	for i := range pkg.Items {
		if svc, ok := byID[pkg.Items[i].ServiceID]; ok {
			svcCopy := svc
			pkg.Items[i].Service = &svcCopy
		}
	}
	return nil
}
