// File: database/repository/offering/offering_mongo.go
package offeringRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"homeserve/models"
)

// MongoOfferingRepo implements OfferingRepository over the services and
// packages collections.
type MongoOfferingRepo struct {
	serviceColl *mongo.Collection
	packageColl *mongo.Collection
}

// NewMongoOfferingRepo creates a new OfferingRepository backed by MongoDB.
func NewMongoOfferingRepo(db *mongo.Database) OfferingRepository {
	repo := &MongoOfferingRepo{
		serviceColl: db.Collection("services"),
		packageColl: db.Collection("packages"),
	}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create offering indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// coll selects the backing collection for a tagged offering reference.
func (r *MongoOfferingRepo) coll(kind models.OfferingKind) *mongo.Collection {
	if kind == models.OfferingPackage {
		return r.packageColl
	}
	return r.serviceColl
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoOfferingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	serviceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}
	if _, err := r.serviceColl.Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	packageIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.packageColl.Indexes().CreateMany(ctx, packageIndexes); err != nil {
		return fmt.Errorf("failed to create package indexes: %w", err)
	}
	return nil
}

// Get resolves a tagged offering reference to its current document.
func (r *MongoOfferingRepo) Get(ctx context.Context, ref models.OfferingRef) (models.Offering, error) {
	switch ref.Kind {
	case models.OfferingPackage:
		pkg, err := r.GetPackage(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		return *pkg, nil
	default:
		svc, err := r.GetService(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		return *svc, nil
	}
}
