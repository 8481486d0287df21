package shopRepo

import (
	"context"
	"fmt"
	"time"

	"shopsphere/database"
	"shopsphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	coll *mongo.Collection
}

// NewMongoShopRepo creates a new instance of ShopRepository using MongoDB.
func NewMongoShopRepo() ShopRepository {
	repo := &MongoShopRepo{coll: database.DB().Collection("shops")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create shop indexes", zap.Error(err))
	}
	return repo
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// VisibleFilter matches shops consumers may see. A missing isActive counts as visible.
func VisibleFilter() bson.M {
	return bson.M{"isActive": bson.M{"$ne": false}}
}

func (r *MongoShopRepo) ensureIndexes() error {
	ctx, cancel := withTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
