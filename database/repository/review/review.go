package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"shopsphere/database"
	"shopsphere/models"
	"shopsphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByShop(ctx context.Context, shopID string) ([]models.Review, error)
	Summary(ctx context.Context, shopID string) (*models.RatingSummary, error)
}

type MongoReviewRepo struct {
	coll *mongo.Collection
}

func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.DB().Collection("reviews")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		utils.GetLogger().Warn("failed to create review indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) ListByShop(ctx context.Context, shopID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"shopId": shopID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Summary computes the review count and mean rating for a shop.
func (r *MongoReviewRepo) Summary(ctx context.Context, shopID string) (*models.RatingSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"shopId": shopID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$shopId",
			"count":   bson.M{"$sum": 1},
			"average": bson.M{"$avg": "$rating"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}
	defer cursor.Close(ctx)

	summary := &models.RatingSummary{ShopID: shopID}
	if cursor.Next(ctx) {
		if err := cursor.Decode(summary); err != nil {
			return nil, fmt.Errorf("failed to decode rating summary: %w", err)
		}
	}
	return summary, cursor.Err()
}
