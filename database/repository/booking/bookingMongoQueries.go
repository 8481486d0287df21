package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"shopsphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByUser returns a user's bookings ordered by creation time, newest first.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ListByShop returns a shop's bookings, optionally filtered by status.
func (r *MongoBookingRepo) ListByShop(ctx context.Context, shopID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"shopId": shopID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// EarningsByShop aggregates completed bookings for a shop.
func (r *MongoBookingRepo) EarningsByShop(ctx context.Context, shopID string) (*models.ShopEarnings, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"shopId": shopID, "status": models.BookingCompleted}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$shopId",
			"total":     bson.M{"$sum": "$price"},
			"completed": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating earnings for shop %s: %w", shopID, err)
	}
	defer cursor.Close(ctx)

	earnings := &models.ShopEarnings{ShopID: shopID}
	if cursor.Next(ctx) {
		if err := cursor.Decode(earnings); err != nil {
			return nil, fmt.Errorf("error decoding earnings: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return earnings, nil
}
