package shopRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopsphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new shop document.
func (r *MongoShopRepo) Create(ctx context.Context, shop *models.Shop) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, shop); err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// GetByID retrieves a shop by its id.
func (r *MongoShopRepo) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shop); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch shop with id %s: %w", id, err)
	}
	return &shop, nil
}

func (r *MongoShopRepo) UpdateProfile(ctx context.Context, id string, upd models.ShopProfileUpdate, at time.Time) (*models.Shop, error) {
	set := bson.M{"updatedAt": at}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.PhoneNumber != nil {
		set["phoneNumber"] = *upd.PhoneNumber
	}

	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var shop models.Shop
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&shop); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update shop with id %s: %w", id, err)
	}
	return &shop, nil
}

// SetActive stamps the admin activation gate.
func (r *MongoShopRepo) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	return r.updateSet(ctx, id, bson.M{"isActive": active, "updatedAt": at})
}

func (r *MongoShopRepo) SetImage(ctx context.Context, id, imageID, imageURL string, at time.Time) error {
	return r.updateSet(ctx, id, bson.M{"imageId": imageID, "imageUrl": imageURL, "updatedAt": at})
}

func (r *MongoShopRepo) updateSet(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update shop with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
