package bookingRepo

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

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &booking, nil
}

// Transition performs a compare-and-swap on the booking status.
func (r *MongoBookingRepo) Transition(ctx context.Context, id string, t models.BookingTransition) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := transitionFilter(id, t)
	update := transitionUpdate(t)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPreconditionFailed
		}
		return nil, fmt.Errorf("error updating booking %s: %w", id, err)
	}
	return &updated, nil
}

func transitionFilter(id string, t models.BookingTransition) bson.M {
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": t.From},
	}
	if t.RequireOTP != nil {
		filter["otpCode"] = *t.RequireOTP
	}
	return filter
}

func transitionUpdate(t models.BookingTransition) bson.M {
	set := bson.M{
		"status":    t.To,
		"updatedAt": t.At,
	}
	if field := t.To.TimestampField(); field != "" {
		set[field] = t.At
	}
	if t.OTPCode != nil {
		set["otpCode"] = *t.OTPCode
	}
	return bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
}
