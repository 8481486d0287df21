package shopRepo

import (
	"context"
	"fmt"
	"time"

	"shopsphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoShopRepo) ListVisible(ctx context.Context) ([]models.Shop, error) {
	return r.find(ctx, VisibleFilter())
}

func (r *MongoShopRepo) ListAll(ctx context.Context) ([]models.Shop, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoShopRepo) find(ctx context.Context, filter bson.M) ([]models.Shop, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer cursor.Close(ctx)

	shops := []models.Shop{}
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf("failed to decode shops: %w", err)
	}
	return shops, nil
}

type shopChangeEvent struct {
	FullDocument *models.Shop `bson:"fullDocument"`
}

// Watch opens a change stream on a single shop document.
func (r *MongoShopRepo) Watch(ctx context.Context, id string) (<-chan models.Shop, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.M{"$in": []string{"insert", "update", "replace"}}},
			{Key: "fullDocument.id", Value: id},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to watch shop %s: %w", id, err)
	}

	out := make(chan models.Shop)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var ev shopChangeEvent
			if err := stream.Decode(&ev); err != nil || ev.FullDocument == nil {
				continue
			}
			select {
			case out <- *ev.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
