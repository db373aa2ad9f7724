// File: database/repository/unavailability/crud.go
package unavailabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fieldbook/models"
)

func (r *mongoUnavailabilityRepo) Create(ctx context.Context, block models.Unavailability) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return "", err
	}
	return block.ID, nil
}

func (r *mongoUnavailabilityRepo) DeleteByID(ctx context.Context, workerID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": blockID, "worker_id": workerID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoUnavailabilityRepo) ListByWorker(ctx context.Context, workerID string) ([]models.Unavailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"worker_id": workerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.Unavailability
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
