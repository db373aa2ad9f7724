// File: database/repository/worker/crud.go
package workerRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fieldbook/models"
)

func (r *mongoWorkerRepo) GetByID(ctx context.Context, workerID string) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"id": workerID}).Decode(&worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *mongoWorkerRepo) ListActive(ctx context.Context) ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}
