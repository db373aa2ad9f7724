// File: database/repository/worker/interface.go
package workerRepo

import (
	"context"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WorkerRepository provides lookups over registered workers.
type WorkerRepository interface {
	GetByID(ctx context.Context, workerID string) (*models.Worker, error)
	ListActive(ctx context.Context) ([]models.Worker, error)
}

type mongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo constructs a new MongoDB WorkerRepository.
func NewMongoWorkerRepo() WorkerRepository {
	db := database.MongoClient.Database("fieldbook")
	return &mongoWorkerRepo{
		coll: db.Collection("workers"),
	}
}
