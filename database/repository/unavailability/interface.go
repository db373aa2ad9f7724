// File: database/repository/unavailability/interface.go
package unavailabilityRepo

import (
	"context"
	"time"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UnavailabilityRepository provides access to workers' ad-hoc blocked periods.
type UnavailabilityRepository interface {
	Create(ctx context.Context, block models.Unavailability) (string, error)
	DeleteByID(ctx context.Context, workerID, blockID string) error
	ListByWorker(ctx context.Context, workerID string) ([]models.Unavailability, error)
	ListOverlapping(ctx context.Context, workerID string, from, to time.Time) ([]models.Unavailability, error)
	EnsureIndexes() error
}

type mongoUnavailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoUnavailabilityRepo constructs a new MongoDB UnavailabilityRepository.
func NewMongoUnavailabilityRepo() UnavailabilityRepository {
	db := database.MongoClient.Database("fieldbook")
	return &mongoUnavailabilityRepo{
		coll: db.Collection("unavailabilities"),
	}
}
