// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository provides lookups over the service catalogue.
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("fieldbook")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
