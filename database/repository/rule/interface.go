// File: database/repository/rule/interface.go
package ruleRepo

import (
	"context"
	"time"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RuleRepository provides access to workers' recurring availability rules.
type RuleRepository interface {
	Create(ctx context.Context, rule models.AvailabilityRule) (string, error)
	DeleteByID(ctx context.Context, workerID, ruleID string) error
	ListByWorker(ctx context.Context, workerID string) ([]models.AvailabilityRule, error)
	ListValidInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.AvailabilityRule, error)
	EnsureIndexes() error
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a new MongoDB RuleRepository.
func NewMongoRuleRepo() RuleRepository {
	db := database.MongoClient.Database("fieldbook")
	return &mongoRuleRepo{
		coll: db.Collection("availability_rules"),
	}
}
