// File: database/repository/rule/queries.go
package ruleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fieldbook/models"
)

// ListValidInRange returns the worker's rules whose validity window
// intersects [from, to]. Weekday applicability is decided by the engine;
// this query only narrows by validity dates.
func (r *mongoRuleRepo) ListValidInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"worker_id":  workerID,
		"valid_from": bson.M{"$lte": to},
		"$or": []bson.M{
			{"valid_to": nil},
			{"valid_to": bson.M{"$exists": false}},
			{"valid_to": bson.M{"$gte": from}},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding availability rules: %w", err)
	}
	return rules, nil
}
