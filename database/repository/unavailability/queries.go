// File: database/repository/unavailability/queries.go
package unavailabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fieldbook/models"
)

// ListOverlapping returns the worker's blocks intersecting [from, to).
// The engine treats any returned block as unconditionally blocking, so
// over-fetching here is harmless.
func (r *mongoUnavailabilityRepo) ListOverlapping(ctx context.Context, workerID string, from, to time.Time) ([]models.Unavailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"worker_id": workerID,
		"start_at":  bson.M{"$lt": to},
		"end_at":    bson.M{"$gt": from},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailabilities: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.Unavailability
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding unavailabilities: %w", err)
	}
	return blocks, nil
}
