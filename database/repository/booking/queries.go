// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fieldbook/models"
)

// ListOverlapping returns bookings for the worker intersecting [from, to)
// that could possibly block slots. The filter over-fetches on purpose:
// it keeps anything confirmed or pending, or paid or payment-pending, and
// leaves the precise confirmed-OR-paid blocking decision to the engine.
func (r *mongoBookingRepo) ListOverlapping(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"worker_id": workerID,
		"start_at":  bson.M{"$lt": to},
		"end_at":    bson.M{"$gt": from},
		"$or": []bson.M{
			{"status": bson.M{"$in": []models.BookingStatus{models.BookingStatusConfirmed, models.BookingStatusPending}}},
			{"payment_status": bson.M{"$in": []models.PaymentStatus{models.PaymentStatusPaid, models.PaymentStatusPending}}},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
