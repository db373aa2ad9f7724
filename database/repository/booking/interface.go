// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the read-side projection of bookings used by the
// availability boundary. Booking creation and payment live elsewhere.
type BookingRepository interface {
	ListOverlapping(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("fieldbook")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
