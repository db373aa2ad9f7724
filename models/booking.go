package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// PaymentStatus is the payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is the read projection of a booking used for availability checks.
type Booking struct {
	ID            string        `bson:"id" json:"id"`                         // Unique booking identifier
	WorkerID      string        `bson:"worker_id" json:"worker_id"`           // Worker who was booked
	ClientID      string        `bson:"client_id" json:"client_id"`           // Client who made the booking
	ServiceID     string        `bson:"service_id" json:"service_id"`         // Booked service
	StartAt       time.Time     `bson:"start_at" json:"start_at"`             // Appointment start instant (UTC)
	EndAt         time.Time     `bson:"end_at" json:"end_at"`                 // Appointment end instant (UTC)
	Status        BookingStatus `bson:"status" json:"status"`                 // Lifecycle state
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"` // Payment state
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// Blocks reports whether this booking removes candidate slots. A booking
// blocks when it is confirmed or already paid, inclusive OR: a paid but
// not-yet-confirmed booking still holds its time.
func (b Booking) Blocks() bool {
	return b.Status == BookingStatusConfirmed || b.PaymentStatus == PaymentStatusPaid
}
