package models

import "time"

// TimeSlot is an offerable window produced by the availability engine.
// Date carries the calendar day at UTC midnight; hours are whole UTC hours
// with EndHour exclusive.
type TimeSlot struct {
	Date          time.Time `json:"-"`
	StartHour     int       `json:"start_hour"`
	EndHour       int       `json:"end_hour"`
	DurationHours int       `json:"duration_hours"`
	Available     bool      `json:"available"` // always true on emitted slots; reserved for partially-available aggregates
}

// StartAt returns the absolute start instant of the slot.
func (s TimeSlot) StartAt() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), s.StartHour, 0, 0, 0, time.UTC)
}

// EndAt returns the absolute end instant of the slot.
func (s TimeSlot) EndAt() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), s.EndHour, 0, 0, 0, time.UTC)
}

// ConflictKind tags the origin of a conflict interval.
type ConflictKind string

const (
	ConflictKindBooking        ConflictKind = "booking"
	ConflictKindUnavailability ConflictKind = "unavailability"
)

// ConflictInterval is a blocking time range derived from a booking or an
// unavailability. It is a computation artifact and is never persisted.
type ConflictInterval struct {
	Kind     ConflictKind
	Start    time.Time
	End      time.Time
	SourceID string
}

// Overlaps reports whether the half-open interval [start,end) intersects
// this conflict. Touching endpoints do not count as overlap.
func (c ConflictInterval) Overlaps(start, end time.Time) bool {
	return start.Before(c.End) && end.After(c.Start)
}

// AvailableSlotResponse is the serialized form of a TimeSlot.
type AvailableSlotResponse struct {
	Date          string `json:"date"` // "2006-01-02"
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	DurationHours int    `json:"duration_hours"`
	Available     bool   `json:"available"`
}

// AvailabilityResponse is the boundary payload for a slot query.
type AvailabilityResponse struct {
	WorkerID      string                  `json:"worker_id"`
	ServiceID     string                  `json:"service_id"`
	DurationHours int                     `json:"duration_hours"`
	From          string                  `json:"from"`
	To            string                  `json:"to"`
	Slots         []AvailableSlotResponse `json:"slots"`
}
