package models

import "time"

// AvailabilityRule represents a recurring weekly availability window for one worker.
// Hours are whole UTC hours; EndHour is exclusive and must exceed StartHour.
type AvailabilityRule struct {
	ID        string       `bson:"id" json:"id"`                               // Unique rule identifier
	WorkerID  string       `bson:"worker_id" json:"worker_id"`                 // Owning worker
	Weekday   time.Weekday `bson:"weekday" json:"weekday"`                     // 0=Sunday ... 6=Saturday
	StartHour int          `bson:"start_hour" json:"start_hour"`               // 0-23
	EndHour   int          `bson:"end_hour" json:"end_hour"`                   // 1-24, exclusive
	ValidFrom time.Time    `bson:"valid_from" json:"valid_from"`               // First date the rule applies (UTC midnight)
	ValidTo   *time.Time   `bson:"valid_to,omitempty" json:"valid_to"`         // Last applicable date; nil = open-ended
	CreatedAt time.Time    `bson:"created_at,omitempty" json:"created_at"`
}

// Valid reports whether the rule is structurally sound. Rules failing this
// check are skipped during expansion rather than failing the computation.
func (r AvailabilityRule) Valid() bool {
	if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
		return false
	}
	if r.StartHour < 0 || r.StartHour > 23 {
		return false
	}
	if r.EndHour < 1 || r.EndHour > 24 {
		return false
	}
	return r.EndHour > r.StartHour
}

// AppliesTo reports whether the rule covers the given calendar day.
func (r AvailabilityRule) AppliesTo(day time.Time) bool {
	if day.Weekday() != r.Weekday {
		return false
	}
	if day.Before(r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && day.After(*r.ValidTo) {
		return false
	}
	return true
}
