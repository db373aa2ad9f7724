package models

import "time"

// Unavailability represents an ad-hoc blocked period for a worker.
// It always blocks slot generation, regardless of any availability rule.
type Unavailability struct {
	ID        string    `bson:"id" json:"id"`                       // Unique block identifier
	WorkerID  string    `bson:"worker_id" json:"worker_id"`         // Worker whose time is blocked
	StartAt   time.Time `bson:"start_at" json:"start_at"`           // Block start instant (UTC)
	EndAt     time.Time `bson:"end_at" json:"end_at"`               // Block end instant (UTC), after StartAt
	Reason    string    `bson:"reason,omitempty" json:"reason"`     // e.g., "vacation", "vehicle repair"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
