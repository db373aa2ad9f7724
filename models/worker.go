package models

import "time"

// Worker represents a mobile service worker on the supply side of the marketplace.
type Worker struct {
	ID        string    `bson:"id" json:"id"`                 // Unique worker identifier (e.g., UUID)
	Name      string    `bson:"name" json:"name"`             // Display name
	Trade     string    `bson:"trade" json:"trade"`           // e.g., "Cleaning", "Plumbing"
	Active    bool      `bson:"active" json:"active"`         // Inactive workers are hidden from lookups
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Timestamp when the worker was registered
}
