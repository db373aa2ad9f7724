package models

// BillingUnit describes how a service is metered.
type BillingUnit string

const (
	BillingUnitHour BillingUnit = "hour"
	BillingUnitDay  BillingUnit = "day"
)

// Service represents a bookable service offering.
type Service struct {
	ID            string      `bson:"id" json:"id"`                         // Unique service identifier
	Name          string      `bson:"name" json:"name"`                     // e.g., "Deep Cleaning"
	BillingUnit   BillingUnit `bson:"billing_unit" json:"billing_unit"`     // "hour" or "day"
	UnitMagnitude float64     `bson:"unit_magnitude" json:"unit_magnitude"` // e.g., 2.5 hours, 1 day
	Active        bool        `bson:"active" json:"active"`
}
