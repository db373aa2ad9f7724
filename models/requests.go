package models

import "time"

// CreateRuleRequest is the payload for adding a recurring weekly window.
type CreateRuleRequest struct {
	Weekday   int     `json:"weekday" binding:"min=0,max=6"`
	StartHour int     `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int     `json:"end_hour" binding:"required,min=1,max=24"`
	ValidFrom string  `json:"valid_from" binding:"required"` // "2006-01-02"
	ValidTo   *string `json:"valid_to"`                      // optional, "2006-01-02"
}

// CreateUnavailabilityRequest is the payload for blocking an ad-hoc period.
type CreateUnavailabilityRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Reason  string    `json:"reason"`
}
