package models

import (
	"time"

	"github.com/google/uuid"
)

// Analytics event types.
const (
	EventFeatureUsage    = "FeatureUsage"
	EventDestinationView = "DestinationView"
	EventTripCreated     = "TripCreated"
)

// AnalyticsEventDB represents a recorded usage event
type AnalyticsEventDB struct {
	EventID   uuid.UUID  `json:"id" db:"event_id"`
	EventType string     `json:"event_type" db:"event_type"` // EventFeatureUsage, EventDestinationView, ...
	Category  *string    `json:"category" db:"category"`     // Feature or destination name
	UserID    *uuid.UUID `json:"user_id" db:"user_id"`       // Nil for anonymous events
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
