package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip types.
const (
	TripTypeSingle = "Single"
	TripTypeFamily = "Family"
	TripTypeCouple = "Couple"
	TripTypeGroup  = "Group"
)

// Activity types for a day entry.
const (
	ActivitySightseeing = "Sightseeing"
	ActivityFood        = "Food"
	ActivityMuseum      = "Museum"
	ActivityAdventure   = "Adventure"
	ActivityRelaxation  = "Relaxation"
	ActivityShopping    = "Shopping"
	ActivityNightLife   = "NightLife"
	ActivityOther       = "Other"
)

// TripDB represents a trip record in the database.
// UserID is nil for system trips authored by admins.
type TripDB struct {
	TripID       uuid.UUID  `json:"id" db:"trip_id"`
	UserID       *uuid.UUID `json:"user_id" db:"user_id"` // Owning user, nil = system trip
	Title        string     `json:"title" db:"title"`
	TripType     string     `json:"trip_type" db:"trip_type"`
	StartDate    time.Time  `json:"start_date" db:"start_date"`
	EndDate      time.Time  `json:"end_date" db:"end_date"`
	DurationDays int        `json:"duration_days" db:"duration_days"`
	Price        float64    `json:"price" db:"price"`
	Description  string     `json:"description" db:"description"`
	ImageURL     *string    `json:"image_url" db:"image_url"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`

	Days []DayDB `json:"days" db:"-"`
}

// DayDB represents one day of a trip itinerary.
type DayDB struct {
	DayID       uuid.UUID  `json:"id" db:"day_id"`
	TripID      uuid.UUID  `json:"trip_id" db:"trip_id"`
	DayNumber   int        `json:"day_number" db:"day_number"`
	Date        *time.Time `json:"date" db:"date"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	City        string     `json:"city" db:"city"`

	Activities []DayActivityDB `json:"activities" db:"-"`
}

// DayActivityDB represents a scheduled activity within a day,
// referencing a destination.
type DayActivityDB struct {
	ActivityID    uuid.UUID `json:"id" db:"activity_id"`
	DayID         uuid.UUID `json:"day_id" db:"day_id"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	ActivityType  string    `json:"activity_type" db:"activity_type"`
	StartTime     string    `json:"start_time" db:"start_time"` // HH:MM, wall-clock within the day
	DurationHours float64   `json:"duration_hours" db:"duration_hours"`
	Description   *string   `json:"description" db:"description"`
}
