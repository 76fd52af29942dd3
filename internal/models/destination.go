package models

import (
	"time"

	"github.com/google/uuid"
)

// DestinationDB represents a destination record in the database
type DestinationDB struct {
	DestinationID  uuid.UUID `json:"id" db:"destination_id"`
	Name           string    `json:"name" db:"name"`
	City           string    `json:"city" db:"city"`
	Description    *string   `json:"description" db:"description"`
	ImageURL       *string   `json:"image_url" db:"image_url"`
	EstimatedPrice float64   `json:"estimated_price" db:"estimated_price"`
	OpensAt        *string   `json:"opens_at" db:"opens_at"`   // HH:MM working hours start
	ClosesAt       *string   `json:"closes_at" db:"closes_at"` // HH:MM working hours end
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// Virtual tour, nil when the destination has none
	VrID       *uuid.UUID `json:"vr_id" db:"vr_id"`
	VrImageURL *string    `json:"vr_image_url" db:"vr_image_url"`
}

// VirtualTourDB represents a 360-degree tour attached to a destination.
// A destination has at most one tour.
type VirtualTourDB struct {
	VrID          uuid.UUID `json:"vr_id" db:"vr_id"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	VrImageURL    string    `json:"vr_image_url" db:"vr_image_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// UserFavoriteDB links a user to a favorited destination
type UserFavoriteDB struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	AddedAt       time.Time `json:"added_at" db:"added_at"`
}
