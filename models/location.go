package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a saved location row for a user
type Location struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Label     string    `json:"label"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsHome    bool      `json:"is_home"`
	CreatedAt time.Time `json:"created_at"`
}

// ResolvedLocation is the result of geocoding a city or postcode
type ResolvedLocation struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
