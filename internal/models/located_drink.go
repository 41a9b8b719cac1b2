package models

import (
	"time"
)

// LocatedDrink is a spawned drink waiting on the map to be collected
type LocatedDrink struct {
	// ID is the unique identifier for this spawned drink
	ID string

	// Beverage is the catalog template this drink was drawn from
	Beverage Beverage

	// Latitude of the drink in degrees
	Latitude float64

	// Longitude of the drink in degrees
	Longitude float64

	// ExpiresAt is when the drink disappears if nobody collects it
	ExpiresAt time.Time
}

// IsExpired reports whether the drink is gone at the given instant
func (d *LocatedDrink) IsExpired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}
