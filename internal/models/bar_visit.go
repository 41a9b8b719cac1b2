package models

import (
	"time"
)

// BarVisit records a single check-in at a bar
type BarVisit struct {
	// ID is the unique identifier for the visit record
	ID string `json:"id"`

	// UserID is the profile that checked in
	UserID string `json:"userId"`

	// BarName is the catalog name of the bar
	BarName string `json:"barName"`

	// Timestamp is when the check-in happened
	Timestamp time.Time `json:"timestamp"`
}
