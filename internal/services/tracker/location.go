package tracker

import (
	"sync"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/geo"
)

// LocationSource supplies the player's position on every tick
type LocationSource interface {
	Location() geo.Point
}

// LastKnownLocation remembers the most recent sample. Until the first
// sample arrives it reports (0, 0).
type LastKnownLocation struct {
	mu        sync.RWMutex
	point     geo.Point
	updatedAt time.Time
}

// NewLastKnownLocation returns a source positioned at (0, 0)
func NewLastKnownLocation() *LastKnownLocation {
	return &LastKnownLocation{}
}

// Set records a new sample
func (l *LastKnownLocation) Set(point geo.Point, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.point = point
	l.updatedAt = at
}

// Location returns the most recent sample
func (l *LastKnownLocation) Location() geo.Point {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.point
}

// UpdatedAt is the time of the most recent sample; zero if there never was one
func (l *LastKnownLocation) UpdatedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.updatedAt
}
