package tracker

import (
	"context"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/KirkDiggler/tipsytrek/internal/services/spawn"
)

// DefaultInterval is the time between tracker steps
const DefaultInterval = time.Second

// ProfileUpdater is the part of the profile holder the tracker writes through
type ProfileUpdater interface {
	Update(fn func(models.Profile) models.Profile) (before, after models.Profile, err error)
}

// CollectListener is told about every collected drink after the profile has been updated
type CollectListener func(ctx context.Context, drink models.LocatedDrink, after models.Profile)

// Config holds configuration for a tracker
type Config struct {
	// Interval between steps; zero means DefaultInterval
	Interval time.Duration

	// SpawnRadius is the spawn square half-width in degrees
	SpawnRadius float64

	// CollectRadiusMeters is the pick-up range
	CollectRadiusMeters float64

	// Service dependencies
	Engine   spawn.Service
	Profile  ProfileUpdater
	Location LocationSource
	Clock    clock.Clock

	// Optional
	OnCollect CollectListener
}

// StepOutput contains the result of a single step
type StepOutput struct {
	// Tick is the spawn engine result
	Tick *spawn.TickOutput

	// Collected are the drinks credited to the profile
	Collected []models.LocatedDrink

	// Profile is the snapshot after the last credit; zero when nothing was collected
	Profile models.Profile
}
