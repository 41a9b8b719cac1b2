package profile

import (
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	profileRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/profile"
)

// DefaultPersistTimeout bounds a single background save
const DefaultPersistTimeout = 5 * time.Second

// Config holds configuration for the profile service
type Config struct {
	// Repository dependencies
	Repository profileRepo.Repository

	// PersistTimeout bounds a single background save; zero means DefaultPersistTimeout
	PersistTimeout time.Duration

	// Optional
	Metrics *metrics.Metrics
}

// LoadInput identifies the user to hydrate
type LoadInput struct {
	// UserID is the stable identifier; empty loads the placeholder profile
	UserID string

	// Email seeds the username of a fresh profile
	Email string

	// DisplayName seeds the display name of a fresh profile
	DisplayName string

	// ReadOnly never creates a record; a missing user gets an unsaved fresh profile
	ReadOnly bool
}

// LoadOutput contains the hydrated profile
type LoadOutput struct {
	Profile models.Profile

	// Found is true when the profile came from the store
	Found bool

	// ReadFailed is true when the store could not be read. The profile is a
	// stand-in and must not be written over the stored record.
	ReadFailed bool
}

// AchievementListener is told about each achievement the first time it unlocks
type AchievementListener func(achievement models.Achievement)

// NewHolderInput contains parameters for creating a holder
type NewHolderInput struct {
	// Profile is the initial snapshot
	Profile models.Profile

	// OnAchievement is optional
	OnAchievement AchievementListener

	// SkipPersist keeps every snapshot in memory only
	SkipPersist bool
}
