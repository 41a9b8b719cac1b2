package trek

import (
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/geo"
	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	visitLedgerRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/visit_ledger"
	"github.com/KirkDiggler/tipsytrek/internal/services/profile"
)

// DefaultBarCheckInRadiusMeters is how close a user must be to check in
const DefaultBarCheckInRadiusMeters = 75.0

// Config holds configuration for the trek service
type Config struct {
	// TickInterval is the tracker step interval
	TickInterval time.Duration

	// SpawnInterval is the minimum time between spawn cycles
	SpawnInterval time.Duration

	// DrinkTTL is the lifetime of a spawned drink
	DrinkTTL time.Duration

	// BatchSize is the number of drinks per spawn cycle
	BatchSize int

	// SpawnRadius is the spawn square half-width in degrees; zero means spawn.DefaultRadius
	SpawnRadius float64

	// CollectRadiusMeters is the pick-up range; zero means spawn.DefaultCollectRadiusMeters
	CollectRadiusMeters float64

	// BarCheckInRadiusMeters is the check-in range; zero means DefaultBarCheckInRadiusMeters
	BarCheckInRadiusMeters float64

	// Service dependencies
	ProfileService  profile.Service
	VisitLedgerRepo visitLedgerRepo.Repository
	Clock           clock.Clock
	Roller          dice.Roller
	UUIDGenerator   uuid.UUID

	// Optional
	Notifier Notifier
	Metrics  *metrics.Metrics
}

// DrinkCollectedEvent describes a drink the tracker credited to a user
type DrinkCollectedEvent struct {
	UserID    string
	ChannelID string
	Drink     models.LocatedDrink

	// Profile is the snapshot right after the drink was added
	Profile models.Profile
}

// AchievementUnlockedEvent describes a newly unlocked achievement
type AchievementUnlockedEvent struct {
	UserID      string
	ChannelID   string
	DisplayName string
	Achievement models.Achievement
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	UserID      string
	Email       string
	DisplayName string

	// ChannelID is where session events are reported
	ChannelID string
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	Profile models.Profile

	// AlreadyStarted is true when the user already had a running session
	AlreadyStarted bool

	// Restored is true when the profile came from the store
	Restored bool

	// Offline is true when the store could not be read; nothing from this
	// trek will be saved
	Offline bool
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	UserID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	Profile  models.Profile
	Duration time.Duration
}

// UpdateLocationInput contains a location sample
type UpdateLocationInput struct {
	UserID    string
	Latitude  float64
	Longitude float64
}

// UpdateLocationOutput contains the result of recording a sample
type UpdateLocationOutput struct {
	Location  geo.Point
	UpdatedAt time.Time

	// NearbyDrinks is how many live drinks are within pick-up range
	NearbyDrinks int
}

// GetStatusInput contains parameters for getting a session status
type GetStatusInput struct {
	UserID string
}

// GetStatusOutput contains a session status
type GetStatusOutput struct {
	Profile      models.Profile
	BAC          float64
	FormattedBAC string
	LiveDrinks   []models.LocatedDrink
	Achievements []string
	Location     geo.Point
	StartedAt    time.Time
}

// ResetDrinksInput contains parameters for resetting a session's drinks
type ResetDrinksInput struct {
	UserID string
}

// ResetDrinksOutput contains the profile after the reset
type ResetDrinksOutput struct {
	Profile models.Profile
}

// ConsumeDrinkInput contains parameters for adding a drink by hand
type ConsumeDrinkInput struct {
	UserID       string
	BeverageName string
}

// ConsumeDrinkOutput contains the result of adding a drink
type ConsumeDrinkOutput struct {
	Beverage models.Beverage
	Profile  models.Profile
	Unlocked []models.Achievement
}

// CheckInInput contains parameters for a bar check-in
type CheckInInput struct {
	UserID  string
	BarName string
}

// CheckInOutput contains the result of a check-in
type CheckInOutput struct {
	Visit          *models.BarVisit
	Profile        models.Profile
	Unlocked       []models.Achievement
	DistanceMeters float64
}

// GetAchievementsInput contains parameters for listing achievements
type GetAchievementsInput struct {
	UserID string
}

// AchievementStatus pairs a definition with the user's progress toward it
type AchievementStatus struct {
	Achievement models.Achievement
	Unlocked    bool

	// Progress is the user's counter for the achievement's category
	Progress int
}

// GetAchievementsOutput contains every achievement and its status
type GetAchievementsOutput struct {
	Achievements []AchievementStatus
}

// GetVisitsInput contains parameters for listing visits
type GetVisitsInput struct {
	UserID string

	// Limit keeps only the most recent visits; zero means all
	Limit int
}

// GetVisitsOutput contains a user's visits, oldest first
type GetVisitsOutput struct {
	Visits []*models.BarVisit
}
