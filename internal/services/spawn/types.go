package spawn

import (
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/geo"
	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
)

var (
	// DefaultRadius is the spawn square half-width: 30 seconds of arc,
	// roughly Regent to Spooner street
	DefaultRadius = geo.ArcSeconds(30)

	// DefaultCollectRadiusMeters is DefaultRadius measured on the ground
	DefaultCollectRadiusMeters = geo.DegreesToMeters(DefaultRadius)
)

const (
	// DefaultBatchSize is the number of drinks added per spawn cycle
	DefaultBatchSize = 3

	// DefaultSpawnInterval is the minimum time between spawn cycles
	DefaultSpawnInterval = 60 * time.Second

	// DefaultDrinkTTL is how long a spawned drink stays on the map
	DefaultDrinkTTL = 300 * time.Second
)

// Config holds configuration for the spawn engine
type Config struct {
	// Number of drinks added per spawn cycle
	BatchSize int

	// Minimum time between spawn cycles
	SpawnInterval time.Duration

	// Lifetime of a spawned drink
	DrinkTTL time.Duration

	// Service dependencies
	Clock         clock.Clock
	Roller        dice.Roller
	UUIDGenerator uuid.UUID

	// Optional
	Metrics *metrics.Metrics
}

// TickInput contains parameters for a tick
type TickInput struct {
	// Latitude of the reference point in degrees
	Latitude float64

	// Longitude of the reference point in degrees
	Longitude float64

	// Radius is the half-width of the spawn square in degrees. Use DefaultRadius
	// unless you want a different spread; zero places every drink on the reference point.
	Radius float64

	// Now is the tick instant; the zero value means the engine's clock
	Now time.Time
}

// TickOutput contains the result of a tick
type TickOutput struct {
	// Expired are the drinks swept by this tick
	Expired []models.LocatedDrink

	// Spawned are the drinks added by this tick
	Spawned []models.LocatedDrink

	// Live is the live set after the tick
	Live []models.LocatedDrink
}

// CollectNearbyInput contains parameters for collecting drinks
type CollectNearbyInput struct {
	// Latitude of the player in degrees
	Latitude float64

	// Longitude of the player in degrees
	Longitude float64

	// RadiusMeters is the great-circle pick-up range
	RadiusMeters float64
}

// CollectNearbyOutput contains the result of collecting drinks
type CollectNearbyOutput struct {
	// Collected are the drinks removed from the map, in spawn order
	Collected []models.LocatedDrink

	// Live is the live set after collection
	Live []models.LocatedDrink
}

// Subscription is a replace-on-write feed of live set snapshots. Only the
// most recent snapshot is buffered; a slow reader skips stale ones.
type Subscription struct {
	C <-chan []models.LocatedDrink

	cancel func()
}

// Cancel stops the feed and closes C
func (s *Subscription) Cancel() {
	s.cancel()
}
