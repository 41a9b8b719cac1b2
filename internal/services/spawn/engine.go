package spawn

import (
	"sync"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/catalog"
	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/geo"
	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
)

// Engine implements the Service interface over an in-memory live set
type Engine struct {
	batchSize     int
	spawnInterval time.Duration
	drinkTTL      time.Duration

	clock         clock.Clock
	roller        dice.Roller
	uuidGenerator uuid.UUID
	metrics       *metrics.Metrics

	mu         sync.Mutex
	live       []*models.LocatedDrink
	lastSpawn  time.Time
	hasSpawned bool

	subscribers map[int]chan []models.LocatedDrink
	nextSubID   int
	closed      bool
}

// New creates a new spawn engine. Zero durations and batch size fall back to the defaults.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.BatchSize < 0 {
		return nil, ErrInvalidBatchSize
	}

	if cfg.SpawnInterval < 0 {
		return nil, ErrInvalidInterval
	}

	if cfg.DrinkTTL < 0 {
		return nil, ErrInvalidDrinkTTL
	}

	e := &Engine{
		batchSize:     cfg.BatchSize,
		spawnInterval: cfg.SpawnInterval,
		drinkTTL:      cfg.DrinkTTL,
		clock:         cfg.Clock,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		metrics:       cfg.Metrics,
		subscribers:   make(map[int]chan []models.LocatedDrink),
	}

	if e.batchSize == 0 {
		e.batchSize = DefaultBatchSize
	}
	if e.spawnInterval == 0 {
		e.spawnInterval = DefaultSpawnInterval
	}
	if e.drinkTTL == 0 {
		e.drinkTTL = DefaultDrinkTTL
	}

	return e, nil
}

// Tick sweeps expired drinks and spawns a new batch when the interval has elapsed
func (e *Engine) Tick(input *TickInput) *TickOutput {
	if input == nil {
		input = &TickInput{Radius: DefaultRadius}
	}

	now := input.Now
	if now.IsZero() {
		now = e.clock.Now()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	output := &TickOutput{}
	if e.closed {
		output.Live = []models.LocatedDrink{}
		return output
	}

	// Sweep everything whose expiry has been reached
	kept := e.live[:0]
	for _, drink := range e.live {
		if drink.IsExpired(now) {
			output.Expired = append(output.Expired, *drink)
			continue
		}
		kept = append(kept, drink)
	}
	clearTail(e.live, len(kept))
	e.live = kept

	if !e.hasSpawned || now.Sub(e.lastSpawn) > e.spawnInterval {
		e.lastSpawn = now
		e.hasSpawned = true

		for i := 0; i < e.batchSize; i++ {
			drink := e.newDrink(input.Latitude, input.Longitude, input.Radius, now)
			e.live = append(e.live, drink)
			output.Spawned = append(output.Spawned, *drink)
		}
	}

	e.metrics.DrinksExpired(len(output.Expired))
	e.metrics.DrinksSpawned(len(output.Spawned))

	output.Live = e.publishLocked()
	return output
}

// CollectNearby removes and returns every live drink within range of the player
func (e *Engine) CollectNearby(input *CollectNearbyInput) *CollectNearbyOutput {
	output := &CollectNearbyOutput{
		Collected: []models.LocatedDrink{},
	}
	if input == nil {
		output.Live = e.Snapshot()
		return output
	}

	player := geo.Point{Latitude: input.Latitude, Longitude: input.Longitude}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		output.Live = []models.LocatedDrink{}
		return output
	}

	kept := e.live[:0]
	for _, drink := range e.live {
		at := geo.Point{Latitude: drink.Latitude, Longitude: drink.Longitude}
		if geo.Within(player, at, input.RadiusMeters) {
			output.Collected = append(output.Collected, *drink)
			continue
		}
		kept = append(kept, drink)
	}
	clearTail(e.live, len(kept))
	e.live = kept

	e.metrics.DrinksCollected(len(output.Collected))

	if len(output.Collected) == 0 {
		output.Live = e.snapshotLocked()
		return output
	}

	output.Live = e.publishLocked()
	return output
}

// Snapshot returns a copy of the live set
func (e *Engine) Snapshot() []models.LocatedDrink {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe returns a replace-on-write feed of live set snapshots. The
// current live set is delivered immediately.
func (e *Engine) Subscribe() *Subscription {
	ch := make(chan []models.LocatedDrink, 1)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		close(ch)
		return &Subscription{C: ch, cancel: func() {}}
	}

	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = ch
	ch <- e.snapshotLocked()

	var once sync.Once
	return &Subscription{
		C: ch,
		cancel: func() {
			once.Do(func() {
				e.mu.Lock()
				defer e.mu.Unlock()
				if sub, ok := e.subscribers[id]; ok {
					delete(e.subscribers, id)
					close(sub)
				}
			})
		},
	}
}

// Close drops the live set and closes every subscription
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	e.metrics.DrinksDiscarded(len(e.live))
	e.live = nil

	for id, ch := range e.subscribers {
		delete(e.subscribers, id)
		close(ch)
	}
}

// newDrink places a drink in the square [ref, ref+2r) on both axes. The
// square sits north-east of the reference point rather than around it;
// players have always seen drinks there, so keep it.
func (e *Engine) newDrink(lat, long, radius float64, now time.Time) *models.LocatedDrink {
	drinkLat := lat + e.roller.Float64()*radius*2
	drinkLong := long + e.roller.Float64()*radius*2

	return &models.LocatedDrink{
		ID:        e.uuidGenerator.NewUUID(),
		Beverage:  catalog.BeverageAt(e.roller.Intn(catalog.BeverageCount())),
		Latitude:  drinkLat,
		Longitude: drinkLong,
		ExpiresAt: now.Add(e.drinkTTL),
	}
}

func (e *Engine) snapshotLocked() []models.LocatedDrink {
	out := make([]models.LocatedDrink, len(e.live))
	for i, drink := range e.live {
		out[i] = *drink
	}
	return out
}

// publishLocked pushes a fresh snapshot to every subscriber, replacing any
// snapshot they have not read yet. Must hold e.mu.
func (e *Engine) publishLocked() []models.LocatedDrink {
	snapshot := e.snapshotLocked()

	for _, ch := range e.subscribers {
		select {
		case <-ch:
		default:
		}

		cp := make([]models.LocatedDrink, len(snapshot))
		copy(cp, snapshot)
		ch <- cp
	}

	return snapshot
}

// clearTail nils out the pointers left behind after filtering in place
func clearTail(s []*models.LocatedDrink, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
