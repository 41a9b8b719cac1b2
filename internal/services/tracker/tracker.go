package tracker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/KirkDiggler/tipsytrek/internal/services/spawn"
	"github.com/sirupsen/logrus"
)

// Tracker drives one player's spawn engine from their location
type Tracker struct {
	interval            time.Duration
	spawnRadius         float64
	collectRadiusMeters float64

	engine    spawn.Service
	profile   ProfileUpdater
	location  LocationSource
	clock     clock.Clock
	onCollect CollectListener

	running atomic.Bool
}

// New creates a new tracker
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}

	if cfg.Profile == nil {
		return nil, ErrNilProfile
	}

	if cfg.Location == nil {
		return nil, ErrNilLocation
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.SpawnRadius < 0 || cfg.CollectRadiusMeters < 0 {
		return nil, ErrInvalidRadius
	}

	if cfg.Interval < 0 {
		return nil, ErrInvalidInterval
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Tracker{
		interval:            interval,
		spawnRadius:         cfg.SpawnRadius,
		collectRadiusMeters: cfg.CollectRadiusMeters,
		engine:              cfg.Engine,
		profile:             cfg.Profile,
		location:            cfg.Location,
		clock:               cfg.Clock,
		onCollect:           cfg.OnCollect,
	}, nil
}

// Run steps once immediately and then on every interval until ctx is done
func (t *Tracker) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer t.running.Store(false)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.Step(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.Step(ctx)
		}
	}
}

// Step samples the location, advances the engine and credits every drink in range
func (t *Tracker) Step(ctx context.Context) *StepOutput {
	point := t.location.Location()

	output := &StepOutput{
		Tick: t.engine.Tick(&spawn.TickInput{
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
			Radius:    t.spawnRadius,
			Now:       t.clock.Now(),
		}),
	}

	collected := t.engine.CollectNearby(&spawn.CollectNearbyInput{
		Latitude:     point.Latitude,
		Longitude:    point.Longitude,
		RadiusMeters: t.collectRadiusMeters,
	})
	output.Collected = collected.Collected

	for _, drink := range collected.Collected {
		_, after, err := t.profile.Update(func(p models.Profile) models.Profile {
			return p.AddDrink(drink.Beverage)
		})
		if err != nil {
			logrus.Errorf("failed to credit drink %s: %v", drink.ID, err)
			continue
		}
		output.Profile = after

		if t.onCollect != nil {
			t.onCollect(ctx, drink, after)
		}
	}

	if len(collected.Collected) > 0 {
		logrus.WithFields(logrus.Fields{
			"collected": len(collected.Collected),
			"live":      len(collected.Live),
		}).Debug("drinks collected")
	}

	return output
}
