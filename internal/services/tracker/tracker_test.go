package tracker

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/tipsytrek/internal/common/clock/mocks"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/geo"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/KirkDiggler/tipsytrek/internal/services/spawn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// memoryProfile is a minimal ProfileUpdater
type memoryProfile struct {
	mu      sync.Mutex
	profile models.Profile
}

func (m *memoryProfile) Update(fn func(models.Profile) models.Profile) (before, after models.Profile, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	before = m.profile
	m.profile = fn(before)
	return before, m.profile, nil
}

func (m *memoryProfile) current() models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

type TrackerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	engine    *spawn.Engine
	profile   *memoryProfile
	location  *LastKnownLocation
	testNow   time.Time
}

func (s *TrackerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.testNow = time.Date(2025, 4, 5, 22, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	engine, err := spawn.New(&spawn.Config{
		Clock:         s.mockClock,
		Roller:        dice.New(&dice.Config{Seed: 42}),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.engine = engine

	s.profile = &memoryProfile{profile: models.NewProfileForIdentity("user-1", "jo@example.com", "")}
	s.location = NewLastKnownLocation()
}

func (s *TrackerTestSuite) TearDownTest() {
	s.engine.Close()
	s.mockCtrl.Finish()
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) newTracker(spawnRadius, collectRadius float64, onCollect CollectListener) *Tracker {
	tr, err := New(&Config{
		Interval:            time.Millisecond,
		SpawnRadius:         spawnRadius,
		CollectRadiusMeters: collectRadius,
		Engine:              s.engine,
		Profile:             s.profile,
		Location:            s.location,
		Clock:               s.mockClock,
		OnCollect:           onCollect,
	})
	s.Require().NoError(err)
	return tr
}

func (s *TrackerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Profile: s.profile, Location: s.location, Clock: s.mockClock})
	s.Equal(ErrNilEngine, err)

	_, err = New(&Config{Engine: s.engine, Location: s.location, Clock: s.mockClock})
	s.Equal(ErrNilProfile, err)

	_, err = New(&Config{Engine: s.engine, Profile: s.profile, Clock: s.mockClock})
	s.Equal(ErrNilLocation, err)

	_, err = New(&Config{Engine: s.engine, Profile: s.profile, Location: s.location})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{Engine: s.engine, Profile: s.profile, Location: s.location, Clock: s.mockClock, CollectRadiusMeters: -1})
	s.Equal(ErrInvalidRadius, err)
}

func (s *TrackerTestSuite) TestStepCollectsDrinksSpawnedOnPlayer() {
	s.location.Set(geo.Point{Latitude: 43.0747, Longitude: -89.3841}, s.testNow)

	var notified []models.LocatedDrink
	tr := s.newTracker(0, 1, func(_ context.Context, drink models.LocatedDrink, after models.Profile) {
		notified = append(notified, drink)
	})

	output := tr.Step(context.Background())

	s.Len(output.Tick.Spawned, spawn.DefaultBatchSize)
	s.Len(output.Collected, spawn.DefaultBatchSize)
	s.Len(notified, spawn.DefaultBatchSize)
	s.Equal(spawn.DefaultBatchSize, output.Profile.DrinkCount())
	s.Equal(spawn.DefaultBatchSize, s.profile.current().SessionDrinkCount())
	s.Empty(s.engine.Snapshot())

	// Collected beverages are credited in spawn order
	for i, drink := range output.Collected {
		s.Equal(drink.Beverage, s.profile.current().CurrentDrinks[i])
	}
}

func (s *TrackerTestSuite) TestStepLeavesDistantDrinks() {
	tr := s.newTracker(spawn.DefaultRadius, 0, nil)

	output := tr.Step(context.Background())

	s.Len(output.Tick.Spawned, spawn.DefaultBatchSize)
	s.Empty(output.Collected)
	s.Equal(0, s.profile.current().DrinkCount())
	s.Len(s.engine.Snapshot(), spawn.DefaultBatchSize)
}

func (s *TrackerTestSuite) TestDefaultLocationIsOrigin() {
	s.Equal(geo.Point{}, s.location.Location())
	s.True(s.location.UpdatedAt().IsZero())

	tr := s.newTracker(0, 1, nil)
	output := tr.Step(context.Background())

	for _, drink := range output.Collected {
		s.Equal(0.0, drink.Latitude)
		s.Equal(0.0, drink.Longitude)
	}
}

func (s *TrackerTestSuite) TestRunStopsOnCancel() {
	tr := s.newTracker(0, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tr.Run(ctx)
	}()

	s.Eventually(func() bool {
		return s.profile.current().DrinkCount() >= spawn.DefaultBatchSize
	}, time.Second, time.Millisecond)

	s.Equal(ErrAlreadyRunning, tr.Run(ctx))

	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("tracker did not stop")
	}
}
