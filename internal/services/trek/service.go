package trek

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/tipsytrek/internal/catalog"
	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/geo"
	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	visitLedgerRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/visit_ledger"
	"github.com/KirkDiggler/tipsytrek/internal/services/achievement"
	"github.com/KirkDiggler/tipsytrek/internal/services/profile"
	"github.com/KirkDiggler/tipsytrek/internal/services/spawn"
	"github.com/KirkDiggler/tipsytrek/internal/services/tracker"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	config *Config

	spawnRadius            float64
	collectRadiusMeters    float64
	barCheckInRadiusMeters float64

	profileService  profile.Service
	visitLedgerRepo visitLedgerRepo.Repository
	clock           clock.Clock
	roller          dice.Roller
	uuidGenerator   uuid.UUID
	notifier        Notifier
	metrics         *metrics.Metrics

	mu       sync.Mutex
	sessions map[string]*session
	closed   bool
}

// New creates a new trek service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileService == nil {
		return nil, ErrNilProfileService
	}

	if cfg.VisitLedgerRepo == nil {
		return nil, ErrNilVisitLedgerRepo
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

	if cfg.SpawnRadius < 0 || cfg.CollectRadiusMeters < 0 || cfg.BarCheckInRadiusMeters < 0 {
		return nil, ErrInvalidRadius
	}

	s := &service{
		config:                 cfg,
		spawnRadius:            cfg.SpawnRadius,
		collectRadiusMeters:    cfg.CollectRadiusMeters,
		barCheckInRadiusMeters: cfg.BarCheckInRadiusMeters,
		profileService:         cfg.ProfileService,
		visitLedgerRepo:        cfg.VisitLedgerRepo,
		clock:                  cfg.Clock,
		roller:                 cfg.Roller,
		uuidGenerator:          cfg.UUIDGenerator,
		notifier:               cfg.Notifier,
		metrics:                cfg.Metrics,
		sessions:               make(map[string]*session),
	}

	if s.spawnRadius == 0 {
		s.spawnRadius = spawn.DefaultRadius
	}
	if s.collectRadiusMeters == 0 {
		s.collectRadiusMeters = spawn.DefaultCollectRadiusMeters
	}
	if s.barCheckInRadiusMeters == 0 {
		s.barCheckInRadiusMeters = DefaultBarCheckInRadiusMeters
	}

	return s, nil
}

// StartSession hydrates the user's profile and starts tracking. Starting an
// already running session returns its current profile.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if existing, err := s.getSession(input.UserID); err == nil {
		return &StartSessionOutput{
			Profile:        existing.holder.Current(),
			AlreadyStarted: true,
		}, nil
	}

	loaded, err := s.profileService.Load(ctx, &profile.LoadInput{
		UserID:      input.UserID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrShuttingDown
	}

	// Another start for the same user may have won while we were loading
	if existing, ok := s.sessions[input.UserID]; ok {
		return &StartSessionOutput{
			Profile:        existing.holder.Current(),
			AlreadyStarted: true,
		}, nil
	}

	sess, err := s.buildSession(input, loaded.Profile, loaded.ReadFailed)
	if err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{
		"user_id":    input.UserID,
		"channel_id": input.ChannelID,
		"restored":   loaded.Found,
	})

	if loaded.ReadFailed {
		log.Warn("profile store unavailable, this trek will not be saved")
	}

	// A stored record keeps the name it was created with; follow renames
	current := loaded.Profile
	if loaded.Found && input.DisplayName != "" && current.DisplayName != input.DisplayName {
		_, current, err = sess.holder.Update(func(p models.Profile) models.Profile {
			return p.WithDisplayName(input.DisplayName)
		})
		if err != nil {
			sess.engine.Close()
			_ = sess.holder.Close(ctx)
			return nil, fmt.Errorf("failed to update display name: %w", err)
		}
	}

	s.sessions[input.UserID] = sess
	s.metrics.SessionStarted()
	sess.start()

	log.Info("trek started")

	return &StartSessionOutput{
		Profile:  current,
		Restored: loaded.Found,
		Offline:  loaded.ReadFailed,
	}, nil
}

func (s *service) buildSession(input *StartSessionInput, initial models.Profile, readFailed bool) (*session, error) {
	userID := input.UserID
	channelID := input.ChannelID
	sess := newSession(userID, channelID, s.clock.Now())

	engine, err := spawn.New(&spawn.Config{
		BatchSize:     s.config.BatchSize,
		SpawnInterval: s.config.SpawnInterval,
		DrinkTTL:      s.config.DrinkTTL,
		Clock:         s.clock,
		Roller:        s.roller,
		UUIDGenerator: s.uuidGenerator,
		Metrics:       s.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spawn engine: %w", err)
	}

	holder, err := s.profileService.NewHolder(&profile.NewHolderInput{
		Profile:     initial,
		SkipPersist: readFailed,
		OnAchievement: func(unlocked models.Achievement) {
			if s.notifier == nil {
				return
			}
			event := &AchievementUnlockedEvent{
				UserID:      userID,
				ChannelID:   channelID,
				DisplayName: sess.holder.Current().DisplayName,
				Achievement: unlocked,
			}
			sess.notify(func(ctx context.Context) {
				s.notifier.AchievementUnlocked(ctx, event)
			})
		},
	})
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("failed to create profile holder: %w", err)
	}

	location := tracker.NewLastKnownLocation()

	tr, err := tracker.New(&tracker.Config{
		Interval:            s.config.TickInterval,
		SpawnRadius:         s.spawnRadius,
		CollectRadiusMeters: s.collectRadiusMeters,
		Engine:              engine,
		Profile:             holder,
		Location:            location,
		Clock:               s.clock,
		OnCollect: func(_ context.Context, drink models.LocatedDrink, after models.Profile) {
			if s.notifier == nil {
				return
			}
			event := &DrinkCollectedEvent{
				UserID:    userID,
				ChannelID: channelID,
				Drink:     drink,
				Profile:   after,
			}
			sess.notify(func(ctx context.Context) {
				s.notifier.DrinkCollected(ctx, event)
			})
		},
	})
	if err != nil {
		engine.Close()
		_ = holder.Close(context.Background())
		return nil, fmt.Errorf("failed to create tracker: %w", err)
	}

	sess.engine = engine
	sess.holder = holder
	sess.location = location
	sess.tracker = tr

	return sess, nil
}

// EndSession stops tracking and flushes the profile
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	sess, ok := s.sessions[input.UserID]
	if ok {
		delete(s.sessions, input.UserID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	s.metrics.SessionEnded()

	if err := sess.stop(ctx); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": input.UserID,
	}).Info("trek ended")

	return &EndSessionOutput{
		Profile:  sess.holder.Current(),
		Duration: s.clock.Now().Sub(sess.startedAt),
	}, nil
}

// UpdateLocation records a new location sample
func (s *service) UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*UpdateLocationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, ErrInvalidCoordinate
	}

	sess, err := s.getSession(input.UserID)
	if err != nil {
		return nil, err
	}

	point := geo.Point{Latitude: input.Latitude, Longitude: input.Longitude}
	now := s.clock.Now()
	sess.location.Set(point, now)

	nearby := 0
	for _, drink := range sess.engine.Snapshot() {
		if geo.Within(point, geo.Point{Latitude: drink.Latitude, Longitude: drink.Longitude}, s.collectRadiusMeters) {
			nearby++
		}
	}

	return &UpdateLocationOutput{
		Location:     point,
		UpdatedAt:    now,
		NearbyDrinks: nearby,
	}, nil
}

// GetStatus returns the profile, BAC and live drinks of a running session
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.getSession(input.UserID)
	if err != nil {
		return nil, err
	}

	current := sess.holder.Current()

	return &GetStatusOutput{
		Profile:      current,
		BAC:          current.BAC(),
		FormattedBAC: current.FormattedBAC(),
		LiveDrinks:   sess.engine.Snapshot(),
		Achievements: achievement.ForProfile(current),
		Location:     sess.location.Location(),
		StartedAt:    sess.startedAt,
	}, nil
}

// ResetDrinks clears the current session's drinks
func (s *service) ResetDrinks(ctx context.Context, input *ResetDrinksInput) (*ResetDrinksOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.getSession(input.UserID)
	if err != nil {
		return nil, err
	}

	_, after, err := sess.holder.Update(func(p models.Profile) models.Profile {
		return p.ResetCurrentDrinks()
	})
	if err != nil {
		return nil, err
	}

	return &ResetDrinksOutput{Profile: after}, nil
}

// ConsumeDrink adds a drink by beverage name
func (s *service) ConsumeDrink(ctx context.Context, input *ConsumeDrinkInput) (*ConsumeDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.getSession(input.UserID)
	if err != nil {
		return nil, err
	}

	beverage, ok := catalog.BeverageByName(input.BeverageName)
	if !ok {
		return nil, ErrBeverageNotFound
	}

	before, after, err := sess.holder.Update(func(p models.Profile) models.Profile {
		return p.AddDrink(beverage)
	})
	if err != nil {
		return nil, err
	}

	return &ConsumeDrinkOutput{
		Beverage: beverage,
		Profile:  after,
		Unlocked: achievement.Between(before, after),
	}, nil
}

// CheckIn records a visit to a bar the user is standing at
func (s *service) CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.getSession(input.UserID)
	if err != nil {
		return nil, err
	}

	bar, ok := catalog.BarByName(input.BarName)
	if !ok {
		return nil, ErrBarNotFound
	}

	distance := geo.HaversineMeters(
		sess.location.Location(),
		geo.Point{Latitude: bar.Latitude, Longitude: bar.Longitude},
	)
	if distance > s.barCheckInRadiusMeters {
		return nil, ErrNotAtBar
	}

	created, err := s.visitLedgerRepo.CreateVisit(ctx, &visitLedgerRepo.CreateVisitInput{
		UserID:    input.UserID,
		BarName:   bar.Name,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}

	before, after, err := sess.holder.Update(func(p models.Profile) models.Profile {
		return p.IncrementBarVisit()
	})
	if err != nil {
		return nil, err
	}

	return &CheckInOutput{
		Visit:          created.Visit,
		Profile:        after,
		Unlocked:       achievement.Between(before, after),
		DistanceMeters: distance,
	}, nil
}

// GetAchievements lists every achievement with its unlocked state. Users
// without a running session are read from the store.
func (s *service) GetAchievements(ctx context.Context, input *GetAchievementsInput) (*GetAchievementsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	var current models.Profile
	if sess, err := s.getSession(input.UserID); err == nil {
		current = sess.holder.Current()
	} else {
		loaded, err := s.profileService.Load(ctx, &profile.LoadInput{
			UserID:   input.UserID,
			ReadOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		current = loaded.Profile
	}

	all := achievement.All()
	statuses := make([]AchievementStatus, 0, len(all))
	for _, a := range all {
		progress := current.DrinkCount()
		if a.Category == models.AchievementCategoryBarVisits {
			progress = current.BarVisitCount
		}

		statuses = append(statuses, AchievementStatus{
			Achievement: a,
			Unlocked:    progress >= a.Threshold,
			Progress:    progress,
		})
	}

	return &GetAchievementsOutput{Achievements: statuses}, nil
}

// GetVisits lists the user's bar visits
func (s *service) GetVisits(ctx context.Context, input *GetVisitsInput) (*GetVisitsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	output, err := s.visitLedgerRepo.GetVisitsForUser(ctx, &visitLedgerRepo.GetVisitsForUserInput{
		UserID: input.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get visits: %w", err)
	}

	return &GetVisitsOutput{Visits: output.Visits}, nil
}

// Shutdown ends every running session. New sessions are refused afterwards.
func (s *service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*session, 0, len(s.sessions))
	for userID, sess := range s.sessions {
		sessions = append(sessions, sess)
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	var errs []error
	for _, sess := range sessions {
		s.metrics.SessionEnded()
		if err := sess.stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if len(sessions) > 0 {
		logrus.Infof("stopped %d trek sessions", len(sessions))
	}

	return errors.Join(errs...)
}

func (s *service) getSession(userID string) (*session, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return sess, nil
}
