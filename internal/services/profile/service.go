package profile

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	profileRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/profile"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	repo           profileRepo.Repository
	metrics        *metrics.Metrics
	persistTimeout time.Duration
}

// New creates a new profile service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	timeout := cfg.PersistTimeout
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}

	return &service{
		repo:           cfg.Repository,
		metrics:        cfg.Metrics,
		persistTimeout: timeout,
	}, nil
}

// Load reads the stored profile for a user. A missing record yields a fresh
// profile built from the identity, which is saved straight away unless the
// input is read-only. A failed read also yields a fresh profile, flagged with
// ReadFailed, and leaves the store alone.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return &LoadOutput{Profile: models.NewProfile()}, nil
	}

	stored, err := s.repo.GetProfile(ctx, &profileRepo.GetProfileInput{
		UserID: input.UserID,
	})
	if err == nil {
		return &LoadOutput{Profile: *stored, Found: true}, nil
	}

	fresh := models.NewProfileForIdentity(input.UserID, input.Email, input.DisplayName)

	if !errors.Is(err, profileRepo.ErrProfileNotFound) {
		logrus.Warnf("failed to load profile for user %s: %v, starting fresh", input.UserID, err)
		return &LoadOutput{Profile: fresh, ReadFailed: true}, nil
	}

	if input.ReadOnly {
		return &LoadOutput{Profile: fresh}, nil
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	if err := s.repo.SaveProfile(saveCtx, &profileRepo.SaveProfileInput{Profile: &fresh}); err != nil {
		logrus.Errorf("failed to save new profile for user %s: %v", input.UserID, err)
		s.metrics.PersistFailed()
	}

	return &LoadOutput{Profile: fresh}, nil
}

// NewHolder wraps a profile in a state holder with background persistence
func (s *service) NewHolder(input *NewHolderInput) (*Holder, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return newHolder(&holderConfig{
		initial:        input.Profile,
		repo:           s.repo,
		metrics:        s.metrics,
		onAchievement:  input.OnAchievement,
		persistTimeout: s.persistTimeout,
		skipPersist:    input.SkipPersist,
	}), nil
}
