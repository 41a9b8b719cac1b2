package profile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	profileRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/profile"
	"github.com/KirkDiggler/tipsytrek/internal/services/achievement"
	"github.com/sirupsen/logrus"
)

type holderConfig struct {
	initial        models.Profile
	repo           profileRepo.Repository
	metrics        *metrics.Metrics
	onAchievement  AchievementListener
	persistTimeout time.Duration
	skipPersist    bool
}

// Holder owns the current profile of one user.
//
// Readers get an immutable snapshot without locking. Update is the single
// assignment point: it runs under a mutex, then hands the new snapshot to a
// writer goroutine that saves the latest state. Saves never block Update and
// a failed save is logged, counted and dropped.
type Holder struct {
	current atomic.Pointer[models.Profile]

	mu     sync.Mutex
	closed bool

	repo           profileRepo.Repository
	metrics        *metrics.Metrics
	onAchievement  AchievementListener
	persistTimeout time.Duration
	skipPersist    bool

	dirty     chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newHolder(cfg *holderConfig) *Holder {
	h := &Holder{
		repo:           cfg.repo,
		metrics:        cfg.metrics,
		onAchievement:  cfg.onAchievement,
		persistTimeout: cfg.persistTimeout,
		skipPersist:    cfg.skipPersist,
		dirty:          make(chan struct{}, 1),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	initial := cfg.initial
	h.current.Store(&initial)

	go h.writeLoop()

	return h
}

// Current returns the latest profile snapshot
func (h *Holder) Current() models.Profile {
	return *h.current.Load()
}

// Update applies fn to the current profile and installs the result. It
// returns the snapshots on either side of the change. Achievements whose
// threshold was crossed by this update are reported to the listener once.
func (h *Holder) Update(fn func(models.Profile) models.Profile) (before, after models.Profile, err error) {
	if fn == nil {
		return before, after, ErrNilUpdate
	}

	h.mu.Lock()
	before = *h.current.Load()
	after = fn(before)
	h.current.Store(&after)
	if !h.closed {
		h.markDirty()
	}
	h.mu.Unlock()

	for _, unlocked := range achievement.Between(before, after) {
		h.metrics.AchievementUnlocked(unlocked.Category)
		if h.onAchievement != nil {
			h.onAchievement(unlocked)
		}
	}

	return before, after, nil
}

// Close stops the writer after it has saved the latest snapshot. Updates
// made after Close stay in memory only.
func (h *Holder) Close(ctx context.Context) error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()
		close(h.stop)
	})

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Holder) markDirty() {
	select {
	case h.dirty <- struct{}{}:
	default:
		// a save is already pending and will pick up this snapshot
	}
}

func (h *Holder) writeLoop() {
	defer close(h.done)

	for {
		select {
		case <-h.dirty:
			h.persist()
		case <-h.stop:
			select {
			case <-h.dirty:
				h.persist()
			default:
			}
			return
		}
	}
}

func (h *Holder) persist() {
	snapshot := h.current.Load()
	if h.skipPersist || !snapshot.IsAuthenticated() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.persistTimeout)
	defer cancel()

	err := h.repo.SaveProfile(ctx, &profileRepo.SaveProfileInput{Profile: snapshot})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": snapshot.UID,
		}).WithError(err).Error("failed to persist profile")
		h.metrics.PersistFailed()
	}
}
