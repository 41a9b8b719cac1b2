package trek

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/services/profile"
	"github.com/KirkDiggler/tipsytrek/internal/services/spawn"
	"github.com/KirkDiggler/tipsytrek/internal/services/tracker"
	"github.com/sirupsen/logrus"
)

// notificationBuffer is how many undelivered events a session queues before dropping
const notificationBuffer = 64

// session is one user's running trek
type session struct {
	userID    string
	channelID string
	startedAt time.Time

	engine   *spawn.Engine
	holder   *profile.Holder
	location *tracker.LastKnownLocation
	tracker  *tracker.Tracker

	cancel context.CancelFunc
	done   chan struct{}

	// Notifier calls run on their own goroutine so a slow channel send
	// never holds up the tracker
	events         chan func(ctx context.Context)
	quit           chan struct{}
	dispatchDone   chan struct{}
	cancelDispatch context.CancelFunc
}

func newSession(userID, channelID string, startedAt time.Time) *session {
	return &session{
		userID:       userID,
		channelID:    channelID,
		startedAt:    startedAt,
		cancel:       func() {},
		done:         make(chan struct{}),
		events:       make(chan func(ctx context.Context), notificationBuffer),
		quit:         make(chan struct{}),
		dispatchDone: make(chan struct{}),
	}
}

// start launches the tracker loop and the notification dispatcher
func (sess *session) start() {
	runCtx, cancel := context.WithCancel(context.Background())
	sess.cancel = cancel
	go sess.run(runCtx)

	dispatchCtx, cancelDispatch := context.WithCancel(context.Background())
	sess.cancelDispatch = cancelDispatch
	go sess.dispatch(dispatchCtx)
}

// run drives the tracker until the session is stopped
func (sess *session) run(ctx context.Context) {
	defer close(sess.done)

	if err := sess.tracker.Run(ctx); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": sess.userID,
		}).WithError(err).Error("tracker stopped")
	}
}

// notify queues a delivery without blocking the caller
func (sess *session) notify(deliver func(ctx context.Context)) {
	select {
	case sess.events <- deliver:
	default:
		logrus.WithFields(logrus.Fields{
			"user_id": sess.userID,
		}).Warn("notification queue full, dropping event")
	}
}

// dispatch delivers queued events in order. After quit it drains what is
// already queued and exits.
func (sess *session) dispatch(ctx context.Context) {
	defer close(sess.dispatchDone)

	for {
		select {
		case deliver := <-sess.events:
			deliver(ctx)
		case <-sess.quit:
			for {
				select {
				case deliver := <-sess.events:
					deliver(ctx)
				default:
					return
				}
			}
		}
	}
}

// stop cancels the tracker loop, releases the engine, drains the profile
// writer and then the notification queue. The engine and holder are always
// released, even when the loop misses the deadline.
func (sess *session) stop(ctx context.Context) error {
	sess.cancel()

	var errs []error

	select {
	case <-sess.done:
	case <-ctx.Done():
		errs = append(errs, fmt.Errorf("tracker for user %s did not stop: %w", sess.userID, ctx.Err()))
	}

	sess.engine.Close()

	if err := sess.holder.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush profile for user %s: %w", sess.userID, err))
	}

	close(sess.quit)
	select {
	case <-sess.dispatchDone:
	case <-ctx.Done():
		// Abort in-flight sends; the dispatcher exits once they return
		sess.cancelDispatch()
		errs = append(errs, fmt.Errorf("notifications for user %s not delivered: %w", sess.userID, ctx.Err()))
	}
	sess.cancelDispatch()

	return errors.Join(errs...)
}
