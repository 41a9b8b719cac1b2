package metrics

import (
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "tipsytrek"

// Metrics holds the domain collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	drinksSpawned   prometheus.Counter
	drinksExpired   prometheus.Counter
	drinksCollected prometheus.Counter
	liveDrinks      prometheus.Gauge
	achievements    *prometheus.CounterVec
	persistFailures prometheus.Counter
	activeSessions  prometheus.Gauge
}

// New creates the collectors on a private registry along with the Go and
// process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		drinksSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drinks_spawned_total",
			Help:      "Drinks placed on the map.",
		}),
		drinksExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drinks_expired_total",
			Help:      "Drinks removed because nobody collected them in time.",
		}),
		drinksCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drinks_collected_total",
			Help:      "Drinks picked up by players.",
		}),
		liveDrinks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_drinks",
			Help:      "Drinks currently on the map across all sessions.",
		}),
		achievements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievements_unlocked_total",
			Help:      "Achievements unlocked, by category.",
		}, []string{"category"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_persist_failures_total",
			Help:      "Profile snapshots that could not be written to the store.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Tracking sessions currently running.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.drinksSpawned,
		m.drinksExpired,
		m.drinksCollected,
		m.liveDrinks,
		m.achievements,
		m.persistFailures,
		m.activeSessions,
	)

	return m
}

// Registry exposes the registry for the HTTP handler
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// DrinksSpawned records n newly spawned drinks
func (m *Metrics) DrinksSpawned(n int) {
	if m == nil || n == 0 {
		return
	}
	m.drinksSpawned.Add(float64(n))
	m.liveDrinks.Add(float64(n))
}

// DrinksExpired records n drinks swept by expiry
func (m *Metrics) DrinksExpired(n int) {
	if m == nil || n == 0 {
		return
	}
	m.drinksExpired.Add(float64(n))
	m.liveDrinks.Sub(float64(n))
}

// DrinksCollected records n drinks picked up
func (m *Metrics) DrinksCollected(n int) {
	if m == nil || n == 0 {
		return
	}
	m.drinksCollected.Add(float64(n))
	m.liveDrinks.Sub(float64(n))
}

// DrinksDiscarded drops n live drinks when a session's engine is released
func (m *Metrics) DrinksDiscarded(n int) {
	if m == nil || n == 0 {
		return
	}
	m.liveDrinks.Sub(float64(n))
}

// AchievementUnlocked counts one unlock
func (m *Metrics) AchievementUnlocked(category models.AchievementCategory) {
	if m == nil {
		return
	}
	m.achievements.WithLabelValues(string(category)).Inc()
}

// PersistFailed counts one failed profile write
func (m *Metrics) PersistFailed() {
	if m == nil {
		return
	}
	m.persistFailures.Inc()
}

// SessionStarted bumps the active session gauge
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// SessionEnded lowers the active session gauge
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
