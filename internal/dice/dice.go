package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/tipsytrek/internal/dice Roller

// Roller is the source of randomness for spawn placement and beverage picks
type Roller interface {
	// Intn returns a uniform value in [0, n). n <= 0 yields 0.
	Intn(n int) int

	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller wraps a seeded math/rand source. rand.Rand is not safe for
// concurrent use, and one roller is shared by every session.
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn picks a uniform index
func (r *roller) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 picks a uniform fraction
func (r *roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}
