package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineSamePoint(t *testing.T) {
	p := Point{Latitude: 43.0731, Longitude: -89.4012}

	assert.Equal(t, 0.0, HaversineMeters(p, p))
	assert.True(t, Within(p, p, 0))
}

func TestHaversineKnownDistance(t *testing.T) {
	// one degree of latitude along a meridian
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 1, Longitude: 0}

	assert.InDelta(t, DegreesToMeters(1), HaversineMeters(a, b), 1e-6)
	assert.InDelta(t, 111195.08, HaversineMeters(a, b), 0.5)
}

func TestHaversineSymmetric(t *testing.T) {
	a := Point{Latitude: 43.0733606, Longitude: -89.3959882}
	b := Point{Latitude: 43.0730465, Longitude: -89.4092222}

	assert.InDelta(t, HaversineMeters(a, b), HaversineMeters(b, a), 1e-9)
	// Wando's to the Library Cafe is roughly a kilometer
	assert.InDelta(t, 1075, HaversineMeters(a, b), 25)
}

func TestArcSeconds(t *testing.T) {
	assert.InDelta(t, 30.0/3600.0, ArcSeconds(30), 1e-15)
	assert.InDelta(t, 926.6, DegreesToMeters(ArcSeconds(30)), 0.1)
}

func TestWithinRadius(t *testing.T) {
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: ArcSeconds(1), Longitude: 0}

	assert.True(t, Within(a, b, 31))
	assert.False(t, Within(a, b, 30))
}
