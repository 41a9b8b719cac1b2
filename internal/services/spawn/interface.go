package spawn

import "github.com/KirkDiggler/tipsytrek/internal/models"

// Service owns the live set of drinks on the map for one player.
//
// Tick and CollectNearby are serialized internally; callers never see a
// live handle to the set, only copies.
type Service interface {
	// Tick sweeps expired drinks and spawns a new batch when the interval has elapsed
	Tick(input *TickInput) *TickOutput

	// CollectNearby removes and returns every live drink within range of the player
	CollectNearby(input *CollectNearbyInput) *CollectNearbyOutput

	// Snapshot returns a copy of the live set
	Snapshot() []models.LocatedDrink

	// Subscribe returns a replace-on-write feed of live set snapshots
	Subscribe() *Subscription

	// Close drops the live set and closes every subscription
	Close()
}
