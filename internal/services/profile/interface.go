package profile

import (
	"context"
)

// Service hydrates profiles and hands out holders that keep them persisted
type Service interface {
	// Load reads the stored profile for a user, falling back to a fresh one
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// NewHolder wraps a profile in a state holder with background persistence
	NewHolder(input *NewHolderInput) (*Holder, error)
}
