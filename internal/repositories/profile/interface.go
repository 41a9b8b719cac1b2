package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tipsytrek/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/tipsytrek/internal/models"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// SaveProfile persists a profile snapshot, replacing any previous one
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by user ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// DeleteProfile removes a stored profile
	DeleteProfile(ctx context.Context, input *DeleteProfileInput) error
}
