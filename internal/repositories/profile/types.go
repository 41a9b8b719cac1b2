package profile

import "github.com/KirkDiggler/tipsytrek/internal/models"

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// DeleteProfileInput contains parameters for deleting a profile
type DeleteProfileInput struct {
	UserID string
}
