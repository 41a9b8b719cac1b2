package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tipsytrek/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetDrinkCollectedMessage returns a message for a drink picked up off the map
	GetDrinkCollectedMessage(ctx context.Context, input *GetDrinkCollectedMessageInput) (*GetDrinkCollectedMessageOutput, error)

	// GetAchievementMessage returns a message for a newly unlocked achievement
	GetAchievementMessage(ctx context.Context, input *GetAchievementMessageInput) (*GetAchievementMessageOutput, error)

	// GetBACStatusMessage returns a comment on the player's current BAC
	GetBACStatusMessage(ctx context.Context, input *GetBACStatusMessageInput) (*GetBACStatusMessageOutput, error)

	// GetCheckInMessage returns a message for a bar check-in
	GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
