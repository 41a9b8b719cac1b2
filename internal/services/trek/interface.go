package trek

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tipsytrek/internal/services/trek Service
//go:generate mockgen -package=trek -destination=mock_notifier_test.go github.com/KirkDiggler/tipsytrek/internal/services/trek Notifier

import "context"

// Service defines the interface for trek operations. Each user has at most
// one running session; the session owns that user's spawn engine, profile
// holder and tracker loop.
type Service interface {
	// StartSession hydrates the user's profile and starts tracking
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// EndSession stops tracking and flushes the profile
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// UpdateLocation records a new location sample
	UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*UpdateLocationOutput, error)

	// GetStatus returns the profile, BAC and live drinks of a running session
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// ResetDrinks clears the current session's drinks
	ResetDrinks(ctx context.Context, input *ResetDrinksInput) (*ResetDrinksOutput, error)

	// ConsumeDrink adds a drink by beverage name
	ConsumeDrink(ctx context.Context, input *ConsumeDrinkInput) (*ConsumeDrinkOutput, error)

	// CheckIn records a visit to a bar the user is standing at
	CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error)

	// GetAchievements lists every achievement with its unlocked state
	GetAchievements(ctx context.Context, input *GetAchievementsInput) (*GetAchievementsOutput, error)

	// GetVisits lists the user's bar visits
	GetVisits(ctx context.Context, input *GetVisitsInput) (*GetVisitsOutput, error)

	// Shutdown ends every running session
	Shutdown(ctx context.Context) error
}

// Notifier receives events from running sessions
type Notifier interface {
	// DrinkCollected is called once per drink picked up by the tracker
	DrinkCollected(ctx context.Context, event *DrinkCollectedEvent)

	// AchievementUnlocked is called once per newly crossed threshold
	AchievementUnlocked(ctx context.Context, event *AchievementUnlockedEvent)
}
