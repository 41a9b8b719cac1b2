package messaging

import (
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneConcerned is used once the player is well past tipsy
	ToneConcerned MessageTone = "concerned"
)

// BACLevel buckets a BAC value for messaging
type BACLevel string

const (
	BACLevelSober  BACLevel = "sober"
	BACLevelBuzzed BACLevel = "buzzed"
	BACLevelTipsy  BACLevel = "tipsy"
	BACLevelDrunk  BACLevel = "drunk"
	BACLevelWasted BACLevel = "wasted"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeSessionNotFound   = "session_not_found"
	ErrorTypeNotAtBar          = "not_at_bar"
	ErrorTypeBarNotFound       = "bar_not_found"
	ErrorTypeBeverageNotFound  = "beverage_not_found"
	ErrorTypeRateLimited       = "rate_limited"
	ErrorTypeInvalidCoordinate = "invalid_coordinate"
)

// GetDrinkCollectedMessageInput contains parameters for a collected drink message
type GetDrinkCollectedMessageInput struct {
	// PlayerName is the display name of the collector
	PlayerName string

	// Beverage is what was picked up
	Beverage models.Beverage

	// SessionDrinkCount is the session total including this drink
	SessionDrinkCount int

	// BAC is the estimate after this drink
	BAC float64
}

// GetDrinkCollectedMessageOutput contains the collected drink message
type GetDrinkCollectedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetAchievementMessageInput contains parameters for an achievement message
type GetAchievementMessageInput struct {
	PlayerName  string
	Achievement models.Achievement
}

// GetAchievementMessageOutput contains the achievement message
type GetAchievementMessageOutput struct {
	Title   string
	Message string
}

// GetBACStatusMessageInput contains parameters for a BAC comment
type GetBACStatusMessageInput struct {
	PlayerName        string
	BAC               float64
	SessionDrinkCount int
}

// GetBACStatusMessageOutput contains the BAC comment
type GetBACStatusMessageOutput struct {
	Level   BACLevel
	Message string
	Tone    MessageTone
}

// GetCheckInMessageInput contains parameters for a check-in message
type GetCheckInMessageInput struct {
	PlayerName string
	BarName    string

	// VisitCount is the all-time number of check-ins including this one
	VisitCount int
}

// GetCheckInMessageOutput contains the check-in message
type GetCheckInMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is one of the ErrorType constants
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks between message variants; nil means a time-seeded roller
	Roller dice.Roller
}
