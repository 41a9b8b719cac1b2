package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/models"
)

// BAC thresholds between levels
const (
	buzzedBAC = 0.0001
	tipsyBAC  = 0.05
	drunkBAC  = 0.08
	wastedBAC = 0.15
)

// service implements the Service interface
type service struct {
	// Random source for selecting message variants
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	var roller dice.Roller
	if config != nil {
		roller = config.Roller
	}
	if roller == nil {
		roller = dice.New(nil)
	}

	return &service{
		roller: roller,
	}, nil
}

// LevelForBAC buckets a BAC value
func LevelForBAC(bac float64) BACLevel {
	switch {
	case bac < buzzedBAC:
		return BACLevelSober
	case bac < tipsyBAC:
		return BACLevelBuzzed
	case bac < drunkBAC:
		return BACLevelTipsy
	case bac < wastedBAC:
		return BACLevelDrunk
	default:
		return BACLevelWasted
	}
}

// GetDrinkCollectedMessage returns a message for a drink picked up off the map
func (s *service) GetDrinkCollectedMessage(ctx context.Context, input *GetDrinkCollectedMessageInput) (*GetDrinkCollectedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.Beverage.Name
	titles := []string{
		"Cheers!",
		"Bottoms Up!",
		"Drink Acquired!",
		"Found One!",
	}

	var messages []string
	tone := ToneFunny

	switch {
	case input.SessionDrinkCount <= 1:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%s found a %s lying around. The night begins!", input.PlayerName, name),
			fmt.Sprintf("First one of the night: a %s for %s.", name, input.PlayerName),
			fmt.Sprintf("%s scooped up a %s. Pace yourself, champ.", input.PlayerName, name),
		}
	case LevelForBAC(input.BAC) == BACLevelWasted:
		tone = ToneConcerned
		messages = []string{
			fmt.Sprintf("%s grabbed another %s. Maybe grab a water next?", input.PlayerName, name),
			fmt.Sprintf("That's drink number %d for %s. Somebody call a cab.", input.SessionDrinkCount, input.PlayerName),
			fmt.Sprintf("A %s? At this point, %s? Bold.", name, input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s snagged a %s off the sidewalk. Finders keepers!", input.PlayerName, name),
			fmt.Sprintf("Another %s for %s. That's %d tonight.", name, input.PlayerName, input.SessionDrinkCount),
			fmt.Sprintf("%s just walked into a %s. Happens to the best of us.", input.PlayerName, name),
			fmt.Sprintf("The streets provide: one %s for %s.", name, input.PlayerName),
		}
	}

	return &GetDrinkCollectedMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetAchievementMessage returns a message for a newly unlocked achievement
func (s *service) GetAchievementMessage(ctx context.Context, input *GetAchievementMessageInput) (*GetAchievementMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	a := input.Achievement

	var messages []string
	switch a.Category {
	case models.AchievementCategoryBarVisits:
		messages = []string{
			fmt.Sprintf("%s unlocked **%s**! %s", input.PlayerName, a.Name, a.Description),
			fmt.Sprintf("The bouncers know %s by name now. **%s** unlocked.", input.PlayerName, a.Name),
			fmt.Sprintf("**%s**: %s has been getting around.", a.Name, input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s unlocked **%s**! %s", input.PlayerName, a.Name, a.Description),
			fmt.Sprintf("Raise a glass! %s earned **%s**.", input.PlayerName, a.Name),
			fmt.Sprintf("**%s** goes to %s. Your liver has been notified.", a.Name, input.PlayerName),
		}
	}

	return &GetAchievementMessageOutput{
		Title:   "Achievement Unlocked!",
		Message: s.pick(messages),
	}, nil
}

// GetBACStatusMessage returns a comment on the player's current BAC
func (s *service) GetBACStatusMessage(ctx context.Context, input *GetBACStatusMessageInput) (*GetBACStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	level := LevelForBAC(input.BAC)

	var messages []string
	var tone MessageTone

	switch level {
	case BACLevelSober:
		tone = ToneSarcastic
		messages = []string{
			"Stone cold sober. Go find some drinks!",
			"Not a drop yet. The map is full of them, you know.",
			"Sober as a judge. Boring!",
		}
	case BACLevelBuzzed:
		tone = ToneEncouraging
		messages = []string{
			"A light buzz. Nicely done.",
			"Warming up! Keep walking.",
			"Just enough to make the walk interesting.",
		}
	case BACLevelTipsy:
		tone = ToneFunny
		messages = []string{
			"Officially tipsy. The trek is going well.",
			"Getting wobbly! Hold on to something.",
			"Tipsy! This is the sweet spot.",
		}
	case BACLevelDrunk:
		tone = ToneFunny
		messages = []string{
			"You're drunk. Please don't drive.",
			"That's past the legal limit. Walk it off.",
			"Drunk! Maybe slow your roll.",
		}
	default:
		tone = ToneConcerned
		messages = []string{
			"Way past tipsy. Water, then bed.",
			"Time to call it a night and find a ride home.",
			"Your BAC is in the danger zone. Take care of yourself.",
		}
	}

	message := s.pick(messages)
	if input.PlayerName != "" {
		message = fmt.Sprintf("%s: %s", input.PlayerName, message)
	}

	return &GetBACStatusMessageOutput{
		Level:   level,
		Message: message,
		Tone:    tone,
	}, nil
}

// GetCheckInMessage returns a message for a bar check-in
func (s *service) GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	if input.VisitCount <= 1 {
		messages = []string{
			fmt.Sprintf("%s checked in at %s. First stop of many!", input.PlayerName, input.BarName),
			fmt.Sprintf("Welcome to %s, %s! Your bar crawl has begun.", input.BarName, input.PlayerName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s checked in at %s. That's bar #%d!", input.PlayerName, input.BarName, input.VisitCount),
			fmt.Sprintf("%s rolls into %s. Check-in number %d.", input.PlayerName, input.BarName, input.VisitCount),
			fmt.Sprintf("Back at it: %s is at %s (%d check-ins and counting).", input.PlayerName, input.BarName, input.VisitCount),
		}
	}

	return &GetCheckInMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeSessionNotFound:
		messages = []string{
			"You're not on a trek yet. Use `/tipsy start` to begin.",
			"No active trek. Lace up with `/tipsy start` first!",
		}
	case ErrorTypeNotAtBar:
		messages = []string{
			"Nice try, but you're not at that bar. Walk closer!",
			"The bartender doesn't see you. Get within shouting distance first.",
		}
	case ErrorTypeBarNotFound:
		messages = []string{
			"Never heard of that bar. Try `/tipsy bars` for the list.",
			"That bar isn't on the map. Check `/tipsy bars`.",
		}
	case ErrorTypeBeverageNotFound:
		messages = []string{
			"The bartender has never heard of that drink.",
			"That's not on the menu, friend.",
		}
	case ErrorTypeRateLimited:
		messages = []string{
			"Whoa, slow down! You're moving faster than your legs can carry you.",
			"Too many location updates. Take a breath and try again.",
		}
	case ErrorTypeInvalidCoordinate:
		messages = []string{
			"Those coordinates aren't on this planet.",
			"Latitude goes from -90 to 90 and longitude from -180 to 180. Try again.",
		}
	default:
		messages = []string{
			"Something went wrong. Maybe have a water and try again?",
			"Oops! That didn't work. Blame the tequila.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) pick(options []string) string {
	return options[s.roller.Intn(len(options))]
}
