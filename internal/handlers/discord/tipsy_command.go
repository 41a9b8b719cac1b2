package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/catalog"
	"github.com/KirkDiggler/tipsytrek/internal/services/messaging"
	"github.com/KirkDiggler/tipsytrek/internal/services/trek"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Subcommands of /tipsy
const (
	SubcommandStart        = "start"
	SubcommandStop         = "stop"
	SubcommandLocate       = "locate"
	SubcommandStats        = "stats"
	SubcommandReset        = "reset"
	SubcommandDrink        = "drink"
	SubcommandCheckIn      = "checkin"
	SubcommandAchievements = "achievements"
	SubcommandBars         = "bars"
	SubcommandVisits       = "visits"
)

const commandTimeout = 5 * time.Second

// TipsyCommandConfig holds the dependencies of the /tipsy command
type TipsyCommandConfig struct {
	TrekService      trek.Service
	MessagingService messaging.Service

	// LocationUpdatesPerSecond limits locate samples per user; zero means unlimited
	LocationUpdatesPerSecond float64
	LocationBurst            int
}

// TipsyCommand handles the /tipsy command
type TipsyCommand struct {
	BaseCommand
	trekService      trek.Service
	messagingService messaging.Service
	locateLimiter    *userLimiter
}

// Request is a parsed /tipsy interaction
type Request struct {
	UserID      string
	DisplayName string
	ChannelID   string
	Subcommand  string

	// Subcommand options
	Latitude  float64
	Longitude float64
	Beverage  string
	Bar       string
	Limit     int
}

// NewTipsyCommand creates a new /tipsy command handler
func NewTipsyCommand(cfg *TipsyCommandConfig) (*TipsyCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TrekService == nil {
		return nil, errors.New("trek service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	barChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(catalog.Bars()))
	for _, bar := range catalog.Bars() {
		barChoices = append(barChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  bar.Name,
			Value: bar.Name,
		})
	}

	minLimit := 1.0

	return &TipsyCommand{
		BaseCommand: BaseCommand{
			Name:        "tipsy",
			Description: "Walk around, collect drinks, and check in at bars",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStart,
					Description: "Start a trek in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStop,
					Description: "End your trek",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLocate,
					Description: "Tell the map where you are",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "lat",
							Description: "Latitude in degrees",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "long",
							Description: "Longitude in degrees",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStats,
					Description: "Show your drinks and BAC",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReset,
					Description: "Clear the drinks of your current session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDrink,
					Description: "Log a drink by hand",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "beverage",
							Description: "What you're drinking",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCheckIn,
					Description: "Check in at the bar you're standing in",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "bar",
							Description: "The bar",
							Required:    true,
							Choices:     barChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAchievements,
					Description: "Show your achievements",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBars,
					Description: "List the bars on the map",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandVisits,
					Description: "Show your recent bar check-ins",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many visits to show",
							MinValue:    &minLimit,
						},
					},
				},
			},
		},
		trekService:      cfg.TrekService,
		messagingService: cfg.MessagingService,
		locateLimiter:    newUserLimiter(cfg.LocationUpdatesPerSecond, cfg.LocationBurst),
	}, nil
}

// Handle processes a /tipsy interaction
func (c *TipsyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	req := newRequest(i)

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondWithError(s, i, "Missing subcommand")
	}
	parseSubcommand(req, options[0])

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return Respond(s, i, c.Execute(ctx, req))
}

// newRequest pulls the caller's identity out of an interaction
func newRequest(i *discordgo.InteractionCreate) *Request {
	req := &Request{ChannelID: i.ChannelID}

	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
		req.DisplayName = i.Member.Nick
	}

	if user != nil {
		req.UserID = user.ID
		if req.DisplayName == "" {
			req.DisplayName = user.GlobalName
		}
		if req.DisplayName == "" {
			req.DisplayName = user.Username
		}
	}

	return req
}

func parseSubcommand(req *Request, sub *discordgo.ApplicationCommandInteractionDataOption) {
	req.Subcommand = sub.Name

	for _, opt := range sub.Options {
		switch opt.Name {
		case "lat":
			req.Latitude = opt.FloatValue()
		case "long":
			req.Longitude = opt.FloatValue()
		case "beverage":
			req.Beverage = opt.StringValue()
		case "bar":
			req.Bar = opt.StringValue()
		case "limit":
			req.Limit = int(opt.IntValue())
		}
	}
}

// Execute runs a parsed request and builds the response
func (c *TipsyCommand) Execute(ctx context.Context, req *Request) *Response {
	if req.UserID == "" {
		return &Response{Embed: errorEmbed("Could not identify you"), Ephemeral: true}
	}

	switch req.Subcommand {
	case SubcommandStart:
		return c.start(ctx, req)
	case SubcommandStop:
		return c.stop(ctx, req)
	case SubcommandLocate:
		return c.locate(ctx, req)
	case SubcommandStats:
		return c.stats(ctx, req)
	case SubcommandReset:
		return c.reset(ctx, req)
	case SubcommandDrink:
		return c.drink(ctx, req)
	case SubcommandCheckIn:
		return c.checkIn(ctx, req)
	case SubcommandAchievements:
		return c.achievements(ctx, req)
	case SubcommandBars:
		return &Response{Embed: renderBars(catalog.Bars()), Ephemeral: true}
	case SubcommandVisits:
		return c.visits(ctx, req)
	default:
		return &Response{Embed: errorEmbed(fmt.Sprintf("Unknown subcommand: %s", req.Subcommand)), Ephemeral: true}
	}
}

func (c *TipsyCommand) start(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.StartSession(ctx, &trek.StartSessionInput{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		ChannelID:   req.ChannelID,
	})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	if !output.AlreadyStarted {
		// A fresh trek starts with a full locate bucket
		c.locateLimiter.Forget(req.UserID)
	}

	return &Response{Embed: renderStart(output), Ephemeral: output.AlreadyStarted}
}

func (c *TipsyCommand) stop(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.EndSession(ctx, &trek.EndSessionInput{UserID: req.UserID})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	c.locateLimiter.Forget(req.UserID)

	return &Response{Embed: renderEnd(output)}
}

func (c *TipsyCommand) locate(ctx context.Context, req *Request) *Response {
	if !c.locateLimiter.Allow(req.UserID) {
		return c.errorTypeResponse(ctx, messaging.ErrorTypeRateLimited)
	}

	output, err := c.trekService.UpdateLocation(ctx, &trek.UpdateLocationInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	// Coordinates stay between the user and the bot
	return &Response{Embed: renderLocate(output), Ephemeral: true}
}

func (c *TipsyCommand) stats(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.GetStatus(ctx, &trek.GetStatusInput{UserID: req.UserID})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	comment := ""
	bacMsg, err := c.messagingService.GetBACStatusMessage(ctx, &messaging.GetBACStatusMessageInput{
		PlayerName:        output.Profile.DisplayName,
		BAC:               output.BAC,
		SessionDrinkCount: output.Profile.SessionDrinkCount(),
	})
	if err != nil {
		logrus.WithField("user_id", req.UserID).WithError(err).Warn("Failed to get BAC status message")
	} else {
		comment = bacMsg.Message
	}

	return &Response{
		Embed: renderStatus(output, comment),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Refresh",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonRefreshStats + req.UserID,
						Emoji: &discordgo.ComponentEmoji{
							Name: "🔄",
						},
					},
				},
			},
		},
	}
}

func (c *TipsyCommand) reset(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.ResetDrinks(ctx, &trek.ResetDrinksInput{UserID: req.UserID})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	return &Response{Embed: renderReset(output)}
}

func (c *TipsyCommand) drink(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.ConsumeDrink(ctx, &trek.ConsumeDrinkInput{
		UserID:       req.UserID,
		BeverageName: req.Beverage,
	})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	msg, err := c.messagingService.GetDrinkCollectedMessage(ctx, &messaging.GetDrinkCollectedMessageInput{
		PlayerName:        output.Profile.DisplayName,
		Beverage:          output.Beverage,
		SessionDrinkCount: output.Profile.SessionDrinkCount(),
		BAC:               output.Profile.BAC(),
	})
	if err != nil {
		logrus.WithField("user_id", req.UserID).WithError(err).Warn("Failed to get drink message")
		msg = &messaging.GetDrinkCollectedMessageOutput{
			Title:   output.Beverage.Name,
			Message: fmt.Sprintf("%s had a %s.", output.Profile.DisplayName, output.Beverage.Name),
		}
	}

	return &Response{Embed: renderConsumed(output, msg)}
}

func (c *TipsyCommand) checkIn(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.CheckIn(ctx, &trek.CheckInInput{
		UserID:  req.UserID,
		BarName: req.Bar,
	})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	message := ""
	msg, err := c.messagingService.GetCheckInMessage(ctx, &messaging.GetCheckInMessageInput{
		PlayerName: output.Profile.DisplayName,
		BarName:    output.Visit.BarName,
		VisitCount: output.Profile.BarVisitCount,
	})
	if err != nil {
		logrus.WithField("user_id", req.UserID).WithError(err).Warn("Failed to get check-in message")
	} else {
		message = msg.Message
	}

	return &Response{Embed: renderCheckIn(output, message)}
}

func (c *TipsyCommand) achievements(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.GetAchievements(ctx, &trek.GetAchievementsInput{UserID: req.UserID})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	return &Response{Embed: renderAchievements(output), Ephemeral: true}
}

func (c *TipsyCommand) visits(ctx context.Context, req *Request) *Response {
	output, err := c.trekService.GetVisits(ctx, &trek.GetVisitsInput{
		UserID: req.UserID,
		Limit:  req.Limit,
	})
	if err != nil {
		return c.errorResponse(ctx, req, err)
	}

	return &Response{Embed: renderVisits(output.Visits), Ephemeral: true}
}

// errorResponse turns a service error into a friendly ephemeral reply
func (c *TipsyCommand) errorResponse(ctx context.Context, req *Request, err error) *Response {
	errorType := errorTypeFor(err)
	if errorType == "" {
		logrus.WithFields(logrus.Fields{
			"user_id":    req.UserID,
			"subcommand": req.Subcommand,
		}).WithError(err).Error("Command failed")
	}

	return c.errorTypeResponse(ctx, errorType)
}

func (c *TipsyCommand) errorTypeResponse(ctx context.Context, errorType string) *Response {
	msg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if err != nil {
		logrus.WithError(err).Warn("Failed to get error message")
		return &Response{Embed: errorEmbed("Something went wrong"), Ephemeral: true}
	}

	return &Response{Embed: errorEmbed(msg.Message), Ephemeral: true}
}

func errorTypeFor(err error) string {
	switch {
	case errors.Is(err, trek.ErrSessionNotFound):
		return messaging.ErrorTypeSessionNotFound
	case errors.Is(err, trek.ErrNotAtBar):
		return messaging.ErrorTypeNotAtBar
	case errors.Is(err, trek.ErrBarNotFound):
		return messaging.ErrorTypeBarNotFound
	case errors.Is(err, trek.ErrBeverageNotFound):
		return messaging.ErrorTypeBeverageNotFound
	case errors.Is(err, trek.ErrInvalidCoordinate):
		return messaging.ErrorTypeInvalidCoordinate
	default:
		return ""
	}
}
