package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tipsytrek/internal/services/messaging"
	"github.com/KirkDiggler/tipsytrek/internal/services/trek"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// MessageSender posts embeds to a channel; *discordgo.Session satisfies it
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotifierConfig holds the dependencies of a Notifier
type NotifierConfig struct {
	Sender           MessageSender
	MessagingService messaging.Service
}

// Notifier reports session events to the channel the session started in
type Notifier struct {
	sender           MessageSender
	messagingService messaging.Service
}

// NewNotifier creates a channel notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Notifier{
		sender:           cfg.Sender,
		messagingService: cfg.MessagingService,
	}, nil
}

// DrinkCollected posts a message for a drink picked up off the map
func (n *Notifier) DrinkCollected(ctx context.Context, event *trek.DrinkCollectedEvent) {
	if event == nil || event.ChannelID == "" {
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"user_id":  event.UserID,
		"drink_id": event.Drink.ID,
	})

	msg, err := n.messagingService.GetDrinkCollectedMessage(ctx, &messaging.GetDrinkCollectedMessageInput{
		PlayerName:        event.Profile.DisplayName,
		Beverage:          event.Drink.Beverage,
		SessionDrinkCount: event.Profile.SessionDrinkCount(),
		BAC:               event.Profile.BAC(),
	})
	if err != nil {
		log.WithError(err).Warn("Failed to get drink collected message")
		msg = &messaging.GetDrinkCollectedMessageOutput{
			Title:   "🍺 Drink collected",
			Message: fmt.Sprintf("%s picked up a %s.", event.Profile.DisplayName, event.Drink.Beverage.Name),
		}
	}

	if _, err := n.sender.ChannelMessageSendEmbed(event.ChannelID, renderDrink(event.Drink.Beverage, event.Profile, msg), discordgo.WithContext(ctx)); err != nil {
		log.WithError(err).Error("Failed to send drink collected message")
	}
}

// AchievementUnlocked posts a message for a newly unlocked achievement
func (n *Notifier) AchievementUnlocked(ctx context.Context, event *trek.AchievementUnlockedEvent) {
	if event == nil || event.ChannelID == "" {
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"user_id":     event.UserID,
		"achievement": event.Achievement.ID,
	})

	msg, err := n.messagingService.GetAchievementMessage(ctx, &messaging.GetAchievementMessageInput{
		PlayerName:  event.DisplayName,
		Achievement: event.Achievement,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to get achievement message")
		msg = &messaging.GetAchievementMessageOutput{
			Title:   "🏆 " + event.Achievement.Name,
			Message: fmt.Sprintf("%s unlocked %s.", event.DisplayName, event.Achievement.Name),
		}
	}

	if _, err := n.sender.ChannelMessageSendEmbed(event.ChannelID, renderAchievementUnlocked(msg), discordgo.WithContext(ctx)); err != nil {
		log.WithError(err).Error("Failed to send achievement message")
	}
}
