package discord

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/tipsytrek/internal/catalog"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/KirkDiggler/tipsytrek/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/tipsytrek/internal/services/messaging/mocks"
	"github.com/KirkDiggler/tipsytrek/internal/services/trek"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
	options   int
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentEmbed
	err  error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmbed{channelID: channelID, embed: embed, options: len(options)})
	if f.err != nil {
		return nil, f.err
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

type NotifierTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMessaging *messagingMocks.MockService
	sender        *fakeSender
	notifier      *Notifier
	ctx           context.Context

	testChannelID string
	testBeverage  models.Beverage
}

func (s *NotifierTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.sender = &fakeSender{}
	s.ctx = context.Background()
	s.testChannelID = "test-channel-id"

	var ok bool
	s.testBeverage, ok = catalog.BeverageByName("Spotted Cow")
	s.Require().True(ok)

	var err error
	s.notifier, err = NewNotifier(&NotifierConfig{
		Sender:           s.sender,
		MessagingService: s.mockMessaging,
	})
	s.Require().NoError(err)
}

func (s *NotifierTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *NotifierTestSuite) drinkEvent() *trek.DrinkCollectedEvent {
	p := models.NewProfileForIdentity("test-user-id", "trekker@example.com", "Trekker").AddDrink(s.testBeverage)
	return &trek.DrinkCollectedEvent{
		UserID:    "test-user-id",
		ChannelID: s.testChannelID,
		Drink:     models.LocatedDrink{ID: "drink-1", Beverage: s.testBeverage},
		Profile:   p,
	}
}

func (s *NotifierTestSuite) TestNewNotifierValidation() {
	_, err := NewNotifier(nil)
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{MessagingService: s.mockMessaging})
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{Sender: s.sender})
	s.Error(err)
}

func (s *NotifierTestSuite) TestDrinkCollected() {
	event := s.drinkEvent()

	s.mockMessaging.EXPECT().
		GetDrinkCollectedMessage(s.ctx, &messaging.GetDrinkCollectedMessageInput{
			PlayerName:        event.Profile.DisplayName,
			Beverage:          s.testBeverage,
			SessionDrinkCount: 1,
			BAC:               event.Profile.BAC(),
		}).
		Return(&messaging.GetDrinkCollectedMessageOutput{Title: "Moo", Message: "a cow appears"}, nil)

	s.notifier.DrinkCollected(s.ctx, event)

	s.Require().Len(s.sender.sent, 1)
	s.Equal(s.testChannelID, s.sender.sent[0].channelID)
	s.Equal("Moo", s.sender.sent[0].embed.Title)
	s.Equal(beverageColor(s.testBeverage), s.sender.sent[0].embed.Color)
	// The caller's context rides along so a stopped session aborts the send
	s.Equal(1, s.sender.sent[0].options)
}

func (s *NotifierTestSuite) TestDrinkCollectedMessageFailureStillSends() {
	s.mockMessaging.EXPECT().
		GetDrinkCollectedMessage(s.ctx, gomock.Any()).
		Return(nil, errors.New("no words"))

	s.notifier.DrinkCollected(s.ctx, s.drinkEvent())

	s.Require().Len(s.sender.sent, 1)
	s.Contains(s.sender.sent[0].embed.Description, "Spotted Cow")
}

func (s *NotifierTestSuite) TestDrinkCollectedWithoutChannel() {
	event := s.drinkEvent()
	event.ChannelID = ""

	s.notifier.DrinkCollected(s.ctx, event)

	s.Empty(s.sender.sent)
}

func (s *NotifierTestSuite) TestSendFailureIsSwallowed() {
	s.sender.err = errors.New("discord down")
	s.mockMessaging.EXPECT().
		GetDrinkCollectedMessage(s.ctx, gomock.Any()).
		Return(&messaging.GetDrinkCollectedMessageOutput{Title: "Moo"}, nil)

	s.NotPanics(func() {
		s.notifier.DrinkCollected(s.ctx, s.drinkEvent())
	})
	s.Len(s.sender.sent, 1)
}

func (s *NotifierTestSuite) TestAchievementUnlocked() {
	first := models.Achievement{ID: "drinks_1", Name: "First Sip", Threshold: 1, Category: models.AchievementCategoryDrinks}

	s.mockMessaging.EXPECT().
		GetAchievementMessage(s.ctx, &messaging.GetAchievementMessageInput{
			PlayerName:  "Trekker",
			Achievement: first,
		}).
		Return(&messaging.GetAchievementMessageOutput{Title: "🏆 First Sip", Message: "and so it begins"}, nil)

	s.notifier.AchievementUnlocked(s.ctx, &trek.AchievementUnlockedEvent{
		UserID:      "test-user-id",
		ChannelID:   s.testChannelID,
		DisplayName: "Trekker",
		Achievement: first,
	})

	s.Require().Len(s.sender.sent, 1)
	s.Equal("🏆 First Sip", s.sender.sent[0].embed.Title)
	s.Equal(colorGold, s.sender.sent[0].embed.Color)
}

func (s *NotifierTestSuite) TestAchievementUnlockedNilEvent() {
	s.notifier.AchievementUnlocked(s.ctx, nil)

	s.Empty(s.sender.sent)
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}
