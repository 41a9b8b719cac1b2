package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/KirkDiggler/tipsytrek/internal/services/messaging"
	"github.com/KirkDiggler/tipsytrek/internal/services/trek"
	"github.com/bwmarrin/discordgo"
)

// maxEmbedListLines keeps list fields under Discord's field length limit
const maxEmbedListLines = 20

// beverageColor converts a packed ARGB beverage color into an embed color
func beverageColor(b models.Beverage) int {
	r, g, bl, _ := b.RGBA()
	return int(r)<<16 | int(g)<<8 | int(bl)
}

func renderStart(output *trek.StartSessionOutput) *discordgo.MessageEmbed {
	p := output.Profile

	if output.AlreadyStarted {
		return &discordgo.MessageEmbed{
			Title:       "Already on a trek",
			Description: "Your trek is still running. Use `/tipsy locate` to move around.",
			Color:       colorInfo,
		}
	}

	description := fmt.Sprintf("**%s** hit the streets. Drinks will start appearing around you.", p.DisplayName)
	if output.Restored {
		description += fmt.Sprintf("\nWelcome back! You've had %d drinks all time.", p.DrinkCount())
	}
	if output.Offline {
		description += "\nYour saved stats could not be loaded, so this trek won't be saved."
	}

	return &discordgo.MessageEmbed{
		Title:       "🍻 Trek started",
		Description: description,
		Color:       colorSuccess,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Send /tipsy locate lat long to move",
		},
	}
}

func renderEnd(output *trek.EndSessionOutput) *discordgo.MessageEmbed {
	p := output.Profile

	return &discordgo.MessageEmbed{
		Title:       "🛌 Trek over",
		Description: fmt.Sprintf("**%s** called it a night.", p.DisplayName),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Drinks this session",
				Value:  fmt.Sprintf("%d", p.SessionDrinkCount()),
				Inline: true,
			},
			{
				Name:   "BAC",
				Value:  p.FormattedBAC(),
				Inline: true,
			},
			{
				Name:   "Duration",
				Value:  output.Duration.Round(time.Second).String(),
				Inline: true,
			},
		},
	}
}

func renderLocate(output *trek.UpdateLocationOutput) *discordgo.MessageEmbed {
	nearby := "Nothing within reach yet."
	switch output.NearbyDrinks {
	case 0:
	case 1:
		nearby = "There's a drink within reach!"
	default:
		nearby = fmt.Sprintf("There are %d drinks within reach!", output.NearbyDrinks)
	}

	return &discordgo.MessageEmbed{
		Title:       "📍 Location updated",
		Description: fmt.Sprintf("%.6f, %.6f\n%s", output.Location.Latitude, output.Location.Longitude, nearby),
		Color:       colorInfo,
	}
}

func renderStatus(output *trek.GetStatusOutput, comment string) *discordgo.MessageEmbed {
	p := output.Profile

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "BAC",
			Value:  output.FormattedBAC,
			Inline: true,
		},
		{
			Name:   "Session drinks",
			Value:  fmt.Sprintf("%d", p.SessionDrinkCount()),
			Inline: true,
		},
		{
			Name:   "All time",
			Value:  fmt.Sprintf("%d drinks, %d bars", p.DrinkCount(), p.BarVisitCount),
			Inline: true,
		},
		{
			Name:   "Drinks on the map",
			Value:  fmt.Sprintf("%d", len(output.LiveDrinks)),
			Inline: true,
		},
	}

	if len(p.CurrentDrinks) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Tonight's drinks",
			Value: listLines(beverageNames(p.CurrentDrinks)),
		})
	}

	if len(output.Achievements) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Achievements",
			Value: strings.Join(output.Achievements, ", "),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s (%s)", p.DisplayName, p.Username),
		Description: comment,
		Color:       colorInfo,
		Fields:      fields,
	}

	if !output.StartedAt.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Trekking since " + output.StartedAt.UTC().Format(time.Kitchen) + " UTC",
		}
	}

	return embed
}

func renderReset(output *trek.ResetDrinksOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🧊 Fresh start",
		Description: fmt.Sprintf("**%s** cleared tonight's tab. All-time drinks: %d.", output.Profile.DisplayName, output.Profile.DrinkCount()),
		Color:       colorInfo,
	}
}

func renderConsumed(output *trek.ConsumeDrinkOutput, msg *messaging.GetDrinkCollectedMessageOutput) *discordgo.MessageEmbed {
	embed := renderDrink(output.Beverage, output.Profile, msg)
	addUnlockedField(embed, output.Unlocked)
	return embed
}

// renderDrink renders a drink credited to a profile
func renderDrink(b models.Beverage, p models.Profile, msg *messaging.GetDrinkCollectedMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       beverageColor(b),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Drink",
				Value:  fmt.Sprintf("%s (%.2f std)", b.Name, b.StandardDrinks),
				Inline: true,
			},
			{
				Name:   "BAC",
				Value:  p.FormattedBAC(),
				Inline: true,
			},
		},
	}
}

func renderCheckIn(output *trek.CheckInOutput, message string) *discordgo.MessageEmbed {
	if message == "" {
		message = fmt.Sprintf("**%s** checked in at **%s**.", output.Profile.DisplayName, output.Visit.BarName)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏁 " + output.Visit.BarName,
		Description: message,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Bars visited",
				Value:  fmt.Sprintf("%d", output.Profile.BarVisitCount),
				Inline: true,
			},
			{
				Name:   "Distance",
				Value:  fmt.Sprintf("%.0f m", output.DistanceMeters),
				Inline: true,
			},
		},
	}
	addUnlockedField(embed, output.Unlocked)
	return embed
}

func addUnlockedField(embed *discordgo.MessageEmbed, unlocked []models.Achievement) {
	if len(unlocked) == 0 {
		return
	}

	names := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		names = append(names, "🏆 "+a.Name)
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Unlocked",
		Value: strings.Join(names, "\n"),
	})
}

func renderAchievementUnlocked(msg *messaging.GetAchievementMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorGold,
	}
}

func renderAchievements(output *trek.GetAchievementsOutput) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(output.Achievements))
	unlocked := 0
	for _, status := range output.Achievements {
		a := status.Achievement
		if status.Unlocked {
			unlocked++
			lines = append(lines, fmt.Sprintf("🏆 **%s** %s", a.Name, a.Description))
			continue
		}
		progress := status.Progress
		if progress > a.Threshold {
			progress = a.Threshold
		}
		lines = append(lines, fmt.Sprintf("🔒 **%s** %s (%d/%d)", a.Name, a.Description, progress, a.Threshold))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Achievements (%d/%d)", unlocked, len(output.Achievements)),
		Description: strings.Join(lines, "\n"),
		Color:       colorGold,
	}
}

func renderBars(bars []models.Bar) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(bars))
	for _, bar := range bars {
		lines = append(lines, fmt.Sprintf("**%s** (%.4f, %.4f)", bar.Name, bar.Latitude, bar.Longitude))
	}

	return &discordgo.MessageEmbed{
		Title:       "🗺️ Bars",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
	}
}

func renderVisits(visits []*models.BarVisit) *discordgo.MessageEmbed {
	if len(visits) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Bar visits",
			Description: "No check-ins yet. Find a bar and use `/tipsy checkin`.",
			Color:       colorInfo,
		}
	}

	// Newest first
	lines := make([]string, 0, len(visits))
	for i := len(visits) - 1; i >= 0; i-- {
		v := visits[i]
		lines = append(lines, fmt.Sprintf("<t:%d:f> **%s**", v.Timestamp.Unix(), v.BarName))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Bar visits (%d)", len(visits)),
		Description: listLines(lines),
		Color:       colorInfo,
	}
}

func beverageNames(drinks []models.Beverage) []string {
	names := make([]string, 0, len(drinks))
	for _, d := range drinks {
		names = append(names, d.Name)
	}
	return names
}

// listLines joins lines, collapsing anything past maxEmbedListLines
func listLines(lines []string) string {
	if len(lines) <= maxEmbedListLines {
		return strings.Join(lines, "\n")
	}

	kept := append([]string{}, lines[:maxEmbedListLines]...)
	kept = append(kept, fmt.Sprintf("...and %d more", len(lines)-maxEmbedListLines))
	return strings.Join(kept, "\n")
}
