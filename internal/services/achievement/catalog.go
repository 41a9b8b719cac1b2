package achievement

import "github.com/KirkDiggler/tipsytrek/internal/models"

// barVisitAchievements are ordered by threshold
var barVisitAchievements = []models.Achievement{
	{
		ID:          "bar_1",
		Name:        "First Bar!",
		Description: "Visit your first bar.",
		Threshold:   1,
		Category:    models.AchievementCategoryBarVisits,
	},
	{
		ID:          "bar_3",
		Name:        "Bar Hopper",
		Description: "Visit 3 different bars.",
		Threshold:   3,
		Category:    models.AchievementCategoryBarVisits,
	},
	{
		ID:          "bar_5",
		Name:        "Neighborhood Legend",
		Description: "Visit 5 different bars.",
		Threshold:   5,
		Category:    models.AchievementCategoryBarVisits,
	},
	{
		ID:          "bar_10",
		Name:        "Madison Nightlife Master",
		Description: "Visit 10 bars.",
		Threshold:   10,
		Category:    models.AchievementCategoryBarVisits,
	},
}

// drinkAchievements are ordered by threshold
var drinkAchievements = []models.Achievement{
	{
		ID:          "drink_2",
		Name:        "Getting Started",
		Description: "Consumed 2 drinks.",
		Threshold:   2,
		Category:    models.AchievementCategoryDrinks,
	},
	{
		ID:          "drink_5",
		Name:        "Feeling Buzzed",
		Description: "Consumed 5 drinks.",
		Threshold:   5,
		Category:    models.AchievementCategoryDrinks,
	},
	{
		ID:          "drink_10",
		Name:        "Party Professional",
		Description: "Consumed 10 drinks.",
		Threshold:   10,
		Category:    models.AchievementCategoryDrinks,
	},
	{
		ID:          "drink_20",
		Name:        "Tipsy Trek Champion",
		Description: "Consumed 20 drinks.",
		Threshold:   20,
		Category:    models.AchievementCategoryDrinks,
	},
}

// BarVisitAchievements returns the bar-visit definitions
func BarVisitAchievements() []models.Achievement {
	return clone(barVisitAchievements)
}

// DrinkAchievements returns the drink-count definitions
func DrinkAchievements() []models.Achievement {
	return clone(drinkAchievements)
}

// All returns every definition, bar visits first
func All() []models.Achievement {
	out := clone(barVisitAchievements)
	return append(out, drinkAchievements...)
}

func clone(in []models.Achievement) []models.Achievement {
	out := make([]models.Achievement, len(in))
	copy(out, in)
	return out
}
