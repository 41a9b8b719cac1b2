package models

// AchievementCategory is the counter an achievement is keyed to
type AchievementCategory string

const (
	// AchievementCategoryBarVisits unlocks on the number of bar check-ins
	AchievementCategoryBarVisits AchievementCategory = "bar_visits"

	// AchievementCategoryDrinks unlocks on the all-time drink count
	AchievementCategoryDrinks AchievementCategory = "drinks_consumed"
)

// Achievement is a static threshold achievement definition
type Achievement struct {
	ID          string
	Name        string
	Description string
	Threshold   int
	Category    AchievementCategory
}
