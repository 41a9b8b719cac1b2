// Package achievement maps monotone counters to unlocked threshold achievements.
//
// Nothing here holds state: the unlocked set is always recomputed from the
// profile counters, and "newly unlocked" is the difference between two
// evaluations the caller takes before and after a mutation.
package achievement

import "github.com/KirkDiggler/tipsytrek/internal/models"

// UnlockedForBarVisits returns the bar-visit achievements reached by count
func UnlockedForBarVisits(count int) []models.Achievement {
	return unlocked(barVisitAchievements, count)
}

// UnlockedForDrinks returns the drink achievements reached by count
func UnlockedForDrinks(count int) []models.Achievement {
	return unlocked(drinkAchievements, count)
}

// Unlocked returns every achievement reached by the two counters
func Unlocked(barCount, drinkCount int) []models.Achievement {
	out := UnlockedForBarVisits(barCount)
	return append(out, UnlockedForDrinks(drinkCount)...)
}

// NamesUnlocked returns the deduplicated display names of every unlocked achievement
func NamesUnlocked(barCount, drinkCount int) []string {
	return names(Unlocked(barCount, drinkCount))
}

// NewlyUnlocked returns the names unlocked by the after counters but not by
// the before counters, in catalog order
func NewlyUnlocked(beforeBarCount, beforeDrinkCount, afterBarCount, afterDrinkCount int) []string {
	return names(NewlyUnlockedAchievements(beforeBarCount, beforeDrinkCount, afterBarCount, afterDrinkCount))
}

// NewlyUnlockedAchievements is NewlyUnlocked returning the full definitions
func NewlyUnlockedAchievements(beforeBarCount, beforeDrinkCount, afterBarCount, afterDrinkCount int) []models.Achievement {
	before := make(map[string]struct{})
	for _, a := range Unlocked(beforeBarCount, beforeDrinkCount) {
		before[a.Name] = struct{}{}
	}

	var out []models.Achievement
	for _, a := range Unlocked(afterBarCount, afterDrinkCount) {
		if _, ok := before[a.Name]; ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ForProfile is NamesUnlocked over a profile's counters
func ForProfile(p models.Profile) []string {
	return NamesUnlocked(p.BarVisitCount, p.DrinkCount())
}

// Between diffs two profile snapshots
func Between(before, after models.Profile) []models.Achievement {
	return NewlyUnlockedAchievements(before.BarVisitCount, before.DrinkCount(), after.BarVisitCount, after.DrinkCount())
}

func unlocked(defs []models.Achievement, count int) []models.Achievement {
	out := []models.Achievement{}
	for _, a := range defs {
		if count >= a.Threshold {
			out = append(out, a)
		}
	}
	return out
}

func names(defs []models.Achievement) []string {
	seen := make(map[string]struct{}, len(defs))
	out := []string{}
	for _, a := range defs {
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		out = append(out, a.Name)
	}
	return out
}
