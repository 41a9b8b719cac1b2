package achievement

import (
	"testing"

	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AchievementTestSuite struct {
	suite.Suite
}

func TestAchievementTestSuite(t *testing.T) {
	suite.Run(t, new(AchievementTestSuite))
}

func (s *AchievementTestSuite) TestNothingUnlockedAtZero() {
	s.Empty(UnlockedForBarVisits(0))
	s.Empty(UnlockedForDrinks(0))
	s.Empty(NamesUnlocked(0, 0))
}

func (s *AchievementTestSuite) TestFirstBar() {
	s.Equal([]string{"First Bar!"}, NewlyUnlocked(0, 0, 1, 0))
}

func (s *AchievementTestSuite) TestBarHopper() {
	s.Equal([]string{"Bar Hopper"}, NewlyUnlocked(2, 0, 3, 0))
}

func (s *AchievementTestSuite) TestSkippingThresholds() {
	s.Equal([]string{"First Bar!", "Bar Hopper", "Neighborhood Legend"}, NewlyUnlocked(0, 0, 5, 0))
}

func (s *AchievementTestSuite) TestGettingStarted() {
	s.Equal([]string{"Getting Started"}, NewlyUnlocked(0, 1, 0, 2))
}

func (s *AchievementTestSuite) TestChampionOnly() {
	s.Equal([]string{"Tipsy Trek Champion"}, NewlyUnlocked(0, 19, 0, 20))
}

func (s *AchievementTestSuite) TestNoChangeNoUnlock() {
	s.Empty(NewlyUnlocked(4, 7, 4, 7))
	s.Empty(NewlyUnlocked(10, 20, 11, 25))
}

func (s *AchievementTestSuite) TestNamesUnlockedBothCategories() {
	s.Equal([]string{
		"First Bar!",
		"Bar Hopper",
		"Getting Started",
		"Feeling Buzzed",
		"Party Professional",
	}, NamesUnlocked(3, 12))
}

func (s *AchievementTestSuite) TestBetweenProfiles() {
	bev := models.Beverage{Name: "Spotted Cow", StandardDrinks: 0.96}
	before := models.NewProfile().AddDrink(bev)
	after := before.AddDrink(bev).IncrementBarVisit()

	got := Between(before, after)

	s.Require().Len(got, 2)
	s.Equal("bar_1", got[0].ID)
	s.Equal(models.AchievementCategoryBarVisits, got[0].Category)
	s.Equal("drink_2", got[1].ID)
	s.Equal(models.AchievementCategoryDrinks, got[1].Category)
	s.Equal([]string{"First Bar!", "Getting Started"}, ForProfile(after))
}

func (s *AchievementTestSuite) TestCatalogShape() {
	s.Len(BarVisitAchievements(), 4)
	s.Len(DrinkAchievements(), 4)
	s.Len(All(), 8)

	// callers cannot reach the package catalog
	defs := BarVisitAchievements()
	defs[0].Name = "changed"
	s.Equal("First Bar!", BarVisitAchievements()[0].Name)
}

func TestUnlockedIsMonotone(t *testing.T) {
	for a := 0; a <= 25; a++ {
		for b := a; b <= 25; b++ {
			assert.Subset(t, UnlockedForBarVisits(b), UnlockedForBarVisits(a), "bars %d <= %d", a, b)
			assert.Subset(t, UnlockedForDrinks(b), UnlockedForDrinks(a), "drinks %d <= %d", a, b)
		}
	}
}
