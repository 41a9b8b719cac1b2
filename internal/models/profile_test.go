package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	halfDrink = Beverage{Name: "Half", Color: 0xfff8e28c, DrinkType: 1, StandardDrinks: 0.5}
	lager     = Beverage{Name: "Lager", Color: 0xfff7e88a, DrinkType: 1, StandardDrinks: 1.0}
	whiskey   = Beverage{Name: "Whiskey", Color: 0xffc58527, DrinkType: 1, StandardDrinks: 8.0}
)

func TestFreshProfileHasZeroBAC(t *testing.T) {
	p := NewProfile()

	assert.Equal(t, 0.0, p.BAC())
	assert.Equal(t, "0.00%", p.FormattedBAC())
	assert.False(t, p.IsAuthenticated())
	assert.Equal(t, PlaceholderDisplayName, p.DisplayName)
	assert.Equal(t, PlaceholderUsername, p.Username)
}

func TestAddDrinkTwiceHalfStandard(t *testing.T) {
	p := NewProfile().AddDrink(halfDrink).AddDrink(halfDrink)

	assert.InDelta(t, 0.02, p.BAC(), 1e-12)
	assert.Equal(t, "0.02%", p.FormattedBAC())
	assert.Equal(t, 2, p.DrinkCount())
	assert.Equal(t, 2, p.SessionDrinkCount())
}

func TestAddDrinkOrderIndependent(t *testing.T) {
	ab := NewProfile().AddDrink(lager).AddDrink(whiskey)
	ba := NewProfile().AddDrink(whiskey).AddDrink(lager)

	assert.Equal(t, ab.BAC(), ba.BAC())
	assert.Equal(t, ab.FormattedBAC(), ba.FormattedBAC())
}

func TestResetCurrentDrinks(t *testing.T) {
	p := NewProfile().AddDrink(lager).AddDrink(whiskey)

	reset := p.ResetCurrentDrinks()

	assert.Equal(t, 0.0, reset.BAC())
	assert.Equal(t, "0.00%", reset.FormattedBAC())
	assert.Empty(t, reset.CurrentDrinks)
	assert.Len(t, reset.AllTimeDrinks, 2)

	// the previous snapshot is untouched
	assert.Len(t, p.CurrentDrinks, 2)
}

func TestAllTimeNeverShorterThanSession(t *testing.T) {
	p := NewProfile()
	steps := []func(Profile) Profile{
		func(p Profile) Profile { return p.AddDrink(lager) },
		func(p Profile) Profile { return p.AddDrink(halfDrink) },
		func(p Profile) Profile { return p.ResetCurrentDrinks() },
		func(p Profile) Profile { return p.AddDrink(whiskey) },
		func(p Profile) Profile { return p.IncrementBarVisit() },
		func(p Profile) Profile { return p.ResetCurrentDrinks() },
	}

	for _, step := range steps {
		p = step(p)
		assert.GreaterOrEqual(t, len(p.AllTimeDrinks), len(p.CurrentDrinks))
	}
	assert.Equal(t, 3, p.DrinkCount())
}

func TestSnapshotsDoNotShareBackingArrays(t *testing.T) {
	base := NewProfile().AddDrink(lager)

	// Two children of the same parent must not clobber each other
	first := base.AddDrink(whiskey)
	second := base.AddDrink(halfDrink)

	require.Len(t, first.CurrentDrinks, 2)
	require.Len(t, second.CurrentDrinks, 2)
	assert.Equal(t, "Whiskey", first.CurrentDrinks[1].Name)
	assert.Equal(t, "Half", second.CurrentDrinks[1].Name)
	assert.Len(t, base.CurrentDrinks, 1)
}

func TestIncrementBarVisit(t *testing.T) {
	p := NewProfile()

	next := p.IncrementBarVisit().IncrementBarVisit()

	assert.Equal(t, 0, p.BarVisitCount)
	assert.Equal(t, 2, next.BarVisitCount)
}

func TestNewProfileForIdentity(t *testing.T) {
	p := NewProfileForIdentity("uid-1", "bucky@wisc.edu", "")

	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, "uid-1", p.UID)
	assert.Equal(t, "@bucky", p.Username)
	assert.Equal(t, "bucky", p.DisplayName)

	named := NewProfileForIdentity("uid-2", "bucky@wisc.edu", "Bucky Badger")
	assert.Equal(t, "Bucky Badger", named.DisplayName)

	noEmail := NewProfileForIdentity("uid-3", "", "")
	assert.Equal(t, "@uid-3", noEmail.Username)
	assert.Equal(t, "uid-3", noEmail.DisplayName)

	nameOnly := NewProfileForIdentity("uid-4", "", "Bucky Badger")
	assert.Equal(t, "@BuckyBadger", nameOnly.Username)
	assert.Equal(t, "Bucky Badger", nameOnly.DisplayName)
}

func TestBeverageRGBA(t *testing.T) {
	r, g, b, a := Beverage{Color: 0x66ffeedd}.RGBA()

	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0xee), g)
	assert.Equal(t, uint8(0xdd), b)
	assert.Equal(t, uint8(0x66), a)
}
