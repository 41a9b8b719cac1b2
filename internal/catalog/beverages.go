package catalog

import (
	"strings"

	"github.com/KirkDiggler/tipsytrek/internal/models"
)

// pintsToStandard converts a 20oz pour at the given abv into standard drinks
const pintsToStandard = 20

// beverages is the closed set of drinks that can spawn on the map
var beverages = []models.Beverage{
	pour("Coors Banquet", 0xfff8e28c, 0.05),
	pour("Spotted Cow", 0xfff6e07a, 0.048),
	pour("Guinness", 0xff1a0f07, 0.042),
	pour("Heineken", 0xfff7e88a, 0.05),
	pour("Blue Moon", 0xffe9c66f, 0.054),
	pour("Budweiser", 0xfff7e07a, 0.05),
	pour("Bud Light", 0xfff8eb9a, 0.042),
	pour("Modelo Especial", 0xfff6e076, 0.044),
	pour("Corona Extra", 0xfff7e995, 0.046),
	pour("Stella Artois", 0xfff6e281, 0.052),
	pour("Pabst Blue Ribbon", 0xfff7e38e, 0.047),
	pour("Miller Lite", 0xfff7ec9b, 0.042),
	pour("Sam Adams Boston Lager", 0xffc77027, 0.05),
	pour("Lagunitas IPA", 0xffd99a3d, 0.065),
	pour("Sierra Nevada Pale Ale", 0xffd5a64a, 0.055),
	pour("Newcastle Brown Ale", 0xff5f2f12, 0.05),
	pour("Fat Tire Amber Ale", 0xffc06724, 0.055),
	pour("Dos Equis Lager", 0xfff6df72, 0.047),
	pour("Shiner Bock", 0xff4b1e0e, 0.048),
	pour("Yuengling Lager", 0xff853e12, 0.045),
	pour("New Glarus Raspberry Tart", 0xffb0253c, 0.04),
	pour("New Glarus Moon Man", 0xfff3d27c, 0.05),
	pour("Leinenkugel's Original", 0xfff7e07a, 0.045),
	pour("Leinenkugel's Honey Weiss", 0xfff4d77a, 0.055),
	pour("Toppling Goliath Pseudo Sue", 0xfff2c55c, 0.065),
	pour("Bell's Two Hearted Ale", 0xffd9953d, 0.07),
	pour("Bell's Oberon", 0xffe5b44f, 0.057),
	pour("Founders All Day IPA", 0xffddb14a, 0.042),
	pour("Goose Island 312 Urban Wheat", 0xfff1d67b, 0.042),
	pour("Surly Furious", 0xffb1441d, 0.067),
	pour("White Claw Black Cherry", 0x66ffffff, 0.05),
	pour("Truly Wild Berry", 0x66ffffff, 0.05),
	pour("La Marca Prosecco", 0xfff7eaa4, 0.11),
	pour("Josh Cabernet Sauvignon", 0xff3c0a0f, 0.13),
	pour("Apothic Red Blend", 0xff4b0d12, 0.13),
	pour("Jameson Irish Whiskey", 0xffc58527, 0.40),
	pour("Patrón Silver Tequila", 0x66ffffff, 0.40),
	pour("Captain Morgan Spiced Rum", 0xffb56a1d, 0.35),
	pour("Aperol Spritz", 0xfff98a2d, 0.11),
	pour("Margarita", 0xccd6e88a, 0.13),
}

func pour(name string, color uint32, abv float64) models.Beverage {
	return models.Beverage{
		Name:           name,
		Color:          color,
		DrinkType:      1,
		StandardDrinks: pintsToStandard * abv,
	}
}

// Beverages returns a copy of the spawnable drink catalog
func Beverages() []models.Beverage {
	out := make([]models.Beverage, len(beverages))
	copy(out, beverages)
	return out
}

// BeverageCount is the size of the catalog
func BeverageCount() int {
	return len(beverages)
}

// BeverageAt returns the i-th catalog entry. Callers draw i from
// [0, BeverageCount()); anything else is a programming error.
func BeverageAt(i int) models.Beverage {
	return beverages[i]
}

// BeverageByName looks a drink up by name, ignoring case
func BeverageByName(name string) (models.Beverage, bool) {
	name = strings.TrimSpace(name)
	for _, b := range beverages {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return models.Beverage{}, false
}
