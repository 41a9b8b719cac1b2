package models

// Beverage is a drink template from the catalog
type Beverage struct {
	// Name is the display name of the drink
	Name string `json:"name"`

	// Color is the packed ARGB color used to render the drink
	Color uint32 `json:"color"`

	// DrinkType is the glass/style hint for the pour animation
	DrinkType int `json:"drinkType"`

	// StandardDrinks is the ethanol content in standard drink units
	StandardDrinks float64 `json:"standardDrinks"`
}

// RGBA splits the packed ARGB color into its channels
func (b Beverage) RGBA() (r, g, bl, a uint8) {
	return uint8(b.Color >> 16), uint8(b.Color >> 8), uint8(b.Color), uint8(b.Color >> 24)
}
