package catalog

import (
	"strings"

	"github.com/KirkDiggler/tipsytrek/internal/models"
)

var bars = []models.Bar{
	{Name: "Wando’s", Latitude: 43.0733606, Longitude: -89.3959882},
	{Name: "Chasers", Latitude: 43.0740257, Longitude: -89.3932565},
	{Name: "Whiskey Jack’s", Latitude: 43.0751373, Longitude: -89.3948362},
	{Name: "Kollege Klub", Latitude: 43.0756532, Longitude: -89.397155},
	{Name: "The Double U", Latitude: 43.0734728, Longitude: -89.3968009},
	{Name: "State Street Brats", Latitude: 43.0746718, Longitude: -89.3959904},
	{Name: "Red Rock Saloon", Latitude: 43.0751186, Longitude: -89.3917812},
	{Name: "Nitty Gritty", Latitude: 43.0718112, Longitude: -89.3956146},
	{Name: "Red Shed", Latitude: 43.0750728, Longitude: -89.3937564},
	{Name: "Vintage Spirits & Grill", Latitude: 43.0729614, Longitude: -89.3954472},
	{Name: "Mondays", Latitude: 43.0730179, Longitude: -89.3943058},
	{Name: "Lucky’s 1313 Brew Pub", Latitude: 43.0675011, Longitude: -89.4081645},
	{Name: "SCONNIEBAR", Latitude: 43.0676284, Longitude: -89.4101684},
	{Name: "The Library Cafe & Bar", Latitude: 43.0730465, Longitude: -89.4092222},
}

// Bars returns a copy of the known bars
func Bars() []models.Bar {
	out := make([]models.Bar, len(bars))
	copy(out, bars)
	return out
}

// BarByName finds a bar ignoring case and the curly/straight apostrophe difference
func BarByName(name string) (models.Bar, bool) {
	want := normalizeBarName(name)
	for _, b := range bars {
		if normalizeBarName(b.Name) == want {
			return b, true
		}
	}
	return models.Bar{}, false
}

func normalizeBarName(name string) string {
	name = strings.ReplaceAll(name, "’", "'")
	return strings.ToLower(strings.TrimSpace(name))
}
