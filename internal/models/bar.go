package models

// Bar is a real-world bar that players can check in to
type Bar struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
