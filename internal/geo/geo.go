package geo

import "math"

// EarthRadiusMeters is the IUGG mean earth radius
const EarthRadiusMeters = 6371008.8

// Point is a latitude/longitude pair in degrees
type Point struct {
	Latitude  float64
	Longitude float64
}

// ArcSeconds converts seconds of arc into degrees
func ArcSeconds(seconds float64) float64 {
	return seconds / 3600.0
}

// DegreesToMeters is the great-circle length of an arc of the given angle
func DegreesToMeters(deg float64) float64 {
	return deg * math.Pi / 180.0 * EarthRadiusMeters
}

// HaversineMeters is the great-circle distance between two points
func HaversineMeters(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// clamp rounding noise so Asin never sees > 1
	h = math.Min(1, math.Max(0, h))
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Within reports whether b lies within radius meters of a
func Within(a, b Point, radiusMeters float64) bool {
	return HaversineMeters(a, b) <= radiusMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
