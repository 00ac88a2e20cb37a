package utils

import (
	"fmt"
	"math"

	"carelink/models"
)

const (
	EarthRadiusKm = 6371.0
	DegToRad      = math.Pi / 180.0
)

// Haversine calculates the great-circle distance in kilometers between two
// coordinate pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * DegToRad
	lon1Rad := lon1 * DegToRad
	lat2Rad := lat2 * DegToRad
	lon2Rad := lon2 * DegToRad

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceKm returns the distance from (lat, lon) to a stored GeoJSON point,
// or nil when the point is absent or malformed. Callers surface nil instead
// of a fabricated zero distance.
func DistanceKm(lat, lon float64, to *models.GeoJSONPoint) *float64 {
	toLat, ok := to.Latitude()
	if !ok {
		return nil
	}
	toLon, _ := to.Longitude()

	d := Haversine(lat, lon, toLat, toLon)
	return &d
}

// FormatDistanceKm renders a distance the way the hospital listings show it.
func FormatDistanceKm(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// IsValidCoordinate checks if latitude and longitude values are valid
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
