package utils

import (
	"testing"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine_SamePoint(t *testing.T) {
	d := Haversine(28.6139, 77.2090, 28.6139, 77.2090)
	assert.InDelta(t, 0, d, 0.0001)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Delhi to Mumbai, roughly 1150 km
	d := Haversine(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, d, 20)
}

func TestHaversine_Symmetry(t *testing.T) {
	a := Haversine(12.9716, 77.5946, 13.0827, 80.2707)
	b := Haversine(13.0827, 80.2707, 12.9716, 77.5946)
	assert.InDelta(t, a, b, 0.0001)
}

func TestHaversine_ShortDistance(t *testing.T) {
	// Two points ~1.11 km apart along a meridian
	d := Haversine(28.6139, 77.2090, 28.6239, 77.2090)
	assert.InDelta(t, 1.11, d, 0.05)
}

func TestDistanceKm_MissingPoint(t *testing.T) {
	assert.Nil(t, DistanceKm(28.6139, 77.2090, nil))
}

func TestDistanceKm_MalformedPoint(t *testing.T) {
	point := &models.GeoJSONPoint{Type: "Point", Coordinates: []float64{77.2090}}
	assert.Nil(t, DistanceKm(28.6139, 77.2090, point))
}

func TestDistanceKm_ValidPoint(t *testing.T) {
	point := models.NewGeoJSONPoint(19.0760, 72.8777)
	d := DistanceKm(28.6139, 77.2090, point)
	require.NotNil(t, d)
	assert.InDelta(t, 1150, *d, 20)
}

func TestFormatDistanceKm(t *testing.T) {
	assert.Equal(t, "4.2 km", FormatDistanceKm(4.23))
	assert.Equal(t, "0.0 km", FormatDistanceKm(0))
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(28.6139, 77.2090))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
}
