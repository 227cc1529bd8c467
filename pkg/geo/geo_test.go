package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineBostonNeighborhoods(t *testing.T) {
	// Downtown Boston to Roxbury, roughly 2.5 miles.
	d := Haversine(42.3601, -71.0589, 42.3292, -71.0846, DefaultEarthRadiusMiles)
	assert.InDelta(t, 2.5, d, 0.1)
}

func TestHaversineSymmetric(t *testing.T) {
	a := Haversine(42.3601, -71.0589, 40.7128, -74.0060, DefaultEarthRadiusMiles)
	b := Haversine(40.7128, -74.0060, 42.3601, -71.0589, DefaultEarthRadiusMiles)
	assert.Equal(t, a, b)
}

func TestHaversineZeroDistance(t *testing.T) {
	d := Haversine(42.3601, -71.0589, 42.3601, -71.0589, DefaultEarthRadiusMiles)
	assert.Equal(t, 0.0, d)
}

func TestNewBoundingBoxContainsOrigin(t *testing.T) {
	box := NewBoundingBox(42.3601, -71.0589, 10, DefaultMilesPerDegreeLat)

	require.Less(t, box.MinLat, 42.3601)
	require.Greater(t, box.MaxLat, 42.3601)
	require.Less(t, box.MinLng, -71.0589)
	require.Greater(t, box.MaxLng, -71.0589)

	// Latitude window is radius/69 degrees each side.
	assert.InDelta(t, 20.0/69.0, box.MaxLat-box.MinLat, 1e-9)

	// Longitude window widens with latitude.
	assert.Greater(t, box.MaxLng-box.MinLng, box.MaxLat-box.MinLat)
}

func TestBoundingBoxNeverExcludesPointsWithinRadius(t *testing.T) {
	origin := [2]float64{42.3601, -71.0589}
	points := [][2]float64{
		{42.3292, -71.0846},
		{42.3736, -71.1097},
		{42.4430, -71.2290},
	}

	for _, p := range points {
		d := Haversine(origin[0], origin[1], p[0], p[1], DefaultEarthRadiusMiles)
		box := NewBoundingBox(origin[0], origin[1], d+0.01, DefaultMilesPerDegreeLat)

		assert.True(t, p[0] >= box.MinLat && p[0] <= box.MaxLat,
			"latitude %f outside box for radius %f", p[0], d)
		assert.True(t, p[1] >= box.MinLng && p[1] <= box.MaxLng,
			"longitude %f outside box for radius %f", p[1], d)
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.7, Round1((5.0+5.0+4.0)/3.0))
	assert.Equal(t, 2.5, Round1(2.4999999))
	assert.Equal(t, 0.0, Round1(0))
}
