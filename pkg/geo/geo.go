package geo

import "math"

// Default constants for the distance math. One degree of latitude spans
// roughly 69 miles; the figure is an approximation that only holds near
// mid-latitudes, so both values are overridable through config.
const (
	DefaultEarthRadiusMiles  = 3959
	DefaultMilesPerDegreeLat = 69
)

// BoundingBox is a rectangular lat/lng window around an origin. It is a
// cheap prefilter: candidates inside the box still need an exact distance
// check, candidates outside it can never be within the radius.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox builds the window that encloses a circle of radiusMiles
// around the origin. Longitude degrees shrink with cos(latitude).
func NewBoundingBox(lat, lng, radiusMiles, milesPerDegreeLat float64) BoundingBox {
	latDelta := radiusMiles / milesPerDegreeLat
	lngDelta := radiusMiles / (milesPerDegreeLat * math.Cos(lat*math.Pi/180))

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

// Haversine returns the great-circle distance between two points, in the
// unit of earthRadius.
func Haversine(lat1, lng1, lat2, lng2, earthRadius float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Round1 rounds to one decimal place, the precision distances and ratings
// are reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
