package valueobject

import "math"

// MetersPerDegree is the latitude scaling used by the update throttle.
const MetersPerDegree = 111320.0

// ApproxDistanceMeters uses an equirectangular approximation with a cosine
// correction for longitude. Good enough for tens of meters; not a geodesic.
func ApproxDistanceMeters(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * MetersPerDegree
	dLng := (b.Lng - a.Lng) * MetersPerDegree * math.Cos(a.Lat*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
