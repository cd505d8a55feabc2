// Package geo computes spherical relationships between two latitude/longitude
// points: great-circle distance, initial bearing, a compass octant and a
// closeness score.
//
// Every function is pure and safe for concurrent use. Inputs are not
// validated; out-of-range coordinates give mathematically defined but
// geographically meaningless results.
package geo

import "math"

const (
	// earthRadiusMeters is the mean radius of the spherical Earth model.
	earthRadiusMeters = 6371000.0
	degreesToRadians  = math.Pi / 180
	radiansToDegrees  = 180 / math.Pi
)

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewGeoPoint creates a GeoPoint from a latitude and longitude in degrees.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Lat: lat, Lon: lon}
}

// Equal reports whether both coordinates are exactly equal.
func (p GeoPoint) Equal(other GeoPoint) bool {
	return p.Lat == other.Lat && p.Lon == other.Lon
}
