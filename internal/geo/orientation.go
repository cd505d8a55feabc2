package geo

import "math"

// CalculateOrientation returns the initial bearing from p1 to p2 in degrees,
// normalized to [0, 360). 0 is North, 90 East, 180 South and 270 West.
// Identical points have a bearing of 0.
func CalculateOrientation(p1, p2 GeoPoint) float64 {
	if p1.Equal(p2) {
		return 0
	}

	lat1 := p1.Lat * degreesToRadians
	lat2 := p2.Lat * degreesToRadians
	dLon := (p2.Lon - p1.Lon) * degreesToRadians

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Atan2(y, x) * radiansToDegrees
	return math.Mod(bearing+360, 360)
}
