package geo

import "math"

// CalculateDistance returns the haversine great-circle distance between two
// points in kilometers.
func CalculateDistance(p1, p2 GeoPoint) float64 {
	if p1.Equal(p2) {
		return 0
	}

	dLat := (p2.Lat - p1.Lat) * degreesToRadians
	dLon := (p2.Lon - p1.Lon) * degreesToRadians

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1.Lat*degreesToRadians)*math.Cos(p2.Lat*degreesToRadians)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c / 1000
}
