package geo

import (
	"math"
	"strconv"
)

// MaxDistanceKm is the reference separation at which two points are
// considered as far apart as the closeness scale allows.
const MaxDistanceKm = 20000.0

// closenessFloor is returned at or beyond MaxDistanceKm. It is 1, not 0.
const closenessFloor = 1.0

// CalculateGeoClosingPercent scores how close two points are on a 0-100
// scale, linearly against MaxDistanceKm and rounded to two decimals.
// Identical points score 100; points MaxDistanceKm or more apart score 1.
func CalculateGeoClosingPercent(p1, p2 GeoPoint) float64 {
	return closenessForDistance(CalculateDistance(p1, p2))
}

func closenessForDistance(distanceKm float64) float64 {
	if distanceKm >= MaxDistanceKm {
		return closenessFloor
	}
	if distanceKm == 0 {
		return 100
	}

	percent := (MaxDistanceKm - distanceKm) / MaxDistanceKm * 100
	return math.Max(0, math.Min(100, roundHundredths(percent)))
}

// roundHundredths rounds the exact binary value of x to two decimals, so
// 99.98499999999999943 becomes 99.98 even though x*100 rounds to 9998.5.
// Exact ties such as 0.125 round away from zero.
func roundHundredths(x float64) float64 {
	if eighths := x * 8; eighths == math.Trunc(eighths) {
		return math.Round(x*100) / 100
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}
