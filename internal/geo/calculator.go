package geo

import (
	"log/slog"
)

// Relation bundles every relationship from one point to another.
type Relation struct {
	From        GeoPoint  `json:"from"`
	To          GeoPoint  `json:"to"`
	DistanceKm  float64   `json:"distanceKm"`
	Orientation float64   `json:"orientation"`
	Direction   Direction `json:"direction"`
	Closeness   float64   `json:"closeness"`
}

// Calculator runs the geo functions with an optional diagnostic logger.
// A nil Calculator, or one without a logger, does not log.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a Calculator that traces computed bearings to logger
// at debug level.
func NewCalculator(logger *slog.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// OrientationSymbol is CalculateOrientationSymbol with a debug trace of the
// bearing it classified.
func (c *Calculator) OrientationSymbol(p1, p2 GeoPoint) Direction {
	orientation := CalculateOrientation(p1, p2)
	c.traceOrientation(p1, p2, orientation)
	return directionFor(p1, p2, orientation)
}

// Relate computes distance, bearing, direction and closeness from p1 to p2.
func (c *Calculator) Relate(p1, p2 GeoPoint) Relation {
	distance := CalculateDistance(p1, p2)
	orientation := CalculateOrientation(p1, p2)
	c.traceOrientation(p1, p2, orientation)

	return Relation{
		From:        p1,
		To:          p2,
		DistanceKm:  distance,
		Orientation: orientation,
		Direction:   directionFor(p1, p2, orientation),
		Closeness:   closenessForDistance(distance),
	}
}

// Relate computes every relationship from p1 to p2 without tracing.
func Relate(p1, p2 GeoPoint) Relation {
	var c *Calculator
	return c.Relate(p1, p2)
}

func (c *Calculator) traceOrientation(p1, p2 GeoPoint, orientation float64) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Debug("orientation",
		slog.Float64("orientation", orientation),
		slog.Float64("from_lat", p1.Lat),
		slog.Float64("from_lon", p1.Lon),
		slog.Float64("to_lat", p2.Lat),
		slog.Float64("to_lon", p2.Lon),
		slog.String("component", "geo"))
}
