package geo

// Direction is the coarse compass classification of a bearing.
type Direction int

const (
	SameLocation Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	SameLocation: "same-location",
	North:        "N",
	NorthEast:    "NE",
	East:         "E",
	SouthEast:    "SE",
	South:        "S",
	SouthWest:    "SW",
	West:         "W",
	NorthWest:    "NW",
}

var directionEmoji = [...]string{
	SameLocation: "🟢",
	North:        "⬆️",
	NorthEast:    "↗️",
	East:         "➡️",
	SouthEast:    "↘️",
	South:        "⬇️",
	SouthWest:    "↙️",
	West:         "⬅️",
	NorthWest:    "↖️",
}

// String returns the compass abbreviation, or "same-location".
func (d Direction) String() string {
	if d < SameLocation || d > NorthWest {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// Emoji returns the arrow glyph used by map clients for the direction.
func (d Direction) Emoji() string {
	if d < SameLocation || d > NorthWest {
		return ""
	}
	return directionEmoji[d]
}

// MarshalText encodes the direction as its compass abbreviation.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// BearingToDirection classifies a bearing in [0, 360) into one of eight 45°
// octants centered on the compass points. Lower bounds are inclusive, so
// 22.5 is NorthEast. A bearing of exactly 0 is reported as SameLocation
// because identical points also have a bearing of 0; a genuine due-north
// bearing is therefore indistinguishable from no movement.
func BearingToDirection(bearing float64) Direction {
	switch {
	case bearing == 0:
		return SameLocation
	case bearing >= 337.5 || bearing < 22.5:
		return North
	case bearing < 67.5:
		return NorthEast
	case bearing < 112.5:
		return East
	case bearing < 157.5:
		return SouthEast
	case bearing < 202.5:
		return South
	case bearing < 247.5:
		return SouthWest
	case bearing < 292.5:
		return West
	default:
		return NorthWest
	}
}

// CalculateOrientationSymbol returns the compass octant of the bearing from
// p1 to p2, or SameLocation for identical points.
func CalculateOrientationSymbol(p1, p2 GeoPoint) Direction {
	return directionFor(p1, p2, CalculateOrientation(p1, p2))
}

func directionFor(p1, p2 GeoPoint, bearing float64) Direction {
	if p1.Equal(p2) {
		return SameLocation
	}
	return BearingToDirection(bearing)
}
