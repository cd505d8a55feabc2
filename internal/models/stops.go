package models

// Wheelchair boarding values as reported by the API.
const (
	WheelchairAccessible    = "ACCESSIBLE"
	WheelchairNotAccessible = "NOT_ACCESSIBLE"
	// UnknownValue is reported when the feed does not say.
	UnknownValue = "UNKNOWN"
)

type Stop struct {
	Code               string  `json:"code"`
	ID                 string  `json:"id"`
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
	Name               string  `json:"name"`
	Parent             string  `json:"parent"`
	WheelchairBoarding string  `json:"wheelchairBoarding"`
}

func NewStop(code, id, name, parent, wheelchairBoarding string, lat, lon float64) Stop {
	return Stop{
		Code:               code,
		ID:                 id,
		Lat:                lat,
		Lon:                lon,
		Name:               name,
		Parent:             parent,
		WheelchairBoarding: wheelchairBoarding,
	}
}

// NearbyStop is a stop found around a location, with the relation from the
// searched location to the stop.
type NearbyStop struct {
	Stop
	Relation RelationModel `json:"relation"`
}
