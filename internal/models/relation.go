package models

import "geoproximity.onebusaway.org/internal/geo"

// RelationModel is the wire form of geo.Relation.
type RelationModel struct {
	From        geo.GeoPoint `json:"from"`
	To          geo.GeoPoint `json:"to"`
	DistanceKm  float64      `json:"distance"`
	Orientation float64      `json:"orientation"`
	Direction   string       `json:"direction"`
	Symbol      string       `json:"symbol"`
	Closeness   float64      `json:"closeness"`
}

func NewRelationModel(relation geo.Relation) RelationModel {
	return RelationModel{
		From:        relation.From,
		To:          relation.To,
		DistanceKm:  relation.DistanceKm,
		Orientation: relation.Orientation,
		Direction:   relation.Direction.String(),
		Symbol:      relation.Direction.Emoji(),
		Closeness:   relation.Closeness,
	}
}

// DistanceModel is the entry of the distance endpoint, in kilometers.
type DistanceModel struct {
	Distance float64 `json:"distance"`
}

// OrientationModel is the entry of the orientation endpoint, in degrees.
type OrientationModel struct {
	Orientation float64 `json:"orientation"`
}

// OrientationSymbolModel is the entry of the orientation symbol endpoint.
type OrientationSymbolModel struct {
	Direction string `json:"direction"`
	Symbol    string `json:"symbol"`
}

func NewOrientationSymbolModel(direction geo.Direction) OrientationSymbolModel {
	return OrientationSymbolModel{
		Direction: direction.String(),
		Symbol:    direction.Emoji(),
	}
}

// ClosenessModel is the entry of the closeness endpoint, in percent.
type ClosenessModel struct {
	Percent float64 `json:"percent"`
}
