package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Stops []Stop `json:"stops"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Stops: []Stop{},
	}
}
