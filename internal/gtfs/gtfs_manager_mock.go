package gtfs

import (
	"github.com/jamespfennell/gtfs"
)

// NewManagerFromStatic builds a Manager around already parsed data, without
// a feed source or background refresh.
func NewManagerFromStatic(config Config, staticData *gtfs.Static) *Manager {
	manager := newManager(config, true)
	manager.setStaticGTFS(staticData)
	return manager
}

func (m *Manager) MockAddStop(id, name string, lat, lon float64) {
	m.staticMutex.Lock()
	defer m.staticMutex.Unlock()

	for _, s := range m.gtfsData.Stops {
		if s.Id == id {
			return
		}
	}
	m.gtfsData.Stops = append(m.gtfsData.Stops, gtfs.Stop{
		Id:        id,
		Name:      name,
		Latitude:  &lat,
		Longitude: &lon,
	})
}
