package gtfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"geoproximity.onebusaway.org/internal/geo"
	"geoproximity.onebusaway.org/internal/logging"

	"github.com/jamespfennell/gtfs"
)

// ErrStopNotFound is returned when a stop ID is not part of the loaded feed.
var ErrStopNotFound = errors.New("stop not found")

// DefaultSearchRadiusMeters is used by StopsNear when no radius is given.
const DefaultSearchRadiusMeters = 500.0

// Manager holds the stops of a static GTFS feed and answers proximity
// queries against them.
type Manager struct {
	gtfsSource   string
	gtfsData     *gtfs.Static
	lastUpdated  time.Time
	isLocalFile  bool
	staticMutex  sync.RWMutex
	config       Config
	calculator   *geo.Calculator
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// StopRelation pairs a stop with the relation from a searched point to it.
type StopRelation struct {
	Stop     gtfs.Stop
	Relation geo.Relation
}

// InitGTFSManager initializes the Manager with the GTFS data from the given source
// The source can be either a URL or a local file path
func InitGTFSManager(ctx context.Context, config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.GtfsURL, "http://") && !strings.HasPrefix(config.GtfsURL, "https://")

	loadCtx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	start := time.Now()
	staticData, err := loadGTFSData(loadCtx, config.GtfsURL, isLocalFile, config.logger())
	if err != nil {
		return nil, err
	}

	manager := newManager(config, isLocalFile)
	manager.setStaticGTFS(staticData)

	logging.LogOperation(config.logger(), "gtfs_manager_initialized",
		slog.String("source", config.GtfsURL),
		slog.Bool("local_file", isLocalFile),
		slog.Int("stops_count", len(staticData.Stops)),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "gtfs_manager"))

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.updateStaticGTFS()
	}

	return manager, nil
}

func newManager(config Config, isLocalFile bool) *Manager {
	return &Manager{
		gtfsSource:   config.GtfsURL,
		isLocalFile:  isLocalFile,
		config:       config,
		calculator:   geo.NewCalculator(config.logger()),
		shutdownChan: make(chan struct{}),
	}
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

func (manager *Manager) GetStops() []gtfs.Stop {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.gtfsData.Stops
}

func (manager *Manager) LastUpdated() time.Time {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.lastUpdated
}

// FindStop looks a stop up by its GTFS stop_id.
func (manager *Manager) FindStop(id string) (gtfs.Stop, error) {
	for _, stop := range manager.GetStops() {
		if stop.Id == id {
			return stop, nil
		}
	}
	return gtfs.Stop{}, fmt.Errorf("%w: %s", ErrStopNotFound, id)
}

// RelationToStop relates a point to the stop with the given ID.
func (manager *Manager) RelationToStop(point geo.GeoPoint, stopID string) (StopRelation, error) {
	stop, err := manager.FindStop(stopID)
	if err != nil {
		return StopRelation{}, err
	}

	stopPoint, ok := stopLocation(stop)
	if !ok {
		return StopRelation{}, fmt.Errorf("stop %s has no location", stopID)
	}

	return StopRelation{
		Stop:     stop,
		Relation: manager.calculator.Relate(point, stopPoint),
	}, nil
}

// StopsNear returns up to maxCount stops within radius meters of point,
// nearest first. A zero radius means DefaultSearchRadiusMeters. limitExceeded
// reports whether more stops matched than maxCount allowed.
func (manager *Manager) StopsNear(ctx context.Context, point geo.GeoPoint, radius float64, maxCount int) (stops []StopRelation, limitExceeded bool, err error) {
	if radius == 0 {
		radius = DefaultSearchRadiusMeters
	}
	radiusKm := radius / 1000

	// Cheap bounding box before the haversine pass.
	// 1 degree latitude ≈ 111km, 1 degree longitude shrinks with latitude
	latRadiusDegrees := radius / 111000.0
	lonRadiusDegrees := 180.0
	if cosLat := math.Cos(point.Lat * math.Pi / 180); cosLat > 1e-9 {
		lonRadiusDegrees = radius / (111000.0 * cosLat)
	}

	var candidates []StopRelation
	for i, stop := range manager.GetStops() {
		if i%1000 == 0 && ctx.Err() != nil {
			return nil, false, ctx.Err()
		}

		stopPoint, ok := stopLocation(stop)
		if !ok {
			continue
		}
		if math.Abs(stopPoint.Lat-point.Lat) > latRadiusDegrees || lonDelta(stopPoint.Lon, point.Lon) > lonRadiusDegrees {
			continue
		}

		relation := geo.Relate(point, stopPoint)
		if relation.DistanceKm <= radiusKm {
			candidates = append(candidates, StopRelation{Stop: stop, Relation: relation})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Relation.DistanceKm < candidates[j].Relation.DistanceKm
	})

	if maxCount > 0 && len(candidates) > maxCount {
		return candidates[:maxCount], true, nil
	}

	return candidates, false, nil
}

func stopLocation(stop gtfs.Stop) (geo.GeoPoint, bool) {
	if stop.Latitude == nil || stop.Longitude == nil {
		return geo.GeoPoint{}, false
	}
	return geo.NewGeoPoint(*stop.Latitude, *stop.Longitude), true
}

// lonDelta is the absolute longitude difference across the antimeridian.
func lonDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
