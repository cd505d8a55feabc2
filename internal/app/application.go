package app

import (
	"log/slog"

	"geoproximity.onebusaway.org/internal/appconf"
	"geoproximity.onebusaway.org/internal/geo"
	"geoproximity.onebusaway.org/internal/gtfs"
	"geoproximity.onebusaway.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. GtfsManager is nil when the server runs without a feed
// and Metrics is nil when metrics are disabled.
type Application struct {
	Config      appconf.Config
	GtfsConfig  gtfs.Config
	Logger      *slog.Logger
	GtfsManager *gtfs.Manager
	Calculator  *geo.Calculator
	Metrics     *metrics.Metrics
}

// HasStops reports whether a GTFS feed is loaded.
func (app *Application) HasStops() bool {
	return app.GtfsManager != nil
}
