package gtfs

import (
	"log/slog"
	"time"

	"geoproximity.onebusaway.org/internal/appconf"
)

// DefaultRefreshInterval is how often a feed downloaded from a URL is reloaded.
const DefaultRefreshInterval = 24 * time.Hour

type Config struct {
	GtfsURL         string
	Env             appconf.Environment
	Verbose         bool
	RefreshInterval time.Duration
	Logger          *slog.Logger
}

func (config Config) refreshInterval() time.Duration {
	if config.RefreshInterval <= 0 {
		return DefaultRefreshInterval
	}
	return config.RefreshInterval
}

func (config Config) logger() *slog.Logger {
	if config.Logger == nil {
		return slog.Default()
	}
	return config.Logger
}
