package gtfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"geoproximity.onebusaway.org/internal/logging"

	"github.com/jamespfennell/gtfs"
)

const downloadTimeout = 60 * time.Second

func rawGtfsData(ctx context.Context, source string, isLocalFile bool, logger *slog.Logger) (b []byte, err error) {
	if isLocalFile {
		var f *os.File
		f, err = os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		defer logging.HandleDeferredError(&err, f.Close, logger, "close_gtfs_file")

		return io.ReadAll(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building GTFS request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "gtfs_download_body")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading GTFS data: unexpected status %s", resp.Status)
	}

	b, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

// loadGTFSData loads and parses GTFS data from either a URL or a local file
func loadGTFSData(ctx context.Context, source string, isLocalFile bool, logger *slog.Logger) (*gtfs.Static, error) {
	b, err := rawGtfsData(ctx, source, isLocalFile, logger)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return staticData, nil
}

// updateStaticGTFS reloads a URL-sourced feed on the configured interval
// until the manager shuts down.
func (manager *Manager) updateStaticGTFS() {
	defer manager.wg.Done()

	logger := manager.config.logger()

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
			staticData, err := loadGTFSData(ctx, manager.gtfsSource, false, logger)
			cancel()

			if err != nil {
				logging.LogError(logger, "failed to update GTFS data", err,
					slog.String("source", manager.gtfsSource),
					slog.String("component", "gtfs_manager"))
				continue
			}

			manager.setStaticGTFS(staticData)
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "gtfs_static_updates_stopped",
				slog.String("component", "gtfs_manager"))
			return
		}
	}
}

func (manager *Manager) setStaticGTFS(staticData *gtfs.Static) {
	manager.staticMutex.Lock()
	manager.gtfsData = staticData
	manager.lastUpdated = time.Now()
	manager.staticMutex.Unlock()

	if manager.config.Verbose {
		logging.LogOperation(manager.config.logger(), "gtfs_stops_loaded",
			slog.String("source", manager.gtfsSource),
			slog.Int("stops_count", len(staticData.Stops)),
			slog.String("component", "gtfs_manager"))
	}
}
