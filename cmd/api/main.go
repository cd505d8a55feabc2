package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geoproximity.onebusaway.org/internal/app"
	"geoproximity.onebusaway.org/internal/appconf"
	"geoproximity.onebusaway.org/internal/geo"
	"geoproximity.onebusaway.org/internal/gtfs"
	"geoproximity.onebusaway.org/internal/logging"
	"geoproximity.onebusaway.org/internal/metrics"
	"geoproximity.onebusaway.org/internal/restapi"

	"github.com/peterbourgon/ff"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, gtfsCfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := logging.NewLoggerForEnvironment(os.Stdout, cfg.Env, cfg.Verbose)
	slog.SetDefault(logger)
	gtfsCfg.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := buildApplication(ctx, cfg, gtfsCfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize GTFS manager", err,
			slog.String("gtfs_url", gtfsCfg.GtfsURL))
		os.Exit(1)
	}

	if err := run(ctx, application); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// envVarPrefix prefixes the environment variables that mirror each flag,
// e.g. GEOPROXIMITY_PORT. Flags given on the command line take precedence.
const envVarPrefix = "GEOPROXIMITY"

// parseConfig reads the command line and environment into the application
// and GTFS configs. An empty -gtfs-url starts the server without stop endpoints.
func parseConfig(args []string, output io.Writer) (appconf.Config, gtfs.Config, error) {
	var cfg appconf.Config
	var gtfsCfg gtfs.Config
	var envFlag, apiKeysFlag string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Port, "port", 4000, "API server port")
	fs.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key (negative disables)")
	fs.StringVar(&gtfsCfg.GtfsURL, "gtfs-url", "", "URL or path of a static GTFS zip file")
	fs.DurationVar(&gtfsCfg.RefreshInterval, "gtfs-refresh", gtfs.DefaultRefreshInterval, "How often a GTFS feed URL is reloaded")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log debug output")
	fs.BoolVar(&cfg.Metrics, "metrics", true, "Serve Prometheus metrics on /metrics")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix(envVarPrefix)); err != nil {
		return cfg, gtfsCfg, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)

	if cfg.Port < 1 || cfg.Port > 65535 {
		err := fmt.Errorf("invalid port %d", cfg.Port)
		_, _ = fmt.Fprintln(output, err)
		return cfg, gtfsCfg, err
	}

	gtfsCfg.Env = cfg.Env
	gtfsCfg.Verbose = cfg.Verbose
	return cfg, gtfsCfg, nil
}

func buildApplication(ctx context.Context, cfg appconf.Config, gtfsCfg gtfs.Config, logger *slog.Logger) (*app.Application, error) {
	application := &app.Application{
		Config:     cfg,
		GtfsConfig: gtfsCfg,
		Logger:     logger,
		Calculator: geo.NewCalculator(logger),
	}
	if cfg.Metrics {
		application.Metrics = metrics.NewMetrics()
	}

	if gtfsCfg.GtfsURL == "" {
		logger.Warn("no GTFS feed configured, stop endpoints are disabled")
		return application, nil
	}

	manager, err := gtfs.InitGTFSManager(ctx, gtfsCfg)
	if err != nil {
		return nil, fmt.Errorf("loading GTFS feed: %w", err)
	}
	application.GtfsManager = manager
	if application.Metrics != nil {
		application.Metrics.RegisterStopsGauge(func() int { return len(manager.GetStops()) })
	}

	logger.Info("GTFS feed loaded",
		slog.Int("stops", len(manager.GetStops())),
		slog.Time("last_updated", manager.LastUpdated()))
	return application, nil
}

// run serves the API until ctx is cancelled, then drains connections.
func run(ctx context.Context, application *app.Application) error {
	api := restapi.NewRestAPI(application)
	logger := application.Logger

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env.String())
		serverErr <- srv.ListenAndServe()
	}()

	var err error
	select {
	case err = <-serverErr:
	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
	}

	api.Shutdown()
	if application.GtfsManager != nil {
		application.GtfsManager.Shutdown()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
