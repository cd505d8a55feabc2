package logging

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"geoproximity.onebusaway.org/internal/appconf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()

		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestNewLoggerForEnvironment(t *testing.T) {
	t.Run("development uses text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerForEnvironment(&buf, appconf.Development, false)

		logger.Info("starting server", slog.String("addr", ":4000"))

		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, `msg="starting server"`)
		assert.Contains(t, output, "addr=:4000")
	})

	t.Run("production uses JSON output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerForEnvironment(&buf, appconf.Production, false)

		logger.Info("starting server")
		logger.Debug("orientation")

		output := buf.String()
		assert.Contains(t, output, `"msg":"starting server"`)
		assert.NotContains(t, output, "orientation")
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerForEnvironment(&buf, appconf.Test, true)

		logger.Debug("orientation", slog.Float64("orientation", 51.2))

		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to fetch data", assert.AnError,
			slog.String("url", "http://example.com"),
			slog.String("component", "http_client"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to fetch data"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"url":"http://example.com"`)
	})

	t.Run("LogError tolerates nil logger and nil error", func(t *testing.T) {
		LogError(nil, "ignored", assert.AnError)

		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)
		LogError(logger, "no error value", nil)
		assert.NotContains(t, buf.String(), `"error"`)
	})

	t.Run("LogOperation skips zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "gtfs_stops_loaded",
			slog.String("source", "feed.zip"),
			slog.Int("stops_count", 150),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"gtfs_stops_loaded"`)
		assert.Contains(t, output, `"stops_count":150`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/where/distance.json", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/where/distance.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
		assert.Contains(t, output, `"level":"INFO"`)
	})

	t.Run("LogHTTPRequest raises the level for failures", func(t *testing.T) {
		tests := []struct {
			status int
			level  string
		}{
			{http.StatusOK, "INFO"},
			{http.StatusNotModified, "INFO"},
			{http.StatusBadRequest, "WARN"},
			{http.StatusTooManyRequests, "WARN"},
			{http.StatusInternalServerError, "ERROR"},
			{http.StatusServiceUnavailable, "ERROR"},
		}

		for _, tt := range tests {
			var buf bytes.Buffer
			LogHTTPRequest(NewStructuredLogger(&buf, slog.LevelInfo), "GET", "/", tt.status, 1)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`, "status %d", tt.status)
		}
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)

		retrievedLogger := FromContext(ctx)
		require.NotNil(t, retrievedLogger)

		retrievedLogger.Info("test from context")
		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		assert.Equal(t, slog.Default(), logger)
	})
}
