package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	m := NewMetrics()

	handler := m.Instrument("/api/where/relation-to-stop/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/where/relation-to-stop/stop_"+string(rune('a'+i)), nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/where/relation-to-stop/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestInstrumentNilMetrics(t *testing.T) {
	var m *Metrics
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	m.Instrument("/", next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NotPanics(t, func() { m.ObserveDirection("N") })
}

func TestObserveDirection(t *testing.T) {
	m := NewMetrics()
	m.ObserveDirection("NE")
	m.ObserveDirection("NE")
	m.ObserveDirection("same-location")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Relations.WithLabelValues("NE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Relations.WithLabelValues("same-location")))
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	stops := 42
	m.RegisterStopsGauge(func() int { return stops })
	m.ObserveDirection("S")

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "geoproximity_gtfs_stops 42")
	assert.Contains(t, string(body), `geoproximity_relations_total{direction="S"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
