package app

import (
	"net/http/httptest"
	"testing"

	"geoproximity.onebusaway.org/internal/appconf"

	"github.com/stretchr/testify/assert"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestKnownKeyIsValid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"test", "key"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("key"))
	assert.True(t, app.IsInvalidAPIKey("other"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"TEST"},
		},
	}

	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/distance.json?key=TEST", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/distance.json", nil)))
}

func TestHasStops(t *testing.T) {
	assert.False(t, (&Application{}).HasStops())
}
