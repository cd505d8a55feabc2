package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// validateAPIKey rejects unknown keys before rate limiting, so the limiter
// only ever holds entries for configured keys.
func (api *RestAPI) validateAPIKey(finalHandler http.HandlerFunc) http.Handler {
	limited := http.Handler(finalHandler)
	if api.rateLimiter != nil {
		limited = api.rateLimiter(limited)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

// handle registers a key protected GET route, instrumented under its pattern.
func (api *RestAPI) handle(router *httprouter.Router, path string, handler http.HandlerFunc) {
	router.Handler(http.MethodGet, path, api.Metrics.Instrument(path, api.validateAPIKey(handler)))
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	api.handle(router, "/api/where/current-time.json", api.currentTimeHandler)

	api.handle(router, "/api/where/distance.json", api.distanceHandler)
	api.handle(router, "/api/where/orientation.json", api.orientationHandler)
	api.handle(router, "/api/where/orientation-symbol.json", api.orientationSymbolHandler)
	api.handle(router, "/api/where/closeness.json", api.closenessHandler)
	api.handle(router, "/api/where/relation.json", api.relationHandler)

	api.handle(router, "/api/where/stops-nearby.json", api.stopsNearbyHandler)
	api.handle(router, "/api/where/relation-to-stop/:id", api.relationToStopHandler)

	if api.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())
	}

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Handler returns the router wrapped in the middleware every request goes through.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	handler := CompressionMiddleware(router)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return api.WithSecurityHeaders(handler)
}
