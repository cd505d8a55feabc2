package restapi

import (
	"net/http"

	"geoproximity.onebusaway.org/internal/appconf"
)

// baseSecurityHeaders are set on every response.
var baseSecurityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"X-XSS-Protection":        "1; mode=block",
	"Referrer-Policy":         "strict-origin-when-cross-origin",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none';",
}

// corsHeaders are added when the request carries an Origin. Map clients
// call the API straight from the browser, from any origin.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Access-Control-Max-Age":       "86400",
}

// WithSecurityHeaders wraps the given handler with security headers middleware.
// HSTS is only sent in production, where the server sits behind TLS.
func (api *RestAPI) WithSecurityHeaders(handler http.Handler) http.Handler {
	return securityHeaders(handler, api.Config.Env == appconf.Production)
}

func securityHeaders(next http.Handler, strictTransport bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		for name, value := range baseSecurityHeaders {
			header.Set(name, value)
		}
		if strictTransport {
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		if r.Header.Get("Origin") != "" {
			for name, value := range corsHeaders {
				header.Set(name, value)
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
