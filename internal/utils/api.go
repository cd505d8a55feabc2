package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"geoproximity.onebusaway.org/internal/geo"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams returns the named route parameter. Entity routes accept
// both /stop/1_100 and /stop/1_100.json, so a trailing ".json" is dropped.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	id := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	return strings.TrimSuffix(id, ".json")
}

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
// - params: URL query parameters.
// - key: The key to look for in the query parameters.
// - fieldErrors: A map to collect validation errors for fields.
// Returns:
// - The parsed float64 value (or 0 if invalid).
// - The updated fieldErrors map containing any validation errors.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// ParseIntParam is the integer counterpart of ParseFloatParam. Missing keys
// yield defaultValue.
func ParseIntParam(params url.Values, key string, defaultValue int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return defaultValue, fieldErrors
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultValue, fieldErrors
	}
	return i, fieldErrors
}

// ParseRequiredPointParams reads a latitude/longitude pair that must be present.
// Missing, malformed or out of range values are reported under their own keys.
func ParseRequiredPointParams(params url.Values, latKey, lonKey string, fieldErrors map[string][]string) (geo.GeoPoint, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	for _, key := range []string{latKey, lonKey} {
		if params.Get(key) == "" {
			fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
		}
	}

	lat, fieldErrors := ParseFloatParam(params, latKey, fieldErrors)
	lon, fieldErrors := ParseFloatParam(params, lonKey, fieldErrors)

	if len(fieldErrors[latKey]) == 0 {
		if err := ValidateLatitude(lat); err != nil {
			fieldErrors[latKey] = append(fieldErrors[latKey], err.Error())
		}
	}
	if len(fieldErrors[lonKey]) == 0 {
		if err := ValidateLongitude(lon); err != nil {
			fieldErrors[lonKey] = append(fieldErrors[lonKey], err.Error())
		}
	}

	return geo.NewGeoPoint(lat, lon), fieldErrors
}
