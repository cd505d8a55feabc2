package utils

import (
	"errors"
	"math"
	"regexp"
)

// Allow alphanumeric, underscore, hyphen, dot - common in GTFS stop IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// MaxSearchRadiusMeters bounds stop searches around a point.
const MaxSearchRadiusMeters = 10000.0

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if math.IsNaN(lon) || lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateRadius validates radius values for location searches
func ValidateRadius(radius float64) error {
	if math.IsNaN(radius) || radius < 0 {
		return errors.New("radius must be a non-negative number")
	}

	if radius > MaxSearchRadiusMeters {
		return errors.New("radius too large (max 10000 meters)")
	}

	return nil
}

// ValidateMaxCount validates the result limit of list endpoints
func ValidateMaxCount(maxCount int) error {
	if maxCount < 1 {
		return errors.New("maxCount must be at least 1")
	}
	if maxCount > 250 {
		return errors.New("maxCount too large (max 250)")
	}
	return nil
}
