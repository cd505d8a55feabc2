package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid simple ID",
			id:      "1_75403",
			wantErr: false,
		},
		{
			name:    "valid dotted ID",
			id:      "stop.north-1",
			wantErr: false,
		},
		{
			name:    "empty ID",
			id:      "",
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "ID too long",
			id:      strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "id too long (max 100 characters)",
		},
		{
			name:    "ID with invalid characters",
			id:      "stop_123<script>",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLatitude(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		wantErr bool
	}{
		{"equator", 0, false},
		{"north pole", 90, false},
		{"south pole", -90, false},
		{"too far north", 90.0001, true},
		{"too far south", -91, true},
		{"not a number", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLatitude(tt.lat)
			if tt.wantErr {
				assert.EqualError(t, err, "latitude must be between -90 and 90")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLongitude(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		wantErr bool
	}{
		{"prime meridian", 0, false},
		{"antimeridian east", 180, false},
		{"antimeridian west", -180, false},
		{"too far east", 180.5, true},
		{"too far west", -200, true},
		{"not a number", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLongitude(tt.lon)
			if tt.wantErr {
				assert.EqualError(t, err, "longitude must be between -180 and 180")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRadius(t *testing.T) {
	assert.NoError(t, ValidateRadius(0))
	assert.NoError(t, ValidateRadius(500))
	assert.NoError(t, ValidateRadius(MaxSearchRadiusMeters))
	assert.EqualError(t, ValidateRadius(-1), "radius must be a non-negative number")
	assert.EqualError(t, ValidateRadius(10001), "radius too large (max 10000 meters)")
	assert.EqualError(t, ValidateRadius(math.NaN()), "radius must be a non-negative number")
	assert.Error(t, ValidateRadius(math.Inf(1)))
}

func TestValidateMaxCount(t *testing.T) {
	assert.NoError(t, ValidateMaxCount(1))
	assert.NoError(t, ValidateMaxCount(250))
	assert.Error(t, ValidateMaxCount(0))
	assert.Error(t, ValidateMaxCount(251))
}
