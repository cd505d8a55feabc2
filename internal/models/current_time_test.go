package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrentTimeModel(t *testing.T) {
	testCases := []struct {
		name     string
		testTime time.Time
	}{
		{
			name:     "UTC Time",
			testTime: time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "Local Time",
			testTime: time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local),
		},
		{
			name:     "Zero Time",
			testTime: time.Time{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewCurrentTimeModel(tc.testTime)

			assert.Equal(t, tc.testTime.UnixMilli(), result.Time)
			assert.Equal(t, tc.testTime.Format(time.RFC3339), result.ReadableTime)
		})
	}
}

func TestCurrentTimeEntryResponse(t *testing.T) {
	testTime := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)

	response := NewEntryResponse(NewCurrentTimeModel(testTime), NewEmptyReferences())

	jsonData, err := json.Marshal(response)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonData, &result))

	assert.Equal(t, float64(200), result["code"])
	assert.Equal(t, "OK", result["text"])
	assert.Equal(t, float64(2), result["version"])

	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok, "data should be an object")

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "entry should be an object")
	assert.Equal(t, float64(1746273600000), entry["time"])
	assert.Equal(t, "2025-05-03T12:00:00Z", entry["readableTime"])

	references, ok := data["references"].(map[string]interface{})
	require.True(t, ok, "references should be an object")
	assert.Equal(t, []interface{}{}, references["stops"])
}
