package models

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse(t *testing.T) {
	testData := map[string]string{"key": "value"}

	currentTimeBeforeCall := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(http.StatusCreated, testData, "Resource Created")
	currentTimeAfterCall := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, http.StatusCreated, response.Code, "Response code should match input")
	assert.Equal(t, testData, response.Data, "Response data should match input")
	assert.Equal(t, "Resource Created", response.Text, "Response text should match input")
	assert.Equal(t, 2, response.Version, "Response version should be 2")
	assert.GreaterOrEqual(t, response.CurrentTime, currentTimeBeforeCall)
	assert.LessOrEqual(t, response.CurrentTime, currentTimeAfterCall)
}

func TestNewEntryResponse(t *testing.T) {
	entry := DistanceModel{Distance: 5570.22}
	references := NewEmptyReferences()

	response := NewEntryResponse(entry, references)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, entry, responseData["entry"])
	assert.Equal(t, references, responseData["references"])
}

func TestNewListResponse(t *testing.T) {
	itemList := []string{"item1", "item2"}
	references := NewEmptyReferences()

	response := NewListResponse(itemList, references)

	assert.Equal(t, http.StatusOK, response.Code)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, itemList, responseData["list"])
	assert.Equal(t, references, responseData["references"])
	assert.False(t, responseData["limitExceeded"].(bool))
	assert.False(t, responseData["outOfRange"].(bool))
}

func TestNewListResponseWithRange(t *testing.T) {
	response := NewListResponseWithRange([]NearbyStop{}, NewEmptyReferences(), false, true)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.True(t, responseData["outOfRange"].(bool))
	assert.False(t, responseData["limitExceeded"].(bool))

	response = NewListResponseWithRange([]NearbyStop{{}}, NewEmptyReferences(), true, false)
	responseData = response.Data.(map[string]interface{})
	assert.True(t, responseData["limitExceeded"].(bool))
	assert.False(t, responseData["outOfRange"].(bool))
}
