package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackTime_MarshalFormat(t *testing.T) {
	tt := NewTrackTime(time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local))
	data, err := json.Marshal(tt)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01 10:00:00"`, string(data))
}

func TestTrackTime_MarshalZero(t *testing.T) {
	data, err := json.Marshal(TrackTime{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestTrackTime_UnmarshalCanonical(t *testing.T) {
	var tt TrackTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-01 10:00:00"`), &tt))
	assert.Equal(t, 2025, tt.Year())
	assert.Equal(t, 10, tt.Hour())
}

func TestTrackTime_UnmarshalRFC3339(t *testing.T) {
	var tt TrackTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-01T10:00:00Z"`), &tt))
	assert.Equal(t, 2025, tt.Year())
}

func TestTrackTime_UnmarshalEmpty(t *testing.T) {
	var tt TrackTime
	require.NoError(t, json.Unmarshal([]byte(`""`), &tt))
	assert.True(t, tt.IsZero())
}

func TestTrackTime_UnmarshalGarbage(t *testing.T) {
	var tt TrackTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &tt))
}

func TestTrackTime_RoundTrip(t *testing.T) {
	orig := NewTrackTime(time.Date(2025, 6, 30, 23, 59, 59, 0, time.Local))
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded TrackTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(orig.Time))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2025-03-14", DayKey(time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)))
}
