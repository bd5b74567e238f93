package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeTestTime = time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)

func TestActivityStore_AddActivity_CreatesBucket(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("C:\\work\\part.ipt", "2025-03-14", 2.25, storeTestTime)

	data := s.GetData()
	require.Contains(t, data, "C:\\work\\part.ipt")
	bucket := data["C:\\work\\part.ipt"].DailyActivity["2025-03-14"]
	require.NotNil(t, bucket)
	assert.Equal(t, 2.25, bucket.TotalActiveSeconds)
	assert.True(t, bucket.LastSeenTime.Equal(storeTestTime))
}

func TestActivityStore_AddActivity_Additive(t *testing.T) {
	s := NewActivityStore()
	scores := []float64{2.25, 0.5, 1.75, 0.25}
	var sum float64
	for i, sc := range scores {
		at := storeTestTime.Add(time.Duration(i) * time.Second)
		s.AddActivity("f.dwg", "2025-03-14", sc, at)
		sum += sc
	}

	bucket := s.GetData()["f.dwg"].DailyActivity["2025-03-14"]
	assert.InDelta(t, sum, bucket.TotalActiveSeconds, 1e-9)
	assert.True(t, bucket.LastSeenTime.Equal(storeTestTime.Add(3*time.Second)))
}

func TestActivityStore_AddActivity_ZeroIsNoOp(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("f.dwg", "2025-03-14", 0, storeTestTime)

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Empty())
}

func TestActivityStore_AddActivity_NegativeIsNoOp(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("f.dwg", "2025-03-14", -5, storeTestTime)
	assert.True(t, s.Empty())
}

func TestActivityStore_EnsureDay_Idempotent(t *testing.T) {
	s := NewActivityStore()
	b1 := s.EnsureDay("f.dwg", "2025-03-14", storeTestTime)
	b2 := s.EnsureDay("f.dwg", "2025-03-14", storeTestTime.Add(time.Hour))

	assert.Same(t, b1, b2)
	assert.Equal(t, float64(0), b1.TotalActiveSeconds)
	// Creation time is kept on the second call.
	assert.True(t, b1.LastSeenTime.Equal(storeTestTime))
}

func TestActivityStore_SeparateDaysSeparateBuckets(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("f.dwg", "2025-03-13", 10, storeTestTime)
	s.AddActivity("f.dwg", "2025-03-14", 20, storeTestTime)

	data := s.GetData()
	assert.Len(t, data["f.dwg"].DailyActivity, 2)
	assert.Equal(t, float64(10), data["f.dwg"].DailyActivity["2025-03-13"].TotalActiveSeconds)
	assert.Equal(t, float64(20), data["f.dwg"].DailyActivity["2025-03-14"].TotalActiveSeconds)
}

func TestActivityStore_Merge_SumsAndKeepsNewestSeen(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("f.dwg", "2025-03-14", 30, storeTestTime)

	other := map[string]*ActivityRecord{
		"f.dwg": {DailyActivity: map[string]*DayBucket{
			"2025-03-14": {TotalActiveSeconds: 12, LastSeenTime: NewTrackTime(storeTestTime.Add(-time.Hour))},
		}},
		"g.ipt": {DailyActivity: map[string]*DayBucket{
			"2025-03-13": {TotalActiveSeconds: 7, LastSeenTime: NewTrackTime(storeTestTime)},
		}},
	}
	s.Merge(other)

	data := s.GetData()
	bucket := data["f.dwg"].DailyActivity["2025-03-14"]
	assert.Equal(t, float64(42), bucket.TotalActiveSeconds)
	// Older merged LastSeenTime does not win.
	assert.True(t, bucket.LastSeenTime.Equal(storeTestTime))
	assert.Equal(t, float64(7), data["g.ipt"].DailyActivity["2025-03-13"].TotalActiveSeconds)
}

func TestActivityStore_Merge_SkipsEmptyRecords(t *testing.T) {
	s := NewActivityStore()
	s.Merge(map[string]*ActivityRecord{
		"empty.dwg": {DailyActivity: map[string]*DayBucket{}},
		"nil.dwg":   nil,
	})
	assert.True(t, s.Empty())
}

func TestActivityStore_Summarize(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("a.ipt", "2025-03-13", 1800, storeTestTime)
	s.AddActivity("a.ipt", "2025-03-14", 1800, storeTestTime)
	s.AddActivity("b.dwg", "2025-03-14", 3600, storeTestTime)

	sum := s.Summarize()
	assert.Equal(t, 2, sum.FileCount)
	assert.Equal(t, 3, sum.DayCount)
	assert.Equal(t, float64(7200), sum.TotalActiveSeconds)
	assert.Equal(t, float64(2), sum.TotalActiveHours)
}

func TestActivityStore_GetData_IsDeepCopy(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("a.ipt", "2025-03-14", 10, storeTestTime)

	snapshot := s.GetData()
	snapshot["a.ipt"].DailyActivity["2025-03-14"].TotalActiveSeconds = 999

	assert.Equal(t, float64(10), s.GetData()["a.ipt"].DailyActivity["2025-03-14"].TotalActiveSeconds)
}

func TestActivityStore_PutData_Replaces(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity("old.ipt", "2025-03-14", 10, storeTestTime)

	s.PutData(map[string]*ActivityRecord{
		"new.ipt": {DailyActivity: map[string]*DayBucket{
			"2025-03-14": {TotalActiveSeconds: 5, LastSeenTime: NewTrackTime(storeTestTime)},
		}},
	})

	data := s.GetData()
	assert.NotContains(t, data, "old.ipt")
	assert.Contains(t, data, "new.ipt")
}
