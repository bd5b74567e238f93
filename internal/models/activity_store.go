package models

import (
	"sync"
	"time"
)

// ActivityStore maps file identity -> per-day activity buckets. The
// tracker loop is the only writer; the status API and the persistence
// snapshot read concurrently, hence the RWMutex.
type ActivityStore struct {
	mu   sync.RWMutex
	data map[string]*ActivityRecord
}

func NewActivityStore() *ActivityStore {
	return &ActivityStore{
		data: make(map[string]*ActivityRecord),
	}
}

// EnsureDay returns the bucket for (fileID, day), creating the record
// and/or bucket on first use. Repeated calls return the same bucket.
func (s *ActivityStore) EnsureDay(fileID, day string, now time.Time) *DayBucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureDayLocked(fileID, day, now)
}

func (s *ActivityStore) ensureDayLocked(fileID, day string, now time.Time) *DayBucket {
	rec, ok := s.data[fileID]
	if !ok {
		rec = &ActivityRecord{DailyActivity: make(map[string]*DayBucket)}
		s.data[fileID] = rec
	}
	bucket, ok := rec.DailyActivity[day]
	if !ok {
		bucket = &DayBucket{LastSeenTime: NewTrackTime(now)}
		rec.DailyActivity[day] = bucket
	}
	return bucket
}

// AddActivity credits seconds to the (fileID, day) bucket and stamps the
// observation time. Zero or negative seconds are a no-op and never
// materialize an entry.
func (s *ActivityStore) AddActivity(fileID, day string, seconds float64, observedAt time.Time) {
	if seconds <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.ensureDayLocked(fileID, day, observedAt)
	bucket.TotalActiveSeconds += seconds
	bucket.LastSeenTime = NewTrackTime(observedAt)
}

// Merge folds another data set into the store: per (fileID, day) the
// seconds are summed and the newest LastSeenTime wins. Used when loading
// persisted data on top of whatever is already in memory.
func (s *ActivityStore) Merge(other map[string]*ActivityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for fileID, rec := range other {
		if rec == nil || len(rec.DailyActivity) == 0 {
			continue
		}
		for day, bucket := range rec.DailyActivity {
			if bucket == nil {
				continue
			}
			existing := s.ensureDayLocked(fileID, day, bucket.LastSeenTime.Time)
			existing.TotalActiveSeconds += bucket.TotalActiveSeconds
			if bucket.LastSeenTime.After(existing.LastSeenTime.Time) {
				existing.LastSeenTime = bucket.LastSeenTime
			}
		}
	}
}

// PutData replaces the store contents wholesale.
func (s *ActivityStore) PutData(data map[string]*ActivityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]*ActivityRecord, len(data))
	for fileID, rec := range data {
		if rec == nil {
			continue
		}
		s.data[fileID] = copyRecord(rec)
	}
}

// GetData returns a deep copy of the store contents, safe to serialize
// while the tracker keeps mutating the live store.
func (s *ActivityStore) GetData() map[string]*ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*ActivityRecord, len(s.data))
	for fileID, rec := range s.data {
		result[fileID] = copyRecord(rec)
	}
	return result
}

func copyRecord(rec *ActivityRecord) *ActivityRecord {
	out := &ActivityRecord{DailyActivity: make(map[string]*DayBucket, len(rec.DailyActivity))}
	for day, bucket := range rec.DailyActivity {
		if bucket == nil {
			continue
		}
		b := *bucket
		out.DailyActivity[day] = &b
	}
	return out
}

func (s *ActivityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *ActivityStore) Empty() bool {
	return s.Len() == 0
}

// Summarize aggregates the whole store into file/bucket counts and total
// active time.
func (s *ActivityStore) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{FileCount: len(s.data)}
	for _, rec := range s.data {
		summary.DayCount += len(rec.DailyActivity)
		for _, bucket := range rec.DailyActivity {
			summary.TotalActiveSeconds += bucket.TotalActiveSeconds
		}
	}
	summary.TotalActiveHours = summary.TotalActiveSeconds / 3600
	return summary
}
