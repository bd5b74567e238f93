package models

// ActivitySample is one tick's worth of raw input-device counters.
type ActivitySample struct {
	MouseClicks int
	KeyPresses  int
	Continuous  bool
}

// Zero reports whether the sample carries no activity at all. Zero
// samples never touch the store.
func (s ActivitySample) Zero() bool {
	return s.MouseClicks == 0 && s.KeyPresses == 0 && !s.Continuous
}

// TargetAppState is one tick's worth of target-application state. FileID
// is an opaque identity string and empty when no document is open.
type TargetAppState struct {
	Active bool
	FileID string
}

// Summary is the read-only aggregate view of the whole store.
type Summary struct {
	FileCount          int     `json:"file_count"`
	DayCount           int     `json:"day_count"`
	TotalActiveSeconds float64 `json:"total_active_seconds"`
	TotalActiveHours   float64 `json:"total_active_hours"`
}
