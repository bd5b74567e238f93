package models

import (
	"fmt"
	"time"
)

// FormatVersion is stamped into Metadata on every save. Version 1 was the
// flat per-file format without day buckets; version 2 is the current
// day-bucketed envelope.
const FormatVersion = 2

const (
	DayKeyLayout   = "2006-01-02"
	TimeLayout     = "2006-01-02 15:04:05"
	maxTimeLenHint = len(TimeLayout) + 2
)

// TrackTime marshals as "2006-01-02 15:04:05" and accepts RFC3339 on
// decode as well, since older exports wrote RFC3339 timestamps.
type TrackTime struct {
	time.Time
}

func NewTrackTime(t time.Time) TrackTime {
	return TrackTime{Time: t}
}

func (t TrackTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	b := make([]byte, 0, maxTimeLenHint)
	b = append(b, '"')
	b = t.AppendFormat(b, TimeLayout)
	b = append(b, '"')
	return b, nil
}

func (t *TrackTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp: %s", s)
	}
	s = s[1 : len(s)-1]
	for _, layout := range []string{TimeLayout, time.RFC3339, time.RFC3339Nano} {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp: %q", s)
}

// DayBucket accumulates active seconds for one tracked file on one
// calendar day.
type DayBucket struct {
	TotalActiveSeconds float64   `json:"TotalActiveSeconds"`
	LastSeenTime       TrackTime `json:"LastSeenTime"`
}

// ActivityRecord holds the per-day buckets for one file identity, keyed
// by the local-time "YYYY-MM-DD" day.
type ActivityRecord struct {
	DailyActivity map[string]*DayBucket `json:"DailyActivity"`
}

type Metadata struct {
	ComputerName string    `json:"ComputerName"`
	UserName     string    `json:"UserName"`
	ExportTime   TrackTime `json:"ExportTime"`
	Version      int       `json:"Version"`
}

// PersistedDocument is the current on-disk shape.
type PersistedDocument struct {
	Metadata     Metadata                   `json:"Metadata"`
	TrackingData map[string]*ActivityRecord `json:"TrackingData"`
}

// LegacyRecord is the version 1 on-disk shape: a flat per-file total with
// no day dimension. Some legacy writers emitted the seconds as a quoted
// string, so the field is decoded loosely and coerced later.
type LegacyRecord struct {
	TotalActiveSeconds interface{} `json:"TotalActiveSeconds"`
	LastSeenTime       TrackTime   `json:"LastSeenTime"`
}

// DayKey returns the canonical bucket key for a timestamp in local time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}
