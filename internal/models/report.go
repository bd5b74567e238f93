package models

import (
	"math"
	"sort"
	"strings"
)

// ReportRow is one flattened (file, day) line of the exported report.
type ReportRow struct {
	Date               string    `json:"date"`
	FileName           string    `json:"file_name"`
	FullPath           string    `json:"full_path"`
	TotalActiveSeconds float64   `json:"total_active_seconds"`
	TotalActiveMinutes float64   `json:"total_active_minutes"`
	TotalActiveHours   float64   `json:"total_active_hours"`
	LastSeenTime       TrackTime `json:"last_seen_time"`
}

// FlattenRows turns a tracking data set into report rows ordered by day
// descending, then total seconds descending, with the full identity as a
// deterministic tie breaker.
func FlattenRows(data map[string]*ActivityRecord) []ReportRow {
	rows := make([]ReportRow, 0, len(data))
	for fileID, rec := range data {
		if rec == nil {
			continue
		}
		for day, bucket := range rec.DailyActivity {
			if bucket == nil {
				continue
			}
			rows = append(rows, ReportRow{
				Date:               day,
				FileName:           DisplayName(fileID),
				FullPath:           fileID,
				TotalActiveSeconds: round2(bucket.TotalActiveSeconds),
				TotalActiveMinutes: round2(bucket.TotalActiveSeconds / 60),
				TotalActiveHours:   round4(bucket.TotalActiveSeconds / 3600),
				LastSeenTime:       bucket.LastSeenTime,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		if rows[i].TotalActiveSeconds != rows[j].TotalActiveSeconds {
			return rows[i].TotalActiveSeconds > rows[j].TotalActiveSeconds
		}
		return rows[i].FullPath < rows[j].FullPath
	})
	return rows
}

// DisplayName extracts the leaf name from an identity for presentation.
// Identities come from multiple hosts, so both separator styles occur.
func DisplayName(fileID string) string {
	if fileID == "" {
		return "Unknown"
	}
	idx := strings.LastIndexAny(fileID, `/\`)
	if idx < 0 || idx == len(fileID)-1 {
		return fileID
	}
	return fileID[idx+1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
