package services

import (
	"time"

	"atd/internal/models"
)

type TrackingServiceInterface interface {
	RecordActivity(fileID string, seconds float64, observedAt time.Time)
	MergeData(data map[string]*models.ActivityRecord)
	PutData(data map[string]*models.ActivityRecord)
	GetSnapshot() map[string]*models.ActivityRecord
	GetRows() []models.ReportRow
	Summarize() models.Summary
	FileCount() int
	Empty() bool
}

type TrackingService struct {
	store *models.ActivityStore
}

func NewTrackingService() TrackingServiceInterface {
	return &TrackingService{
		store: models.NewActivityStore(),
	}
}

// RecordActivity credits seconds to the current-day bucket of the file,
// bucketed by the observation's local calendar day.
func (ts *TrackingService) RecordActivity(fileID string, seconds float64, observedAt time.Time) {
	ts.store.AddActivity(fileID, models.DayKey(observedAt), seconds, observedAt)
}

func (ts *TrackingService) MergeData(data map[string]*models.ActivityRecord) {
	ts.store.Merge(data)
}

func (ts *TrackingService) PutData(data map[string]*models.ActivityRecord) {
	ts.store.PutData(data)
}

func (ts *TrackingService) GetSnapshot() map[string]*models.ActivityRecord {
	return ts.store.GetData()
}

func (ts *TrackingService) GetRows() []models.ReportRow {
	return models.FlattenRows(ts.store.GetData())
}

func (ts *TrackingService) Summarize() models.Summary {
	return ts.store.Summarize()
}

func (ts *TrackingService) FileCount() int {
	return ts.store.Len()
}

func (ts *TrackingService) Empty() bool {
	return ts.store.Empty()
}
