package testutil

import (
	"sync"
	"time"

	"atd/internal/models"
	"atd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel returns how many entries were logged at the given level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockTrackingService implements services.TrackingServiceInterface.
type MockTrackingService struct {
	mu          sync.Mutex
	AddCalls    []AddActivityCall
	MergeCalls  []map[string]*models.ActivityRecord
	PutCalls    []map[string]*models.ActivityRecord
	Snapshot    map[string]*models.ActivityRecord
	SummaryData models.Summary
}

type AddActivityCall struct {
	FileID     string
	Seconds    float64
	ObservedAt time.Time
}

func (m *MockTrackingService) RecordActivity(fileID string, seconds float64, observedAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, AddActivityCall{FileID: fileID, Seconds: seconds, ObservedAt: observedAt})
}

func (m *MockTrackingService) MergeData(data map[string]*models.ActivityRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MergeCalls = append(m.MergeCalls, data)
}

func (m *MockTrackingService) PutData(data map[string]*models.ActivityRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, data)
}

func (m *MockTrackingService) GetSnapshot() map[string]*models.ActivityRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Snapshot == nil {
		return map[string]*models.ActivityRecord{}
	}
	return m.Snapshot
}

func (m *MockTrackingService) GetRows() []models.ReportRow {
	return models.FlattenRows(m.GetSnapshot())
}

func (m *MockTrackingService) Summarize() models.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SummaryData
}

func (m *MockTrackingService) FileCount() int {
	return len(m.GetSnapshot())
}

func (m *MockTrackingService) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Snapshot) == 0 && len(m.AddCalls) == 0 && len(m.MergeCalls) == 0
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockInputSampler returns a fixed sample, or an error when set.
type MockInputSampler struct {
	Sample models.ActivitySample
	Err    error
}

func (m *MockInputSampler) SampleActivity() (models.ActivitySample, error) {
	return m.Sample, m.Err
}

// MockTargetProvider returns a fixed target app state, or an error when set.
type MockTargetProvider struct {
	State models.TargetAppState
	Err   error
}

func (m *MockTargetProvider) GetTargetAppState() (models.TargetAppState, error) {
	return m.State, m.Err
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu              sync.Mutex
	Ticks           int
	ActiveTicks     int
	Skipped         map[string]int
	CreditedSeconds float64
	SaveResults     []bool
	ExportResults   []bool
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration)       {}

func (m *MockMetrics) IncTicksTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Ticks++
}

func (m *MockMetrics) IncActiveTicks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveTicks++
}

func (m *MockMetrics) IncSkippedTicks(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Skipped == nil {
		m.Skipped = make(map[string]int)
	}
	m.Skipped[reason]++
}

func (m *MockMetrics) AddCreditedSeconds(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreditedSeconds += seconds
}

func (m *MockMetrics) IncSaves(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveResults = append(m.SaveResults, success)
}

func (m *MockMetrics) IncExports(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExportResults = append(m.ExportResults, success)
}
