package tracking

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"atd/internal/providers"
	"atd/internal/services"
	"atd/internal/structures"
	"atd/internal/tracking/interfaces"
)

type State int32

const (
	StateIdle State = iota
	StateRunning
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// maxSleepSlice bounds a single uninterrupted wait so cancellation is
// honored within about a second even with multi-second tick intervals.
const maxSleepSlice = time.Second

// Tracker drives the poll -> score -> accumulate -> persist cycle. It is
// the single writer of the activity store; everything else only reads.
type Tracker struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.TrackingServiceInterface
	fileManager *FileManager
	exporter    *Exporter
	sampler     InputSampler
	target      TargetAppProvider
	metrics     providers.MetricsProviderInterface
	state       atomic.Int32
	now         func() time.Time
}

func NewTracker(
	config *structures.Config,
	logger providers.Logger,
	service services.TrackingServiceInterface,
	fileManager *FileManager,
	exporter *Exporter,
	sampler InputSampler,
	target TargetAppProvider,
	metrics providers.MetricsProviderInterface,
) interfaces.TrackerInterface {
	return &Tracker{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		exporter:    exporter,
		sampler:     sampler,
		target:      target,
		metrics:     metrics,
		now:         time.Now,
	}
}

func (t *Tracker) State() State {
	return State(t.state.Load())
}

// Restore loads persisted history into the store. Failures are reported
// by the caller and never prevent tracking new history.
func (t *Tracker) Restore() error {
	return t.fileManager.LoadFromFile(t.config.Persistence.FilePath)
}

// Run executes the tracking loop until ctx is cancelled, then drains:
// one unconditional save followed by one report export.
func (t *Tracker) Run(ctx context.Context) {
	t.state.Store(int32(StateRunning))
	t.logger.Infof(providers.TypeTracker, "Tracker running: tick=%s save=%s target=%s",
		t.config.TickInterval(), t.config.SaveInterval(), t.config.Tracking.TargetProcess)

	lastSave := t.now()
	for ctx.Err() == nil {
		t.tick()

		// The save timer resets on attempt: a failed save is retried at
		// the next interval, not on every tick.
		if t.now().Sub(lastSave) >= t.config.SaveInterval() {
			_ = t.Persist()
			lastSave = t.now()
		}

		if !t.sleep(ctx, t.config.TickInterval()) {
			break
		}
	}

	t.drain()
	t.state.Store(int32(StateStopped))
}

// tick performs one poll-score-accumulate pass. Any per-tick failure is
// logged and swallowed; a single bad tick never aborts tracking.
func (t *Tracker) tick() {
	t.metrics.IncTicksTotal()

	appState, err := t.target.GetTargetAppState()
	if err != nil {
		t.logger.Warnf(providers.TypeTracker, "Target app probe failed: %s", err)
		t.metrics.IncSkippedTicks("probe_error")
		return
	}
	if !appState.Active {
		t.metrics.IncSkippedTicks("app_inactive")
		return
	}
	if appState.FileID == "" {
		t.metrics.IncSkippedTicks("no_document")
		return
	}
	if t.isExcluded(appState.FileID) {
		t.metrics.IncSkippedTicks("excluded")
		return
	}

	sample, err := t.sampler.SampleActivity()
	if err != nil {
		t.logger.Warnf(providers.TypeTracker, "Input sample failed: %s", err)
		t.metrics.IncSkippedTicks("sample_error")
		return
	}

	score := Score(sample, t.config.Tracking.Weights)
	if score <= 0 {
		t.metrics.IncSkippedTicks("zero_score")
		return
	}

	observedAt := t.now()
	t.service.RecordActivity(appState.FileID, score, observedAt)
	t.metrics.IncActiveTicks()
	t.metrics.AddCreditedSeconds(score)
	t.logger.Debugf(providers.TypeTracker, "Credited %.2fs to %s", score, appState.FileID)
}

func (t *Tracker) isExcluded(fileID string) bool {
	for _, part := range t.config.Tracking.ExcludedIdentitySubstrings {
		if part != "" && strings.Contains(fileID, part) {
			return true
		}
	}
	return false
}

// sleep waits for d in short slices, rechecking cancellation between
// slices. Returns false once ctx is done.
func (t *Tracker) sleep(ctx context.Context, d time.Duration) bool {
	deadline := t.now().Add(d)
	for {
		remaining := deadline.Sub(t.now())
		if remaining <= 0 {
			return true
		}
		slice := remaining
		if slice > maxSleepSlice {
			slice = maxSleepSlice
		}
		timer := time.NewTimer(slice)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

// drain performs the guaranteed shutdown flush: exactly one save and one
// export, from the freshest in-memory data. If the store is empty (e.g.
// cancelled right after a crash-recovery restart) the persisted file is
// reloaded first so the export is not empty for no reason.
func (t *Tracker) drain() {
	t.state.Store(int32(StateDraining))
	t.logger.Infof(providers.TypeTracker, "Draining: final save and export")

	if t.service.Empty() {
		if err := t.Restore(); err != nil {
			t.logger.Warnf(providers.TypeTracker, "Reload before drain failed: %s", err)
		}
	}

	if err := t.Persist(); err != nil {
		t.logger.Errorf(providers.TypeTracker, "Final save failed: %s", err)
	}
	if err := t.ExportReport(); err != nil {
		t.logger.Errorf(providers.TypeTracker, "Final export failed: %s", err)
	}
}

// Persist saves the store to the configured data file.
func (t *Tracker) Persist() error {
	start := t.now()
	err := t.fileManager.SaveToFile(t.config.Persistence.FilePath)
	t.metrics.ObservePersistenceDuration(t.now().Sub(start))
	t.metrics.IncSaves(err == nil)
	if err != nil {
		t.logger.Errorf(providers.TypeTracker, "Error while persisting data: %s", err)
		return err
	}
	t.logger.Infof(providers.TypeTracker, "Persisted data to file %s", t.config.Persistence.FilePath)
	return nil
}

// ExportReport writes the flattened report to the configured path.
func (t *Tracker) ExportReport() error {
	err := t.exporter.ExportToFile(t.config.Report.FilePath)
	t.metrics.IncExports(err == nil)
	if err != nil {
		t.logger.Errorf(providers.TypeTracker, "Error while exporting report: %s", err)
		return err
	}
	return nil
}
