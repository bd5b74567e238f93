package tracking

import (
	"atd/internal/models"
	"atd/internal/structures"
)

// InputSampler produces one ActivitySample per tick. Real input-device
// hooks are host specific and live behind this boundary.
type InputSampler interface {
	SampleActivity() (models.ActivitySample, error)
}

// TargetAppProvider reports whether the tracked application is running
// and which document it has open. An inactive app or a missing document
// is expected absence, not an error.
type TargetAppProvider interface {
	GetTargetAppState() (models.TargetAppState, error)
}

// PresenceSampler is the portable fallback input sampler: it reports the
// continuous-activity flag on every tick, so an open document earns the
// continuous weight even without OS-level input hooks.
type PresenceSampler struct{}

func (PresenceSampler) SampleActivity() (models.ActivitySample, error) {
	return models.ActivitySample{Continuous: true}, nil
}

// NullSampler never reports activity. Useful when an external hook feeds
// the daemon and the built-in sampler must stay out of the way.
type NullSampler struct{}

func (NullSampler) SampleActivity() (models.ActivitySample, error) {
	return models.ActivitySample{}, nil
}

func NewInputSampler(conf *structures.Config) InputSampler {
	if conf.Tracking.InputSampler == "none" {
		return NullSampler{}
	}
	return PresenceSampler{}
}
