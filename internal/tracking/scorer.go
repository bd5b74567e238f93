package tracking

import (
	"atd/internal/models"
	"atd/internal/structures"
)

// Score converts one input sample into seconds of credited activity.
// Pure: an all-zero sample always scores 0 and callers must not touch
// the store for it.
func Score(sample models.ActivitySample, weights structures.Weights) float64 {
	score := float64(sample.MouseClicks)*weights.MouseClick +
		float64(sample.KeyPresses)*weights.KeyPress
	if sample.Continuous {
		score += weights.Continuous
	}
	return score
}
