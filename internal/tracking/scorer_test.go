package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atd/internal/models"
	"atd/internal/structures"
)

var testWeights = structures.Weights{
	MouseClick: 0.5,
	KeyPress:   0.25,
	Continuous: 0.25,
}

func TestScore_WeightedSum(t *testing.T) {
	sample := models.ActivitySample{MouseClicks: 2, KeyPresses: 4, Continuous: true}
	assert.Equal(t, 2.25, Score(sample, testWeights))
}

func TestScore_ZeroSample(t *testing.T) {
	assert.Equal(t, float64(0), Score(models.ActivitySample{}, testWeights))
}

func TestScore_ContinuousOnly(t *testing.T) {
	sample := models.ActivitySample{Continuous: true}
	assert.Equal(t, 0.25, Score(sample, testWeights))
}

func TestScore_ZeroWeights(t *testing.T) {
	sample := models.ActivitySample{MouseClicks: 100, KeyPresses: 100, Continuous: true}
	assert.Equal(t, float64(0), Score(sample, structures.Weights{}))
}

func TestScore_FractionalWeights(t *testing.T) {
	sample := models.ActivitySample{MouseClicks: 3, KeyPresses: 1, Continuous: false}
	w := structures.Weights{MouseClick: 0.1, KeyPress: 0.05}
	assert.InDelta(t, 0.35, Score(sample, w), 1e-9)
}

func TestActivitySample_Zero(t *testing.T) {
	assert.True(t, models.ActivitySample{}.Zero())
	assert.False(t, models.ActivitySample{MouseClicks: 1}.Zero())
	assert.False(t, models.ActivitySample{Continuous: true}.Zero())
}
