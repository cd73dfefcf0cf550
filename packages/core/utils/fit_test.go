package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"courtiq-api/packages/core/models"
)

func TestCalculateFitScore(t *testing.T) {
	criteria := map[string]models.Criterion{
		"academics": {Label: "Academics", Weight: 30},
		"level":     {Label: "Playing level", Weight: 50},
		"character": {Label: "Character", Weight: 20},
	}
	scores := map[string]float64{"academics": 8, "level": 7}

	fit, breakdown := CalculateFitScore(criteria, scores)

	// (0.8*30 + 0.7*50 + 0) / 100 * 100 = 59
	assert.Equal(t, 59, fit)
	assert.Len(t, breakdown, 3)
	assert.Equal(t, models.FitBreakdown{Label: "Playing level", Score: 7, Weight: 50, Weighted: 35}, breakdown["level"])
	assert.Equal(t, 0.0, breakdown["character"].Weighted)
}

func TestCalculateFitScoreRoundsBreakdown(t *testing.T) {
	criteria := map[string]models.Criterion{"serve": {Label: "Serve", Weight: 7}}

	fit, breakdown := CalculateFitScore(criteria, map[string]float64{"serve": 3.3})

	assert.Equal(t, 33, fit)
	assert.Equal(t, 2.3, breakdown["serve"].Weighted)
}

func TestCalculateFitScoreWithoutWeights(t *testing.T) {
	fit, breakdown := CalculateFitScore(nil, map[string]float64{"x": 10})
	assert.Equal(t, 0, fit)
	assert.Empty(t, breakdown)
}
