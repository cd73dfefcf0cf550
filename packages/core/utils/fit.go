package utils

import (
	"math"

	"courtiq-api/packages/core/models"
)

// CalculateFitScore calculates the weighted fit score of a recruit on a 0-100 scale
// Each criterion score is on a 0-10 scale; missing scores count as 0
// Returns (fitScore, breakdown)
func CalculateFitScore(criteria map[string]models.Criterion, scores map[string]float64) (int, map[string]models.FitBreakdown) {
	breakdown := make(map[string]models.FitBreakdown, len(criteria))

	var totalWeight, weightedScore float64
	for key, criterion := range criteria {
		score := scores[key]
		weighted := (score / 10) * criterion.Weight

		totalWeight += criterion.Weight
		weightedScore += weighted

		breakdown[key] = models.FitBreakdown{
			Label:    criterion.Label,
			Score:    score,
			Weight:   criterion.Weight,
			Weighted: math.Round(weighted*10) / 10,
		}
	}

	// No weights configured
	if totalWeight == 0 {
		return 0, breakdown
	}

	return int(math.Round(weightedScore / totalWeight * 100)), breakdown
}
