package backtest

import "github.com/Alias1177/bigsmall/models"

// CalculatePerformanceMetrics fills the summary fields from DetailedResults
func CalculatePerformanceMetrics(results *Results) {
	if results == nil {
		return
	}

	results.TotalPredictions = len(results.DetailedResults)
	results.CorrectPredictions = 0
	results.MaxConsecutive.Wins = 0
	results.MaxConsecutive.Losses = 0
	if results.TotalPredictions == 0 {
		results.WinPercentage = 0
		results.BrierScore = 0
		return
	}

	consecutiveWins, consecutiveLosses := 0, 0
	squaredError := 0.0

	for _, step := range results.DetailedResults {
		if step.WasCorrect {
			results.CorrectPredictions++
			consecutiveWins++
			consecutiveLosses = 0
		} else {
			consecutiveLosses++
			consecutiveWins = 0
		}

		if consecutiveWins > results.MaxConsecutive.Wins {
			results.MaxConsecutive.Wins = consecutiveWins
		}
		if consecutiveLosses > results.MaxConsecutive.Losses {
			results.MaxConsecutive.Losses = consecutiveLosses
		}

		outcome := 0.0
		if step.Actual == models.SizeBig {
			outcome = 1.0
		}
		diff := step.Prediction.ProbBig - outcome
		squaredError += diff * diff
	}

	total := float64(results.TotalPredictions)
	results.WinPercentage = float64(results.CorrectPredictions) / total * 100
	results.BrierScore = squaredError / total
}
