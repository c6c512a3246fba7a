package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Alias1177/bigsmall/internal/backtest"
)

// WriteBacktest prints a backtest summary; json output includes every step
func WriteBacktest(w io.Writer, format string, results *backtest.Results) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w,
			"===== Backtest =====\n"+
				"predictions: %d\n"+
				"correct: %d (%.2f%%)\n"+
				"brier_score: %.4f\n"+
				"max_consecutive_wins: %d\n"+
				"max_consecutive_losses: %d\n",
			results.TotalPredictions,
			results.CorrectPredictions, results.WinPercentage,
			results.BrierScore,
			results.MaxConsecutive.Wins,
			results.MaxConsecutive.Losses,
		)
		if err != nil {
			return fmt.Errorf("writing backtest summary: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding backtest: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
