package backtest

import (
	"fmt"
	"math/rand/v2"

	"github.com/Alias1177/bigsmall/internal/analysis/prediction"
	"github.com/Alias1177/bigsmall/internal/analyze"
	"github.com/Alias1177/bigsmall/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Step is one replayed prediction checked against the outcome that followed
type Step struct {
	Index      int               `json:"index"`
	Prediction models.Prediction `json:"prediction"`
	Actual     models.Size       `json:"actual"`
	WasCorrect bool              `json:"was_correct"`
}

// Results summarizes a replay over a recorded outcome sequence
type Results struct {
	TotalPredictions   int     `json:"total_predictions"`
	CorrectPredictions int     `json:"correct_predictions"`
	WinPercentage      float64 `json:"win_percentage"`
	BrierScore         float64 `json:"brier_score"`
	MaxConsecutive     struct {
		Wins   int `json:"wins"`
		Losses int `json:"losses"`
	} `json:"max_consecutive"`
	DetailedResults []Step `json:"detailed_results"`
}

// Engine replays the predictor over a recorded outcome sequence
type Engine struct {
	predictor *prediction.Predictor
	logger    zerolog.Logger
}

// NewEngine creates a new backtesting engine
func NewEngine(predictor *prediction.Predictor) *Engine {
	return &Engine{
		predictor: predictor,
		logger:    log.With().Str("component", "backtest").Logger(),
	}
}

// Run slides a HistoryLength window over outcomes (oldest first) and predicts
// each following outcome. One source seeded from seed feeds the whole run.
func (e *Engine) Run(outcomes []string, seed *int64) (*Results, error) {
	if len(outcomes) <= models.HistoryLength {
		return nil, fmt.Errorf("%w: need more than %d outcomes to backtest, got %d",
			analyze.ErrInvalidInput, models.HistoryLength, len(outcomes))
	}

	r := prediction.NewSource(seed)
	return e.run(outcomes, r)
}

func (e *Engine) run(outcomes []string, r *rand.Rand) (*Results, error) {
	results := &Results{
		DetailedResults: make([]Step, 0, len(outcomes)-models.HistoryLength),
	}

	for i := models.HistoryLength; i < len(outcomes); i++ {
		actual, err := analyze.ParseLabel(outcomes[i])
		if err != nil {
			return nil, fmt.Errorf("outcome %d: %w", i, err)
		}

		window := outcomes[i-models.HistoryLength : i]
		p, err := e.predictor.PredictWithRand(window, r)
		if err != nil {
			return nil, fmt.Errorf("window ending at %d: %w", i, err)
		}

		results.DetailedResults = append(results.DetailedResults, Step{
			Index:      i,
			Prediction: *p,
			Actual:     actual,
			WasCorrect: p.PredictedSize == actual,
		})
	}

	CalculatePerformanceMetrics(results)

	e.logger.Info().
		Int("predictions", results.TotalPredictions).
		Int("correct", results.CorrectPredictions).
		Float64("win_pct", results.WinPercentage).
		Float64("brier", results.BrierScore).
		Msg("Backtest finished")

	return results, nil
}
