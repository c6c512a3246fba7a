package prediction

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Alias1177/bigsmall/internal/analyze"
	"github.com/Alias1177/bigsmall/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Predictor turns a recent Big/Small history into a randomized guess.
// It holds no random state, every call builds its own source.
type Predictor struct {
	logger zerolog.Logger
}

// NewPredictor creates a predictor logging under the "predictor" component
func NewPredictor() *Predictor {
	return &Predictor{
		logger: log.With().Str("component", "predictor").Logger(),
	}
}

// NewSource returns a random source for one prediction.
// A nil seed gives a non-reproducible source.
func NewSource(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(*seed), 0))
}

// Predict runs one prediction; the same seed and history always give the same result
func (p *Predictor) Predict(history []string, seed *int64) (*models.Prediction, error) {
	return p.PredictWithRand(history, NewSource(seed))
}

// PredictWithRand runs one prediction drawing from r.
// Draws happen in a fixed order: size, number, colour.
func (p *Predictor) PredictWithRand(history []string, r *rand.Rand) (*models.Prediction, error) {
	bigCount, smallCount, err := analyze.Tally(history)
	if err != nil {
		p.logger.Warn().Err(err).Int("length", len(history)).Msg("Rejected history")
		return nil, fmt.Errorf("tallying history: %w", err)
	}

	probBig := analyze.ProbBig(bigCount, smallCount)

	// Decide Big/Small
	draw := r.Float64()
	nextIsBig := draw < probBig

	size := models.SizeSmall
	number := r.IntN(5)
	if nextIsBig {
		size = models.SizeBig
		number += 5
	}

	color := models.Colors[r.IntN(len(models.Colors))]

	result := &models.Prediction{
		BigCount:        bigCount,
		SmallCount:      smallCount,
		ProbBig:         round3(probBig),
		RandomDraw:      round3(draw),
		PredictedSize:   size,
		PredictedNumber: number,
		PredictedColor:  color,
	}

	p.logger.Debug().
		Int("big", bigCount).
		Int("small", smallCount).
		Float64("prob_big", result.ProbBig).
		Float64("draw", result.RandomDraw).
		Str("size", string(size)).
		Int("number", number).
		Str("color", string(color)).
		Msg("Prediction generated")

	return result, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
