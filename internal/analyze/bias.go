package analyze

import "math"

const (
	// BiasStep is the probability shift per unit of imbalance
	BiasStep = 0.05
	// MaxBias caps the shift away from 0.5
	MaxBias = 0.2
)

// ProbBig returns the chance of the next outcome being Big.
// The estimate leans toward whichever label appeared less often.
func ProbBig(bigCount, smallCount int) float64 {
	if bigCount == smallCount {
		return 0.5
	}

	diff := math.Abs(float64(bigCount - smallCount))
	bias := math.Min(MaxBias, BiasStep*diff)

	if smallCount > bigCount {
		// Small dominated, lean toward Big
		return 0.5 + bias
	}
	return 0.5 - bias
}
