package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbBig(t *testing.T) {
	tests := []struct {
		name     string
		big      int
		small    int
		expected float64
	}{
		{name: "small dominates by 4", big: 3, small: 7, expected: 0.7},
		{name: "small dominates by 2", big: 4, small: 6, expected: 0.6},
		{name: "big dominates by 2", big: 6, small: 4, expected: 0.4},
		{name: "big dominates by 4", big: 7, small: 3, expected: 0.3},
		{name: "capped for small", big: 0, small: 10, expected: 0.7},
		{name: "capped for big", big: 10, small: 0, expected: 0.3},
		{name: "odd difference", big: 9, small: 1, expected: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ProbBig(tt.big, tt.small), 1e-9)
		})
	}
}

func TestProbBig_EqualCountsIsExactlyHalf(t *testing.T) {
	assert.Equal(t, 0.5, ProbBig(5, 5))
	assert.Equal(t, 0.5, ProbBig(0, 0))
}

func TestProbBig_Bounds(t *testing.T) {
	for big := 0; big <= 10; big++ {
		p := ProbBig(big, 10-big)
		assert.GreaterOrEqual(t, p, 0.3-1e-9, "big=%d", big)
		assert.LessOrEqual(t, p, 0.7+1e-9, "big=%d", big)
	}
}

func TestProbBig_MonotonicAndSymmetric(t *testing.T) {
	prev := -1.0
	// big goes from 10 down to 0, so small-big increases
	for big := 10; big >= 0; big-- {
		small := 10 - big
		p := ProbBig(big, small)
		assert.GreaterOrEqual(t, p, prev, "big=%d small=%d", big, small)
		prev = p

		mirrored := ProbBig(small, big)
		assert.InDelta(t, 0.5-p, mirrored-0.5, 1e-9, "big=%d small=%d", big, small)
	}
}
