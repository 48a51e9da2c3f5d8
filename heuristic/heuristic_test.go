package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potgrid/heuristic"
)

func TestEstimators(t *testing.T) {
	tests := []struct {
		name string
		h    heuristic.Estimator
		want float64
	}{
		{"euclidean", heuristic.Euclidean{}, 5},
		{"manhattan", heuristic.Manhattan{}, 7},
		{"chebyshev", heuristic.Chebyshev{}, 4},
		{"octile", heuristic.Octile{}, 4 + 3*(math.Sqrt2-1)},
		{"zero", heuristic.Zero{}, 0},
		{"scaled euclidean", heuristic.Euclidean{Scale: 2}, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// (1,2) -> (5,5): dx=4, dy=3
			assert.InDelta(t, tc.want, tc.h.Estimate(1, 2, 5, 5), 1e-12)
			// symmetric
			assert.InDelta(t, tc.want, tc.h.Estimate(5, 5, 1, 2), 1e-12)
			assert.Zero(t, tc.h.Estimate(3, 3, 3, 3))
		})
	}
}

func TestOctile_MatchesDiagonalSteps(t *testing.T) {
	// 4 diagonal steps on an open grid cost exactly 4√2.
	assert.InDelta(t, 4*math.Sqrt2, heuristic.Octile{}.Estimate(0, 0, 4, 4), 1e-12)
}

func TestEuclidean_NeverExceedsOctile(t *testing.T) {
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			e := heuristic.Euclidean{}.Estimate(x, y, 0, 0)
			o := heuristic.Octile{}.Estimate(x, y, 0, 0)
			assert.LessOrEqual(t, e, o+1e-12)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "Euclidean", "manhattan", "chebyshev", "octile", "diagonal", "zero", "dijkstra"} {
		h, err := heuristic.ByName(name, 0)
		require.NoError(t, err, name)
		assert.NotNil(t, h)
	}

	h, err := heuristic.ByName("manhattan", 3)
	require.NoError(t, err)
	assert.Equal(t, heuristic.Manhattan{Scale: 3}, h)

	_, err = heuristic.ByName("teleport", 1)
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}

func TestScale_InvalidIsOne(t *testing.T) {
	for _, s := range []float64{math.NaN(), -2, 0} {
		assert.InDelta(t, 5.0, heuristic.Euclidean{Scale: s}.Estimate(0, 0, 3, 4), 1e-12)
		assert.Equal(t, 7.0, heuristic.Manhattan{Scale: s}.Estimate(0, 0, 3, 4))
	}
}
