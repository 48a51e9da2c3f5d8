package potential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potgrid/costmap"
	"github.com/katalvlaran/potgrid/potential"
)

// unsettledField returns a w×h field with every cell at PotHigh.
func unsettledField(w, h int) []float64 {
	f := make([]float64, w*h)
	for i := range f {
		f[i] = potential.PotHigh
	}
	return f
}

func TestIsSettled(t *testing.T) {
	assert.True(t, potential.IsSettled(0))
	assert.True(t, potential.IsSettled(1e9))
	assert.False(t, potential.IsSettled(potential.PotHigh))
}

func TestAdditive_Geometric(t *testing.T) {
	a := potential.DefaultAdditive()
	assert.Equal(t, 3.0, a.Potential(potential.Input{Prev: 2, Step: 1}))
	assert.InDelta(t, 2+math.Sqrt2, a.Potential(potential.Input{Prev: 2, Step: math.Sqrt2}), 1e-12)
}

func TestAdditive_CostPenalty(t *testing.T) {
	a := potential.Additive{Neutral: 1, Factor: 0.1, UnknownCost: 100}

	free := a.Potential(potential.Input{Prev: 0, Step: 1, Cost: costmap.Free})
	mid := a.Potential(potential.Input{Prev: 0, Step: 1, Cost: 50})
	ins := a.Potential(potential.Input{Prev: 0, Step: 1, Cost: costmap.Inscribed})
	unk := a.Potential(potential.Input{Prev: 0, Step: 1, Cost: costmap.Unknown})

	assert.Equal(t, 1.0, free)
	assert.InDelta(t, 6.0, mid, 1e-12)
	assert.InDelta(t, 26.3, ins, 1e-9)
	assert.InDelta(t, 11.0, unk, 1e-12)
	assert.Less(t, free, mid)
	assert.Less(t, mid, ins)
}

func TestAdditive_ZeroNeutralIsOne(t *testing.T) {
	var a potential.Additive
	assert.Equal(t, 5.0, a.Potential(potential.Input{Prev: 4, Step: 1}))
}

func TestAdditive_NeverBelowPrev(t *testing.T) {
	a := potential.Additive{Neutral: 1, Factor: 2, UnknownCost: costmap.Inscribed}
	for c := 0; c < 256; c++ {
		if uint8(c) == costmap.Lethal {
			continue
		}
		got := a.Potential(potential.Input{Prev: 7, Step: 1, Cost: uint8(c)})
		assert.GreaterOrEqual(t, got, 7.0)
	}
}

func TestQuadratic_SingleAxis(t *testing.T) {
	// 3×3, only the left neighbor of the center is settled.
	f := unsettledField(3, 3)
	f[3] = 2
	q := potential.Quadratic{Additive: potential.DefaultAdditive()}
	got := q.Potential(potential.Input{Field: f, Width: 3, Cell: 4, Step: 1, Prev: 2})
	assert.Equal(t, 3.0, got)
}

func TestQuadratic_TwoAxesInterpolate(t *testing.T) {
	// Left and up settled at equal potential: wavefront arrives diagonally,
	// so the update is cheaper than a full orthogonal step.
	f := unsettledField(3, 3)
	f[3] = 1
	f[1] = 1
	q := potential.Quadratic{Additive: potential.DefaultAdditive()}
	got := q.Potential(potential.Input{Field: f, Width: 3, Cell: 4, Step: 1, Prev: 1})
	assert.InDelta(t, 1.704, got, 1e-9)
	assert.GreaterOrEqual(t, got, 1.0)
}

func TestQuadratic_FallbackToAdditive(t *testing.T) {
	// Only a diagonal neighbor is settled.
	f := unsettledField(3, 3)
	f[0] = 0
	q := potential.Quadratic{Additive: potential.DefaultAdditive()}
	got := q.Potential(potential.Input{Field: f, Width: 3, Cell: 4, Step: math.Sqrt2, Prev: 0})
	assert.InDelta(t, math.Sqrt2, got, 1e-12)
}

func TestQuadratic_GridEdges(t *testing.T) {
	// Corner cell in a 2×2 grid must not read out of bounds.
	f := unsettledField(2, 2)
	f[1] = 0
	q := potential.Quadratic{Additive: potential.DefaultAdditive()}
	assert.NotPanics(t, func() {
		got := q.Potential(potential.Input{Field: f, Width: 2, Cell: 0, Step: 1})
		assert.Equal(t, 1.0, got)
	})
	assert.NotPanics(t, func() {
		_ = q.Potential(potential.Input{Field: f, Width: 2, Cell: 3, Step: 1})
	})
}

func TestByName(t *testing.T) {
	base := potential.DefaultAdditive()
	c, err := potential.ByName("additive", base)
	require.NoError(t, err)
	assert.Equal(t, base, c)

	c, err = potential.ByName("Quadratic", base)
	require.NoError(t, err)
	assert.Equal(t, potential.Quadratic{Additive: base}, c)

	_, err = potential.ByName("eikonal", base)
	assert.ErrorIs(t, err, potential.ErrUnknownCalculator)
}

func TestCalculators_BadFactorNeverLowersPotential(t *testing.T) {
	// Left neighbor settled at 7, the rest unsettled.
	f := unsettledField(3, 3)
	f[3] = 7
	tests := []struct {
		name   string
		factor float64
	}{
		{"negative", -1},
		{"large negative", -1e6},
		{"nan", math.NaN()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := potential.Additive{Neutral: 1, Factor: tc.factor, UnknownCost: 100}
			calcs := map[string]potential.Calculator{
				"additive":  base,
				"quadratic": potential.Quadratic{Additive: base},
			}
			for cname, c := range calcs {
				for _, cost := range []uint8{costmap.Free, 100, costmap.Inscribed, costmap.Unknown} {
					got := c.Potential(potential.Input{Field: f, Width: 3, Cell: 4, Cost: cost, Step: 1, Prev: 7})
					assert.Equal(t, 8.0, got, "%s cost=%d", cname, cost)
				}
			}
		})
	}
}

func TestAdditive_NaNNeutralIsOne(t *testing.T) {
	a := potential.Additive{Neutral: math.NaN()}
	assert.Equal(t, 3.0, a.Potential(potential.Input{Prev: 2, Step: 1}))
}
