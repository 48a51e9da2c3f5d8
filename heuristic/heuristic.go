// Package heuristic provides distance estimators that bias the order in
// which the potential expander settles cells.
//
// An Estimator is pure and deterministic. Euclidean, Chebyshev and Octile
// with Scale ≤ 1 never overestimate an 8-connected step cost of 1 (orthogonal)
// or √2 (diagonal). Manhattan and any Scale > 1 give up that guarantee in
// exchange for fewer expansions. Admissibility affects optimality of the
// resulting field, not termination.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownHeuristic is returned by ByName for an unrecognized name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Estimator estimates the remaining cost from cell (x,y) to the goal.
// Implementations must return a value ≥ 0 for every in-grid cell.
type Estimator interface {
	Estimate(x, y, goalX, goalY int) float64
}

// Euclidean is the straight-line distance.
type Euclidean struct{ Scale float64 }

// Manhattan is |dx| + |dy|. Inadmissible under diagonal moves.
type Manhattan struct{ Scale float64 }

// Chebyshev is max(|dx|, |dy|).
type Chebyshev struct{ Scale float64 }

// Octile is the exact 8-connected distance: max + (√2-1)·min.
type Octile struct{ Scale float64 }

// Zero always estimates 0, reducing the expander to Dijkstra.
type Zero struct{}

// Estimate implements Estimator.
func (h Euclidean) Estimate(x, y, gx, gy int) float64 {
	dx, dy := delta(x, y, gx, gy)
	return scale(h.Scale) * math.Hypot(dx, dy)
}

// Estimate implements Estimator.
func (h Manhattan) Estimate(x, y, gx, gy int) float64 {
	dx, dy := delta(x, y, gx, gy)
	return scale(h.Scale) * (dx + dy)
}

// Estimate implements Estimator.
func (h Chebyshev) Estimate(x, y, gx, gy int) float64 {
	dx, dy := delta(x, y, gx, gy)
	return scale(h.Scale) * math.Max(dx, dy)
}

// Estimate implements Estimator.
func (h Octile) Estimate(x, y, gx, gy int) float64 {
	dx, dy := delta(x, y, gx, gy)
	lo, hi := math.Min(dx, dy), math.Max(dx, dy)
	return scale(h.Scale) * (hi + (math.Sqrt2-1)*lo)
}

// Estimate implements Estimator.
func (Zero) Estimate(_, _, _, _ int) float64 { return 0 }

// ByName returns the estimator registered under name (case-insensitive):
// "euclidean", "manhattan", "chebyshev", "octile" or "zero".
// A non-positive factor keeps the default weight of 1.
func ByName(name string, factor float64) (Estimator, error) {
	if factor < 0 || math.IsNaN(factor) {
		factor = 0
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean":
		return Euclidean{Scale: factor}, nil
	case "manhattan":
		return Manhattan{Scale: factor}, nil
	case "chebyshev":
		return Chebyshev{Scale: factor}, nil
	case "octile", "diagonal":
		return Octile{Scale: factor}, nil
	case "zero", "dijkstra":
		return Zero{}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownHeuristic, name)
}

func delta(x, y, gx, gy int) (dx, dy float64) {
	return math.Abs(float64(gx - x)), math.Abs(float64(gy - y))
}

// scale treats the zero value, negatives and NaN as weight 1.
func scale(s float64) float64 {
	if !(s > 0) {
		return 1
	}
	return s
}
