package potential

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/potgrid/costmap"
)

// PotHigh marks a cell that has not been settled.
const PotHigh = 1.0e10

// ErrUnknownCalculator is returned by ByName for an unrecognized name.
var ErrUnknownCalculator = errors.New("potential: unknown calculator")

// IsSettled reports whether v is a finalized potential.
func IsSettled(v float64) bool { return v < PotHigh }

// Input is everything a Calculator may look at for one candidate cell.
type Input struct {
	Field []float64 // read-only potential field; PotHigh where unsettled
	Width int       // row stride of Field
	Cell  int       // candidate cell index
	Cost  uint8     // candidate cell traversal cost, never Lethal
	Step  float64   // geometric step weight: 1 orthogonal, √2 diagonal
	Prev  float64   // settled potential of the cell being expanded
}

// Calculator propagates a tentative potential into Input.Cell.
type Calculator interface {
	Potential(in Input) float64
}

// Additive charges step·(Neutral + Factor·cost) on top of the expanding
// cell's potential. Unknown cells are charged as UnknownCost.
// A non-positive or NaN Neutral is treated as 1. The per-unit charge never
// drops below Neutral, so a negative or NaN Factor cannot lower a potential.
type Additive struct {
	Neutral     float64
	Factor      float64
	UnknownCost uint8
}

// DefaultAdditive returns a purely geometric calculator: Neutral 1, Factor 0,
// Unknown charged like Inscribed.
func DefaultAdditive() Additive {
	return Additive{Neutral: 1, Factor: 0, UnknownCost: costmap.Inscribed}
}

// Potential implements Calculator.
func (a Additive) Potential(in Input) float64 {
	return in.Prev + in.Step*a.traversal(in.Cost)
}

// traversal is the per-unit-length cost of entering a cell.
func (a Additive) traversal(c uint8) float64 {
	n := a.Neutral
	if !(n > 0) {
		n = 1
	}
	if c == costmap.Unknown {
		c = a.UnknownCost
	}
	v := n + a.Factor*float64(c)
	if !(v >= n) {
		return n
	}

	return v
}

// ByName returns the calculator registered under name (case-insensitive):
// "additive" or "quadratic", both charging costs as base does.
func ByName(name string, base Additive) (Calculator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "additive":
		return base, nil
	case "quadratic":
		return Quadratic{Additive: base}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownCalculator, name)
}
