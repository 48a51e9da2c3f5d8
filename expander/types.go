// Package expander defines options, results and sentinel errors for the
// best-first potential expansion over a costmap.
package expander

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/potgrid/costmap"
)

// Sentinel errors returned before any expansion takes place.
var (
	// ErrNilCalculator indicates New was given no potential.Calculator.
	ErrNilCalculator = errors.New("expander: potential calculator is nil")

	// ErrNilHeuristic indicates New was given no heuristic.Estimator.
	ErrNilHeuristic = errors.New("expander: heuristic is nil")

	// ErrNilCostmap indicates a nil *costmap.Costmap was passed.
	ErrNilCostmap = errors.New("expander: costmap is nil")

	// ErrBadCostmap indicates a costmap whose cell count disagrees with its dimensions.
	ErrBadCostmap = errors.New("expander: costmap cells do not match dimensions")

	// ErrBadCycles indicates a negative cycle budget.
	ErrBadCycles = errors.New("expander: cycle budget must be non-negative")

	// ErrFieldSize indicates a caller-supplied field of the wrong length.
	ErrFieldSize = errors.New("expander: potential field size does not match costmap")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("expander: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 expands N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 expands N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Reason tells why a search stopped.
type Reason int

const (
	// ReasonGoalReached means the goal cell was settled.
	ReasonGoalReached Reason = iota
	// ReasonUnreachable means the frontier emptied before the goal was settled.
	ReasonUnreachable
	// ReasonBudgetExhausted means the cycle budget ran out first.
	ReasonBudgetExhausted
)

// String returns a short name for r.
func (r Reason) String() string {
	switch r {
	case ReasonGoalReached:
		return "goal reached"
	case ReasonUnreachable:
		return "goal unreachable"
	case ReasonBudgetExhausted:
		return "cycle budget exhausted"
	}

	return fmt.Sprintf("Reason(%d)", int(r))
}

// offset is a neighbor displacement with its geometric step weight.
type offset struct {
	dx, dy int
	step   float64
}

var (
	offsets4 = []offset{{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1}}
	offsets8 = []offset{
		{0, -1, 1}, {1, -1, math.Sqrt2}, {1, 0, 1}, {1, 1, math.Sqrt2},
		{0, 1, 1}, {-1, 1, math.Sqrt2}, {-1, 0, 1}, {-1, -1, math.Sqrt2},
	}
)

// Options configures an Expander.
//
// Conn            – neighbor connectivity. Default Conn8.
// AllowUnknown    – whether costmap.Unknown cells may be entered. Default true.
// LethalThreshold – cells with cost ≥ threshold are impassable. Default costmap.Lethal.
// OnSettle        – called once per settled cell, in settlement order.
type Options struct {
	Conn            Connectivity
	AllowUnknown    bool
	LethalThreshold uint8
	OnSettle        func(cell int, potential float64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring an Expander.
type Option func(*Options)

// DefaultOptions returns Options with Conn8, unknown cells allowed and
// costmap.Lethal as the impassable threshold.
func DefaultOptions() Options {
	return Options{
		Conn:            Conn8,
		AllowUnknown:    true,
		LethalThreshold: costmap.Lethal,
		OnSettle:        func(int, float64) {},
	}
}

// WithConnectivity selects 4- or 8-connected expansion.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithAllowUnknown controls whether costmap.Unknown cells are traversable.
// When false they are treated as lethal.
func WithAllowUnknown(allow bool) Option {
	return func(o *Options) {
		o.AllowUnknown = allow
	}
}

// WithLethalThreshold marks every cell with cost ≥ t as impassable.
// Setting it to costmap.Inscribed reproduces planners that refuse to enter
// the inflated margin. Zero would block every cell and is rejected.
func WithLethalThreshold(t uint8) Option {
	return func(o *Options) {
		if t == 0 {
			o.err = fmt.Errorf("%w: lethal threshold must be positive", ErrOptionViolation)
			return
		}
		o.LethalThreshold = t
	}
}

// WithOnSettle registers a callback invoked each time a cell is settled.
func WithOnSettle(fn func(cell int, potential float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the outcome of one CalculatePotentials call.
//
//   - Potential: one value per cell; potential.PotHigh where unsettled.
//     On failure it still holds every cell settled before termination.
//   - Found:     true iff the goal cell was settled.
//   - Reason:    why the search stopped.
//   - Start, Goal: quantized cell indices.
//   - Cycles:    frontier pops performed, stale ones included.
//   - Settled:   distinct cells settled; never exceeds the budget.
//   - Pushed:    candidates pushed onto the frontier, the seed included.
type Result struct {
	Potential []float64
	Found     bool
	Reason    Reason
	Start     int
	Goal      int
	Cycles    int
	Settled   int
	Pushed    int
}
