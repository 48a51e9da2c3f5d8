package expander

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/potgrid/costmap"
	"github.com/katalvlaran/potgrid/heuristic"
	"github.com/katalvlaran/potgrid/potential"
)

// Expander runs potential expansions with a fixed calculator, heuristic and
// Options. It holds no per-call state.
type Expander struct {
	calc    potential.Calculator
	h       heuristic.Estimator
	options Options
	offsets []offset
}

// New builds an Expander.
// Returns ErrNilCalculator, ErrNilHeuristic, or ErrOptionViolation wrapped
// with the offending option.
func New(calc potential.Calculator, h heuristic.Estimator, opts ...Option) (*Expander, error) {
	if calc == nil {
		return nil, ErrNilCalculator
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	e := &Expander{calc: calc, h: h, options: cfg, offsets: offsets8}
	if cfg.Conn == Conn4 {
		e.offsets = offsets4
	}

	return e, nil
}

// CalculatePotentials expands from (startX,startY) toward (endX,endY) over cm,
// settling at most maxCycles cells, and returns a freshly allocated field.
//
// Coordinates are real-valued grid coordinates truncated to cells; anything
// outside [0,W)×[0,H) fails with costmap.ErrOutOfBounds before any expansion.
// A search that does not reach the goal is not an error: check Result.Found
// and Result.Reason.
func (e *Expander) CalculatePotentials(cm *costmap.Costmap, startX, startY, endX, endY float64, maxCycles int) (Result, error) {
	if cm == nil {
		return Result{}, ErrNilCostmap
	}

	return e.CalculatePotentialsInto(make([]float64, cm.Len()), cm, startX, startY, endX, endY, maxCycles)
}

// CalculatePotentialsInto is CalculatePotentials writing into a caller-owned
// field of length cm.Len(), which is overwritten entirely. Result.Potential
// aliases field.
func (e *Expander) CalculatePotentialsInto(field []float64, cm *costmap.Costmap, startX, startY, endX, endY float64, maxCycles int) (Result, error) {
	// 1) Validate input
	if cm == nil {
		return Result{}, ErrNilCostmap
	}
	if cm.Width <= 0 || cm.Height <= 0 || len(cm.Cells) != cm.Width*cm.Height {
		return Result{}, fmt.Errorf("%w: %dx%d with %d cells", ErrBadCostmap, cm.Width, cm.Height, len(cm.Cells))
	}
	if len(field) != cm.Len() {
		return Result{}, fmt.Errorf("%w: have %d, want %d", ErrFieldSize, len(field), cm.Len())
	}
	if maxCycles < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadCycles, maxCycles)
	}
	sx, sy, err := cm.Quantize(startX, startY)
	if err != nil {
		return Result{}, fmt.Errorf("expander: start: %w", err)
	}
	gx, gy, err := cm.Quantize(endX, endY)
	if err != nil {
		return Result{}, fmt.Errorf("expander: goal: %w", err)
	}

	// 2) Initialize per-call state
	for i := range field {
		field[i] = potential.PotHigh
	}
	r := &runner{
		e:     e,
		cm:    cm,
		field: field,
		pq:    make(frontier, 0, cm.Len()),
		goalX: gx,
		goalY: gy,
		res: Result{
			Potential: field,
			Start:     cm.Index(sx, sy),
			Goal:      cm.Index(gx, gy),
		},
	}

	// 3) Seed and run
	if !r.blocked(r.res.Start) {
		r.push(r.res.Start, 0, e.h.Estimate(sx, sy, gx, gy))
	}
	r.process(maxCycles)

	return r.res, nil
}

// runner holds the mutable state for a single expansion.
type runner struct {
	e            *Expander
	cm           *costmap.Costmap
	field        []float64
	pq           frontier
	goalX, goalY int
	res          Result
}

// process is the main loop. Each iteration consumes one cycle.
func (r *runner) process(maxCycles int) {
	for {
		if r.pq.Len() == 0 {
			r.res.Reason = ReasonUnreachable
			return
		}
		if r.res.Cycles >= maxCycles {
			r.res.Reason = ReasonBudgetExhausted
			return
		}

		c := heap.Pop(&r.pq).(candidate)
		r.res.Cycles++

		// Skip stale entries for cells settled by an earlier, cheaper candidate.
		if potential.IsSettled(r.field[c.index]) {
			continue
		}

		r.field[c.index] = c.cost
		r.res.Settled++
		r.e.options.OnSettle(c.index, c.cost)

		if c.index == r.res.Goal {
			r.res.Found = true
			r.res.Reason = ReasonGoalReached
			return
		}

		r.expand(c.index)
	}
}

// expand pushes a candidate for every passable, unsettled neighbor of cell i.
// The cost of i is already settled in the field.
func (r *runner) expand(i int) {
	x, y := r.cm.Coordinate(i)
	prev := r.field[i]
	for _, d := range r.e.offsets {
		nx, ny := x+d.dx, y+d.dy
		if !r.cm.InBounds(nx, ny) {
			continue
		}
		n := r.cm.Index(nx, ny)
		if r.blocked(n) || potential.IsSettled(r.field[n]) {
			continue
		}
		g := r.e.calc.Potential(potential.Input{
			Field: r.field,
			Width: r.cm.Width,
			Cell:  n,
			Cost:  r.cm.Cells[n],
			Step:  d.step,
			Prev:  prev,
		})
		r.push(n, g, g+r.e.h.Estimate(nx, ny, r.goalX, r.goalY))
	}
}

// blocked reports whether cell i may never be entered.
func (r *runner) blocked(i int) bool {
	c := r.cm.Cells[i]
	if c == costmap.Unknown {
		return !r.e.options.AllowUnknown
	}

	return c >= r.e.options.LethalThreshold
}

func (r *runner) push(i int, cost, dist float64) {
	heap.Push(&r.pq, candidate{index: i, cost: cost, dist: dist, seq: r.res.Pushed})
	r.res.Pushed++
}
