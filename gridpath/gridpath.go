// Package gridpath walks a settled potential field downhill from the goal
// back to the start, producing the discrete cell path the field encodes.
//
// Each step moves to the 8-connected neighbor with the lowest potential,
// provided it is strictly lower than the current cell. The walk ends at the
// start cell. Ties go to the first neighbor in N, NE, E, SE, S, SW, W, NW order.
//
// Smoothing and orientation are left to the caller.
package gridpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/potgrid/potential"
)

// Sentinel errors for Backtrack.
var (
	// ErrFieldSize indicates len(field) != width*height or non-positive dimensions.
	ErrFieldSize = errors.New("gridpath: field size does not match dimensions")
	// ErrBadIndex indicates a start or goal index outside the field.
	ErrBadIndex = errors.New("gridpath: cell index out of range")
	// ErrNoPath indicates the goal is unsettled or the descent stalled.
	ErrNoPath = errors.New("gridpath: no descending path to start")
	// ErrTooLong indicates the walk exceeded maxSteps.
	ErrTooLong = errors.New("gridpath: path exceeds step limit")
)

var offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Backtrack returns the cell indices from start to goal, both included,
// obtained by steepest descent over field. maxSteps ≤ 0 caps the walk at
// width*height steps.
// Complexity: O(L) for a path of L cells.
func Backtrack(field []float64, width, height, start, goal, maxSteps int) ([]int, error) {
	n := width * height
	if width <= 0 || height <= 0 || len(field) != n {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrFieldSize, len(field), width, height)
	}
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: start=%d goal=%d", ErrBadIndex, start, goal)
	}
	if !potential.IsSettled(field[goal]) {
		return nil, fmt.Errorf("%w: goal %d unsettled", ErrNoPath, goal)
	}
	if maxSteps <= 0 {
		maxSteps = n
	}

	path := []int{goal}
	for cur := goal; cur != start; {
		if len(path) > maxSteps {
			return nil, fmt.Errorf("%w: %d", ErrTooLong, maxSteps)
		}
		next := descend(field, width, height, cur)
		if next < 0 {
			x, y := cur%width, cur/width
			return nil, fmt.Errorf("%w: stuck at (%d,%d)", ErrNoPath, x, y)
		}
		path = append(path, next)
		cur = next
	}

	// reverse so the path runs start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// descend returns the lowest neighbor of cur strictly below it, or -1.
func descend(field []float64, width, height, cur int) int {
	x, y := cur%width, cur/width
	best, bestPot := -1, field[cur]
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		i := ny*width + nx
		if field[i] < bestPot {
			best, bestPot = i, field[i]
		}
	}

	return best
}
