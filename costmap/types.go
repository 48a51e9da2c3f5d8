// Package costmap defines the cost grid, its reserved cell values
// and sentinel errors.
package costmap

import "errors"

// Sentinel errors for costmap construction and addressing.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("costmap: width and height must be positive")
	// ErrNilCells indicates that no cell slice was supplied.
	ErrNilCells = errors.New("costmap: cell slice is nil")
	// ErrSizeMismatch indicates len(cells) != width*height.
	ErrSizeMismatch = errors.New("costmap: cell count does not match dimensions")
	// ErrEmptyGrid indicates the 2D input has no rows or no columns.
	ErrEmptyGrid = errors.New("costmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costmap: all rows must have the same length")
	// ErrBadSymbol indicates an ASCII map character outside the legend.
	ErrBadSymbol = errors.New("costmap: unknown map symbol")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("costmap: coordinate out of bounds")
)

// Reserved cell values, matching ROS costmap_2d.
const (
	// Free is a cell with no traversal penalty.
	Free uint8 = 0
	// Inscribed marks the inflated margin around obstacles. Traversable, but
	// carries the highest penalty a potential calculator will apply.
	Inscribed uint8 = 253
	// Lethal is an impassable obstacle.
	Lethal uint8 = 254
	// Unknown is a cell with no information.
	Unknown uint8 = 255
)

// ASCII legend used by Parse and String.
const (
	SymbolFree      = '.'
	SymbolLethal    = '#'
	SymbolInscribed = 'i'
	SymbolUnknown   = '?'
	// digitStep scales '0'..'9' to costs 0..225.
	digitStep = 25
)

// Costmap is a read-only snapshot of traversal costs.
// Width and Height define dimensions; Cells[y*Width+x] holds the cost of (x,y).
// A Costmap never mutates Cells; the caller owns the slice.
type Costmap struct {
	Width, Height int
	Cells         []uint8
}
