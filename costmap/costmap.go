package costmap

import (
	"fmt"
	"math"
	"strings"
)

// New wraps a flat row-major cell slice as a Costmap.
// The slice is referenced, not copied; the caller must not mutate it while
// a search over the Costmap is in flight.
// Returns ErrBadDimensions, ErrNilCells or ErrSizeMismatch on invalid input.
// Complexity: O(1).
func New(width, height int, cells []uint8) (*Costmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if cells == nil {
		return nil, ErrNilCells
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrSizeMismatch, len(cells), width*height)
	}

	return &Costmap{Width: width, Height: height, Cells: cells}, nil
}

// Filled returns a width×height Costmap with every cell set to cost.
func Filled(width, height int, cost uint8) (*Costmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	cells := make([]uint8, width*height)
	if cost != Free {
		for i := range cells {
			cells[i] = cost
		}
	}

	return &Costmap{Width: width, Height: height, Cells: cells}, nil
}

// From2D builds a Costmap from rows[y][x], copying into a flat slice.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]uint8) (*Costmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]uint8, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Costmap{Width: w, Height: h, Cells: cells}, nil
}

// Parse builds a Costmap from an ASCII map, one string per row:
//
//	.  free          #  lethal
//	i  inscribed     ?  unknown
//	0-9  cost digit*25
//
// Complexity: O(W×H) time and memory.
func Parse(rows []string) (*Costmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]uint8, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < w; x++ {
			c, err := symbolCost(row[x])
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			cells[y*w+x] = c
		}
	}

	return &Costmap{Width: w, Height: h, Cells: cells}, nil
}

func symbolCost(b byte) (uint8, error) {
	switch {
	case b == SymbolFree:
		return Free, nil
	case b == SymbolLethal:
		return Lethal, nil
	case b == SymbolInscribed:
		return Inscribed, nil
	case b == SymbolUnknown:
		return Unknown, nil
	case b >= '0' && b <= '9':
		return uint8(b-'0') * digitStep, nil
	}

	return 0, fmt.Errorf("%w %q", ErrBadSymbol, b)
}

// Symbol returns the ASCII legend character for a cost.
// Intermediate costs round down to the nearest digit.
func Symbol(c uint8) byte {
	switch c {
	case Free:
		return SymbolFree
	case Lethal:
		return SymbolLethal
	case Inscribed:
		return SymbolInscribed
	case Unknown:
		return SymbolUnknown
	}
	d := c / digitStep
	if d > 9 {
		d = 9
	}

	return '0' + d
}

// Rows renders the Costmap as one ASCII string per row.
func (cm *Costmap) Rows() []string {
	rows := make([]string, cm.Height)
	buf := make([]byte, cm.Width)
	for y := 0; y < cm.Height; y++ {
		for x := 0; x < cm.Width; x++ {
			buf[x] = Symbol(cm.Cells[cm.Index(x, y)])
		}
		rows[y] = string(buf)
	}

	return rows
}

// String renders the Costmap in the ASCII legend, rows separated by newlines.
func (cm *Costmap) String() string {
	return strings.Join(cm.Rows(), "\n")
}

// Len returns the number of cells.
func (cm *Costmap) Len() int {
	return cm.Width * cm.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (cm *Costmap) InBounds(x, y int) bool {
	return x >= 0 && x < cm.Width && y >= 0 && y < cm.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (cm *Costmap) Index(x, y int) int {
	return y*cm.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (cm *Costmap) Coordinate(i int) (x, y int) {
	return i % cm.Width, i / cm.Width
}

// At returns the cost of cell (x,y). It panics if (x,y) is out of bounds.
func (cm *Costmap) At(x, y int) uint8 {
	return cm.Cells[cm.Index(x, y)]
}

// Cost returns the cost of cell i.
func (cm *Costmap) Cost(i int) uint8 {
	return cm.Cells[i]
}

// Quantize truncates a real-valued grid coordinate to its cell.
// Returns ErrOutOfBounds unless 0 ≤ wx < Width and 0 ≤ wy < Height.
// NaN and infinities are out of bounds.
func (cm *Costmap) Quantize(wx, wy float64) (x, y int, err error) {
	if math.IsNaN(wx) || math.IsNaN(wy) ||
		wx < 0 || wy < 0 || wx >= float64(cm.Width) || wy >= float64(cm.Height) {
		return 0, 0, fmt.Errorf("%w: (%g,%g) not in [0,%d)x[0,%d)", ErrOutOfBounds, wx, wy, cm.Width, cm.Height)
	}

	return int(wx), int(wy), nil
}
