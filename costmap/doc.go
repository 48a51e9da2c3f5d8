// Package costmap holds the traversal-cost grid consumed by the potential
// expander.
//
// What:
//
//   - Costmap wraps a flat, row-major []uint8 of Width×Height cells.
//   - A cell is addressed by i = y*Width + x; every package in potgrid agrees on it.
//   - Reserved values follow ROS costmap_2d: Free, Inscribed, Lethal, Unknown.
//
// Why:
//
//   - Planners publish costmaps as flat byte arrays; keeping that layout
//     avoids copying the snapshot for every planning request.
//
// Complexity:
//
//   - New:       O(1), the cell slice is referenced, not copied.
//   - From2D:    O(W×H) time and memory.
//   - Parse:     O(W×H) time and memory.
//   - Quantize, Index, Coordinate, InBounds: O(1).
//
// Errors:
//
//   - ErrBadDimensions:  width or height is not positive.
//   - ErrNilCells:       no cell slice supplied.
//   - ErrSizeMismatch:   len(cells) != width*height.
//   - ErrEmptyGrid:      2D input has no rows or no columns.
//   - ErrNonRectangular: 2D input rows have differing lengths.
//   - ErrBadSymbol:      ASCII map contains a character outside the legend.
//   - ErrOutOfBounds:    a coordinate lies outside [0,W)×[0,H).
package costmap
