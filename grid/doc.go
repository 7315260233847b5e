// Package grid stores a rectangular seat layout as one flat, row-major
// tile sequence and derives all 2D structure from index arithmetic.
//
// What:
//
//   - Tile: Empty seat, Floor, or Occupied seat (closed set of three).
//   - Grid wraps a []Tile plus its row width; location (row,col) maps
//     bijectively to index row*width+col.
//   - RowRanges slices an axis-aligned bounding box into one contiguous
//     index range per row, without materializing a 2D structure.
//   - RaySeek walks a direction step-by-step, skipping Floor, until the
//     first seat or the grid boundary.
//   - Parse/ParseString build a Grid from the 'L'/'.'/'#' text form.
//
// Why:
//
//   - Flat storage with derived indexing avoids jagged-row bugs and keeps
//     window queries cheap slice operations.
//   - Occupancy simulations: the simulate package drives its neighbor
//     counting entirely through RowRanges and RaySeek.
//
// Complexity:
//
//   - Index, Location, InBounds: O(1).
//   - RowRanges: O(rows of the box) time and memory.
//   - RaySeek: O(path length) time, O(1) memory.
//   - Parse: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no tiles, or non-positive width.
//   - ErrInconsistentWidths: tile count not divisible by width / ragged rows.
//   - ErrInvalidCharacter: input symbol outside 'L', '.', '#'.
package grid
