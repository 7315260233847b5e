package grid

// Grid owns a flat, row-major tile sequence plus its row width.
// Invariant: len(tiles) % width == 0; rows = len(tiles) / width.
// Location (row,col) resolves to index row*width+col only while
// 0 ≤ row < rows and 0 ≤ col < width.
type Grid struct {
	tiles []Tile
	width int
}

// New constructs a Grid from a tile sequence and row width.
// It deep-copies the input to ensure no external aliases survive.
// Returns ErrEmptyGrid for an empty sequence or non-positive width,
// ErrInconsistentWidths if the tile count is not divisible by width.
// Complexity: O(W×H) time and memory.
func New(tiles []Tile, width int) (*Grid, error) {
	if len(tiles) == 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(tiles)%width != 0 {
		return nil, ErrInconsistentWidths
	}
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)

	return &Grid{tiles: cp, width: width}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.tiles) / g.width }

// Len returns the total number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// At returns the tile at a flat index. Out-of-range indices panic;
// callers are expected to resolve indices through Index or Location.
func (g *Grid) At(index int) Tile { return g.tiles[index] }

// Set replaces the tile at a flat index. Same bounds contract as At.
func (g *Grid) Set(index int, t Tile) { g.tiles[index] = t }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.width
}

// Index maps (row,col) to its flat row-major index.
// The second return is false when the location is out of bounds.
// Complexity: O(1).
func (g *Grid) Index(row, col int) (int, bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}

	return row*g.width + col, true
}

// Location converts a flat index back to (row,col), the inverse of Index.
// The third return is false when the index is out of range.
// Complexity: O(1).
func (g *Grid) Location(index int) (row, col int, ok bool) {
	if index < 0 || index >= len(g.tiles) {
		return 0, 0, false
	}

	return index / g.width, index % g.width, true
}

// RowRanges slices the inclusive bounding box with top-left corner
// (fromRow,fromCol) and bottom-right corner (toRow,toCol) into one
// contiguous index Range per row of the box. The second return is
// false when either corner is out of bounds.
// Complexity: O(rows of the box) time and memory.
func (g *Grid) RowRanges(fromRow, fromCol, toRow, toCol int) ([]Range, bool) {
	from, ok := g.Index(fromRow, fromCol)
	if !ok {
		return nil, false
	}
	to, ok := g.Index(toRow, toCol)
	if !ok {
		return nil, false
	}

	span := toCol - fromCol
	ranges := make([]Range, 0, toRow-fromRow+1)
	for start := from; start <= to; start += g.width {
		ranges = append(ranges, Range{From: start, To: start + span})
	}

	return ranges, true
}

// RaySeek walks from (row,col) by repeated application of step until it
// lands on a tile satisfying pred or leaves the grid. The starting
// location itself is examined first. On a hit it returns the tile and
// its flat index; the third return is false when the ray exits the grid
// without a hit. It never wraps around an edge.
// Complexity: O(path length) time, O(1) memory.
func (g *Grid) RaySeek(row, col int, pred func(Tile) bool, step StepFunc) (int, Tile, bool) {
	for {
		idx, ok := g.Index(row, col)
		if !ok {
			return 0, Floor, false
		}
		if t := g.tiles[idx]; pred(t) {
			return idx, t, true
		}
		row, col = step(row, col)
	}
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cp := make([]Tile, len(g.tiles))
	copy(cp, g.tiles)

	return &Grid{tiles: cp, width: g.width}
}

// Tiles returns a copy of the flat tile sequence.
// Complexity: O(W×H).
func (g *Grid) Tiles() []Tile {
	cp := make([]Tile, len(g.tiles))
	copy(cp, g.tiles)

	return cp
}

// CountOccupied returns the number of Occupied tiles.
// Complexity: O(W×H).
func (g *Grid) CountOccupied() int {
	n := 0
	for _, t := range g.tiles {
		if t == Occupied {
			n++
		}
	}

	return n
}

// String renders the grid in its canonical text form, one row per line.
func (g *Grid) String() string {
	var b []byte
	for i, t := range g.tiles {
		if i > 0 && i%g.width == 0 {
			b = append(b, '\n')
		}
		b = append(b, t.String()[0])
	}

	return string(b)
}
