package simulate

import "github.com/katalvlaran/seatgrid/grid"

// countRange fills counts[lo:hi] with the occupied-neighbor count of
// every cell in [lo,hi), reading only from the pre-step snapshot g.
// Floor cells are assigned 0; they are never transitioned.
func (m Method) countRange(g *grid.Grid, counts []int, lo, hi int) {
	for idx := lo; idx < hi; idx++ {
		if !g.At(idx).IsSeat() {
			counts[idx] = 0

			continue
		}
		switch m.kind {
		case adjacentKind:
			counts[idx] = m.countAdjacent(g, idx)
		case visibleKind:
			counts[idx] = m.countVisible(g, idx)
		}
	}
}

// countAdjacent counts Occupied tiles within the Chebyshev window of
// m.radius around idx, clipped to the grid, excluding idx itself.
func (m Method) countAdjacent(g *grid.Grid, idx int) int {
	row, col, ok := g.Location(idx)
	if !ok {
		// Unreachable for indices produced by the step loop.
		return 0
	}

	fromRow, fromCol := max(row-m.radius, 0), max(col-m.radius, 0)
	toRow, toCol := min(row+m.radius, g.Rows()-1), min(col+m.radius, g.Width()-1)

	ranges, _ := g.RowRanges(fromRow, fromCol, toRow, toCol)
	n := 0
	for _, r := range ranges {
		for i := r.From; i <= r.To; i++ {
			if i != idx && g.At(i) == grid.Occupied {
				n++
			}
		}
	}

	return n
}

// countVisible counts the directions whose nearest visible seat from
// idx is Occupied. Each ray starts one step away from the cell, skips
// Floor transparently, and stops at the first seat or the grid edge.
func (m Method) countVisible(g *grid.Grid, idx int) int {
	row, col, ok := g.Location(idx)
	if !ok {
		return 0
	}

	n := 0
	for _, step := range grid.Directions {
		r, c := step(row, col)
		if _, t, hit := g.RaySeek(r, c, grid.Tile.IsSeat, step); hit && t == grid.Occupied {
			n++
		}
	}

	return n
}
