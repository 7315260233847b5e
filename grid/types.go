// Package grid defines core types for the flat seat-layout representation.
package grid

// Tile is one cell of a seat layout. A tile's identity never changes
// type across a simulation: seats flip between Empty and Occupied,
// Floor stays Floor forever.
type Tile uint8

const (
	// Empty is an unoccupied seat.
	Empty Tile = iota
	// Floor is a non-seat cell; it never changes and is never counted as occupied.
	Floor
	// Occupied is a seat with a person in it.
	Occupied
)

// IsSeat reports whether the tile can hold a person (Empty or Occupied).
func (t Tile) IsSeat() bool {
	return t == Empty || t == Occupied
}

// String renders the tile in its canonical text form.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "L"
	case Floor:
		return "."
	case Occupied:
		return "#"
	default:
		return "?"
	}
}

// Range is an inclusive [From, To] interval of flat-storage indices,
// covering one row's slice of a rectangular window.
type Range struct {
	From, To int
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.From && i <= r.To
}

// Len returns the number of indices the range covers.
func (r Range) Len() int {
	return r.To - r.From + 1
}

// StepFunc advances a location one step in a fixed direction.
// Off-grid results are permitted; bounds are checked by the caller.
type StepFunc func(row, col int) (int, int)

// Directions holds the eight compass/diagonal step functions, the ray
// set used by the Visible neighbor rule.
var Directions = [8]StepFunc{
	func(row, col int) (int, int) { return row + 1, col },     // S
	func(row, col int) (int, int) { return row + 1, col + 1 }, // SE
	func(row, col int) (int, int) { return row, col + 1 },     // E
	func(row, col int) (int, int) { return row - 1, col + 1 }, // NE
	func(row, col int) (int, int) { return row - 1, col },     // N
	func(row, col int) (int, int) { return row - 1, col - 1 }, // NW
	func(row, col int) (int, int) { return row, col - 1 },     // W
	func(row, col int) (int, int) { return row + 1, col - 1 }, // SW
}
