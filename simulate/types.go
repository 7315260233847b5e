// Package simulate defines methods, options, and sentinel errors for
// the seat-occupancy simulation driver.
package simulate

import "errors"

// Sentinel errors for method construction and simulation.
var (
	// ErrBadRadius is returned for an Adjacent radius below 1.
	ErrBadRadius = errors.New("simulate: adjacent radius must be at least 1")
	// ErrBadThreshold is returned for a negative flip threshold.
	ErrBadThreshold = errors.New("simulate: thresholds must be non-negative")
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("simulate: grid is nil")
	// ErrBadMethod is returned for a Method not built with Adjacent or
	// Visible (the zero Method included).
	ErrBadMethod = errors.New("simulate: method must be built with Adjacent or Visible")
	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("simulate: invalid option supplied")
	// ErrNoConvergence is returned by Run when the WithMaxSteps ceiling
	// is reached before the grid stops changing.
	ErrNoConvergence = errors.New("simulate: step ceiling reached before convergence")
)

// methodKind tags the closed set of neighbor-discovery rules.
type methodKind uint8

const (
	adjacentKind methodKind = iota + 1
	visibleKind
)

// Method selects one of the two neighbor-discovery rules together with
// its flip thresholds. The set is closed: values are created only via
// Adjacent, Visible, or the Default* constructors. The zero Method is
// invalid and rejected by New.
type Method struct {
	kind methodKind

	// radius is the Chebyshev window size; meaningful for Adjacent only.
	radius int
	// occupiedThreshold is the inclusive lower bound of occupied-neighbor
	// count that flips an Occupied seat to Empty.
	occupiedThreshold int
	// emptyThreshold is the inclusive upper bound of occupied-neighbor
	// count that flips an Empty seat to Occupied.
	emptyThreshold int
}

// Adjacent builds the bounded-window rule: neighbors are every tile
// within Chebyshev distance radius (radius 1 = the 8 surrounding cells).
// Returns ErrBadRadius for radius < 1, ErrBadThreshold for a negative
// threshold.
func Adjacent(radius, occupiedThreshold, emptyThreshold int) (Method, error) {
	if radius < 1 {
		return Method{}, ErrBadRadius
	}
	if occupiedThreshold < 0 || emptyThreshold < 0 {
		return Method{}, ErrBadThreshold
	}

	return Method{
		kind:              adjacentKind,
		radius:            radius,
		occupiedThreshold: occupiedThreshold,
		emptyThreshold:    emptyThreshold,
	}, nil
}

// Visible builds the ray-casting rule: the neighbor in each of the
// eight directions is the first seat visible from the cell, skipping
// any number of Floor tiles. Returns ErrBadThreshold for a negative
// threshold.
func Visible(occupiedThreshold, emptyThreshold int) (Method, error) {
	if occupiedThreshold < 0 || emptyThreshold < 0 {
		return Method{}, ErrBadThreshold
	}

	return Method{
		kind:              visibleKind,
		occupiedThreshold: occupiedThreshold,
		emptyThreshold:    emptyThreshold,
	}, nil
}

// DefaultAdjacent returns Adjacent(1, 4, 0): the 8 immediate neighbors,
// crowding at 4, settling at 0.
func DefaultAdjacent() Method {
	m, _ := Adjacent(1, 4, 0)

	return m
}

// DefaultVisible returns Visible(5, 0): nearest visible seat per
// direction, crowding at 5, settling at 0.
func DefaultVisible() Method {
	m, _ := Visible(5, 0)

	return m
}

// Option configures Simulator behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded
// internally and surfaced as ErrBadOption by New.
type Option func(*options)

// options holds tunable Simulator parameters.
type options struct {
	// workers splits per-cell counting across this many goroutines.
	workers int
	// maxSteps, if > 0, makes Run fail with ErrNoConvergence once the
	// ceiling is reached. 0 disables the ceiling.
	maxSteps int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns sequential counting and no step ceiling.
func defaultOptions() options {
	return options{workers: 1, maxSteps: 0}
}

// WithParallelism splits neighbor counting across n workers. Counts are
// pure reads of the step snapshot, so the result is identical to the
// sequential run. n must be at least 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = ErrBadOption

			return
		}
		o.workers = n
	}
}

// WithMaxSteps sets an opt-in iteration ceiling for Run; the engine
// itself does not guarantee termination for arbitrary layouts. n must
// be non-negative; 0 keeps the default unbounded behavior.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = ErrBadOption

			return
		}
		o.maxSteps = n
	}
}
