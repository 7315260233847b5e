package simulate

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seatgrid/grid"
)

// Simulator steps a seat layout under one Method until no cell changes.
// It owns two grid buffers: every step counts neighbors against cur,
// applies all flips into next, then swaps the buffers. No counts are
// ever read from a partially updated grid.
type Simulator struct {
	method Method
	opts   options

	cur  *grid.Grid
	next *grid.Grid
	// counts holds one occupied-neighbor count per cell, rebuilt each step.
	counts []int

	converged bool
	steps     int
	occupied  int
}

// New constructs a Simulator over an independent copy of g; the caller's
// grid is never mutated. Returns ErrNilGrid for a nil grid, the Method
// constructor errors for an invalid (e.g. zero) method, and ErrBadOption
// for an invalid option.
func New(g *grid.Grid, m Method, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if m.kind != adjacentKind && m.kind != visibleKind {
		return nil, ErrBadMethod
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Simulator{
		method:   m,
		opts:     o,
		cur:      g.Clone(),
		next:     g.Clone(),
		counts:   make([]int, g.Len()),
		occupied: g.CountOccupied(),
	}, nil
}

// Step advances the simulation one round: count every seat's occupied
// neighbors against the current snapshot, then flip seats per the
// thresholds. It returns the occupied-seat total after the round and
// whether any cell changed. A round that changes nothing marks the
// simulator Converged; further calls are no-ops.
func (s *Simulator) Step() (occupied int, changed bool) {
	if s.converged {
		return s.occupied, false
	}

	s.count()

	changes, total := 0, 0
	for idx := 0; idx < s.cur.Len(); idx++ {
		t := s.cur.At(idx)
		switch {
		case t == grid.Occupied && s.counts[idx] >= s.method.occupiedThreshold:
			t = grid.Empty
			changes++
		case t == grid.Empty && s.counts[idx] <= s.method.emptyThreshold:
			t = grid.Occupied
			changes++
		}
		if t == grid.Occupied {
			total++
		}
		s.next.Set(idx, t)
	}

	if changes == 0 {
		s.converged = true

		return s.occupied, false
	}

	s.cur, s.next = s.next, s.cur
	s.occupied = total
	s.steps++

	return s.occupied, true
}

// Run steps the simulation to convergence and returns the occupied-seat
// count of the fixed-point grid. A layout with no seats converges in
// zero steps with count 0. With WithMaxSteps set, Run fails with
// ErrNoConvergence once the ceiling is reached.
func (s *Simulator) Run() (int, error) {
	for !s.converged {
		if s.opts.maxSteps > 0 && s.steps >= s.opts.maxSteps {
			return s.occupied, ErrNoConvergence
		}
		s.Step()
	}

	return s.occupied, nil
}

// Converged reports whether the layout has reached its fixed point.
func (s *Simulator) Converged() bool { return s.converged }

// Steps returns the number of rounds that changed at least one cell.
func (s *Simulator) Steps() int { return s.steps }

// Occupied returns the occupied-seat total of the current grid.
func (s *Simulator) Occupied() int { return s.occupied }

// Grid returns an independent copy of the current grid state.
func (s *Simulator) Grid() *grid.Grid { return s.cur.Clone() }

// count fills s.counts from s.cur, sequentially or split across the
// configured workers. Workers write disjoint count slots and only read
// the snapshot, so the split is race-free and deterministic.
func (s *Simulator) count() {
	n := s.cur.Len()
	if s.opts.workers <= 1 {
		s.method.countRange(s.cur, s.counts, 0, n)

		return
	}

	chunk := (n + s.opts.workers - 1) / s.opts.workers
	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		eg.Go(func() error {
			s.method.countRange(s.cur, s.counts, lo, hi)

			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()
}
