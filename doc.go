// Package seatgrid is an engine for seat-occupancy cellular automata:
// grids of seats that fill and empty under a neighbor-counting rule
// until the layout stops changing.
//
// 🪑 What is seatgrid?
//
//	A small, deterministic simulation library built from two packages:
//		• grid/     — flat row-major tile storage with index↔location
//		  conversion, rectangular-window range queries and ray traversal
//		• simulate/ — the two neighbor-discovery rules (Adjacent, Visible)
//		  and a convergence-detecting step driver
//
// ✨ Why choose seatgrid?
//
//   - Correct by construction — all counts for a step are read from one
//     snapshot before any cell is written, so updates are simultaneous
//   - Deterministic — the same grid and parameters always reproduce the
//     same step sequence, with or without parallel counting
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example, a 4×4 waiting area:
//
//	# # . #      '#' occupied seat
//	L # L .      'L' empty seat
//	# L # L      '.' floor (never a seat)
//	. L L #
//
// Parse it with grid.ParseString, pick a rule with simulate.Adjacent or
// simulate.Visible, and drive simulate.Simulator step-by-step or to
// convergence with Run.
//
// Dive into the per-package docs for the full API, invariants and
// complexity notes.
package seatgrid
