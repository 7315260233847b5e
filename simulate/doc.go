// Package simulate drives a seat-occupancy cellular automaton over a
// grid.Grid until it reaches a fixed point.
//
// What:
//
//   - Method: a closed set of two neighbor-discovery rules —
//     Adjacent(radius, occupiedThreshold, emptyThreshold) counts Occupied
//     tiles inside the Chebyshev window of the given radius;
//     Visible(occupiedThreshold, emptyThreshold) casts a ray in each of
//     the eight directions and counts the nearest visible Occupied seat
//     per direction, skipping Floor.
//   - Simulator: steps the grid under one Method. Each step reads every
//     count from the pre-step snapshot, then applies all flips into a
//     second buffer, so updates are simultaneous.
//   - Transition per seat and step: Occupied→Empty when count ≥
//     occupiedThreshold; Empty→Occupied when count ≤ emptyThreshold;
//     Floor never changes.
//
// Why:
//
//   - Seat-layout equilibria: run DefaultAdjacent or DefaultVisible to
//     convergence and read the final occupied total.
//   - Step-by-step dynamics: call Step directly and inspect the occupied
//     total after each round.
//
// Complexity:
//
//   - Adjacent step: O(W×H×radius²) time, O(W×H) memory.
//   - Visible step: O(W×H×(W+H)) worst case, O(W×H) memory.
//   - Counting is optionally split across workers (WithParallelism);
//     results are identical to the sequential run.
//
// Errors:
//
//   - ErrBadRadius, ErrBadThreshold: invalid Method parameters.
//   - ErrNilGrid: Simulator constructed without a grid.
//   - ErrBadMethod: Method not built via Adjacent or Visible.
//   - ErrBadOption: invalid functional option.
//   - ErrNoConvergence: the opt-in WithMaxSteps ceiling was exceeded.
//
// Convergence is an empirical property of the layouts this engine is
// built for; without WithMaxSteps the driver runs until a step flips
// zero cells.
package simulate
