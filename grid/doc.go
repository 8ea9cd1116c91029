// Package grid provides the integer-lattice primitives shared by the grid
// solvers: positions, cardinal directions, direction sets, a generic
// rectangular Grid[T] with bounded and toroidal lookup, the row scanner used
// for ray-casting interiors, and conversion to a *core.Graph.
//
// What:
//
//   - Pos is a (Row, Col) pair; rows grow southwards, columns eastwards.
//   - Dir is one of N, E, S, W, plus the None sentinel.
//   - DirSet is a bitmask of cardinals: the openings of a pipe tile or of a
//     rasterized boundary cell.
//   - Grid[T] stores cells row-major; Get is bounded, Wrap is toroidal.
//   - Crossing tracks interior parity while scanning a row of a closed loop.
//
// Why:
//
//   - Pipe loops (day 10) and dig plans (day 18) share the same ridge rules.
//   - Crucible search (day 17) indexes loss slots by Dir.
//   - Tiled gardens (day 21) read the base tile through Wrap.
//
// Complexity:
//
//   - Get, Set, Wrap, Move: O(1).
//   - Parse: O(R×C), Memory: O(R×C).
//   - ToCoreGraph: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOpenings, ErrRidge, ErrParity: a row scan met an inconsistent boundary.
package grid
