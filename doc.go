// Package aoc2023 collects solvers for six grid, graph and circuit puzzles,
// built on a small shared toolkit.
//
// Toolkit:
//
//	fault/  error categories (parse, topology, reference, overflow) and checked int64 arithmetic
//	grid/   positions, directions, generic Grid[T], scanline crossing counts
//	core/   in-memory graph with directed, weighted, loop and multi-edge options
//	bfs/    layered breadth-first search with depth limits and parity counting
//	dfs/    depth-first search, cycle detection, topological sort
//
// Solvers:
//
//	pipemaze/ closed pipe loop: farthest distance and enclosed tiles
//	crucible/ minimum heat loss with bounded straight runs
//	lagoon/   dig-plan area by raster fill, compressed grid and shoelace
//	aplenty/  rule workflows: accepted ratings and accepted hyper-rectangle volume
//	pulse/    flip-flop and conjunction pulse network simulation
//	garden/   step reachability on bounded and infinitely tiled gardens
//
// Each solver package exposes a Parse function, typed methods for every
// question it answers and a Run shortcut from raw input to answer. Solvers
// never log and never panic on bad input; failures wrap a fault category so
// callers can test them with errors.Is.
//
// The aoc2023 command (cmd/aoc2023) runs solvers from an HCL run plan.
package aoc2023
