// Package bfs provides a layered breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing edge distance from a start vertex,
//     one whole layer (wave) at a time.
//   - Returns a Result with:
//   - Order:  visit sequence (layers concatenated)
//   - Depth:  vertex → distance from start
//   - Layers: vertices grouped by depth
//   - OnLayer sees each complete wave and may abort the walk with an error.
//   - MaxDepth bounds the walk.
//
// # Determinism
//
// Neighbors are expanded in the order core.Graph.NeighborIDs returns them
// (sorted), so Order and Layers are reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            nil graph
//   - ErrStartVertexNotFound start is absent (wraps fault.ErrReference)
//   - ErrWeightedGraph       weights would make edge counts meaningless
//   - ErrOptionViolation     bad option, e.g. a negative depth bound
//   - hook errors are returned wrapped
package bfs
