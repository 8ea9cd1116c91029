// Package dfs implements depth-first traversal, cycle detection and
// topological sort on a directed core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, with a pre-order hook.
//   - FindCycle: returns one directed cycle as a vertex path, or nil.
//   - TopologicalSort: orders vertices so every edge u→v has u before v;
//     returns ErrCycleDetected, naming the cycle, otherwise.
//
// Vertices are expanded in the order core.Graph.NeighborIDs returns them and
// roots are tried in core.Graph.Vertices order, so results are deterministic.
//
// Complexity:
//
//   - DFS, FindCycle, TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph (wraps fault.ErrReference)
//   - ErrUndirected           cycle and order queries need a directed graph
//   - ErrCycleDetected        a cycle was found (wraps fault.ErrTopology)
//   - hook errors are propagated
package dfs
