// Package core provides the small in-memory graph that the solvers share
// whenever a puzzle is really a graph problem in disguise: the pulse network
// of day 20, the rule-workflow tree of day 19 and the plot graph of day 21.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Sequential Edge.ID generation ("e1", "e2", …)
//
// Determinism:
//
//   - Vertices() and NeighborIDs() return IDs sorted lexicographically.
//   - Edges() and Neighbors() return edges in insertion order.
//   - Predecessors() returns unique source IDs sorted lexicographically.
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, edges and adjacency. Queries take
//	the read lock, mutations the write lock. Solvers build a graph once and
//	then only query it, so contention is not a concern.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Complexity:
//
//	AddVertex, HasVertex, AddEdge, HasEdge: O(1) amortized.
//	Neighbors: O(d log d); Predecessors: O(E) scan of the reverse index.
package core
