// Package garden counts the garden plots an elf can stand on after exactly
// N steps from S, moving one orthogonal cell per step and never onto rock.
//
// Because the plot graph is bipartite, a plot is an N-step endpoint exactly
// when its shortest distance d from S satisfies d ≤ N and d ≡ N (mod 2).
//
// Three forms are offered:
//
//   - Simulate rebuilds the frontier set step by step, on the bounded map
//     or on the map tiled infinitely in both directions. It is the
//     reference for small N.
//   - Bounded asks bfs for distance layers over grid.ToCoreGraph and counts
//     same-parity layers.
//   - Reachable answers the tiled question for very large N. It computes
//     distances over a (2R+1)² block of tiles. N small enough for its whole
//     diamond to fit in the block is counted directly. Otherwise R grows
//     until each side of the outer ring is a constant δ farther than the
//     ring inside it; δ may exceed the tile size when no row or column is
//     open. Tiles beyond each edge tile are then counted as an arithmetic
//     ray with step δ, and tiles beyond each corner tile as a quadrant,
//     summed in closed form. Maps that never settle are counted from a
//     block wide enough to hold every N-step path.
package garden
