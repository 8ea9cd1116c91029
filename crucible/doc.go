// Package crucible finds the minimum heat loss of a cart crossing a grid of
// digit costs from the top-left to the bottom-right cell, when the cart must
// travel at least MinRun and at most MaxRun cells in a straight line before
// it turns, and may never reverse.
//
// Search state is (cell, heading), four slots per cell. Each settled state
// turns left or right, walks k = 1..MaxRun cells accumulating the cost of
// every cell entered, and offers the states reached for k ≥ MinRun. The origin
// is seeded with headings S and E at cost 0, so the first run may leave it in
// either direction.
//
// Selection uses a binary heap with lazy decrease-key: improved states are
// pushed again and stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O(R·C·MaxRun·log(R·C))
//   - Space: O(R·C)
//
// Options:
//
//   - WithMinRun(n) (default 1), WithMaxRun(n) (default 3)
//   - WithReturnPath() fills Result.Path with every cell visited
//
// Errors:
//
//   - ErrBadDigit  a cost byte outside 0-9 (wraps fault.ErrParse)
//   - ErrBadRun    MinRun < 1 or MaxRun < MinRun
//   - ErrNoPath    no legal run ends on the target (wraps fault.ErrTopology)
package crucible
