// Package aplenty evaluates workflow rule systems over machine parts rated
// on four parameters x, m, a and s.
//
// A workflow is an ordered list of instructions. Conditional instructions
// compare one parameter against a threshold ("a<2006:qkq", "m>2090:A") and
// jump when they hold; the final instruction is an unconditional jump. The
// targets are other workflows or the terminals A (accept) and R (reject).
// Evaluation starts at the workflow named "in".
//
// Besides judging concrete parts, a System partitions a whole box of
// ratings: each conditional splits the current box into the half that
// satisfies it and the half that falls through, so the accepted boxes are
// disjoint and their volumes add up to the number of accepted rating
// combinations.
//
// Validate checks references and builds the jump graph as a core.Graph;
// dfs.TopologicalSort rejects cyclic systems, which would never terminate.
package aplenty
