// Package fault defines the error taxonomy shared by every solver in the
// module, plus the few checked arithmetic helpers that surface ErrOverflow.
//
// Categories:
//
//   - ErrParse:     malformed input (unknown character, missing separator, wrong field count).
//   - ErrTopology:  a structural invariant is violated (no start, unclosed loop, ridge mismatch).
//   - ErrReference: a name refers to something that was never declared.
//   - ErrOverflow:  a result does not fit the chosen integer width.
//
// Solver packages never return these sentinels bare. Each one declares its own
// Err* values wrapping a category, for example
//
//	ErrNoStart = fmt.Errorf("pipemaze: %w: no start tile", fault.ErrTopology)
//
// so callers may match either the precise condition or the whole category
// with errors.Is.
package fault
