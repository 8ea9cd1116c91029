package fault

import (
	"errors"
	"fmt"
	"math"
)

// Error categories.
var (
	// ErrParse indicates malformed textual input.
	ErrParse = errors.New("parse error")

	// ErrTopology indicates that a structural invariant of the input does not hold.
	ErrTopology = errors.New("topology error")

	// ErrReference indicates a reference to an undeclared name.
	ErrReference = errors.New("reference error")

	// ErrOverflow indicates that a computation left the int64 range.
	ErrOverflow = errors.New("overflow error")
)

// Parsef builds a parse error carrying line context.
// line is 1-based; pass 0 when the failure is not tied to a line.
// format may use %w to keep a further cause inspectable.
func Parsef(line int, format string, args ...any) error {
	if line > 0 {
		return fmt.Errorf("%w: line %d: "+format, append([]any{ErrParse, line}, args...)...)
	}
	return fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...)
}

// Mul returns a*b or ErrOverflow.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d×%d", ErrOverflow, a, b)
	}
	return c, nil
}

// Add returns a+b or ErrOverflow.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d+%d", ErrOverflow, a, b)
	}
	return a + b, nil
}
