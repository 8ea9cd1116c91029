package pulse

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/aoc2023/fault"
)

// PulseProduct resets the network, presses the button presses times and
// returns low × high over all delivered pulses.
func (n *Network) PulseProduct(presses int) (int64, error) {
	t, err := n.Count(presses)
	if err != nil {
		return 0, err
	}
	return t.Product()
}

// Count resets the network and tallies presses presses.
func (n *Network) Count(presses int) (Tally, error) {
	if presses < 0 {
		return Tally{}, fmt.Errorf("pulse: negative press count %d", presses)
	}
	n.Reset()
	var t Tally
	for i := 0; i < presses; i++ {
		t = t.Add(n.Press())
	}
	return t, nil
}

// PressesUntilLow resets the network and presses until target receives a
// low pulse, returning the press count. ErrLimit after limit presses.
func (n *Network) PressesUntilLow(target string, limit int) (int, error) {
	if _, ok := n.modules[target]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, target)
	}
	n.Reset()
	hit := false
	watch := func(_ int, p Pulse) {
		if p.To == target && p.Level == Low {
			hit = true
		}
	}
	for n.presses < limit {
		n.Press(watch)
		if hit {
			return n.presses, nil
		}
	}
	return 0, fmt.Errorf("%w: %d presses without a low pulse to %q", ErrLimit, limit, target)
}

// FirstHighs finds the single conjunction feeding target and returns, for
// each of its inputs, the first press on which that input sends it a high
// pulse. The network is reset first.
func (n *Network) FirstHighs(target string, limit int) (map[string]int64, error) {
	feeders, err := n.Inputs(target)
	if err != nil {
		return nil, err
	}
	if len(feeders) != 1 || n.modules[feeders[0]].Kind != Conjunction {
		return nil, fmt.Errorf("%w: %q has inputs %v", ErrShape, target, feeders)
	}
	hub := feeders[0]
	inputs, err := n.Inputs(hub)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: conjunction %q has no inputs", ErrShape, hub)
	}

	n.Reset()
	first := make(map[string]int64, len(inputs))
	watch := func(press int, p Pulse) {
		if p.To == hub && p.Level == High {
			if _, seen := first[p.From]; !seen {
				first[p.From] = int64(press)
			}
		}
	}
	for len(first) < len(inputs) {
		if n.presses >= limit {
			return nil, fmt.Errorf("%w: %d of %d inputs of %q fired within %d presses",
				ErrLimit, len(first), len(inputs), hub, limit)
		}
		n.Press(watch)
	}
	return first, nil
}

// CyclePresses combines FirstHighs with LCM.
func (n *Network) CyclePresses(target string, limit int) (int64, error) {
	first, err := n.FirstHighs(target, limit)
	if err != nil {
		return 0, err
	}
	periods := maps.Values(first)
	slices.Sort(periods)
	total := int64(1)
	for _, p := range periods {
		if total, err = lcm(total, p); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of positive a and b.
func lcm[T constraints.Integer](a, b T) (T, error) {
	q := a / gcd(a, b)
	v, err := fault.Mul(int64(q), int64(b))
	return T(v), err
}

// Run parses input and returns the pulse product of 1000 presses.
func Run(input string) (int64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return n.PulseProduct(1000)
}
