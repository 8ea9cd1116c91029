package pulse

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/aoc2023/fault"
)

// Sentinel errors for pulse networks.
var (
	// ErrSyntax indicates a malformed declaration line.
	ErrSyntax = fmt.Errorf("pulse: %w: bad module declaration", fault.ErrParse)

	// ErrDuplicate indicates a module declared twice.
	ErrDuplicate = fmt.Errorf("pulse: %w: duplicate module", fault.ErrParse)

	// ErrNoBroadcaster indicates a network without a broadcaster.
	ErrNoBroadcaster = fmt.Errorf("pulse: %w: no broadcaster", fault.ErrParse)

	// ErrUnknownModule indicates a name that is neither a module nor an allowed sink.
	ErrUnknownModule = fmt.Errorf("pulse: %w: unknown module", fault.ErrReference)

	// ErrLimit indicates that the press limit was exhausted.
	ErrLimit = errors.New("pulse: press limit reached")

	// ErrShape indicates a network that CyclePresses cannot decompose.
	ErrShape = fmt.Errorf("pulse: %w: target is not fed by a single conjunction", fault.ErrTopology)
)

// Names with fixed meaning.
const (
	Button          = "button"
	BroadcasterName = "broadcaster"
)

// Level is a pulse level.
type Level bool

// Pulse levels.
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Kind is the behavior of a module.
type Kind uint8

// Module kinds.
const (
	Sink Kind = iota
	Broadcaster
	FlipFlop
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcaster:
		return "broadcaster"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return "sink"
}

// Pulse is a single level sent from one module to another.
type Pulse struct {
	From, To string
	Level    Level
}

func (p Pulse) String() string { return p.From + " -" + p.Level.String() + "-> " + p.To }

// Module is one node of the network with its mutable state.
type Module struct {
	Name  string
	Kind  Kind
	Dests []string

	on     bool
	memory map[string]Level
}

// On reports the flip-flop state.
func (m *Module) On() bool { return m.on }

// Memory returns a copy of the conjunction memory.
func (m *Module) Memory() map[string]Level { return maps.Clone(m.memory) }

// Process applies an incoming pulse and returns the pulses it emits, in
// destination order.
func (m *Module) Process(p Pulse) []Pulse {
	var out Level
	switch m.Kind {
	case Broadcaster:
		out = p.Level
	case FlipFlop:
		if p.Level == High {
			return nil
		}
		m.on = !m.on
		out = Level(m.on)
	case Conjunction:
		m.memory[p.From] = p.Level
		out = Low
		for _, l := range m.memory {
			if l == Low {
				out = High
				break
			}
		}
	default:
		return nil
	}

	pulses := make([]Pulse, len(m.Dests))
	for i, d := range m.Dests {
		pulses[i] = Pulse{From: m.Name, To: d, Level: out}
	}
	return pulses
}

// reset restores the initial state: flip-flops off, memories low.
func (m *Module) reset() {
	m.on = false
	for k := range m.memory {
		m.memory[k] = Low
	}
}

// Tally counts delivered pulses by level.
type Tally struct {
	Low, High int64
}

// Add returns the element-wise sum.
func (t Tally) Add(o Tally) Tally { return Tally{Low: t.Low + o.Low, High: t.High + o.High} }

// Product returns Low × High.
func (t Tally) Product() (int64, error) { return fault.Mul(t.Low, t.High) }
