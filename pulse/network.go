package pulse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/grid"
)

// Option configures Parse.
type Option func(*Options)

// Options holds the sink policy.
type Options struct {
	// Sinks are destinations allowed without a declaration.
	Sinks []string
	// Strict rejects undeclared destinations not listed in Sinks.
	Strict bool
}

// WithSinks declares names that may appear only as destinations.
func WithSinks(names ...string) Option {
	return func(o *Options) { o.Sinks = append(o.Sinks, names...) }
}

// WithStrictSinks rejects undeclared destinations other than declared sinks.
func WithStrictSinks() Option {
	return func(o *Options) { o.Strict = true }
}

// Hook observes every delivered pulse of a press.
type Hook func(press int, p Pulse)

// Network is a wired set of modules.
type Network struct {
	modules map[string]*Module
	graph   *core.Graph
	presses int
}

// Parse reads one declaration per line and wires the network.
func Parse(input string, opts ...Option) (*Network, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{modules: make(map[string]*Module)}
	for i, line := range grid.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m, err := parseModule(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, i+1, err)
		}
		if _, dup := n.modules[m.Name]; dup {
			return nil, fmt.Errorf("%w: %q on line %d", ErrDuplicate, m.Name, i+1)
		}
		n.modules[m.Name] = m
	}
	if b, ok := n.modules[BroadcasterName]; !ok || b.Kind != Broadcaster {
		return nil, ErrNoBroadcaster
	}
	if err := n.wire(o); err != nil {
		return nil, err
	}

	return n, nil
}

// parseModule reads "[%&]name -> d1, d2".
func parseModule(line string) (*Module, error) {
	head, tail, ok := strings.Cut(line, "->")
	if !ok {
		return nil, fmt.Errorf("missing '->' in %q", line)
	}
	head = strings.TrimSpace(head)
	m := &Module{}
	switch {
	case head == BroadcasterName:
		m.Kind, m.Name = Broadcaster, head
	case strings.HasPrefix(head, "%"):
		m.Kind, m.Name = FlipFlop, head[1:]
	case strings.HasPrefix(head, "&"):
		m.Kind, m.Name = Conjunction, head[1:]
		m.memory = make(map[string]Level)
	default:
		return nil, fmt.Errorf("module %q lacks a kind prefix", head)
	}
	if !validName(m.Name) || (m.Kind != Broadcaster && m.Name == BroadcasterName) {
		return nil, fmt.Errorf("module name %q", m.Name)
	}
	for _, d := range strings.Split(tail, ",") {
		d = strings.TrimSpace(d)
		if !validName(d) {
			return nil, fmt.Errorf("destination %q", d)
		}
		m.Dests = append(m.Dests, d)
	}
	return m, nil
}

// validName reports whether s is a non-empty lowercase word.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// wire is the second build pass: resolve destinations, build the graph and
// seed conjunction memories from graph predecessors.
func (n *Network) wire(o Options) error {
	allowed := make(map[string]bool, len(o.Sinks))
	for _, s := range o.Sinks {
		allowed[s] = true
	}

	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, name := range n.Names() {
		if err := g.AddVertex(name); err != nil {
			return err
		}
	}
	for _, name := range n.Names() {
		for _, d := range n.modules[name].Dests {
			if _, ok := n.modules[d]; !ok {
				if o.Strict && !allowed[d] {
					return fmt.Errorf("%w: %q (destination of %q)", ErrUnknownModule, d, name)
				}
				n.modules[d] = &Module{Name: d, Kind: Sink}
			}
			if _, err := g.AddEdge(name, d, 0); err != nil {
				return err
			}
		}
	}
	for _, s := range o.Sinks {
		if _, ok := n.modules[s]; !ok {
			n.modules[s] = &Module{Name: s, Kind: Sink}
			if err := g.AddVertex(s); err != nil {
				return err
			}
		}
	}

	for _, m := range n.modules {
		if m.Kind != Conjunction {
			continue
		}
		preds, err := g.Predecessors(m.Name)
		if err != nil {
			return err
		}
		for _, p := range preds {
			m.memory[p] = Low
		}
	}
	n.graph = g

	return nil
}

// Names returns every module name, sinks included, sorted.
func (n *Network) Names() []string {
	names := make([]string, 0, len(n.modules))
	for name := range n.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module returns the module called name.
func (n *Network) Module(name string) (*Module, bool) {
	m, ok := n.modules[name]
	return m, ok
}

// Inputs returns the modules wired into name, sorted.
func (n *Network) Inputs(name string) ([]string, error) {
	if _, ok := n.modules[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, name)
	}
	return n.graph.Predecessors(name)
}

// Presses returns the number of presses since the last Reset.
func (n *Network) Presses() int { return n.presses }

// Reset restores every module to its initial state.
func (n *Network) Reset() {
	for _, m := range n.modules {
		m.reset()
	}
	n.presses = 0
}

// Press pushes the button once, runs the network until it is quiet and
// returns the pulses delivered, the button pulse included.
func (n *Network) Press(hooks ...Hook) Tally {
	n.presses++
	var t Tally
	queue := []Pulse{{From: Button, To: BroadcasterName, Level: Low}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.Level == High {
			t.High++
		} else {
			t.Low++
		}
		for _, h := range hooks {
			h(n.presses, p)
		}
		queue = append(queue, n.modules[p.To].Process(p)...)
	}
	return t
}
