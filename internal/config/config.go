// Package config loads the HCL run plan that lists which puzzle solvers to
// run, on which input files, and with which parameters.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/exp/slices"
)

// ErrPlan is returned for plans that decode but make no sense.
var ErrPlan = errors.New("config: invalid plan")

// Solvers lists the recognised puzzle labels in day order.
var Solvers = []string{"pipemaze", "crucible", "lagoon", "aplenty", "pulse", "garden"}

// Puzzle is one `puzzle "<label>" { ... }` block. Numeric attributes are
// nil when the block omits them, so an explicit 0 stays distinguishable.
type Puzzle struct {
	Name    string `hcl:"name,label"`
	Input   string `hcl:"input"`
	Variant string `hcl:"variant,optional"`
	MinRun  *int   `hcl:"min_run,optional"`
	MaxRun  *int   `hcl:"max_run,optional"`
	Steps   *int   `hcl:"steps,optional"`
	Presses *int   `hcl:"presses,optional"`
	Target  string `hcl:"target,optional"`
	Limit   *int   `hcl:"limit,optional"`
}

// Int returns a pointer to v for building plans in code.
func Int(v int) *int { return &v }

// Plan is a decoded run plan.
type Plan struct {
	Puzzles []Puzzle `hcl:"puzzle,block"`
}

// Load reads and decodes the plan at path. The variable `inputs` is bound
// to inputsDir while evaluating attribute expressions.
func Load(path, inputsDir string) (*Plan, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, diags)
	}
	return decode(file, inputsDir)
}

// Parse decodes plan source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename, inputsDir string) (*Plan, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", filename, diags)
	}
	return decode(file, inputsDir)
}

func decode(file *hcl.File, inputsDir string) (*Plan, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"inputs": cty.StringVal(inputsDir),
		},
	}
	var plan Plan
	if diags := gohcl.DecodeBody(file.Body, ctx, &plan); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan: %w", diags)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks labels, inputs and numeric attributes.
func (p *Plan) Validate() error {
	if len(p.Puzzles) == 0 {
		return fmt.Errorf("%w: no puzzle blocks", ErrPlan)
	}
	for i, pz := range p.Puzzles {
		if !slices.Contains(Solvers, pz.Name) {
			return fmt.Errorf("%w: puzzle %d: unknown solver %q", ErrPlan, i, pz.Name)
		}
		if pz.Input == "" {
			return fmt.Errorf("%w: puzzle %q: empty input", ErrPlan, pz.Name)
		}
		for _, v := range []*int{pz.MinRun, pz.MaxRun, pz.Steps, pz.Presses, pz.Limit} {
			if v != nil && *v < 0 {
				return fmt.Errorf("%w: puzzle %q: negative parameter %d", ErrPlan, pz.Name, *v)
			}
		}
	}
	return nil
}

// Default is the plan used when none is given: both parts of every puzzle,
// reading <inputsDir>/<day>.txt.
func Default(inputsDir string) *Plan {
	in := func(day string) string { return filepath.Join(inputsDir, day+".txt") }
	return &Plan{Puzzles: []Puzzle{
		{Name: "pipemaze", Input: in("10"), Variant: "farthest"},
		{Name: "pipemaze", Input: in("10")},
		{Name: "crucible", Input: in("17"), MinRun: Int(1), MaxRun: Int(3)},
		{Name: "crucible", Input: in("17"), MinRun: Int(4), MaxRun: Int(10)},
		{Name: "lagoon", Input: in("18")},
		{Name: "lagoon", Input: in("18"), Variant: "hex"},
		{Name: "aplenty", Input: in("19"), Variant: "ratings"},
		{Name: "aplenty", Input: in("19")},
		{Name: "pulse", Input: in("20"), Presses: Int(1000)},
		{Name: "pulse", Input: in("20"), Variant: "cycles", Target: "rx"},
		{Name: "garden", Input: in("21"), Variant: "bounded", Steps: Int(64)},
		{Name: "garden", Input: in("21"), Steps: Int(26501365)},
	}}
}
