package workflow

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// InputDef declares one workflow input parameter.
type InputDef struct {
	Type     string `toml:"type"` // string, int, float, bool
	Required bool   `toml:"required"`
	Default  any    `toml:"default"`
}

// StepDef declares one step of a workflow DAG.
type StepDef struct {
	Type            string         `toml:"type"`
	DependsOn       []string       `toml:"depends_on"`
	Config          map[string]any `toml:"config"`
	ContinueOnError bool           `toml:"continue_on_error"`
	Priority        int            `toml:"priority"`
}

// Definition is a named workflow: a dictionary of steps plus declared inputs.
type Definition struct {
	Name        string              `toml:"-"`
	Description string              `toml:"-"`
	Inputs      map[string]InputDef `toml:"-"`
	Steps       map[string]StepDef  `toml:"-"`
}

// workflowFile mirrors the on-disk TOML layout:
//
//	[workflow]           # name, description
//	[inputs.<name>]      # type, required, default
//	[steps.<name>]       # type, depends_on, config, continue_on_error
type workflowFile struct {
	Workflow struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
	} `toml:"workflow"`
	Inputs map[string]InputDef `toml:"inputs"`
	Steps  map[string]StepDef  `toml:"steps"`
}

var knownTopLevelKeys = map[string]bool{
	"workflow": true,
	"inputs":   true,
	"steps":    true,
}

var knownInputTypes = map[string]bool{
	"string": true,
	"int":    true,
	"float":  true,
	"bool":   true,
}

// LoadDefinition parses and validates a declarative workflow TOML file.
// Structural validation (cycles, unknown tool types) happens later against
// the tool registry in Definition.Validate.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow file: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDefinition parses workflow TOML from memory.
func ParseDefinition(data []byte) (*Definition, error) {
	var file workflowFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, NewValidationError("invalid workflow TOML: %v", err)
	}

	for _, key := range meta.Undecoded() {
		top := key[0]
		if !knownTopLevelKeys[top] {
			return nil, NewValidationError("unknown top-level key %q", top)
		}
	}

	if file.Workflow.Name == "" {
		return nil, NewValidationError("workflow.name is required")
	}

	for name, in := range file.Inputs {
		if !knownInputTypes[in.Type] {
			return nil, NewValidationError("input %q: unknown type %q", name, in.Type)
		}
		if in.Default != nil {
			if err := checkInputValue(name, in.Type, in.Default, "default value"); err != nil {
				return nil, err
			}
		}
	}

	if len(file.Steps) == 0 {
		return nil, NewValidationError("workflow %q declares no steps", file.Workflow.Name)
	}

	return &Definition{
		Name:        file.Workflow.Name,
		Description: file.Workflow.Description,
		Inputs:      file.Inputs,
		Steps:       file.Steps,
	}, nil
}

// checkInputValue verifies a value matches the declared input type. Inputs
// round-trip through JSON on retry, which turns ints into float64, so an
// integral float satisfies int.
func checkInputValue(name, typ string, v any, what string) error {
	ok := false
	switch typ {
	case "string":
		_, ok = v.(string)
	case "int":
		switch n := v.(type) {
		case int, int64:
			ok = true
		case float64:
			ok = n == math.Trunc(n)
		}
	case "float":
		switch v.(type) {
		case float64, int64, int:
			ok = true
		}
	case "bool":
		_, ok = v.(bool)
	}
	if !ok {
		return NewValidationError("input %q: %s %v does not match type %s", name, what, v, typ)
	}
	return nil
}

// Validate checks the definition against a tool registry: every step type
// must be registered, every depends_on target must exist, and the graph must
// be acyclic. Returns a ValidationError before any step runs.
func (d *Definition) Validate(reg *Registry) error {
	for _, name := range d.sortedStepNames() {
		step := d.Steps[name]
		if step.Type == "" {
			return NewValidationError("step %q: type is required", name)
		}
		if reg != nil && !reg.Has(step.Type) {
			return NewValidationError("step %q: unknown step type %q", name, step.Type)
		}
		for _, dep := range step.DependsOn {
			if _, exists := d.Steps[dep]; !exists {
				return NewValidationError("step %q: unknown depends_on target %q", name, dep)
			}
		}
	}

	// Cycle detection via BuildDAG (three-color DFS).
	if _, err := BuildDAG(d.Steps); err != nil {
		return err
	}
	return nil
}

// ResolveInputs merges provided inputs with declared defaults and verifies
// required inputs and types. Unknown inputs pass through untouched.
func (d *Definition) ResolveInputs(provided map[string]any) (map[string]any, error) {
	resolved := make(map[string]any, len(provided)+len(d.Inputs))
	for k, v := range provided {
		resolved[k] = v
	}

	names := make([]string, 0, len(d.Inputs))
	for name := range d.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := d.Inputs[name]
		if v, ok := resolved[name]; ok {
			if err := checkInputValue(name, def.Type, v, "value"); err != nil {
				return nil, err
			}
			continue
		}
		if def.Default != nil {
			resolved[name] = def.Default
			continue
		}
		if def.Required {
			return nil, NewValidationError("missing required input %q", name)
		}
	}
	return resolved, nil
}

// sortedStepNames returns step names in deterministic order.
func (d *Definition) sortedStepNames() []string {
	names := make([]string, 0, len(d.Steps))
	for name := range d.Steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
