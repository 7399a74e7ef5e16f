package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkflowTOML = `
[workflow]
name = "ingest"
description = "map, fetch, index"

[inputs.source]
type = "string"
required = true

[inputs.limit]
type = "int"
default = 100

[steps.map]
type = "map"

[steps.fetch]
type = "fetch"
depends_on = ["map"]
continue_on_error = true

[steps.fetch.config]
engine = "tavily"
`

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(sampleWorkflowTOML))
	require.NoError(t, err)

	assert.Equal(t, "ingest", def.Name)
	assert.Equal(t, "map, fetch, index", def.Description)

	require.Contains(t, def.Inputs, "source")
	assert.True(t, def.Inputs["source"].Required)
	assert.Equal(t, int64(100), def.Inputs["limit"].Default)

	require.Contains(t, def.Steps, "fetch")
	fetch := def.Steps["fetch"]
	assert.Equal(t, "fetch", fetch.Type)
	assert.Equal(t, []string{"map"}, fetch.DependsOn)
	assert.True(t, fetch.ContinueOnError)
	assert.Equal(t, "tavily", fetch.Config["engine"])
}

func TestParseDefinition_Errors(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		wantErr string
	}{
		{
			name:    "unknown top-level key",
			toml:    "[workflow]\nname = \"w\"\n[steps.a]\ntype = \"noop\"\n[extras]\nfoo = 1\n",
			wantErr: `unknown top-level key "extras"`,
		},
		{
			name:    "missing workflow name",
			toml:    "[workflow]\ndescription = \"d\"\n[steps.a]\ntype = \"noop\"\n",
			wantErr: "workflow.name is required",
		},
		{
			name:    "no steps",
			toml:    "[workflow]\nname = \"w\"\n",
			wantErr: "declares no steps",
		},
		{
			name:    "unknown input type",
			toml:    "[workflow]\nname = \"w\"\n[inputs.x]\ntype = \"duration\"\n[steps.a]\ntype = \"noop\"\n",
			wantErr: `unknown type "duration"`,
		},
		{
			name:    "default type mismatch",
			toml:    "[workflow]\nname = \"w\"\n[inputs.x]\ntype = \"int\"\ndefault = \"ten\"\n[steps.a]\ntype = \"noop\"\n",
			wantErr: "does not match type int",
		},
		{
			name:    "malformed TOML",
			toml:    "[workflow\nname=",
			wantErr: "invalid workflow TOML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tt.toml))
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected ValidationError, got %T", err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type noopTool struct{ name string }

func (n *noopTool) Name() string { return n.name }
func (n *noopTool) Run(context.Context, *StepContext, ToolInput) (*ToolResult, error) {
	return &ToolResult{}, nil
}

func TestDefinitionValidate(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&noopTool{name: "map"})
	reg.Register(&noopTool{name: "fetch"})

	t.Run("valid", func(t *testing.T) {
		def := &Definition{
			Name: "w",
			Steps: map[string]StepDef{
				"map":   {Type: "map"},
				"fetch": {Type: "fetch", DependsOn: []string{"map"}},
			},
		}
		assert.NoError(t, def.Validate(reg))
	})

	t.Run("unregistered step type", func(t *testing.T) {
		def := &Definition{
			Name:  "w",
			Steps: map[string]StepDef{"a": {Type: "teleport"}},
		}
		err := def.Validate(reg)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), `unknown step type "teleport"`)
	})

	t.Run("missing step type", func(t *testing.T) {
		def := &Definition{
			Name:  "w",
			Steps: map[string]StepDef{"a": {}},
		}
		err := def.Validate(reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "type is required")
	})

	t.Run("cycle surfaces through validate", func(t *testing.T) {
		def := &Definition{
			Name: "w",
			Steps: map[string]StepDef{
				"a": {Type: "map", DependsOn: []string{"b"}},
				"b": {Type: "map", DependsOn: []string{"a"}},
			},
		}
		err := def.Validate(reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dependency cycle")
	})
}

func TestResolveInputs(t *testing.T) {
	def := &Definition{
		Name: "w",
		Inputs: map[string]InputDef{
			"source": {Type: "string", Required: true},
			"limit":  {Type: "int", Default: int64(100)},
			"dry":    {Type: "bool"},
		},
		Steps: map[string]StepDef{"a": {Type: "noop"}},
	}

	t.Run("defaults applied", func(t *testing.T) {
		got, err := def.ResolveInputs(map[string]any{"source": "https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got["source"])
		assert.Equal(t, int64(100), got["limit"])
		_, ok := got["dry"]
		assert.False(t, ok, "optional input without default stays absent")
	})

	t.Run("provided wins over default", func(t *testing.T) {
		got, err := def.ResolveInputs(map[string]any{"source": "s", "limit": 5})
		require.NoError(t, err)
		assert.Equal(t, 5, got["limit"])
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := def.ResolveInputs(nil)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), `missing required input "source"`)
	})

	t.Run("unknown inputs pass through", func(t *testing.T) {
		got, err := def.ResolveInputs(map[string]any{"source": "s", "extra": true})
		require.NoError(t, err)
		assert.Equal(t, true, got["extra"])
	})

	t.Run("provided value type mismatch", func(t *testing.T) {
		_, err := def.ResolveInputs(map[string]any{"source": "s", "limit": "ten"})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "does not match type int")

		_, err = def.ResolveInputs(map[string]any{"source": 42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match type string")

		_, err = def.ResolveInputs(map[string]any{"source": "s", "dry": "yes"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match type bool")
	})

	t.Run("integral float accepted for int", func(t *testing.T) {
		// Retry re-submits inputs after a JSON round-trip, where 25 comes
		// back as float64.
		got, err := def.ResolveInputs(map[string]any{"source": "s", "limit": float64(25)})
		require.NoError(t, err)
		assert.Equal(t, float64(25), got["limit"])

		_, err = def.ResolveInputs(map[string]any{"source": "s", "limit": 2.5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match type int")
	})
}
