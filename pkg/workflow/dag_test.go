package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(deps ...string) StepDef {
	return StepDef{Type: "noop", DependsOn: deps}
}

func TestBuildDAG_Levels(t *testing.T) {
	tests := []struct {
		name           string
		steps          map[string]StepDef
		wantLevels     [][]string
		parallelizable bool
	}{
		{
			name:           "single step",
			steps:          map[string]StepDef{"a": step()},
			wantLevels:     [][]string{{"a"}},
			parallelizable: false,
		},
		{
			name: "diamond",
			steps: map[string]StepDef{
				"a": step(),
				"b": step("a"),
				"c": step("a"),
				"d": step("b", "c"),
			},
			wantLevels:     [][]string{{"a"}, {"b", "c"}, {"d"}},
			parallelizable: true,
		},
		{
			name: "linear chain",
			steps: map[string]StepDef{
				"a": step(),
				"b": step("a"),
				"c": step("b"),
			},
			wantLevels:     [][]string{{"a"}, {"b"}, {"c"}},
			parallelizable: false,
		},
		{
			name: "independent roots sorted by name",
			steps: map[string]StepDef{
				"z": step(),
				"a": step(),
				"m": step(),
			},
			wantLevels:     [][]string{{"a", "m", "z"}},
			parallelizable: true,
		},
		{
			name: "level follows longest dependency path",
			steps: map[string]StepDef{
				"a": step(),
				"b": step("a"),
				"c": step("a", "b"), // depth 2 despite direct edge from a
			},
			wantLevels:     [][]string{{"a"}, {"b"}, {"c"}},
			parallelizable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dag, err := BuildDAG(tt.steps)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevels, dag.Levels)
			assert.Equal(t, tt.parallelizable, dag.Parallelizable)
		})
	}
}

func TestBuildDAG_PriorityOrdersWithinLevel(t *testing.T) {
	steps := map[string]StepDef{
		"a": {Type: "noop", Priority: 5},
		"b": {Type: "noop", Priority: 1},
		"c": {Type: "noop", Priority: 1},
	}

	dag, err := BuildDAG(steps)
	require.NoError(t, err)

	// Priority ascending, then name ascending.
	assert.Equal(t, [][]string{{"b", "c", "a"}}, dag.Levels)
}

func TestBuildDAG_CriticalPath(t *testing.T) {
	dag, err := BuildDAG(map[string]StepDef{
		"a": step(),
		"b": step("a"),
		"c": step("a"),
		"d": step("b", "c"),
	})
	require.NoError(t, err)

	// b and c tie at depth 1; the name tie-break picks b.
	assert.Equal(t, []string{"a", "b", "d"}, dag.CriticalPath)
}

func TestBuildDAG_CycleRejected(t *testing.T) {
	_, err := BuildDAG(map[string]StepDef{
		"a": step("c"),
		"b": step("a"),
		"c": step("b"),
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "dependency cycle detected")
	assert.Contains(t, err.Error(), "[a, c, b, a]")
}

func TestBuildDAG_SelfCycleRejected(t *testing.T) {
	_, err := BuildDAG(map[string]StepDef{"a": step("a")})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "[a, a]")
}

func TestBuildDAG_UnknownDependency(t *testing.T) {
	_, err := BuildDAG(map[string]StepDef{"a": step("ghost")})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), `unknown depends_on target "ghost"`)
}

func TestBuildDAG_Empty(t *testing.T) {
	dag, err := BuildDAG(map[string]StepDef{})
	require.NoError(t, err)
	assert.Len(t, dag.Levels, 1)
	assert.Empty(t, dag.Levels[0])
	assert.False(t, dag.Parallelizable)
}

func TestBuildDAG_Deterministic(t *testing.T) {
	steps := map[string]StepDef{
		"fetch":    step("map"),
		"map":      step(),
		"sections": step("fetch"),
		"entities": step("fetch"),
		"cluster":  step("sections", "entities"),
		"resolve":  step("cluster"),
	}

	first, err := BuildDAG(steps)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := BuildDAG(steps)
		require.NoError(t, err)
		assert.Equal(t, first.Levels, again.Levels)
		assert.Equal(t, first.CriticalPath, again.CriticalPath)
	}
}
