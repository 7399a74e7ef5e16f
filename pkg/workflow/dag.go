package workflow

import (
	"sort"
	"strings"
)

// DAG is the validated execution plan for a workflow definition.
type DAG struct {
	// Levels groups step names by execution level: level 0 holds steps with
	// no dependencies; level N holds steps whose dependencies all sit at
	// levels < N. Steps within a level may run concurrently.
	Levels [][]string

	// CriticalPath is the longest dependency chain, tie-broken
	// deterministically (priority ascending, then name ascending).
	CriticalPath []string

	// Parallelizable is true when at least one level holds more than one step.
	Parallelizable bool
}

// dfs colors for cycle detection.
const (
	colorWhite = iota // unvisited
	colorGray         // on the current DFS stack
	colorBlack        // fully explored
)

// BuildDAG validates the step graph and computes execution levels and the
// critical path. Planning is reproducible: all tie-breaks sort by priority
// ascending then name ascending.
func BuildDAG(steps map[string]StepDef) (*DAG, error) {
	names := make([]string, 0, len(steps))
	for name := range steps {
		names = append(names, name)
	}
	sort.Strings(names)

	// Validate dependency targets before walking.
	for _, name := range names {
		for _, dep := range steps[name].DependsOn {
			if _, ok := steps[dep]; !ok {
				return nil, NewValidationError("step %q: unknown depends_on target %q", name, dep)
			}
		}
	}

	// Three-color DFS cycle detection, deterministic order.
	color := make(map[string]int, len(steps))
	var cycle []string
	var visit func(name string, stack []string) bool
	visit = func(name string, stack []string) bool {
		color[name] = colorGray
		stack = append(stack, name)

		deps := append([]string(nil), steps[name].DependsOn...)
		sort.Strings(deps)
		for _, dep := range deps {
			switch color[dep] {
			case colorGray:
				// Found a back edge; reconstruct the cycle path [dep ... name dep].
				start := 0
				for i, s := range stack {
					if s == dep {
						start = i
						break
					}
				}
				cycle = append(append([]string(nil), stack[start:]...), dep)
				return false
			case colorWhite:
				if !visit(dep, stack) {
					return false
				}
			}
		}
		color[name] = colorBlack
		return true
	}
	for _, name := range names {
		if color[name] == colorWhite {
			if !visit(name, nil) {
				return nil, NewValidationError("dependency cycle detected: [%s]", strings.Join(cycle, ", "))
			}
		}
	}

	// Execution levels by longest-path depth.
	depth := make(map[string]int, len(steps))
	var depthOf func(name string) int
	depthOf = func(name string) int {
		if d, ok := depth[name]; ok {
			return d
		}
		d := 0
		for _, dep := range steps[name].DependsOn {
			if dd := depthOf(dep) + 1; dd > d {
				d = dd
			}
		}
		depth[name] = d
		return d
	}

	maxDepth := 0
	for _, name := range names {
		if d := depthOf(name); d > maxDepth {
			maxDepth = d
		}
	}

	levels := make([][]string, maxDepth+1)
	for _, name := range names {
		d := depth[name]
		levels[d] = append(levels[d], name)
	}
	parallelizable := false
	for _, level := range levels {
		sortSteps(level, steps)
		if len(level) > 1 {
			parallelizable = true
		}
	}

	return &DAG{
		Levels:         levels,
		CriticalPath:   criticalPath(names, steps, depth),
		Parallelizable: parallelizable,
	}, nil
}

// sortSteps orders step names by priority ascending, then name ascending.
func sortSteps(names []string, steps map[string]StepDef) {
	sort.Slice(names, func(i, j int) bool {
		pi, pj := steps[names[i]].Priority, steps[names[j]].Priority
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
}

// criticalPath walks back from the deepest step, at each hop choosing the
// dependency at depth-1 with the lowest (priority, name).
func criticalPath(names []string, steps map[string]StepDef, depth map[string]int) []string {
	if len(names) == 0 {
		return nil
	}

	// Deepest step, deterministic tie-break.
	var end string
	endDepth := -1
	for _, name := range names {
		d := depth[name]
		if d > endDepth || (d == endDepth && stepLess(name, end, steps)) {
			end = name
			endDepth = d
		}
	}

	path := []string{end}
	cur := end
	for depth[cur] > 0 {
		var next string
		for _, dep := range steps[cur].DependsOn {
			if depth[dep] != depth[cur]-1 {
				continue
			}
			if next == "" || stepLess(dep, next, steps) {
				next = dep
			}
		}
		if next == "" {
			break
		}
		path = append(path, next)
		cur = next
	}

	// Reverse into root-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// stepLess compares two steps by (priority, name).
func stepLess(a, b string, steps map[string]StepDef) bool {
	if b == "" {
		return true
	}
	pa, pb := steps[a].Priority, steps[b].Priority
	if pa != pb {
		return pa < pb
	}
	return a < b
}
