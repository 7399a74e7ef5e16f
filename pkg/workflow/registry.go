package workflow

import (
	"sort"
	"sync"
)

// Registry maps tool type names to implementations. Workflow validation
// rejects any step whose type is not registered here.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool under its name. Registering the same name twice
// replaces the previous tool (used by tests to install fakes).
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns the tool for a type name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Has reports whether a tool type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WorkflowRegistry maps workflow names to definitions. Built-in workflows
// are registered at startup; declarative TOML workflows register on load.
type WorkflowRegistry struct {
	mu        sync.RWMutex
	workflows map[string]*Definition
}

// NewWorkflowRegistry creates an empty workflow registry.
func NewWorkflowRegistry() *WorkflowRegistry {
	return &WorkflowRegistry{workflows: make(map[string]*Definition)}
}

// Register adds a workflow definition under its name.
func (r *WorkflowRegistry) Register(d *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[d.Name] = d
}

// Get returns the definition for a workflow name.
func (r *WorkflowRegistry) Get(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.workflows[name]
	return d, ok
}

// Names returns all registered workflow names, sorted.
func (r *WorkflowRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.workflows))
	for name := range r.workflows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
