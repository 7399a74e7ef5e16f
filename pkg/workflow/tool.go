package workflow

import (
	"context"
)

// Item is one record flowing between steps. Large payloads live in staging
// tables; items usually carry identifiers plus light metadata.
type Item = map[string]any

// ItemError records a per-item failure inside a step. Per-item errors never
// fail the workflow; they are aggregated on the step_log row.
type ItemError struct {
	ItemID  string `json:"item_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ToolInput is what a step receives when invoked: the concatenation of its
// dependencies' outputs (in depends_on declaration order), the step's config
// block, and the workflow-level inputs.
type ToolInput struct {
	Items  []Item
	Config map[string]any
	Inputs map[string]any
}

// ToolResult is what a step returns.
type ToolResult struct {
	OutputData []Item
	Errors     []ItemError
	Metadata   map[string]any

	// Strict makes a batch step fail when any sub-task failed, instead of
	// succeeding when at least one succeeded.
	Strict bool
}

// StepContext carries the runtime-scoped collaborators a tool may use while
// executing: event emission, sub-task fan-out, and identity for UI linking.
type StepContext struct {
	RunID  string
	StepID string
	Tool   string

	// Events emits progress/log events and current-value updates.
	Events *Emitter

	// Tasks enqueues sub-tasks on the runtime's bounded queue. Nil when the
	// tool was invoked outside a worker (e.g. unit tests without fan-out).
	Tasks *TaskQueue

	// Canceled reports whether the workflow entered the canceling state.
	// Checked by the runtime at step boundaries and by tools before
	// enqueueing further sub-tasks.
	Canceled func(ctx context.Context) bool
}

// IsCanceled is a nil-safe wrapper around Canceled.
func (sc *StepContext) IsCanceled(ctx context.Context) bool {
	if sc == nil || sc.Canceled == nil {
		return false
	}
	return sc.Canceled(ctx)
}

// Tool is a registered step implementation. Tools are constructed with their
// own collaborators (db client, content store, engines) at registration time;
// only runtime-scoped state arrives through the StepContext.
type Tool interface {
	// Name returns the registry key, matching StepDef.Type.
	Name() string

	// Run executes the step. Per-item failures go into ToolResult.Errors;
	// a returned error fails the step itself (retried when transient).
	Run(ctx context.Context, sc *StepContext, in ToolInput) (*ToolResult, error)
}

// lookup resolves a key with step config taking precedence over
// workflow-level inputs.
func (in ToolInput) lookup(key string) (any, bool) {
	if v, ok := in.Config[key]; ok && v != nil {
		return v, true
	}
	if v, ok := in.Inputs[key]; ok && v != nil {
		return v, true
	}
	return nil, false
}

// GetString reads a string value with a default.
func (in ToolInput) GetString(key, def string) string {
	if raw, ok := in.lookup(key); ok {
		if v, ok := raw.(string); ok && v != "" {
			return v
		}
	}
	return def
}

// GetInt reads an int value with a default. TOML and JSON decoding produce
// int64 and float64 respectively, so all three are accepted.
func (in ToolInput) GetInt(key string, def int) int {
	raw, ok := in.lookup(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// GetBool reads a bool value with a default.
func (in ToolInput) GetBool(key string, def bool) bool {
	if raw, ok := in.lookup(key); ok {
		if v, ok := raw.(bool); ok {
			return v
		}
	}
	return def
}

// GetFloat reads a float value with a default.
func (in ToolInput) GetFloat(key string, def float64) float64 {
	raw, ok := in.lookup(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
