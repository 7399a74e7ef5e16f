package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepLog holds the durable record of one step execution within a workflow run.
// A step gets exactly one row; retries overwrite it rather than append.
type StepLog struct {
	ent.Schema
}

// Fields of the StepLog.
func (StepLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_log_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id").
			Comment("Step name from the workflow definition"),
		field.String("tool").
			Comment("Registered tool type executing this step"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped", "canceled").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("input_count").
			Default(0),
		field.Int("output_count").
			Default(0),
		field.Int("error_count").
			Default(0),
		field.String("input_hash").
			Optional().
			Comment("SHA-256 of the step's input snapshot; large inputs live in staging tables"),
		field.JSON("errors", []map[string]interface{}{}).
			Optional().
			Comment("Per-item errors: {item_id, kind, message}"),
		field.JSON("step_metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the StepLog.
func (StepLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("step_logs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepLog.
func (StepLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_id").
			Unique(),
		index.Fields("status"),
	}
}
