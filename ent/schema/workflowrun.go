package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for a single durable workflow execution.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("workflow_name").
			Comment("Registered workflow name (e.g., 'fetch', 'index')"),
		field.Enum("status").
			Values("pending", "running", "completed", "completed_with_errors", "failed", "canceling", "canceled").
			Default("pending"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Inputs stored verbatim so a canceled run can be retried"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("First unrecoverable error"),
		field.JSON("run_metadata", map[string]interface{}{}).
			Optional().
			Comment("workflow_type, parent linkage, stage markers"),
		field.String("parent_workflow_id").
			Optional().
			Nillable().
			Comment("Set when this run was spawned by another workflow"),
		field.Int("priority").
			Default(0).
			Comment("Lower value claims first within the pending queue"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the run was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the run (pending to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the WorkflowRun.
func (WorkflowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("step_logs", StepLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("step_events", StepEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workflow_name"),
		index.Fields("parent_workflow_id"),

		// Claim ordering and orphan scans
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
