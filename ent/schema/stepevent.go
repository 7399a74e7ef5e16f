package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepEvent holds one entry of the append-only observability stream.
// The auto-increment integer id is the pagination cursor: readers iterate
// by id > cursor and see every event exactly once.
type StepEvent struct {
	ent.Schema
}

// Fields of the StepEvent.
func (StepEvent) Fields() []ent.Field {
	return []ent.Field{
		// Implicit int id — monotonic, used as the stream cursor.
		field.String("run_id").
			Immutable(),
		field.String("step_id").
			Optional().
			Comment("Empty for workflow-level events"),
		field.String("substep").
			Optional().
			Comment("Sub-task identifier for fan-out steps"),
		field.Enum("status").
			Values("pending", "running", "progress", "completed", "failed").
			Default("pending"),
		field.Int("current").
			Optional().
			Nillable(),
		field.Int("total").
			Optional().
			Nillable(),
		field.String("message").
			Optional(),
		field.String("stream").
			Default("progress").
			Comment("Stream name this event belongs to (progress, logs)"),
		field.JSON("event_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StepEvent.
func (StepEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("step_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepEvent.
func (StepEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "step_id"),
		index.Fields("run_id", "stream"),
		index.Fields("created_at"),
	}
}
