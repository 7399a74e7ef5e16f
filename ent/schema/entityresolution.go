package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityResolution is the per-workflow mapping from an extracted entity
// mention to the entity id it resolved to.
type EntityResolution struct {
	ent.Schema
}

// Fields of the EntityResolution.
func (EntityResolution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_resolution_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("entity_name").
			Comment("Mention text as extracted, before canonicalization"),
		field.String("resolved_entity_id"),
		field.Enum("action").
			Values("created", "matched", "merged"),
		field.Float("score").
			Default(0).
			Comment("Match score that produced the resolution"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the EntityResolution.
func (EntityResolution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "entity_name").
			Unique(),
	}
}
