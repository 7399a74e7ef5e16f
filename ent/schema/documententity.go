package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentEntity is the many-to-many link between a document and an entity,
// carrying the evidence for the mention. Deleted when its document is re-indexed.
type DocumentEntity struct {
	ent.Schema
}

// Fields of the DocumentEntity.
func (DocumentEntity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_entity_id").
			Unique().
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.Text("quote").
			Optional().
			Comment("Evidence quote from the document"),
		field.Int("start_offset").
			Optional().
			Nillable(),
		field.Int("end_offset").
			Optional().
			Nillable(),
		field.Float("confidence").
			Default(0),
		field.String("workflow_id").
			Comment("Workflow that produced this link; used for stale cleanup"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the DocumentEntity.
func (DocumentEntity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("document_entities").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
		edge.From("entity", Entity.Type).
			Ref("document_entities").
			Field("entity_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DocumentEntity.
func (DocumentEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("entity_id"),
		index.Fields("document_id", "workflow_id"),
	}
}
