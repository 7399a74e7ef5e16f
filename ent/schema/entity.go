package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entity holds the schema definition for a canonicalized named concept
// extracted from documents (e.g., "PostgreSQL", "Guido van Rossum").
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Canonical name; unique per entity_type"),
		field.Enum("entity_type").
			Values("technology", "person", "product", "topic", "organization", "concept", "other").
			Default("concept"),
		field.Text("description").
			Optional().
			Nillable(),
		field.JSON("aliases", []string{}).
			Optional().
			Comment("Alternate names; must not collide with another entity's canonical name"),
		field.Bytes("embedding").
			Optional().
			Comment("Dense vector, little-endian float32"),
		field.String("merged_into_id").
			Optional().
			Nillable().
			Comment("Redirect target when this entity was merged away"),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency guard for cross-workflow updates"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("document_entities", DocumentEntity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("claim_entities", ClaimEntity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "entity_type").
			Unique(),
		index.Fields("entity_type"),
	}
}
