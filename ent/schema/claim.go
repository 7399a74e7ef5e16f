package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Claim holds the schema definition for an atomic assertion extracted from a
// document section. A claim is only persisted when anchored to a subject entity.
type Claim struct {
	ent.Schema
}

// Fields of the Claim.
func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("claim_id").
			Unique().
			Immutable(),
		field.String("claim_hash").
			Unique().
			Comment("SHA-256 over normalized statement + claim_type + document_id"),
		field.Text("statement").
			Comment("Canonical statement for the cluster this claim represents"),
		field.Enum("claim_type").
			Values("definition", "capability", "limitation", "relationship", "fact").
			Default("definition"),
		field.Float("confidence").
			Default(0),
		field.String("subject_entity_id").
			Comment("Primary entity anchor; required for persistence"),
		field.String("document_id").
			Immutable(),
		field.String("section_id").
			Optional(),
		field.Text("source_quote").
			Optional(),
		field.Bytes("embedding").
			Optional().
			Comment("Statement embedding used for cross-workflow similarity"),
		field.String("workflow_id").
			Comment("Workflow that created or last merged this claim"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Claim.
func (Claim) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("claims").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
		edge.To("claim_entities", ClaimEntity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Claim.
func (Claim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("subject_entity_id"),
		index.Fields("claim_type"),
		index.Fields("document_id", "workflow_id"),
	}
}
