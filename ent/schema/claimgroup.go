package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClaimGroup is the intermediate output of claim clustering: one row per claim
// occurrence with its cluster assignment and decision.
type ClaimGroup struct {
	ent.Schema
}

// Fields of the ClaimGroup.
func (ClaimGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("claim_group_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("section_id"),
		field.String("claim_hash"),
		field.String("cluster_id"),
		field.Int("cluster_size").
			Default(1),
		field.String("decision").
			Comment("CREATE_NEW, MERGE_WITH:<hash>, or DUPLICATE_OF:<hash>"),
		field.Text("statement").
			Comment("Occurrence statement, capped at 1000 characters"),
		field.Text("canonical_statement").
			Comment("Full-length representative statement for the cluster"),
		field.Enum("claim_type").
			Values("definition", "capability", "limitation", "relationship", "fact").
			Default("definition"),
		field.Float("confidence").
			Default(0),
		field.JSON("entity_indices", []int{}).
			Optional().
			Comment("Indices into the section's local entities list, preserved verbatim"),
		field.JSON("similar_existing", []string{}).
			Optional().
			Comment("Hashes of existing claims above the similarity threshold, for audit"),
		field.Text("source_quote").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ClaimGroup.
func (ClaimGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "cluster_id"),
		index.Fields("workflow_id", "claim_hash"),
	}
}
