package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClaimResolution is the final per-claim disposition for a workflow.
type ClaimResolution struct {
	ent.Schema
}

// Fields of the ClaimResolution.
func (ClaimResolution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("claim_resolution_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("claim_hash"),
		field.String("decision").
			Comment("Clustering decision this row resolves"),
		field.Enum("resolution_action").
			Values("created", "merged", "deduplicated", "skipped"),
		field.String("resolved_claim_id").
			Optional().
			Comment("Claim row this occurrence resolved to; empty for skipped"),
		field.JSON("linked_entity_ids", []string{}).
			Optional(),
		field.JSON("resolution_metadata", map[string]interface{}{}).
			Optional().
			Comment("e.g. degraded_from when a MERGE_WITH target vanished"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ClaimResolution.
func (ClaimResolution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "claim_hash").
			Unique(),
		index.Fields("resolution_action"),
	}
}
