package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SectionExtraction is the per-workflow staging row holding one document
// section and its LLM extraction outputs (entities, relationships, claims).
type SectionExtraction struct {
	ent.Schema
}

// Fields of the SectionExtraction.
func (SectionExtraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("section_extraction_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("section_id").
			Unique().
			Comment("Stable section identifier referenced by claim rows"),
		field.Int("section_index"),
		field.String("header").
			Optional(),
		field.Text("content"),
		field.Bytes("embedding").
			Optional(),
		field.JSON("entities", []map[string]interface{}{}).
			Optional().
			Comment("Extracted entity mentions; claims reference these by index"),
		field.JSON("relationships", []map[string]interface{}{}).
			Optional(),
		field.JSON("claims", []map[string]interface{}{}).
			Optional(),
		field.String("content_type").
			Optional(),
		field.Enum("status").
			Values("pending", "extracted", "error").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SectionExtraction.
func (SectionExtraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "document_id", "section_index").
			Unique(),
	}
}
