package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FetchDocument is the per-workflow landing record of one fetch outcome.
// All rows for a workflow are written in a single durable transaction at
// the end of the fetch step.
type FetchDocument struct {
	ent.Schema
}

// Fields of the FetchDocument.
func (FetchDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("fetch_document_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.Enum("status").
			Values("success", "error", "skip").
			Default("success"),
		field.Int("content_length").
			Optional().
			Nillable(),
		field.String("content_hash").
			Optional(),
		field.String("content_path").
			Optional(),
		field.String("engine").
			Optional().
			Comment("Engine that produced the content (trafilatura, httpx, firecrawl, tavily, file, cms)"),
		field.String("skip_reason").
			Optional().
			Comment("e.g. content_unchanged in delta mode"),
		field.String("error_message").
			Optional(),
		field.JSON("fetch_metadata", map[string]interface{}{}).
			Optional(),
		field.Bytes("embedding").
			Optional().
			Comment("Truncated-content embedding; nil when no provider configured"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the FetchDocument.
func (FetchDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "document_id").
			Unique(),
		index.Fields("status"),
	}
}
