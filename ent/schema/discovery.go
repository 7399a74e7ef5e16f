package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Discovery is the per-workflow landing record of how a document was discovered.
type Discovery struct {
	ent.Schema
}

// Fields of the Discovery.
func (Discovery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("discovery_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.Enum("method").
			Values("sitemap", "crawl", "folder", "cms", "manual").
			Default("sitemap"),
		field.Enum("status").
			Values("discovered", "skipped", "error").
			Default("discovered"),
		field.String("detail").
			Optional().
			Comment("Skip reason or error message"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Discovery.
func (Discovery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "document_id").
			Unique(),
	}
}
