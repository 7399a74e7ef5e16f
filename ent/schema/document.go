package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the canonical unit of ingested content.
// Created by map, updated by fetch (hash, path) and indexing (indexed_with_hash).
// Never hard-deleted by the pipeline.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("source_url").
			Comment("URL, file path, or CMS identifier depending on source_type"),
		field.Enum("source_type").
			Values("url", "file", "cms", "api").
			Default("url"),
		field.String("title").
			Optional().
			Nillable(),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("content_path").
			Optional().
			Nillable().
			Comment("Relative path into the content store"),
		field.String("content_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of raw content; non-null iff fetch succeeded"),
		field.String("indexed_with_hash").
			Optional().
			Nillable().
			Comment("Hash last processed by indexing; equality with content_hash allows skip"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("document_entities", DocumentEntity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("claims", Claim.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_url", "source_type").
			Unique(),
		index.Fields("content_hash"),
	}
}
