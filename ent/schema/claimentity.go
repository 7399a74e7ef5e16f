package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClaimEntity links a claim to an entity it references. Merging a duplicate
// claim occurrence grows this link set rather than creating a new claim.
type ClaimEntity struct {
	ent.Schema
}

// Fields of the ClaimEntity.
func (ClaimEntity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("claim_entity_id").
			Unique().
			Immutable(),
		field.String("claim_id").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ClaimEntity.
func (ClaimEntity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claim", Claim.Type).
			Ref("claim_entities").
			Field("claim_id").
			Unique().
			Required().
			Immutable(),
		edge.From("entity", Entity.Type).
			Ref("claim_entities").
			Field("entity_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ClaimEntity.
func (ClaimEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id", "entity_id").
			Unique(),
		index.Fields("entity_id"),
	}
}
