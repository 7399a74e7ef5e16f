// Code generated by ent, DO NOT EDIT.

package claimentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldContainsFold(FieldID, id))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldClaimID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldEntityID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNotIn(FieldClaimID, vs...))
}

// ClaimIDGT applies the GT predicate on the "claim_id" field.
func ClaimIDGT(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGT(FieldClaimID, v))
}

// ClaimIDGTE applies the GTE predicate on the "claim_id" field.
func ClaimIDGTE(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGTE(FieldClaimID, v))
}

// ClaimIDLT applies the LT predicate on the "claim_id" field.
func ClaimIDLT(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLT(FieldClaimID, v))
}

// ClaimIDLTE applies the LTE predicate on the "claim_id" field.
func ClaimIDLTE(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLTE(FieldClaimID, v))
}

// ClaimIDContains applies the Contains predicate on the "claim_id" field.
func ClaimIDContains(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldContains(FieldClaimID, v))
}

// ClaimIDHasPrefix applies the HasPrefix predicate on the "claim_id" field.
func ClaimIDHasPrefix(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldHasPrefix(FieldClaimID, v))
}

// ClaimIDHasSuffix applies the HasSuffix predicate on the "claim_id" field.
func ClaimIDHasSuffix(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldHasSuffix(FieldClaimID, v))
}

// ClaimIDEqualFold applies the EqualFold predicate on the "claim_id" field.
func ClaimIDEqualFold(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEqualFold(FieldClaimID, v))
}

// ClaimIDContainsFold applies the ContainsFold predicate on the "claim_id" field.
func ClaimIDContainsFold(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldContainsFold(FieldClaimID, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldContainsFold(FieldEntityID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClaim applies the HasEdge predicate on the "claim" edge.
func HasClaim() predicate.ClaimEntity {
	return predicate.ClaimEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimWith applies the HasEdge predicate on the "claim" edge with a given conditions (other predicates).
func HasClaimWith(preds ...predicate.Claim) predicate.ClaimEntity {
	return predicate.ClaimEntity(func(s *sql.Selector) {
		step := newClaimStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.ClaimEntity {
	return predicate.ClaimEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.Entity) predicate.ClaimEntity {
	return predicate.ClaimEntity(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClaimEntity) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClaimEntity) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClaimEntity) predicate.ClaimEntity {
	return predicate.ClaimEntity(sql.NotPredicates(p))
}
