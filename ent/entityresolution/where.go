// Code generated by ent, DO NOT EDIT.

package entityresolution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldWorkflowID, v))
}

// EntityName applies equality check predicate on the "entity_name" field. It's identical to EntityNameEQ.
func EntityName(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldEntityName, v))
}

// ResolvedEntityID applies equality check predicate on the "resolved_entity_id" field. It's identical to ResolvedEntityIDEQ.
func ResolvedEntityID(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldResolvedEntityID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContainsFold(FieldWorkflowID, v))
}

// EntityNameEQ applies the EQ predicate on the "entity_name" field.
func EntityNameEQ(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldEntityName, v))
}

// EntityNameNEQ applies the NEQ predicate on the "entity_name" field.
func EntityNameNEQ(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldEntityName, v))
}

// EntityNameIn applies the In predicate on the "entity_name" field.
func EntityNameIn(vs ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldEntityName, vs...))
}

// EntityNameNotIn applies the NotIn predicate on the "entity_name" field.
func EntityNameNotIn(vs ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldEntityName, vs...))
}

// EntityNameGT applies the GT predicate on the "entity_name" field.
func EntityNameGT(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGT(FieldEntityName, v))
}

// EntityNameGTE applies the GTE predicate on the "entity_name" field.
func EntityNameGTE(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGTE(FieldEntityName, v))
}

// EntityNameLT applies the LT predicate on the "entity_name" field.
func EntityNameLT(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLT(FieldEntityName, v))
}

// EntityNameLTE applies the LTE predicate on the "entity_name" field.
func EntityNameLTE(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLTE(FieldEntityName, v))
}

// EntityNameContains applies the Contains predicate on the "entity_name" field.
func EntityNameContains(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContains(FieldEntityName, v))
}

// EntityNameHasPrefix applies the HasPrefix predicate on the "entity_name" field.
func EntityNameHasPrefix(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldHasPrefix(FieldEntityName, v))
}

// EntityNameHasSuffix applies the HasSuffix predicate on the "entity_name" field.
func EntityNameHasSuffix(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldHasSuffix(FieldEntityName, v))
}

// EntityNameEqualFold applies the EqualFold predicate on the "entity_name" field.
func EntityNameEqualFold(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEqualFold(FieldEntityName, v))
}

// EntityNameContainsFold applies the ContainsFold predicate on the "entity_name" field.
func EntityNameContainsFold(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContainsFold(FieldEntityName, v))
}

// ResolvedEntityIDEQ applies the EQ predicate on the "resolved_entity_id" field.
func ResolvedEntityIDEQ(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldResolvedEntityID, v))
}

// ResolvedEntityIDNEQ applies the NEQ predicate on the "resolved_entity_id" field.
func ResolvedEntityIDNEQ(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldResolvedEntityID, v))
}

// ResolvedEntityIDIn applies the In predicate on the "resolved_entity_id" field.
func ResolvedEntityIDIn(vs ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldResolvedEntityID, vs...))
}

// ResolvedEntityIDNotIn applies the NotIn predicate on the "resolved_entity_id" field.
func ResolvedEntityIDNotIn(vs ...string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldResolvedEntityID, vs...))
}

// ResolvedEntityIDGT applies the GT predicate on the "resolved_entity_id" field.
func ResolvedEntityIDGT(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGT(FieldResolvedEntityID, v))
}

// ResolvedEntityIDGTE applies the GTE predicate on the "resolved_entity_id" field.
func ResolvedEntityIDGTE(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGTE(FieldResolvedEntityID, v))
}

// ResolvedEntityIDLT applies the LT predicate on the "resolved_entity_id" field.
func ResolvedEntityIDLT(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLT(FieldResolvedEntityID, v))
}

// ResolvedEntityIDLTE applies the LTE predicate on the "resolved_entity_id" field.
func ResolvedEntityIDLTE(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLTE(FieldResolvedEntityID, v))
}

// ResolvedEntityIDContains applies the Contains predicate on the "resolved_entity_id" field.
func ResolvedEntityIDContains(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContains(FieldResolvedEntityID, v))
}

// ResolvedEntityIDHasPrefix applies the HasPrefix predicate on the "resolved_entity_id" field.
func ResolvedEntityIDHasPrefix(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldHasPrefix(FieldResolvedEntityID, v))
}

// ResolvedEntityIDHasSuffix applies the HasSuffix predicate on the "resolved_entity_id" field.
func ResolvedEntityIDHasSuffix(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldHasSuffix(FieldResolvedEntityID, v))
}

// ResolvedEntityIDEqualFold applies the EqualFold predicate on the "resolved_entity_id" field.
func ResolvedEntityIDEqualFold(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEqualFold(FieldResolvedEntityID, v))
}

// ResolvedEntityIDContainsFold applies the ContainsFold predicate on the "resolved_entity_id" field.
func ResolvedEntityIDContainsFold(v string) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldContainsFold(FieldResolvedEntityID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldAction, vs...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLTE(FieldScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityResolution {
	return predicate.EntityResolution(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityResolution) predicate.EntityResolution {
	return predicate.EntityResolution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityResolution) predicate.EntityResolution {
	return predicate.EntityResolution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityResolution) predicate.EntityResolution {
	return predicate.EntityResolution(sql.NotPredicates(p))
}
