// Code generated by ent, DO NOT EDIT.

package stepevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStepID, v))
}

// Substep applies equality check predicate on the "substep" field. It's identical to SubstepEQ.
func Substep(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSubstep, v))
}

// Current applies equality check predicate on the "current" field. It's identical to CurrentEQ.
func Current(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCurrent, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTotal, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldMessage, v))
}

// Stream applies equality check predicate on the "stream" field. It's identical to StreamEQ.
func Stream(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStream, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldStepID, v))
}

// SubstepEQ applies the EQ predicate on the "substep" field.
func SubstepEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSubstep, v))
}

// SubstepNEQ applies the NEQ predicate on the "substep" field.
func SubstepNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSubstep, v))
}

// SubstepIn applies the In predicate on the "substep" field.
func SubstepIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSubstep, vs...))
}

// SubstepNotIn applies the NotIn predicate on the "substep" field.
func SubstepNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSubstep, vs...))
}

// SubstepGT applies the GT predicate on the "substep" field.
func SubstepGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSubstep, v))
}

// SubstepGTE applies the GTE predicate on the "substep" field.
func SubstepGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSubstep, v))
}

// SubstepLT applies the LT predicate on the "substep" field.
func SubstepLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSubstep, v))
}

// SubstepLTE applies the LTE predicate on the "substep" field.
func SubstepLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSubstep, v))
}

// SubstepContains applies the Contains predicate on the "substep" field.
func SubstepContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldSubstep, v))
}

// SubstepHasPrefix applies the HasPrefix predicate on the "substep" field.
func SubstepHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldSubstep, v))
}

// SubstepHasSuffix applies the HasSuffix predicate on the "substep" field.
func SubstepHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldSubstep, v))
}

// SubstepIsNil applies the IsNil predicate on the "substep" field.
func SubstepIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldSubstep))
}

// SubstepNotNil applies the NotNil predicate on the "substep" field.
func SubstepNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldSubstep))
}

// SubstepEqualFold applies the EqualFold predicate on the "substep" field.
func SubstepEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldSubstep, v))
}

// SubstepContainsFold applies the ContainsFold predicate on the "substep" field.
func SubstepContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldSubstep, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentEQ applies the EQ predicate on the "current" field.
func CurrentEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCurrent, v))
}

// CurrentNEQ applies the NEQ predicate on the "current" field.
func CurrentNEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldCurrent, v))
}

// CurrentIn applies the In predicate on the "current" field.
func CurrentIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldCurrent, vs...))
}

// CurrentNotIn applies the NotIn predicate on the "current" field.
func CurrentNotIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldCurrent, vs...))
}

// CurrentGT applies the GT predicate on the "current" field.
func CurrentGT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldCurrent, v))
}

// CurrentGTE applies the GTE predicate on the "current" field.
func CurrentGTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldCurrent, v))
}

// CurrentLT applies the LT predicate on the "current" field.
func CurrentLT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldCurrent, v))
}

// CurrentLTE applies the LTE predicate on the "current" field.
func CurrentLTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldCurrent, v))
}

// CurrentIsNil applies the IsNil predicate on the "current" field.
func CurrentIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldCurrent))
}

// CurrentNotNil applies the NotNil predicate on the "current" field.
func CurrentNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldCurrent))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldTotal, v))
}

// TotalIsNil applies the IsNil predicate on the "total" field.
func TotalIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldTotal))
}

// TotalNotNil applies the NotNil predicate on the "total" field.
func TotalNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldTotal))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldMessage, v))
}

// StreamEQ applies the EQ predicate on the "stream" field.
func StreamEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStream, v))
}

// StreamNEQ applies the NEQ predicate on the "stream" field.
func StreamNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldStream, v))
}

// StreamIn applies the In predicate on the "stream" field.
func StreamIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldStream, vs...))
}

// StreamNotIn applies the NotIn predicate on the "stream" field.
func StreamNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldStream, vs...))
}

// StreamGT applies the GT predicate on the "stream" field.
func StreamGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldStream, v))
}

// StreamGTE applies the GTE predicate on the "stream" field.
func StreamGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldStream, v))
}

// StreamLT applies the LT predicate on the "stream" field.
func StreamLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldStream, v))
}

// StreamLTE applies the LTE predicate on the "stream" field.
func StreamLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldStream, v))
}

// StreamContains applies the Contains predicate on the "stream" field.
func StreamContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldStream, v))
}

// StreamHasPrefix applies the HasPrefix predicate on the "stream" field.
func StreamHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldStream, v))
}

// StreamHasSuffix applies the HasSuffix predicate on the "stream" field.
func StreamHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldStream, v))
}

// StreamEqualFold applies the EqualFold predicate on the "stream" field.
func StreamEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldStream, v))
}

// StreamContainsFold applies the ContainsFold predicate on the "stream" field.
func StreamContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldStream, v))
}

// EventMetadataIsNil applies the IsNil predicate on the "event_metadata" field.
func EventMetadataIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldEventMetadata))
}

// EventMetadataNotNil applies the NotNil predicate on the "event_metadata" field.
func EventMetadataNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldEventMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StepEvent {
	return predicate.StepEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.StepEvent {
	return predicate.StepEvent(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.NotPredicates(p))
}
