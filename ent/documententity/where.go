// Code generated by ent, DO NOT EDIT.

package documententity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldDocumentID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldEntityID, v))
}

// Quote applies equality check predicate on the "quote" field. It's identical to QuoteEQ.
func Quote(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldQuote, v))
}

// StartOffset applies equality check predicate on the "start_offset" field. It's identical to StartOffsetEQ.
func StartOffset(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldStartOffset, v))
}

// EndOffset applies equality check predicate on the "end_offset" field. It's identical to EndOffsetEQ.
func EndOffset(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldEndOffset, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldConfidence, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldWorkflowID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContainsFold(FieldDocumentID, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContainsFold(FieldEntityID, v))
}

// QuoteEQ applies the EQ predicate on the "quote" field.
func QuoteEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldQuote, v))
}

// QuoteNEQ applies the NEQ predicate on the "quote" field.
func QuoteNEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldQuote, v))
}

// QuoteIn applies the In predicate on the "quote" field.
func QuoteIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldQuote, vs...))
}

// QuoteNotIn applies the NotIn predicate on the "quote" field.
func QuoteNotIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldQuote, vs...))
}

// QuoteGT applies the GT predicate on the "quote" field.
func QuoteGT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldQuote, v))
}

// QuoteGTE applies the GTE predicate on the "quote" field.
func QuoteGTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldQuote, v))
}

// QuoteLT applies the LT predicate on the "quote" field.
func QuoteLT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldQuote, v))
}

// QuoteLTE applies the LTE predicate on the "quote" field.
func QuoteLTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldQuote, v))
}

// QuoteContains applies the Contains predicate on the "quote" field.
func QuoteContains(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContains(FieldQuote, v))
}

// QuoteHasPrefix applies the HasPrefix predicate on the "quote" field.
func QuoteHasPrefix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasPrefix(FieldQuote, v))
}

// QuoteHasSuffix applies the HasSuffix predicate on the "quote" field.
func QuoteHasSuffix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasSuffix(FieldQuote, v))
}

// QuoteIsNil applies the IsNil predicate on the "quote" field.
func QuoteIsNil() predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIsNull(FieldQuote))
}

// QuoteNotNil applies the NotNil predicate on the "quote" field.
func QuoteNotNil() predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotNull(FieldQuote))
}

// QuoteEqualFold applies the EqualFold predicate on the "quote" field.
func QuoteEqualFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEqualFold(FieldQuote, v))
}

// QuoteContainsFold applies the ContainsFold predicate on the "quote" field.
func QuoteContainsFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContainsFold(FieldQuote, v))
}

// StartOffsetEQ applies the EQ predicate on the "start_offset" field.
func StartOffsetEQ(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldStartOffset, v))
}

// StartOffsetNEQ applies the NEQ predicate on the "start_offset" field.
func StartOffsetNEQ(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldStartOffset, v))
}

// StartOffsetIn applies the In predicate on the "start_offset" field.
func StartOffsetIn(vs ...int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldStartOffset, vs...))
}

// StartOffsetNotIn applies the NotIn predicate on the "start_offset" field.
func StartOffsetNotIn(vs ...int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldStartOffset, vs...))
}

// StartOffsetGT applies the GT predicate on the "start_offset" field.
func StartOffsetGT(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldStartOffset, v))
}

// StartOffsetGTE applies the GTE predicate on the "start_offset" field.
func StartOffsetGTE(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldStartOffset, v))
}

// StartOffsetLT applies the LT predicate on the "start_offset" field.
func StartOffsetLT(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldStartOffset, v))
}

// StartOffsetLTE applies the LTE predicate on the "start_offset" field.
func StartOffsetLTE(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldStartOffset, v))
}

// StartOffsetIsNil applies the IsNil predicate on the "start_offset" field.
func StartOffsetIsNil() predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIsNull(FieldStartOffset))
}

// StartOffsetNotNil applies the NotNil predicate on the "start_offset" field.
func StartOffsetNotNil() predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotNull(FieldStartOffset))
}

// EndOffsetEQ applies the EQ predicate on the "end_offset" field.
func EndOffsetEQ(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldEndOffset, v))
}

// EndOffsetNEQ applies the NEQ predicate on the "end_offset" field.
func EndOffsetNEQ(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldEndOffset, v))
}

// EndOffsetIn applies the In predicate on the "end_offset" field.
func EndOffsetIn(vs ...int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldEndOffset, vs...))
}

// EndOffsetNotIn applies the NotIn predicate on the "end_offset" field.
func EndOffsetNotIn(vs ...int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldEndOffset, vs...))
}

// EndOffsetGT applies the GT predicate on the "end_offset" field.
func EndOffsetGT(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldEndOffset, v))
}

// EndOffsetGTE applies the GTE predicate on the "end_offset" field.
func EndOffsetGTE(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldEndOffset, v))
}

// EndOffsetLT applies the LT predicate on the "end_offset" field.
func EndOffsetLT(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldEndOffset, v))
}

// EndOffsetLTE applies the LTE predicate on the "end_offset" field.
func EndOffsetLTE(v int) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldEndOffset, v))
}

// EndOffsetIsNil applies the IsNil predicate on the "end_offset" field.
func EndOffsetIsNil() predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIsNull(FieldEndOffset))
}

// EndOffsetNotNil applies the NotNil predicate on the "end_offset" field.
func EndOffsetNotNil() predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotNull(FieldEndOffset))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldConfidence, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldContainsFold(FieldWorkflowID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentEntity {
	return predicate.DocumentEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentEntity {
	return predicate.DocumentEntity(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.DocumentEntity {
	return predicate.DocumentEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.Entity) predicate.DocumentEntity {
	return predicate.DocumentEntity(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentEntity) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentEntity) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentEntity) predicate.DocumentEntity {
	return predicate.DocumentEntity(sql.NotPredicates(p))
}
