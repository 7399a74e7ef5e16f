// Code generated by ent, DO NOT EDIT.

package claimgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldWorkflowID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldDocumentID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldSectionID, v))
}

// ClaimHash applies equality check predicate on the "claim_hash" field. It's identical to ClaimHashEQ.
func ClaimHash(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClaimHash, v))
}

// ClusterID applies equality check predicate on the "cluster_id" field. It's identical to ClusterIDEQ.
func ClusterID(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClusterID, v))
}

// ClusterSize applies equality check predicate on the "cluster_size" field. It's identical to ClusterSizeEQ.
func ClusterSize(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClusterSize, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldDecision, v))
}

// Statement applies equality check predicate on the "statement" field. It's identical to StatementEQ.
func Statement(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldStatement, v))
}

// CanonicalStatement applies equality check predicate on the "canonical_statement" field. It's identical to CanonicalStatementEQ.
func CanonicalStatement(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldCanonicalStatement, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldConfidence, v))
}

// SourceQuote applies equality check predicate on the "source_quote" field. It's identical to SourceQuoteEQ.
func SourceQuote(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldSourceQuote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldWorkflowID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldDocumentID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldSectionID, v))
}

// ClaimHashEQ applies the EQ predicate on the "claim_hash" field.
func ClaimHashEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClaimHash, v))
}

// ClaimHashNEQ applies the NEQ predicate on the "claim_hash" field.
func ClaimHashNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldClaimHash, v))
}

// ClaimHashIn applies the In predicate on the "claim_hash" field.
func ClaimHashIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldClaimHash, vs...))
}

// ClaimHashNotIn applies the NotIn predicate on the "claim_hash" field.
func ClaimHashNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldClaimHash, vs...))
}

// ClaimHashGT applies the GT predicate on the "claim_hash" field.
func ClaimHashGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldClaimHash, v))
}

// ClaimHashGTE applies the GTE predicate on the "claim_hash" field.
func ClaimHashGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldClaimHash, v))
}

// ClaimHashLT applies the LT predicate on the "claim_hash" field.
func ClaimHashLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldClaimHash, v))
}

// ClaimHashLTE applies the LTE predicate on the "claim_hash" field.
func ClaimHashLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldClaimHash, v))
}

// ClaimHashContains applies the Contains predicate on the "claim_hash" field.
func ClaimHashContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldClaimHash, v))
}

// ClaimHashHasPrefix applies the HasPrefix predicate on the "claim_hash" field.
func ClaimHashHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldClaimHash, v))
}

// ClaimHashHasSuffix applies the HasSuffix predicate on the "claim_hash" field.
func ClaimHashHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldClaimHash, v))
}

// ClaimHashEqualFold applies the EqualFold predicate on the "claim_hash" field.
func ClaimHashEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldClaimHash, v))
}

// ClaimHashContainsFold applies the ContainsFold predicate on the "claim_hash" field.
func ClaimHashContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldClaimHash, v))
}

// ClusterIDEQ applies the EQ predicate on the "cluster_id" field.
func ClusterIDEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClusterID, v))
}

// ClusterIDNEQ applies the NEQ predicate on the "cluster_id" field.
func ClusterIDNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldClusterID, v))
}

// ClusterIDIn applies the In predicate on the "cluster_id" field.
func ClusterIDIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldClusterID, vs...))
}

// ClusterIDNotIn applies the NotIn predicate on the "cluster_id" field.
func ClusterIDNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldClusterID, vs...))
}

// ClusterIDGT applies the GT predicate on the "cluster_id" field.
func ClusterIDGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldClusterID, v))
}

// ClusterIDGTE applies the GTE predicate on the "cluster_id" field.
func ClusterIDGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldClusterID, v))
}

// ClusterIDLT applies the LT predicate on the "cluster_id" field.
func ClusterIDLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldClusterID, v))
}

// ClusterIDLTE applies the LTE predicate on the "cluster_id" field.
func ClusterIDLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldClusterID, v))
}

// ClusterIDContains applies the Contains predicate on the "cluster_id" field.
func ClusterIDContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldClusterID, v))
}

// ClusterIDHasPrefix applies the HasPrefix predicate on the "cluster_id" field.
func ClusterIDHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldClusterID, v))
}

// ClusterIDHasSuffix applies the HasSuffix predicate on the "cluster_id" field.
func ClusterIDHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldClusterID, v))
}

// ClusterIDEqualFold applies the EqualFold predicate on the "cluster_id" field.
func ClusterIDEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldClusterID, v))
}

// ClusterIDContainsFold applies the ContainsFold predicate on the "cluster_id" field.
func ClusterIDContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldClusterID, v))
}

// ClusterSizeEQ applies the EQ predicate on the "cluster_size" field.
func ClusterSizeEQ(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClusterSize, v))
}

// ClusterSizeNEQ applies the NEQ predicate on the "cluster_size" field.
func ClusterSizeNEQ(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldClusterSize, v))
}

// ClusterSizeIn applies the In predicate on the "cluster_size" field.
func ClusterSizeIn(vs ...int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldClusterSize, vs...))
}

// ClusterSizeNotIn applies the NotIn predicate on the "cluster_size" field.
func ClusterSizeNotIn(vs ...int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldClusterSize, vs...))
}

// ClusterSizeGT applies the GT predicate on the "cluster_size" field.
func ClusterSizeGT(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldClusterSize, v))
}

// ClusterSizeGTE applies the GTE predicate on the "cluster_size" field.
func ClusterSizeGTE(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldClusterSize, v))
}

// ClusterSizeLT applies the LT predicate on the "cluster_size" field.
func ClusterSizeLT(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldClusterSize, v))
}

// ClusterSizeLTE applies the LTE predicate on the "cluster_size" field.
func ClusterSizeLTE(v int) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldClusterSize, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldDecision, v))
}

// StatementEQ applies the EQ predicate on the "statement" field.
func StatementEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldStatement, v))
}

// StatementNEQ applies the NEQ predicate on the "statement" field.
func StatementNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldStatement, v))
}

// StatementIn applies the In predicate on the "statement" field.
func StatementIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldStatement, vs...))
}

// StatementNotIn applies the NotIn predicate on the "statement" field.
func StatementNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldStatement, vs...))
}

// StatementGT applies the GT predicate on the "statement" field.
func StatementGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldStatement, v))
}

// StatementGTE applies the GTE predicate on the "statement" field.
func StatementGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldStatement, v))
}

// StatementLT applies the LT predicate on the "statement" field.
func StatementLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldStatement, v))
}

// StatementLTE applies the LTE predicate on the "statement" field.
func StatementLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldStatement, v))
}

// StatementContains applies the Contains predicate on the "statement" field.
func StatementContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldStatement, v))
}

// StatementHasPrefix applies the HasPrefix predicate on the "statement" field.
func StatementHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldStatement, v))
}

// StatementHasSuffix applies the HasSuffix predicate on the "statement" field.
func StatementHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldStatement, v))
}

// StatementEqualFold applies the EqualFold predicate on the "statement" field.
func StatementEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldStatement, v))
}

// StatementContainsFold applies the ContainsFold predicate on the "statement" field.
func StatementContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldStatement, v))
}

// CanonicalStatementEQ applies the EQ predicate on the "canonical_statement" field.
func CanonicalStatementEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldCanonicalStatement, v))
}

// CanonicalStatementNEQ applies the NEQ predicate on the "canonical_statement" field.
func CanonicalStatementNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldCanonicalStatement, v))
}

// CanonicalStatementIn applies the In predicate on the "canonical_statement" field.
func CanonicalStatementIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldCanonicalStatement, vs...))
}

// CanonicalStatementNotIn applies the NotIn predicate on the "canonical_statement" field.
func CanonicalStatementNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldCanonicalStatement, vs...))
}

// CanonicalStatementGT applies the GT predicate on the "canonical_statement" field.
func CanonicalStatementGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldCanonicalStatement, v))
}

// CanonicalStatementGTE applies the GTE predicate on the "canonical_statement" field.
func CanonicalStatementGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldCanonicalStatement, v))
}

// CanonicalStatementLT applies the LT predicate on the "canonical_statement" field.
func CanonicalStatementLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldCanonicalStatement, v))
}

// CanonicalStatementLTE applies the LTE predicate on the "canonical_statement" field.
func CanonicalStatementLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldCanonicalStatement, v))
}

// CanonicalStatementContains applies the Contains predicate on the "canonical_statement" field.
func CanonicalStatementContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldCanonicalStatement, v))
}

// CanonicalStatementHasPrefix applies the HasPrefix predicate on the "canonical_statement" field.
func CanonicalStatementHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldCanonicalStatement, v))
}

// CanonicalStatementHasSuffix applies the HasSuffix predicate on the "canonical_statement" field.
func CanonicalStatementHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldCanonicalStatement, v))
}

// CanonicalStatementEqualFold applies the EqualFold predicate on the "canonical_statement" field.
func CanonicalStatementEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldCanonicalStatement, v))
}

// CanonicalStatementContainsFold applies the ContainsFold predicate on the "canonical_statement" field.
func CanonicalStatementContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldCanonicalStatement, v))
}

// ClaimTypeEQ applies the EQ predicate on the "claim_type" field.
func ClaimTypeEQ(v ClaimType) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldClaimType, v))
}

// ClaimTypeNEQ applies the NEQ predicate on the "claim_type" field.
func ClaimTypeNEQ(v ClaimType) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldClaimType, v))
}

// ClaimTypeIn applies the In predicate on the "claim_type" field.
func ClaimTypeIn(vs ...ClaimType) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldClaimType, vs...))
}

// ClaimTypeNotIn applies the NotIn predicate on the "claim_type" field.
func ClaimTypeNotIn(vs ...ClaimType) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldClaimType, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldConfidence, v))
}

// EntityIndicesIsNil applies the IsNil predicate on the "entity_indices" field.
func EntityIndicesIsNil() predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIsNull(FieldEntityIndices))
}

// EntityIndicesNotNil applies the NotNil predicate on the "entity_indices" field.
func EntityIndicesNotNil() predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotNull(FieldEntityIndices))
}

// SimilarExistingIsNil applies the IsNil predicate on the "similar_existing" field.
func SimilarExistingIsNil() predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIsNull(FieldSimilarExisting))
}

// SimilarExistingNotNil applies the NotNil predicate on the "similar_existing" field.
func SimilarExistingNotNil() predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotNull(FieldSimilarExisting))
}

// SourceQuoteEQ applies the EQ predicate on the "source_quote" field.
func SourceQuoteEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldSourceQuote, v))
}

// SourceQuoteNEQ applies the NEQ predicate on the "source_quote" field.
func SourceQuoteNEQ(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldSourceQuote, v))
}

// SourceQuoteIn applies the In predicate on the "source_quote" field.
func SourceQuoteIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldSourceQuote, vs...))
}

// SourceQuoteNotIn applies the NotIn predicate on the "source_quote" field.
func SourceQuoteNotIn(vs ...string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldSourceQuote, vs...))
}

// SourceQuoteGT applies the GT predicate on the "source_quote" field.
func SourceQuoteGT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldSourceQuote, v))
}

// SourceQuoteGTE applies the GTE predicate on the "source_quote" field.
func SourceQuoteGTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldSourceQuote, v))
}

// SourceQuoteLT applies the LT predicate on the "source_quote" field.
func SourceQuoteLT(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldSourceQuote, v))
}

// SourceQuoteLTE applies the LTE predicate on the "source_quote" field.
func SourceQuoteLTE(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldSourceQuote, v))
}

// SourceQuoteContains applies the Contains predicate on the "source_quote" field.
func SourceQuoteContains(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContains(FieldSourceQuote, v))
}

// SourceQuoteHasPrefix applies the HasPrefix predicate on the "source_quote" field.
func SourceQuoteHasPrefix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasPrefix(FieldSourceQuote, v))
}

// SourceQuoteHasSuffix applies the HasSuffix predicate on the "source_quote" field.
func SourceQuoteHasSuffix(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldHasSuffix(FieldSourceQuote, v))
}

// SourceQuoteIsNil applies the IsNil predicate on the "source_quote" field.
func SourceQuoteIsNil() predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIsNull(FieldSourceQuote))
}

// SourceQuoteNotNil applies the NotNil predicate on the "source_quote" field.
func SourceQuoteNotNil() predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotNull(FieldSourceQuote))
}

// SourceQuoteEqualFold applies the EqualFold predicate on the "source_quote" field.
func SourceQuoteEqualFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEqualFold(FieldSourceQuote, v))
}

// SourceQuoteContainsFold applies the ContainsFold predicate on the "source_quote" field.
func SourceQuoteContainsFold(v string) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldContainsFold(FieldSourceQuote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClaimGroup) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClaimGroup) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClaimGroup) predicate.ClaimGroup {
	return predicate.ClaimGroup(sql.NotPredicates(p))
}
