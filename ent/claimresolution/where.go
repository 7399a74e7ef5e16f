// Code generated by ent, DO NOT EDIT.

package claimresolution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldWorkflowID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldDocumentID, v))
}

// ClaimHash applies equality check predicate on the "claim_hash" field. It's identical to ClaimHashEQ.
func ClaimHash(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldClaimHash, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldDecision, v))
}

// ResolvedClaimID applies equality check predicate on the "resolved_claim_id" field. It's identical to ResolvedClaimIDEQ.
func ResolvedClaimID(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldResolvedClaimID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContainsFold(FieldWorkflowID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContainsFold(FieldDocumentID, v))
}

// ClaimHashEQ applies the EQ predicate on the "claim_hash" field.
func ClaimHashEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldClaimHash, v))
}

// ClaimHashNEQ applies the NEQ predicate on the "claim_hash" field.
func ClaimHashNEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldClaimHash, v))
}

// ClaimHashIn applies the In predicate on the "claim_hash" field.
func ClaimHashIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldClaimHash, vs...))
}

// ClaimHashNotIn applies the NotIn predicate on the "claim_hash" field.
func ClaimHashNotIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldClaimHash, vs...))
}

// ClaimHashGT applies the GT predicate on the "claim_hash" field.
func ClaimHashGT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldClaimHash, v))
}

// ClaimHashGTE applies the GTE predicate on the "claim_hash" field.
func ClaimHashGTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldClaimHash, v))
}

// ClaimHashLT applies the LT predicate on the "claim_hash" field.
func ClaimHashLT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldClaimHash, v))
}

// ClaimHashLTE applies the LTE predicate on the "claim_hash" field.
func ClaimHashLTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldClaimHash, v))
}

// ClaimHashContains applies the Contains predicate on the "claim_hash" field.
func ClaimHashContains(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContains(FieldClaimHash, v))
}

// ClaimHashHasPrefix applies the HasPrefix predicate on the "claim_hash" field.
func ClaimHashHasPrefix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasPrefix(FieldClaimHash, v))
}

// ClaimHashHasSuffix applies the HasSuffix predicate on the "claim_hash" field.
func ClaimHashHasSuffix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasSuffix(FieldClaimHash, v))
}

// ClaimHashEqualFold applies the EqualFold predicate on the "claim_hash" field.
func ClaimHashEqualFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEqualFold(FieldClaimHash, v))
}

// ClaimHashContainsFold applies the ContainsFold predicate on the "claim_hash" field.
func ClaimHashContainsFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContainsFold(FieldClaimHash, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContainsFold(FieldDecision, v))
}

// ResolutionActionEQ applies the EQ predicate on the "resolution_action" field.
func ResolutionActionEQ(v ResolutionAction) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldResolutionAction, v))
}

// ResolutionActionNEQ applies the NEQ predicate on the "resolution_action" field.
func ResolutionActionNEQ(v ResolutionAction) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldResolutionAction, v))
}

// ResolutionActionIn applies the In predicate on the "resolution_action" field.
func ResolutionActionIn(vs ...ResolutionAction) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldResolutionAction, vs...))
}

// ResolutionActionNotIn applies the NotIn predicate on the "resolution_action" field.
func ResolutionActionNotIn(vs ...ResolutionAction) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldResolutionAction, vs...))
}

// ResolvedClaimIDEQ applies the EQ predicate on the "resolved_claim_id" field.
func ResolvedClaimIDEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldResolvedClaimID, v))
}

// ResolvedClaimIDNEQ applies the NEQ predicate on the "resolved_claim_id" field.
func ResolvedClaimIDNEQ(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldResolvedClaimID, v))
}

// ResolvedClaimIDIn applies the In predicate on the "resolved_claim_id" field.
func ResolvedClaimIDIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldResolvedClaimID, vs...))
}

// ResolvedClaimIDNotIn applies the NotIn predicate on the "resolved_claim_id" field.
func ResolvedClaimIDNotIn(vs ...string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldResolvedClaimID, vs...))
}

// ResolvedClaimIDGT applies the GT predicate on the "resolved_claim_id" field.
func ResolvedClaimIDGT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldResolvedClaimID, v))
}

// ResolvedClaimIDGTE applies the GTE predicate on the "resolved_claim_id" field.
func ResolvedClaimIDGTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldResolvedClaimID, v))
}

// ResolvedClaimIDLT applies the LT predicate on the "resolved_claim_id" field.
func ResolvedClaimIDLT(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldResolvedClaimID, v))
}

// ResolvedClaimIDLTE applies the LTE predicate on the "resolved_claim_id" field.
func ResolvedClaimIDLTE(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldResolvedClaimID, v))
}

// ResolvedClaimIDContains applies the Contains predicate on the "resolved_claim_id" field.
func ResolvedClaimIDContains(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContains(FieldResolvedClaimID, v))
}

// ResolvedClaimIDHasPrefix applies the HasPrefix predicate on the "resolved_claim_id" field.
func ResolvedClaimIDHasPrefix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasPrefix(FieldResolvedClaimID, v))
}

// ResolvedClaimIDHasSuffix applies the HasSuffix predicate on the "resolved_claim_id" field.
func ResolvedClaimIDHasSuffix(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldHasSuffix(FieldResolvedClaimID, v))
}

// ResolvedClaimIDIsNil applies the IsNil predicate on the "resolved_claim_id" field.
func ResolvedClaimIDIsNil() predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIsNull(FieldResolvedClaimID))
}

// ResolvedClaimIDNotNil applies the NotNil predicate on the "resolved_claim_id" field.
func ResolvedClaimIDNotNil() predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotNull(FieldResolvedClaimID))
}

// ResolvedClaimIDEqualFold applies the EqualFold predicate on the "resolved_claim_id" field.
func ResolvedClaimIDEqualFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEqualFold(FieldResolvedClaimID, v))
}

// ResolvedClaimIDContainsFold applies the ContainsFold predicate on the "resolved_claim_id" field.
func ResolvedClaimIDContainsFold(v string) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldContainsFold(FieldResolvedClaimID, v))
}

// LinkedEntityIdsIsNil applies the IsNil predicate on the "linked_entity_ids" field.
func LinkedEntityIdsIsNil() predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIsNull(FieldLinkedEntityIds))
}

// LinkedEntityIdsNotNil applies the NotNil predicate on the "linked_entity_ids" field.
func LinkedEntityIdsNotNil() predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotNull(FieldLinkedEntityIds))
}

// ResolutionMetadataIsNil applies the IsNil predicate on the "resolution_metadata" field.
func ResolutionMetadataIsNil() predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIsNull(FieldResolutionMetadata))
}

// ResolutionMetadataNotNil applies the NotNil predicate on the "resolution_metadata" field.
func ResolutionMetadataNotNil() predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotNull(FieldResolutionMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClaimResolution) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClaimResolution) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClaimResolution) predicate.ClaimResolution {
	return predicate.ClaimResolution(sql.NotPredicates(p))
}
