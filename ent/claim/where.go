// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldID, id))
}

// ClaimHash applies equality check predicate on the "claim_hash" field. It's identical to ClaimHashEQ.
func ClaimHash(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimHash, v))
}

// Statement applies equality check predicate on the "statement" field. It's identical to StatementEQ.
func Statement(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatement, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldConfidence, v))
}

// SubjectEntityID applies equality check predicate on the "subject_entity_id" field. It's identical to SubjectEntityIDEQ.
func SubjectEntityID(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSubjectEntityID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldDocumentID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSectionID, v))
}

// SourceQuote applies equality check predicate on the "source_quote" field. It's identical to SourceQuoteEQ.
func SourceQuote(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSourceQuote, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldEmbedding, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldWorkflowID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClaimHashEQ applies the EQ predicate on the "claim_hash" field.
func ClaimHashEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimHash, v))
}

// ClaimHashNEQ applies the NEQ predicate on the "claim_hash" field.
func ClaimHashNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimHash, v))
}

// ClaimHashIn applies the In predicate on the "claim_hash" field.
func ClaimHashIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimHash, vs...))
}

// ClaimHashNotIn applies the NotIn predicate on the "claim_hash" field.
func ClaimHashNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimHash, vs...))
}

// ClaimHashGT applies the GT predicate on the "claim_hash" field.
func ClaimHashGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimHash, v))
}

// ClaimHashGTE applies the GTE predicate on the "claim_hash" field.
func ClaimHashGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimHash, v))
}

// ClaimHashLT applies the LT predicate on the "claim_hash" field.
func ClaimHashLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimHash, v))
}

// ClaimHashLTE applies the LTE predicate on the "claim_hash" field.
func ClaimHashLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimHash, v))
}

// ClaimHashContains applies the Contains predicate on the "claim_hash" field.
func ClaimHashContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldClaimHash, v))
}

// ClaimHashHasPrefix applies the HasPrefix predicate on the "claim_hash" field.
func ClaimHashHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldClaimHash, v))
}

// ClaimHashHasSuffix applies the HasSuffix predicate on the "claim_hash" field.
func ClaimHashHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldClaimHash, v))
}

// ClaimHashEqualFold applies the EqualFold predicate on the "claim_hash" field.
func ClaimHashEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldClaimHash, v))
}

// ClaimHashContainsFold applies the ContainsFold predicate on the "claim_hash" field.
func ClaimHashContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldClaimHash, v))
}

// StatementEQ applies the EQ predicate on the "statement" field.
func StatementEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatement, v))
}

// StatementNEQ applies the NEQ predicate on the "statement" field.
func StatementNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldStatement, v))
}

// StatementIn applies the In predicate on the "statement" field.
func StatementIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldStatement, vs...))
}

// StatementNotIn applies the NotIn predicate on the "statement" field.
func StatementNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldStatement, vs...))
}

// StatementGT applies the GT predicate on the "statement" field.
func StatementGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldStatement, v))
}

// StatementGTE applies the GTE predicate on the "statement" field.
func StatementGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldStatement, v))
}

// StatementLT applies the LT predicate on the "statement" field.
func StatementLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldStatement, v))
}

// StatementLTE applies the LTE predicate on the "statement" field.
func StatementLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldStatement, v))
}

// StatementContains applies the Contains predicate on the "statement" field.
func StatementContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldStatement, v))
}

// StatementHasPrefix applies the HasPrefix predicate on the "statement" field.
func StatementHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldStatement, v))
}

// StatementHasSuffix applies the HasSuffix predicate on the "statement" field.
func StatementHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldStatement, v))
}

// StatementEqualFold applies the EqualFold predicate on the "statement" field.
func StatementEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldStatement, v))
}

// StatementContainsFold applies the ContainsFold predicate on the "statement" field.
func StatementContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldStatement, v))
}

// ClaimTypeEQ applies the EQ predicate on the "claim_type" field.
func ClaimTypeEQ(v ClaimType) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimType, v))
}

// ClaimTypeNEQ applies the NEQ predicate on the "claim_type" field.
func ClaimTypeNEQ(v ClaimType) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimType, v))
}

// ClaimTypeIn applies the In predicate on the "claim_type" field.
func ClaimTypeIn(vs ...ClaimType) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimType, vs...))
}

// ClaimTypeNotIn applies the NotIn predicate on the "claim_type" field.
func ClaimTypeNotIn(vs ...ClaimType) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimType, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldConfidence, v))
}

// SubjectEntityIDEQ applies the EQ predicate on the "subject_entity_id" field.
func SubjectEntityIDEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSubjectEntityID, v))
}

// SubjectEntityIDNEQ applies the NEQ predicate on the "subject_entity_id" field.
func SubjectEntityIDNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldSubjectEntityID, v))
}

// SubjectEntityIDIn applies the In predicate on the "subject_entity_id" field.
func SubjectEntityIDIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldSubjectEntityID, vs...))
}

// SubjectEntityIDNotIn applies the NotIn predicate on the "subject_entity_id" field.
func SubjectEntityIDNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldSubjectEntityID, vs...))
}

// SubjectEntityIDGT applies the GT predicate on the "subject_entity_id" field.
func SubjectEntityIDGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldSubjectEntityID, v))
}

// SubjectEntityIDGTE applies the GTE predicate on the "subject_entity_id" field.
func SubjectEntityIDGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldSubjectEntityID, v))
}

// SubjectEntityIDLT applies the LT predicate on the "subject_entity_id" field.
func SubjectEntityIDLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldSubjectEntityID, v))
}

// SubjectEntityIDLTE applies the LTE predicate on the "subject_entity_id" field.
func SubjectEntityIDLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldSubjectEntityID, v))
}

// SubjectEntityIDContains applies the Contains predicate on the "subject_entity_id" field.
func SubjectEntityIDContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldSubjectEntityID, v))
}

// SubjectEntityIDHasPrefix applies the HasPrefix predicate on the "subject_entity_id" field.
func SubjectEntityIDHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldSubjectEntityID, v))
}

// SubjectEntityIDHasSuffix applies the HasSuffix predicate on the "subject_entity_id" field.
func SubjectEntityIDHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldSubjectEntityID, v))
}

// SubjectEntityIDEqualFold applies the EqualFold predicate on the "subject_entity_id" field.
func SubjectEntityIDEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldSubjectEntityID, v))
}

// SubjectEntityIDContainsFold applies the ContainsFold predicate on the "subject_entity_id" field.
func SubjectEntityIDContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldSubjectEntityID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldDocumentID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDIsNil applies the IsNil predicate on the "section_id" field.
func SectionIDIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldSectionID))
}

// SectionIDNotNil applies the NotNil predicate on the "section_id" field.
func SectionIDNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldSectionID))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldSectionID, v))
}

// SourceQuoteEQ applies the EQ predicate on the "source_quote" field.
func SourceQuoteEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSourceQuote, v))
}

// SourceQuoteNEQ applies the NEQ predicate on the "source_quote" field.
func SourceQuoteNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldSourceQuote, v))
}

// SourceQuoteIn applies the In predicate on the "source_quote" field.
func SourceQuoteIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldSourceQuote, vs...))
}

// SourceQuoteNotIn applies the NotIn predicate on the "source_quote" field.
func SourceQuoteNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldSourceQuote, vs...))
}

// SourceQuoteGT applies the GT predicate on the "source_quote" field.
func SourceQuoteGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldSourceQuote, v))
}

// SourceQuoteGTE applies the GTE predicate on the "source_quote" field.
func SourceQuoteGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldSourceQuote, v))
}

// SourceQuoteLT applies the LT predicate on the "source_quote" field.
func SourceQuoteLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldSourceQuote, v))
}

// SourceQuoteLTE applies the LTE predicate on the "source_quote" field.
func SourceQuoteLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldSourceQuote, v))
}

// SourceQuoteContains applies the Contains predicate on the "source_quote" field.
func SourceQuoteContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldSourceQuote, v))
}

// SourceQuoteHasPrefix applies the HasPrefix predicate on the "source_quote" field.
func SourceQuoteHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldSourceQuote, v))
}

// SourceQuoteHasSuffix applies the HasSuffix predicate on the "source_quote" field.
func SourceQuoteHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldSourceQuote, v))
}

// SourceQuoteIsNil applies the IsNil predicate on the "source_quote" field.
func SourceQuoteIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldSourceQuote))
}

// SourceQuoteNotNil applies the NotNil predicate on the "source_quote" field.
func SourceQuoteNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldSourceQuote))
}

// SourceQuoteEqualFold applies the EqualFold predicate on the "source_quote" field.
func SourceQuoteEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldSourceQuote, v))
}

// SourceQuoteContainsFold applies the ContainsFold predicate on the "source_quote" field.
func SourceQuoteContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldSourceQuote, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...[]byte) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...[]byte) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v []byte) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldEmbedding))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldWorkflowID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClaimEntities applies the HasEdge predicate on the "claim_entities" edge.
func HasClaimEntities() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClaimEntitiesTable, ClaimEntitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimEntitiesWith applies the HasEdge predicate on the "claim_entities" edge with a given conditions (other predicates).
func HasClaimEntitiesWith(preds ...predicate.ClaimEntity) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newClaimEntitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.NotPredicates(p))
}
