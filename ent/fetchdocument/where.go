// Code generated by ent, DO NOT EDIT.

package fetchdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldWorkflowID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldDocumentID, v))
}

// ContentLength applies equality check predicate on the "content_length" field. It's identical to ContentLengthEQ.
func ContentLength(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldContentLength, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentPath applies equality check predicate on the "content_path" field. It's identical to ContentPathEQ.
func ContentPath(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldContentPath, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldEngine, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldSkipReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldErrorMessage, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldWorkflowID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldDocumentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldStatus, vs...))
}

// ContentLengthEQ applies the EQ predicate on the "content_length" field.
func ContentLengthEQ(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldContentLength, v))
}

// ContentLengthNEQ applies the NEQ predicate on the "content_length" field.
func ContentLengthNEQ(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldContentLength, v))
}

// ContentLengthIn applies the In predicate on the "content_length" field.
func ContentLengthIn(vs ...int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldContentLength, vs...))
}

// ContentLengthNotIn applies the NotIn predicate on the "content_length" field.
func ContentLengthNotIn(vs ...int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldContentLength, vs...))
}

// ContentLengthGT applies the GT predicate on the "content_length" field.
func ContentLengthGT(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldContentLength, v))
}

// ContentLengthGTE applies the GTE predicate on the "content_length" field.
func ContentLengthGTE(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldContentLength, v))
}

// ContentLengthLT applies the LT predicate on the "content_length" field.
func ContentLengthLT(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldContentLength, v))
}

// ContentLengthLTE applies the LTE predicate on the "content_length" field.
func ContentLengthLTE(v int) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldContentLength, v))
}

// ContentLengthIsNil applies the IsNil predicate on the "content_length" field.
func ContentLengthIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldContentLength))
}

// ContentLengthNotNil applies the NotNil predicate on the "content_length" field.
func ContentLengthNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldContentLength))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldContentHash, v))
}

// ContentPathEQ applies the EQ predicate on the "content_path" field.
func ContentPathEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldContentPath, v))
}

// ContentPathNEQ applies the NEQ predicate on the "content_path" field.
func ContentPathNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldContentPath, v))
}

// ContentPathIn applies the In predicate on the "content_path" field.
func ContentPathIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldContentPath, vs...))
}

// ContentPathNotIn applies the NotIn predicate on the "content_path" field.
func ContentPathNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldContentPath, vs...))
}

// ContentPathGT applies the GT predicate on the "content_path" field.
func ContentPathGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldContentPath, v))
}

// ContentPathGTE applies the GTE predicate on the "content_path" field.
func ContentPathGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldContentPath, v))
}

// ContentPathLT applies the LT predicate on the "content_path" field.
func ContentPathLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldContentPath, v))
}

// ContentPathLTE applies the LTE predicate on the "content_path" field.
func ContentPathLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldContentPath, v))
}

// ContentPathContains applies the Contains predicate on the "content_path" field.
func ContentPathContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldContentPath, v))
}

// ContentPathHasPrefix applies the HasPrefix predicate on the "content_path" field.
func ContentPathHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldContentPath, v))
}

// ContentPathHasSuffix applies the HasSuffix predicate on the "content_path" field.
func ContentPathHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldContentPath, v))
}

// ContentPathIsNil applies the IsNil predicate on the "content_path" field.
func ContentPathIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldContentPath))
}

// ContentPathNotNil applies the NotNil predicate on the "content_path" field.
func ContentPathNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldContentPath))
}

// ContentPathEqualFold applies the EqualFold predicate on the "content_path" field.
func ContentPathEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldContentPath, v))
}

// ContentPathContainsFold applies the ContainsFold predicate on the "content_path" field.
func ContentPathContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldContentPath, v))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineIsNil applies the IsNil predicate on the "engine" field.
func EngineIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldEngine))
}

// EngineNotNil applies the NotNil predicate on the "engine" field.
func EngineNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldEngine))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldEngine, v))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldSkipReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FetchMetadataIsNil applies the IsNil predicate on the "fetch_metadata" field.
func FetchMetadataIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldFetchMetadata))
}

// FetchMetadataNotNil applies the NotNil predicate on the "fetch_metadata" field.
func FetchMetadataNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldFetchMetadata))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...[]byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...[]byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v []byte) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FetchDocument {
	return predicate.FetchDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FetchDocument) predicate.FetchDocument {
	return predicate.FetchDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FetchDocument) predicate.FetchDocument {
	return predicate.FetchDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FetchDocument) predicate.FetchDocument {
	return predicate.FetchDocument(sql.NotPredicates(p))
}
