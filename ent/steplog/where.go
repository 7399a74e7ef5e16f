// Code generated by ent, DO NOT EDIT.

package steplog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldStepID, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldTool, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldCompletedAt, v))
}

// InputCount applies equality check predicate on the "input_count" field. It's identical to InputCountEQ.
func InputCount(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldInputCount, v))
}

// OutputCount applies equality check predicate on the "output_count" field. It's identical to OutputCountEQ.
func OutputCount(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldOutputCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldErrorCount, v))
}

// InputHash applies equality check predicate on the "input_hash" field. It's identical to InputHashEQ.
func InputHash(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldInputHash, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContainsFold(FieldRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContainsFold(FieldStepID, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContainsFold(FieldTool, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldNotNull(FieldCompletedAt))
}

// InputCountEQ applies the EQ predicate on the "input_count" field.
func InputCountEQ(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldInputCount, v))
}

// InputCountNEQ applies the NEQ predicate on the "input_count" field.
func InputCountNEQ(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldInputCount, v))
}

// InputCountIn applies the In predicate on the "input_count" field.
func InputCountIn(vs ...int) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldInputCount, vs...))
}

// InputCountNotIn applies the NotIn predicate on the "input_count" field.
func InputCountNotIn(vs ...int) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldInputCount, vs...))
}

// InputCountGT applies the GT predicate on the "input_count" field.
func InputCountGT(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldInputCount, v))
}

// InputCountGTE applies the GTE predicate on the "input_count" field.
func InputCountGTE(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldInputCount, v))
}

// InputCountLT applies the LT predicate on the "input_count" field.
func InputCountLT(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldInputCount, v))
}

// InputCountLTE applies the LTE predicate on the "input_count" field.
func InputCountLTE(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldInputCount, v))
}

// OutputCountEQ applies the EQ predicate on the "output_count" field.
func OutputCountEQ(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldOutputCount, v))
}

// OutputCountNEQ applies the NEQ predicate on the "output_count" field.
func OutputCountNEQ(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldOutputCount, v))
}

// OutputCountIn applies the In predicate on the "output_count" field.
func OutputCountIn(vs ...int) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldOutputCount, vs...))
}

// OutputCountNotIn applies the NotIn predicate on the "output_count" field.
func OutputCountNotIn(vs ...int) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldOutputCount, vs...))
}

// OutputCountGT applies the GT predicate on the "output_count" field.
func OutputCountGT(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldOutputCount, v))
}

// OutputCountGTE applies the GTE predicate on the "output_count" field.
func OutputCountGTE(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldOutputCount, v))
}

// OutputCountLT applies the LT predicate on the "output_count" field.
func OutputCountLT(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldOutputCount, v))
}

// OutputCountLTE applies the LTE predicate on the "output_count" field.
func OutputCountLTE(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldOutputCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldErrorCount, v))
}

// InputHashEQ applies the EQ predicate on the "input_hash" field.
func InputHashEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEQ(FieldInputHash, v))
}

// InputHashNEQ applies the NEQ predicate on the "input_hash" field.
func InputHashNEQ(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNEQ(FieldInputHash, v))
}

// InputHashIn applies the In predicate on the "input_hash" field.
func InputHashIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldIn(FieldInputHash, vs...))
}

// InputHashNotIn applies the NotIn predicate on the "input_hash" field.
func InputHashNotIn(vs ...string) predicate.StepLog {
	return predicate.StepLog(sql.FieldNotIn(FieldInputHash, vs...))
}

// InputHashGT applies the GT predicate on the "input_hash" field.
func InputHashGT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGT(FieldInputHash, v))
}

// InputHashGTE applies the GTE predicate on the "input_hash" field.
func InputHashGTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldGTE(FieldInputHash, v))
}

// InputHashLT applies the LT predicate on the "input_hash" field.
func InputHashLT(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLT(FieldInputHash, v))
}

// InputHashLTE applies the LTE predicate on the "input_hash" field.
func InputHashLTE(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldLTE(FieldInputHash, v))
}

// InputHashContains applies the Contains predicate on the "input_hash" field.
func InputHashContains(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContains(FieldInputHash, v))
}

// InputHashHasPrefix applies the HasPrefix predicate on the "input_hash" field.
func InputHashHasPrefix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasPrefix(FieldInputHash, v))
}

// InputHashHasSuffix applies the HasSuffix predicate on the "input_hash" field.
func InputHashHasSuffix(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldHasSuffix(FieldInputHash, v))
}

// InputHashIsNil applies the IsNil predicate on the "input_hash" field.
func InputHashIsNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldIsNull(FieldInputHash))
}

// InputHashNotNil applies the NotNil predicate on the "input_hash" field.
func InputHashNotNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldNotNull(FieldInputHash))
}

// InputHashEqualFold applies the EqualFold predicate on the "input_hash" field.
func InputHashEqualFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldEqualFold(FieldInputHash, v))
}

// InputHashContainsFold applies the ContainsFold predicate on the "input_hash" field.
func InputHashContainsFold(v string) predicate.StepLog {
	return predicate.StepLog(sql.FieldContainsFold(FieldInputHash, v))
}

// ErrorsIsNil applies the IsNil predicate on the "errors" field.
func ErrorsIsNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldIsNull(FieldErrors))
}

// ErrorsNotNil applies the NotNil predicate on the "errors" field.
func ErrorsNotNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldNotNull(FieldErrors))
}

// StepMetadataIsNil applies the IsNil predicate on the "step_metadata" field.
func StepMetadataIsNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldIsNull(FieldStepMetadata))
}

// StepMetadataNotNil applies the NotNil predicate on the "step_metadata" field.
func StepMetadataNotNil() predicate.StepLog {
	return predicate.StepLog(sql.FieldNotNull(FieldStepMetadata))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StepLog {
	return predicate.StepLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.StepLog {
	return predicate.StepLog(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepLog) predicate.StepLog {
	return predicate.StepLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepLog) predicate.StepLog {
	return predicate.StepLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepLog) predicate.StepLog {
	return predicate.StepLog(sql.NotPredicates(p))
}
