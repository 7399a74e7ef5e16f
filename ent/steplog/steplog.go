// Code generated by ent, DO NOT EDIT.

package steplog

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the steplog type in the database.
	Label = "step_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_log_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldTool holds the string denoting the tool field in the database.
	FieldTool = "tool"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldInputCount holds the string denoting the input_count field in the database.
	FieldInputCount = "input_count"
	// FieldOutputCount holds the string denoting the output_count field in the database.
	FieldOutputCount = "output_count"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldInputHash holds the string denoting the input_hash field in the database.
	FieldInputHash = "input_hash"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldStepMetadata holds the string denoting the step_metadata field in the database.
	FieldStepMetadata = "step_metadata"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// WorkflowRunFieldID holds the string denoting the ID field of the WorkflowRun.
	WorkflowRunFieldID = "workflow_id"
	// Table holds the table name of the steplog in the database.
	Table = "step_logs"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "step_logs"
	// RunInverseTable is the table name for the WorkflowRun entity.
	// It exists in this package in order to avoid circular dependency with the "workflowrun" package.
	RunInverseTable = "workflow_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for steplog fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStepID,
	FieldTool,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldInputCount,
	FieldOutputCount,
	FieldErrorCount,
	FieldInputHash,
	FieldErrors,
	FieldStepMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultInputCount holds the default value on creation for the "input_count" field.
	DefaultInputCount int
	// DefaultOutputCount holds the default value on creation for the "output_count" field.
	DefaultOutputCount int
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("steplog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StepLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByTool orders the results by the tool field.
func ByTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTool, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByInputCount orders the results by the input_count field.
func ByInputCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputCount, opts...).ToFunc()
}

// ByOutputCount orders the results by the output_count field.
func ByOutputCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputCount, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByInputHash orders the results by the input_hash field.
func ByInputHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputHash, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, WorkflowRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
