// Code generated by ent, DO NOT EDIT.

package workflowrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowrun type in the database.
	Label = "workflow_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldWorkflowName holds the string denoting the workflow_name field in the database.
	FieldWorkflowName = "workflow_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRunMetadata holds the string denoting the run_metadata field in the database.
	FieldRunMetadata = "run_metadata"
	// FieldParentWorkflowID holds the string denoting the parent_workflow_id field in the database.
	FieldParentWorkflowID = "parent_workflow_id"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeStepLogs holds the string denoting the step_logs edge name in mutations.
	EdgeStepLogs = "step_logs"
	// EdgeStepEvents holds the string denoting the step_events edge name in mutations.
	EdgeStepEvents = "step_events"
	// StepLogFieldID holds the string denoting the ID field of the StepLog.
	StepLogFieldID = "step_log_id"
	// StepEventFieldID holds the string denoting the ID field of the StepEvent.
	StepEventFieldID = "id"
	// Table holds the table name of the workflowrun in the database.
	Table = "workflow_runs"
	// StepLogsTable is the table that holds the step_logs relation/edge.
	StepLogsTable = "step_logs"
	// StepLogsInverseTable is the table name for the StepLog entity.
	// It exists in this package in order to avoid circular dependency with the "steplog" package.
	StepLogsInverseTable = "step_logs"
	// StepLogsColumn is the table column denoting the step_logs relation/edge.
	StepLogsColumn = "run_id"
	// StepEventsTable is the table that holds the step_events relation/edge.
	StepEventsTable = "step_events"
	// StepEventsInverseTable is the table name for the StepEvent entity.
	// It exists in this package in order to avoid circular dependency with the "stepevent" package.
	StepEventsInverseTable = "step_events"
	// StepEventsColumn is the table column denoting the step_events relation/edge.
	StepEventsColumn = "run_id"
)

// Columns holds all SQL columns for workflowrun fields.
var Columns = []string{
	FieldID,
	FieldWorkflowName,
	FieldStatus,
	FieldInputs,
	FieldErrorMessage,
	FieldRunMetadata,
	FieldParentWorkflowID,
	FieldPriority,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastHeartbeatAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending             Status = "pending"
	StatusRunning             Status = "running"
	StatusCompleted           Status = "completed"
	StatusCompletedWithErrors Status = "completed_with_errors"
	StatusFailed              Status = "failed"
	StatusCanceling           Status = "canceling"
	StatusCanceled            Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusCompletedWithErrors, StatusFailed, StatusCanceling, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("workflowrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkflowRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowName orders the results by the workflow_name field.
func ByWorkflowName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByParentWorkflowID orders the results by the parent_workflow_id field.
func ByParentWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentWorkflowID, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByStepLogsCount orders the results by step_logs count.
func ByStepLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepLogsStep(), opts...)
	}
}

// ByStepLogs orders the results by step_logs terms.
func ByStepLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepEventsCount orders the results by step_events count.
func ByStepEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepEventsStep(), opts...)
	}
}

// ByStepEvents orders the results by step_events terms.
func ByStepEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepLogsInverseTable, StepLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepLogsTable, StepLogsColumn),
	)
}
func newStepEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepEventsInverseTable, StepEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepEventsTable, StepEventsColumn),
	)
}
