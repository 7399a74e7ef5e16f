// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// StepLog is the model entity for the StepLog schema.
type StepLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Step name from the workflow definition
	StepID string `json:"step_id,omitempty"`
	// Registered tool type executing this step
	Tool string `json:"tool,omitempty"`
	// Status holds the value of the "status" field.
	Status steplog.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// InputCount holds the value of the "input_count" field.
	InputCount int `json:"input_count,omitempty"`
	// OutputCount holds the value of the "output_count" field.
	OutputCount int `json:"output_count,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// SHA-256 of the step's input snapshot; large inputs live in staging tables
	InputHash string `json:"input_hash,omitempty"`
	// Per-item errors: {item_id, kind, message}
	Errors []map[string]interface{} `json:"errors,omitempty"`
	// StepMetadata holds the value of the "step_metadata" field.
	StepMetadata map[string]interface{} `json:"step_metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepLogQuery when eager-loading is set.
	Edges        StepLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepLogEdges holds the relations/edges for other nodes in the graph.
type StepLogEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepLogEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case steplog.FieldErrors, steplog.FieldStepMetadata:
			values[i] = new([]byte)
		case steplog.FieldInputCount, steplog.FieldOutputCount, steplog.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case steplog.FieldID, steplog.FieldRunID, steplog.FieldStepID, steplog.FieldTool, steplog.FieldStatus, steplog.FieldInputHash:
			values[i] = new(sql.NullString)
		case steplog.FieldStartedAt, steplog.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepLog fields.
func (_m *StepLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case steplog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case steplog.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case steplog.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case steplog.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = value.String
			}
		case steplog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = steplog.Status(value.String)
			}
		case steplog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case steplog.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case steplog.FieldInputCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_count", values[i])
			} else if value.Valid {
				_m.InputCount = int(value.Int64)
			}
		case steplog.FieldOutputCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_count", values[i])
			} else if value.Valid {
				_m.OutputCount = int(value.Int64)
			}
		case steplog.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case steplog.FieldInputHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_hash", values[i])
			} else if value.Valid {
				_m.InputHash = value.String
			}
		case steplog.FieldErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Errors); err != nil {
					return fmt.Errorf("unmarshal field errors: %w", err)
				}
			}
		case steplog.FieldStepMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepMetadata); err != nil {
					return fmt.Errorf("unmarshal field step_metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepLog.
// This includes values selected through modifiers, order, etc.
func (_m *StepLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StepLog entity.
func (_m *StepLog) QueryRun() *WorkflowRunQuery {
	return NewStepLogClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this StepLog.
// Note that you need to call StepLog.Unwrap() before calling this method if this StepLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepLog) Update() *StepLogUpdateOne {
	return NewStepLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepLog) Unwrap() *StepLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepLog) String() string {
	var builder strings.Builder
	builder.WriteString("StepLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("tool=")
	builder.WriteString(_m.Tool)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("input_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputCount))
	builder.WriteString(", ")
	builder.WriteString("output_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputCount))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("input_hash=")
	builder.WriteString(_m.InputHash)
	builder.WriteString(", ")
	builder.WriteString("errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errors))
	builder.WriteString(", ")
	builder.WriteString("step_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepMetadata))
	builder.WriteByte(')')
	return builder.String()
}

// StepLogs is a parsable slice of StepLog.
type StepLogs []*StepLog
