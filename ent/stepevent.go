// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// StepEvent is the model entity for the StepEvent schema.
type StepEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Empty for workflow-level events
	StepID string `json:"step_id,omitempty"`
	// Sub-task identifier for fan-out steps
	Substep string `json:"substep,omitempty"`
	// Status holds the value of the "status" field.
	Status stepevent.Status `json:"status,omitempty"`
	// Current holds the value of the "current" field.
	Current *int `json:"current,omitempty"`
	// Total holds the value of the "total" field.
	Total *int `json:"total,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Stream name this event belongs to (progress, logs)
	Stream string `json:"stream,omitempty"`
	// EventMetadata holds the value of the "event_metadata" field.
	EventMetadata map[string]interface{} `json:"event_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepEventQuery when eager-loading is set.
	Edges        StepEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepEventEdges holds the relations/edges for other nodes in the graph.
type StepEventEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepEventEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldEventMetadata:
			values[i] = new([]byte)
		case stepevent.FieldID, stepevent.FieldCurrent, stepevent.FieldTotal:
			values[i] = new(sql.NullInt64)
		case stepevent.FieldRunID, stepevent.FieldStepID, stepevent.FieldSubstep, stepevent.FieldStatus, stepevent.FieldMessage, stepevent.FieldStream:
			values[i] = new(sql.NullString)
		case stepevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepEvent fields.
func (_m *StepEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case stepevent.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case stepevent.FieldSubstep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field substep", values[i])
			} else if value.Valid {
				_m.Substep = value.String
			}
		case stepevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stepevent.Status(value.String)
			}
		case stepevent.FieldCurrent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current", values[i])
			} else if value.Valid {
				_m.Current = new(int)
				*_m.Current = int(value.Int64)
			}
		case stepevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = new(int)
				*_m.Total = int(value.Int64)
			}
		case stepevent.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case stepevent.FieldStream:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream", values[i])
			} else if value.Valid {
				_m.Stream = value.String
			}
		case stepevent.FieldEventMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventMetadata); err != nil {
					return fmt.Errorf("unmarshal field event_metadata: %w", err)
				}
			}
		case stepevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StepEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StepEvent entity.
func (_m *StepEvent) QueryRun() *WorkflowRunQuery {
	return NewStepEventClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this StepEvent.
// Note that you need to call StepEvent.Unwrap() before calling this method if this StepEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepEvent) Update() *StepEventUpdateOne {
	return NewStepEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepEvent) Unwrap() *StepEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StepEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("substep=")
	builder.WriteString(_m.Substep)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Current; v != nil {
		builder.WriteString("current=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Total; v != nil {
		builder.WriteString("total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("stream=")
	builder.WriteString(_m.Stream)
	builder.WriteString(", ")
	builder.WriteString("event_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepEvents is a parsable slice of StepEvent.
type StepEvents []*StepEvent
