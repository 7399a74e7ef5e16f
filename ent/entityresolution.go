// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/entityresolution"
)

// EntityResolution is the model entity for the EntityResolution schema.
type EntityResolution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// Mention text as extracted, before canonicalization
	EntityName string `json:"entity_name,omitempty"`
	// ResolvedEntityID holds the value of the "resolved_entity_id" field.
	ResolvedEntityID string `json:"resolved_entity_id,omitempty"`
	// Action holds the value of the "action" field.
	Action entityresolution.Action `json:"action,omitempty"`
	// Match score that produced the resolution
	Score float64 `json:"score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityResolution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityresolution.FieldScore:
			values[i] = new(sql.NullFloat64)
		case entityresolution.FieldID, entityresolution.FieldWorkflowID, entityresolution.FieldEntityName, entityresolution.FieldResolvedEntityID, entityresolution.FieldAction:
			values[i] = new(sql.NullString)
		case entityresolution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityResolution fields.
func (_m *EntityResolution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityresolution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entityresolution.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case entityresolution.FieldEntityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_name", values[i])
			} else if value.Valid {
				_m.EntityName = value.String
			}
		case entityresolution.FieldResolvedEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_entity_id", values[i])
			} else if value.Valid {
				_m.ResolvedEntityID = value.String
			}
		case entityresolution.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = entityresolution.Action(value.String)
			}
		case entityresolution.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case entityresolution.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EntityResolution.
// This includes values selected through modifiers, order, etc.
func (_m *EntityResolution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntityResolution.
// Note that you need to call EntityResolution.Unwrap() before calling this method if this EntityResolution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityResolution) Update() *EntityResolutionUpdateOne {
	return NewEntityResolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityResolution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityResolution) Unwrap() *EntityResolution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityResolution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityResolution) String() string {
	var builder strings.Builder
	builder.WriteString("EntityResolution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("entity_name=")
	builder.WriteString(_m.EntityName)
	builder.WriteString(", ")
	builder.WriteString("resolved_entity_id=")
	builder.WriteString(_m.ResolvedEntityID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityResolutions is a parsable slice of EntityResolution.
type EntityResolutions []*EntityResolution
