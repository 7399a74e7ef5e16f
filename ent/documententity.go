// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
)

// DocumentEntity is the model entity for the DocumentEntity schema.
type DocumentEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// Evidence quote from the document
	Quote string `json:"quote,omitempty"`
	// StartOffset holds the value of the "start_offset" field.
	StartOffset *int `json:"start_offset,omitempty"`
	// EndOffset holds the value of the "end_offset" field.
	EndOffset *int `json:"end_offset,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Workflow that produced this link; used for stale cleanup
	WorkflowID string `json:"workflow_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentEntityQuery when eager-loading is set.
	Edges        DocumentEntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEntityEdges holds the relations/edges for other nodes in the graph.
type DocumentEntityEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Entity holds the value of the entity edge.
	Entity *Entity `json:"entity,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEntityEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEntityEdges) EntityOrErr() (*Entity, error) {
	if e.Entity != nil {
		return e.Entity, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: entity.Label}
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documententity.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case documententity.FieldStartOffset, documententity.FieldEndOffset:
			values[i] = new(sql.NullInt64)
		case documententity.FieldID, documententity.FieldDocumentID, documententity.FieldEntityID, documententity.FieldQuote, documententity.FieldWorkflowID:
			values[i] = new(sql.NullString)
		case documententity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentEntity fields.
func (_m *DocumentEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documententity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case documententity.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case documententity.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case documententity.FieldQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote", values[i])
			} else if value.Valid {
				_m.Quote = value.String
			}
		case documententity.FieldStartOffset:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_offset", values[i])
			} else if value.Valid {
				_m.StartOffset = new(int)
				*_m.StartOffset = int(value.Int64)
			}
		case documententity.FieldEndOffset:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_offset", values[i])
			} else if value.Valid {
				_m.EndOffset = new(int)
				*_m.EndOffset = int(value.Int64)
			}
		case documententity.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case documententity.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case documententity.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentEntity.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentEntity entity.
func (_m *DocumentEntity) QueryDocument() *DocumentQuery {
	return NewDocumentEntityClient(_m.config).QueryDocument(_m)
}

// QueryEntity queries the "entity" edge of the DocumentEntity entity.
func (_m *DocumentEntity) QueryEntity() *EntityQuery {
	return NewDocumentEntityClient(_m.config).QueryEntity(_m)
}

// Update returns a builder for updating this DocumentEntity.
// Note that you need to call DocumentEntity.Unwrap() before calling this method if this DocumentEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentEntity) Update() *DocumentEntityUpdateOne {
	return NewDocumentEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentEntity) Unwrap() *DocumentEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentEntity) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("quote=")
	builder.WriteString(_m.Quote)
	builder.WriteString(", ")
	if v := _m.StartOffset; v != nil {
		builder.WriteString("start_offset=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EndOffset; v != nil {
		builder.WriteString("end_offset=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentEntities is a parsable slice of DocumentEntity.
type DocumentEntities []*DocumentEntity
