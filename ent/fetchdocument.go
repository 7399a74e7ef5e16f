// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/fetchdocument"
)

// FetchDocument is the model entity for the FetchDocument schema.
type FetchDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// Status holds the value of the "status" field.
	Status fetchdocument.Status `json:"status,omitempty"`
	// ContentLength holds the value of the "content_length" field.
	ContentLength *int `json:"content_length,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// ContentPath holds the value of the "content_path" field.
	ContentPath string `json:"content_path,omitempty"`
	// Engine that produced the content (trafilatura, httpx, firecrawl, tavily, file, cms)
	Engine string `json:"engine,omitempty"`
	// e.g. content_unchanged in delta mode
	SkipReason string `json:"skip_reason,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// FetchMetadata holds the value of the "fetch_metadata" field.
	FetchMetadata map[string]interface{} `json:"fetch_metadata,omitempty"`
	// Truncated-content embedding; nil when no provider configured
	Embedding []byte `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FetchDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fetchdocument.FieldFetchMetadata, fetchdocument.FieldEmbedding:
			values[i] = new([]byte)
		case fetchdocument.FieldContentLength:
			values[i] = new(sql.NullInt64)
		case fetchdocument.FieldID, fetchdocument.FieldWorkflowID, fetchdocument.FieldDocumentID, fetchdocument.FieldStatus, fetchdocument.FieldContentHash, fetchdocument.FieldContentPath, fetchdocument.FieldEngine, fetchdocument.FieldSkipReason, fetchdocument.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case fetchdocument.FieldCreatedAt, fetchdocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FetchDocument fields.
func (_m *FetchDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fetchdocument.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case fetchdocument.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case fetchdocument.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case fetchdocument.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fetchdocument.Status(value.String)
			}
		case fetchdocument.FieldContentLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_length", values[i])
			} else if value.Valid {
				_m.ContentLength = new(int)
				*_m.ContentLength = int(value.Int64)
			}
		case fetchdocument.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case fetchdocument.FieldContentPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_path", values[i])
			} else if value.Valid {
				_m.ContentPath = value.String
			}
		case fetchdocument.FieldEngine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine", values[i])
			} else if value.Valid {
				_m.Engine = value.String
			}
		case fetchdocument.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = value.String
			}
		case fetchdocument.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case fetchdocument.FieldFetchMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fetch_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FetchMetadata); err != nil {
					return fmt.Errorf("unmarshal field fetch_metadata: %w", err)
				}
			}
		case fetchdocument.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case fetchdocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fetchdocument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FetchDocument.
// This includes values selected through modifiers, order, etc.
func (_m *FetchDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FetchDocument.
// Note that you need to call FetchDocument.Unwrap() before calling this method if this FetchDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FetchDocument) Update() *FetchDocumentUpdateOne {
	return NewFetchDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FetchDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FetchDocument) Unwrap() *FetchDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FetchDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FetchDocument) String() string {
	var builder strings.Builder
	builder.WriteString("FetchDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ContentLength; v != nil {
		builder.WriteString("content_length=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("content_path=")
	builder.WriteString(_m.ContentPath)
	builder.WriteString(", ")
	builder.WriteString("engine=")
	builder.WriteString(_m.Engine)
	builder.WriteString(", ")
	builder.WriteString("skip_reason=")
	builder.WriteString(_m.SkipReason)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("fetch_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.FetchMetadata))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FetchDocuments is a parsable slice of FetchDocument.
type FetchDocuments []*FetchDocument
