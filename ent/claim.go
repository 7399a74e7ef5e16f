// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/document"
)

// Claim is the model entity for the Claim schema.
type Claim struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SHA-256 over normalized statement + claim_type + document_id
	ClaimHash string `json:"claim_hash,omitempty"`
	// Canonical statement for the cluster this claim represents
	Statement string `json:"statement,omitempty"`
	// ClaimType holds the value of the "claim_type" field.
	ClaimType claim.ClaimType `json:"claim_type,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Primary entity anchor; required for persistence
	SubjectEntityID string `json:"subject_entity_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// SourceQuote holds the value of the "source_quote" field.
	SourceQuote string `json:"source_quote,omitempty"`
	// Statement embedding used for cross-workflow similarity
	Embedding []byte `json:"embedding,omitempty"`
	// Workflow that created or last merged this claim
	WorkflowID string `json:"workflow_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClaimQuery when eager-loading is set.
	Edges        ClaimEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClaimEdges holds the relations/edges for other nodes in the graph.
type ClaimEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// ClaimEntities holds the value of the claim_entities edge.
	ClaimEntities []*ClaimEntity `json:"claim_entities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClaimEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// ClaimEntitiesOrErr returns the ClaimEntities value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) ClaimEntitiesOrErr() ([]*ClaimEntity, error) {
	if e.loadedTypes[1] {
		return e.ClaimEntities, nil
	}
	return nil, &NotLoadedError{edge: "claim_entities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Claim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claim.FieldEmbedding:
			values[i] = new([]byte)
		case claim.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case claim.FieldID, claim.FieldClaimHash, claim.FieldStatement, claim.FieldClaimType, claim.FieldSubjectEntityID, claim.FieldDocumentID, claim.FieldSectionID, claim.FieldSourceQuote, claim.FieldWorkflowID:
			values[i] = new(sql.NullString)
		case claim.FieldCreatedAt, claim.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Claim fields.
func (_m *Claim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claim.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case claim.FieldClaimHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_hash", values[i])
			} else if value.Valid {
				_m.ClaimHash = value.String
			}
		case claim.FieldStatement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field statement", values[i])
			} else if value.Valid {
				_m.Statement = value.String
			}
		case claim.FieldClaimType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_type", values[i])
			} else if value.Valid {
				_m.ClaimType = claim.ClaimType(value.String)
			}
		case claim.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case claim.FieldSubjectEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_entity_id", values[i])
			} else if value.Valid {
				_m.SubjectEntityID = value.String
			}
		case claim.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case claim.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				_m.SectionID = value.String
			}
		case claim.FieldSourceQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_quote", values[i])
			} else if value.Valid {
				_m.SourceQuote = value.String
			}
		case claim.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case claim.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case claim.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claim.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Claim.
// This includes values selected through modifiers, order, etc.
func (_m *Claim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Claim entity.
func (_m *Claim) QueryDocument() *DocumentQuery {
	return NewClaimClient(_m.config).QueryDocument(_m)
}

// QueryClaimEntities queries the "claim_entities" edge of the Claim entity.
func (_m *Claim) QueryClaimEntities() *ClaimEntityQuery {
	return NewClaimClient(_m.config).QueryClaimEntities(_m)
}

// Update returns a builder for updating this Claim.
// Note that you need to call Claim.Unwrap() before calling this method if this Claim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Claim) Update() *ClaimUpdateOne {
	return NewClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Claim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Claim) Unwrap() *Claim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Claim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Claim) String() string {
	var builder strings.Builder
	builder.WriteString("Claim(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("claim_hash=")
	builder.WriteString(_m.ClaimHash)
	builder.WriteString(", ")
	builder.WriteString("statement=")
	builder.WriteString(_m.Statement)
	builder.WriteString(", ")
	builder.WriteString("claim_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimType))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("subject_entity_id=")
	builder.WriteString(_m.SubjectEntityID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(_m.SectionID)
	builder.WriteString(", ")
	builder.WriteString("source_quote=")
	builder.WriteString(_m.SourceQuote)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Claims is a parsable slice of Claim.
type Claims []*Claim
