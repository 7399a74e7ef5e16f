// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/claimgroup"
)

// ClaimGroup is the model entity for the ClaimGroup schema.
type ClaimGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// ClaimHash holds the value of the "claim_hash" field.
	ClaimHash string `json:"claim_hash,omitempty"`
	// ClusterID holds the value of the "cluster_id" field.
	ClusterID string `json:"cluster_id,omitempty"`
	// ClusterSize holds the value of the "cluster_size" field.
	ClusterSize int `json:"cluster_size,omitempty"`
	// CREATE_NEW, MERGE_WITH:<hash>, or DUPLICATE_OF:<hash>
	Decision string `json:"decision,omitempty"`
	// Occurrence statement, capped at 1000 characters
	Statement string `json:"statement,omitempty"`
	// Full-length representative statement for the cluster
	CanonicalStatement string `json:"canonical_statement,omitempty"`
	// ClaimType holds the value of the "claim_type" field.
	ClaimType claimgroup.ClaimType `json:"claim_type,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Indices into the section's local entities list, preserved verbatim
	EntityIndices []int `json:"entity_indices,omitempty"`
	// Hashes of existing claims above the similarity threshold, for audit
	SimilarExisting []string `json:"similar_existing,omitempty"`
	// SourceQuote holds the value of the "source_quote" field.
	SourceQuote string `json:"source_quote,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClaimGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claimgroup.FieldEntityIndices, claimgroup.FieldSimilarExisting:
			values[i] = new([]byte)
		case claimgroup.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case claimgroup.FieldClusterSize:
			values[i] = new(sql.NullInt64)
		case claimgroup.FieldID, claimgroup.FieldWorkflowID, claimgroup.FieldDocumentID, claimgroup.FieldSectionID, claimgroup.FieldClaimHash, claimgroup.FieldClusterID, claimgroup.FieldDecision, claimgroup.FieldStatement, claimgroup.FieldCanonicalStatement, claimgroup.FieldClaimType, claimgroup.FieldSourceQuote:
			values[i] = new(sql.NullString)
		case claimgroup.FieldCreatedAt, claimgroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClaimGroup fields.
func (_m *ClaimGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claimgroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case claimgroup.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case claimgroup.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case claimgroup.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				_m.SectionID = value.String
			}
		case claimgroup.FieldClaimHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_hash", values[i])
			} else if value.Valid {
				_m.ClaimHash = value.String
			}
		case claimgroup.FieldClusterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_id", values[i])
			} else if value.Valid {
				_m.ClusterID = value.String
			}
		case claimgroup.FieldClusterSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_size", values[i])
			} else if value.Valid {
				_m.ClusterSize = int(value.Int64)
			}
		case claimgroup.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case claimgroup.FieldStatement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field statement", values[i])
			} else if value.Valid {
				_m.Statement = value.String
			}
		case claimgroup.FieldCanonicalStatement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_statement", values[i])
			} else if value.Valid {
				_m.CanonicalStatement = value.String
			}
		case claimgroup.FieldClaimType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_type", values[i])
			} else if value.Valid {
				_m.ClaimType = claimgroup.ClaimType(value.String)
			}
		case claimgroup.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case claimgroup.FieldEntityIndices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_indices", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntityIndices); err != nil {
					return fmt.Errorf("unmarshal field entity_indices: %w", err)
				}
			}
		case claimgroup.FieldSimilarExisting:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field similar_existing", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SimilarExisting); err != nil {
					return fmt.Errorf("unmarshal field similar_existing: %w", err)
				}
			}
		case claimgroup.FieldSourceQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_quote", values[i])
			} else if value.Valid {
				_m.SourceQuote = value.String
			}
		case claimgroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claimgroup.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClaimGroup.
// This includes values selected through modifiers, order, etc.
func (_m *ClaimGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClaimGroup.
// Note that you need to call ClaimGroup.Unwrap() before calling this method if this ClaimGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClaimGroup) Update() *ClaimGroupUpdateOne {
	return NewClaimGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClaimGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClaimGroup) Unwrap() *ClaimGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClaimGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClaimGroup) String() string {
	var builder strings.Builder
	builder.WriteString("ClaimGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(_m.SectionID)
	builder.WriteString(", ")
	builder.WriteString("claim_hash=")
	builder.WriteString(_m.ClaimHash)
	builder.WriteString(", ")
	builder.WriteString("cluster_id=")
	builder.WriteString(_m.ClusterID)
	builder.WriteString(", ")
	builder.WriteString("cluster_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClusterSize))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("statement=")
	builder.WriteString(_m.Statement)
	builder.WriteString(", ")
	builder.WriteString("canonical_statement=")
	builder.WriteString(_m.CanonicalStatement)
	builder.WriteString(", ")
	builder.WriteString("claim_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimType))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("entity_indices=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityIndices))
	builder.WriteString(", ")
	builder.WriteString("similar_existing=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarExisting))
	builder.WriteString(", ")
	builder.WriteString("source_quote=")
	builder.WriteString(_m.SourceQuote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClaimGroups is a parsable slice of ClaimGroup.
type ClaimGroups []*ClaimGroup
