// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/claimresolution"
)

// ClaimResolution is the model entity for the ClaimResolution schema.
type ClaimResolution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// ClaimHash holds the value of the "claim_hash" field.
	ClaimHash string `json:"claim_hash,omitempty"`
	// Clustering decision this row resolves
	Decision string `json:"decision,omitempty"`
	// ResolutionAction holds the value of the "resolution_action" field.
	ResolutionAction claimresolution.ResolutionAction `json:"resolution_action,omitempty"`
	// Claim row this occurrence resolved to; empty for skipped
	ResolvedClaimID string `json:"resolved_claim_id,omitempty"`
	// LinkedEntityIds holds the value of the "linked_entity_ids" field.
	LinkedEntityIds []string `json:"linked_entity_ids,omitempty"`
	// e.g. degraded_from when a MERGE_WITH target vanished
	ResolutionMetadata map[string]interface{} `json:"resolution_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClaimResolution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claimresolution.FieldLinkedEntityIds, claimresolution.FieldResolutionMetadata:
			values[i] = new([]byte)
		case claimresolution.FieldID, claimresolution.FieldWorkflowID, claimresolution.FieldDocumentID, claimresolution.FieldClaimHash, claimresolution.FieldDecision, claimresolution.FieldResolutionAction, claimresolution.FieldResolvedClaimID:
			values[i] = new(sql.NullString)
		case claimresolution.FieldCreatedAt, claimresolution.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClaimResolution fields.
func (_m *ClaimResolution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claimresolution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case claimresolution.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case claimresolution.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case claimresolution.FieldClaimHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_hash", values[i])
			} else if value.Valid {
				_m.ClaimHash = value.String
			}
		case claimresolution.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case claimresolution.FieldResolutionAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_action", values[i])
			} else if value.Valid {
				_m.ResolutionAction = claimresolution.ResolutionAction(value.String)
			}
		case claimresolution.FieldResolvedClaimID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_claim_id", values[i])
			} else if value.Valid {
				_m.ResolvedClaimID = value.String
			}
		case claimresolution.FieldLinkedEntityIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field linked_entity_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LinkedEntityIds); err != nil {
					return fmt.Errorf("unmarshal field linked_entity_ids: %w", err)
				}
			}
		case claimresolution.FieldResolutionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResolutionMetadata); err != nil {
					return fmt.Errorf("unmarshal field resolution_metadata: %w", err)
				}
			}
		case claimresolution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claimresolution.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClaimResolution.
// This includes values selected through modifiers, order, etc.
func (_m *ClaimResolution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClaimResolution.
// Note that you need to call ClaimResolution.Unwrap() before calling this method if this ClaimResolution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClaimResolution) Update() *ClaimResolutionUpdateOne {
	return NewClaimResolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClaimResolution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClaimResolution) Unwrap() *ClaimResolution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClaimResolution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClaimResolution) String() string {
	var builder strings.Builder
	builder.WriteString("ClaimResolution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("claim_hash=")
	builder.WriteString(_m.ClaimHash)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("resolution_action=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolutionAction))
	builder.WriteString(", ")
	builder.WriteString("resolved_claim_id=")
	builder.WriteString(_m.ResolvedClaimID)
	builder.WriteString(", ")
	builder.WriteString("linked_entity_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkedEntityIds))
	builder.WriteString(", ")
	builder.WriteString("resolution_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolutionMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClaimResolutions is a parsable slice of ClaimResolution.
type ClaimResolutions []*ClaimResolution
