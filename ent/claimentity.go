// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/entity"
)

// ClaimEntity is the model entity for the ClaimEntity schema.
type ClaimEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClaimID holds the value of the "claim_id" field.
	ClaimID string `json:"claim_id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClaimEntityQuery when eager-loading is set.
	Edges        ClaimEntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClaimEntityEdges holds the relations/edges for other nodes in the graph.
type ClaimEntityEdges struct {
	// Claim holds the value of the claim edge.
	Claim *Claim `json:"claim,omitempty"`
	// Entity holds the value of the entity edge.
	Entity *Entity `json:"entity,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClaimOrErr returns the Claim value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClaimEntityEdges) ClaimOrErr() (*Claim, error) {
	if e.Claim != nil {
		return e.Claim, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: claim.Label}
	}
	return nil, &NotLoadedError{edge: "claim"}
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClaimEntityEdges) EntityOrErr() (*Entity, error) {
	if e.Entity != nil {
		return e.Entity, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: entity.Label}
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClaimEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claimentity.FieldID, claimentity.FieldClaimID, claimentity.FieldEntityID:
			values[i] = new(sql.NullString)
		case claimentity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClaimEntity fields.
func (_m *ClaimEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claimentity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case claimentity.FieldClaimID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_id", values[i])
			} else if value.Valid {
				_m.ClaimID = value.String
			}
		case claimentity.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case claimentity.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClaimEntity.
// This includes values selected through modifiers, order, etc.
func (_m *ClaimEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClaim queries the "claim" edge of the ClaimEntity entity.
func (_m *ClaimEntity) QueryClaim() *ClaimQuery {
	return NewClaimEntityClient(_m.config).QueryClaim(_m)
}

// QueryEntity queries the "entity" edge of the ClaimEntity entity.
func (_m *ClaimEntity) QueryEntity() *EntityQuery {
	return NewClaimEntityClient(_m.config).QueryEntity(_m)
}

// Update returns a builder for updating this ClaimEntity.
// Note that you need to call ClaimEntity.Unwrap() before calling this method if this ClaimEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClaimEntity) Update() *ClaimEntityUpdateOne {
	return NewClaimEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClaimEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClaimEntity) Unwrap() *ClaimEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClaimEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClaimEntity) String() string {
	var builder strings.Builder
	builder.WriteString("ClaimEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("claim_id=")
	builder.WriteString(_m.ClaimID)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClaimEntities is a parsable slice of ClaimEntity.
type ClaimEntities []*ClaimEntity
