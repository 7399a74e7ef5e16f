// Code generated by ent, DO NOT EDIT.

package entityresolution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entityresolution type in the database.
	Label = "entity_resolution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_resolution_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldEntityName holds the string denoting the entity_name field in the database.
	FieldEntityName = "entity_name"
	// FieldResolvedEntityID holds the string denoting the resolved_entity_id field in the database.
	FieldResolvedEntityID = "resolved_entity_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the entityresolution in the database.
	Table = "entity_resolutions"
)

// Columns holds all SQL columns for entityresolution fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldEntityName,
	FieldResolvedEntityID,
	FieldAction,
	FieldScore,
	FieldCreatedAt,
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
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionCreated Action = "created"
	ActionMatched Action = "matched"
	ActionMerged  Action = "merged"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionCreated, ActionMatched, ActionMerged:
		return nil
	default:
		return fmt.Errorf("entityresolution: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the EntityResolution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByEntityName orders the results by the entity_name field.
func ByEntityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityName, opts...).ToFunc()
}

// ByResolvedEntityID orders the results by the resolved_entity_id field.
func ByResolvedEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedEntityID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
