// Code generated by ent, DO NOT EDIT.

package claimresolution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the claimresolution type in the database.
	Label = "claim_resolution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "claim_resolution_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldClaimHash holds the string denoting the claim_hash field in the database.
	FieldClaimHash = "claim_hash"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldResolutionAction holds the string denoting the resolution_action field in the database.
	FieldResolutionAction = "resolution_action"
	// FieldResolvedClaimID holds the string denoting the resolved_claim_id field in the database.
	FieldResolvedClaimID = "resolved_claim_id"
	// FieldLinkedEntityIds holds the string denoting the linked_entity_ids field in the database.
	FieldLinkedEntityIds = "linked_entity_ids"
	// FieldResolutionMetadata holds the string denoting the resolution_metadata field in the database.
	FieldResolutionMetadata = "resolution_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the claimresolution in the database.
	Table = "claim_resolutions"
)

// Columns holds all SQL columns for claimresolution fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldDocumentID,
	FieldClaimHash,
	FieldDecision,
	FieldResolutionAction,
	FieldResolvedClaimID,
	FieldLinkedEntityIds,
	FieldResolutionMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ResolutionAction defines the type for the "resolution_action" enum field.
type ResolutionAction string

// ResolutionAction values.
const (
	ResolutionActionCreated      ResolutionAction = "created"
	ResolutionActionMerged       ResolutionAction = "merged"
	ResolutionActionDeduplicated ResolutionAction = "deduplicated"
	ResolutionActionSkipped      ResolutionAction = "skipped"
)

func (ra ResolutionAction) String() string {
	return string(ra)
}

// ResolutionActionValidator is a validator for the "resolution_action" field enum values. It is called by the builders before save.
func ResolutionActionValidator(ra ResolutionAction) error {
	switch ra {
	case ResolutionActionCreated, ResolutionActionMerged, ResolutionActionDeduplicated, ResolutionActionSkipped:
		return nil
	default:
		return fmt.Errorf("claimresolution: invalid enum value for resolution_action field: %q", ra)
	}
}

// OrderOption defines the ordering options for the ClaimResolution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByClaimHash orders the results by the claim_hash field.
func ByClaimHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimHash, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByResolutionAction orders the results by the resolution_action field.
func ByResolutionAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionAction, opts...).ToFunc()
}

// ByResolvedClaimID orders the results by the resolved_claim_id field.
func ByResolvedClaimID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedClaimID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
