// Code generated by ent, DO NOT EDIT.

package claimgroup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the claimgroup type in the database.
	Label = "claim_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "claim_group_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldSectionID holds the string denoting the section_id field in the database.
	FieldSectionID = "section_id"
	// FieldClaimHash holds the string denoting the claim_hash field in the database.
	FieldClaimHash = "claim_hash"
	// FieldClusterID holds the string denoting the cluster_id field in the database.
	FieldClusterID = "cluster_id"
	// FieldClusterSize holds the string denoting the cluster_size field in the database.
	FieldClusterSize = "cluster_size"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldStatement holds the string denoting the statement field in the database.
	FieldStatement = "statement"
	// FieldCanonicalStatement holds the string denoting the canonical_statement field in the database.
	FieldCanonicalStatement = "canonical_statement"
	// FieldClaimType holds the string denoting the claim_type field in the database.
	FieldClaimType = "claim_type"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEntityIndices holds the string denoting the entity_indices field in the database.
	FieldEntityIndices = "entity_indices"
	// FieldSimilarExisting holds the string denoting the similar_existing field in the database.
	FieldSimilarExisting = "similar_existing"
	// FieldSourceQuote holds the string denoting the source_quote field in the database.
	FieldSourceQuote = "source_quote"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the claimgroup in the database.
	Table = "claim_groups"
)

// Columns holds all SQL columns for claimgroup fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldDocumentID,
	FieldSectionID,
	FieldClaimHash,
	FieldClusterID,
	FieldClusterSize,
	FieldDecision,
	FieldStatement,
	FieldCanonicalStatement,
	FieldClaimType,
	FieldConfidence,
	FieldEntityIndices,
	FieldSimilarExisting,
	FieldSourceQuote,
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
	// DefaultClusterSize holds the default value on creation for the "cluster_size" field.
	DefaultClusterSize int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ClaimType defines the type for the "claim_type" enum field.
type ClaimType string

// ClaimTypeDefinition is the default value of the ClaimType enum.
const DefaultClaimType = ClaimTypeDefinition

// ClaimType values.
const (
	ClaimTypeDefinition   ClaimType = "definition"
	ClaimTypeCapability   ClaimType = "capability"
	ClaimTypeLimitation   ClaimType = "limitation"
	ClaimTypeRelationship ClaimType = "relationship"
	ClaimTypeFact         ClaimType = "fact"
)

func (ct ClaimType) String() string {
	return string(ct)
}

// ClaimTypeValidator is a validator for the "claim_type" field enum values. It is called by the builders before save.
func ClaimTypeValidator(ct ClaimType) error {
	switch ct {
	case ClaimTypeDefinition, ClaimTypeCapability, ClaimTypeLimitation, ClaimTypeRelationship, ClaimTypeFact:
		return nil
	default:
		return fmt.Errorf("claimgroup: invalid enum value for claim_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the ClaimGroup queries.
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

// BySectionID orders the results by the section_id field.
func BySectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionID, opts...).ToFunc()
}

// ByClaimHash orders the results by the claim_hash field.
func ByClaimHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimHash, opts...).ToFunc()
}

// ByClusterID orders the results by the cluster_id field.
func ByClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterID, opts...).ToFunc()
}

// ByClusterSize orders the results by the cluster_size field.
func ByClusterSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterSize, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByStatement orders the results by the statement field.
func ByStatement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatement, opts...).ToFunc()
}

// ByCanonicalStatement orders the results by the canonical_statement field.
func ByCanonicalStatement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalStatement, opts...).ToFunc()
}

// ByClaimType orders the results by the claim_type field.
func ByClaimType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimType, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceQuote orders the results by the source_quote field.
func BySourceQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceQuote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
