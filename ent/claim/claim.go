// Code generated by ent, DO NOT EDIT.

package claim

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the claim type in the database.
	Label = "claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "claim_id"
	// FieldClaimHash holds the string denoting the claim_hash field in the database.
	FieldClaimHash = "claim_hash"
	// FieldStatement holds the string denoting the statement field in the database.
	FieldStatement = "statement"
	// FieldClaimType holds the string denoting the claim_type field in the database.
	FieldClaimType = "claim_type"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSubjectEntityID holds the string denoting the subject_entity_id field in the database.
	FieldSubjectEntityID = "subject_entity_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldSectionID holds the string denoting the section_id field in the database.
	FieldSectionID = "section_id"
	// FieldSourceQuote holds the string denoting the source_quote field in the database.
	FieldSourceQuote = "source_quote"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeClaimEntities holds the string denoting the claim_entities edge name in mutations.
	EdgeClaimEntities = "claim_entities"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// ClaimEntityFieldID holds the string denoting the ID field of the ClaimEntity.
	ClaimEntityFieldID = "claim_entity_id"
	// Table holds the table name of the claim in the database.
	Table = "claims"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "claims"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// ClaimEntitiesTable is the table that holds the claim_entities relation/edge.
	ClaimEntitiesTable = "claim_entities"
	// ClaimEntitiesInverseTable is the table name for the ClaimEntity entity.
	// It exists in this package in order to avoid circular dependency with the "claimentity" package.
	ClaimEntitiesInverseTable = "claim_entities"
	// ClaimEntitiesColumn is the table column denoting the claim_entities relation/edge.
	ClaimEntitiesColumn = "claim_id"
)

// Columns holds all SQL columns for claim fields.
var Columns = []string{
	FieldID,
	FieldClaimHash,
	FieldStatement,
	FieldClaimType,
	FieldConfidence,
	FieldSubjectEntityID,
	FieldDocumentID,
	FieldSectionID,
	FieldSourceQuote,
	FieldEmbedding,
	FieldWorkflowID,
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
		return fmt.Errorf("claim: invalid enum value for claim_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Claim queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClaimHash orders the results by the claim_hash field.
func ByClaimHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimHash, opts...).ToFunc()
}

// ByStatement orders the results by the statement field.
func ByStatement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatement, opts...).ToFunc()
}

// ByClaimType orders the results by the claim_type field.
func ByClaimType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimType, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySubjectEntityID orders the results by the subject_entity_id field.
func BySubjectEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectEntityID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// BySectionID orders the results by the section_id field.
func BySectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionID, opts...).ToFunc()
}

// BySourceQuote orders the results by the source_quote field.
func BySourceQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceQuote, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByClaimEntitiesCount orders the results by claim_entities count.
func ByClaimEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClaimEntitiesStep(), opts...)
	}
}

// ByClaimEntities orders the results by claim_entities terms.
func ByClaimEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, DocumentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newClaimEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimEntitiesInverseTable, ClaimEntityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClaimEntitiesTable, ClaimEntitiesColumn),
	)
}
