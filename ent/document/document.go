// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldContentPath holds the string denoting the content_path field in the database.
	FieldContentPath = "content_path"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldIndexedWithHash holds the string denoting the indexed_with_hash field in the database.
	FieldIndexedWithHash = "indexed_with_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentEntities holds the string denoting the document_entities edge name in mutations.
	EdgeDocumentEntities = "document_entities"
	// EdgeClaims holds the string denoting the claims edge name in mutations.
	EdgeClaims = "claims"
	// DocumentEntityFieldID holds the string denoting the ID field of the DocumentEntity.
	DocumentEntityFieldID = "document_entity_id"
	// ClaimFieldID holds the string denoting the ID field of the Claim.
	ClaimFieldID = "claim_id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// DocumentEntitiesTable is the table that holds the document_entities relation/edge.
	DocumentEntitiesTable = "document_entities"
	// DocumentEntitiesInverseTable is the table name for the DocumentEntity entity.
	// It exists in this package in order to avoid circular dependency with the "documententity" package.
	DocumentEntitiesInverseTable = "document_entities"
	// DocumentEntitiesColumn is the table column denoting the document_entities relation/edge.
	DocumentEntitiesColumn = "document_id"
	// ClaimsTable is the table that holds the claims relation/edge.
	ClaimsTable = "claims"
	// ClaimsInverseTable is the table name for the Claim entity.
	// It exists in this package in order to avoid circular dependency with the "claim" package.
	ClaimsInverseTable = "claims"
	// ClaimsColumn is the table column denoting the claims relation/edge.
	ClaimsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldSourceURL,
	FieldSourceType,
	FieldTitle,
	FieldDescription,
	FieldContentPath,
	FieldContentHash,
	FieldIndexedWithHash,
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

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceTypeURL is the default value of the SourceType enum.
const DefaultSourceType = SourceTypeURL

// SourceType values.
const (
	SourceTypeURL  SourceType = "url"
	SourceTypeFile SourceType = "file"
	SourceTypeCms  SourceType = "cms"
	SourceTypeAPI  SourceType = "api"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeURL, SourceTypeFile, SourceTypeCms, SourceTypeAPI:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByContentPath orders the results by the content_path field.
func ByContentPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentPath, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByIndexedWithHash orders the results by the indexed_with_hash field.
func ByIndexedWithHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexedWithHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentEntitiesCount orders the results by document_entities count.
func ByDocumentEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentEntitiesStep(), opts...)
	}
}

// ByDocumentEntities orders the results by document_entities terms.
func ByDocumentEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByClaimsCount orders the results by claims count.
func ByClaimsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClaimsStep(), opts...)
	}
}

// ByClaims orders the results by claims terms.
func ByClaims(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentEntitiesInverseTable, DocumentEntityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentEntitiesTable, DocumentEntitiesColumn),
	)
}
func newClaimsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimsInverseTable, ClaimFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClaimsTable, ClaimsColumn),
	)
}
