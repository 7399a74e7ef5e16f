// Code generated by ent, DO NOT EDIT.

package entity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entity type in the database.
	Label = "entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldMergedIntoID holds the string denoting the merged_into_id field in the database.
	FieldMergedIntoID = "merged_into_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentEntities holds the string denoting the document_entities edge name in mutations.
	EdgeDocumentEntities = "document_entities"
	// EdgeClaimEntities holds the string denoting the claim_entities edge name in mutations.
	EdgeClaimEntities = "claim_entities"
	// DocumentEntityFieldID holds the string denoting the ID field of the DocumentEntity.
	DocumentEntityFieldID = "document_entity_id"
	// ClaimEntityFieldID holds the string denoting the ID field of the ClaimEntity.
	ClaimEntityFieldID = "claim_entity_id"
	// Table holds the table name of the entity in the database.
	Table = "entities"
	// DocumentEntitiesTable is the table that holds the document_entities relation/edge.
	DocumentEntitiesTable = "document_entities"
	// DocumentEntitiesInverseTable is the table name for the DocumentEntity entity.
	// It exists in this package in order to avoid circular dependency with the "documententity" package.
	DocumentEntitiesInverseTable = "document_entities"
	// DocumentEntitiesColumn is the table column denoting the document_entities relation/edge.
	DocumentEntitiesColumn = "entity_id"
	// ClaimEntitiesTable is the table that holds the claim_entities relation/edge.
	ClaimEntitiesTable = "claim_entities"
	// ClaimEntitiesInverseTable is the table name for the ClaimEntity entity.
	// It exists in this package in order to avoid circular dependency with the "claimentity" package.
	ClaimEntitiesInverseTable = "claim_entities"
	// ClaimEntitiesColumn is the table column denoting the claim_entities relation/edge.
	ClaimEntitiesColumn = "entity_id"
)

// Columns holds all SQL columns for entity fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEntityType,
	FieldDescription,
	FieldAliases,
	FieldEmbedding,
	FieldMergedIntoID,
	FieldVersion,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityTypeConcept is the default value of the EntityType enum.
const DefaultEntityType = EntityTypeConcept

// EntityType values.
const (
	EntityTypeTechnology   EntityType = "technology"
	EntityTypePerson       EntityType = "person"
	EntityTypeProduct      EntityType = "product"
	EntityTypeTopic        EntityType = "topic"
	EntityTypeOrganization EntityType = "organization"
	EntityTypeConcept      EntityType = "concept"
	EntityTypeOther        EntityType = "other"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypeTechnology, EntityTypePerson, EntityTypeProduct, EntityTypeTopic, EntityTypeOrganization, EntityTypeConcept, EntityTypeOther:
		return nil
	default:
		return fmt.Errorf("entity: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the Entity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMergedIntoID orders the results by the merged_into_id field.
func ByMergedIntoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedIntoID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
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
func newDocumentEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentEntitiesInverseTable, DocumentEntityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentEntitiesTable, DocumentEntitiesColumn),
	)
}
func newClaimEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimEntitiesInverseTable, ClaimEntityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClaimEntitiesTable, ClaimEntitiesColumn),
	)
}
