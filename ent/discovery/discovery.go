// Code generated by ent, DO NOT EDIT.

package discovery

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the discovery type in the database.
	Label = "discovery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "discovery_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the discovery in the database.
	Table = "discoveries"
)

// Columns holds all SQL columns for discovery fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldDocumentID,
	FieldMethod,
	FieldStatus,
	FieldDetail,
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

// Method defines the type for the "method" enum field.
type Method string

// MethodSitemap is the default value of the Method enum.
const DefaultMethod = MethodSitemap

// Method values.
const (
	MethodSitemap Method = "sitemap"
	MethodCrawl   Method = "crawl"
	MethodFolder  Method = "folder"
	MethodCms     Method = "cms"
	MethodManual  Method = "manual"
)

func (m Method) String() string {
	return string(m)
}

// MethodValidator is a validator for the "method" field enum values. It is called by the builders before save.
func MethodValidator(m Method) error {
	switch m {
	case MethodSitemap, MethodCrawl, MethodFolder, MethodCms, MethodManual:
		return nil
	default:
		return fmt.Errorf("discovery: invalid enum value for method field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDiscovered is the default value of the Status enum.
const DefaultStatus = StatusDiscovered

// Status values.
const (
	StatusDiscovered Status = "discovered"
	StatusSkipped    Status = "skipped"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDiscovered, StatusSkipped, StatusError:
		return nil
	default:
		return fmt.Errorf("discovery: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Discovery queries.
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

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
