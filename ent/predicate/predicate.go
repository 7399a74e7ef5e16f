// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// ClaimEntity is the predicate function for claimentity builders.
type ClaimEntity func(*sql.Selector)

// ClaimGroup is the predicate function for claimgroup builders.
type ClaimGroup func(*sql.Selector)

// ClaimResolution is the predicate function for claimresolution builders.
type ClaimResolution func(*sql.Selector)

// Discovery is the predicate function for discovery builders.
type Discovery func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentEntity is the predicate function for documententity builders.
type DocumentEntity func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// EntityResolution is the predicate function for entityresolution builders.
type EntityResolution func(*sql.Selector)

// FetchDocument is the predicate function for fetchdocument builders.
type FetchDocument func(*sql.Selector)

// SectionExtraction is the predicate function for sectionextraction builders.
type SectionExtraction func(*sql.Selector)

// StepEvent is the predicate function for stepevent builders.
type StepEvent func(*sql.Selector)

// StepLog is the predicate function for steplog builders.
type StepLog func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)
