// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/fetchdocument"
	"github.com/kurt-labs/kurt/ent/predicate"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClaim             = "Claim"
	TypeClaimEntity       = "ClaimEntity"
	TypeClaimGroup        = "ClaimGroup"
	TypeClaimResolution   = "ClaimResolution"
	TypeDiscovery         = "Discovery"
	TypeDocument          = "Document"
	TypeDocumentEntity    = "DocumentEntity"
	TypeEntity            = "Entity"
	TypeEntityResolution  = "EntityResolution"
	TypeFetchDocument     = "FetchDocument"
	TypeSectionExtraction = "SectionExtraction"
	TypeStepEvent         = "StepEvent"
	TypeStepLog           = "StepLog"
	TypeWorkflowRun       = "WorkflowRun"
)

// ClaimMutation represents an operation that mutates the Claim nodes in the graph.
type ClaimMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	claim_hash            *string
	statement             *string
	claim_type            *claim.ClaimType
	confidence            *float64
	addconfidence         *float64
	subject_entity_id     *string
	section_id            *string
	source_quote          *string
	embedding             *[]byte
	workflow_id           *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	document              *string
	cleareddocument       bool
	claim_entities        map[string]struct{}
	removedclaim_entities map[string]struct{}
	clearedclaim_entities bool
	done                  bool
	oldValue              func(context.Context) (*Claim, error)
	predicates            []predicate.Claim
}

var _ ent.Mutation = (*ClaimMutation)(nil)

// claimOption allows management of the mutation configuration using functional options.
type claimOption func(*ClaimMutation)

// newClaimMutation creates new mutation for the Claim entity.
func newClaimMutation(c config, op Op, opts ...claimOption) *ClaimMutation {
	m := &ClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimID sets the ID field of the mutation.
func withClaimID(id string) claimOption {
	return func(m *ClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *Claim
		)
		m.oldValue = func(ctx context.Context) (*Claim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Claim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaim sets the old Claim of the mutation.
func withClaim(node *Claim) claimOption {
	return func(m *ClaimMutation) {
		m.oldValue = func(context.Context) (*Claim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Claim entities.
func (m *ClaimMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Claim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimHash sets the "claim_hash" field.
func (m *ClaimMutation) SetClaimHash(s string) {
	m.claim_hash = &s
}

// ClaimHash returns the value of the "claim_hash" field in the mutation.
func (m *ClaimMutation) ClaimHash() (r string, exists bool) {
	v := m.claim_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimHash returns the old "claim_hash" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimHash: %w", err)
	}
	return oldValue.ClaimHash, nil
}

// ResetClaimHash resets all changes to the "claim_hash" field.
func (m *ClaimMutation) ResetClaimHash() {
	m.claim_hash = nil
}

// SetStatement sets the "statement" field.
func (m *ClaimMutation) SetStatement(s string) {
	m.statement = &s
}

// Statement returns the value of the "statement" field in the mutation.
func (m *ClaimMutation) Statement() (r string, exists bool) {
	v := m.statement
	if v == nil {
		return
	}
	return *v, true
}

// OldStatement returns the old "statement" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldStatement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatement: %w", err)
	}
	return oldValue.Statement, nil
}

// ResetStatement resets all changes to the "statement" field.
func (m *ClaimMutation) ResetStatement() {
	m.statement = nil
}

// SetClaimType sets the "claim_type" field.
func (m *ClaimMutation) SetClaimType(ct claim.ClaimType) {
	m.claim_type = &ct
}

// ClaimType returns the value of the "claim_type" field in the mutation.
func (m *ClaimMutation) ClaimType() (r claim.ClaimType, exists bool) {
	v := m.claim_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimType returns the old "claim_type" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimType(ctx context.Context) (v claim.ClaimType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimType: %w", err)
	}
	return oldValue.ClaimType, nil
}

// ResetClaimType resets all changes to the "claim_type" field.
func (m *ClaimMutation) ResetClaimType() {
	m.claim_type = nil
}

// SetConfidence sets the "confidence" field.
func (m *ClaimMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ClaimMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ClaimMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ClaimMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ClaimMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (m *ClaimMutation) SetSubjectEntityID(s string) {
	m.subject_entity_id = &s
}

// SubjectEntityID returns the value of the "subject_entity_id" field in the mutation.
func (m *ClaimMutation) SubjectEntityID() (r string, exists bool) {
	v := m.subject_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectEntityID returns the old "subject_entity_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldSubjectEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectEntityID: %w", err)
	}
	return oldValue.SubjectEntityID, nil
}

// ResetSubjectEntityID resets all changes to the "subject_entity_id" field.
func (m *ClaimMutation) ResetSubjectEntityID() {
	m.subject_entity_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ClaimMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ClaimMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ClaimMutation) ResetDocumentID() {
	m.document = nil
}

// SetSectionID sets the "section_id" field.
func (m *ClaimMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *ClaimMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ClearSectionID clears the value of the "section_id" field.
func (m *ClaimMutation) ClearSectionID() {
	m.section_id = nil
	m.clearedFields[claim.FieldSectionID] = struct{}{}
}

// SectionIDCleared returns if the "section_id" field was cleared in this mutation.
func (m *ClaimMutation) SectionIDCleared() bool {
	_, ok := m.clearedFields[claim.FieldSectionID]
	return ok
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *ClaimMutation) ResetSectionID() {
	m.section_id = nil
	delete(m.clearedFields, claim.FieldSectionID)
}

// SetSourceQuote sets the "source_quote" field.
func (m *ClaimMutation) SetSourceQuote(s string) {
	m.source_quote = &s
}

// SourceQuote returns the value of the "source_quote" field in the mutation.
func (m *ClaimMutation) SourceQuote() (r string, exists bool) {
	v := m.source_quote
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceQuote returns the old "source_quote" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldSourceQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceQuote: %w", err)
	}
	return oldValue.SourceQuote, nil
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (m *ClaimMutation) ClearSourceQuote() {
	m.source_quote = nil
	m.clearedFields[claim.FieldSourceQuote] = struct{}{}
}

// SourceQuoteCleared returns if the "source_quote" field was cleared in this mutation.
func (m *ClaimMutation) SourceQuoteCleared() bool {
	_, ok := m.clearedFields[claim.FieldSourceQuote]
	return ok
}

// ResetSourceQuote resets all changes to the "source_quote" field.
func (m *ClaimMutation) ResetSourceQuote() {
	m.source_quote = nil
	delete(m.clearedFields, claim.FieldSourceQuote)
}

// SetEmbedding sets the "embedding" field.
func (m *ClaimMutation) SetEmbedding(b []byte) {
	m.embedding = &b
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ClaimMutation) Embedding() (r []byte, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldEmbedding(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *ClaimMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[claim.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *ClaimMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[claim.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ClaimMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, claim.FieldEmbedding)
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ClaimMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ClaimMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ClaimMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ClaimMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[claim.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ClaimMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ClaimMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ClaimMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by ids.
func (m *ClaimMutation) AddClaimEntityIDs(ids ...string) {
	if m.claim_entities == nil {
		m.claim_entities = make(map[string]struct{})
	}
	for i := range ids {
		m.claim_entities[ids[i]] = struct{}{}
	}
}

// ClearClaimEntities clears the "claim_entities" edge to the ClaimEntity entity.
func (m *ClaimMutation) ClearClaimEntities() {
	m.clearedclaim_entities = true
}

// ClaimEntitiesCleared reports if the "claim_entities" edge to the ClaimEntity entity was cleared.
func (m *ClaimMutation) ClaimEntitiesCleared() bool {
	return m.clearedclaim_entities
}

// RemoveClaimEntityIDs removes the "claim_entities" edge to the ClaimEntity entity by IDs.
func (m *ClaimMutation) RemoveClaimEntityIDs(ids ...string) {
	if m.removedclaim_entities == nil {
		m.removedclaim_entities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claim_entities, ids[i])
		m.removedclaim_entities[ids[i]] = struct{}{}
	}
}

// RemovedClaimEntities returns the removed IDs of the "claim_entities" edge to the ClaimEntity entity.
func (m *ClaimMutation) RemovedClaimEntitiesIDs() (ids []string) {
	for id := range m.removedclaim_entities {
		ids = append(ids, id)
	}
	return
}

// ClaimEntitiesIDs returns the "claim_entities" edge IDs in the mutation.
func (m *ClaimMutation) ClaimEntitiesIDs() (ids []string) {
	for id := range m.claim_entities {
		ids = append(ids, id)
	}
	return
}

// ResetClaimEntities resets all changes to the "claim_entities" edge.
func (m *ClaimMutation) ResetClaimEntities() {
	m.claim_entities = nil
	m.clearedclaim_entities = false
	m.removedclaim_entities = nil
}

// Where appends a list predicates to the ClaimMutation builder.
func (m *ClaimMutation) Where(ps ...predicate.Claim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Claim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Claim).
func (m *ClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.claim_hash != nil {
		fields = append(fields, claim.FieldClaimHash)
	}
	if m.statement != nil {
		fields = append(fields, claim.FieldStatement)
	}
	if m.claim_type != nil {
		fields = append(fields, claim.FieldClaimType)
	}
	if m.confidence != nil {
		fields = append(fields, claim.FieldConfidence)
	}
	if m.subject_entity_id != nil {
		fields = append(fields, claim.FieldSubjectEntityID)
	}
	if m.document != nil {
		fields = append(fields, claim.FieldDocumentID)
	}
	if m.section_id != nil {
		fields = append(fields, claim.FieldSectionID)
	}
	if m.source_quote != nil {
		fields = append(fields, claim.FieldSourceQuote)
	}
	if m.embedding != nil {
		fields = append(fields, claim.FieldEmbedding)
	}
	if m.workflow_id != nil {
		fields = append(fields, claim.FieldWorkflowID)
	}
	if m.created_at != nil {
		fields = append(fields, claim.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claim.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldClaimHash:
		return m.ClaimHash()
	case claim.FieldStatement:
		return m.Statement()
	case claim.FieldClaimType:
		return m.ClaimType()
	case claim.FieldConfidence:
		return m.Confidence()
	case claim.FieldSubjectEntityID:
		return m.SubjectEntityID()
	case claim.FieldDocumentID:
		return m.DocumentID()
	case claim.FieldSectionID:
		return m.SectionID()
	case claim.FieldSourceQuote:
		return m.SourceQuote()
	case claim.FieldEmbedding:
		return m.Embedding()
	case claim.FieldWorkflowID:
		return m.WorkflowID()
	case claim.FieldCreatedAt:
		return m.CreatedAt()
	case claim.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claim.FieldClaimHash:
		return m.OldClaimHash(ctx)
	case claim.FieldStatement:
		return m.OldStatement(ctx)
	case claim.FieldClaimType:
		return m.OldClaimType(ctx)
	case claim.FieldConfidence:
		return m.OldConfidence(ctx)
	case claim.FieldSubjectEntityID:
		return m.OldSubjectEntityID(ctx)
	case claim.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case claim.FieldSectionID:
		return m.OldSectionID(ctx)
	case claim.FieldSourceQuote:
		return m.OldSourceQuote(ctx)
	case claim.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case claim.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case claim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claim.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Claim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claim.FieldClaimHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimHash(v)
		return nil
	case claim.FieldStatement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatement(v)
		return nil
	case claim.FieldClaimType:
		v, ok := value.(claim.ClaimType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimType(v)
		return nil
	case claim.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case claim.FieldSubjectEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectEntityID(v)
		return nil
	case claim.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case claim.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case claim.FieldSourceQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceQuote(v)
		return nil
	case claim.FieldEmbedding:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case claim.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case claim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claim.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, claim.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claim.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Claim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claim.FieldSectionID) {
		fields = append(fields, claim.FieldSectionID)
	}
	if m.FieldCleared(claim.FieldSourceQuote) {
		fields = append(fields, claim.FieldSourceQuote)
	}
	if m.FieldCleared(claim.FieldEmbedding) {
		fields = append(fields, claim.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimMutation) ClearField(name string) error {
	switch name {
	case claim.FieldSectionID:
		m.ClearSectionID()
		return nil
	case claim.FieldSourceQuote:
		m.ClearSourceQuote()
		return nil
	case claim.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Claim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimMutation) ResetField(name string) error {
	switch name {
	case claim.FieldClaimHash:
		m.ResetClaimHash()
		return nil
	case claim.FieldStatement:
		m.ResetStatement()
		return nil
	case claim.FieldClaimType:
		m.ResetClaimType()
		return nil
	case claim.FieldConfidence:
		m.ResetConfidence()
		return nil
	case claim.FieldSubjectEntityID:
		m.ResetSubjectEntityID()
		return nil
	case claim.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case claim.FieldSectionID:
		m.ResetSectionID()
		return nil
	case claim.FieldSourceQuote:
		m.ResetSourceQuote()
		return nil
	case claim.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case claim.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case claim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claim.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, claim.EdgeDocument)
	}
	if m.claim_entities != nil {
		edges = append(edges, claim.EdgeClaimEntities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case claim.EdgeClaimEntities:
		ids := make([]ent.Value, 0, len(m.claim_entities))
		for id := range m.claim_entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedclaim_entities != nil {
		edges = append(edges, claim.EdgeClaimEntities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeClaimEntities:
		ids := make([]ent.Value, 0, len(m.removedclaim_entities))
		for id := range m.removedclaim_entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, claim.EdgeDocument)
	}
	if m.clearedclaim_entities {
		edges = append(edges, claim.EdgeClaimEntities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimMutation) EdgeCleared(name string) bool {
	switch name {
	case claim.EdgeDocument:
		return m.cleareddocument
	case claim.EdgeClaimEntities:
		return m.clearedclaim_entities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimMutation) ClearEdge(name string) error {
	switch name {
	case claim.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Claim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimMutation) ResetEdge(name string) error {
	switch name {
	case claim.EdgeDocument:
		m.ResetDocument()
		return nil
	case claim.EdgeClaimEntities:
		m.ResetClaimEntities()
		return nil
	}
	return fmt.Errorf("unknown Claim edge %s", name)
}

// ClaimEntityMutation represents an operation that mutates the ClaimEntity nodes in the graph.
type ClaimEntityMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	claim         *string
	clearedclaim  bool
	entity        *string
	clearedentity bool
	done          bool
	oldValue      func(context.Context) (*ClaimEntity, error)
	predicates    []predicate.ClaimEntity
}

var _ ent.Mutation = (*ClaimEntityMutation)(nil)

// claimentityOption allows management of the mutation configuration using functional options.
type claimentityOption func(*ClaimEntityMutation)

// newClaimEntityMutation creates new mutation for the ClaimEntity entity.
func newClaimEntityMutation(c config, op Op, opts ...claimentityOption) *ClaimEntityMutation {
	m := &ClaimEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimEntityID sets the ID field of the mutation.
func withClaimEntityID(id string) claimentityOption {
	return func(m *ClaimEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimEntity
		)
		m.oldValue = func(ctx context.Context) (*ClaimEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimEntity sets the old ClaimEntity of the mutation.
func withClaimEntity(node *ClaimEntity) claimentityOption {
	return func(m *ClaimEntityMutation) {
		m.oldValue = func(context.Context) (*ClaimEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClaimEntity entities.
func (m *ClaimEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimID sets the "claim_id" field.
func (m *ClaimEntityMutation) SetClaimID(s string) {
	m.claim = &s
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *ClaimEntityMutation) ClaimID() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the ClaimEntity entity.
// If the ClaimEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEntityMutation) OldClaimID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *ClaimEntityMutation) ResetClaimID() {
	m.claim = nil
}

// SetEntityID sets the "entity_id" field.
func (m *ClaimEntityMutation) SetEntityID(s string) {
	m.entity = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ClaimEntityMutation) EntityID() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the ClaimEntity entity.
// If the ClaimEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEntityMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ClaimEntityMutation) ResetEntityID() {
	m.entity = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClaimEntity entity.
// If the ClaimEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *ClaimEntityMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[claimentity.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *ClaimEntityMutation) ClaimCleared() bool {
	return m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *ClaimEntityMutation) ClaimIDs() (ids []string) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *ClaimEntityMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *ClaimEntityMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[claimentity.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *ClaimEntityMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *ClaimEntityMutation) EntityIDs() (ids []string) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *ClaimEntityMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// Where appends a list predicates to the ClaimEntityMutation builder.
func (m *ClaimEntityMutation) Where(ps ...predicate.ClaimEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimEntity).
func (m *ClaimEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimEntityMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.claim != nil {
		fields = append(fields, claimentity.FieldClaimID)
	}
	if m.entity != nil {
		fields = append(fields, claimentity.FieldEntityID)
	}
	if m.created_at != nil {
		fields = append(fields, claimentity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claimentity.FieldClaimID:
		return m.ClaimID()
	case claimentity.FieldEntityID:
		return m.EntityID()
	case claimentity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claimentity.FieldClaimID:
		return m.OldClaimID(ctx)
	case claimentity.FieldEntityID:
		return m.OldEntityID(ctx)
	case claimentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claimentity.FieldClaimID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case claimentity.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case claimentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimEntityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimEntityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClaimEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimEntityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimEntityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClaimEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimEntityMutation) ResetField(name string) error {
	switch name {
	case claimentity.FieldClaimID:
		m.ResetClaimID()
		return nil
	case claimentity.FieldEntityID:
		m.ResetEntityID()
		return nil
	case claimentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.claim != nil {
		edges = append(edges, claimentity.EdgeClaim)
	}
	if m.entity != nil {
		edges = append(edges, claimentity.EdgeEntity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimEntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claimentity.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	case claimentity.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclaim {
		edges = append(edges, claimentity.EdgeClaim)
	}
	if m.clearedentity {
		edges = append(edges, claimentity.EdgeEntity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimEntityMutation) EdgeCleared(name string) bool {
	switch name {
	case claimentity.EdgeClaim:
		return m.clearedclaim
	case claimentity.EdgeEntity:
		return m.clearedentity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimEntityMutation) ClearEdge(name string) error {
	switch name {
	case claimentity.EdgeClaim:
		m.ClearClaim()
		return nil
	case claimentity.EdgeEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown ClaimEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimEntityMutation) ResetEdge(name string) error {
	switch name {
	case claimentity.EdgeClaim:
		m.ResetClaim()
		return nil
	case claimentity.EdgeEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown ClaimEntity edge %s", name)
}

// ClaimGroupMutation represents an operation that mutates the ClaimGroup nodes in the graph.
type ClaimGroupMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	workflow_id            *string
	document_id            *string
	section_id             *string
	claim_hash             *string
	cluster_id             *string
	cluster_size           *int
	addcluster_size        *int
	decision               *string
	statement              *string
	canonical_statement    *string
	claim_type             *claimgroup.ClaimType
	confidence             *float64
	addconfidence          *float64
	entity_indices         *[]int
	appendentity_indices   []int
	similar_existing       *[]string
	appendsimilar_existing []string
	source_quote           *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ClaimGroup, error)
	predicates             []predicate.ClaimGroup
}

var _ ent.Mutation = (*ClaimGroupMutation)(nil)

// claimgroupOption allows management of the mutation configuration using functional options.
type claimgroupOption func(*ClaimGroupMutation)

// newClaimGroupMutation creates new mutation for the ClaimGroup entity.
func newClaimGroupMutation(c config, op Op, opts ...claimgroupOption) *ClaimGroupMutation {
	m := &ClaimGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimGroupID sets the ID field of the mutation.
func withClaimGroupID(id string) claimgroupOption {
	return func(m *ClaimGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimGroup
		)
		m.oldValue = func(ctx context.Context) (*ClaimGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimGroup sets the old ClaimGroup of the mutation.
func withClaimGroup(node *ClaimGroup) claimgroupOption {
	return func(m *ClaimGroupMutation) {
		m.oldValue = func(context.Context) (*ClaimGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClaimGroup entities.
func (m *ClaimGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ClaimGroupMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ClaimGroupMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ClaimGroupMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ClaimGroupMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ClaimGroupMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ClaimGroupMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetSectionID sets the "section_id" field.
func (m *ClaimGroupMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *ClaimGroupMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *ClaimGroupMutation) ResetSectionID() {
	m.section_id = nil
}

// SetClaimHash sets the "claim_hash" field.
func (m *ClaimGroupMutation) SetClaimHash(s string) {
	m.claim_hash = &s
}

// ClaimHash returns the value of the "claim_hash" field in the mutation.
func (m *ClaimGroupMutation) ClaimHash() (r string, exists bool) {
	v := m.claim_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimHash returns the old "claim_hash" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldClaimHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimHash: %w", err)
	}
	return oldValue.ClaimHash, nil
}

// ResetClaimHash resets all changes to the "claim_hash" field.
func (m *ClaimGroupMutation) ResetClaimHash() {
	m.claim_hash = nil
}

// SetClusterID sets the "cluster_id" field.
func (m *ClaimGroupMutation) SetClusterID(s string) {
	m.cluster_id = &s
}

// ClusterID returns the value of the "cluster_id" field in the mutation.
func (m *ClaimGroupMutation) ClusterID() (r string, exists bool) {
	v := m.cluster_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClusterID returns the old "cluster_id" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldClusterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusterID: %w", err)
	}
	return oldValue.ClusterID, nil
}

// ResetClusterID resets all changes to the "cluster_id" field.
func (m *ClaimGroupMutation) ResetClusterID() {
	m.cluster_id = nil
}

// SetClusterSize sets the "cluster_size" field.
func (m *ClaimGroupMutation) SetClusterSize(i int) {
	m.cluster_size = &i
	m.addcluster_size = nil
}

// ClusterSize returns the value of the "cluster_size" field in the mutation.
func (m *ClaimGroupMutation) ClusterSize() (r int, exists bool) {
	v := m.cluster_size
	if v == nil {
		return
	}
	return *v, true
}

// OldClusterSize returns the old "cluster_size" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldClusterSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusterSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusterSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusterSize: %w", err)
	}
	return oldValue.ClusterSize, nil
}

// AddClusterSize adds i to the "cluster_size" field.
func (m *ClaimGroupMutation) AddClusterSize(i int) {
	if m.addcluster_size != nil {
		*m.addcluster_size += i
	} else {
		m.addcluster_size = &i
	}
}

// AddedClusterSize returns the value that was added to the "cluster_size" field in this mutation.
func (m *ClaimGroupMutation) AddedClusterSize() (r int, exists bool) {
	v := m.addcluster_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetClusterSize resets all changes to the "cluster_size" field.
func (m *ClaimGroupMutation) ResetClusterSize() {
	m.cluster_size = nil
	m.addcluster_size = nil
}

// SetDecision sets the "decision" field.
func (m *ClaimGroupMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ClaimGroupMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ClaimGroupMutation) ResetDecision() {
	m.decision = nil
}

// SetStatement sets the "statement" field.
func (m *ClaimGroupMutation) SetStatement(s string) {
	m.statement = &s
}

// Statement returns the value of the "statement" field in the mutation.
func (m *ClaimGroupMutation) Statement() (r string, exists bool) {
	v := m.statement
	if v == nil {
		return
	}
	return *v, true
}

// OldStatement returns the old "statement" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldStatement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatement: %w", err)
	}
	return oldValue.Statement, nil
}

// ResetStatement resets all changes to the "statement" field.
func (m *ClaimGroupMutation) ResetStatement() {
	m.statement = nil
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (m *ClaimGroupMutation) SetCanonicalStatement(s string) {
	m.canonical_statement = &s
}

// CanonicalStatement returns the value of the "canonical_statement" field in the mutation.
func (m *ClaimGroupMutation) CanonicalStatement() (r string, exists bool) {
	v := m.canonical_statement
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalStatement returns the old "canonical_statement" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldCanonicalStatement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalStatement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalStatement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalStatement: %w", err)
	}
	return oldValue.CanonicalStatement, nil
}

// ResetCanonicalStatement resets all changes to the "canonical_statement" field.
func (m *ClaimGroupMutation) ResetCanonicalStatement() {
	m.canonical_statement = nil
}

// SetClaimType sets the "claim_type" field.
func (m *ClaimGroupMutation) SetClaimType(ct claimgroup.ClaimType) {
	m.claim_type = &ct
}

// ClaimType returns the value of the "claim_type" field in the mutation.
func (m *ClaimGroupMutation) ClaimType() (r claimgroup.ClaimType, exists bool) {
	v := m.claim_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimType returns the old "claim_type" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldClaimType(ctx context.Context) (v claimgroup.ClaimType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimType: %w", err)
	}
	return oldValue.ClaimType, nil
}

// ResetClaimType resets all changes to the "claim_type" field.
func (m *ClaimGroupMutation) ResetClaimType() {
	m.claim_type = nil
}

// SetConfidence sets the "confidence" field.
func (m *ClaimGroupMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ClaimGroupMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ClaimGroupMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ClaimGroupMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ClaimGroupMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEntityIndices sets the "entity_indices" field.
func (m *ClaimGroupMutation) SetEntityIndices(i []int) {
	m.entity_indices = &i
	m.appendentity_indices = nil
}

// EntityIndices returns the value of the "entity_indices" field in the mutation.
func (m *ClaimGroupMutation) EntityIndices() (r []int, exists bool) {
	v := m.entity_indices
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityIndices returns the old "entity_indices" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldEntityIndices(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityIndices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityIndices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityIndices: %w", err)
	}
	return oldValue.EntityIndices, nil
}

// AppendEntityIndices adds i to the "entity_indices" field.
func (m *ClaimGroupMutation) AppendEntityIndices(i []int) {
	m.appendentity_indices = append(m.appendentity_indices, i...)
}

// AppendedEntityIndices returns the list of values that were appended to the "entity_indices" field in this mutation.
func (m *ClaimGroupMutation) AppendedEntityIndices() ([]int, bool) {
	if len(m.appendentity_indices) == 0 {
		return nil, false
	}
	return m.appendentity_indices, true
}

// ClearEntityIndices clears the value of the "entity_indices" field.
func (m *ClaimGroupMutation) ClearEntityIndices() {
	m.entity_indices = nil
	m.appendentity_indices = nil
	m.clearedFields[claimgroup.FieldEntityIndices] = struct{}{}
}

// EntityIndicesCleared returns if the "entity_indices" field was cleared in this mutation.
func (m *ClaimGroupMutation) EntityIndicesCleared() bool {
	_, ok := m.clearedFields[claimgroup.FieldEntityIndices]
	return ok
}

// ResetEntityIndices resets all changes to the "entity_indices" field.
func (m *ClaimGroupMutation) ResetEntityIndices() {
	m.entity_indices = nil
	m.appendentity_indices = nil
	delete(m.clearedFields, claimgroup.FieldEntityIndices)
}

// SetSimilarExisting sets the "similar_existing" field.
func (m *ClaimGroupMutation) SetSimilarExisting(s []string) {
	m.similar_existing = &s
	m.appendsimilar_existing = nil
}

// SimilarExisting returns the value of the "similar_existing" field in the mutation.
func (m *ClaimGroupMutation) SimilarExisting() (r []string, exists bool) {
	v := m.similar_existing
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarExisting returns the old "similar_existing" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldSimilarExisting(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarExisting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarExisting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarExisting: %w", err)
	}
	return oldValue.SimilarExisting, nil
}

// AppendSimilarExisting adds s to the "similar_existing" field.
func (m *ClaimGroupMutation) AppendSimilarExisting(s []string) {
	m.appendsimilar_existing = append(m.appendsimilar_existing, s...)
}

// AppendedSimilarExisting returns the list of values that were appended to the "similar_existing" field in this mutation.
func (m *ClaimGroupMutation) AppendedSimilarExisting() ([]string, bool) {
	if len(m.appendsimilar_existing) == 0 {
		return nil, false
	}
	return m.appendsimilar_existing, true
}

// ClearSimilarExisting clears the value of the "similar_existing" field.
func (m *ClaimGroupMutation) ClearSimilarExisting() {
	m.similar_existing = nil
	m.appendsimilar_existing = nil
	m.clearedFields[claimgroup.FieldSimilarExisting] = struct{}{}
}

// SimilarExistingCleared returns if the "similar_existing" field was cleared in this mutation.
func (m *ClaimGroupMutation) SimilarExistingCleared() bool {
	_, ok := m.clearedFields[claimgroup.FieldSimilarExisting]
	return ok
}

// ResetSimilarExisting resets all changes to the "similar_existing" field.
func (m *ClaimGroupMutation) ResetSimilarExisting() {
	m.similar_existing = nil
	m.appendsimilar_existing = nil
	delete(m.clearedFields, claimgroup.FieldSimilarExisting)
}

// SetSourceQuote sets the "source_quote" field.
func (m *ClaimGroupMutation) SetSourceQuote(s string) {
	m.source_quote = &s
}

// SourceQuote returns the value of the "source_quote" field in the mutation.
func (m *ClaimGroupMutation) SourceQuote() (r string, exists bool) {
	v := m.source_quote
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceQuote returns the old "source_quote" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldSourceQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceQuote: %w", err)
	}
	return oldValue.SourceQuote, nil
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (m *ClaimGroupMutation) ClearSourceQuote() {
	m.source_quote = nil
	m.clearedFields[claimgroup.FieldSourceQuote] = struct{}{}
}

// SourceQuoteCleared returns if the "source_quote" field was cleared in this mutation.
func (m *ClaimGroupMutation) SourceQuoteCleared() bool {
	_, ok := m.clearedFields[claimgroup.FieldSourceQuote]
	return ok
}

// ResetSourceQuote resets all changes to the "source_quote" field.
func (m *ClaimGroupMutation) ResetSourceQuote() {
	m.source_quote = nil
	delete(m.clearedFields, claimgroup.FieldSourceQuote)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClaimGroup entity.
// If the ClaimGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ClaimGroupMutation builder.
func (m *ClaimGroupMutation) Where(ps ...predicate.ClaimGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimGroup).
func (m *ClaimGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimGroupMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.workflow_id != nil {
		fields = append(fields, claimgroup.FieldWorkflowID)
	}
	if m.document_id != nil {
		fields = append(fields, claimgroup.FieldDocumentID)
	}
	if m.section_id != nil {
		fields = append(fields, claimgroup.FieldSectionID)
	}
	if m.claim_hash != nil {
		fields = append(fields, claimgroup.FieldClaimHash)
	}
	if m.cluster_id != nil {
		fields = append(fields, claimgroup.FieldClusterID)
	}
	if m.cluster_size != nil {
		fields = append(fields, claimgroup.FieldClusterSize)
	}
	if m.decision != nil {
		fields = append(fields, claimgroup.FieldDecision)
	}
	if m.statement != nil {
		fields = append(fields, claimgroup.FieldStatement)
	}
	if m.canonical_statement != nil {
		fields = append(fields, claimgroup.FieldCanonicalStatement)
	}
	if m.claim_type != nil {
		fields = append(fields, claimgroup.FieldClaimType)
	}
	if m.confidence != nil {
		fields = append(fields, claimgroup.FieldConfidence)
	}
	if m.entity_indices != nil {
		fields = append(fields, claimgroup.FieldEntityIndices)
	}
	if m.similar_existing != nil {
		fields = append(fields, claimgroup.FieldSimilarExisting)
	}
	if m.source_quote != nil {
		fields = append(fields, claimgroup.FieldSourceQuote)
	}
	if m.created_at != nil {
		fields = append(fields, claimgroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claimgroup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claimgroup.FieldWorkflowID:
		return m.WorkflowID()
	case claimgroup.FieldDocumentID:
		return m.DocumentID()
	case claimgroup.FieldSectionID:
		return m.SectionID()
	case claimgroup.FieldClaimHash:
		return m.ClaimHash()
	case claimgroup.FieldClusterID:
		return m.ClusterID()
	case claimgroup.FieldClusterSize:
		return m.ClusterSize()
	case claimgroup.FieldDecision:
		return m.Decision()
	case claimgroup.FieldStatement:
		return m.Statement()
	case claimgroup.FieldCanonicalStatement:
		return m.CanonicalStatement()
	case claimgroup.FieldClaimType:
		return m.ClaimType()
	case claimgroup.FieldConfidence:
		return m.Confidence()
	case claimgroup.FieldEntityIndices:
		return m.EntityIndices()
	case claimgroup.FieldSimilarExisting:
		return m.SimilarExisting()
	case claimgroup.FieldSourceQuote:
		return m.SourceQuote()
	case claimgroup.FieldCreatedAt:
		return m.CreatedAt()
	case claimgroup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claimgroup.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case claimgroup.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case claimgroup.FieldSectionID:
		return m.OldSectionID(ctx)
	case claimgroup.FieldClaimHash:
		return m.OldClaimHash(ctx)
	case claimgroup.FieldClusterID:
		return m.OldClusterID(ctx)
	case claimgroup.FieldClusterSize:
		return m.OldClusterSize(ctx)
	case claimgroup.FieldDecision:
		return m.OldDecision(ctx)
	case claimgroup.FieldStatement:
		return m.OldStatement(ctx)
	case claimgroup.FieldCanonicalStatement:
		return m.OldCanonicalStatement(ctx)
	case claimgroup.FieldClaimType:
		return m.OldClaimType(ctx)
	case claimgroup.FieldConfidence:
		return m.OldConfidence(ctx)
	case claimgroup.FieldEntityIndices:
		return m.OldEntityIndices(ctx)
	case claimgroup.FieldSimilarExisting:
		return m.OldSimilarExisting(ctx)
	case claimgroup.FieldSourceQuote:
		return m.OldSourceQuote(ctx)
	case claimgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claimgroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claimgroup.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case claimgroup.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case claimgroup.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case claimgroup.FieldClaimHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimHash(v)
		return nil
	case claimgroup.FieldClusterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusterID(v)
		return nil
	case claimgroup.FieldClusterSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusterSize(v)
		return nil
	case claimgroup.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case claimgroup.FieldStatement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatement(v)
		return nil
	case claimgroup.FieldCanonicalStatement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalStatement(v)
		return nil
	case claimgroup.FieldClaimType:
		v, ok := value.(claimgroup.ClaimType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimType(v)
		return nil
	case claimgroup.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case claimgroup.FieldEntityIndices:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityIndices(v)
		return nil
	case claimgroup.FieldSimilarExisting:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarExisting(v)
		return nil
	case claimgroup.FieldSourceQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceQuote(v)
		return nil
	case claimgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claimgroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimGroupMutation) AddedFields() []string {
	var fields []string
	if m.addcluster_size != nil {
		fields = append(fields, claimgroup.FieldClusterSize)
	}
	if m.addconfidence != nil {
		fields = append(fields, claimgroup.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claimgroup.FieldClusterSize:
		return m.AddedClusterSize()
	case claimgroup.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claimgroup.FieldClusterSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClusterSize(v)
		return nil
	case claimgroup.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claimgroup.FieldEntityIndices) {
		fields = append(fields, claimgroup.FieldEntityIndices)
	}
	if m.FieldCleared(claimgroup.FieldSimilarExisting) {
		fields = append(fields, claimgroup.FieldSimilarExisting)
	}
	if m.FieldCleared(claimgroup.FieldSourceQuote) {
		fields = append(fields, claimgroup.FieldSourceQuote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimGroupMutation) ClearField(name string) error {
	switch name {
	case claimgroup.FieldEntityIndices:
		m.ClearEntityIndices()
		return nil
	case claimgroup.FieldSimilarExisting:
		m.ClearSimilarExisting()
		return nil
	case claimgroup.FieldSourceQuote:
		m.ClearSourceQuote()
		return nil
	}
	return fmt.Errorf("unknown ClaimGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimGroupMutation) ResetField(name string) error {
	switch name {
	case claimgroup.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case claimgroup.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case claimgroup.FieldSectionID:
		m.ResetSectionID()
		return nil
	case claimgroup.FieldClaimHash:
		m.ResetClaimHash()
		return nil
	case claimgroup.FieldClusterID:
		m.ResetClusterID()
		return nil
	case claimgroup.FieldClusterSize:
		m.ResetClusterSize()
		return nil
	case claimgroup.FieldDecision:
		m.ResetDecision()
		return nil
	case claimgroup.FieldStatement:
		m.ResetStatement()
		return nil
	case claimgroup.FieldCanonicalStatement:
		m.ResetCanonicalStatement()
		return nil
	case claimgroup.FieldClaimType:
		m.ResetClaimType()
		return nil
	case claimgroup.FieldConfidence:
		m.ResetConfidence()
		return nil
	case claimgroup.FieldEntityIndices:
		m.ResetEntityIndices()
		return nil
	case claimgroup.FieldSimilarExisting:
		m.ResetSimilarExisting()
		return nil
	case claimgroup.FieldSourceQuote:
		m.ResetSourceQuote()
		return nil
	case claimgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claimgroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimGroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimGroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimGroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClaimGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimGroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClaimGroup edge %s", name)
}

// ClaimResolutionMutation represents an operation that mutates the ClaimResolution nodes in the graph.
type ClaimResolutionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	workflow_id             *string
	document_id             *string
	claim_hash              *string
	decision                *string
	resolution_action       *claimresolution.ResolutionAction
	resolved_claim_id       *string
	linked_entity_ids       *[]string
	appendlinked_entity_ids []string
	resolution_metadata     *map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ClaimResolution, error)
	predicates              []predicate.ClaimResolution
}

var _ ent.Mutation = (*ClaimResolutionMutation)(nil)

// claimresolutionOption allows management of the mutation configuration using functional options.
type claimresolutionOption func(*ClaimResolutionMutation)

// newClaimResolutionMutation creates new mutation for the ClaimResolution entity.
func newClaimResolutionMutation(c config, op Op, opts ...claimresolutionOption) *ClaimResolutionMutation {
	m := &ClaimResolutionMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimResolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimResolutionID sets the ID field of the mutation.
func withClaimResolutionID(id string) claimresolutionOption {
	return func(m *ClaimResolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimResolution
		)
		m.oldValue = func(ctx context.Context) (*ClaimResolution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimResolution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimResolution sets the old ClaimResolution of the mutation.
func withClaimResolution(node *ClaimResolution) claimresolutionOption {
	return func(m *ClaimResolutionMutation) {
		m.oldValue = func(context.Context) (*ClaimResolution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimResolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimResolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClaimResolution entities.
func (m *ClaimResolutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimResolutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimResolutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimResolution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ClaimResolutionMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ClaimResolutionMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ClaimResolutionMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ClaimResolutionMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ClaimResolutionMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ClaimResolutionMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetClaimHash sets the "claim_hash" field.
func (m *ClaimResolutionMutation) SetClaimHash(s string) {
	m.claim_hash = &s
}

// ClaimHash returns the value of the "claim_hash" field in the mutation.
func (m *ClaimResolutionMutation) ClaimHash() (r string, exists bool) {
	v := m.claim_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimHash returns the old "claim_hash" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldClaimHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimHash: %w", err)
	}
	return oldValue.ClaimHash, nil
}

// ResetClaimHash resets all changes to the "claim_hash" field.
func (m *ClaimResolutionMutation) ResetClaimHash() {
	m.claim_hash = nil
}

// SetDecision sets the "decision" field.
func (m *ClaimResolutionMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ClaimResolutionMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ClaimResolutionMutation) ResetDecision() {
	m.decision = nil
}

// SetResolutionAction sets the "resolution_action" field.
func (m *ClaimResolutionMutation) SetResolutionAction(ca claimresolution.ResolutionAction) {
	m.resolution_action = &ca
}

// ResolutionAction returns the value of the "resolution_action" field in the mutation.
func (m *ClaimResolutionMutation) ResolutionAction() (r claimresolution.ResolutionAction, exists bool) {
	v := m.resolution_action
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionAction returns the old "resolution_action" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldResolutionAction(ctx context.Context) (v claimresolution.ResolutionAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionAction: %w", err)
	}
	return oldValue.ResolutionAction, nil
}

// ResetResolutionAction resets all changes to the "resolution_action" field.
func (m *ClaimResolutionMutation) ResetResolutionAction() {
	m.resolution_action = nil
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (m *ClaimResolutionMutation) SetResolvedClaimID(s string) {
	m.resolved_claim_id = &s
}

// ResolvedClaimID returns the value of the "resolved_claim_id" field in the mutation.
func (m *ClaimResolutionMutation) ResolvedClaimID() (r string, exists bool) {
	v := m.resolved_claim_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedClaimID returns the old "resolved_claim_id" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldResolvedClaimID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedClaimID: %w", err)
	}
	return oldValue.ResolvedClaimID, nil
}

// ClearResolvedClaimID clears the value of the "resolved_claim_id" field.
func (m *ClaimResolutionMutation) ClearResolvedClaimID() {
	m.resolved_claim_id = nil
	m.clearedFields[claimresolution.FieldResolvedClaimID] = struct{}{}
}

// ResolvedClaimIDCleared returns if the "resolved_claim_id" field was cleared in this mutation.
func (m *ClaimResolutionMutation) ResolvedClaimIDCleared() bool {
	_, ok := m.clearedFields[claimresolution.FieldResolvedClaimID]
	return ok
}

// ResetResolvedClaimID resets all changes to the "resolved_claim_id" field.
func (m *ClaimResolutionMutation) ResetResolvedClaimID() {
	m.resolved_claim_id = nil
	delete(m.clearedFields, claimresolution.FieldResolvedClaimID)
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (m *ClaimResolutionMutation) SetLinkedEntityIds(s []string) {
	m.linked_entity_ids = &s
	m.appendlinked_entity_ids = nil
}

// LinkedEntityIds returns the value of the "linked_entity_ids" field in the mutation.
func (m *ClaimResolutionMutation) LinkedEntityIds() (r []string, exists bool) {
	v := m.linked_entity_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedEntityIds returns the old "linked_entity_ids" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldLinkedEntityIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedEntityIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedEntityIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedEntityIds: %w", err)
	}
	return oldValue.LinkedEntityIds, nil
}

// AppendLinkedEntityIds adds s to the "linked_entity_ids" field.
func (m *ClaimResolutionMutation) AppendLinkedEntityIds(s []string) {
	m.appendlinked_entity_ids = append(m.appendlinked_entity_ids, s...)
}

// AppendedLinkedEntityIds returns the list of values that were appended to the "linked_entity_ids" field in this mutation.
func (m *ClaimResolutionMutation) AppendedLinkedEntityIds() ([]string, bool) {
	if len(m.appendlinked_entity_ids) == 0 {
		return nil, false
	}
	return m.appendlinked_entity_ids, true
}

// ClearLinkedEntityIds clears the value of the "linked_entity_ids" field.
func (m *ClaimResolutionMutation) ClearLinkedEntityIds() {
	m.linked_entity_ids = nil
	m.appendlinked_entity_ids = nil
	m.clearedFields[claimresolution.FieldLinkedEntityIds] = struct{}{}
}

// LinkedEntityIdsCleared returns if the "linked_entity_ids" field was cleared in this mutation.
func (m *ClaimResolutionMutation) LinkedEntityIdsCleared() bool {
	_, ok := m.clearedFields[claimresolution.FieldLinkedEntityIds]
	return ok
}

// ResetLinkedEntityIds resets all changes to the "linked_entity_ids" field.
func (m *ClaimResolutionMutation) ResetLinkedEntityIds() {
	m.linked_entity_ids = nil
	m.appendlinked_entity_ids = nil
	delete(m.clearedFields, claimresolution.FieldLinkedEntityIds)
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (m *ClaimResolutionMutation) SetResolutionMetadata(value map[string]interface{}) {
	m.resolution_metadata = &value
}

// ResolutionMetadata returns the value of the "resolution_metadata" field in the mutation.
func (m *ClaimResolutionMutation) ResolutionMetadata() (r map[string]interface{}, exists bool) {
	v := m.resolution_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionMetadata returns the old "resolution_metadata" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldResolutionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionMetadata: %w", err)
	}
	return oldValue.ResolutionMetadata, nil
}

// ClearResolutionMetadata clears the value of the "resolution_metadata" field.
func (m *ClaimResolutionMutation) ClearResolutionMetadata() {
	m.resolution_metadata = nil
	m.clearedFields[claimresolution.FieldResolutionMetadata] = struct{}{}
}

// ResolutionMetadataCleared returns if the "resolution_metadata" field was cleared in this mutation.
func (m *ClaimResolutionMutation) ResolutionMetadataCleared() bool {
	_, ok := m.clearedFields[claimresolution.FieldResolutionMetadata]
	return ok
}

// ResetResolutionMetadata resets all changes to the "resolution_metadata" field.
func (m *ClaimResolutionMutation) ResetResolutionMetadata() {
	m.resolution_metadata = nil
	delete(m.clearedFields, claimresolution.FieldResolutionMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimResolutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimResolutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimResolutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimResolutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimResolutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClaimResolution entity.
// If the ClaimResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimResolutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimResolutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ClaimResolutionMutation builder.
func (m *ClaimResolutionMutation) Where(ps ...predicate.ClaimResolution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimResolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimResolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimResolution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimResolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimResolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimResolution).
func (m *ClaimResolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimResolutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workflow_id != nil {
		fields = append(fields, claimresolution.FieldWorkflowID)
	}
	if m.document_id != nil {
		fields = append(fields, claimresolution.FieldDocumentID)
	}
	if m.claim_hash != nil {
		fields = append(fields, claimresolution.FieldClaimHash)
	}
	if m.decision != nil {
		fields = append(fields, claimresolution.FieldDecision)
	}
	if m.resolution_action != nil {
		fields = append(fields, claimresolution.FieldResolutionAction)
	}
	if m.resolved_claim_id != nil {
		fields = append(fields, claimresolution.FieldResolvedClaimID)
	}
	if m.linked_entity_ids != nil {
		fields = append(fields, claimresolution.FieldLinkedEntityIds)
	}
	if m.resolution_metadata != nil {
		fields = append(fields, claimresolution.FieldResolutionMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, claimresolution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claimresolution.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimResolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claimresolution.FieldWorkflowID:
		return m.WorkflowID()
	case claimresolution.FieldDocumentID:
		return m.DocumentID()
	case claimresolution.FieldClaimHash:
		return m.ClaimHash()
	case claimresolution.FieldDecision:
		return m.Decision()
	case claimresolution.FieldResolutionAction:
		return m.ResolutionAction()
	case claimresolution.FieldResolvedClaimID:
		return m.ResolvedClaimID()
	case claimresolution.FieldLinkedEntityIds:
		return m.LinkedEntityIds()
	case claimresolution.FieldResolutionMetadata:
		return m.ResolutionMetadata()
	case claimresolution.FieldCreatedAt:
		return m.CreatedAt()
	case claimresolution.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimResolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claimresolution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case claimresolution.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case claimresolution.FieldClaimHash:
		return m.OldClaimHash(ctx)
	case claimresolution.FieldDecision:
		return m.OldDecision(ctx)
	case claimresolution.FieldResolutionAction:
		return m.OldResolutionAction(ctx)
	case claimresolution.FieldResolvedClaimID:
		return m.OldResolvedClaimID(ctx)
	case claimresolution.FieldLinkedEntityIds:
		return m.OldLinkedEntityIds(ctx)
	case claimresolution.FieldResolutionMetadata:
		return m.OldResolutionMetadata(ctx)
	case claimresolution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claimresolution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimResolution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimResolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claimresolution.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case claimresolution.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case claimresolution.FieldClaimHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimHash(v)
		return nil
	case claimresolution.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case claimresolution.FieldResolutionAction:
		v, ok := value.(claimresolution.ResolutionAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionAction(v)
		return nil
	case claimresolution.FieldResolvedClaimID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedClaimID(v)
		return nil
	case claimresolution.FieldLinkedEntityIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedEntityIds(v)
		return nil
	case claimresolution.FieldResolutionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionMetadata(v)
		return nil
	case claimresolution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claimresolution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimResolution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimResolutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimResolutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimResolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClaimResolution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimResolutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claimresolution.FieldResolvedClaimID) {
		fields = append(fields, claimresolution.FieldResolvedClaimID)
	}
	if m.FieldCleared(claimresolution.FieldLinkedEntityIds) {
		fields = append(fields, claimresolution.FieldLinkedEntityIds)
	}
	if m.FieldCleared(claimresolution.FieldResolutionMetadata) {
		fields = append(fields, claimresolution.FieldResolutionMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimResolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimResolutionMutation) ClearField(name string) error {
	switch name {
	case claimresolution.FieldResolvedClaimID:
		m.ClearResolvedClaimID()
		return nil
	case claimresolution.FieldLinkedEntityIds:
		m.ClearLinkedEntityIds()
		return nil
	case claimresolution.FieldResolutionMetadata:
		m.ClearResolutionMetadata()
		return nil
	}
	return fmt.Errorf("unknown ClaimResolution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimResolutionMutation) ResetField(name string) error {
	switch name {
	case claimresolution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case claimresolution.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case claimresolution.FieldClaimHash:
		m.ResetClaimHash()
		return nil
	case claimresolution.FieldDecision:
		m.ResetDecision()
		return nil
	case claimresolution.FieldResolutionAction:
		m.ResetResolutionAction()
		return nil
	case claimresolution.FieldResolvedClaimID:
		m.ResetResolvedClaimID()
		return nil
	case claimresolution.FieldLinkedEntityIds:
		m.ResetLinkedEntityIds()
		return nil
	case claimresolution.FieldResolutionMetadata:
		m.ResetResolutionMetadata()
		return nil
	case claimresolution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claimresolution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimResolution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimResolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimResolutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimResolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimResolutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimResolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimResolutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimResolutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClaimResolution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimResolutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClaimResolution edge %s", name)
}

// DiscoveryMutation represents an operation that mutates the Discovery nodes in the graph.
type DiscoveryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workflow_id   *string
	document_id   *string
	method        *discovery.Method
	status        *discovery.Status
	detail        *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Discovery, error)
	predicates    []predicate.Discovery
}

var _ ent.Mutation = (*DiscoveryMutation)(nil)

// discoveryOption allows management of the mutation configuration using functional options.
type discoveryOption func(*DiscoveryMutation)

// newDiscoveryMutation creates new mutation for the Discovery entity.
func newDiscoveryMutation(c config, op Op, opts ...discoveryOption) *DiscoveryMutation {
	m := &DiscoveryMutation{
		config:        c,
		op:            op,
		typ:           TypeDiscovery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiscoveryID sets the ID field of the mutation.
func withDiscoveryID(id string) discoveryOption {
	return func(m *DiscoveryMutation) {
		var (
			err   error
			once  sync.Once
			value *Discovery
		)
		m.oldValue = func(ctx context.Context) (*Discovery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Discovery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiscovery sets the old Discovery of the mutation.
func withDiscovery(node *Discovery) discoveryOption {
	return func(m *DiscoveryMutation) {
		m.oldValue = func(context.Context) (*Discovery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiscoveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiscoveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Discovery entities.
func (m *DiscoveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiscoveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiscoveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Discovery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *DiscoveryMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *DiscoveryMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *DiscoveryMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *DiscoveryMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DiscoveryMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DiscoveryMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetMethod sets the "method" field.
func (m *DiscoveryMutation) SetMethod(d discovery.Method) {
	m.method = &d
}

// Method returns the value of the "method" field in the mutation.
func (m *DiscoveryMutation) Method() (r discovery.Method, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldMethod(ctx context.Context) (v discovery.Method, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *DiscoveryMutation) ResetMethod() {
	m.method = nil
}

// SetStatus sets the "status" field.
func (m *DiscoveryMutation) SetStatus(d discovery.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DiscoveryMutation) Status() (r discovery.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldStatus(ctx context.Context) (v discovery.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DiscoveryMutation) ResetStatus() {
	m.status = nil
}

// SetDetail sets the "detail" field.
func (m *DiscoveryMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *DiscoveryMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *DiscoveryMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[discovery.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *DiscoveryMutation) DetailCleared() bool {
	_, ok := m.clearedFields[discovery.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *DiscoveryMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, discovery.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *DiscoveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DiscoveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DiscoveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DiscoveryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DiscoveryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Discovery entity.
// If the Discovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DiscoveryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DiscoveryMutation builder.
func (m *DiscoveryMutation) Where(ps ...predicate.Discovery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiscoveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiscoveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Discovery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiscoveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiscoveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Discovery).
func (m *DiscoveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiscoveryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workflow_id != nil {
		fields = append(fields, discovery.FieldWorkflowID)
	}
	if m.document_id != nil {
		fields = append(fields, discovery.FieldDocumentID)
	}
	if m.method != nil {
		fields = append(fields, discovery.FieldMethod)
	}
	if m.status != nil {
		fields = append(fields, discovery.FieldStatus)
	}
	if m.detail != nil {
		fields = append(fields, discovery.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, discovery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, discovery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiscoveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case discovery.FieldWorkflowID:
		return m.WorkflowID()
	case discovery.FieldDocumentID:
		return m.DocumentID()
	case discovery.FieldMethod:
		return m.Method()
	case discovery.FieldStatus:
		return m.Status()
	case discovery.FieldDetail:
		return m.Detail()
	case discovery.FieldCreatedAt:
		return m.CreatedAt()
	case discovery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiscoveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case discovery.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case discovery.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case discovery.FieldMethod:
		return m.OldMethod(ctx)
	case discovery.FieldStatus:
		return m.OldStatus(ctx)
	case discovery.FieldDetail:
		return m.OldDetail(ctx)
	case discovery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case discovery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Discovery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscoveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case discovery.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case discovery.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case discovery.FieldMethod:
		v, ok := value.(discovery.Method)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case discovery.FieldStatus:
		v, ok := value.(discovery.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case discovery.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case discovery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case discovery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Discovery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiscoveryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiscoveryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscoveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Discovery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiscoveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(discovery.FieldDetail) {
		fields = append(fields, discovery.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiscoveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiscoveryMutation) ClearField(name string) error {
	switch name {
	case discovery.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown Discovery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiscoveryMutation) ResetField(name string) error {
	switch name {
	case discovery.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case discovery.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case discovery.FieldMethod:
		m.ResetMethod()
		return nil
	case discovery.FieldStatus:
		m.ResetStatus()
		return nil
	case discovery.FieldDetail:
		m.ResetDetail()
		return nil
	case discovery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case discovery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Discovery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiscoveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiscoveryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiscoveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiscoveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiscoveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiscoveryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiscoveryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Discovery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiscoveryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Discovery edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	source_url               *string
	source_type              *document.SourceType
	title                    *string
	description              *string
	content_path             *string
	content_hash             *string
	indexed_with_hash        *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	document_entities        map[string]struct{}
	removeddocument_entities map[string]struct{}
	cleareddocument_entities bool
	claims                   map[string]struct{}
	removedclaims            map[string]struct{}
	clearedclaims            bool
	done                     bool
	oldValue                 func(context.Context) (*Document, error)
	predicates               []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceURL sets the "source_url" field.
func (m *DocumentMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *DocumentMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *DocumentMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetSourceType sets the "source_type" field.
func (m *DocumentMutation) SetSourceType(dt document.SourceType) {
	m.source_type = &dt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DocumentMutation) SourceType() (r document.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceType(ctx context.Context) (v document.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DocumentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocumentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[document.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[document.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, document.FieldTitle)
}

// SetDescription sets the "description" field.
func (m *DocumentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DocumentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DocumentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[document.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DocumentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[document.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DocumentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, document.FieldDescription)
}

// SetContentPath sets the "content_path" field.
func (m *DocumentMutation) SetContentPath(s string) {
	m.content_path = &s
}

// ContentPath returns the value of the "content_path" field in the mutation.
func (m *DocumentMutation) ContentPath() (r string, exists bool) {
	v := m.content_path
	if v == nil {
		return
	}
	return *v, true
}

// OldContentPath returns the old "content_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentPath: %w", err)
	}
	return oldValue.ContentPath, nil
}

// ClearContentPath clears the value of the "content_path" field.
func (m *DocumentMutation) ClearContentPath() {
	m.content_path = nil
	m.clearedFields[document.FieldContentPath] = struct{}{}
}

// ContentPathCleared returns if the "content_path" field was cleared in this mutation.
func (m *DocumentMutation) ContentPathCleared() bool {
	_, ok := m.clearedFields[document.FieldContentPath]
	return ok
}

// ResetContentPath resets all changes to the "content_path" field.
func (m *DocumentMutation) ResetContentPath() {
	m.content_path = nil
	delete(m.clearedFields, document.FieldContentPath)
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *DocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[document.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *DocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[document.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, document.FieldContentHash)
}

// SetIndexedWithHash sets the "indexed_with_hash" field.
func (m *DocumentMutation) SetIndexedWithHash(s string) {
	m.indexed_with_hash = &s
}

// IndexedWithHash returns the value of the "indexed_with_hash" field in the mutation.
func (m *DocumentMutation) IndexedWithHash() (r string, exists bool) {
	v := m.indexed_with_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldIndexedWithHash returns the old "indexed_with_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIndexedWithHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndexedWithHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndexedWithHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndexedWithHash: %w", err)
	}
	return oldValue.IndexedWithHash, nil
}

// ClearIndexedWithHash clears the value of the "indexed_with_hash" field.
func (m *DocumentMutation) ClearIndexedWithHash() {
	m.indexed_with_hash = nil
	m.clearedFields[document.FieldIndexedWithHash] = struct{}{}
}

// IndexedWithHashCleared returns if the "indexed_with_hash" field was cleared in this mutation.
func (m *DocumentMutation) IndexedWithHashCleared() bool {
	_, ok := m.clearedFields[document.FieldIndexedWithHash]
	return ok
}

// ResetIndexedWithHash resets all changes to the "indexed_with_hash" field.
func (m *DocumentMutation) ResetIndexedWithHash() {
	m.indexed_with_hash = nil
	delete(m.clearedFields, document.FieldIndexedWithHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentEntityIDs adds the "document_entities" edge to the DocumentEntity entity by ids.
func (m *DocumentMutation) AddDocumentEntityIDs(ids ...string) {
	if m.document_entities == nil {
		m.document_entities = make(map[string]struct{})
	}
	for i := range ids {
		m.document_entities[ids[i]] = struct{}{}
	}
}

// ClearDocumentEntities clears the "document_entities" edge to the DocumentEntity entity.
func (m *DocumentMutation) ClearDocumentEntities() {
	m.cleareddocument_entities = true
}

// DocumentEntitiesCleared reports if the "document_entities" edge to the DocumentEntity entity was cleared.
func (m *DocumentMutation) DocumentEntitiesCleared() bool {
	return m.cleareddocument_entities
}

// RemoveDocumentEntityIDs removes the "document_entities" edge to the DocumentEntity entity by IDs.
func (m *DocumentMutation) RemoveDocumentEntityIDs(ids ...string) {
	if m.removeddocument_entities == nil {
		m.removeddocument_entities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_entities, ids[i])
		m.removeddocument_entities[ids[i]] = struct{}{}
	}
}

// RemovedDocumentEntities returns the removed IDs of the "document_entities" edge to the DocumentEntity entity.
func (m *DocumentMutation) RemovedDocumentEntitiesIDs() (ids []string) {
	for id := range m.removeddocument_entities {
		ids = append(ids, id)
	}
	return
}

// DocumentEntitiesIDs returns the "document_entities" edge IDs in the mutation.
func (m *DocumentMutation) DocumentEntitiesIDs() (ids []string) {
	for id := range m.document_entities {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentEntities resets all changes to the "document_entities" edge.
func (m *DocumentMutation) ResetDocumentEntities() {
	m.document_entities = nil
	m.cleareddocument_entities = false
	m.removeddocument_entities = nil
}

// AddClaimIDs adds the "claims" edge to the Claim entity by ids.
func (m *DocumentMutation) AddClaimIDs(ids ...string) {
	if m.claims == nil {
		m.claims = make(map[string]struct{})
	}
	for i := range ids {
		m.claims[ids[i]] = struct{}{}
	}
}

// ClearClaims clears the "claims" edge to the Claim entity.
func (m *DocumentMutation) ClearClaims() {
	m.clearedclaims = true
}

// ClaimsCleared reports if the "claims" edge to the Claim entity was cleared.
func (m *DocumentMutation) ClaimsCleared() bool {
	return m.clearedclaims
}

// RemoveClaimIDs removes the "claims" edge to the Claim entity by IDs.
func (m *DocumentMutation) RemoveClaimIDs(ids ...string) {
	if m.removedclaims == nil {
		m.removedclaims = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claims, ids[i])
		m.removedclaims[ids[i]] = struct{}{}
	}
}

// RemovedClaims returns the removed IDs of the "claims" edge to the Claim entity.
func (m *DocumentMutation) RemovedClaimsIDs() (ids []string) {
	for id := range m.removedclaims {
		ids = append(ids, id)
	}
	return
}

// ClaimsIDs returns the "claims" edge IDs in the mutation.
func (m *DocumentMutation) ClaimsIDs() (ids []string) {
	for id := range m.claims {
		ids = append(ids, id)
	}
	return
}

// ResetClaims resets all changes to the "claims" edge.
func (m *DocumentMutation) ResetClaims() {
	m.claims = nil
	m.clearedclaims = false
	m.removedclaims = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_url != nil {
		fields = append(fields, document.FieldSourceURL)
	}
	if m.source_type != nil {
		fields = append(fields, document.FieldSourceType)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, document.FieldDescription)
	}
	if m.content_path != nil {
		fields = append(fields, document.FieldContentPath)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.indexed_with_hash != nil {
		fields = append(fields, document.FieldIndexedWithHash)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSourceURL:
		return m.SourceURL()
	case document.FieldSourceType:
		return m.SourceType()
	case document.FieldTitle:
		return m.Title()
	case document.FieldDescription:
		return m.Description()
	case document.FieldContentPath:
		return m.ContentPath()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldIndexedWithHash:
		return m.IndexedWithHash()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case document.FieldSourceType:
		return m.OldSourceType(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldDescription:
		return m.OldDescription(ctx)
	case document.FieldContentPath:
		return m.OldContentPath(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldIndexedWithHash:
		return m.OldIndexedWithHash(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case document.FieldSourceType:
		v, ok := value.(document.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case document.FieldContentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentPath(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldIndexedWithHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndexedWithHash(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldTitle) {
		fields = append(fields, document.FieldTitle)
	}
	if m.FieldCleared(document.FieldDescription) {
		fields = append(fields, document.FieldDescription)
	}
	if m.FieldCleared(document.FieldContentPath) {
		fields = append(fields, document.FieldContentPath)
	}
	if m.FieldCleared(document.FieldContentHash) {
		fields = append(fields, document.FieldContentHash)
	}
	if m.FieldCleared(document.FieldIndexedWithHash) {
		fields = append(fields, document.FieldIndexedWithHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldTitle:
		m.ClearTitle()
		return nil
	case document.FieldDescription:
		m.ClearDescription()
		return nil
	case document.FieldContentPath:
		m.ClearContentPath()
		return nil
	case document.FieldContentHash:
		m.ClearContentHash()
		return nil
	case document.FieldIndexedWithHash:
		m.ClearIndexedWithHash()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case document.FieldSourceType:
		m.ResetSourceType()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldDescription:
		m.ResetDescription()
		return nil
	case document.FieldContentPath:
		m.ResetContentPath()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldIndexedWithHash:
		m.ResetIndexedWithHash()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document_entities != nil {
		edges = append(edges, document.EdgeDocumentEntities)
	}
	if m.claims != nil {
		edges = append(edges, document.EdgeClaims)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeDocumentEntities:
		ids := make([]ent.Value, 0, len(m.document_entities))
		for id := range m.document_entities {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeClaims:
		ids := make([]ent.Value, 0, len(m.claims))
		for id := range m.claims {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocument_entities != nil {
		edges = append(edges, document.EdgeDocumentEntities)
	}
	if m.removedclaims != nil {
		edges = append(edges, document.EdgeClaims)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeDocumentEntities:
		ids := make([]ent.Value, 0, len(m.removeddocument_entities))
		for id := range m.removeddocument_entities {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeClaims:
		ids := make([]ent.Value, 0, len(m.removedclaims))
		for id := range m.removedclaims {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument_entities {
		edges = append(edges, document.EdgeDocumentEntities)
	}
	if m.clearedclaims {
		edges = append(edges, document.EdgeClaims)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeDocumentEntities:
		return m.cleareddocument_entities
	case document.EdgeClaims:
		return m.clearedclaims
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeDocumentEntities:
		m.ResetDocumentEntities()
		return nil
	case document.EdgeClaims:
		m.ResetClaims()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentEntityMutation represents an operation that mutates the DocumentEntity nodes in the graph.
type DocumentEntityMutation struct {
	config
	op              Op
	typ             string
	id              *string
	quote           *string
	start_offset    *int
	addstart_offset *int
	end_offset      *int
	addend_offset   *int
	confidence      *float64
	addconfidence   *float64
	workflow_id     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *string
	cleareddocument bool
	entity          *string
	clearedentity   bool
	done            bool
	oldValue        func(context.Context) (*DocumentEntity, error)
	predicates      []predicate.DocumentEntity
}

var _ ent.Mutation = (*DocumentEntityMutation)(nil)

// documententityOption allows management of the mutation configuration using functional options.
type documententityOption func(*DocumentEntityMutation)

// newDocumentEntityMutation creates new mutation for the DocumentEntity entity.
func newDocumentEntityMutation(c config, op Op, opts ...documententityOption) *DocumentEntityMutation {
	m := &DocumentEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentEntityID sets the ID field of the mutation.
func withDocumentEntityID(id string) documententityOption {
	return func(m *DocumentEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentEntity
		)
		m.oldValue = func(ctx context.Context) (*DocumentEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentEntity sets the old DocumentEntity of the mutation.
func withDocumentEntity(node *DocumentEntity) documententityOption {
	return func(m *DocumentEntityMutation) {
		m.oldValue = func(context.Context) (*DocumentEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentEntity entities.
func (m *DocumentEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentEntityMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentEntityMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentEntityMutation) ResetDocumentID() {
	m.document = nil
}

// SetEntityID sets the "entity_id" field.
func (m *DocumentEntityMutation) SetEntityID(s string) {
	m.entity = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *DocumentEntityMutation) EntityID() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *DocumentEntityMutation) ResetEntityID() {
	m.entity = nil
}

// SetQuote sets the "quote" field.
func (m *DocumentEntityMutation) SetQuote(s string) {
	m.quote = &s
}

// Quote returns the value of the "quote" field in the mutation.
func (m *DocumentEntityMutation) Quote() (r string, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuote returns the old "quote" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuote: %w", err)
	}
	return oldValue.Quote, nil
}

// ClearQuote clears the value of the "quote" field.
func (m *DocumentEntityMutation) ClearQuote() {
	m.quote = nil
	m.clearedFields[documententity.FieldQuote] = struct{}{}
}

// QuoteCleared returns if the "quote" field was cleared in this mutation.
func (m *DocumentEntityMutation) QuoteCleared() bool {
	_, ok := m.clearedFields[documententity.FieldQuote]
	return ok
}

// ResetQuote resets all changes to the "quote" field.
func (m *DocumentEntityMutation) ResetQuote() {
	m.quote = nil
	delete(m.clearedFields, documententity.FieldQuote)
}

// SetStartOffset sets the "start_offset" field.
func (m *DocumentEntityMutation) SetStartOffset(i int) {
	m.start_offset = &i
	m.addstart_offset = nil
}

// StartOffset returns the value of the "start_offset" field in the mutation.
func (m *DocumentEntityMutation) StartOffset() (r int, exists bool) {
	v := m.start_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldStartOffset returns the old "start_offset" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldStartOffset(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartOffset: %w", err)
	}
	return oldValue.StartOffset, nil
}

// AddStartOffset adds i to the "start_offset" field.
func (m *DocumentEntityMutation) AddStartOffset(i int) {
	if m.addstart_offset != nil {
		*m.addstart_offset += i
	} else {
		m.addstart_offset = &i
	}
}

// AddedStartOffset returns the value that was added to the "start_offset" field in this mutation.
func (m *DocumentEntityMutation) AddedStartOffset() (r int, exists bool) {
	v := m.addstart_offset
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartOffset clears the value of the "start_offset" field.
func (m *DocumentEntityMutation) ClearStartOffset() {
	m.start_offset = nil
	m.addstart_offset = nil
	m.clearedFields[documententity.FieldStartOffset] = struct{}{}
}

// StartOffsetCleared returns if the "start_offset" field was cleared in this mutation.
func (m *DocumentEntityMutation) StartOffsetCleared() bool {
	_, ok := m.clearedFields[documententity.FieldStartOffset]
	return ok
}

// ResetStartOffset resets all changes to the "start_offset" field.
func (m *DocumentEntityMutation) ResetStartOffset() {
	m.start_offset = nil
	m.addstart_offset = nil
	delete(m.clearedFields, documententity.FieldStartOffset)
}

// SetEndOffset sets the "end_offset" field.
func (m *DocumentEntityMutation) SetEndOffset(i int) {
	m.end_offset = &i
	m.addend_offset = nil
}

// EndOffset returns the value of the "end_offset" field in the mutation.
func (m *DocumentEntityMutation) EndOffset() (r int, exists bool) {
	v := m.end_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldEndOffset returns the old "end_offset" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldEndOffset(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndOffset: %w", err)
	}
	return oldValue.EndOffset, nil
}

// AddEndOffset adds i to the "end_offset" field.
func (m *DocumentEntityMutation) AddEndOffset(i int) {
	if m.addend_offset != nil {
		*m.addend_offset += i
	} else {
		m.addend_offset = &i
	}
}

// AddedEndOffset returns the value that was added to the "end_offset" field in this mutation.
func (m *DocumentEntityMutation) AddedEndOffset() (r int, exists bool) {
	v := m.addend_offset
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndOffset clears the value of the "end_offset" field.
func (m *DocumentEntityMutation) ClearEndOffset() {
	m.end_offset = nil
	m.addend_offset = nil
	m.clearedFields[documententity.FieldEndOffset] = struct{}{}
}

// EndOffsetCleared returns if the "end_offset" field was cleared in this mutation.
func (m *DocumentEntityMutation) EndOffsetCleared() bool {
	_, ok := m.clearedFields[documententity.FieldEndOffset]
	return ok
}

// ResetEndOffset resets all changes to the "end_offset" field.
func (m *DocumentEntityMutation) ResetEndOffset() {
	m.end_offset = nil
	m.addend_offset = nil
	delete(m.clearedFields, documententity.FieldEndOffset)
}

// SetConfidence sets the "confidence" field.
func (m *DocumentEntityMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocumentEntityMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DocumentEntityMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DocumentEntityMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocumentEntityMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *DocumentEntityMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *DocumentEntityMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *DocumentEntityMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentEntity entity.
// If the DocumentEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentEntityMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documententity.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentEntityMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentEntityMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentEntityMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *DocumentEntityMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[documententity.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *DocumentEntityMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *DocumentEntityMutation) EntityIDs() (ids []string) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *DocumentEntityMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// Where appends a list predicates to the DocumentEntityMutation builder.
func (m *DocumentEntityMutation) Where(ps ...predicate.DocumentEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentEntity).
func (m *DocumentEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentEntityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, documententity.FieldDocumentID)
	}
	if m.entity != nil {
		fields = append(fields, documententity.FieldEntityID)
	}
	if m.quote != nil {
		fields = append(fields, documententity.FieldQuote)
	}
	if m.start_offset != nil {
		fields = append(fields, documententity.FieldStartOffset)
	}
	if m.end_offset != nil {
		fields = append(fields, documententity.FieldEndOffset)
	}
	if m.confidence != nil {
		fields = append(fields, documententity.FieldConfidence)
	}
	if m.workflow_id != nil {
		fields = append(fields, documententity.FieldWorkflowID)
	}
	if m.created_at != nil {
		fields = append(fields, documententity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documententity.FieldDocumentID:
		return m.DocumentID()
	case documententity.FieldEntityID:
		return m.EntityID()
	case documententity.FieldQuote:
		return m.Quote()
	case documententity.FieldStartOffset:
		return m.StartOffset()
	case documententity.FieldEndOffset:
		return m.EndOffset()
	case documententity.FieldConfidence:
		return m.Confidence()
	case documententity.FieldWorkflowID:
		return m.WorkflowID()
	case documententity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documententity.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documententity.FieldEntityID:
		return m.OldEntityID(ctx)
	case documententity.FieldQuote:
		return m.OldQuote(ctx)
	case documententity.FieldStartOffset:
		return m.OldStartOffset(ctx)
	case documententity.FieldEndOffset:
		return m.OldEndOffset(ctx)
	case documententity.FieldConfidence:
		return m.OldConfidence(ctx)
	case documententity.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case documententity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documententity.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documententity.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case documententity.FieldQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuote(v)
		return nil
	case documententity.FieldStartOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartOffset(v)
		return nil
	case documententity.FieldEndOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndOffset(v)
		return nil
	case documententity.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case documententity.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case documententity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentEntityMutation) AddedFields() []string {
	var fields []string
	if m.addstart_offset != nil {
		fields = append(fields, documententity.FieldStartOffset)
	}
	if m.addend_offset != nil {
		fields = append(fields, documententity.FieldEndOffset)
	}
	if m.addconfidence != nil {
		fields = append(fields, documententity.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documententity.FieldStartOffset:
		return m.AddedStartOffset()
	case documententity.FieldEndOffset:
		return m.AddedEndOffset()
	case documententity.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documententity.FieldStartOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartOffset(v)
		return nil
	case documententity.FieldEndOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndOffset(v)
		return nil
	case documententity.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documententity.FieldQuote) {
		fields = append(fields, documententity.FieldQuote)
	}
	if m.FieldCleared(documententity.FieldStartOffset) {
		fields = append(fields, documententity.FieldStartOffset)
	}
	if m.FieldCleared(documententity.FieldEndOffset) {
		fields = append(fields, documententity.FieldEndOffset)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentEntityMutation) ClearField(name string) error {
	switch name {
	case documententity.FieldQuote:
		m.ClearQuote()
		return nil
	case documententity.FieldStartOffset:
		m.ClearStartOffset()
		return nil
	case documententity.FieldEndOffset:
		m.ClearEndOffset()
		return nil
	}
	return fmt.Errorf("unknown DocumentEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentEntityMutation) ResetField(name string) error {
	switch name {
	case documententity.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documententity.FieldEntityID:
		m.ResetEntityID()
		return nil
	case documententity.FieldQuote:
		m.ResetQuote()
		return nil
	case documententity.FieldStartOffset:
		m.ResetStartOffset()
		return nil
	case documententity.FieldEndOffset:
		m.ResetEndOffset()
		return nil
	case documententity.FieldConfidence:
		m.ResetConfidence()
		return nil
	case documententity.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case documententity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, documententity.EdgeDocument)
	}
	if m.entity != nil {
		edges = append(edges, documententity.EdgeEntity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentEntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documententity.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case documententity.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, documententity.EdgeDocument)
	}
	if m.clearedentity {
		edges = append(edges, documententity.EdgeEntity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentEntityMutation) EdgeCleared(name string) bool {
	switch name {
	case documententity.EdgeDocument:
		return m.cleareddocument
	case documententity.EdgeEntity:
		return m.clearedentity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentEntityMutation) ClearEdge(name string) error {
	switch name {
	case documententity.EdgeDocument:
		m.ClearDocument()
		return nil
	case documententity.EdgeEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown DocumentEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentEntityMutation) ResetEdge(name string) error {
	switch name {
	case documententity.EdgeDocument:
		m.ResetDocument()
		return nil
	case documententity.EdgeEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown DocumentEntity edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	name                     *string
	entity_type              *entity.EntityType
	description              *string
	aliases                  *[]string
	appendaliases            []string
	embedding                *[]byte
	merged_into_id           *string
	version                  *int
	addversion               *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	document_entities        map[string]struct{}
	removeddocument_entities map[string]struct{}
	cleareddocument_entities bool
	claim_entities           map[string]struct{}
	removedclaim_entities    map[string]struct{}
	clearedclaim_entities    bool
	done                     bool
	oldValue                 func(context.Context) (*Entity, error)
	predicates               []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *EntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityMutation) ResetName() {
	m.name = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMutation) SetEntityType(et entity.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMutation) EntityType() (r entity.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEntityType(ctx context.Context) (v entity.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetDescription sets the "description" field.
func (m *EntityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EntityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EntityMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[entity.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EntityMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[entity.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EntityMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, entity.FieldDescription)
}

// SetAliases sets the "aliases" field.
func (m *EntityMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *EntityMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *EntityMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *EntityMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *EntityMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[entity.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *EntityMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[entity.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *EntityMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, entity.FieldAliases)
}

// SetEmbedding sets the "embedding" field.
func (m *EntityMutation) SetEmbedding(b []byte) {
	m.embedding = &b
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *EntityMutation) Embedding() (r []byte, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEmbedding(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *EntityMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[entity.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *EntityMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[entity.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *EntityMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, entity.FieldEmbedding)
}

// SetMergedIntoID sets the "merged_into_id" field.
func (m *EntityMutation) SetMergedIntoID(s string) {
	m.merged_into_id = &s
}

// MergedIntoID returns the value of the "merged_into_id" field in the mutation.
func (m *EntityMutation) MergedIntoID() (r string, exists bool) {
	v := m.merged_into_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedIntoID returns the old "merged_into_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldMergedIntoID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedIntoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedIntoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedIntoID: %w", err)
	}
	return oldValue.MergedIntoID, nil
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (m *EntityMutation) ClearMergedIntoID() {
	m.merged_into_id = nil
	m.clearedFields[entity.FieldMergedIntoID] = struct{}{}
}

// MergedIntoIDCleared returns if the "merged_into_id" field was cleared in this mutation.
func (m *EntityMutation) MergedIntoIDCleared() bool {
	_, ok := m.clearedFields[entity.FieldMergedIntoID]
	return ok
}

// ResetMergedIntoID resets all changes to the "merged_into_id" field.
func (m *EntityMutation) ResetMergedIntoID() {
	m.merged_into_id = nil
	delete(m.clearedFields, entity.FieldMergedIntoID)
}

// SetVersion sets the "version" field.
func (m *EntityMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *EntityMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *EntityMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *EntityMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *EntityMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentEntityIDs adds the "document_entities" edge to the DocumentEntity entity by ids.
func (m *EntityMutation) AddDocumentEntityIDs(ids ...string) {
	if m.document_entities == nil {
		m.document_entities = make(map[string]struct{})
	}
	for i := range ids {
		m.document_entities[ids[i]] = struct{}{}
	}
}

// ClearDocumentEntities clears the "document_entities" edge to the DocumentEntity entity.
func (m *EntityMutation) ClearDocumentEntities() {
	m.cleareddocument_entities = true
}

// DocumentEntitiesCleared reports if the "document_entities" edge to the DocumentEntity entity was cleared.
func (m *EntityMutation) DocumentEntitiesCleared() bool {
	return m.cleareddocument_entities
}

// RemoveDocumentEntityIDs removes the "document_entities" edge to the DocumentEntity entity by IDs.
func (m *EntityMutation) RemoveDocumentEntityIDs(ids ...string) {
	if m.removeddocument_entities == nil {
		m.removeddocument_entities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_entities, ids[i])
		m.removeddocument_entities[ids[i]] = struct{}{}
	}
}

// RemovedDocumentEntities returns the removed IDs of the "document_entities" edge to the DocumentEntity entity.
func (m *EntityMutation) RemovedDocumentEntitiesIDs() (ids []string) {
	for id := range m.removeddocument_entities {
		ids = append(ids, id)
	}
	return
}

// DocumentEntitiesIDs returns the "document_entities" edge IDs in the mutation.
func (m *EntityMutation) DocumentEntitiesIDs() (ids []string) {
	for id := range m.document_entities {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentEntities resets all changes to the "document_entities" edge.
func (m *EntityMutation) ResetDocumentEntities() {
	m.document_entities = nil
	m.cleareddocument_entities = false
	m.removeddocument_entities = nil
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by ids.
func (m *EntityMutation) AddClaimEntityIDs(ids ...string) {
	if m.claim_entities == nil {
		m.claim_entities = make(map[string]struct{})
	}
	for i := range ids {
		m.claim_entities[ids[i]] = struct{}{}
	}
}

// ClearClaimEntities clears the "claim_entities" edge to the ClaimEntity entity.
func (m *EntityMutation) ClearClaimEntities() {
	m.clearedclaim_entities = true
}

// ClaimEntitiesCleared reports if the "claim_entities" edge to the ClaimEntity entity was cleared.
func (m *EntityMutation) ClaimEntitiesCleared() bool {
	return m.clearedclaim_entities
}

// RemoveClaimEntityIDs removes the "claim_entities" edge to the ClaimEntity entity by IDs.
func (m *EntityMutation) RemoveClaimEntityIDs(ids ...string) {
	if m.removedclaim_entities == nil {
		m.removedclaim_entities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claim_entities, ids[i])
		m.removedclaim_entities[ids[i]] = struct{}{}
	}
}

// RemovedClaimEntities returns the removed IDs of the "claim_entities" edge to the ClaimEntity entity.
func (m *EntityMutation) RemovedClaimEntitiesIDs() (ids []string) {
	for id := range m.removedclaim_entities {
		ids = append(ids, id)
	}
	return
}

// ClaimEntitiesIDs returns the "claim_entities" edge IDs in the mutation.
func (m *EntityMutation) ClaimEntitiesIDs() (ids []string) {
	for id := range m.claim_entities {
		ids = append(ids, id)
	}
	return
}

// ResetClaimEntities resets all changes to the "claim_entities" edge.
func (m *EntityMutation) ResetClaimEntities() {
	m.claim_entities = nil
	m.clearedclaim_entities = false
	m.removedclaim_entities = nil
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, entity.FieldName)
	}
	if m.entity_type != nil {
		fields = append(fields, entity.FieldEntityType)
	}
	if m.description != nil {
		fields = append(fields, entity.FieldDescription)
	}
	if m.aliases != nil {
		fields = append(fields, entity.FieldAliases)
	}
	if m.embedding != nil {
		fields = append(fields, entity.FieldEmbedding)
	}
	if m.merged_into_id != nil {
		fields = append(fields, entity.FieldMergedIntoID)
	}
	if m.version != nil {
		fields = append(fields, entity.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldName:
		return m.Name()
	case entity.FieldEntityType:
		return m.EntityType()
	case entity.FieldDescription:
		return m.Description()
	case entity.FieldAliases:
		return m.Aliases()
	case entity.FieldEmbedding:
		return m.Embedding()
	case entity.FieldMergedIntoID:
		return m.MergedIntoID()
	case entity.FieldVersion:
		return m.Version()
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	case entity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldName:
		return m.OldName(ctx)
	case entity.FieldEntityType:
		return m.OldEntityType(ctx)
	case entity.FieldDescription:
		return m.OldDescription(ctx)
	case entity.FieldAliases:
		return m.OldAliases(ctx)
	case entity.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case entity.FieldMergedIntoID:
		return m.OldMergedIntoID(ctx)
	case entity.FieldVersion:
		return m.OldVersion(ctx)
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entity.FieldEntityType:
		v, ok := value.(entity.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entity.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case entity.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case entity.FieldEmbedding:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case entity.FieldMergedIntoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedIntoID(v)
		return nil
	case entity.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, entity.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldDescription) {
		fields = append(fields, entity.FieldDescription)
	}
	if m.FieldCleared(entity.FieldAliases) {
		fields = append(fields, entity.FieldAliases)
	}
	if m.FieldCleared(entity.FieldEmbedding) {
		fields = append(fields, entity.FieldEmbedding)
	}
	if m.FieldCleared(entity.FieldMergedIntoID) {
		fields = append(fields, entity.FieldMergedIntoID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldDescription:
		m.ClearDescription()
		return nil
	case entity.FieldAliases:
		m.ClearAliases()
		return nil
	case entity.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case entity.FieldMergedIntoID:
		m.ClearMergedIntoID()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldName:
		m.ResetName()
		return nil
	case entity.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entity.FieldDescription:
		m.ResetDescription()
		return nil
	case entity.FieldAliases:
		m.ResetAliases()
		return nil
	case entity.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case entity.FieldMergedIntoID:
		m.ResetMergedIntoID()
		return nil
	case entity.FieldVersion:
		m.ResetVersion()
		return nil
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document_entities != nil {
		edges = append(edges, entity.EdgeDocumentEntities)
	}
	if m.claim_entities != nil {
		edges = append(edges, entity.EdgeClaimEntities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeDocumentEntities:
		ids := make([]ent.Value, 0, len(m.document_entities))
		for id := range m.document_entities {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeClaimEntities:
		ids := make([]ent.Value, 0, len(m.claim_entities))
		for id := range m.claim_entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocument_entities != nil {
		edges = append(edges, entity.EdgeDocumentEntities)
	}
	if m.removedclaim_entities != nil {
		edges = append(edges, entity.EdgeClaimEntities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeDocumentEntities:
		ids := make([]ent.Value, 0, len(m.removeddocument_entities))
		for id := range m.removeddocument_entities {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeClaimEntities:
		ids := make([]ent.Value, 0, len(m.removedclaim_entities))
		for id := range m.removedclaim_entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument_entities {
		edges = append(edges, entity.EdgeDocumentEntities)
	}
	if m.clearedclaim_entities {
		edges = append(edges, entity.EdgeClaimEntities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeDocumentEntities:
		return m.cleareddocument_entities
	case entity.EdgeClaimEntities:
		return m.clearedclaim_entities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeDocumentEntities:
		m.ResetDocumentEntities()
		return nil
	case entity.EdgeClaimEntities:
		m.ResetClaimEntities()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EntityResolutionMutation represents an operation that mutates the EntityResolution nodes in the graph.
type EntityResolutionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workflow_id        *string
	entity_name        *string
	resolved_entity_id *string
	action             *entityresolution.Action
	score              *float64
	addscore           *float64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*EntityResolution, error)
	predicates         []predicate.EntityResolution
}

var _ ent.Mutation = (*EntityResolutionMutation)(nil)

// entityresolutionOption allows management of the mutation configuration using functional options.
type entityresolutionOption func(*EntityResolutionMutation)

// newEntityResolutionMutation creates new mutation for the EntityResolution entity.
func newEntityResolutionMutation(c config, op Op, opts ...entityresolutionOption) *EntityResolutionMutation {
	m := &EntityResolutionMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityResolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityResolutionID sets the ID field of the mutation.
func withEntityResolutionID(id string) entityresolutionOption {
	return func(m *EntityResolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityResolution
		)
		m.oldValue = func(ctx context.Context) (*EntityResolution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityResolution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityResolution sets the old EntityResolution of the mutation.
func withEntityResolution(node *EntityResolution) entityresolutionOption {
	return func(m *EntityResolutionMutation) {
		m.oldValue = func(context.Context) (*EntityResolution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityResolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityResolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityResolution entities.
func (m *EntityResolutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityResolutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityResolutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityResolution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *EntityResolutionMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *EntityResolutionMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the EntityResolution entity.
// If the EntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityResolutionMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *EntityResolutionMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetEntityName sets the "entity_name" field.
func (m *EntityResolutionMutation) SetEntityName(s string) {
	m.entity_name = &s
}

// EntityName returns the value of the "entity_name" field in the mutation.
func (m *EntityResolutionMutation) EntityName() (r string, exists bool) {
	v := m.entity_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityName returns the old "entity_name" field's value of the EntityResolution entity.
// If the EntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityResolutionMutation) OldEntityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityName: %w", err)
	}
	return oldValue.EntityName, nil
}

// ResetEntityName resets all changes to the "entity_name" field.
func (m *EntityResolutionMutation) ResetEntityName() {
	m.entity_name = nil
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (m *EntityResolutionMutation) SetResolvedEntityID(s string) {
	m.resolved_entity_id = &s
}

// ResolvedEntityID returns the value of the "resolved_entity_id" field in the mutation.
func (m *EntityResolutionMutation) ResolvedEntityID() (r string, exists bool) {
	v := m.resolved_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedEntityID returns the old "resolved_entity_id" field's value of the EntityResolution entity.
// If the EntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityResolutionMutation) OldResolvedEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedEntityID: %w", err)
	}
	return oldValue.ResolvedEntityID, nil
}

// ResetResolvedEntityID resets all changes to the "resolved_entity_id" field.
func (m *EntityResolutionMutation) ResetResolvedEntityID() {
	m.resolved_entity_id = nil
}

// SetAction sets the "action" field.
func (m *EntityResolutionMutation) SetAction(e entityresolution.Action) {
	m.action = &e
}

// Action returns the value of the "action" field in the mutation.
func (m *EntityResolutionMutation) Action() (r entityresolution.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the EntityResolution entity.
// If the EntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityResolutionMutation) OldAction(ctx context.Context) (v entityresolution.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *EntityResolutionMutation) ResetAction() {
	m.action = nil
}

// SetScore sets the "score" field.
func (m *EntityResolutionMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EntityResolutionMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the EntityResolution entity.
// If the EntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityResolutionMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EntityResolutionMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EntityResolutionMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EntityResolutionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityResolutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityResolutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityResolution entity.
// If the EntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityResolutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityResolutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EntityResolutionMutation builder.
func (m *EntityResolutionMutation) Where(ps ...predicate.EntityResolution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityResolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityResolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityResolution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityResolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityResolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityResolution).
func (m *EntityResolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityResolutionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workflow_id != nil {
		fields = append(fields, entityresolution.FieldWorkflowID)
	}
	if m.entity_name != nil {
		fields = append(fields, entityresolution.FieldEntityName)
	}
	if m.resolved_entity_id != nil {
		fields = append(fields, entityresolution.FieldResolvedEntityID)
	}
	if m.action != nil {
		fields = append(fields, entityresolution.FieldAction)
	}
	if m.score != nil {
		fields = append(fields, entityresolution.FieldScore)
	}
	if m.created_at != nil {
		fields = append(fields, entityresolution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityResolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityresolution.FieldWorkflowID:
		return m.WorkflowID()
	case entityresolution.FieldEntityName:
		return m.EntityName()
	case entityresolution.FieldResolvedEntityID:
		return m.ResolvedEntityID()
	case entityresolution.FieldAction:
		return m.Action()
	case entityresolution.FieldScore:
		return m.Score()
	case entityresolution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityResolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityresolution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case entityresolution.FieldEntityName:
		return m.OldEntityName(ctx)
	case entityresolution.FieldResolvedEntityID:
		return m.OldResolvedEntityID(ctx)
	case entityresolution.FieldAction:
		return m.OldAction(ctx)
	case entityresolution.FieldScore:
		return m.OldScore(ctx)
	case entityresolution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityResolution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityResolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityresolution.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case entityresolution.FieldEntityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityName(v)
		return nil
	case entityresolution.FieldResolvedEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedEntityID(v)
		return nil
	case entityresolution.FieldAction:
		v, ok := value.(entityresolution.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case entityresolution.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case entityresolution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityResolution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityResolutionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, entityresolution.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityResolutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityresolution.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityResolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityresolution.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown EntityResolution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityResolutionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityResolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityResolutionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntityResolution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityResolutionMutation) ResetField(name string) error {
	switch name {
	case entityresolution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case entityresolution.FieldEntityName:
		m.ResetEntityName()
		return nil
	case entityresolution.FieldResolvedEntityID:
		m.ResetResolvedEntityID()
		return nil
	case entityresolution.FieldAction:
		m.ResetAction()
		return nil
	case entityresolution.FieldScore:
		m.ResetScore()
		return nil
	case entityresolution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityResolution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityResolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityResolutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityResolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityResolutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityResolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityResolutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityResolutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EntityResolution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityResolutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EntityResolution edge %s", name)
}

// FetchDocumentMutation represents an operation that mutates the FetchDocument nodes in the graph.
type FetchDocumentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workflow_id       *string
	document_id       *string
	status            *fetchdocument.Status
	content_length    *int
	addcontent_length *int
	content_hash      *string
	content_path      *string
	engine            *string
	skip_reason       *string
	error_message     *string
	fetch_metadata    *map[string]interface{}
	embedding         *[]byte
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*FetchDocument, error)
	predicates        []predicate.FetchDocument
}

var _ ent.Mutation = (*FetchDocumentMutation)(nil)

// fetchdocumentOption allows management of the mutation configuration using functional options.
type fetchdocumentOption func(*FetchDocumentMutation)

// newFetchDocumentMutation creates new mutation for the FetchDocument entity.
func newFetchDocumentMutation(c config, op Op, opts ...fetchdocumentOption) *FetchDocumentMutation {
	m := &FetchDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeFetchDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFetchDocumentID sets the ID field of the mutation.
func withFetchDocumentID(id string) fetchdocumentOption {
	return func(m *FetchDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *FetchDocument
		)
		m.oldValue = func(ctx context.Context) (*FetchDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FetchDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFetchDocument sets the old FetchDocument of the mutation.
func withFetchDocument(node *FetchDocument) fetchdocumentOption {
	return func(m *FetchDocumentMutation) {
		m.oldValue = func(context.Context) (*FetchDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FetchDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FetchDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FetchDocument entities.
func (m *FetchDocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FetchDocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FetchDocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FetchDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *FetchDocumentMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *FetchDocumentMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *FetchDocumentMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *FetchDocumentMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *FetchDocumentMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *FetchDocumentMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetStatus sets the "status" field.
func (m *FetchDocumentMutation) SetStatus(f fetchdocument.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FetchDocumentMutation) Status() (r fetchdocument.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldStatus(ctx context.Context) (v fetchdocument.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FetchDocumentMutation) ResetStatus() {
	m.status = nil
}

// SetContentLength sets the "content_length" field.
func (m *FetchDocumentMutation) SetContentLength(i int) {
	m.content_length = &i
	m.addcontent_length = nil
}

// ContentLength returns the value of the "content_length" field in the mutation.
func (m *FetchDocumentMutation) ContentLength() (r int, exists bool) {
	v := m.content_length
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLength returns the old "content_length" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldContentLength(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLength: %w", err)
	}
	return oldValue.ContentLength, nil
}

// AddContentLength adds i to the "content_length" field.
func (m *FetchDocumentMutation) AddContentLength(i int) {
	if m.addcontent_length != nil {
		*m.addcontent_length += i
	} else {
		m.addcontent_length = &i
	}
}

// AddedContentLength returns the value that was added to the "content_length" field in this mutation.
func (m *FetchDocumentMutation) AddedContentLength() (r int, exists bool) {
	v := m.addcontent_length
	if v == nil {
		return
	}
	return *v, true
}

// ClearContentLength clears the value of the "content_length" field.
func (m *FetchDocumentMutation) ClearContentLength() {
	m.content_length = nil
	m.addcontent_length = nil
	m.clearedFields[fetchdocument.FieldContentLength] = struct{}{}
}

// ContentLengthCleared returns if the "content_length" field was cleared in this mutation.
func (m *FetchDocumentMutation) ContentLengthCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldContentLength]
	return ok
}

// ResetContentLength resets all changes to the "content_length" field.
func (m *FetchDocumentMutation) ResetContentLength() {
	m.content_length = nil
	m.addcontent_length = nil
	delete(m.clearedFields, fetchdocument.FieldContentLength)
}

// SetContentHash sets the "content_hash" field.
func (m *FetchDocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *FetchDocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *FetchDocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[fetchdocument.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *FetchDocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *FetchDocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, fetchdocument.FieldContentHash)
}

// SetContentPath sets the "content_path" field.
func (m *FetchDocumentMutation) SetContentPath(s string) {
	m.content_path = &s
}

// ContentPath returns the value of the "content_path" field in the mutation.
func (m *FetchDocumentMutation) ContentPath() (r string, exists bool) {
	v := m.content_path
	if v == nil {
		return
	}
	return *v, true
}

// OldContentPath returns the old "content_path" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldContentPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentPath: %w", err)
	}
	return oldValue.ContentPath, nil
}

// ClearContentPath clears the value of the "content_path" field.
func (m *FetchDocumentMutation) ClearContentPath() {
	m.content_path = nil
	m.clearedFields[fetchdocument.FieldContentPath] = struct{}{}
}

// ContentPathCleared returns if the "content_path" field was cleared in this mutation.
func (m *FetchDocumentMutation) ContentPathCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldContentPath]
	return ok
}

// ResetContentPath resets all changes to the "content_path" field.
func (m *FetchDocumentMutation) ResetContentPath() {
	m.content_path = nil
	delete(m.clearedFields, fetchdocument.FieldContentPath)
}

// SetEngine sets the "engine" field.
func (m *FetchDocumentMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *FetchDocumentMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ClearEngine clears the value of the "engine" field.
func (m *FetchDocumentMutation) ClearEngine() {
	m.engine = nil
	m.clearedFields[fetchdocument.FieldEngine] = struct{}{}
}

// EngineCleared returns if the "engine" field was cleared in this mutation.
func (m *FetchDocumentMutation) EngineCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldEngine]
	return ok
}

// ResetEngine resets all changes to the "engine" field.
func (m *FetchDocumentMutation) ResetEngine() {
	m.engine = nil
	delete(m.clearedFields, fetchdocument.FieldEngine)
}

// SetSkipReason sets the "skip_reason" field.
func (m *FetchDocumentMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *FetchDocumentMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldSkipReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *FetchDocumentMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[fetchdocument.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *FetchDocumentMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *FetchDocumentMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, fetchdocument.FieldSkipReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *FetchDocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FetchDocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FetchDocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[fetchdocument.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FetchDocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FetchDocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, fetchdocument.FieldErrorMessage)
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (m *FetchDocumentMutation) SetFetchMetadata(value map[string]interface{}) {
	m.fetch_metadata = &value
}

// FetchMetadata returns the value of the "fetch_metadata" field in the mutation.
func (m *FetchDocumentMutation) FetchMetadata() (r map[string]interface{}, exists bool) {
	v := m.fetch_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchMetadata returns the old "fetch_metadata" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldFetchMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchMetadata: %w", err)
	}
	return oldValue.FetchMetadata, nil
}

// ClearFetchMetadata clears the value of the "fetch_metadata" field.
func (m *FetchDocumentMutation) ClearFetchMetadata() {
	m.fetch_metadata = nil
	m.clearedFields[fetchdocument.FieldFetchMetadata] = struct{}{}
}

// FetchMetadataCleared returns if the "fetch_metadata" field was cleared in this mutation.
func (m *FetchDocumentMutation) FetchMetadataCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldFetchMetadata]
	return ok
}

// ResetFetchMetadata resets all changes to the "fetch_metadata" field.
func (m *FetchDocumentMutation) ResetFetchMetadata() {
	m.fetch_metadata = nil
	delete(m.clearedFields, fetchdocument.FieldFetchMetadata)
}

// SetEmbedding sets the "embedding" field.
func (m *FetchDocumentMutation) SetEmbedding(b []byte) {
	m.embedding = &b
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *FetchDocumentMutation) Embedding() (r []byte, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldEmbedding(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *FetchDocumentMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[fetchdocument.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *FetchDocumentMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[fetchdocument.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *FetchDocumentMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, fetchdocument.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *FetchDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FetchDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FetchDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FetchDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FetchDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FetchDocument entity.
// If the FetchDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FetchDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FetchDocumentMutation builder.
func (m *FetchDocumentMutation) Where(ps ...predicate.FetchDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FetchDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FetchDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FetchDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FetchDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FetchDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FetchDocument).
func (m *FetchDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FetchDocumentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workflow_id != nil {
		fields = append(fields, fetchdocument.FieldWorkflowID)
	}
	if m.document_id != nil {
		fields = append(fields, fetchdocument.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, fetchdocument.FieldStatus)
	}
	if m.content_length != nil {
		fields = append(fields, fetchdocument.FieldContentLength)
	}
	if m.content_hash != nil {
		fields = append(fields, fetchdocument.FieldContentHash)
	}
	if m.content_path != nil {
		fields = append(fields, fetchdocument.FieldContentPath)
	}
	if m.engine != nil {
		fields = append(fields, fetchdocument.FieldEngine)
	}
	if m.skip_reason != nil {
		fields = append(fields, fetchdocument.FieldSkipReason)
	}
	if m.error_message != nil {
		fields = append(fields, fetchdocument.FieldErrorMessage)
	}
	if m.fetch_metadata != nil {
		fields = append(fields, fetchdocument.FieldFetchMetadata)
	}
	if m.embedding != nil {
		fields = append(fields, fetchdocument.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, fetchdocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fetchdocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FetchDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fetchdocument.FieldWorkflowID:
		return m.WorkflowID()
	case fetchdocument.FieldDocumentID:
		return m.DocumentID()
	case fetchdocument.FieldStatus:
		return m.Status()
	case fetchdocument.FieldContentLength:
		return m.ContentLength()
	case fetchdocument.FieldContentHash:
		return m.ContentHash()
	case fetchdocument.FieldContentPath:
		return m.ContentPath()
	case fetchdocument.FieldEngine:
		return m.Engine()
	case fetchdocument.FieldSkipReason:
		return m.SkipReason()
	case fetchdocument.FieldErrorMessage:
		return m.ErrorMessage()
	case fetchdocument.FieldFetchMetadata:
		return m.FetchMetadata()
	case fetchdocument.FieldEmbedding:
		return m.Embedding()
	case fetchdocument.FieldCreatedAt:
		return m.CreatedAt()
	case fetchdocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FetchDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fetchdocument.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case fetchdocument.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case fetchdocument.FieldStatus:
		return m.OldStatus(ctx)
	case fetchdocument.FieldContentLength:
		return m.OldContentLength(ctx)
	case fetchdocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case fetchdocument.FieldContentPath:
		return m.OldContentPath(ctx)
	case fetchdocument.FieldEngine:
		return m.OldEngine(ctx)
	case fetchdocument.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case fetchdocument.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case fetchdocument.FieldFetchMetadata:
		return m.OldFetchMetadata(ctx)
	case fetchdocument.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case fetchdocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fetchdocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FetchDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FetchDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fetchdocument.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case fetchdocument.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case fetchdocument.FieldStatus:
		v, ok := value.(fetchdocument.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fetchdocument.FieldContentLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLength(v)
		return nil
	case fetchdocument.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case fetchdocument.FieldContentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentPath(v)
		return nil
	case fetchdocument.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case fetchdocument.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case fetchdocument.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case fetchdocument.FieldFetchMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchMetadata(v)
		return nil
	case fetchdocument.FieldEmbedding:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case fetchdocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fetchdocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FetchDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FetchDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addcontent_length != nil {
		fields = append(fields, fetchdocument.FieldContentLength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FetchDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fetchdocument.FieldContentLength:
		return m.AddedContentLength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FetchDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fetchdocument.FieldContentLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentLength(v)
		return nil
	}
	return fmt.Errorf("unknown FetchDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FetchDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fetchdocument.FieldContentLength) {
		fields = append(fields, fetchdocument.FieldContentLength)
	}
	if m.FieldCleared(fetchdocument.FieldContentHash) {
		fields = append(fields, fetchdocument.FieldContentHash)
	}
	if m.FieldCleared(fetchdocument.FieldContentPath) {
		fields = append(fields, fetchdocument.FieldContentPath)
	}
	if m.FieldCleared(fetchdocument.FieldEngine) {
		fields = append(fields, fetchdocument.FieldEngine)
	}
	if m.FieldCleared(fetchdocument.FieldSkipReason) {
		fields = append(fields, fetchdocument.FieldSkipReason)
	}
	if m.FieldCleared(fetchdocument.FieldErrorMessage) {
		fields = append(fields, fetchdocument.FieldErrorMessage)
	}
	if m.FieldCleared(fetchdocument.FieldFetchMetadata) {
		fields = append(fields, fetchdocument.FieldFetchMetadata)
	}
	if m.FieldCleared(fetchdocument.FieldEmbedding) {
		fields = append(fields, fetchdocument.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FetchDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FetchDocumentMutation) ClearField(name string) error {
	switch name {
	case fetchdocument.FieldContentLength:
		m.ClearContentLength()
		return nil
	case fetchdocument.FieldContentHash:
		m.ClearContentHash()
		return nil
	case fetchdocument.FieldContentPath:
		m.ClearContentPath()
		return nil
	case fetchdocument.FieldEngine:
		m.ClearEngine()
		return nil
	case fetchdocument.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case fetchdocument.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case fetchdocument.FieldFetchMetadata:
		m.ClearFetchMetadata()
		return nil
	case fetchdocument.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown FetchDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FetchDocumentMutation) ResetField(name string) error {
	switch name {
	case fetchdocument.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case fetchdocument.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case fetchdocument.FieldStatus:
		m.ResetStatus()
		return nil
	case fetchdocument.FieldContentLength:
		m.ResetContentLength()
		return nil
	case fetchdocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case fetchdocument.FieldContentPath:
		m.ResetContentPath()
		return nil
	case fetchdocument.FieldEngine:
		m.ResetEngine()
		return nil
	case fetchdocument.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case fetchdocument.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case fetchdocument.FieldFetchMetadata:
		m.ResetFetchMetadata()
		return nil
	case fetchdocument.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case fetchdocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fetchdocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FetchDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FetchDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FetchDocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FetchDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FetchDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FetchDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FetchDocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FetchDocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FetchDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FetchDocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FetchDocument edge %s", name)
}

// SectionExtractionMutation represents an operation that mutates the SectionExtraction nodes in the graph.
type SectionExtractionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	workflow_id         *string
	document_id         *string
	section_id          *string
	section_index       *int
	addsection_index    *int
	header              *string
	content             *string
	embedding           *[]byte
	entities            *[]map[string]interface{}
	appendentities      []map[string]interface{}
	relationships       *[]map[string]interface{}
	appendrelationships []map[string]interface{}
	claims              *[]map[string]interface{}
	appendclaims        []map[string]interface{}
	content_type        *string
	status              *sectionextraction.Status
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SectionExtraction, error)
	predicates          []predicate.SectionExtraction
}

var _ ent.Mutation = (*SectionExtractionMutation)(nil)

// sectionextractionOption allows management of the mutation configuration using functional options.
type sectionextractionOption func(*SectionExtractionMutation)

// newSectionExtractionMutation creates new mutation for the SectionExtraction entity.
func newSectionExtractionMutation(c config, op Op, opts ...sectionextractionOption) *SectionExtractionMutation {
	m := &SectionExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeSectionExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSectionExtractionID sets the ID field of the mutation.
func withSectionExtractionID(id string) sectionextractionOption {
	return func(m *SectionExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *SectionExtraction
		)
		m.oldValue = func(ctx context.Context) (*SectionExtraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SectionExtraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSectionExtraction sets the old SectionExtraction of the mutation.
func withSectionExtraction(node *SectionExtraction) sectionextractionOption {
	return func(m *SectionExtractionMutation) {
		m.oldValue = func(context.Context) (*SectionExtraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SectionExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SectionExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SectionExtraction entities.
func (m *SectionExtractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SectionExtractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SectionExtractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SectionExtraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *SectionExtractionMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *SectionExtractionMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *SectionExtractionMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *SectionExtractionMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *SectionExtractionMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *SectionExtractionMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetSectionID sets the "section_id" field.
func (m *SectionExtractionMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *SectionExtractionMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *SectionExtractionMutation) ResetSectionID() {
	m.section_id = nil
}

// SetSectionIndex sets the "section_index" field.
func (m *SectionExtractionMutation) SetSectionIndex(i int) {
	m.section_index = &i
	m.addsection_index = nil
}

// SectionIndex returns the value of the "section_index" field in the mutation.
func (m *SectionExtractionMutation) SectionIndex() (r int, exists bool) {
	v := m.section_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionIndex returns the old "section_index" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldSectionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionIndex: %w", err)
	}
	return oldValue.SectionIndex, nil
}

// AddSectionIndex adds i to the "section_index" field.
func (m *SectionExtractionMutation) AddSectionIndex(i int) {
	if m.addsection_index != nil {
		*m.addsection_index += i
	} else {
		m.addsection_index = &i
	}
}

// AddedSectionIndex returns the value that was added to the "section_index" field in this mutation.
func (m *SectionExtractionMutation) AddedSectionIndex() (r int, exists bool) {
	v := m.addsection_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSectionIndex resets all changes to the "section_index" field.
func (m *SectionExtractionMutation) ResetSectionIndex() {
	m.section_index = nil
	m.addsection_index = nil
}

// SetHeader sets the "header" field.
func (m *SectionExtractionMutation) SetHeader(s string) {
	m.header = &s
}

// Header returns the value of the "header" field in the mutation.
func (m *SectionExtractionMutation) Header() (r string, exists bool) {
	v := m.header
	if v == nil {
		return
	}
	return *v, true
}

// OldHeader returns the old "header" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldHeader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeader: %w", err)
	}
	return oldValue.Header, nil
}

// ClearHeader clears the value of the "header" field.
func (m *SectionExtractionMutation) ClearHeader() {
	m.header = nil
	m.clearedFields[sectionextraction.FieldHeader] = struct{}{}
}

// HeaderCleared returns if the "header" field was cleared in this mutation.
func (m *SectionExtractionMutation) HeaderCleared() bool {
	_, ok := m.clearedFields[sectionextraction.FieldHeader]
	return ok
}

// ResetHeader resets all changes to the "header" field.
func (m *SectionExtractionMutation) ResetHeader() {
	m.header = nil
	delete(m.clearedFields, sectionextraction.FieldHeader)
}

// SetContent sets the "content" field.
func (m *SectionExtractionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SectionExtractionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SectionExtractionMutation) ResetContent() {
	m.content = nil
}

// SetEmbedding sets the "embedding" field.
func (m *SectionExtractionMutation) SetEmbedding(b []byte) {
	m.embedding = &b
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *SectionExtractionMutation) Embedding() (r []byte, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldEmbedding(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *SectionExtractionMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[sectionextraction.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *SectionExtractionMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[sectionextraction.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *SectionExtractionMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, sectionextraction.FieldEmbedding)
}

// SetEntities sets the "entities" field.
func (m *SectionExtractionMutation) SetEntities(value []map[string]interface{}) {
	m.entities = &value
	m.appendentities = nil
}

// Entities returns the value of the "entities" field in the mutation.
func (m *SectionExtractionMutation) Entities() (r []map[string]interface{}, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldEntities(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// AppendEntities adds value to the "entities" field.
func (m *SectionExtractionMutation) AppendEntities(value []map[string]interface{}) {
	m.appendentities = append(m.appendentities, value...)
}

// AppendedEntities returns the list of values that were appended to the "entities" field in this mutation.
func (m *SectionExtractionMutation) AppendedEntities() ([]map[string]interface{}, bool) {
	if len(m.appendentities) == 0 {
		return nil, false
	}
	return m.appendentities, true
}

// ClearEntities clears the value of the "entities" field.
func (m *SectionExtractionMutation) ClearEntities() {
	m.entities = nil
	m.appendentities = nil
	m.clearedFields[sectionextraction.FieldEntities] = struct{}{}
}

// EntitiesCleared returns if the "entities" field was cleared in this mutation.
func (m *SectionExtractionMutation) EntitiesCleared() bool {
	_, ok := m.clearedFields[sectionextraction.FieldEntities]
	return ok
}

// ResetEntities resets all changes to the "entities" field.
func (m *SectionExtractionMutation) ResetEntities() {
	m.entities = nil
	m.appendentities = nil
	delete(m.clearedFields, sectionextraction.FieldEntities)
}

// SetRelationships sets the "relationships" field.
func (m *SectionExtractionMutation) SetRelationships(value []map[string]interface{}) {
	m.relationships = &value
	m.appendrelationships = nil
}

// Relationships returns the value of the "relationships" field in the mutation.
func (m *SectionExtractionMutation) Relationships() (r []map[string]interface{}, exists bool) {
	v := m.relationships
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationships returns the old "relationships" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldRelationships(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationships is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationships requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationships: %w", err)
	}
	return oldValue.Relationships, nil
}

// AppendRelationships adds value to the "relationships" field.
func (m *SectionExtractionMutation) AppendRelationships(value []map[string]interface{}) {
	m.appendrelationships = append(m.appendrelationships, value...)
}

// AppendedRelationships returns the list of values that were appended to the "relationships" field in this mutation.
func (m *SectionExtractionMutation) AppendedRelationships() ([]map[string]interface{}, bool) {
	if len(m.appendrelationships) == 0 {
		return nil, false
	}
	return m.appendrelationships, true
}

// ClearRelationships clears the value of the "relationships" field.
func (m *SectionExtractionMutation) ClearRelationships() {
	m.relationships = nil
	m.appendrelationships = nil
	m.clearedFields[sectionextraction.FieldRelationships] = struct{}{}
}

// RelationshipsCleared returns if the "relationships" field was cleared in this mutation.
func (m *SectionExtractionMutation) RelationshipsCleared() bool {
	_, ok := m.clearedFields[sectionextraction.FieldRelationships]
	return ok
}

// ResetRelationships resets all changes to the "relationships" field.
func (m *SectionExtractionMutation) ResetRelationships() {
	m.relationships = nil
	m.appendrelationships = nil
	delete(m.clearedFields, sectionextraction.FieldRelationships)
}

// SetClaims sets the "claims" field.
func (m *SectionExtractionMutation) SetClaims(value []map[string]interface{}) {
	m.claims = &value
	m.appendclaims = nil
}

// Claims returns the value of the "claims" field in the mutation.
func (m *SectionExtractionMutation) Claims() (r []map[string]interface{}, exists bool) {
	v := m.claims
	if v == nil {
		return
	}
	return *v, true
}

// OldClaims returns the old "claims" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldClaims(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaims is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaims requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaims: %w", err)
	}
	return oldValue.Claims, nil
}

// AppendClaims adds value to the "claims" field.
func (m *SectionExtractionMutation) AppendClaims(value []map[string]interface{}) {
	m.appendclaims = append(m.appendclaims, value...)
}

// AppendedClaims returns the list of values that were appended to the "claims" field in this mutation.
func (m *SectionExtractionMutation) AppendedClaims() ([]map[string]interface{}, bool) {
	if len(m.appendclaims) == 0 {
		return nil, false
	}
	return m.appendclaims, true
}

// ClearClaims clears the value of the "claims" field.
func (m *SectionExtractionMutation) ClearClaims() {
	m.claims = nil
	m.appendclaims = nil
	m.clearedFields[sectionextraction.FieldClaims] = struct{}{}
}

// ClaimsCleared returns if the "claims" field was cleared in this mutation.
func (m *SectionExtractionMutation) ClaimsCleared() bool {
	_, ok := m.clearedFields[sectionextraction.FieldClaims]
	return ok
}

// ResetClaims resets all changes to the "claims" field.
func (m *SectionExtractionMutation) ResetClaims() {
	m.claims = nil
	m.appendclaims = nil
	delete(m.clearedFields, sectionextraction.FieldClaims)
}

// SetContentType sets the "content_type" field.
func (m *SectionExtractionMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *SectionExtractionMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *SectionExtractionMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[sectionextraction.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *SectionExtractionMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[sectionextraction.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *SectionExtractionMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, sectionextraction.FieldContentType)
}

// SetStatus sets the "status" field.
func (m *SectionExtractionMutation) SetStatus(s sectionextraction.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SectionExtractionMutation) Status() (r sectionextraction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldStatus(ctx context.Context) (v sectionextraction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SectionExtractionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SectionExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SectionExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SectionExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SectionExtractionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SectionExtractionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SectionExtraction entity.
// If the SectionExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionExtractionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SectionExtractionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SectionExtractionMutation builder.
func (m *SectionExtractionMutation) Where(ps ...predicate.SectionExtraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SectionExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SectionExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SectionExtraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SectionExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SectionExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SectionExtraction).
func (m *SectionExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SectionExtractionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workflow_id != nil {
		fields = append(fields, sectionextraction.FieldWorkflowID)
	}
	if m.document_id != nil {
		fields = append(fields, sectionextraction.FieldDocumentID)
	}
	if m.section_id != nil {
		fields = append(fields, sectionextraction.FieldSectionID)
	}
	if m.section_index != nil {
		fields = append(fields, sectionextraction.FieldSectionIndex)
	}
	if m.header != nil {
		fields = append(fields, sectionextraction.FieldHeader)
	}
	if m.content != nil {
		fields = append(fields, sectionextraction.FieldContent)
	}
	if m.embedding != nil {
		fields = append(fields, sectionextraction.FieldEmbedding)
	}
	if m.entities != nil {
		fields = append(fields, sectionextraction.FieldEntities)
	}
	if m.relationships != nil {
		fields = append(fields, sectionextraction.FieldRelationships)
	}
	if m.claims != nil {
		fields = append(fields, sectionextraction.FieldClaims)
	}
	if m.content_type != nil {
		fields = append(fields, sectionextraction.FieldContentType)
	}
	if m.status != nil {
		fields = append(fields, sectionextraction.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, sectionextraction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sectionextraction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SectionExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sectionextraction.FieldWorkflowID:
		return m.WorkflowID()
	case sectionextraction.FieldDocumentID:
		return m.DocumentID()
	case sectionextraction.FieldSectionID:
		return m.SectionID()
	case sectionextraction.FieldSectionIndex:
		return m.SectionIndex()
	case sectionextraction.FieldHeader:
		return m.Header()
	case sectionextraction.FieldContent:
		return m.Content()
	case sectionextraction.FieldEmbedding:
		return m.Embedding()
	case sectionextraction.FieldEntities:
		return m.Entities()
	case sectionextraction.FieldRelationships:
		return m.Relationships()
	case sectionextraction.FieldClaims:
		return m.Claims()
	case sectionextraction.FieldContentType:
		return m.ContentType()
	case sectionextraction.FieldStatus:
		return m.Status()
	case sectionextraction.FieldCreatedAt:
		return m.CreatedAt()
	case sectionextraction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SectionExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sectionextraction.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case sectionextraction.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case sectionextraction.FieldSectionID:
		return m.OldSectionID(ctx)
	case sectionextraction.FieldSectionIndex:
		return m.OldSectionIndex(ctx)
	case sectionextraction.FieldHeader:
		return m.OldHeader(ctx)
	case sectionextraction.FieldContent:
		return m.OldContent(ctx)
	case sectionextraction.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case sectionextraction.FieldEntities:
		return m.OldEntities(ctx)
	case sectionextraction.FieldRelationships:
		return m.OldRelationships(ctx)
	case sectionextraction.FieldClaims:
		return m.OldClaims(ctx)
	case sectionextraction.FieldContentType:
		return m.OldContentType(ctx)
	case sectionextraction.FieldStatus:
		return m.OldStatus(ctx)
	case sectionextraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sectionextraction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SectionExtraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sectionextraction.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case sectionextraction.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case sectionextraction.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case sectionextraction.FieldSectionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionIndex(v)
		return nil
	case sectionextraction.FieldHeader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeader(v)
		return nil
	case sectionextraction.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case sectionextraction.FieldEmbedding:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case sectionextraction.FieldEntities:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case sectionextraction.FieldRelationships:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationships(v)
		return nil
	case sectionextraction.FieldClaims:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaims(v)
		return nil
	case sectionextraction.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case sectionextraction.FieldStatus:
		v, ok := value.(sectionextraction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sectionextraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sectionextraction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SectionExtraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SectionExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addsection_index != nil {
		fields = append(fields, sectionextraction.FieldSectionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SectionExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sectionextraction.FieldSectionIndex:
		return m.AddedSectionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sectionextraction.FieldSectionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSectionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SectionExtraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SectionExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sectionextraction.FieldHeader) {
		fields = append(fields, sectionextraction.FieldHeader)
	}
	if m.FieldCleared(sectionextraction.FieldEmbedding) {
		fields = append(fields, sectionextraction.FieldEmbedding)
	}
	if m.FieldCleared(sectionextraction.FieldEntities) {
		fields = append(fields, sectionextraction.FieldEntities)
	}
	if m.FieldCleared(sectionextraction.FieldRelationships) {
		fields = append(fields, sectionextraction.FieldRelationships)
	}
	if m.FieldCleared(sectionextraction.FieldClaims) {
		fields = append(fields, sectionextraction.FieldClaims)
	}
	if m.FieldCleared(sectionextraction.FieldContentType) {
		fields = append(fields, sectionextraction.FieldContentType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SectionExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SectionExtractionMutation) ClearField(name string) error {
	switch name {
	case sectionextraction.FieldHeader:
		m.ClearHeader()
		return nil
	case sectionextraction.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case sectionextraction.FieldEntities:
		m.ClearEntities()
		return nil
	case sectionextraction.FieldRelationships:
		m.ClearRelationships()
		return nil
	case sectionextraction.FieldClaims:
		m.ClearClaims()
		return nil
	case sectionextraction.FieldContentType:
		m.ClearContentType()
		return nil
	}
	return fmt.Errorf("unknown SectionExtraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SectionExtractionMutation) ResetField(name string) error {
	switch name {
	case sectionextraction.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case sectionextraction.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case sectionextraction.FieldSectionID:
		m.ResetSectionID()
		return nil
	case sectionextraction.FieldSectionIndex:
		m.ResetSectionIndex()
		return nil
	case sectionextraction.FieldHeader:
		m.ResetHeader()
		return nil
	case sectionextraction.FieldContent:
		m.ResetContent()
		return nil
	case sectionextraction.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case sectionextraction.FieldEntities:
		m.ResetEntities()
		return nil
	case sectionextraction.FieldRelationships:
		m.ResetRelationships()
		return nil
	case sectionextraction.FieldClaims:
		m.ResetClaims()
		return nil
	case sectionextraction.FieldContentType:
		m.ResetContentType()
		return nil
	case sectionextraction.FieldStatus:
		m.ResetStatus()
		return nil
	case sectionextraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sectionextraction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SectionExtraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SectionExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SectionExtractionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SectionExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SectionExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SectionExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SectionExtractionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SectionExtractionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SectionExtraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SectionExtractionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SectionExtraction edge %s", name)
}

// StepEventMutation represents an operation that mutates the StepEvent nodes in the graph.
type StepEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	step_id        *string
	substep        *string
	status         *stepevent.Status
	current        *int
	addcurrent     *int
	total          *int
	addtotal       *int
	message        *string
	stream         *string
	event_metadata *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*StepEvent, error)
	predicates     []predicate.StepEvent
}

var _ ent.Mutation = (*StepEventMutation)(nil)

// stepeventOption allows management of the mutation configuration using functional options.
type stepeventOption func(*StepEventMutation)

// newStepEventMutation creates new mutation for the StepEvent entity.
func newStepEventMutation(c config, op Op, opts ...stepeventOption) *StepEventMutation {
	m := &StepEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStepEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepEventID sets the ID field of the mutation.
func withStepEventID(id int) stepeventOption {
	return func(m *StepEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StepEvent
		)
		m.oldValue = func(ctx context.Context) (*StepEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepEvent sets the old StepEvent of the mutation.
func withStepEvent(node *StepEvent) stepeventOption {
	return func(m *StepEventMutation) {
		m.oldValue = func(context.Context) (*StepEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *StepEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StepEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StepEventMutation) ResetRunID() {
	m.run = nil
}

// SetStepID sets the "step_id" field.
func (m *StepEventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepEventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *StepEventMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[stepevent.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *StepEventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepEventMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, stepevent.FieldStepID)
}

// SetSubstep sets the "substep" field.
func (m *StepEventMutation) SetSubstep(s string) {
	m.substep = &s
}

// Substep returns the value of the "substep" field in the mutation.
func (m *StepEventMutation) Substep() (r string, exists bool) {
	v := m.substep
	if v == nil {
		return
	}
	return *v, true
}

// OldSubstep returns the old "substep" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldSubstep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubstep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubstep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubstep: %w", err)
	}
	return oldValue.Substep, nil
}

// ClearSubstep clears the value of the "substep" field.
func (m *StepEventMutation) ClearSubstep() {
	m.substep = nil
	m.clearedFields[stepevent.FieldSubstep] = struct{}{}
}

// SubstepCleared returns if the "substep" field was cleared in this mutation.
func (m *StepEventMutation) SubstepCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldSubstep]
	return ok
}

// ResetSubstep resets all changes to the "substep" field.
func (m *StepEventMutation) ResetSubstep() {
	m.substep = nil
	delete(m.clearedFields, stepevent.FieldSubstep)
}

// SetStatus sets the "status" field.
func (m *StepEventMutation) SetStatus(s stepevent.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepEventMutation) Status() (r stepevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldStatus(ctx context.Context) (v stepevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepEventMutation) ResetStatus() {
	m.status = nil
}

// SetCurrent sets the "current" field.
func (m *StepEventMutation) SetCurrent(i int) {
	m.current = &i
	m.addcurrent = nil
}

// Current returns the value of the "current" field in the mutation.
func (m *StepEventMutation) Current() (r int, exists bool) {
	v := m.current
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrent returns the old "current" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldCurrent(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrent: %w", err)
	}
	return oldValue.Current, nil
}

// AddCurrent adds i to the "current" field.
func (m *StepEventMutation) AddCurrent(i int) {
	if m.addcurrent != nil {
		*m.addcurrent += i
	} else {
		m.addcurrent = &i
	}
}

// AddedCurrent returns the value that was added to the "current" field in this mutation.
func (m *StepEventMutation) AddedCurrent() (r int, exists bool) {
	v := m.addcurrent
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrent clears the value of the "current" field.
func (m *StepEventMutation) ClearCurrent() {
	m.current = nil
	m.addcurrent = nil
	m.clearedFields[stepevent.FieldCurrent] = struct{}{}
}

// CurrentCleared returns if the "current" field was cleared in this mutation.
func (m *StepEventMutation) CurrentCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldCurrent]
	return ok
}

// ResetCurrent resets all changes to the "current" field.
func (m *StepEventMutation) ResetCurrent() {
	m.current = nil
	m.addcurrent = nil
	delete(m.clearedFields, stepevent.FieldCurrent)
}

// SetTotal sets the "total" field.
func (m *StepEventMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *StepEventMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldTotal(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *StepEventMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *StepEventMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotal clears the value of the "total" field.
func (m *StepEventMutation) ClearTotal() {
	m.total = nil
	m.addtotal = nil
	m.clearedFields[stepevent.FieldTotal] = struct{}{}
}

// TotalCleared returns if the "total" field was cleared in this mutation.
func (m *StepEventMutation) TotalCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldTotal]
	return ok
}

// ResetTotal resets all changes to the "total" field.
func (m *StepEventMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
	delete(m.clearedFields, stepevent.FieldTotal)
}

// SetMessage sets the "message" field.
func (m *StepEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *StepEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *StepEventMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[stepevent.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *StepEventMutation) MessageCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *StepEventMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, stepevent.FieldMessage)
}

// SetStream sets the "stream" field.
func (m *StepEventMutation) SetStream(s string) {
	m.stream = &s
}

// Stream returns the value of the "stream" field in the mutation.
func (m *StepEventMutation) Stream() (r string, exists bool) {
	v := m.stream
	if v == nil {
		return
	}
	return *v, true
}

// OldStream returns the old "stream" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldStream(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStream is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStream requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStream: %w", err)
	}
	return oldValue.Stream, nil
}

// ResetStream resets all changes to the "stream" field.
func (m *StepEventMutation) ResetStream() {
	m.stream = nil
}

// SetEventMetadata sets the "event_metadata" field.
func (m *StepEventMutation) SetEventMetadata(value map[string]interface{}) {
	m.event_metadata = &value
}

// EventMetadata returns the value of the "event_metadata" field in the mutation.
func (m *StepEventMutation) EventMetadata() (r map[string]interface{}, exists bool) {
	v := m.event_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldEventMetadata returns the old "event_metadata" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldEventMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventMetadata: %w", err)
	}
	return oldValue.EventMetadata, nil
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (m *StepEventMutation) ClearEventMetadata() {
	m.event_metadata = nil
	m.clearedFields[stepevent.FieldEventMetadata] = struct{}{}
}

// EventMetadataCleared returns if the "event_metadata" field was cleared in this mutation.
func (m *StepEventMutation) EventMetadataCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldEventMetadata]
	return ok
}

// ResetEventMetadata resets all changes to the "event_metadata" field.
func (m *StepEventMutation) ResetEventMetadata() {
	m.event_metadata = nil
	delete(m.clearedFields, stepevent.FieldEventMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *StepEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[stepevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *StepEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StepEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StepEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the StepEventMutation builder.
func (m *StepEventMutation) Where(ps ...predicate.StepEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepEvent).
func (m *StepEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, stepevent.FieldRunID)
	}
	if m.step_id != nil {
		fields = append(fields, stepevent.FieldStepID)
	}
	if m.substep != nil {
		fields = append(fields, stepevent.FieldSubstep)
	}
	if m.status != nil {
		fields = append(fields, stepevent.FieldStatus)
	}
	if m.current != nil {
		fields = append(fields, stepevent.FieldCurrent)
	}
	if m.total != nil {
		fields = append(fields, stepevent.FieldTotal)
	}
	if m.message != nil {
		fields = append(fields, stepevent.FieldMessage)
	}
	if m.stream != nil {
		fields = append(fields, stepevent.FieldStream)
	}
	if m.event_metadata != nil {
		fields = append(fields, stepevent.FieldEventMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, stepevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepevent.FieldRunID:
		return m.RunID()
	case stepevent.FieldStepID:
		return m.StepID()
	case stepevent.FieldSubstep:
		return m.Substep()
	case stepevent.FieldStatus:
		return m.Status()
	case stepevent.FieldCurrent:
		return m.Current()
	case stepevent.FieldTotal:
		return m.Total()
	case stepevent.FieldMessage:
		return m.Message()
	case stepevent.FieldStream:
		return m.Stream()
	case stepevent.FieldEventMetadata:
		return m.EventMetadata()
	case stepevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepevent.FieldRunID:
		return m.OldRunID(ctx)
	case stepevent.FieldStepID:
		return m.OldStepID(ctx)
	case stepevent.FieldSubstep:
		return m.OldSubstep(ctx)
	case stepevent.FieldStatus:
		return m.OldStatus(ctx)
	case stepevent.FieldCurrent:
		return m.OldCurrent(ctx)
	case stepevent.FieldTotal:
		return m.OldTotal(ctx)
	case stepevent.FieldMessage:
		return m.OldMessage(ctx)
	case stepevent.FieldStream:
		return m.OldStream(ctx)
	case stepevent.FieldEventMetadata:
		return m.OldEventMetadata(ctx)
	case stepevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case stepevent.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stepevent.FieldSubstep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubstep(v)
		return nil
	case stepevent.FieldStatus:
		v, ok := value.(stepevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stepevent.FieldCurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrent(v)
		return nil
	case stepevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case stepevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case stepevent.FieldStream:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStream(v)
		return nil
	case stepevent.FieldEventMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventMetadata(v)
		return nil
	case stepevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepEventMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent != nil {
		fields = append(fields, stepevent.FieldCurrent)
	}
	if m.addtotal != nil {
		fields = append(fields, stepevent.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepevent.FieldCurrent:
		return m.AddedCurrent()
	case stepevent.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepevent.FieldCurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrent(v)
		return nil
	case stepevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown StepEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepevent.FieldStepID) {
		fields = append(fields, stepevent.FieldStepID)
	}
	if m.FieldCleared(stepevent.FieldSubstep) {
		fields = append(fields, stepevent.FieldSubstep)
	}
	if m.FieldCleared(stepevent.FieldCurrent) {
		fields = append(fields, stepevent.FieldCurrent)
	}
	if m.FieldCleared(stepevent.FieldTotal) {
		fields = append(fields, stepevent.FieldTotal)
	}
	if m.FieldCleared(stepevent.FieldMessage) {
		fields = append(fields, stepevent.FieldMessage)
	}
	if m.FieldCleared(stepevent.FieldEventMetadata) {
		fields = append(fields, stepevent.FieldEventMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepEventMutation) ClearField(name string) error {
	switch name {
	case stepevent.FieldStepID:
		m.ClearStepID()
		return nil
	case stepevent.FieldSubstep:
		m.ClearSubstep()
		return nil
	case stepevent.FieldCurrent:
		m.ClearCurrent()
		return nil
	case stepevent.FieldTotal:
		m.ClearTotal()
		return nil
	case stepevent.FieldMessage:
		m.ClearMessage()
		return nil
	case stepevent.FieldEventMetadata:
		m.ClearEventMetadata()
		return nil
	}
	return fmt.Errorf("unknown StepEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepEventMutation) ResetField(name string) error {
	switch name {
	case stepevent.FieldRunID:
		m.ResetRunID()
		return nil
	case stepevent.FieldStepID:
		m.ResetStepID()
		return nil
	case stepevent.FieldSubstep:
		m.ResetSubstep()
		return nil
	case stepevent.FieldStatus:
		m.ResetStatus()
		return nil
	case stepevent.FieldCurrent:
		m.ResetCurrent()
		return nil
	case stepevent.FieldTotal:
		m.ResetTotal()
		return nil
	case stepevent.FieldMessage:
		m.ResetMessage()
		return nil
	case stepevent.FieldStream:
		m.ResetStream()
		return nil
	case stepevent.FieldEventMetadata:
		m.ResetEventMetadata()
		return nil
	case stepevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StepEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, stepevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, stepevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepEventMutation) EdgeCleared(name string) bool {
	switch name {
	case stepevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepEventMutation) ClearEdge(name string) error {
	switch name {
	case stepevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StepEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepEventMutation) ResetEdge(name string) error {
	switch name {
	case stepevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown StepEvent edge %s", name)
}

// StepLogMutation represents an operation that mutates the StepLog nodes in the graph.
type StepLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	step_id         *string
	tool            *string
	status          *steplog.Status
	started_at      *time.Time
	completed_at    *time.Time
	input_count     *int
	addinput_count  *int
	output_count    *int
	addoutput_count *int
	error_count     *int
	adderror_count  *int
	input_hash      *string
	errors          *[]map[string]interface{}
	appenderrors    []map[string]interface{}
	step_metadata   *map[string]interface{}
	clearedFields   map[string]struct{}
	run             *string
	clearedrun      bool
	done            bool
	oldValue        func(context.Context) (*StepLog, error)
	predicates      []predicate.StepLog
}

var _ ent.Mutation = (*StepLogMutation)(nil)

// steplogOption allows management of the mutation configuration using functional options.
type steplogOption func(*StepLogMutation)

// newStepLogMutation creates new mutation for the StepLog entity.
func newStepLogMutation(c config, op Op, opts ...steplogOption) *StepLogMutation {
	m := &StepLogMutation{
		config:        c,
		op:            op,
		typ:           TypeStepLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepLogID sets the ID field of the mutation.
func withStepLogID(id string) steplogOption {
	return func(m *StepLogMutation) {
		var (
			err   error
			once  sync.Once
			value *StepLog
		)
		m.oldValue = func(ctx context.Context) (*StepLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepLog sets the old StepLog of the mutation.
func withStepLog(node *StepLog) steplogOption {
	return func(m *StepLogMutation) {
		m.oldValue = func(context.Context) (*StepLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepLog entities.
func (m *StepLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *StepLogMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StepLogMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StepLogMutation) ResetRunID() {
	m.run = nil
}

// SetStepID sets the "step_id" field.
func (m *StepLogMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepLogMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepLogMutation) ResetStepID() {
	m.step_id = nil
}

// SetTool sets the "tool" field.
func (m *StepLogMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *StepLogMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ResetTool resets all changes to the "tool" field.
func (m *StepLogMutation) ResetTool() {
	m.tool = nil
}

// SetStatus sets the "status" field.
func (m *StepLogMutation) SetStatus(s steplog.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepLogMutation) Status() (r steplog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldStatus(ctx context.Context) (v steplog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepLogMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StepLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepLogMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[steplog.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepLogMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[steplog.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepLogMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, steplog.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[steplog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[steplog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, steplog.FieldCompletedAt)
}

// SetInputCount sets the "input_count" field.
func (m *StepLogMutation) SetInputCount(i int) {
	m.input_count = &i
	m.addinput_count = nil
}

// InputCount returns the value of the "input_count" field in the mutation.
func (m *StepLogMutation) InputCount() (r int, exists bool) {
	v := m.input_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInputCount returns the old "input_count" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldInputCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputCount: %w", err)
	}
	return oldValue.InputCount, nil
}

// AddInputCount adds i to the "input_count" field.
func (m *StepLogMutation) AddInputCount(i int) {
	if m.addinput_count != nil {
		*m.addinput_count += i
	} else {
		m.addinput_count = &i
	}
}

// AddedInputCount returns the value that was added to the "input_count" field in this mutation.
func (m *StepLogMutation) AddedInputCount() (r int, exists bool) {
	v := m.addinput_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputCount resets all changes to the "input_count" field.
func (m *StepLogMutation) ResetInputCount() {
	m.input_count = nil
	m.addinput_count = nil
}

// SetOutputCount sets the "output_count" field.
func (m *StepLogMutation) SetOutputCount(i int) {
	m.output_count = &i
	m.addoutput_count = nil
}

// OutputCount returns the value of the "output_count" field in the mutation.
func (m *StepLogMutation) OutputCount() (r int, exists bool) {
	v := m.output_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputCount returns the old "output_count" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldOutputCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputCount: %w", err)
	}
	return oldValue.OutputCount, nil
}

// AddOutputCount adds i to the "output_count" field.
func (m *StepLogMutation) AddOutputCount(i int) {
	if m.addoutput_count != nil {
		*m.addoutput_count += i
	} else {
		m.addoutput_count = &i
	}
}

// AddedOutputCount returns the value that was added to the "output_count" field in this mutation.
func (m *StepLogMutation) AddedOutputCount() (r int, exists bool) {
	v := m.addoutput_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputCount resets all changes to the "output_count" field.
func (m *StepLogMutation) ResetOutputCount() {
	m.output_count = nil
	m.addoutput_count = nil
}

// SetErrorCount sets the "error_count" field.
func (m *StepLogMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *StepLogMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *StepLogMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *StepLogMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *StepLogMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetInputHash sets the "input_hash" field.
func (m *StepLogMutation) SetInputHash(s string) {
	m.input_hash = &s
}

// InputHash returns the value of the "input_hash" field in the mutation.
func (m *StepLogMutation) InputHash() (r string, exists bool) {
	v := m.input_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldInputHash returns the old "input_hash" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldInputHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputHash: %w", err)
	}
	return oldValue.InputHash, nil
}

// ClearInputHash clears the value of the "input_hash" field.
func (m *StepLogMutation) ClearInputHash() {
	m.input_hash = nil
	m.clearedFields[steplog.FieldInputHash] = struct{}{}
}

// InputHashCleared returns if the "input_hash" field was cleared in this mutation.
func (m *StepLogMutation) InputHashCleared() bool {
	_, ok := m.clearedFields[steplog.FieldInputHash]
	return ok
}

// ResetInputHash resets all changes to the "input_hash" field.
func (m *StepLogMutation) ResetInputHash() {
	m.input_hash = nil
	delete(m.clearedFields, steplog.FieldInputHash)
}

// SetErrors sets the "errors" field.
func (m *StepLogMutation) SetErrors(value []map[string]interface{}) {
	m.errors = &value
	m.appenderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *StepLogMutation) Errors() (r []map[string]interface{}, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldErrors(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AppendErrors adds value to the "errors" field.
func (m *StepLogMutation) AppendErrors(value []map[string]interface{}) {
	m.appenderrors = append(m.appenderrors, value...)
}

// AppendedErrors returns the list of values that were appended to the "errors" field in this mutation.
func (m *StepLogMutation) AppendedErrors() ([]map[string]interface{}, bool) {
	if len(m.appenderrors) == 0 {
		return nil, false
	}
	return m.appenderrors, true
}

// ClearErrors clears the value of the "errors" field.
func (m *StepLogMutation) ClearErrors() {
	m.errors = nil
	m.appenderrors = nil
	m.clearedFields[steplog.FieldErrors] = struct{}{}
}

// ErrorsCleared returns if the "errors" field was cleared in this mutation.
func (m *StepLogMutation) ErrorsCleared() bool {
	_, ok := m.clearedFields[steplog.FieldErrors]
	return ok
}

// ResetErrors resets all changes to the "errors" field.
func (m *StepLogMutation) ResetErrors() {
	m.errors = nil
	m.appenderrors = nil
	delete(m.clearedFields, steplog.FieldErrors)
}

// SetStepMetadata sets the "step_metadata" field.
func (m *StepLogMutation) SetStepMetadata(value map[string]interface{}) {
	m.step_metadata = &value
}

// StepMetadata returns the value of the "step_metadata" field in the mutation.
func (m *StepLogMutation) StepMetadata() (r map[string]interface{}, exists bool) {
	v := m.step_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldStepMetadata returns the old "step_metadata" field's value of the StepLog entity.
// If the StepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepLogMutation) OldStepMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepMetadata: %w", err)
	}
	return oldValue.StepMetadata, nil
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (m *StepLogMutation) ClearStepMetadata() {
	m.step_metadata = nil
	m.clearedFields[steplog.FieldStepMetadata] = struct{}{}
}

// StepMetadataCleared returns if the "step_metadata" field was cleared in this mutation.
func (m *StepLogMutation) StepMetadataCleared() bool {
	_, ok := m.clearedFields[steplog.FieldStepMetadata]
	return ok
}

// ResetStepMetadata resets all changes to the "step_metadata" field.
func (m *StepLogMutation) ResetStepMetadata() {
	m.step_metadata = nil
	delete(m.clearedFields, steplog.FieldStepMetadata)
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *StepLogMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[steplog.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *StepLogMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StepLogMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StepLogMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the StepLogMutation builder.
func (m *StepLogMutation) Where(ps ...predicate.StepLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepLog).
func (m *StepLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepLogMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, steplog.FieldRunID)
	}
	if m.step_id != nil {
		fields = append(fields, steplog.FieldStepID)
	}
	if m.tool != nil {
		fields = append(fields, steplog.FieldTool)
	}
	if m.status != nil {
		fields = append(fields, steplog.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, steplog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, steplog.FieldCompletedAt)
	}
	if m.input_count != nil {
		fields = append(fields, steplog.FieldInputCount)
	}
	if m.output_count != nil {
		fields = append(fields, steplog.FieldOutputCount)
	}
	if m.error_count != nil {
		fields = append(fields, steplog.FieldErrorCount)
	}
	if m.input_hash != nil {
		fields = append(fields, steplog.FieldInputHash)
	}
	if m.errors != nil {
		fields = append(fields, steplog.FieldErrors)
	}
	if m.step_metadata != nil {
		fields = append(fields, steplog.FieldStepMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case steplog.FieldRunID:
		return m.RunID()
	case steplog.FieldStepID:
		return m.StepID()
	case steplog.FieldTool:
		return m.Tool()
	case steplog.FieldStatus:
		return m.Status()
	case steplog.FieldStartedAt:
		return m.StartedAt()
	case steplog.FieldCompletedAt:
		return m.CompletedAt()
	case steplog.FieldInputCount:
		return m.InputCount()
	case steplog.FieldOutputCount:
		return m.OutputCount()
	case steplog.FieldErrorCount:
		return m.ErrorCount()
	case steplog.FieldInputHash:
		return m.InputHash()
	case steplog.FieldErrors:
		return m.Errors()
	case steplog.FieldStepMetadata:
		return m.StepMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case steplog.FieldRunID:
		return m.OldRunID(ctx)
	case steplog.FieldStepID:
		return m.OldStepID(ctx)
	case steplog.FieldTool:
		return m.OldTool(ctx)
	case steplog.FieldStatus:
		return m.OldStatus(ctx)
	case steplog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case steplog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case steplog.FieldInputCount:
		return m.OldInputCount(ctx)
	case steplog.FieldOutputCount:
		return m.OldOutputCount(ctx)
	case steplog.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case steplog.FieldInputHash:
		return m.OldInputHash(ctx)
	case steplog.FieldErrors:
		return m.OldErrors(ctx)
	case steplog.FieldStepMetadata:
		return m.OldStepMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown StepLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case steplog.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case steplog.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case steplog.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case steplog.FieldStatus:
		v, ok := value.(steplog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case steplog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case steplog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case steplog.FieldInputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputCount(v)
		return nil
	case steplog.FieldOutputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputCount(v)
		return nil
	case steplog.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case steplog.FieldInputHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputHash(v)
		return nil
	case steplog.FieldErrors:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case steplog.FieldStepMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown StepLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_count != nil {
		fields = append(fields, steplog.FieldInputCount)
	}
	if m.addoutput_count != nil {
		fields = append(fields, steplog.FieldOutputCount)
	}
	if m.adderror_count != nil {
		fields = append(fields, steplog.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case steplog.FieldInputCount:
		return m.AddedInputCount()
	case steplog.FieldOutputCount:
		return m.AddedOutputCount()
	case steplog.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case steplog.FieldInputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputCount(v)
		return nil
	case steplog.FieldOutputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputCount(v)
		return nil
	case steplog.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown StepLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(steplog.FieldStartedAt) {
		fields = append(fields, steplog.FieldStartedAt)
	}
	if m.FieldCleared(steplog.FieldCompletedAt) {
		fields = append(fields, steplog.FieldCompletedAt)
	}
	if m.FieldCleared(steplog.FieldInputHash) {
		fields = append(fields, steplog.FieldInputHash)
	}
	if m.FieldCleared(steplog.FieldErrors) {
		fields = append(fields, steplog.FieldErrors)
	}
	if m.FieldCleared(steplog.FieldStepMetadata) {
		fields = append(fields, steplog.FieldStepMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepLogMutation) ClearField(name string) error {
	switch name {
	case steplog.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case steplog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case steplog.FieldInputHash:
		m.ClearInputHash()
		return nil
	case steplog.FieldErrors:
		m.ClearErrors()
		return nil
	case steplog.FieldStepMetadata:
		m.ClearStepMetadata()
		return nil
	}
	return fmt.Errorf("unknown StepLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepLogMutation) ResetField(name string) error {
	switch name {
	case steplog.FieldRunID:
		m.ResetRunID()
		return nil
	case steplog.FieldStepID:
		m.ResetStepID()
		return nil
	case steplog.FieldTool:
		m.ResetTool()
		return nil
	case steplog.FieldStatus:
		m.ResetStatus()
		return nil
	case steplog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case steplog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case steplog.FieldInputCount:
		m.ResetInputCount()
		return nil
	case steplog.FieldOutputCount:
		m.ResetOutputCount()
		return nil
	case steplog.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case steplog.FieldInputHash:
		m.ResetInputHash()
		return nil
	case steplog.FieldErrors:
		m.ResetErrors()
		return nil
	case steplog.FieldStepMetadata:
		m.ResetStepMetadata()
		return nil
	}
	return fmt.Errorf("unknown StepLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, steplog.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case steplog.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, steplog.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepLogMutation) EdgeCleared(name string) bool {
	switch name {
	case steplog.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepLogMutation) ClearEdge(name string) error {
	switch name {
	case steplog.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StepLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepLogMutation) ResetEdge(name string) error {
	switch name {
	case steplog.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown StepLog edge %s", name)
}

// WorkflowRunMutation represents an operation that mutates the WorkflowRun nodes in the graph.
type WorkflowRunMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workflow_name      *string
	status             *workflowrun.Status
	inputs             *map[string]interface{}
	error_message      *string
	run_metadata       *map[string]interface{}
	parent_workflow_id *string
	priority           *int
	addpriority        *int
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	pod_id             *string
	last_heartbeat_at  *time.Time
	clearedFields      map[string]struct{}
	step_logs          map[string]struct{}
	removedstep_logs   map[string]struct{}
	clearedstep_logs   bool
	step_events        map[int]struct{}
	removedstep_events map[int]struct{}
	clearedstep_events bool
	done               bool
	oldValue           func(context.Context) (*WorkflowRun, error)
	predicates         []predicate.WorkflowRun
}

var _ ent.Mutation = (*WorkflowRunMutation)(nil)

// workflowrunOption allows management of the mutation configuration using functional options.
type workflowrunOption func(*WorkflowRunMutation)

// newWorkflowRunMutation creates new mutation for the WorkflowRun entity.
func newWorkflowRunMutation(c config, op Op, opts ...workflowrunOption) *WorkflowRunMutation {
	m := &WorkflowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowRunID sets the ID field of the mutation.
func withWorkflowRunID(id string) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowRun
		)
		m.oldValue = func(ctx context.Context) (*WorkflowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowRun sets the old WorkflowRun of the mutation.
func withWorkflowRun(node *WorkflowRun) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		m.oldValue = func(context.Context) (*WorkflowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowRun entities.
func (m *WorkflowRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowName sets the "workflow_name" field.
func (m *WorkflowRunMutation) SetWorkflowName(s string) {
	m.workflow_name = &s
}

// WorkflowName returns the value of the "workflow_name" field in the mutation.
func (m *WorkflowRunMutation) WorkflowName() (r string, exists bool) {
	v := m.workflow_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowName returns the old "workflow_name" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldWorkflowName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowName: %w", err)
	}
	return oldValue.WorkflowName, nil
}

// ResetWorkflowName resets all changes to the "workflow_name" field.
func (m *WorkflowRunMutation) ResetWorkflowName() {
	m.workflow_name = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowRunMutation) SetStatus(w workflowrun.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowRunMutation) Status() (r workflowrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStatus(ctx context.Context) (v workflowrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowRunMutation) ResetStatus() {
	m.status = nil
}

// SetInputs sets the "inputs" field.
func (m *WorkflowRunMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *WorkflowRunMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *WorkflowRunMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[workflowrun.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *WorkflowRunMutation) InputsCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *WorkflowRunMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, workflowrun.FieldInputs)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowrun.FieldErrorMessage)
}

// SetRunMetadata sets the "run_metadata" field.
func (m *WorkflowRunMutation) SetRunMetadata(value map[string]interface{}) {
	m.run_metadata = &value
}

// RunMetadata returns the value of the "run_metadata" field in the mutation.
func (m *WorkflowRunMutation) RunMetadata() (r map[string]interface{}, exists bool) {
	v := m.run_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldRunMetadata returns the old "run_metadata" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldRunMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunMetadata: %w", err)
	}
	return oldValue.RunMetadata, nil
}

// ClearRunMetadata clears the value of the "run_metadata" field.
func (m *WorkflowRunMutation) ClearRunMetadata() {
	m.run_metadata = nil
	m.clearedFields[workflowrun.FieldRunMetadata] = struct{}{}
}

// RunMetadataCleared returns if the "run_metadata" field was cleared in this mutation.
func (m *WorkflowRunMutation) RunMetadataCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldRunMetadata]
	return ok
}

// ResetRunMetadata resets all changes to the "run_metadata" field.
func (m *WorkflowRunMutation) ResetRunMetadata() {
	m.run_metadata = nil
	delete(m.clearedFields, workflowrun.FieldRunMetadata)
}

// SetParentWorkflowID sets the "parent_workflow_id" field.
func (m *WorkflowRunMutation) SetParentWorkflowID(s string) {
	m.parent_workflow_id = &s
}

// ParentWorkflowID returns the value of the "parent_workflow_id" field in the mutation.
func (m *WorkflowRunMutation) ParentWorkflowID() (r string, exists bool) {
	v := m.parent_workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentWorkflowID returns the old "parent_workflow_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldParentWorkflowID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentWorkflowID: %w", err)
	}
	return oldValue.ParentWorkflowID, nil
}

// ClearParentWorkflowID clears the value of the "parent_workflow_id" field.
func (m *WorkflowRunMutation) ClearParentWorkflowID() {
	m.parent_workflow_id = nil
	m.clearedFields[workflowrun.FieldParentWorkflowID] = struct{}{}
}

// ParentWorkflowIDCleared returns if the "parent_workflow_id" field was cleared in this mutation.
func (m *WorkflowRunMutation) ParentWorkflowIDCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldParentWorkflowID]
	return ok
}

// ResetParentWorkflowID resets all changes to the "parent_workflow_id" field.
func (m *WorkflowRunMutation) ResetParentWorkflowID() {
	m.parent_workflow_id = nil
	delete(m.clearedFields, workflowrun.FieldParentWorkflowID)
}

// SetPriority sets the "priority" field.
func (m *WorkflowRunMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *WorkflowRunMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *WorkflowRunMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *WorkflowRunMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *WorkflowRunMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowrun.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflowrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflowrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflowrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflowrun.FieldLastHeartbeatAt)
}

// AddStepLogIDs adds the "step_logs" edge to the StepLog entity by ids.
func (m *WorkflowRunMutation) AddStepLogIDs(ids ...string) {
	if m.step_logs == nil {
		m.step_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.step_logs[ids[i]] = struct{}{}
	}
}

// ClearStepLogs clears the "step_logs" edge to the StepLog entity.
func (m *WorkflowRunMutation) ClearStepLogs() {
	m.clearedstep_logs = true
}

// StepLogsCleared reports if the "step_logs" edge to the StepLog entity was cleared.
func (m *WorkflowRunMutation) StepLogsCleared() bool {
	return m.clearedstep_logs
}

// RemoveStepLogIDs removes the "step_logs" edge to the StepLog entity by IDs.
func (m *WorkflowRunMutation) RemoveStepLogIDs(ids ...string) {
	if m.removedstep_logs == nil {
		m.removedstep_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_logs, ids[i])
		m.removedstep_logs[ids[i]] = struct{}{}
	}
}

// RemovedStepLogs returns the removed IDs of the "step_logs" edge to the StepLog entity.
func (m *WorkflowRunMutation) RemovedStepLogsIDs() (ids []string) {
	for id := range m.removedstep_logs {
		ids = append(ids, id)
	}
	return
}

// StepLogsIDs returns the "step_logs" edge IDs in the mutation.
func (m *WorkflowRunMutation) StepLogsIDs() (ids []string) {
	for id := range m.step_logs {
		ids = append(ids, id)
	}
	return
}

// ResetStepLogs resets all changes to the "step_logs" edge.
func (m *WorkflowRunMutation) ResetStepLogs() {
	m.step_logs = nil
	m.clearedstep_logs = false
	m.removedstep_logs = nil
}

// AddStepEventIDs adds the "step_events" edge to the StepEvent entity by ids.
func (m *WorkflowRunMutation) AddStepEventIDs(ids ...int) {
	if m.step_events == nil {
		m.step_events = make(map[int]struct{})
	}
	for i := range ids {
		m.step_events[ids[i]] = struct{}{}
	}
}

// ClearStepEvents clears the "step_events" edge to the StepEvent entity.
func (m *WorkflowRunMutation) ClearStepEvents() {
	m.clearedstep_events = true
}

// StepEventsCleared reports if the "step_events" edge to the StepEvent entity was cleared.
func (m *WorkflowRunMutation) StepEventsCleared() bool {
	return m.clearedstep_events
}

// RemoveStepEventIDs removes the "step_events" edge to the StepEvent entity by IDs.
func (m *WorkflowRunMutation) RemoveStepEventIDs(ids ...int) {
	if m.removedstep_events == nil {
		m.removedstep_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.step_events, ids[i])
		m.removedstep_events[ids[i]] = struct{}{}
	}
}

// RemovedStepEvents returns the removed IDs of the "step_events" edge to the StepEvent entity.
func (m *WorkflowRunMutation) RemovedStepEventsIDs() (ids []int) {
	for id := range m.removedstep_events {
		ids = append(ids, id)
	}
	return
}

// StepEventsIDs returns the "step_events" edge IDs in the mutation.
func (m *WorkflowRunMutation) StepEventsIDs() (ids []int) {
	for id := range m.step_events {
		ids = append(ids, id)
	}
	return
}

// ResetStepEvents resets all changes to the "step_events" edge.
func (m *WorkflowRunMutation) ResetStepEvents() {
	m.step_events = nil
	m.clearedstep_events = false
	m.removedstep_events = nil
}

// Where appends a list predicates to the WorkflowRunMutation builder.
func (m *WorkflowRunMutation) Where(ps ...predicate.WorkflowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowRun).
func (m *WorkflowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workflow_name != nil {
		fields = append(fields, workflowrun.FieldWorkflowName)
	}
	if m.status != nil {
		fields = append(fields, workflowrun.FieldStatus)
	}
	if m.inputs != nil {
		fields = append(fields, workflowrun.FieldInputs)
	}
	if m.error_message != nil {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.run_metadata != nil {
		fields = append(fields, workflowrun.FieldRunMetadata)
	}
	if m.parent_workflow_id != nil {
		fields = append(fields, workflowrun.FieldParentWorkflowID)
	}
	if m.priority != nil {
		fields = append(fields, workflowrun.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, workflowrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldWorkflowName:
		return m.WorkflowName()
	case workflowrun.FieldStatus:
		return m.Status()
	case workflowrun.FieldInputs:
		return m.Inputs()
	case workflowrun.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowrun.FieldRunMetadata:
		return m.RunMetadata()
	case workflowrun.FieldParentWorkflowID:
		return m.ParentWorkflowID()
	case workflowrun.FieldPriority:
		return m.Priority()
	case workflowrun.FieldCreatedAt:
		return m.CreatedAt()
	case workflowrun.FieldStartedAt:
		return m.StartedAt()
	case workflowrun.FieldCompletedAt:
		return m.CompletedAt()
	case workflowrun.FieldPodID:
		return m.PodID()
	case workflowrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowrun.FieldWorkflowName:
		return m.OldWorkflowName(ctx)
	case workflowrun.FieldStatus:
		return m.OldStatus(ctx)
	case workflowrun.FieldInputs:
		return m.OldInputs(ctx)
	case workflowrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowrun.FieldRunMetadata:
		return m.OldRunMetadata(ctx)
	case workflowrun.FieldParentWorkflowID:
		return m.OldParentWorkflowID(ctx)
	case workflowrun.FieldPriority:
		return m.OldPriority(ctx)
	case workflowrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowrun.FieldPodID:
		return m.OldPodID(ctx)
	case workflowrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldWorkflowName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowName(v)
		return nil
	case workflowrun.FieldStatus:
		v, ok := value.(workflowrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowrun.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case workflowrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowrun.FieldRunMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunMetadata(v)
		return nil
	case workflowrun.FieldParentWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentWorkflowID(v)
		return nil
	case workflowrun.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case workflowrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowRunMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, workflowrun.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowrun.FieldInputs) {
		fields = append(fields, workflowrun.FieldInputs)
	}
	if m.FieldCleared(workflowrun.FieldErrorMessage) {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.FieldCleared(workflowrun.FieldRunMetadata) {
		fields = append(fields, workflowrun.FieldRunMetadata)
	}
	if m.FieldCleared(workflowrun.FieldParentWorkflowID) {
		fields = append(fields, workflowrun.FieldParentWorkflowID)
	}
	if m.FieldCleared(workflowrun.FieldStartedAt) {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.FieldCleared(workflowrun.FieldCompletedAt) {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	if m.FieldCleared(workflowrun.FieldPodID) {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.FieldCleared(workflowrun.FieldLastHeartbeatAt) {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ClearField(name string) error {
	switch name {
	case workflowrun.FieldInputs:
		m.ClearInputs()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowrun.FieldRunMetadata:
		m.ClearRunMetadata()
		return nil
	case workflowrun.FieldParentWorkflowID:
		m.ClearParentWorkflowID()
		return nil
	case workflowrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowrun.FieldPodID:
		m.ClearPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ResetField(name string) error {
	switch name {
	case workflowrun.FieldWorkflowName:
		m.ResetWorkflowName()
		return nil
	case workflowrun.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowrun.FieldInputs:
		m.ResetInputs()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowrun.FieldRunMetadata:
		m.ResetRunMetadata()
		return nil
	case workflowrun.FieldParentWorkflowID:
		m.ResetParentWorkflowID()
		return nil
	case workflowrun.FieldPriority:
		m.ResetPriority()
		return nil
	case workflowrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowrun.FieldPodID:
		m.ResetPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.step_logs != nil {
		edges = append(edges, workflowrun.EdgeStepLogs)
	}
	if m.step_events != nil {
		edges = append(edges, workflowrun.EdgeStepEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeStepLogs:
		ids := make([]ent.Value, 0, len(m.step_logs))
		for id := range m.step_logs {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeStepEvents:
		ids := make([]ent.Value, 0, len(m.step_events))
		for id := range m.step_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstep_logs != nil {
		edges = append(edges, workflowrun.EdgeStepLogs)
	}
	if m.removedstep_events != nil {
		edges = append(edges, workflowrun.EdgeStepEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeStepLogs:
		ids := make([]ent.Value, 0, len(m.removedstep_logs))
		for id := range m.removedstep_logs {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeStepEvents:
		ids := make([]ent.Value, 0, len(m.removedstep_events))
		for id := range m.removedstep_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstep_logs {
		edges = append(edges, workflowrun.EdgeStepLogs)
	}
	if m.clearedstep_events {
		edges = append(edges, workflowrun.EdgeStepEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowRunMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowrun.EdgeStepLogs:
		return m.clearedstep_logs
	case workflowrun.EdgeStepEvents:
		return m.clearedstep_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowRunMutation) ResetEdge(name string) error {
	switch name {
	case workflowrun.EdgeStepLogs:
		m.ResetStepLogs()
		return nil
	case workflowrun.EdgeStepEvents:
		m.ResetStepEvents()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun edge %s", name)
}
