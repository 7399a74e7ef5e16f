// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/claimgroup"
)

// ClaimGroupCreate is the builder for creating a ClaimGroup entity.
type ClaimGroupCreate struct {
	config
	mutation *ClaimGroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ClaimGroupCreate) SetWorkflowID(v string) *ClaimGroupCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ClaimGroupCreate) SetDocumentID(v string) *ClaimGroupCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *ClaimGroupCreate) SetSectionID(v string) *ClaimGroupCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetClaimHash sets the "claim_hash" field.
func (_c *ClaimGroupCreate) SetClaimHash(v string) *ClaimGroupCreate {
	_c.mutation.SetClaimHash(v)
	return _c
}

// SetClusterID sets the "cluster_id" field.
func (_c *ClaimGroupCreate) SetClusterID(v string) *ClaimGroupCreate {
	_c.mutation.SetClusterID(v)
	return _c
}

// SetClusterSize sets the "cluster_size" field.
func (_c *ClaimGroupCreate) SetClusterSize(v int) *ClaimGroupCreate {
	_c.mutation.SetClusterSize(v)
	return _c
}

// SetNillableClusterSize sets the "cluster_size" field if the given value is not nil.
func (_c *ClaimGroupCreate) SetNillableClusterSize(v *int) *ClaimGroupCreate {
	if v != nil {
		_c.SetClusterSize(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ClaimGroupCreate) SetDecision(v string) *ClaimGroupCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetStatement sets the "statement" field.
func (_c *ClaimGroupCreate) SetStatement(v string) *ClaimGroupCreate {
	_c.mutation.SetStatement(v)
	return _c
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (_c *ClaimGroupCreate) SetCanonicalStatement(v string) *ClaimGroupCreate {
	_c.mutation.SetCanonicalStatement(v)
	return _c
}

// SetClaimType sets the "claim_type" field.
func (_c *ClaimGroupCreate) SetClaimType(v claimgroup.ClaimType) *ClaimGroupCreate {
	_c.mutation.SetClaimType(v)
	return _c
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_c *ClaimGroupCreate) SetNillableClaimType(v *claimgroup.ClaimType) *ClaimGroupCreate {
	if v != nil {
		_c.SetClaimType(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ClaimGroupCreate) SetConfidence(v float64) *ClaimGroupCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ClaimGroupCreate) SetNillableConfidence(v *float64) *ClaimGroupCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEntityIndices sets the "entity_indices" field.
func (_c *ClaimGroupCreate) SetEntityIndices(v []int) *ClaimGroupCreate {
	_c.mutation.SetEntityIndices(v)
	return _c
}

// SetSimilarExisting sets the "similar_existing" field.
func (_c *ClaimGroupCreate) SetSimilarExisting(v []string) *ClaimGroupCreate {
	_c.mutation.SetSimilarExisting(v)
	return _c
}

// SetSourceQuote sets the "source_quote" field.
func (_c *ClaimGroupCreate) SetSourceQuote(v string) *ClaimGroupCreate {
	_c.mutation.SetSourceQuote(v)
	return _c
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_c *ClaimGroupCreate) SetNillableSourceQuote(v *string) *ClaimGroupCreate {
	if v != nil {
		_c.SetSourceQuote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimGroupCreate) SetCreatedAt(v time.Time) *ClaimGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimGroupCreate) SetNillableCreatedAt(v *time.Time) *ClaimGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimGroupCreate) SetUpdatedAt(v time.Time) *ClaimGroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimGroupCreate) SetNillableUpdatedAt(v *time.Time) *ClaimGroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimGroupCreate) SetID(v string) *ClaimGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClaimGroupMutation object of the builder.
func (_c *ClaimGroupCreate) Mutation() *ClaimGroupMutation {
	return _c.mutation
}

// Save creates the ClaimGroup in the database.
func (_c *ClaimGroupCreate) Save(ctx context.Context) (*ClaimGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimGroupCreate) SaveX(ctx context.Context) *ClaimGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimGroupCreate) defaults() {
	if _, ok := _c.mutation.ClusterSize(); !ok {
		v := claimgroup.DefaultClusterSize
		_c.mutation.SetClusterSize(v)
	}
	if _, ok := _c.mutation.ClaimType(); !ok {
		v := claimgroup.DefaultClaimType
		_c.mutation.SetClaimType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := claimgroup.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claimgroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claimgroup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimGroupCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "ClaimGroup.workflow_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ClaimGroup.document_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "ClaimGroup.section_id"`)}
	}
	if _, ok := _c.mutation.ClaimHash(); !ok {
		return &ValidationError{Name: "claim_hash", err: errors.New(`ent: missing required field "ClaimGroup.claim_hash"`)}
	}
	if _, ok := _c.mutation.ClusterID(); !ok {
		return &ValidationError{Name: "cluster_id", err: errors.New(`ent: missing required field "ClaimGroup.cluster_id"`)}
	}
	if _, ok := _c.mutation.ClusterSize(); !ok {
		return &ValidationError{Name: "cluster_size", err: errors.New(`ent: missing required field "ClaimGroup.cluster_size"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ClaimGroup.decision"`)}
	}
	if _, ok := _c.mutation.Statement(); !ok {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required field "ClaimGroup.statement"`)}
	}
	if _, ok := _c.mutation.CanonicalStatement(); !ok {
		return &ValidationError{Name: "canonical_statement", err: errors.New(`ent: missing required field "ClaimGroup.canonical_statement"`)}
	}
	if _, ok := _c.mutation.ClaimType(); !ok {
		return &ValidationError{Name: "claim_type", err: errors.New(`ent: missing required field "ClaimGroup.claim_type"`)}
	}
	if v, ok := _c.mutation.ClaimType(); ok {
		if err := claimgroup.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "ClaimGroup.claim_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ClaimGroup.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClaimGroup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClaimGroup.updated_at"`)}
	}
	return nil
}

func (_c *ClaimGroupCreate) sqlSave(ctx context.Context) (*ClaimGroup, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ClaimGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimGroupCreate) createSpec() (*ClaimGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ClaimGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claimgroup.Table, sqlgraph.NewFieldSpec(claimgroup.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(claimgroup.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(claimgroup.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(claimgroup.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.ClaimHash(); ok {
		_spec.SetField(claimgroup.FieldClaimHash, field.TypeString, value)
		_node.ClaimHash = value
	}
	if value, ok := _c.mutation.ClusterID(); ok {
		_spec.SetField(claimgroup.FieldClusterID, field.TypeString, value)
		_node.ClusterID = value
	}
	if value, ok := _c.mutation.ClusterSize(); ok {
		_spec.SetField(claimgroup.FieldClusterSize, field.TypeInt, value)
		_node.ClusterSize = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(claimgroup.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Statement(); ok {
		_spec.SetField(claimgroup.FieldStatement, field.TypeString, value)
		_node.Statement = value
	}
	if value, ok := _c.mutation.CanonicalStatement(); ok {
		_spec.SetField(claimgroup.FieldCanonicalStatement, field.TypeString, value)
		_node.CanonicalStatement = value
	}
	if value, ok := _c.mutation.ClaimType(); ok {
		_spec.SetField(claimgroup.FieldClaimType, field.TypeEnum, value)
		_node.ClaimType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(claimgroup.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EntityIndices(); ok {
		_spec.SetField(claimgroup.FieldEntityIndices, field.TypeJSON, value)
		_node.EntityIndices = value
	}
	if value, ok := _c.mutation.SimilarExisting(); ok {
		_spec.SetField(claimgroup.FieldSimilarExisting, field.TypeJSON, value)
		_node.SimilarExisting = value
	}
	if value, ok := _c.mutation.SourceQuote(); ok {
		_spec.SetField(claimgroup.FieldSourceQuote, field.TypeString, value)
		_node.SourceQuote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claimgroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claimgroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClaimGroup.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimGroupUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimGroupCreate) OnConflict(opts ...sql.ConflictOption) *ClaimGroupUpsertOne {
	_c.conflict = opts
	return &ClaimGroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClaimGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimGroupCreate) OnConflictColumns(columns ...string) *ClaimGroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimGroupUpsertOne{
		create: _c,
	}
}

type (
	// ClaimGroupUpsertOne is the builder for "upsert"-ing
	//  one ClaimGroup node.
	ClaimGroupUpsertOne struct {
		create *ClaimGroupCreate
	}

	// ClaimGroupUpsert is the "OnConflict" setter.
	ClaimGroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetSectionID sets the "section_id" field.
func (u *ClaimGroupUpsert) SetSectionID(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldSectionID, v)
	return u
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateSectionID() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldSectionID)
	return u
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimGroupUpsert) SetClaimHash(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldClaimHash, v)
	return u
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateClaimHash() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldClaimHash)
	return u
}

// SetClusterID sets the "cluster_id" field.
func (u *ClaimGroupUpsert) SetClusterID(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldClusterID, v)
	return u
}

// UpdateClusterID sets the "cluster_id" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateClusterID() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldClusterID)
	return u
}

// SetClusterSize sets the "cluster_size" field.
func (u *ClaimGroupUpsert) SetClusterSize(v int) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldClusterSize, v)
	return u
}

// UpdateClusterSize sets the "cluster_size" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateClusterSize() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldClusterSize)
	return u
}

// AddClusterSize adds v to the "cluster_size" field.
func (u *ClaimGroupUpsert) AddClusterSize(v int) *ClaimGroupUpsert {
	u.Add(claimgroup.FieldClusterSize, v)
	return u
}

// SetDecision sets the "decision" field.
func (u *ClaimGroupUpsert) SetDecision(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateDecision() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldDecision)
	return u
}

// SetStatement sets the "statement" field.
func (u *ClaimGroupUpsert) SetStatement(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldStatement, v)
	return u
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateStatement() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldStatement)
	return u
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (u *ClaimGroupUpsert) SetCanonicalStatement(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldCanonicalStatement, v)
	return u
}

// UpdateCanonicalStatement sets the "canonical_statement" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateCanonicalStatement() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldCanonicalStatement)
	return u
}

// SetClaimType sets the "claim_type" field.
func (u *ClaimGroupUpsert) SetClaimType(v claimgroup.ClaimType) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldClaimType, v)
	return u
}

// UpdateClaimType sets the "claim_type" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateClaimType() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldClaimType)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ClaimGroupUpsert) SetConfidence(v float64) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateConfidence() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ClaimGroupUpsert) AddConfidence(v float64) *ClaimGroupUpsert {
	u.Add(claimgroup.FieldConfidence, v)
	return u
}

// SetEntityIndices sets the "entity_indices" field.
func (u *ClaimGroupUpsert) SetEntityIndices(v []int) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldEntityIndices, v)
	return u
}

// UpdateEntityIndices sets the "entity_indices" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateEntityIndices() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldEntityIndices)
	return u
}

// ClearEntityIndices clears the value of the "entity_indices" field.
func (u *ClaimGroupUpsert) ClearEntityIndices() *ClaimGroupUpsert {
	u.SetNull(claimgroup.FieldEntityIndices)
	return u
}

// SetSimilarExisting sets the "similar_existing" field.
func (u *ClaimGroupUpsert) SetSimilarExisting(v []string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldSimilarExisting, v)
	return u
}

// UpdateSimilarExisting sets the "similar_existing" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateSimilarExisting() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldSimilarExisting)
	return u
}

// ClearSimilarExisting clears the value of the "similar_existing" field.
func (u *ClaimGroupUpsert) ClearSimilarExisting() *ClaimGroupUpsert {
	u.SetNull(claimgroup.FieldSimilarExisting)
	return u
}

// SetSourceQuote sets the "source_quote" field.
func (u *ClaimGroupUpsert) SetSourceQuote(v string) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldSourceQuote, v)
	return u
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateSourceQuote() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldSourceQuote)
	return u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *ClaimGroupUpsert) ClearSourceQuote() *ClaimGroupUpsert {
	u.SetNull(claimgroup.FieldSourceQuote)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimGroupUpsert) SetCreatedAt(v time.Time) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateCreatedAt() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimGroupUpsert) SetUpdatedAt(v time.Time) *ClaimGroupUpsert {
	u.Set(claimgroup.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimGroupUpsert) UpdateUpdatedAt() *ClaimGroupUpsert {
	u.SetExcluded(claimgroup.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClaimGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claimgroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimGroupUpsertOne) UpdateNewValues() *ClaimGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(claimgroup.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(claimgroup.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(claimgroup.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClaimGroup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClaimGroupUpsertOne) Ignore() *ClaimGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimGroupUpsertOne) DoNothing() *ClaimGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimGroupCreate.OnConflict
// documentation for more info.
func (u *ClaimGroupUpsertOne) Update(set func(*ClaimGroupUpsert)) *ClaimGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetSectionID sets the "section_id" field.
func (u *ClaimGroupUpsertOne) SetSectionID(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateSectionID() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateSectionID()
	})
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimGroupUpsertOne) SetClaimHash(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClaimHash(v)
	})
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateClaimHash() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClaimHash()
	})
}

// SetClusterID sets the "cluster_id" field.
func (u *ClaimGroupUpsertOne) SetClusterID(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClusterID(v)
	})
}

// UpdateClusterID sets the "cluster_id" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateClusterID() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClusterID()
	})
}

// SetClusterSize sets the "cluster_size" field.
func (u *ClaimGroupUpsertOne) SetClusterSize(v int) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClusterSize(v)
	})
}

// AddClusterSize adds v to the "cluster_size" field.
func (u *ClaimGroupUpsertOne) AddClusterSize(v int) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.AddClusterSize(v)
	})
}

// UpdateClusterSize sets the "cluster_size" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateClusterSize() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClusterSize()
	})
}

// SetDecision sets the "decision" field.
func (u *ClaimGroupUpsertOne) SetDecision(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateDecision() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateDecision()
	})
}

// SetStatement sets the "statement" field.
func (u *ClaimGroupUpsertOne) SetStatement(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetStatement(v)
	})
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateStatement() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateStatement()
	})
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (u *ClaimGroupUpsertOne) SetCanonicalStatement(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetCanonicalStatement(v)
	})
}

// UpdateCanonicalStatement sets the "canonical_statement" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateCanonicalStatement() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateCanonicalStatement()
	})
}

// SetClaimType sets the "claim_type" field.
func (u *ClaimGroupUpsertOne) SetClaimType(v claimgroup.ClaimType) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClaimType(v)
	})
}

// UpdateClaimType sets the "claim_type" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateClaimType() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClaimType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ClaimGroupUpsertOne) SetConfidence(v float64) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ClaimGroupUpsertOne) AddConfidence(v float64) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateConfidence() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateConfidence()
	})
}

// SetEntityIndices sets the "entity_indices" field.
func (u *ClaimGroupUpsertOne) SetEntityIndices(v []int) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetEntityIndices(v)
	})
}

// UpdateEntityIndices sets the "entity_indices" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateEntityIndices() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateEntityIndices()
	})
}

// ClearEntityIndices clears the value of the "entity_indices" field.
func (u *ClaimGroupUpsertOne) ClearEntityIndices() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.ClearEntityIndices()
	})
}

// SetSimilarExisting sets the "similar_existing" field.
func (u *ClaimGroupUpsertOne) SetSimilarExisting(v []string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetSimilarExisting(v)
	})
}

// UpdateSimilarExisting sets the "similar_existing" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateSimilarExisting() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateSimilarExisting()
	})
}

// ClearSimilarExisting clears the value of the "similar_existing" field.
func (u *ClaimGroupUpsertOne) ClearSimilarExisting() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.ClearSimilarExisting()
	})
}

// SetSourceQuote sets the "source_quote" field.
func (u *ClaimGroupUpsertOne) SetSourceQuote(v string) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetSourceQuote(v)
	})
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateSourceQuote() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateSourceQuote()
	})
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *ClaimGroupUpsertOne) ClearSourceQuote() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.ClearSourceQuote()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimGroupUpsertOne) SetCreatedAt(v time.Time) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateCreatedAt() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimGroupUpsertOne) SetUpdatedAt(v time.Time) *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimGroupUpsertOne) UpdateUpdatedAt() *ClaimGroupUpsertOne {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClaimGroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimGroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimGroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClaimGroupUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClaimGroupUpsertOne.ID is not supported by MySQL driver. Use ClaimGroupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClaimGroupUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClaimGroupCreateBulk is the builder for creating many ClaimGroup entities in bulk.
type ClaimGroupCreateBulk struct {
	config
	err      error
	builders []*ClaimGroupCreate
	conflict []sql.ConflictOption
}

// Save creates the ClaimGroup entities in the database.
func (_c *ClaimGroupCreateBulk) Save(ctx context.Context) ([]*ClaimGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClaimGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimGroupMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClaimGroupCreateBulk) SaveX(ctx context.Context) []*ClaimGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClaimGroup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimGroupUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimGroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClaimGroupUpsertBulk {
	_c.conflict = opts
	return &ClaimGroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClaimGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimGroupCreateBulk) OnConflictColumns(columns ...string) *ClaimGroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimGroupUpsertBulk{
		create: _c,
	}
}

// ClaimGroupUpsertBulk is the builder for "upsert"-ing
// a bulk of ClaimGroup nodes.
type ClaimGroupUpsertBulk struct {
	create *ClaimGroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClaimGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claimgroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimGroupUpsertBulk) UpdateNewValues() *ClaimGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(claimgroup.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(claimgroup.FieldWorkflowID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(claimgroup.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClaimGroup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClaimGroupUpsertBulk) Ignore() *ClaimGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimGroupUpsertBulk) DoNothing() *ClaimGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimGroupCreateBulk.OnConflict
// documentation for more info.
func (u *ClaimGroupUpsertBulk) Update(set func(*ClaimGroupUpsert)) *ClaimGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetSectionID sets the "section_id" field.
func (u *ClaimGroupUpsertBulk) SetSectionID(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateSectionID() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateSectionID()
	})
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimGroupUpsertBulk) SetClaimHash(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClaimHash(v)
	})
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateClaimHash() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClaimHash()
	})
}

// SetClusterID sets the "cluster_id" field.
func (u *ClaimGroupUpsertBulk) SetClusterID(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClusterID(v)
	})
}

// UpdateClusterID sets the "cluster_id" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateClusterID() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClusterID()
	})
}

// SetClusterSize sets the "cluster_size" field.
func (u *ClaimGroupUpsertBulk) SetClusterSize(v int) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClusterSize(v)
	})
}

// AddClusterSize adds v to the "cluster_size" field.
func (u *ClaimGroupUpsertBulk) AddClusterSize(v int) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.AddClusterSize(v)
	})
}

// UpdateClusterSize sets the "cluster_size" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateClusterSize() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClusterSize()
	})
}

// SetDecision sets the "decision" field.
func (u *ClaimGroupUpsertBulk) SetDecision(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateDecision() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateDecision()
	})
}

// SetStatement sets the "statement" field.
func (u *ClaimGroupUpsertBulk) SetStatement(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetStatement(v)
	})
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateStatement() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateStatement()
	})
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (u *ClaimGroupUpsertBulk) SetCanonicalStatement(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetCanonicalStatement(v)
	})
}

// UpdateCanonicalStatement sets the "canonical_statement" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateCanonicalStatement() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateCanonicalStatement()
	})
}

// SetClaimType sets the "claim_type" field.
func (u *ClaimGroupUpsertBulk) SetClaimType(v claimgroup.ClaimType) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetClaimType(v)
	})
}

// UpdateClaimType sets the "claim_type" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateClaimType() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateClaimType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ClaimGroupUpsertBulk) SetConfidence(v float64) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ClaimGroupUpsertBulk) AddConfidence(v float64) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateConfidence() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateConfidence()
	})
}

// SetEntityIndices sets the "entity_indices" field.
func (u *ClaimGroupUpsertBulk) SetEntityIndices(v []int) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetEntityIndices(v)
	})
}

// UpdateEntityIndices sets the "entity_indices" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateEntityIndices() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateEntityIndices()
	})
}

// ClearEntityIndices clears the value of the "entity_indices" field.
func (u *ClaimGroupUpsertBulk) ClearEntityIndices() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.ClearEntityIndices()
	})
}

// SetSimilarExisting sets the "similar_existing" field.
func (u *ClaimGroupUpsertBulk) SetSimilarExisting(v []string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetSimilarExisting(v)
	})
}

// UpdateSimilarExisting sets the "similar_existing" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateSimilarExisting() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateSimilarExisting()
	})
}

// ClearSimilarExisting clears the value of the "similar_existing" field.
func (u *ClaimGroupUpsertBulk) ClearSimilarExisting() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.ClearSimilarExisting()
	})
}

// SetSourceQuote sets the "source_quote" field.
func (u *ClaimGroupUpsertBulk) SetSourceQuote(v string) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetSourceQuote(v)
	})
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateSourceQuote() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateSourceQuote()
	})
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *ClaimGroupUpsertBulk) ClearSourceQuote() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.ClearSourceQuote()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimGroupUpsertBulk) SetCreatedAt(v time.Time) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateCreatedAt() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimGroupUpsertBulk) SetUpdatedAt(v time.Time) *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimGroupUpsertBulk) UpdateUpdatedAt() *ClaimGroupUpsertBulk {
	return u.Update(func(s *ClaimGroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClaimGroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClaimGroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimGroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimGroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
