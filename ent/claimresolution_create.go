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
	"github.com/kurt-labs/kurt/ent/claimresolution"
)

// ClaimResolutionCreate is the builder for creating a ClaimResolution entity.
type ClaimResolutionCreate struct {
	config
	mutation *ClaimResolutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ClaimResolutionCreate) SetWorkflowID(v string) *ClaimResolutionCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ClaimResolutionCreate) SetDocumentID(v string) *ClaimResolutionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetClaimHash sets the "claim_hash" field.
func (_c *ClaimResolutionCreate) SetClaimHash(v string) *ClaimResolutionCreate {
	_c.mutation.SetClaimHash(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ClaimResolutionCreate) SetDecision(v string) *ClaimResolutionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetResolutionAction sets the "resolution_action" field.
func (_c *ClaimResolutionCreate) SetResolutionAction(v claimresolution.ResolutionAction) *ClaimResolutionCreate {
	_c.mutation.SetResolutionAction(v)
	return _c
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (_c *ClaimResolutionCreate) SetResolvedClaimID(v string) *ClaimResolutionCreate {
	_c.mutation.SetResolvedClaimID(v)
	return _c
}

// SetNillableResolvedClaimID sets the "resolved_claim_id" field if the given value is not nil.
func (_c *ClaimResolutionCreate) SetNillableResolvedClaimID(v *string) *ClaimResolutionCreate {
	if v != nil {
		_c.SetResolvedClaimID(*v)
	}
	return _c
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (_c *ClaimResolutionCreate) SetLinkedEntityIds(v []string) *ClaimResolutionCreate {
	_c.mutation.SetLinkedEntityIds(v)
	return _c
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (_c *ClaimResolutionCreate) SetResolutionMetadata(v map[string]interface{}) *ClaimResolutionCreate {
	_c.mutation.SetResolutionMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimResolutionCreate) SetCreatedAt(v time.Time) *ClaimResolutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimResolutionCreate) SetNillableCreatedAt(v *time.Time) *ClaimResolutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimResolutionCreate) SetUpdatedAt(v time.Time) *ClaimResolutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimResolutionCreate) SetNillableUpdatedAt(v *time.Time) *ClaimResolutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimResolutionCreate) SetID(v string) *ClaimResolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClaimResolutionMutation object of the builder.
func (_c *ClaimResolutionCreate) Mutation() *ClaimResolutionMutation {
	return _c.mutation
}

// Save creates the ClaimResolution in the database.
func (_c *ClaimResolutionCreate) Save(ctx context.Context) (*ClaimResolution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimResolutionCreate) SaveX(ctx context.Context) *ClaimResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimResolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimResolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimResolutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claimresolution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claimresolution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimResolutionCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "ClaimResolution.workflow_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ClaimResolution.document_id"`)}
	}
	if _, ok := _c.mutation.ClaimHash(); !ok {
		return &ValidationError{Name: "claim_hash", err: errors.New(`ent: missing required field "ClaimResolution.claim_hash"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ClaimResolution.decision"`)}
	}
	if _, ok := _c.mutation.ResolutionAction(); !ok {
		return &ValidationError{Name: "resolution_action", err: errors.New(`ent: missing required field "ClaimResolution.resolution_action"`)}
	}
	if v, ok := _c.mutation.ResolutionAction(); ok {
		if err := claimresolution.ResolutionActionValidator(v); err != nil {
			return &ValidationError{Name: "resolution_action", err: fmt.Errorf(`ent: validator failed for field "ClaimResolution.resolution_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClaimResolution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClaimResolution.updated_at"`)}
	}
	return nil
}

func (_c *ClaimResolutionCreate) sqlSave(ctx context.Context) (*ClaimResolution, error) {
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
			return nil, fmt.Errorf("unexpected ClaimResolution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimResolutionCreate) createSpec() (*ClaimResolution, *sqlgraph.CreateSpec) {
	var (
		_node = &ClaimResolution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claimresolution.Table, sqlgraph.NewFieldSpec(claimresolution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(claimresolution.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(claimresolution.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.ClaimHash(); ok {
		_spec.SetField(claimresolution.FieldClaimHash, field.TypeString, value)
		_node.ClaimHash = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(claimresolution.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.ResolutionAction(); ok {
		_spec.SetField(claimresolution.FieldResolutionAction, field.TypeEnum, value)
		_node.ResolutionAction = value
	}
	if value, ok := _c.mutation.ResolvedClaimID(); ok {
		_spec.SetField(claimresolution.FieldResolvedClaimID, field.TypeString, value)
		_node.ResolvedClaimID = value
	}
	if value, ok := _c.mutation.LinkedEntityIds(); ok {
		_spec.SetField(claimresolution.FieldLinkedEntityIds, field.TypeJSON, value)
		_node.LinkedEntityIds = value
	}
	if value, ok := _c.mutation.ResolutionMetadata(); ok {
		_spec.SetField(claimresolution.FieldResolutionMetadata, field.TypeJSON, value)
		_node.ResolutionMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claimresolution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claimresolution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClaimResolution.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimResolutionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimResolutionCreate) OnConflict(opts ...sql.ConflictOption) *ClaimResolutionUpsertOne {
	_c.conflict = opts
	return &ClaimResolutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClaimResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimResolutionCreate) OnConflictColumns(columns ...string) *ClaimResolutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimResolutionUpsertOne{
		create: _c,
	}
}

type (
	// ClaimResolutionUpsertOne is the builder for "upsert"-ing
	//  one ClaimResolution node.
	ClaimResolutionUpsertOne struct {
		create *ClaimResolutionCreate
	}

	// ClaimResolutionUpsert is the "OnConflict" setter.
	ClaimResolutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimResolutionUpsert) SetClaimHash(v string) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldClaimHash, v)
	return u
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateClaimHash() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldClaimHash)
	return u
}

// SetDecision sets the "decision" field.
func (u *ClaimResolutionUpsert) SetDecision(v string) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateDecision() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldDecision)
	return u
}

// SetResolutionAction sets the "resolution_action" field.
func (u *ClaimResolutionUpsert) SetResolutionAction(v claimresolution.ResolutionAction) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldResolutionAction, v)
	return u
}

// UpdateResolutionAction sets the "resolution_action" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateResolutionAction() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldResolutionAction)
	return u
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (u *ClaimResolutionUpsert) SetResolvedClaimID(v string) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldResolvedClaimID, v)
	return u
}

// UpdateResolvedClaimID sets the "resolved_claim_id" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateResolvedClaimID() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldResolvedClaimID)
	return u
}

// ClearResolvedClaimID clears the value of the "resolved_claim_id" field.
func (u *ClaimResolutionUpsert) ClearResolvedClaimID() *ClaimResolutionUpsert {
	u.SetNull(claimresolution.FieldResolvedClaimID)
	return u
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (u *ClaimResolutionUpsert) SetLinkedEntityIds(v []string) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldLinkedEntityIds, v)
	return u
}

// UpdateLinkedEntityIds sets the "linked_entity_ids" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateLinkedEntityIds() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldLinkedEntityIds)
	return u
}

// ClearLinkedEntityIds clears the value of the "linked_entity_ids" field.
func (u *ClaimResolutionUpsert) ClearLinkedEntityIds() *ClaimResolutionUpsert {
	u.SetNull(claimresolution.FieldLinkedEntityIds)
	return u
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (u *ClaimResolutionUpsert) SetResolutionMetadata(v map[string]interface{}) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldResolutionMetadata, v)
	return u
}

// UpdateResolutionMetadata sets the "resolution_metadata" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateResolutionMetadata() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldResolutionMetadata)
	return u
}

// ClearResolutionMetadata clears the value of the "resolution_metadata" field.
func (u *ClaimResolutionUpsert) ClearResolutionMetadata() *ClaimResolutionUpsert {
	u.SetNull(claimresolution.FieldResolutionMetadata)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimResolutionUpsert) SetCreatedAt(v time.Time) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateCreatedAt() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimResolutionUpsert) SetUpdatedAt(v time.Time) *ClaimResolutionUpsert {
	u.Set(claimresolution.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimResolutionUpsert) UpdateUpdatedAt() *ClaimResolutionUpsert {
	u.SetExcluded(claimresolution.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClaimResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claimresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimResolutionUpsertOne) UpdateNewValues() *ClaimResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(claimresolution.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(claimresolution.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(claimresolution.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClaimResolution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClaimResolutionUpsertOne) Ignore() *ClaimResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimResolutionUpsertOne) DoNothing() *ClaimResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimResolutionCreate.OnConflict
// documentation for more info.
func (u *ClaimResolutionUpsertOne) Update(set func(*ClaimResolutionUpsert)) *ClaimResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimResolutionUpsertOne) SetClaimHash(v string) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetClaimHash(v)
	})
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateClaimHash() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateClaimHash()
	})
}

// SetDecision sets the "decision" field.
func (u *ClaimResolutionUpsertOne) SetDecision(v string) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateDecision() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateDecision()
	})
}

// SetResolutionAction sets the "resolution_action" field.
func (u *ClaimResolutionUpsertOne) SetResolutionAction(v claimresolution.ResolutionAction) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetResolutionAction(v)
	})
}

// UpdateResolutionAction sets the "resolution_action" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateResolutionAction() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateResolutionAction()
	})
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (u *ClaimResolutionUpsertOne) SetResolvedClaimID(v string) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetResolvedClaimID(v)
	})
}

// UpdateResolvedClaimID sets the "resolved_claim_id" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateResolvedClaimID() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateResolvedClaimID()
	})
}

// ClearResolvedClaimID clears the value of the "resolved_claim_id" field.
func (u *ClaimResolutionUpsertOne) ClearResolvedClaimID() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.ClearResolvedClaimID()
	})
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (u *ClaimResolutionUpsertOne) SetLinkedEntityIds(v []string) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetLinkedEntityIds(v)
	})
}

// UpdateLinkedEntityIds sets the "linked_entity_ids" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateLinkedEntityIds() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateLinkedEntityIds()
	})
}

// ClearLinkedEntityIds clears the value of the "linked_entity_ids" field.
func (u *ClaimResolutionUpsertOne) ClearLinkedEntityIds() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.ClearLinkedEntityIds()
	})
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (u *ClaimResolutionUpsertOne) SetResolutionMetadata(v map[string]interface{}) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetResolutionMetadata(v)
	})
}

// UpdateResolutionMetadata sets the "resolution_metadata" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateResolutionMetadata() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateResolutionMetadata()
	})
}

// ClearResolutionMetadata clears the value of the "resolution_metadata" field.
func (u *ClaimResolutionUpsertOne) ClearResolutionMetadata() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.ClearResolutionMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimResolutionUpsertOne) SetCreatedAt(v time.Time) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateCreatedAt() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimResolutionUpsertOne) SetUpdatedAt(v time.Time) *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimResolutionUpsertOne) UpdateUpdatedAt() *ClaimResolutionUpsertOne {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClaimResolutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimResolutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimResolutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClaimResolutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClaimResolutionUpsertOne.ID is not supported by MySQL driver. Use ClaimResolutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClaimResolutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClaimResolutionCreateBulk is the builder for creating many ClaimResolution entities in bulk.
type ClaimResolutionCreateBulk struct {
	config
	err      error
	builders []*ClaimResolutionCreate
	conflict []sql.ConflictOption
}

// Save creates the ClaimResolution entities in the database.
func (_c *ClaimResolutionCreateBulk) Save(ctx context.Context) ([]*ClaimResolution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClaimResolution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimResolutionMutation)
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
func (_c *ClaimResolutionCreateBulk) SaveX(ctx context.Context) []*ClaimResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimResolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimResolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClaimResolution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimResolutionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimResolutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClaimResolutionUpsertBulk {
	_c.conflict = opts
	return &ClaimResolutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClaimResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimResolutionCreateBulk) OnConflictColumns(columns ...string) *ClaimResolutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimResolutionUpsertBulk{
		create: _c,
	}
}

// ClaimResolutionUpsertBulk is the builder for "upsert"-ing
// a bulk of ClaimResolution nodes.
type ClaimResolutionUpsertBulk struct {
	create *ClaimResolutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClaimResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claimresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimResolutionUpsertBulk) UpdateNewValues() *ClaimResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(claimresolution.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(claimresolution.FieldWorkflowID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(claimresolution.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClaimResolution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClaimResolutionUpsertBulk) Ignore() *ClaimResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimResolutionUpsertBulk) DoNothing() *ClaimResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimResolutionCreateBulk.OnConflict
// documentation for more info.
func (u *ClaimResolutionUpsertBulk) Update(set func(*ClaimResolutionUpsert)) *ClaimResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimResolutionUpsertBulk) SetClaimHash(v string) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetClaimHash(v)
	})
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateClaimHash() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateClaimHash()
	})
}

// SetDecision sets the "decision" field.
func (u *ClaimResolutionUpsertBulk) SetDecision(v string) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateDecision() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateDecision()
	})
}

// SetResolutionAction sets the "resolution_action" field.
func (u *ClaimResolutionUpsertBulk) SetResolutionAction(v claimresolution.ResolutionAction) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetResolutionAction(v)
	})
}

// UpdateResolutionAction sets the "resolution_action" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateResolutionAction() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateResolutionAction()
	})
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (u *ClaimResolutionUpsertBulk) SetResolvedClaimID(v string) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetResolvedClaimID(v)
	})
}

// UpdateResolvedClaimID sets the "resolved_claim_id" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateResolvedClaimID() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateResolvedClaimID()
	})
}

// ClearResolvedClaimID clears the value of the "resolved_claim_id" field.
func (u *ClaimResolutionUpsertBulk) ClearResolvedClaimID() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.ClearResolvedClaimID()
	})
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (u *ClaimResolutionUpsertBulk) SetLinkedEntityIds(v []string) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetLinkedEntityIds(v)
	})
}

// UpdateLinkedEntityIds sets the "linked_entity_ids" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateLinkedEntityIds() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateLinkedEntityIds()
	})
}

// ClearLinkedEntityIds clears the value of the "linked_entity_ids" field.
func (u *ClaimResolutionUpsertBulk) ClearLinkedEntityIds() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.ClearLinkedEntityIds()
	})
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (u *ClaimResolutionUpsertBulk) SetResolutionMetadata(v map[string]interface{}) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetResolutionMetadata(v)
	})
}

// UpdateResolutionMetadata sets the "resolution_metadata" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateResolutionMetadata() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateResolutionMetadata()
	})
}

// ClearResolutionMetadata clears the value of the "resolution_metadata" field.
func (u *ClaimResolutionUpsertBulk) ClearResolutionMetadata() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.ClearResolutionMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimResolutionUpsertBulk) SetCreatedAt(v time.Time) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateCreatedAt() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimResolutionUpsertBulk) SetUpdatedAt(v time.Time) *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimResolutionUpsertBulk) UpdateUpdatedAt() *ClaimResolutionUpsertBulk {
	return u.Update(func(s *ClaimResolutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClaimResolutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClaimResolutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimResolutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimResolutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
