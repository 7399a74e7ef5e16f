// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ClaimResolutionUpdate is the builder for updating ClaimResolution entities.
type ClaimResolutionUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimResolutionMutation
}

// Where appends a list predicates to the ClaimResolutionUpdate builder.
func (_u *ClaimResolutionUpdate) Where(ps ...predicate.ClaimResolution) *ClaimResolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimHash sets the "claim_hash" field.
func (_u *ClaimResolutionUpdate) SetClaimHash(v string) *ClaimResolutionUpdate {
	_u.mutation.SetClaimHash(v)
	return _u
}

// SetNillableClaimHash sets the "claim_hash" field if the given value is not nil.
func (_u *ClaimResolutionUpdate) SetNillableClaimHash(v *string) *ClaimResolutionUpdate {
	if v != nil {
		_u.SetClaimHash(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ClaimResolutionUpdate) SetDecision(v string) *ClaimResolutionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ClaimResolutionUpdate) SetNillableDecision(v *string) *ClaimResolutionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetResolutionAction sets the "resolution_action" field.
func (_u *ClaimResolutionUpdate) SetResolutionAction(v claimresolution.ResolutionAction) *ClaimResolutionUpdate {
	_u.mutation.SetResolutionAction(v)
	return _u
}

// SetNillableResolutionAction sets the "resolution_action" field if the given value is not nil.
func (_u *ClaimResolutionUpdate) SetNillableResolutionAction(v *claimresolution.ResolutionAction) *ClaimResolutionUpdate {
	if v != nil {
		_u.SetResolutionAction(*v)
	}
	return _u
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (_u *ClaimResolutionUpdate) SetResolvedClaimID(v string) *ClaimResolutionUpdate {
	_u.mutation.SetResolvedClaimID(v)
	return _u
}

// SetNillableResolvedClaimID sets the "resolved_claim_id" field if the given value is not nil.
func (_u *ClaimResolutionUpdate) SetNillableResolvedClaimID(v *string) *ClaimResolutionUpdate {
	if v != nil {
		_u.SetResolvedClaimID(*v)
	}
	return _u
}

// ClearResolvedClaimID clears the value of the "resolved_claim_id" field.
func (_u *ClaimResolutionUpdate) ClearResolvedClaimID() *ClaimResolutionUpdate {
	_u.mutation.ClearResolvedClaimID()
	return _u
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (_u *ClaimResolutionUpdate) SetLinkedEntityIds(v []string) *ClaimResolutionUpdate {
	_u.mutation.SetLinkedEntityIds(v)
	return _u
}

// AppendLinkedEntityIds appends value to the "linked_entity_ids" field.
func (_u *ClaimResolutionUpdate) AppendLinkedEntityIds(v []string) *ClaimResolutionUpdate {
	_u.mutation.AppendLinkedEntityIds(v)
	return _u
}

// ClearLinkedEntityIds clears the value of the "linked_entity_ids" field.
func (_u *ClaimResolutionUpdate) ClearLinkedEntityIds() *ClaimResolutionUpdate {
	_u.mutation.ClearLinkedEntityIds()
	return _u
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (_u *ClaimResolutionUpdate) SetResolutionMetadata(v map[string]interface{}) *ClaimResolutionUpdate {
	_u.mutation.SetResolutionMetadata(v)
	return _u
}

// ClearResolutionMetadata clears the value of the "resolution_metadata" field.
func (_u *ClaimResolutionUpdate) ClearResolutionMetadata() *ClaimResolutionUpdate {
	_u.mutation.ClearResolutionMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimResolutionUpdate) SetCreatedAt(v time.Time) *ClaimResolutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimResolutionUpdate) SetNillableCreatedAt(v *time.Time) *ClaimResolutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimResolutionUpdate) SetUpdatedAt(v time.Time) *ClaimResolutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClaimResolutionMutation object of the builder.
func (_u *ClaimResolutionUpdate) Mutation() *ClaimResolutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimResolutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimResolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimResolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimResolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimResolutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claimresolution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimResolutionUpdate) check() error {
	if v, ok := _u.mutation.ResolutionAction(); ok {
		if err := claimresolution.ResolutionActionValidator(v); err != nil {
			return &ValidationError{Name: "resolution_action", err: fmt.Errorf(`ent: validator failed for field "ClaimResolution.resolution_action": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimResolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claimresolution.Table, claimresolution.Columns, sqlgraph.NewFieldSpec(claimresolution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClaimHash(); ok {
		_spec.SetField(claimresolution.FieldClaimHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(claimresolution.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolutionAction(); ok {
		_spec.SetField(claimresolution.FieldResolutionAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedClaimID(); ok {
		_spec.SetField(claimresolution.FieldResolvedClaimID, field.TypeString, value)
	}
	if _u.mutation.ResolvedClaimIDCleared() {
		_spec.ClearField(claimresolution.FieldResolvedClaimID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedEntityIds(); ok {
		_spec.SetField(claimresolution.FieldLinkedEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLinkedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claimresolution.FieldLinkedEntityIds, value)
		})
	}
	if _u.mutation.LinkedEntityIdsCleared() {
		_spec.ClearField(claimresolution.FieldLinkedEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolutionMetadata(); ok {
		_spec.SetField(claimresolution.FieldResolutionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ResolutionMetadataCleared() {
		_spec.ClearField(claimresolution.FieldResolutionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claimresolution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claimresolution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimResolutionUpdateOne is the builder for updating a single ClaimResolution entity.
type ClaimResolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimResolutionMutation
}

// SetClaimHash sets the "claim_hash" field.
func (_u *ClaimResolutionUpdateOne) SetClaimHash(v string) *ClaimResolutionUpdateOne {
	_u.mutation.SetClaimHash(v)
	return _u
}

// SetNillableClaimHash sets the "claim_hash" field if the given value is not nil.
func (_u *ClaimResolutionUpdateOne) SetNillableClaimHash(v *string) *ClaimResolutionUpdateOne {
	if v != nil {
		_u.SetClaimHash(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ClaimResolutionUpdateOne) SetDecision(v string) *ClaimResolutionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ClaimResolutionUpdateOne) SetNillableDecision(v *string) *ClaimResolutionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetResolutionAction sets the "resolution_action" field.
func (_u *ClaimResolutionUpdateOne) SetResolutionAction(v claimresolution.ResolutionAction) *ClaimResolutionUpdateOne {
	_u.mutation.SetResolutionAction(v)
	return _u
}

// SetNillableResolutionAction sets the "resolution_action" field if the given value is not nil.
func (_u *ClaimResolutionUpdateOne) SetNillableResolutionAction(v *claimresolution.ResolutionAction) *ClaimResolutionUpdateOne {
	if v != nil {
		_u.SetResolutionAction(*v)
	}
	return _u
}

// SetResolvedClaimID sets the "resolved_claim_id" field.
func (_u *ClaimResolutionUpdateOne) SetResolvedClaimID(v string) *ClaimResolutionUpdateOne {
	_u.mutation.SetResolvedClaimID(v)
	return _u
}

// SetNillableResolvedClaimID sets the "resolved_claim_id" field if the given value is not nil.
func (_u *ClaimResolutionUpdateOne) SetNillableResolvedClaimID(v *string) *ClaimResolutionUpdateOne {
	if v != nil {
		_u.SetResolvedClaimID(*v)
	}
	return _u
}

// ClearResolvedClaimID clears the value of the "resolved_claim_id" field.
func (_u *ClaimResolutionUpdateOne) ClearResolvedClaimID() *ClaimResolutionUpdateOne {
	_u.mutation.ClearResolvedClaimID()
	return _u
}

// SetLinkedEntityIds sets the "linked_entity_ids" field.
func (_u *ClaimResolutionUpdateOne) SetLinkedEntityIds(v []string) *ClaimResolutionUpdateOne {
	_u.mutation.SetLinkedEntityIds(v)
	return _u
}

// AppendLinkedEntityIds appends value to the "linked_entity_ids" field.
func (_u *ClaimResolutionUpdateOne) AppendLinkedEntityIds(v []string) *ClaimResolutionUpdateOne {
	_u.mutation.AppendLinkedEntityIds(v)
	return _u
}

// ClearLinkedEntityIds clears the value of the "linked_entity_ids" field.
func (_u *ClaimResolutionUpdateOne) ClearLinkedEntityIds() *ClaimResolutionUpdateOne {
	_u.mutation.ClearLinkedEntityIds()
	return _u
}

// SetResolutionMetadata sets the "resolution_metadata" field.
func (_u *ClaimResolutionUpdateOne) SetResolutionMetadata(v map[string]interface{}) *ClaimResolutionUpdateOne {
	_u.mutation.SetResolutionMetadata(v)
	return _u
}

// ClearResolutionMetadata clears the value of the "resolution_metadata" field.
func (_u *ClaimResolutionUpdateOne) ClearResolutionMetadata() *ClaimResolutionUpdateOne {
	_u.mutation.ClearResolutionMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimResolutionUpdateOne) SetCreatedAt(v time.Time) *ClaimResolutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimResolutionUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimResolutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimResolutionUpdateOne) SetUpdatedAt(v time.Time) *ClaimResolutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClaimResolutionMutation object of the builder.
func (_u *ClaimResolutionUpdateOne) Mutation() *ClaimResolutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClaimResolutionUpdate builder.
func (_u *ClaimResolutionUpdateOne) Where(ps ...predicate.ClaimResolution) *ClaimResolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimResolutionUpdateOne) Select(field string, fields ...string) *ClaimResolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClaimResolution entity.
func (_u *ClaimResolutionUpdateOne) Save(ctx context.Context) (*ClaimResolution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimResolutionUpdateOne) SaveX(ctx context.Context) *ClaimResolution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimResolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimResolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimResolutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claimresolution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimResolutionUpdateOne) check() error {
	if v, ok := _u.mutation.ResolutionAction(); ok {
		if err := claimresolution.ResolutionActionValidator(v); err != nil {
			return &ValidationError{Name: "resolution_action", err: fmt.Errorf(`ent: validator failed for field "ClaimResolution.resolution_action": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimResolutionUpdateOne) sqlSave(ctx context.Context) (_node *ClaimResolution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claimresolution.Table, claimresolution.Columns, sqlgraph.NewFieldSpec(claimresolution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClaimResolution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claimresolution.FieldID)
		for _, f := range fields {
			if !claimresolution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claimresolution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClaimHash(); ok {
		_spec.SetField(claimresolution.FieldClaimHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(claimresolution.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolutionAction(); ok {
		_spec.SetField(claimresolution.FieldResolutionAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedClaimID(); ok {
		_spec.SetField(claimresolution.FieldResolvedClaimID, field.TypeString, value)
	}
	if _u.mutation.ResolvedClaimIDCleared() {
		_spec.ClearField(claimresolution.FieldResolvedClaimID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedEntityIds(); ok {
		_spec.SetField(claimresolution.FieldLinkedEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLinkedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claimresolution.FieldLinkedEntityIds, value)
		})
	}
	if _u.mutation.LinkedEntityIdsCleared() {
		_spec.ClearField(claimresolution.FieldLinkedEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolutionMetadata(); ok {
		_spec.SetField(claimresolution.FieldResolutionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ResolutionMetadataCleared() {
		_spec.ClearField(claimresolution.FieldResolutionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claimresolution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claimresolution.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ClaimResolution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
