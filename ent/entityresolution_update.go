// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// EntityResolutionUpdate is the builder for updating EntityResolution entities.
type EntityResolutionUpdate struct {
	config
	hooks    []Hook
	mutation *EntityResolutionMutation
}

// Where appends a list predicates to the EntityResolutionUpdate builder.
func (_u *EntityResolutionUpdate) Where(ps ...predicate.EntityResolution) *EntityResolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityName sets the "entity_name" field.
func (_u *EntityResolutionUpdate) SetEntityName(v string) *EntityResolutionUpdate {
	_u.mutation.SetEntityName(v)
	return _u
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_u *EntityResolutionUpdate) SetNillableEntityName(v *string) *EntityResolutionUpdate {
	if v != nil {
		_u.SetEntityName(*v)
	}
	return _u
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (_u *EntityResolutionUpdate) SetResolvedEntityID(v string) *EntityResolutionUpdate {
	_u.mutation.SetResolvedEntityID(v)
	return _u
}

// SetNillableResolvedEntityID sets the "resolved_entity_id" field if the given value is not nil.
func (_u *EntityResolutionUpdate) SetNillableResolvedEntityID(v *string) *EntityResolutionUpdate {
	if v != nil {
		_u.SetResolvedEntityID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *EntityResolutionUpdate) SetAction(v entityresolution.Action) *EntityResolutionUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *EntityResolutionUpdate) SetNillableAction(v *entityresolution.Action) *EntityResolutionUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EntityResolutionUpdate) SetScore(v float64) *EntityResolutionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EntityResolutionUpdate) SetNillableScore(v *float64) *EntityResolutionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EntityResolutionUpdate) AddScore(v float64) *EntityResolutionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityResolutionUpdate) SetCreatedAt(v time.Time) *EntityResolutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityResolutionUpdate) SetNillableCreatedAt(v *time.Time) *EntityResolutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EntityResolutionMutation object of the builder.
func (_u *EntityResolutionUpdate) Mutation() *EntityResolutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityResolutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityResolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityResolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityResolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityResolutionUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := entityresolution.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "EntityResolution.action": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityResolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityresolution.Table, entityresolution.Columns, sqlgraph.NewFieldSpec(entityresolution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityName(); ok {
		_spec.SetField(entityresolution.FieldEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedEntityID(); ok {
		_spec.SetField(entityresolution.FieldResolvedEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(entityresolution.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(entityresolution.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(entityresolution.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entityresolution.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityResolutionUpdateOne is the builder for updating a single EntityResolution entity.
type EntityResolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityResolutionMutation
}

// SetEntityName sets the "entity_name" field.
func (_u *EntityResolutionUpdateOne) SetEntityName(v string) *EntityResolutionUpdateOne {
	_u.mutation.SetEntityName(v)
	return _u
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_u *EntityResolutionUpdateOne) SetNillableEntityName(v *string) *EntityResolutionUpdateOne {
	if v != nil {
		_u.SetEntityName(*v)
	}
	return _u
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (_u *EntityResolutionUpdateOne) SetResolvedEntityID(v string) *EntityResolutionUpdateOne {
	_u.mutation.SetResolvedEntityID(v)
	return _u
}

// SetNillableResolvedEntityID sets the "resolved_entity_id" field if the given value is not nil.
func (_u *EntityResolutionUpdateOne) SetNillableResolvedEntityID(v *string) *EntityResolutionUpdateOne {
	if v != nil {
		_u.SetResolvedEntityID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *EntityResolutionUpdateOne) SetAction(v entityresolution.Action) *EntityResolutionUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *EntityResolutionUpdateOne) SetNillableAction(v *entityresolution.Action) *EntityResolutionUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EntityResolutionUpdateOne) SetScore(v float64) *EntityResolutionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EntityResolutionUpdateOne) SetNillableScore(v *float64) *EntityResolutionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EntityResolutionUpdateOne) AddScore(v float64) *EntityResolutionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityResolutionUpdateOne) SetCreatedAt(v time.Time) *EntityResolutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityResolutionUpdateOne) SetNillableCreatedAt(v *time.Time) *EntityResolutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EntityResolutionMutation object of the builder.
func (_u *EntityResolutionUpdateOne) Mutation() *EntityResolutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityResolutionUpdate builder.
func (_u *EntityResolutionUpdateOne) Where(ps ...predicate.EntityResolution) *EntityResolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityResolutionUpdateOne) Select(field string, fields ...string) *EntityResolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityResolution entity.
func (_u *EntityResolutionUpdateOne) Save(ctx context.Context) (*EntityResolution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityResolutionUpdateOne) SaveX(ctx context.Context) *EntityResolution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityResolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityResolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityResolutionUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := entityresolution.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "EntityResolution.action": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityResolutionUpdateOne) sqlSave(ctx context.Context) (_node *EntityResolution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityresolution.Table, entityresolution.Columns, sqlgraph.NewFieldSpec(entityresolution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityResolution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityresolution.FieldID)
		for _, f := range fields {
			if !entityresolution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityresolution.FieldID {
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
	if value, ok := _u.mutation.EntityName(); ok {
		_spec.SetField(entityresolution.FieldEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedEntityID(); ok {
		_spec.SetField(entityresolution.FieldResolvedEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(entityresolution.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(entityresolution.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(entityresolution.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entityresolution.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &EntityResolution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
