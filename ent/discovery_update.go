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
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// DiscoveryUpdate is the builder for updating Discovery entities.
type DiscoveryUpdate struct {
	config
	hooks    []Hook
	mutation *DiscoveryMutation
}

// Where appends a list predicates to the DiscoveryUpdate builder.
func (_u *DiscoveryUpdate) Where(ps ...predicate.Discovery) *DiscoveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMethod sets the "method" field.
func (_u *DiscoveryUpdate) SetMethod(v discovery.Method) *DiscoveryUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DiscoveryUpdate) SetNillableMethod(v *discovery.Method) *DiscoveryUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiscoveryUpdate) SetStatus(v discovery.Status) *DiscoveryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiscoveryUpdate) SetNillableStatus(v *discovery.Status) *DiscoveryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *DiscoveryUpdate) SetDetail(v string) *DiscoveryUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *DiscoveryUpdate) SetNillableDetail(v *string) *DiscoveryUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *DiscoveryUpdate) ClearDetail() *DiscoveryUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DiscoveryUpdate) SetCreatedAt(v time.Time) *DiscoveryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DiscoveryUpdate) SetNillableCreatedAt(v *time.Time) *DiscoveryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscoveryUpdate) SetUpdatedAt(v time.Time) *DiscoveryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DiscoveryMutation object of the builder.
func (_u *DiscoveryUpdate) Mutation() *DiscoveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscoveryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscoveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscoveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscoveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscoveryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := discovery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscoveryUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := discovery.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Discovery.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := discovery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Discovery.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscoveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discovery.Table, discovery.Columns, sqlgraph.NewFieldSpec(discovery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(discovery.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(discovery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(discovery.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(discovery.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(discovery.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discovery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discovery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscoveryUpdateOne is the builder for updating a single Discovery entity.
type DiscoveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscoveryMutation
}

// SetMethod sets the "method" field.
func (_u *DiscoveryUpdateOne) SetMethod(v discovery.Method) *DiscoveryUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DiscoveryUpdateOne) SetNillableMethod(v *discovery.Method) *DiscoveryUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiscoveryUpdateOne) SetStatus(v discovery.Status) *DiscoveryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiscoveryUpdateOne) SetNillableStatus(v *discovery.Status) *DiscoveryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *DiscoveryUpdateOne) SetDetail(v string) *DiscoveryUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *DiscoveryUpdateOne) SetNillableDetail(v *string) *DiscoveryUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *DiscoveryUpdateOne) ClearDetail() *DiscoveryUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DiscoveryUpdateOne) SetCreatedAt(v time.Time) *DiscoveryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DiscoveryUpdateOne) SetNillableCreatedAt(v *time.Time) *DiscoveryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscoveryUpdateOne) SetUpdatedAt(v time.Time) *DiscoveryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DiscoveryMutation object of the builder.
func (_u *DiscoveryUpdateOne) Mutation() *DiscoveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiscoveryUpdate builder.
func (_u *DiscoveryUpdateOne) Where(ps ...predicate.Discovery) *DiscoveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscoveryUpdateOne) Select(field string, fields ...string) *DiscoveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Discovery entity.
func (_u *DiscoveryUpdateOne) Save(ctx context.Context) (*Discovery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscoveryUpdateOne) SaveX(ctx context.Context) *Discovery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscoveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscoveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscoveryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := discovery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscoveryUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := discovery.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Discovery.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := discovery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Discovery.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscoveryUpdateOne) sqlSave(ctx context.Context) (_node *Discovery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discovery.Table, discovery.Columns, sqlgraph.NewFieldSpec(discovery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Discovery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discovery.FieldID)
		for _, f := range fields {
			if !discovery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discovery.FieldID {
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
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(discovery.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(discovery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(discovery.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(discovery.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(discovery.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discovery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Discovery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discovery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
