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
	"github.com/kurt-labs/kurt/ent/discovery"
)

// DiscoveryCreate is the builder for creating a Discovery entity.
type DiscoveryCreate struct {
	config
	mutation *DiscoveryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *DiscoveryCreate) SetWorkflowID(v string) *DiscoveryCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *DiscoveryCreate) SetDocumentID(v string) *DiscoveryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *DiscoveryCreate) SetMethod(v discovery.Method) *DiscoveryCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *DiscoveryCreate) SetNillableMethod(v *discovery.Method) *DiscoveryCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiscoveryCreate) SetStatus(v discovery.Status) *DiscoveryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiscoveryCreate) SetNillableStatus(v *discovery.Status) *DiscoveryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *DiscoveryCreate) SetDetail(v string) *DiscoveryCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *DiscoveryCreate) SetNillableDetail(v *string) *DiscoveryCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiscoveryCreate) SetCreatedAt(v time.Time) *DiscoveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiscoveryCreate) SetNillableCreatedAt(v *time.Time) *DiscoveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiscoveryCreate) SetUpdatedAt(v time.Time) *DiscoveryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiscoveryCreate) SetNillableUpdatedAt(v *time.Time) *DiscoveryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiscoveryCreate) SetID(v string) *DiscoveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DiscoveryMutation object of the builder.
func (_c *DiscoveryCreate) Mutation() *DiscoveryMutation {
	return _c.mutation
}

// Save creates the Discovery in the database.
func (_c *DiscoveryCreate) Save(ctx context.Context) (*Discovery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscoveryCreate) SaveX(ctx context.Context) *Discovery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscoveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscoveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscoveryCreate) defaults() {
	if _, ok := _c.mutation.Method(); !ok {
		v := discovery.DefaultMethod
		_c.mutation.SetMethod(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := discovery.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := discovery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := discovery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscoveryCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Discovery.workflow_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Discovery.document_id"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "Discovery.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := discovery.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Discovery.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Discovery.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := discovery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Discovery.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Discovery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Discovery.updated_at"`)}
	}
	return nil
}

func (_c *DiscoveryCreate) sqlSave(ctx context.Context) (*Discovery, error) {
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
			return nil, fmt.Errorf("unexpected Discovery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiscoveryCreate) createSpec() (*Discovery, *sqlgraph.CreateSpec) {
	var (
		_node = &Discovery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discovery.Table, sqlgraph.NewFieldSpec(discovery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(discovery.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(discovery.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(discovery.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(discovery.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(discovery.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(discovery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(discovery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Discovery.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiscoveryUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *DiscoveryCreate) OnConflict(opts ...sql.ConflictOption) *DiscoveryUpsertOne {
	_c.conflict = opts
	return &DiscoveryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Discovery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiscoveryCreate) OnConflictColumns(columns ...string) *DiscoveryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiscoveryUpsertOne{
		create: _c,
	}
}

type (
	// DiscoveryUpsertOne is the builder for "upsert"-ing
	//  one Discovery node.
	DiscoveryUpsertOne struct {
		create *DiscoveryCreate
	}

	// DiscoveryUpsert is the "OnConflict" setter.
	DiscoveryUpsert struct {
		*sql.UpdateSet
	}
)

// SetMethod sets the "method" field.
func (u *DiscoveryUpsert) SetMethod(v discovery.Method) *DiscoveryUpsert {
	u.Set(discovery.FieldMethod, v)
	return u
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *DiscoveryUpsert) UpdateMethod() *DiscoveryUpsert {
	u.SetExcluded(discovery.FieldMethod)
	return u
}

// SetStatus sets the "status" field.
func (u *DiscoveryUpsert) SetStatus(v discovery.Status) *DiscoveryUpsert {
	u.Set(discovery.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DiscoveryUpsert) UpdateStatus() *DiscoveryUpsert {
	u.SetExcluded(discovery.FieldStatus)
	return u
}

// SetDetail sets the "detail" field.
func (u *DiscoveryUpsert) SetDetail(v string) *DiscoveryUpsert {
	u.Set(discovery.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *DiscoveryUpsert) UpdateDetail() *DiscoveryUpsert {
	u.SetExcluded(discovery.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *DiscoveryUpsert) ClearDetail() *DiscoveryUpsert {
	u.SetNull(discovery.FieldDetail)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DiscoveryUpsert) SetCreatedAt(v time.Time) *DiscoveryUpsert {
	u.Set(discovery.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DiscoveryUpsert) UpdateCreatedAt() *DiscoveryUpsert {
	u.SetExcluded(discovery.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiscoveryUpsert) SetUpdatedAt(v time.Time) *DiscoveryUpsert {
	u.Set(discovery.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiscoveryUpsert) UpdateUpdatedAt() *DiscoveryUpsert {
	u.SetExcluded(discovery.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Discovery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(discovery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiscoveryUpsertOne) UpdateNewValues() *DiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(discovery.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(discovery.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(discovery.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Discovery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiscoveryUpsertOne) Ignore() *DiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiscoveryUpsertOne) DoNothing() *DiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiscoveryCreate.OnConflict
// documentation for more info.
func (u *DiscoveryUpsertOne) Update(set func(*DiscoveryUpsert)) *DiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiscoveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMethod sets the "method" field.
func (u *DiscoveryUpsertOne) SetMethod(v discovery.Method) *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *DiscoveryUpsertOne) UpdateMethod() *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateMethod()
	})
}

// SetStatus sets the "status" field.
func (u *DiscoveryUpsertOne) SetStatus(v discovery.Status) *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DiscoveryUpsertOne) UpdateStatus() *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateStatus()
	})
}

// SetDetail sets the "detail" field.
func (u *DiscoveryUpsertOne) SetDetail(v string) *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *DiscoveryUpsertOne) UpdateDetail() *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *DiscoveryUpsertOne) ClearDetail() *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.ClearDetail()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DiscoveryUpsertOne) SetCreatedAt(v time.Time) *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DiscoveryUpsertOne) UpdateCreatedAt() *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiscoveryUpsertOne) SetUpdatedAt(v time.Time) *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiscoveryUpsertOne) UpdateUpdatedAt() *DiscoveryUpsertOne {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DiscoveryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DiscoveryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiscoveryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiscoveryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DiscoveryUpsertOne.ID is not supported by MySQL driver. Use DiscoveryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiscoveryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiscoveryCreateBulk is the builder for creating many Discovery entities in bulk.
type DiscoveryCreateBulk struct {
	config
	err      error
	builders []*DiscoveryCreate
	conflict []sql.ConflictOption
}

// Save creates the Discovery entities in the database.
func (_c *DiscoveryCreateBulk) Save(ctx context.Context) ([]*Discovery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Discovery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscoveryMutation)
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
func (_c *DiscoveryCreateBulk) SaveX(ctx context.Context) []*Discovery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscoveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscoveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Discovery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiscoveryUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *DiscoveryCreateBulk) OnConflict(opts ...sql.ConflictOption) *DiscoveryUpsertBulk {
	_c.conflict = opts
	return &DiscoveryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Discovery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiscoveryCreateBulk) OnConflictColumns(columns ...string) *DiscoveryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiscoveryUpsertBulk{
		create: _c,
	}
}

// DiscoveryUpsertBulk is the builder for "upsert"-ing
// a bulk of Discovery nodes.
type DiscoveryUpsertBulk struct {
	create *DiscoveryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Discovery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(discovery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiscoveryUpsertBulk) UpdateNewValues() *DiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(discovery.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(discovery.FieldWorkflowID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(discovery.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Discovery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiscoveryUpsertBulk) Ignore() *DiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiscoveryUpsertBulk) DoNothing() *DiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiscoveryCreateBulk.OnConflict
// documentation for more info.
func (u *DiscoveryUpsertBulk) Update(set func(*DiscoveryUpsert)) *DiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiscoveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMethod sets the "method" field.
func (u *DiscoveryUpsertBulk) SetMethod(v discovery.Method) *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *DiscoveryUpsertBulk) UpdateMethod() *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateMethod()
	})
}

// SetStatus sets the "status" field.
func (u *DiscoveryUpsertBulk) SetStatus(v discovery.Status) *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DiscoveryUpsertBulk) UpdateStatus() *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateStatus()
	})
}

// SetDetail sets the "detail" field.
func (u *DiscoveryUpsertBulk) SetDetail(v string) *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *DiscoveryUpsertBulk) UpdateDetail() *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *DiscoveryUpsertBulk) ClearDetail() *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.ClearDetail()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DiscoveryUpsertBulk) SetCreatedAt(v time.Time) *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DiscoveryUpsertBulk) UpdateCreatedAt() *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiscoveryUpsertBulk) SetUpdatedAt(v time.Time) *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiscoveryUpsertBulk) UpdateUpdatedAt() *DiscoveryUpsertBulk {
	return u.Update(func(s *DiscoveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DiscoveryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DiscoveryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DiscoveryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiscoveryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
