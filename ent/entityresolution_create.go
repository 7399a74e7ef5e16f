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
	"github.com/kurt-labs/kurt/ent/entityresolution"
)

// EntityResolutionCreate is the builder for creating a EntityResolution entity.
type EntityResolutionCreate struct {
	config
	mutation *EntityResolutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *EntityResolutionCreate) SetWorkflowID(v string) *EntityResolutionCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetEntityName sets the "entity_name" field.
func (_c *EntityResolutionCreate) SetEntityName(v string) *EntityResolutionCreate {
	_c.mutation.SetEntityName(v)
	return _c
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (_c *EntityResolutionCreate) SetResolvedEntityID(v string) *EntityResolutionCreate {
	_c.mutation.SetResolvedEntityID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *EntityResolutionCreate) SetAction(v entityresolution.Action) *EntityResolutionCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *EntityResolutionCreate) SetScore(v float64) *EntityResolutionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *EntityResolutionCreate) SetNillableScore(v *float64) *EntityResolutionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityResolutionCreate) SetCreatedAt(v time.Time) *EntityResolutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityResolutionCreate) SetNillableCreatedAt(v *time.Time) *EntityResolutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityResolutionCreate) SetID(v string) *EntityResolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntityResolutionMutation object of the builder.
func (_c *EntityResolutionCreate) Mutation() *EntityResolutionMutation {
	return _c.mutation
}

// Save creates the EntityResolution in the database.
func (_c *EntityResolutionCreate) Save(ctx context.Context) (*EntityResolution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityResolutionCreate) SaveX(ctx context.Context) *EntityResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityResolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityResolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityResolutionCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := entityresolution.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entityresolution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityResolutionCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "EntityResolution.workflow_id"`)}
	}
	if _, ok := _c.mutation.EntityName(); !ok {
		return &ValidationError{Name: "entity_name", err: errors.New(`ent: missing required field "EntityResolution.entity_name"`)}
	}
	if _, ok := _c.mutation.ResolvedEntityID(); !ok {
		return &ValidationError{Name: "resolved_entity_id", err: errors.New(`ent: missing required field "EntityResolution.resolved_entity_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "EntityResolution.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := entityresolution.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "EntityResolution.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "EntityResolution.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityResolution.created_at"`)}
	}
	return nil
}

func (_c *EntityResolutionCreate) sqlSave(ctx context.Context) (*EntityResolution, error) {
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
			return nil, fmt.Errorf("unexpected EntityResolution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityResolutionCreate) createSpec() (*EntityResolution, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityResolution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityresolution.Table, sqlgraph.NewFieldSpec(entityresolution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(entityresolution.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.EntityName(); ok {
		_spec.SetField(entityresolution.FieldEntityName, field.TypeString, value)
		_node.EntityName = value
	}
	if value, ok := _c.mutation.ResolvedEntityID(); ok {
		_spec.SetField(entityresolution.FieldResolvedEntityID, field.TypeString, value)
		_node.ResolvedEntityID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(entityresolution.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(entityresolution.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entityresolution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityResolution.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityResolutionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityResolutionCreate) OnConflict(opts ...sql.ConflictOption) *EntityResolutionUpsertOne {
	_c.conflict = opts
	return &EntityResolutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityResolutionCreate) OnConflictColumns(columns ...string) *EntityResolutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityResolutionUpsertOne{
		create: _c,
	}
}

type (
	// EntityResolutionUpsertOne is the builder for "upsert"-ing
	//  one EntityResolution node.
	EntityResolutionUpsertOne struct {
		create *EntityResolutionCreate
	}

	// EntityResolutionUpsert is the "OnConflict" setter.
	EntityResolutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityName sets the "entity_name" field.
func (u *EntityResolutionUpsert) SetEntityName(v string) *EntityResolutionUpsert {
	u.Set(entityresolution.FieldEntityName, v)
	return u
}

// UpdateEntityName sets the "entity_name" field to the value that was provided on create.
func (u *EntityResolutionUpsert) UpdateEntityName() *EntityResolutionUpsert {
	u.SetExcluded(entityresolution.FieldEntityName)
	return u
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (u *EntityResolutionUpsert) SetResolvedEntityID(v string) *EntityResolutionUpsert {
	u.Set(entityresolution.FieldResolvedEntityID, v)
	return u
}

// UpdateResolvedEntityID sets the "resolved_entity_id" field to the value that was provided on create.
func (u *EntityResolutionUpsert) UpdateResolvedEntityID() *EntityResolutionUpsert {
	u.SetExcluded(entityresolution.FieldResolvedEntityID)
	return u
}

// SetAction sets the "action" field.
func (u *EntityResolutionUpsert) SetAction(v entityresolution.Action) *EntityResolutionUpsert {
	u.Set(entityresolution.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *EntityResolutionUpsert) UpdateAction() *EntityResolutionUpsert {
	u.SetExcluded(entityresolution.FieldAction)
	return u
}

// SetScore sets the "score" field.
func (u *EntityResolutionUpsert) SetScore(v float64) *EntityResolutionUpsert {
	u.Set(entityresolution.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EntityResolutionUpsert) UpdateScore() *EntityResolutionUpsert {
	u.SetExcluded(entityresolution.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *EntityResolutionUpsert) AddScore(v float64) *EntityResolutionUpsert {
	u.Add(entityresolution.FieldScore, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EntityResolutionUpsert) SetCreatedAt(v time.Time) *EntityResolutionUpsert {
	u.Set(entityresolution.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EntityResolutionUpsert) UpdateCreatedAt() *EntityResolutionUpsert {
	u.SetExcluded(entityresolution.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntityResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entityresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityResolutionUpsertOne) UpdateNewValues() *EntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entityresolution.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(entityresolution.FieldWorkflowID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityResolution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityResolutionUpsertOne) Ignore() *EntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityResolutionUpsertOne) DoNothing() *EntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityResolutionCreate.OnConflict
// documentation for more info.
func (u *EntityResolutionUpsertOne) Update(set func(*EntityResolutionUpsert)) *EntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityName sets the "entity_name" field.
func (u *EntityResolutionUpsertOne) SetEntityName(v string) *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetEntityName(v)
	})
}

// UpdateEntityName sets the "entity_name" field to the value that was provided on create.
func (u *EntityResolutionUpsertOne) UpdateEntityName() *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateEntityName()
	})
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (u *EntityResolutionUpsertOne) SetResolvedEntityID(v string) *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetResolvedEntityID(v)
	})
}

// UpdateResolvedEntityID sets the "resolved_entity_id" field to the value that was provided on create.
func (u *EntityResolutionUpsertOne) UpdateResolvedEntityID() *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateResolvedEntityID()
	})
}

// SetAction sets the "action" field.
func (u *EntityResolutionUpsertOne) SetAction(v entityresolution.Action) *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *EntityResolutionUpsertOne) UpdateAction() *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateAction()
	})
}

// SetScore sets the "score" field.
func (u *EntityResolutionUpsertOne) SetScore(v float64) *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *EntityResolutionUpsertOne) AddScore(v float64) *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EntityResolutionUpsertOne) UpdateScore() *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateScore()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EntityResolutionUpsertOne) SetCreatedAt(v time.Time) *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EntityResolutionUpsertOne) UpdateCreatedAt() *EntityResolutionUpsertOne {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EntityResolutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityResolutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityResolutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityResolutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityResolutionUpsertOne.ID is not supported by MySQL driver. Use EntityResolutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityResolutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityResolutionCreateBulk is the builder for creating many EntityResolution entities in bulk.
type EntityResolutionCreateBulk struct {
	config
	err      error
	builders []*EntityResolutionCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityResolution entities in the database.
func (_c *EntityResolutionCreateBulk) Save(ctx context.Context) ([]*EntityResolution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityResolution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityResolutionMutation)
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
func (_c *EntityResolutionCreateBulk) SaveX(ctx context.Context) []*EntityResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityResolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityResolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityResolution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityResolutionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityResolutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityResolutionUpsertBulk {
	_c.conflict = opts
	return &EntityResolutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityResolutionCreateBulk) OnConflictColumns(columns ...string) *EntityResolutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityResolutionUpsertBulk{
		create: _c,
	}
}

// EntityResolutionUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityResolution nodes.
type EntityResolutionUpsertBulk struct {
	create *EntityResolutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entityresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityResolutionUpsertBulk) UpdateNewValues() *EntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entityresolution.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(entityresolution.FieldWorkflowID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityResolution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityResolutionUpsertBulk) Ignore() *EntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityResolutionUpsertBulk) DoNothing() *EntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityResolutionCreateBulk.OnConflict
// documentation for more info.
func (u *EntityResolutionUpsertBulk) Update(set func(*EntityResolutionUpsert)) *EntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityName sets the "entity_name" field.
func (u *EntityResolutionUpsertBulk) SetEntityName(v string) *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetEntityName(v)
	})
}

// UpdateEntityName sets the "entity_name" field to the value that was provided on create.
func (u *EntityResolutionUpsertBulk) UpdateEntityName() *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateEntityName()
	})
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (u *EntityResolutionUpsertBulk) SetResolvedEntityID(v string) *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetResolvedEntityID(v)
	})
}

// UpdateResolvedEntityID sets the "resolved_entity_id" field to the value that was provided on create.
func (u *EntityResolutionUpsertBulk) UpdateResolvedEntityID() *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateResolvedEntityID()
	})
}

// SetAction sets the "action" field.
func (u *EntityResolutionUpsertBulk) SetAction(v entityresolution.Action) *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *EntityResolutionUpsertBulk) UpdateAction() *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateAction()
	})
}

// SetScore sets the "score" field.
func (u *EntityResolutionUpsertBulk) SetScore(v float64) *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *EntityResolutionUpsertBulk) AddScore(v float64) *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EntityResolutionUpsertBulk) UpdateScore() *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateScore()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EntityResolutionUpsertBulk) SetCreatedAt(v time.Time) *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EntityResolutionUpsertBulk) UpdateCreatedAt() *EntityResolutionUpsertBulk {
	return u.Update(func(s *EntityResolutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EntityResolutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityResolutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityResolutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityResolutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
