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
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/entity"
)

// ClaimEntityCreate is the builder for creating a ClaimEntity entity.
type ClaimEntityCreate struct {
	config
	mutation *ClaimEntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClaimID sets the "claim_id" field.
func (_c *ClaimEntityCreate) SetClaimID(v string) *ClaimEntityCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *ClaimEntityCreate) SetEntityID(v string) *ClaimEntityCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimEntityCreate) SetCreatedAt(v time.Time) *ClaimEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimEntityCreate) SetNillableCreatedAt(v *time.Time) *ClaimEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimEntityCreate) SetID(v string) *ClaimEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_c *ClaimEntityCreate) SetClaim(v *Claim) *ClaimEntityCreate {
	return _c.SetClaimID(v.ID)
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_c *ClaimEntityCreate) SetEntity(v *Entity) *ClaimEntityCreate {
	return _c.SetEntityID(v.ID)
}

// Mutation returns the ClaimEntityMutation object of the builder.
func (_c *ClaimEntityCreate) Mutation() *ClaimEntityMutation {
	return _c.mutation
}

// Save creates the ClaimEntity in the database.
func (_c *ClaimEntityCreate) Save(ctx context.Context) (*ClaimEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimEntityCreate) SaveX(ctx context.Context) *ClaimEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claimentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimEntityCreate) check() error {
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "ClaimEntity.claim_id"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "ClaimEntity.entity_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClaimEntity.created_at"`)}
	}
	if len(_c.mutation.ClaimIDs()) == 0 {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required edge "ClaimEntity.claim"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "ClaimEntity.entity"`)}
	}
	return nil
}

func (_c *ClaimEntityCreate) sqlSave(ctx context.Context) (*ClaimEntity, error) {
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
			return nil, fmt.Errorf("unexpected ClaimEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimEntityCreate) createSpec() (*ClaimEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &ClaimEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claimentity.Table, sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claimentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claimentity.ClaimTable,
			Columns: []string{claimentity.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClaimID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claimentity.EntityTable,
			Columns: []string{claimentity.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EntityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClaimEntity.Create().
//		SetClaimID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimEntityUpsert) {
//			SetClaimID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimEntityCreate) OnConflict(opts ...sql.ConflictOption) *ClaimEntityUpsertOne {
	_c.conflict = opts
	return &ClaimEntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClaimEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimEntityCreate) OnConflictColumns(columns ...string) *ClaimEntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimEntityUpsertOne{
		create: _c,
	}
}

type (
	// ClaimEntityUpsertOne is the builder for "upsert"-ing
	//  one ClaimEntity node.
	ClaimEntityUpsertOne struct {
		create *ClaimEntityCreate
	}

	// ClaimEntityUpsert is the "OnConflict" setter.
	ClaimEntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetCreatedAt sets the "created_at" field.
func (u *ClaimEntityUpsert) SetCreatedAt(v time.Time) *ClaimEntityUpsert {
	u.Set(claimentity.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimEntityUpsert) UpdateCreatedAt() *ClaimEntityUpsert {
	u.SetExcluded(claimentity.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClaimEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claimentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimEntityUpsertOne) UpdateNewValues() *ClaimEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(claimentity.FieldID)
		}
		if _, exists := u.create.mutation.ClaimID(); exists {
			s.SetIgnore(claimentity.FieldClaimID)
		}
		if _, exists := u.create.mutation.EntityID(); exists {
			s.SetIgnore(claimentity.FieldEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClaimEntity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClaimEntityUpsertOne) Ignore() *ClaimEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimEntityUpsertOne) DoNothing() *ClaimEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimEntityCreate.OnConflict
// documentation for more info.
func (u *ClaimEntityUpsertOne) Update(set func(*ClaimEntityUpsert)) *ClaimEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimEntityUpsertOne) SetCreatedAt(v time.Time) *ClaimEntityUpsertOne {
	return u.Update(func(s *ClaimEntityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimEntityUpsertOne) UpdateCreatedAt() *ClaimEntityUpsertOne {
	return u.Update(func(s *ClaimEntityUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ClaimEntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimEntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimEntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClaimEntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClaimEntityUpsertOne.ID is not supported by MySQL driver. Use ClaimEntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClaimEntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClaimEntityCreateBulk is the builder for creating many ClaimEntity entities in bulk.
type ClaimEntityCreateBulk struct {
	config
	err      error
	builders []*ClaimEntityCreate
	conflict []sql.ConflictOption
}

// Save creates the ClaimEntity entities in the database.
func (_c *ClaimEntityCreateBulk) Save(ctx context.Context) ([]*ClaimEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClaimEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimEntityMutation)
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
func (_c *ClaimEntityCreateBulk) SaveX(ctx context.Context) []*ClaimEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClaimEntity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimEntityUpsert) {
//			SetClaimID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimEntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClaimEntityUpsertBulk {
	_c.conflict = opts
	return &ClaimEntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClaimEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimEntityCreateBulk) OnConflictColumns(columns ...string) *ClaimEntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimEntityUpsertBulk{
		create: _c,
	}
}

// ClaimEntityUpsertBulk is the builder for "upsert"-ing
// a bulk of ClaimEntity nodes.
type ClaimEntityUpsertBulk struct {
	create *ClaimEntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClaimEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claimentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimEntityUpsertBulk) UpdateNewValues() *ClaimEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(claimentity.FieldID)
			}
			if _, exists := b.mutation.ClaimID(); exists {
				s.SetIgnore(claimentity.FieldClaimID)
			}
			if _, exists := b.mutation.EntityID(); exists {
				s.SetIgnore(claimentity.FieldEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClaimEntity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClaimEntityUpsertBulk) Ignore() *ClaimEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimEntityUpsertBulk) DoNothing() *ClaimEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimEntityCreateBulk.OnConflict
// documentation for more info.
func (u *ClaimEntityUpsertBulk) Update(set func(*ClaimEntityUpsert)) *ClaimEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimEntityUpsertBulk) SetCreatedAt(v time.Time) *ClaimEntityUpsertBulk {
	return u.Update(func(s *ClaimEntityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimEntityUpsertBulk) UpdateCreatedAt() *ClaimEntityUpsertBulk {
	return u.Update(func(s *ClaimEntityUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ClaimEntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClaimEntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimEntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimEntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
