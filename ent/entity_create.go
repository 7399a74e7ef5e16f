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
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
)

// EntityCreate is the builder for creating a Entity entity.
type EntityCreate struct {
	config
	mutation *EntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *EntityCreate) SetName(v string) *EntityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityCreate) SetEntityType(v entity.EntityType) *EntityCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_c *EntityCreate) SetNillableEntityType(v *entity.EntityType) *EntityCreate {
	if v != nil {
		_c.SetEntityType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *EntityCreate) SetDescription(v string) *EntityCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EntityCreate) SetNillableDescription(v *string) *EntityCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAliases sets the "aliases" field.
func (_c *EntityCreate) SetAliases(v []string) *EntityCreate {
	_c.mutation.SetAliases(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *EntityCreate) SetEmbedding(v []byte) *EntityCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_c *EntityCreate) SetMergedIntoID(v string) *EntityCreate {
	_c.mutation.SetMergedIntoID(v)
	return _c
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_c *EntityCreate) SetNillableMergedIntoID(v *string) *EntityCreate {
	if v != nil {
		_c.SetMergedIntoID(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *EntityCreate) SetVersion(v int) *EntityCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *EntityCreate) SetNillableVersion(v *int) *EntityCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityCreate) SetCreatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableCreatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityCreate) SetUpdatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableUpdatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityCreate) SetID(v string) *EntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDocumentEntityIDs adds the "document_entities" edge to the DocumentEntity entity by IDs.
func (_c *EntityCreate) AddDocumentEntityIDs(ids ...string) *EntityCreate {
	_c.mutation.AddDocumentEntityIDs(ids...)
	return _c
}

// AddDocumentEntities adds the "document_entities" edges to the DocumentEntity entity.
func (_c *EntityCreate) AddDocumentEntities(v ...*DocumentEntity) *EntityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentEntityIDs(ids...)
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by IDs.
func (_c *EntityCreate) AddClaimEntityIDs(ids ...string) *EntityCreate {
	_c.mutation.AddClaimEntityIDs(ids...)
	return _c
}

// AddClaimEntities adds the "claim_entities" edges to the ClaimEntity entity.
func (_c *EntityCreate) AddClaimEntities(v ...*ClaimEntity) *EntityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClaimEntityIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_c *EntityCreate) Mutation() *EntityMutation {
	return _c.mutation
}

// Save creates the Entity in the database.
func (_c *EntityCreate) Save(ctx context.Context) (*Entity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityCreate) SaveX(ctx context.Context) *Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityCreate) defaults() {
	if _, ok := _c.mutation.EntityType(); !ok {
		v := entity.DefaultEntityType
		_c.mutation.SetEntityType(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := entity.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Entity.name"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Entity.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entity.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Entity.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Entity.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Entity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Entity.updated_at"`)}
	}
	return nil
}

func (_c *EntityCreate) sqlSave(ctx context.Context) (*Entity, error) {
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
			return nil, fmt.Errorf("unexpected Entity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityCreate) createSpec() (*Entity, *sqlgraph.CreateSpec) {
	var (
		_node = &Entity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entity.Table, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Aliases(); ok {
		_spec.SetField(entity.FieldAliases, field.TypeJSON, value)
		_node.Aliases = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(entity.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.MergedIntoID(); ok {
		_spec.SetField(entity.FieldMergedIntoID, field.TypeString, value)
		_node.MergedIntoID = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(entity.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClaimEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entity.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityCreate) OnConflict(opts ...sql.ConflictOption) *EntityUpsertOne {
	_c.conflict = opts
	return &EntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityCreate) OnConflictColumns(columns ...string) *EntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityUpsertOne{
		create: _c,
	}
}

type (
	// EntityUpsertOne is the builder for "upsert"-ing
	//  one Entity node.
	EntityUpsertOne struct {
		create *EntityCreate
	}

	// EntityUpsert is the "OnConflict" setter.
	EntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *EntityUpsert) SetName(v string) *EntityUpsert {
	u.Set(entity.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsert) UpdateName() *EntityUpsert {
	u.SetExcluded(entity.FieldName)
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *EntityUpsert) SetEntityType(v entity.EntityType) *EntityUpsert {
	u.Set(entity.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityUpsert) UpdateEntityType() *EntityUpsert {
	u.SetExcluded(entity.FieldEntityType)
	return u
}

// SetDescription sets the "description" field.
func (u *EntityUpsert) SetDescription(v string) *EntityUpsert {
	u.Set(entity.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityUpsert) UpdateDescription() *EntityUpsert {
	u.SetExcluded(entity.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EntityUpsert) ClearDescription() *EntityUpsert {
	u.SetNull(entity.FieldDescription)
	return u
}

// SetAliases sets the "aliases" field.
func (u *EntityUpsert) SetAliases(v []string) *EntityUpsert {
	u.Set(entity.FieldAliases, v)
	return u
}

// UpdateAliases sets the "aliases" field to the value that was provided on create.
func (u *EntityUpsert) UpdateAliases() *EntityUpsert {
	u.SetExcluded(entity.FieldAliases)
	return u
}

// ClearAliases clears the value of the "aliases" field.
func (u *EntityUpsert) ClearAliases() *EntityUpsert {
	u.SetNull(entity.FieldAliases)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *EntityUpsert) SetEmbedding(v []byte) *EntityUpsert {
	u.Set(entity.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EntityUpsert) UpdateEmbedding() *EntityUpsert {
	u.SetExcluded(entity.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EntityUpsert) ClearEmbedding() *EntityUpsert {
	u.SetNull(entity.FieldEmbedding)
	return u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (u *EntityUpsert) SetMergedIntoID(v string) *EntityUpsert {
	u.Set(entity.FieldMergedIntoID, v)
	return u
}

// UpdateMergedIntoID sets the "merged_into_id" field to the value that was provided on create.
func (u *EntityUpsert) UpdateMergedIntoID() *EntityUpsert {
	u.SetExcluded(entity.FieldMergedIntoID)
	return u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (u *EntityUpsert) ClearMergedIntoID() *EntityUpsert {
	u.SetNull(entity.FieldMergedIntoID)
	return u
}

// SetVersion sets the "version" field.
func (u *EntityUpsert) SetVersion(v int) *EntityUpsert {
	u.Set(entity.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *EntityUpsert) UpdateVersion() *EntityUpsert {
	u.SetExcluded(entity.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *EntityUpsert) AddVersion(v int) *EntityUpsert {
	u.Add(entity.FieldVersion, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EntityUpsert) SetCreatedAt(v time.Time) *EntityUpsert {
	u.Set(entity.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EntityUpsert) UpdateCreatedAt() *EntityUpsert {
	u.SetExcluded(entity.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityUpsert) SetUpdatedAt(v time.Time) *EntityUpsert {
	u.Set(entity.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityUpsert) UpdateUpdatedAt() *EntityUpsert {
	u.SetExcluded(entity.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityUpsertOne) UpdateNewValues() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entity.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityUpsertOne) Ignore() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityUpsertOne) DoNothing() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityCreate.OnConflict
// documentation for more info.
func (u *EntityUpsertOne) Update(set func(*EntityUpsert)) *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EntityUpsertOne) SetName(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateName() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateName()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *EntityUpsertOne) SetEntityType(v entity.EntityType) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateEntityType() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateEntityType()
	})
}

// SetDescription sets the "description" field.
func (u *EntityUpsertOne) SetDescription(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateDescription() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EntityUpsertOne) ClearDescription() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearDescription()
	})
}

// SetAliases sets the "aliases" field.
func (u *EntityUpsertOne) SetAliases(v []string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetAliases(v)
	})
}

// UpdateAliases sets the "aliases" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateAliases() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateAliases()
	})
}

// ClearAliases clears the value of the "aliases" field.
func (u *EntityUpsertOne) ClearAliases() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearAliases()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EntityUpsertOne) SetEmbedding(v []byte) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateEmbedding() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EntityUpsertOne) ClearEmbedding() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearEmbedding()
	})
}

// SetMergedIntoID sets the "merged_into_id" field.
func (u *EntityUpsertOne) SetMergedIntoID(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetMergedIntoID(v)
	})
}

// UpdateMergedIntoID sets the "merged_into_id" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateMergedIntoID() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateMergedIntoID()
	})
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (u *EntityUpsertOne) ClearMergedIntoID() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearMergedIntoID()
	})
}

// SetVersion sets the "version" field.
func (u *EntityUpsertOne) SetVersion(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *EntityUpsertOne) AddVersion(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateVersion() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EntityUpsertOne) SetCreatedAt(v time.Time) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateCreatedAt() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityUpsertOne) SetUpdatedAt(v time.Time) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateUpdatedAt() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityUpsertOne.ID is not supported by MySQL driver. Use EntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityCreateBulk is the builder for creating many Entity entities in bulk.
type EntityCreateBulk struct {
	config
	err      error
	builders []*EntityCreate
	conflict []sql.ConflictOption
}

// Save creates the Entity entities in the database.
func (_c *EntityCreateBulk) Save(ctx context.Context) ([]*Entity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMutation)
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
func (_c *EntityCreateBulk) SaveX(ctx context.Context) []*Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityUpsertBulk {
	_c.conflict = opts
	return &EntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityCreateBulk) OnConflictColumns(columns ...string) *EntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityUpsertBulk{
		create: _c,
	}
}

// EntityUpsertBulk is the builder for "upsert"-ing
// a bulk of Entity nodes.
type EntityUpsertBulk struct {
	create *EntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityUpsertBulk) UpdateNewValues() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entity.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityUpsertBulk) Ignore() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityUpsertBulk) DoNothing() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityCreateBulk.OnConflict
// documentation for more info.
func (u *EntityUpsertBulk) Update(set func(*EntityUpsert)) *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EntityUpsertBulk) SetName(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateName() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateName()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *EntityUpsertBulk) SetEntityType(v entity.EntityType) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateEntityType() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateEntityType()
	})
}

// SetDescription sets the "description" field.
func (u *EntityUpsertBulk) SetDescription(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateDescription() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EntityUpsertBulk) ClearDescription() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearDescription()
	})
}

// SetAliases sets the "aliases" field.
func (u *EntityUpsertBulk) SetAliases(v []string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetAliases(v)
	})
}

// UpdateAliases sets the "aliases" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateAliases() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateAliases()
	})
}

// ClearAliases clears the value of the "aliases" field.
func (u *EntityUpsertBulk) ClearAliases() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearAliases()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EntityUpsertBulk) SetEmbedding(v []byte) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateEmbedding() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EntityUpsertBulk) ClearEmbedding() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearEmbedding()
	})
}

// SetMergedIntoID sets the "merged_into_id" field.
func (u *EntityUpsertBulk) SetMergedIntoID(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetMergedIntoID(v)
	})
}

// UpdateMergedIntoID sets the "merged_into_id" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateMergedIntoID() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateMergedIntoID()
	})
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (u *EntityUpsertBulk) ClearMergedIntoID() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearMergedIntoID()
	})
}

// SetVersion sets the "version" field.
func (u *EntityUpsertBulk) SetVersion(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *EntityUpsertBulk) AddVersion(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateVersion() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EntityUpsertBulk) SetCreatedAt(v time.Time) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateCreatedAt() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityUpsertBulk) SetUpdatedAt(v time.Time) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateUpdatedAt() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
