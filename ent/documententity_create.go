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
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
)

// DocumentEntityCreate is the builder for creating a DocumentEntity entity.
type DocumentEntityCreate struct {
	config
	mutation *DocumentEntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentEntityCreate) SetDocumentID(v string) *DocumentEntityCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *DocumentEntityCreate) SetEntityID(v string) *DocumentEntityCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetQuote sets the "quote" field.
func (_c *DocumentEntityCreate) SetQuote(v string) *DocumentEntityCreate {
	_c.mutation.SetQuote(v)
	return _c
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_c *DocumentEntityCreate) SetNillableQuote(v *string) *DocumentEntityCreate {
	if v != nil {
		_c.SetQuote(*v)
	}
	return _c
}

// SetStartOffset sets the "start_offset" field.
func (_c *DocumentEntityCreate) SetStartOffset(v int) *DocumentEntityCreate {
	_c.mutation.SetStartOffset(v)
	return _c
}

// SetNillableStartOffset sets the "start_offset" field if the given value is not nil.
func (_c *DocumentEntityCreate) SetNillableStartOffset(v *int) *DocumentEntityCreate {
	if v != nil {
		_c.SetStartOffset(*v)
	}
	return _c
}

// SetEndOffset sets the "end_offset" field.
func (_c *DocumentEntityCreate) SetEndOffset(v int) *DocumentEntityCreate {
	_c.mutation.SetEndOffset(v)
	return _c
}

// SetNillableEndOffset sets the "end_offset" field if the given value is not nil.
func (_c *DocumentEntityCreate) SetNillableEndOffset(v *int) *DocumentEntityCreate {
	if v != nil {
		_c.SetEndOffset(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DocumentEntityCreate) SetConfidence(v float64) *DocumentEntityCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DocumentEntityCreate) SetNillableConfidence(v *float64) *DocumentEntityCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *DocumentEntityCreate) SetWorkflowID(v string) *DocumentEntityCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentEntityCreate) SetCreatedAt(v time.Time) *DocumentEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentEntityCreate) SetNillableCreatedAt(v *time.Time) *DocumentEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentEntityCreate) SetID(v string) *DocumentEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentEntityCreate) SetDocument(v *Document) *DocumentEntityCreate {
	return _c.SetDocumentID(v.ID)
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_c *DocumentEntityCreate) SetEntity(v *Entity) *DocumentEntityCreate {
	return _c.SetEntityID(v.ID)
}

// Mutation returns the DocumentEntityMutation object of the builder.
func (_c *DocumentEntityCreate) Mutation() *DocumentEntityMutation {
	return _c.mutation
}

// Save creates the DocumentEntity in the database.
func (_c *DocumentEntityCreate) Save(ctx context.Context) (*DocumentEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentEntityCreate) SaveX(ctx context.Context) *DocumentEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentEntityCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := documententity.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documententity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentEntityCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentEntity.document_id"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "DocumentEntity.entity_id"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DocumentEntity.confidence"`)}
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "DocumentEntity.workflow_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentEntity.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentEntity.document"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "DocumentEntity.entity"`)}
	}
	return nil
}

func (_c *DocumentEntityCreate) sqlSave(ctx context.Context) (*DocumentEntity, error) {
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
			return nil, fmt.Errorf("unexpected DocumentEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentEntityCreate) createSpec() (*DocumentEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documententity.Table, sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Quote(); ok {
		_spec.SetField(documententity.FieldQuote, field.TypeString, value)
		_node.Quote = value
	}
	if value, ok := _c.mutation.StartOffset(); ok {
		_spec.SetField(documententity.FieldStartOffset, field.TypeInt, value)
		_node.StartOffset = &value
	}
	if value, ok := _c.mutation.EndOffset(); ok {
		_spec.SetField(documententity.FieldEndOffset, field.TypeInt, value)
		_node.EndOffset = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(documententity.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(documententity.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documententity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documententity.DocumentTable,
			Columns: []string{documententity.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documententity.EntityTable,
			Columns: []string{documententity.EntityColumn},
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
//	client.DocumentEntity.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentEntityUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentEntityCreate) OnConflict(opts ...sql.ConflictOption) *DocumentEntityUpsertOne {
	_c.conflict = opts
	return &DocumentEntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentEntityCreate) OnConflictColumns(columns ...string) *DocumentEntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentEntityUpsertOne{
		create: _c,
	}
}

type (
	// DocumentEntityUpsertOne is the builder for "upsert"-ing
	//  one DocumentEntity node.
	DocumentEntityUpsertOne struct {
		create *DocumentEntityCreate
	}

	// DocumentEntityUpsert is the "OnConflict" setter.
	DocumentEntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuote sets the "quote" field.
func (u *DocumentEntityUpsert) SetQuote(v string) *DocumentEntityUpsert {
	u.Set(documententity.FieldQuote, v)
	return u
}

// UpdateQuote sets the "quote" field to the value that was provided on create.
func (u *DocumentEntityUpsert) UpdateQuote() *DocumentEntityUpsert {
	u.SetExcluded(documententity.FieldQuote)
	return u
}

// ClearQuote clears the value of the "quote" field.
func (u *DocumentEntityUpsert) ClearQuote() *DocumentEntityUpsert {
	u.SetNull(documententity.FieldQuote)
	return u
}

// SetStartOffset sets the "start_offset" field.
func (u *DocumentEntityUpsert) SetStartOffset(v int) *DocumentEntityUpsert {
	u.Set(documententity.FieldStartOffset, v)
	return u
}

// UpdateStartOffset sets the "start_offset" field to the value that was provided on create.
func (u *DocumentEntityUpsert) UpdateStartOffset() *DocumentEntityUpsert {
	u.SetExcluded(documententity.FieldStartOffset)
	return u
}

// AddStartOffset adds v to the "start_offset" field.
func (u *DocumentEntityUpsert) AddStartOffset(v int) *DocumentEntityUpsert {
	u.Add(documententity.FieldStartOffset, v)
	return u
}

// ClearStartOffset clears the value of the "start_offset" field.
func (u *DocumentEntityUpsert) ClearStartOffset() *DocumentEntityUpsert {
	u.SetNull(documententity.FieldStartOffset)
	return u
}

// SetEndOffset sets the "end_offset" field.
func (u *DocumentEntityUpsert) SetEndOffset(v int) *DocumentEntityUpsert {
	u.Set(documententity.FieldEndOffset, v)
	return u
}

// UpdateEndOffset sets the "end_offset" field to the value that was provided on create.
func (u *DocumentEntityUpsert) UpdateEndOffset() *DocumentEntityUpsert {
	u.SetExcluded(documententity.FieldEndOffset)
	return u
}

// AddEndOffset adds v to the "end_offset" field.
func (u *DocumentEntityUpsert) AddEndOffset(v int) *DocumentEntityUpsert {
	u.Add(documententity.FieldEndOffset, v)
	return u
}

// ClearEndOffset clears the value of the "end_offset" field.
func (u *DocumentEntityUpsert) ClearEndOffset() *DocumentEntityUpsert {
	u.SetNull(documententity.FieldEndOffset)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *DocumentEntityUpsert) SetConfidence(v float64) *DocumentEntityUpsert {
	u.Set(documententity.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentEntityUpsert) UpdateConfidence() *DocumentEntityUpsert {
	u.SetExcluded(documententity.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentEntityUpsert) AddConfidence(v float64) *DocumentEntityUpsert {
	u.Add(documententity.FieldConfidence, v)
	return u
}

// SetWorkflowID sets the "workflow_id" field.
func (u *DocumentEntityUpsert) SetWorkflowID(v string) *DocumentEntityUpsert {
	u.Set(documententity.FieldWorkflowID, v)
	return u
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *DocumentEntityUpsert) UpdateWorkflowID() *DocumentEntityUpsert {
	u.SetExcluded(documententity.FieldWorkflowID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentEntityUpsert) SetCreatedAt(v time.Time) *DocumentEntityUpsert {
	u.Set(documententity.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentEntityUpsert) UpdateCreatedAt() *DocumentEntityUpsert {
	u.SetExcluded(documententity.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DocumentEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(documententity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentEntityUpsertOne) UpdateNewValues() *DocumentEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(documententity.FieldID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(documententity.FieldDocumentID)
		}
		if _, exists := u.create.mutation.EntityID(); exists {
			s.SetIgnore(documententity.FieldEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentEntity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentEntityUpsertOne) Ignore() *DocumentEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentEntityUpsertOne) DoNothing() *DocumentEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentEntityCreate.OnConflict
// documentation for more info.
func (u *DocumentEntityUpsertOne) Update(set func(*DocumentEntityUpsert)) *DocumentEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuote sets the "quote" field.
func (u *DocumentEntityUpsertOne) SetQuote(v string) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetQuote(v)
	})
}

// UpdateQuote sets the "quote" field to the value that was provided on create.
func (u *DocumentEntityUpsertOne) UpdateQuote() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateQuote()
	})
}

// ClearQuote clears the value of the "quote" field.
func (u *DocumentEntityUpsertOne) ClearQuote() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.ClearQuote()
	})
}

// SetStartOffset sets the "start_offset" field.
func (u *DocumentEntityUpsertOne) SetStartOffset(v int) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetStartOffset(v)
	})
}

// AddStartOffset adds v to the "start_offset" field.
func (u *DocumentEntityUpsertOne) AddStartOffset(v int) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.AddStartOffset(v)
	})
}

// UpdateStartOffset sets the "start_offset" field to the value that was provided on create.
func (u *DocumentEntityUpsertOne) UpdateStartOffset() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateStartOffset()
	})
}

// ClearStartOffset clears the value of the "start_offset" field.
func (u *DocumentEntityUpsertOne) ClearStartOffset() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.ClearStartOffset()
	})
}

// SetEndOffset sets the "end_offset" field.
func (u *DocumentEntityUpsertOne) SetEndOffset(v int) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetEndOffset(v)
	})
}

// AddEndOffset adds v to the "end_offset" field.
func (u *DocumentEntityUpsertOne) AddEndOffset(v int) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.AddEndOffset(v)
	})
}

// UpdateEndOffset sets the "end_offset" field to the value that was provided on create.
func (u *DocumentEntityUpsertOne) UpdateEndOffset() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateEndOffset()
	})
}

// ClearEndOffset clears the value of the "end_offset" field.
func (u *DocumentEntityUpsertOne) ClearEndOffset() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.ClearEndOffset()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocumentEntityUpsertOne) SetConfidence(v float64) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentEntityUpsertOne) AddConfidence(v float64) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentEntityUpsertOne) UpdateConfidence() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateConfidence()
	})
}

// SetWorkflowID sets the "workflow_id" field.
func (u *DocumentEntityUpsertOne) SetWorkflowID(v string) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetWorkflowID(v)
	})
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *DocumentEntityUpsertOne) UpdateWorkflowID() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateWorkflowID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentEntityUpsertOne) SetCreatedAt(v time.Time) *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentEntityUpsertOne) UpdateCreatedAt() *DocumentEntityUpsertOne {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DocumentEntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentEntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentEntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentEntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentEntityUpsertOne.ID is not supported by MySQL driver. Use DocumentEntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentEntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentEntityCreateBulk is the builder for creating many DocumentEntity entities in bulk.
type DocumentEntityCreateBulk struct {
	config
	err      error
	builders []*DocumentEntityCreate
	conflict []sql.ConflictOption
}

// Save creates the DocumentEntity entities in the database.
func (_c *DocumentEntityCreateBulk) Save(ctx context.Context) ([]*DocumentEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentEntityMutation)
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
func (_c *DocumentEntityCreateBulk) SaveX(ctx context.Context) []*DocumentEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentEntity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentEntityUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentEntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentEntityUpsertBulk {
	_c.conflict = opts
	return &DocumentEntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentEntityCreateBulk) OnConflictColumns(columns ...string) *DocumentEntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentEntityUpsertBulk{
		create: _c,
	}
}

// DocumentEntityUpsertBulk is the builder for "upsert"-ing
// a bulk of DocumentEntity nodes.
type DocumentEntityUpsertBulk struct {
	create *DocumentEntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DocumentEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(documententity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentEntityUpsertBulk) UpdateNewValues() *DocumentEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(documententity.FieldID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(documententity.FieldDocumentID)
			}
			if _, exists := b.mutation.EntityID(); exists {
				s.SetIgnore(documententity.FieldEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentEntity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentEntityUpsertBulk) Ignore() *DocumentEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentEntityUpsertBulk) DoNothing() *DocumentEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentEntityCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentEntityUpsertBulk) Update(set func(*DocumentEntityUpsert)) *DocumentEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuote sets the "quote" field.
func (u *DocumentEntityUpsertBulk) SetQuote(v string) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetQuote(v)
	})
}

// UpdateQuote sets the "quote" field to the value that was provided on create.
func (u *DocumentEntityUpsertBulk) UpdateQuote() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateQuote()
	})
}

// ClearQuote clears the value of the "quote" field.
func (u *DocumentEntityUpsertBulk) ClearQuote() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.ClearQuote()
	})
}

// SetStartOffset sets the "start_offset" field.
func (u *DocumentEntityUpsertBulk) SetStartOffset(v int) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetStartOffset(v)
	})
}

// AddStartOffset adds v to the "start_offset" field.
func (u *DocumentEntityUpsertBulk) AddStartOffset(v int) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.AddStartOffset(v)
	})
}

// UpdateStartOffset sets the "start_offset" field to the value that was provided on create.
func (u *DocumentEntityUpsertBulk) UpdateStartOffset() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateStartOffset()
	})
}

// ClearStartOffset clears the value of the "start_offset" field.
func (u *DocumentEntityUpsertBulk) ClearStartOffset() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.ClearStartOffset()
	})
}

// SetEndOffset sets the "end_offset" field.
func (u *DocumentEntityUpsertBulk) SetEndOffset(v int) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetEndOffset(v)
	})
}

// AddEndOffset adds v to the "end_offset" field.
func (u *DocumentEntityUpsertBulk) AddEndOffset(v int) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.AddEndOffset(v)
	})
}

// UpdateEndOffset sets the "end_offset" field to the value that was provided on create.
func (u *DocumentEntityUpsertBulk) UpdateEndOffset() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateEndOffset()
	})
}

// ClearEndOffset clears the value of the "end_offset" field.
func (u *DocumentEntityUpsertBulk) ClearEndOffset() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.ClearEndOffset()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocumentEntityUpsertBulk) SetConfidence(v float64) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentEntityUpsertBulk) AddConfidence(v float64) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentEntityUpsertBulk) UpdateConfidence() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateConfidence()
	})
}

// SetWorkflowID sets the "workflow_id" field.
func (u *DocumentEntityUpsertBulk) SetWorkflowID(v string) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetWorkflowID(v)
	})
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *DocumentEntityUpsertBulk) UpdateWorkflowID() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateWorkflowID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentEntityUpsertBulk) SetCreatedAt(v time.Time) *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentEntityUpsertBulk) UpdateCreatedAt() *DocumentEntityUpsertBulk {
	return u.Update(func(s *DocumentEntityUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DocumentEntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentEntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentEntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentEntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
