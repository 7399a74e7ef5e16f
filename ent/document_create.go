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
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/documententity"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceURL sets the "source_url" field.
func (_c *DocumentCreate) SetSourceURL(v string) *DocumentCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *DocumentCreate) SetSourceType(v document.SourceType) *DocumentCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSourceType(v *document.SourceType) *DocumentCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTitle(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *DocumentCreate) SetDescription(v string) *DocumentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDescription(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetContentPath sets the "content_path" field.
func (_c *DocumentCreate) SetContentPath(v string) *DocumentCreate {
	_c.mutation.SetContentPath(v)
	return _c
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableContentPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetContentPath(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v string) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableContentHash(v *string) *DocumentCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetIndexedWithHash sets the "indexed_with_hash" field.
func (_c *DocumentCreate) SetIndexedWithHash(v string) *DocumentCreate {
	_c.mutation.SetIndexedWithHash(v)
	return _c
}

// SetNillableIndexedWithHash sets the "indexed_with_hash" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIndexedWithHash(v *string) *DocumentCreate {
	if v != nil {
		_c.SetIndexedWithHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDocumentEntityIDs adds the "document_entities" edge to the DocumentEntity entity by IDs.
func (_c *DocumentCreate) AddDocumentEntityIDs(ids ...string) *DocumentCreate {
	_c.mutation.AddDocumentEntityIDs(ids...)
	return _c
}

// AddDocumentEntities adds the "document_entities" edges to the DocumentEntity entity.
func (_c *DocumentCreate) AddDocumentEntities(v ...*DocumentEntity) *DocumentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentEntityIDs(ids...)
}

// AddClaimIDs adds the "claims" edge to the Claim entity by IDs.
func (_c *DocumentCreate) AddClaimIDs(ids ...string) *DocumentCreate {
	_c.mutation.AddClaimIDs(ids...)
	return _c
}

// AddClaims adds the "claims" edges to the Claim entity.
func (_c *DocumentCreate) AddClaims(v ...*Claim) *DocumentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClaimIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := document.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Document.source_url"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Document.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(document.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.ContentPath(); ok {
		_spec.SetField(document.FieldContentPath, field.TypeString, value)
		_node.ContentPath = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.IndexedWithHash(); ok {
		_spec.SetField(document.FieldIndexedWithHash, field.TypeString, value)
		_node.IndexedWithHash = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.DocumentEntitiesTable,
			Columns: []string{document.DocumentEntitiesColumn},
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
	if nodes := _c.mutation.ClaimsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ClaimsTable,
			Columns: []string{document.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString),
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
//	client.Document.Create().
//		SetSourceURL(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetSourceURL(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceURL sets the "source_url" field.
func (u *DocumentUpsert) SetSourceURL(v string) *DocumentUpsert {
	u.Set(document.FieldSourceURL, v)
	return u
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSourceURL() *DocumentUpsert {
	u.SetExcluded(document.FieldSourceURL)
	return u
}

// SetSourceType sets the "source_type" field.
func (u *DocumentUpsert) SetSourceType(v document.SourceType) *DocumentUpsert {
	u.Set(document.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSourceType() *DocumentUpsert {
	u.SetExcluded(document.FieldSourceType)
	return u
}

// SetTitle sets the "title" field.
func (u *DocumentUpsert) SetTitle(v string) *DocumentUpsert {
	u.Set(document.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTitle() *DocumentUpsert {
	u.SetExcluded(document.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsert) ClearTitle() *DocumentUpsert {
	u.SetNull(document.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *DocumentUpsert) SetDescription(v string) *DocumentUpsert {
	u.Set(document.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDescription() *DocumentUpsert {
	u.SetExcluded(document.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *DocumentUpsert) ClearDescription() *DocumentUpsert {
	u.SetNull(document.FieldDescription)
	return u
}

// SetContentPath sets the "content_path" field.
func (u *DocumentUpsert) SetContentPath(v string) *DocumentUpsert {
	u.Set(document.FieldContentPath, v)
	return u
}

// UpdateContentPath sets the "content_path" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateContentPath() *DocumentUpsert {
	u.SetExcluded(document.FieldContentPath)
	return u
}

// ClearContentPath clears the value of the "content_path" field.
func (u *DocumentUpsert) ClearContentPath() *DocumentUpsert {
	u.SetNull(document.FieldContentPath)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsert) SetContentHash(v string) *DocumentUpsert {
	u.Set(document.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateContentHash() *DocumentUpsert {
	u.SetExcluded(document.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *DocumentUpsert) ClearContentHash() *DocumentUpsert {
	u.SetNull(document.FieldContentHash)
	return u
}

// SetIndexedWithHash sets the "indexed_with_hash" field.
func (u *DocumentUpsert) SetIndexedWithHash(v string) *DocumentUpsert {
	u.Set(document.FieldIndexedWithHash, v)
	return u
}

// UpdateIndexedWithHash sets the "indexed_with_hash" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateIndexedWithHash() *DocumentUpsert {
	u.SetExcluded(document.FieldIndexedWithHash)
	return u
}

// ClearIndexedWithHash clears the value of the "indexed_with_hash" field.
func (u *DocumentUpsert) ClearIndexedWithHash() *DocumentUpsert {
	u.SetNull(document.FieldIndexedWithHash)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsert) SetCreatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCreatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *DocumentUpsertOne) SetSourceURL(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSourceURL() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceURL()
	})
}

// SetSourceType sets the "source_type" field.
func (u *DocumentUpsertOne) SetSourceType(v document.SourceType) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSourceType() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceType()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertOne) SetTitle(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsertOne) ClearTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTitle()
	})
}

// SetDescription sets the "description" field.
func (u *DocumentUpsertOne) SetDescription(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDescription() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DocumentUpsertOne) ClearDescription() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDescription()
	})
}

// SetContentPath sets the "content_path" field.
func (u *DocumentUpsertOne) SetContentPath(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentPath(v)
	})
}

// UpdateContentPath sets the "content_path" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateContentPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentPath()
	})
}

// ClearContentPath clears the value of the "content_path" field.
func (u *DocumentUpsertOne) ClearContentPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearContentPath()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertOne) SetContentHash(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateContentHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *DocumentUpsertOne) ClearContentHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetIndexedWithHash sets the "indexed_with_hash" field.
func (u *DocumentUpsertOne) SetIndexedWithHash(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetIndexedWithHash(v)
	})
}

// UpdateIndexedWithHash sets the "indexed_with_hash" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateIndexedWithHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateIndexedWithHash()
	})
}

// ClearIndexedWithHash clears the value of the "indexed_with_hash" field.
func (u *DocumentUpsertOne) ClearIndexedWithHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearIndexedWithHash()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertOne) SetCreatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCreatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetSourceURL(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *DocumentUpsertBulk) SetSourceURL(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSourceURL() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceURL()
	})
}

// SetSourceType sets the "source_type" field.
func (u *DocumentUpsertBulk) SetSourceType(v document.SourceType) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSourceType() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceType()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertBulk) SetTitle(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsertBulk) ClearTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTitle()
	})
}

// SetDescription sets the "description" field.
func (u *DocumentUpsertBulk) SetDescription(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDescription() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DocumentUpsertBulk) ClearDescription() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDescription()
	})
}

// SetContentPath sets the "content_path" field.
func (u *DocumentUpsertBulk) SetContentPath(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentPath(v)
	})
}

// UpdateContentPath sets the "content_path" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateContentPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentPath()
	})
}

// ClearContentPath clears the value of the "content_path" field.
func (u *DocumentUpsertBulk) ClearContentPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearContentPath()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertBulk) SetContentHash(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateContentHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *DocumentUpsertBulk) ClearContentHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetIndexedWithHash sets the "indexed_with_hash" field.
func (u *DocumentUpsertBulk) SetIndexedWithHash(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetIndexedWithHash(v)
	})
}

// UpdateIndexedWithHash sets the "indexed_with_hash" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateIndexedWithHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateIndexedWithHash()
	})
}

// ClearIndexedWithHash clears the value of the "indexed_with_hash" field.
func (u *DocumentUpsertBulk) ClearIndexedWithHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearIndexedWithHash()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertBulk) SetCreatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCreatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
