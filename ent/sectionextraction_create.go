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
	"github.com/kurt-labs/kurt/ent/sectionextraction"
)

// SectionExtractionCreate is the builder for creating a SectionExtraction entity.
type SectionExtractionCreate struct {
	config
	mutation *SectionExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *SectionExtractionCreate) SetWorkflowID(v string) *SectionExtractionCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *SectionExtractionCreate) SetDocumentID(v string) *SectionExtractionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *SectionExtractionCreate) SetSectionID(v string) *SectionExtractionCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetSectionIndex sets the "section_index" field.
func (_c *SectionExtractionCreate) SetSectionIndex(v int) *SectionExtractionCreate {
	_c.mutation.SetSectionIndex(v)
	return _c
}

// SetHeader sets the "header" field.
func (_c *SectionExtractionCreate) SetHeader(v string) *SectionExtractionCreate {
	_c.mutation.SetHeader(v)
	return _c
}

// SetNillableHeader sets the "header" field if the given value is not nil.
func (_c *SectionExtractionCreate) SetNillableHeader(v *string) *SectionExtractionCreate {
	if v != nil {
		_c.SetHeader(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *SectionExtractionCreate) SetContent(v string) *SectionExtractionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *SectionExtractionCreate) SetEmbedding(v []byte) *SectionExtractionCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetEntities sets the "entities" field.
func (_c *SectionExtractionCreate) SetEntities(v []map[string]interface{}) *SectionExtractionCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetRelationships sets the "relationships" field.
func (_c *SectionExtractionCreate) SetRelationships(v []map[string]interface{}) *SectionExtractionCreate {
	_c.mutation.SetRelationships(v)
	return _c
}

// SetClaims sets the "claims" field.
func (_c *SectionExtractionCreate) SetClaims(v []map[string]interface{}) *SectionExtractionCreate {
	_c.mutation.SetClaims(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *SectionExtractionCreate) SetContentType(v string) *SectionExtractionCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *SectionExtractionCreate) SetNillableContentType(v *string) *SectionExtractionCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SectionExtractionCreate) SetStatus(v sectionextraction.Status) *SectionExtractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SectionExtractionCreate) SetNillableStatus(v *sectionextraction.Status) *SectionExtractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SectionExtractionCreate) SetCreatedAt(v time.Time) *SectionExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SectionExtractionCreate) SetNillableCreatedAt(v *time.Time) *SectionExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SectionExtractionCreate) SetUpdatedAt(v time.Time) *SectionExtractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SectionExtractionCreate) SetNillableUpdatedAt(v *time.Time) *SectionExtractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SectionExtractionCreate) SetID(v string) *SectionExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SectionExtractionMutation object of the builder.
func (_c *SectionExtractionCreate) Mutation() *SectionExtractionMutation {
	return _c.mutation
}

// Save creates the SectionExtraction in the database.
func (_c *SectionExtractionCreate) Save(ctx context.Context) (*SectionExtraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SectionExtractionCreate) SaveX(ctx context.Context) *SectionExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SectionExtractionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sectionextraction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sectionextraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sectionextraction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SectionExtractionCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "SectionExtraction.workflow_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "SectionExtraction.document_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "SectionExtraction.section_id"`)}
	}
	if _, ok := _c.mutation.SectionIndex(); !ok {
		return &ValidationError{Name: "section_index", err: errors.New(`ent: missing required field "SectionExtraction.section_index"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "SectionExtraction.content"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SectionExtraction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sectionextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SectionExtraction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SectionExtraction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SectionExtraction.updated_at"`)}
	}
	return nil
}

func (_c *SectionExtractionCreate) sqlSave(ctx context.Context) (*SectionExtraction, error) {
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
			return nil, fmt.Errorf("unexpected SectionExtraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SectionExtractionCreate) createSpec() (*SectionExtraction, *sqlgraph.CreateSpec) {
	var (
		_node = &SectionExtraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sectionextraction.Table, sqlgraph.NewFieldSpec(sectionextraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(sectionextraction.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(sectionextraction.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(sectionextraction.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.SectionIndex(); ok {
		_spec.SetField(sectionextraction.FieldSectionIndex, field.TypeInt, value)
		_node.SectionIndex = value
	}
	if value, ok := _c.mutation.Header(); ok {
		_spec.SetField(sectionextraction.FieldHeader, field.TypeString, value)
		_node.Header = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(sectionextraction.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(sectionextraction.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(sectionextraction.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.Relationships(); ok {
		_spec.SetField(sectionextraction.FieldRelationships, field.TypeJSON, value)
		_node.Relationships = value
	}
	if value, ok := _c.mutation.Claims(); ok {
		_spec.SetField(sectionextraction.FieldClaims, field.TypeJSON, value)
		_node.Claims = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(sectionextraction.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sectionextraction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sectionextraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sectionextraction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SectionExtraction.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SectionExtractionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *SectionExtractionCreate) OnConflict(opts ...sql.ConflictOption) *SectionExtractionUpsertOne {
	_c.conflict = opts
	return &SectionExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SectionExtraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SectionExtractionCreate) OnConflictColumns(columns ...string) *SectionExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SectionExtractionUpsertOne{
		create: _c,
	}
}

type (
	// SectionExtractionUpsertOne is the builder for "upsert"-ing
	//  one SectionExtraction node.
	SectionExtractionUpsertOne struct {
		create *SectionExtractionCreate
	}

	// SectionExtractionUpsert is the "OnConflict" setter.
	SectionExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSectionID sets the "section_id" field.
func (u *SectionExtractionUpsert) SetSectionID(v string) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldSectionID, v)
	return u
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateSectionID() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldSectionID)
	return u
}

// SetSectionIndex sets the "section_index" field.
func (u *SectionExtractionUpsert) SetSectionIndex(v int) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldSectionIndex, v)
	return u
}

// UpdateSectionIndex sets the "section_index" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateSectionIndex() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldSectionIndex)
	return u
}

// AddSectionIndex adds v to the "section_index" field.
func (u *SectionExtractionUpsert) AddSectionIndex(v int) *SectionExtractionUpsert {
	u.Add(sectionextraction.FieldSectionIndex, v)
	return u
}

// SetHeader sets the "header" field.
func (u *SectionExtractionUpsert) SetHeader(v string) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldHeader, v)
	return u
}

// UpdateHeader sets the "header" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateHeader() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldHeader)
	return u
}

// ClearHeader clears the value of the "header" field.
func (u *SectionExtractionUpsert) ClearHeader() *SectionExtractionUpsert {
	u.SetNull(sectionextraction.FieldHeader)
	return u
}

// SetContent sets the "content" field.
func (u *SectionExtractionUpsert) SetContent(v string) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateContent() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldContent)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *SectionExtractionUpsert) SetEmbedding(v []byte) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateEmbedding() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *SectionExtractionUpsert) ClearEmbedding() *SectionExtractionUpsert {
	u.SetNull(sectionextraction.FieldEmbedding)
	return u
}

// SetEntities sets the "entities" field.
func (u *SectionExtractionUpsert) SetEntities(v []map[string]interface{}) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldEntities, v)
	return u
}

// UpdateEntities sets the "entities" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateEntities() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldEntities)
	return u
}

// ClearEntities clears the value of the "entities" field.
func (u *SectionExtractionUpsert) ClearEntities() *SectionExtractionUpsert {
	u.SetNull(sectionextraction.FieldEntities)
	return u
}

// SetRelationships sets the "relationships" field.
func (u *SectionExtractionUpsert) SetRelationships(v []map[string]interface{}) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldRelationships, v)
	return u
}

// UpdateRelationships sets the "relationships" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateRelationships() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldRelationships)
	return u
}

// ClearRelationships clears the value of the "relationships" field.
func (u *SectionExtractionUpsert) ClearRelationships() *SectionExtractionUpsert {
	u.SetNull(sectionextraction.FieldRelationships)
	return u
}

// SetClaims sets the "claims" field.
func (u *SectionExtractionUpsert) SetClaims(v []map[string]interface{}) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldClaims, v)
	return u
}

// UpdateClaims sets the "claims" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateClaims() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldClaims)
	return u
}

// ClearClaims clears the value of the "claims" field.
func (u *SectionExtractionUpsert) ClearClaims() *SectionExtractionUpsert {
	u.SetNull(sectionextraction.FieldClaims)
	return u
}

// SetContentType sets the "content_type" field.
func (u *SectionExtractionUpsert) SetContentType(v string) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateContentType() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldContentType)
	return u
}

// ClearContentType clears the value of the "content_type" field.
func (u *SectionExtractionUpsert) ClearContentType() *SectionExtractionUpsert {
	u.SetNull(sectionextraction.FieldContentType)
	return u
}

// SetStatus sets the "status" field.
func (u *SectionExtractionUpsert) SetStatus(v sectionextraction.Status) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateStatus() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SectionExtractionUpsert) SetCreatedAt(v time.Time) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateCreatedAt() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SectionExtractionUpsert) SetUpdatedAt(v time.Time) *SectionExtractionUpsert {
	u.Set(sectionextraction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SectionExtractionUpsert) UpdateUpdatedAt() *SectionExtractionUpsert {
	u.SetExcluded(sectionextraction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SectionExtraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sectionextraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SectionExtractionUpsertOne) UpdateNewValues() *SectionExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sectionextraction.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(sectionextraction.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(sectionextraction.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SectionExtraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SectionExtractionUpsertOne) Ignore() *SectionExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SectionExtractionUpsertOne) DoNothing() *SectionExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SectionExtractionCreate.OnConflict
// documentation for more info.
func (u *SectionExtractionUpsertOne) Update(set func(*SectionExtractionUpsert)) *SectionExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SectionExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSectionID sets the "section_id" field.
func (u *SectionExtractionUpsertOne) SetSectionID(v string) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateSectionID() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateSectionID()
	})
}

// SetSectionIndex sets the "section_index" field.
func (u *SectionExtractionUpsertOne) SetSectionIndex(v int) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetSectionIndex(v)
	})
}

// AddSectionIndex adds v to the "section_index" field.
func (u *SectionExtractionUpsertOne) AddSectionIndex(v int) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.AddSectionIndex(v)
	})
}

// UpdateSectionIndex sets the "section_index" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateSectionIndex() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateSectionIndex()
	})
}

// SetHeader sets the "header" field.
func (u *SectionExtractionUpsertOne) SetHeader(v string) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetHeader(v)
	})
}

// UpdateHeader sets the "header" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateHeader() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateHeader()
	})
}

// ClearHeader clears the value of the "header" field.
func (u *SectionExtractionUpsertOne) ClearHeader() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearHeader()
	})
}

// SetContent sets the "content" field.
func (u *SectionExtractionUpsertOne) SetContent(v string) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateContent() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateContent()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *SectionExtractionUpsertOne) SetEmbedding(v []byte) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateEmbedding() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *SectionExtractionUpsertOne) ClearEmbedding() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearEmbedding()
	})
}

// SetEntities sets the "entities" field.
func (u *SectionExtractionUpsertOne) SetEntities(v []map[string]interface{}) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetEntities(v)
	})
}

// UpdateEntities sets the "entities" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateEntities() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateEntities()
	})
}

// ClearEntities clears the value of the "entities" field.
func (u *SectionExtractionUpsertOne) ClearEntities() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearEntities()
	})
}

// SetRelationships sets the "relationships" field.
func (u *SectionExtractionUpsertOne) SetRelationships(v []map[string]interface{}) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetRelationships(v)
	})
}

// UpdateRelationships sets the "relationships" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateRelationships() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateRelationships()
	})
}

// ClearRelationships clears the value of the "relationships" field.
func (u *SectionExtractionUpsertOne) ClearRelationships() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearRelationships()
	})
}

// SetClaims sets the "claims" field.
func (u *SectionExtractionUpsertOne) SetClaims(v []map[string]interface{}) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetClaims(v)
	})
}

// UpdateClaims sets the "claims" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateClaims() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateClaims()
	})
}

// ClearClaims clears the value of the "claims" field.
func (u *SectionExtractionUpsertOne) ClearClaims() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearClaims()
	})
}

// SetContentType sets the "content_type" field.
func (u *SectionExtractionUpsertOne) SetContentType(v string) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateContentType() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *SectionExtractionUpsertOne) ClearContentType() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearContentType()
	})
}

// SetStatus sets the "status" field.
func (u *SectionExtractionUpsertOne) SetStatus(v sectionextraction.Status) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateStatus() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SectionExtractionUpsertOne) SetCreatedAt(v time.Time) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateCreatedAt() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SectionExtractionUpsertOne) SetUpdatedAt(v time.Time) *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SectionExtractionUpsertOne) UpdateUpdatedAt() *SectionExtractionUpsertOne {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SectionExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SectionExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SectionExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SectionExtractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SectionExtractionUpsertOne.ID is not supported by MySQL driver. Use SectionExtractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SectionExtractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SectionExtractionCreateBulk is the builder for creating many SectionExtraction entities in bulk.
type SectionExtractionCreateBulk struct {
	config
	err      error
	builders []*SectionExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the SectionExtraction entities in the database.
func (_c *SectionExtractionCreateBulk) Save(ctx context.Context) ([]*SectionExtraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SectionExtraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SectionExtractionMutation)
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
func (_c *SectionExtractionCreateBulk) SaveX(ctx context.Context) []*SectionExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SectionExtraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SectionExtractionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *SectionExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SectionExtractionUpsertBulk {
	_c.conflict = opts
	return &SectionExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SectionExtraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SectionExtractionCreateBulk) OnConflictColumns(columns ...string) *SectionExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SectionExtractionUpsertBulk{
		create: _c,
	}
}

// SectionExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of SectionExtraction nodes.
type SectionExtractionUpsertBulk struct {
	create *SectionExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SectionExtraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sectionextraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SectionExtractionUpsertBulk) UpdateNewValues() *SectionExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sectionextraction.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(sectionextraction.FieldWorkflowID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(sectionextraction.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SectionExtraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SectionExtractionUpsertBulk) Ignore() *SectionExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SectionExtractionUpsertBulk) DoNothing() *SectionExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SectionExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *SectionExtractionUpsertBulk) Update(set func(*SectionExtractionUpsert)) *SectionExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SectionExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSectionID sets the "section_id" field.
func (u *SectionExtractionUpsertBulk) SetSectionID(v string) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateSectionID() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateSectionID()
	})
}

// SetSectionIndex sets the "section_index" field.
func (u *SectionExtractionUpsertBulk) SetSectionIndex(v int) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetSectionIndex(v)
	})
}

// AddSectionIndex adds v to the "section_index" field.
func (u *SectionExtractionUpsertBulk) AddSectionIndex(v int) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.AddSectionIndex(v)
	})
}

// UpdateSectionIndex sets the "section_index" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateSectionIndex() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateSectionIndex()
	})
}

// SetHeader sets the "header" field.
func (u *SectionExtractionUpsertBulk) SetHeader(v string) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetHeader(v)
	})
}

// UpdateHeader sets the "header" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateHeader() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateHeader()
	})
}

// ClearHeader clears the value of the "header" field.
func (u *SectionExtractionUpsertBulk) ClearHeader() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearHeader()
	})
}

// SetContent sets the "content" field.
func (u *SectionExtractionUpsertBulk) SetContent(v string) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateContent() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateContent()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *SectionExtractionUpsertBulk) SetEmbedding(v []byte) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateEmbedding() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *SectionExtractionUpsertBulk) ClearEmbedding() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearEmbedding()
	})
}

// SetEntities sets the "entities" field.
func (u *SectionExtractionUpsertBulk) SetEntities(v []map[string]interface{}) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetEntities(v)
	})
}

// UpdateEntities sets the "entities" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateEntities() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateEntities()
	})
}

// ClearEntities clears the value of the "entities" field.
func (u *SectionExtractionUpsertBulk) ClearEntities() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearEntities()
	})
}

// SetRelationships sets the "relationships" field.
func (u *SectionExtractionUpsertBulk) SetRelationships(v []map[string]interface{}) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetRelationships(v)
	})
}

// UpdateRelationships sets the "relationships" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateRelationships() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateRelationships()
	})
}

// ClearRelationships clears the value of the "relationships" field.
func (u *SectionExtractionUpsertBulk) ClearRelationships() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearRelationships()
	})
}

// SetClaims sets the "claims" field.
func (u *SectionExtractionUpsertBulk) SetClaims(v []map[string]interface{}) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetClaims(v)
	})
}

// UpdateClaims sets the "claims" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateClaims() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateClaims()
	})
}

// ClearClaims clears the value of the "claims" field.
func (u *SectionExtractionUpsertBulk) ClearClaims() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearClaims()
	})
}

// SetContentType sets the "content_type" field.
func (u *SectionExtractionUpsertBulk) SetContentType(v string) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateContentType() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *SectionExtractionUpsertBulk) ClearContentType() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.ClearContentType()
	})
}

// SetStatus sets the "status" field.
func (u *SectionExtractionUpsertBulk) SetStatus(v sectionextraction.Status) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateStatus() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SectionExtractionUpsertBulk) SetCreatedAt(v time.Time) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateCreatedAt() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SectionExtractionUpsertBulk) SetUpdatedAt(v time.Time) *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SectionExtractionUpsertBulk) UpdateUpdatedAt() *SectionExtractionUpsertBulk {
	return u.Update(func(s *SectionExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SectionExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SectionExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SectionExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SectionExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
