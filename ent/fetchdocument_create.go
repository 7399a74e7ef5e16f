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
	"github.com/kurt-labs/kurt/ent/fetchdocument"
)

// FetchDocumentCreate is the builder for creating a FetchDocument entity.
type FetchDocumentCreate struct {
	config
	mutation *FetchDocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *FetchDocumentCreate) SetWorkflowID(v string) *FetchDocumentCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *FetchDocumentCreate) SetDocumentID(v string) *FetchDocumentCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FetchDocumentCreate) SetStatus(v fetchdocument.Status) *FetchDocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableStatus(v *fetchdocument.Status) *FetchDocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContentLength sets the "content_length" field.
func (_c *FetchDocumentCreate) SetContentLength(v int) *FetchDocumentCreate {
	_c.mutation.SetContentLength(v)
	return _c
}

// SetNillableContentLength sets the "content_length" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableContentLength(v *int) *FetchDocumentCreate {
	if v != nil {
		_c.SetContentLength(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *FetchDocumentCreate) SetContentHash(v string) *FetchDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableContentHash(v *string) *FetchDocumentCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetContentPath sets the "content_path" field.
func (_c *FetchDocumentCreate) SetContentPath(v string) *FetchDocumentCreate {
	_c.mutation.SetContentPath(v)
	return _c
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableContentPath(v *string) *FetchDocumentCreate {
	if v != nil {
		_c.SetContentPath(*v)
	}
	return _c
}

// SetEngine sets the "engine" field.
func (_c *FetchDocumentCreate) SetEngine(v string) *FetchDocumentCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableEngine(v *string) *FetchDocumentCreate {
	if v != nil {
		_c.SetEngine(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *FetchDocumentCreate) SetSkipReason(v string) *FetchDocumentCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableSkipReason(v *string) *FetchDocumentCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FetchDocumentCreate) SetErrorMessage(v string) *FetchDocumentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableErrorMessage(v *string) *FetchDocumentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (_c *FetchDocumentCreate) SetFetchMetadata(v map[string]interface{}) *FetchDocumentCreate {
	_c.mutation.SetFetchMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *FetchDocumentCreate) SetEmbedding(v []byte) *FetchDocumentCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FetchDocumentCreate) SetCreatedAt(v time.Time) *FetchDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableCreatedAt(v *time.Time) *FetchDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FetchDocumentCreate) SetUpdatedAt(v time.Time) *FetchDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FetchDocumentCreate) SetNillableUpdatedAt(v *time.Time) *FetchDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FetchDocumentCreate) SetID(v string) *FetchDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FetchDocumentMutation object of the builder.
func (_c *FetchDocumentCreate) Mutation() *FetchDocumentMutation {
	return _c.mutation
}

// Save creates the FetchDocument in the database.
func (_c *FetchDocumentCreate) Save(ctx context.Context) (*FetchDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FetchDocumentCreate) SaveX(ctx context.Context) *FetchDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FetchDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FetchDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FetchDocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := fetchdocument.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fetchdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fetchdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FetchDocumentCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "FetchDocument.workflow_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "FetchDocument.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FetchDocument.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fetchdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FetchDocument.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FetchDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FetchDocument.updated_at"`)}
	}
	return nil
}

func (_c *FetchDocumentCreate) sqlSave(ctx context.Context) (*FetchDocument, error) {
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
			return nil, fmt.Errorf("unexpected FetchDocument.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FetchDocumentCreate) createSpec() (*FetchDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &FetchDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fetchdocument.Table, sqlgraph.NewFieldSpec(fetchdocument.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(fetchdocument.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(fetchdocument.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fetchdocument.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContentLength(); ok {
		_spec.SetField(fetchdocument.FieldContentLength, field.TypeInt, value)
		_node.ContentLength = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(fetchdocument.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ContentPath(); ok {
		_spec.SetField(fetchdocument.FieldContentPath, field.TypeString, value)
		_node.ContentPath = value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(fetchdocument.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(fetchdocument.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(fetchdocument.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.FetchMetadata(); ok {
		_spec.SetField(fetchdocument.FieldFetchMetadata, field.TypeJSON, value)
		_node.FetchMetadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(fetchdocument.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fetchdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fetchdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FetchDocument.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FetchDocumentUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *FetchDocumentCreate) OnConflict(opts ...sql.ConflictOption) *FetchDocumentUpsertOne {
	_c.conflict = opts
	return &FetchDocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FetchDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FetchDocumentCreate) OnConflictColumns(columns ...string) *FetchDocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FetchDocumentUpsertOne{
		create: _c,
	}
}

type (
	// FetchDocumentUpsertOne is the builder for "upsert"-ing
	//  one FetchDocument node.
	FetchDocumentUpsertOne struct {
		create *FetchDocumentCreate
	}

	// FetchDocumentUpsert is the "OnConflict" setter.
	FetchDocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *FetchDocumentUpsert) SetStatus(v fetchdocument.Status) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateStatus() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldStatus)
	return u
}

// SetContentLength sets the "content_length" field.
func (u *FetchDocumentUpsert) SetContentLength(v int) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldContentLength, v)
	return u
}

// UpdateContentLength sets the "content_length" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateContentLength() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldContentLength)
	return u
}

// AddContentLength adds v to the "content_length" field.
func (u *FetchDocumentUpsert) AddContentLength(v int) *FetchDocumentUpsert {
	u.Add(fetchdocument.FieldContentLength, v)
	return u
}

// ClearContentLength clears the value of the "content_length" field.
func (u *FetchDocumentUpsert) ClearContentLength() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldContentLength)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *FetchDocumentUpsert) SetContentHash(v string) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateContentHash() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *FetchDocumentUpsert) ClearContentHash() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldContentHash)
	return u
}

// SetContentPath sets the "content_path" field.
func (u *FetchDocumentUpsert) SetContentPath(v string) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldContentPath, v)
	return u
}

// UpdateContentPath sets the "content_path" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateContentPath() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldContentPath)
	return u
}

// ClearContentPath clears the value of the "content_path" field.
func (u *FetchDocumentUpsert) ClearContentPath() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldContentPath)
	return u
}

// SetEngine sets the "engine" field.
func (u *FetchDocumentUpsert) SetEngine(v string) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldEngine, v)
	return u
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateEngine() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldEngine)
	return u
}

// ClearEngine clears the value of the "engine" field.
func (u *FetchDocumentUpsert) ClearEngine() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldEngine)
	return u
}

// SetSkipReason sets the "skip_reason" field.
func (u *FetchDocumentUpsert) SetSkipReason(v string) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldSkipReason, v)
	return u
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateSkipReason() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldSkipReason)
	return u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *FetchDocumentUpsert) ClearSkipReason() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldSkipReason)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *FetchDocumentUpsert) SetErrorMessage(v string) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateErrorMessage() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FetchDocumentUpsert) ClearErrorMessage() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldErrorMessage)
	return u
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (u *FetchDocumentUpsert) SetFetchMetadata(v map[string]interface{}) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldFetchMetadata, v)
	return u
}

// UpdateFetchMetadata sets the "fetch_metadata" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateFetchMetadata() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldFetchMetadata)
	return u
}

// ClearFetchMetadata clears the value of the "fetch_metadata" field.
func (u *FetchDocumentUpsert) ClearFetchMetadata() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldFetchMetadata)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *FetchDocumentUpsert) SetEmbedding(v []byte) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateEmbedding() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *FetchDocumentUpsert) ClearEmbedding() *FetchDocumentUpsert {
	u.SetNull(fetchdocument.FieldEmbedding)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *FetchDocumentUpsert) SetCreatedAt(v time.Time) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateCreatedAt() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FetchDocumentUpsert) SetUpdatedAt(v time.Time) *FetchDocumentUpsert {
	u.Set(fetchdocument.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FetchDocumentUpsert) UpdateUpdatedAt() *FetchDocumentUpsert {
	u.SetExcluded(fetchdocument.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FetchDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fetchdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FetchDocumentUpsertOne) UpdateNewValues() *FetchDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fetchdocument.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(fetchdocument.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(fetchdocument.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FetchDocument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FetchDocumentUpsertOne) Ignore() *FetchDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FetchDocumentUpsertOne) DoNothing() *FetchDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FetchDocumentCreate.OnConflict
// documentation for more info.
func (u *FetchDocumentUpsertOne) Update(set func(*FetchDocumentUpsert)) *FetchDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FetchDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *FetchDocumentUpsertOne) SetStatus(v fetchdocument.Status) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateStatus() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetContentLength sets the "content_length" field.
func (u *FetchDocumentUpsertOne) SetContentLength(v int) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetContentLength(v)
	})
}

// AddContentLength adds v to the "content_length" field.
func (u *FetchDocumentUpsertOne) AddContentLength(v int) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.AddContentLength(v)
	})
}

// UpdateContentLength sets the "content_length" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateContentLength() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateContentLength()
	})
}

// ClearContentLength clears the value of the "content_length" field.
func (u *FetchDocumentUpsertOne) ClearContentLength() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearContentLength()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *FetchDocumentUpsertOne) SetContentHash(v string) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateContentHash() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *FetchDocumentUpsertOne) ClearContentHash() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetContentPath sets the "content_path" field.
func (u *FetchDocumentUpsertOne) SetContentPath(v string) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetContentPath(v)
	})
}

// UpdateContentPath sets the "content_path" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateContentPath() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateContentPath()
	})
}

// ClearContentPath clears the value of the "content_path" field.
func (u *FetchDocumentUpsertOne) ClearContentPath() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearContentPath()
	})
}

// SetEngine sets the "engine" field.
func (u *FetchDocumentUpsertOne) SetEngine(v string) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateEngine() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateEngine()
	})
}

// ClearEngine clears the value of the "engine" field.
func (u *FetchDocumentUpsertOne) ClearEngine() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearEngine()
	})
}

// SetSkipReason sets the "skip_reason" field.
func (u *FetchDocumentUpsertOne) SetSkipReason(v string) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetSkipReason(v)
	})
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateSkipReason() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateSkipReason()
	})
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *FetchDocumentUpsertOne) ClearSkipReason() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearSkipReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *FetchDocumentUpsertOne) SetErrorMessage(v string) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateErrorMessage() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FetchDocumentUpsertOne) ClearErrorMessage() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (u *FetchDocumentUpsertOne) SetFetchMetadata(v map[string]interface{}) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetFetchMetadata(v)
	})
}

// UpdateFetchMetadata sets the "fetch_metadata" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateFetchMetadata() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateFetchMetadata()
	})
}

// ClearFetchMetadata clears the value of the "fetch_metadata" field.
func (u *FetchDocumentUpsertOne) ClearFetchMetadata() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearFetchMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *FetchDocumentUpsertOne) SetEmbedding(v []byte) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateEmbedding() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *FetchDocumentUpsertOne) ClearEmbedding() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearEmbedding()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *FetchDocumentUpsertOne) SetCreatedAt(v time.Time) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateCreatedAt() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FetchDocumentUpsertOne) SetUpdatedAt(v time.Time) *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FetchDocumentUpsertOne) UpdateUpdatedAt() *FetchDocumentUpsertOne {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FetchDocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FetchDocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FetchDocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FetchDocumentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FetchDocumentUpsertOne.ID is not supported by MySQL driver. Use FetchDocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FetchDocumentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FetchDocumentCreateBulk is the builder for creating many FetchDocument entities in bulk.
type FetchDocumentCreateBulk struct {
	config
	err      error
	builders []*FetchDocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the FetchDocument entities in the database.
func (_c *FetchDocumentCreateBulk) Save(ctx context.Context) ([]*FetchDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FetchDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FetchDocumentMutation)
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
func (_c *FetchDocumentCreateBulk) SaveX(ctx context.Context) []*FetchDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FetchDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FetchDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FetchDocument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FetchDocumentUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *FetchDocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *FetchDocumentUpsertBulk {
	_c.conflict = opts
	return &FetchDocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FetchDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FetchDocumentCreateBulk) OnConflictColumns(columns ...string) *FetchDocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FetchDocumentUpsertBulk{
		create: _c,
	}
}

// FetchDocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of FetchDocument nodes.
type FetchDocumentUpsertBulk struct {
	create *FetchDocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FetchDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fetchdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FetchDocumentUpsertBulk) UpdateNewValues() *FetchDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fetchdocument.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(fetchdocument.FieldWorkflowID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(fetchdocument.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FetchDocument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FetchDocumentUpsertBulk) Ignore() *FetchDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FetchDocumentUpsertBulk) DoNothing() *FetchDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FetchDocumentCreateBulk.OnConflict
// documentation for more info.
func (u *FetchDocumentUpsertBulk) Update(set func(*FetchDocumentUpsert)) *FetchDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FetchDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *FetchDocumentUpsertBulk) SetStatus(v fetchdocument.Status) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateStatus() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetContentLength sets the "content_length" field.
func (u *FetchDocumentUpsertBulk) SetContentLength(v int) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetContentLength(v)
	})
}

// AddContentLength adds v to the "content_length" field.
func (u *FetchDocumentUpsertBulk) AddContentLength(v int) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.AddContentLength(v)
	})
}

// UpdateContentLength sets the "content_length" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateContentLength() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateContentLength()
	})
}

// ClearContentLength clears the value of the "content_length" field.
func (u *FetchDocumentUpsertBulk) ClearContentLength() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearContentLength()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *FetchDocumentUpsertBulk) SetContentHash(v string) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateContentHash() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *FetchDocumentUpsertBulk) ClearContentHash() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetContentPath sets the "content_path" field.
func (u *FetchDocumentUpsertBulk) SetContentPath(v string) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetContentPath(v)
	})
}

// UpdateContentPath sets the "content_path" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateContentPath() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateContentPath()
	})
}

// ClearContentPath clears the value of the "content_path" field.
func (u *FetchDocumentUpsertBulk) ClearContentPath() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearContentPath()
	})
}

// SetEngine sets the "engine" field.
func (u *FetchDocumentUpsertBulk) SetEngine(v string) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateEngine() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateEngine()
	})
}

// ClearEngine clears the value of the "engine" field.
func (u *FetchDocumentUpsertBulk) ClearEngine() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearEngine()
	})
}

// SetSkipReason sets the "skip_reason" field.
func (u *FetchDocumentUpsertBulk) SetSkipReason(v string) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetSkipReason(v)
	})
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateSkipReason() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateSkipReason()
	})
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *FetchDocumentUpsertBulk) ClearSkipReason() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearSkipReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *FetchDocumentUpsertBulk) SetErrorMessage(v string) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateErrorMessage() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FetchDocumentUpsertBulk) ClearErrorMessage() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (u *FetchDocumentUpsertBulk) SetFetchMetadata(v map[string]interface{}) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetFetchMetadata(v)
	})
}

// UpdateFetchMetadata sets the "fetch_metadata" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateFetchMetadata() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateFetchMetadata()
	})
}

// ClearFetchMetadata clears the value of the "fetch_metadata" field.
func (u *FetchDocumentUpsertBulk) ClearFetchMetadata() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearFetchMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *FetchDocumentUpsertBulk) SetEmbedding(v []byte) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateEmbedding() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *FetchDocumentUpsertBulk) ClearEmbedding() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.ClearEmbedding()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *FetchDocumentUpsertBulk) SetCreatedAt(v time.Time) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateCreatedAt() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FetchDocumentUpsertBulk) SetUpdatedAt(v time.Time) *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FetchDocumentUpsertBulk) UpdateUpdatedAt() *FetchDocumentUpsertBulk {
	return u.Update(func(s *FetchDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FetchDocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FetchDocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FetchDocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FetchDocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
