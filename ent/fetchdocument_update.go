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
	"github.com/kurt-labs/kurt/ent/fetchdocument"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// FetchDocumentUpdate is the builder for updating FetchDocument entities.
type FetchDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *FetchDocumentMutation
}

// Where appends a list predicates to the FetchDocumentUpdate builder.
func (_u *FetchDocumentUpdate) Where(ps ...predicate.FetchDocument) *FetchDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FetchDocumentUpdate) SetStatus(v fetchdocument.Status) *FetchDocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableStatus(v *fetchdocument.Status) *FetchDocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentLength sets the "content_length" field.
func (_u *FetchDocumentUpdate) SetContentLength(v int) *FetchDocumentUpdate {
	_u.mutation.ResetContentLength()
	_u.mutation.SetContentLength(v)
	return _u
}

// SetNillableContentLength sets the "content_length" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableContentLength(v *int) *FetchDocumentUpdate {
	if v != nil {
		_u.SetContentLength(*v)
	}
	return _u
}

// AddContentLength adds value to the "content_length" field.
func (_u *FetchDocumentUpdate) AddContentLength(v int) *FetchDocumentUpdate {
	_u.mutation.AddContentLength(v)
	return _u
}

// ClearContentLength clears the value of the "content_length" field.
func (_u *FetchDocumentUpdate) ClearContentLength() *FetchDocumentUpdate {
	_u.mutation.ClearContentLength()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *FetchDocumentUpdate) SetContentHash(v string) *FetchDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableContentHash(v *string) *FetchDocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *FetchDocumentUpdate) ClearContentHash() *FetchDocumentUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetContentPath sets the "content_path" field.
func (_u *FetchDocumentUpdate) SetContentPath(v string) *FetchDocumentUpdate {
	_u.mutation.SetContentPath(v)
	return _u
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableContentPath(v *string) *FetchDocumentUpdate {
	if v != nil {
		_u.SetContentPath(*v)
	}
	return _u
}

// ClearContentPath clears the value of the "content_path" field.
func (_u *FetchDocumentUpdate) ClearContentPath() *FetchDocumentUpdate {
	_u.mutation.ClearContentPath()
	return _u
}

// SetEngine sets the "engine" field.
func (_u *FetchDocumentUpdate) SetEngine(v string) *FetchDocumentUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableEngine(v *string) *FetchDocumentUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *FetchDocumentUpdate) ClearEngine() *FetchDocumentUpdate {
	_u.mutation.ClearEngine()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *FetchDocumentUpdate) SetSkipReason(v string) *FetchDocumentUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableSkipReason(v *string) *FetchDocumentUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *FetchDocumentUpdate) ClearSkipReason() *FetchDocumentUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FetchDocumentUpdate) SetErrorMessage(v string) *FetchDocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableErrorMessage(v *string) *FetchDocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FetchDocumentUpdate) ClearErrorMessage() *FetchDocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (_u *FetchDocumentUpdate) SetFetchMetadata(v map[string]interface{}) *FetchDocumentUpdate {
	_u.mutation.SetFetchMetadata(v)
	return _u
}

// ClearFetchMetadata clears the value of the "fetch_metadata" field.
func (_u *FetchDocumentUpdate) ClearFetchMetadata() *FetchDocumentUpdate {
	_u.mutation.ClearFetchMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *FetchDocumentUpdate) SetEmbedding(v []byte) *FetchDocumentUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *FetchDocumentUpdate) ClearEmbedding() *FetchDocumentUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FetchDocumentUpdate) SetCreatedAt(v time.Time) *FetchDocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FetchDocumentUpdate) SetNillableCreatedAt(v *time.Time) *FetchDocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FetchDocumentUpdate) SetUpdatedAt(v time.Time) *FetchDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FetchDocumentMutation object of the builder.
func (_u *FetchDocumentUpdate) Mutation() *FetchDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FetchDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FetchDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FetchDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FetchDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FetchDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fetchdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FetchDocumentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fetchdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FetchDocument.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FetchDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fetchdocument.Table, fetchdocument.Columns, sqlgraph.NewFieldSpec(fetchdocument.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fetchdocument.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentLength(); ok {
		_spec.SetField(fetchdocument.FieldContentLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentLength(); ok {
		_spec.AddField(fetchdocument.FieldContentLength, field.TypeInt, value)
	}
	if _u.mutation.ContentLengthCleared() {
		_spec.ClearField(fetchdocument.FieldContentLength, field.TypeInt)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(fetchdocument.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(fetchdocument.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ContentPath(); ok {
		_spec.SetField(fetchdocument.FieldContentPath, field.TypeString, value)
	}
	if _u.mutation.ContentPathCleared() {
		_spec.ClearField(fetchdocument.FieldContentPath, field.TypeString)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(fetchdocument.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(fetchdocument.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(fetchdocument.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(fetchdocument.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fetchdocument.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fetchdocument.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FetchMetadata(); ok {
		_spec.SetField(fetchdocument.FieldFetchMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FetchMetadataCleared() {
		_spec.ClearField(fetchdocument.FieldFetchMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(fetchdocument.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(fetchdocument.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fetchdocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fetchdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fetchdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FetchDocumentUpdateOne is the builder for updating a single FetchDocument entity.
type FetchDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FetchDocumentMutation
}

// SetStatus sets the "status" field.
func (_u *FetchDocumentUpdateOne) SetStatus(v fetchdocument.Status) *FetchDocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableStatus(v *fetchdocument.Status) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentLength sets the "content_length" field.
func (_u *FetchDocumentUpdateOne) SetContentLength(v int) *FetchDocumentUpdateOne {
	_u.mutation.ResetContentLength()
	_u.mutation.SetContentLength(v)
	return _u
}

// SetNillableContentLength sets the "content_length" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableContentLength(v *int) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetContentLength(*v)
	}
	return _u
}

// AddContentLength adds value to the "content_length" field.
func (_u *FetchDocumentUpdateOne) AddContentLength(v int) *FetchDocumentUpdateOne {
	_u.mutation.AddContentLength(v)
	return _u
}

// ClearContentLength clears the value of the "content_length" field.
func (_u *FetchDocumentUpdateOne) ClearContentLength() *FetchDocumentUpdateOne {
	_u.mutation.ClearContentLength()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *FetchDocumentUpdateOne) SetContentHash(v string) *FetchDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableContentHash(v *string) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *FetchDocumentUpdateOne) ClearContentHash() *FetchDocumentUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetContentPath sets the "content_path" field.
func (_u *FetchDocumentUpdateOne) SetContentPath(v string) *FetchDocumentUpdateOne {
	_u.mutation.SetContentPath(v)
	return _u
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableContentPath(v *string) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetContentPath(*v)
	}
	return _u
}

// ClearContentPath clears the value of the "content_path" field.
func (_u *FetchDocumentUpdateOne) ClearContentPath() *FetchDocumentUpdateOne {
	_u.mutation.ClearContentPath()
	return _u
}

// SetEngine sets the "engine" field.
func (_u *FetchDocumentUpdateOne) SetEngine(v string) *FetchDocumentUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableEngine(v *string) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *FetchDocumentUpdateOne) ClearEngine() *FetchDocumentUpdateOne {
	_u.mutation.ClearEngine()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *FetchDocumentUpdateOne) SetSkipReason(v string) *FetchDocumentUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableSkipReason(v *string) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *FetchDocumentUpdateOne) ClearSkipReason() *FetchDocumentUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FetchDocumentUpdateOne) SetErrorMessage(v string) *FetchDocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableErrorMessage(v *string) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FetchDocumentUpdateOne) ClearErrorMessage() *FetchDocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFetchMetadata sets the "fetch_metadata" field.
func (_u *FetchDocumentUpdateOne) SetFetchMetadata(v map[string]interface{}) *FetchDocumentUpdateOne {
	_u.mutation.SetFetchMetadata(v)
	return _u
}

// ClearFetchMetadata clears the value of the "fetch_metadata" field.
func (_u *FetchDocumentUpdateOne) ClearFetchMetadata() *FetchDocumentUpdateOne {
	_u.mutation.ClearFetchMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *FetchDocumentUpdateOne) SetEmbedding(v []byte) *FetchDocumentUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *FetchDocumentUpdateOne) ClearEmbedding() *FetchDocumentUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FetchDocumentUpdateOne) SetCreatedAt(v time.Time) *FetchDocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FetchDocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *FetchDocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FetchDocumentUpdateOne) SetUpdatedAt(v time.Time) *FetchDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FetchDocumentMutation object of the builder.
func (_u *FetchDocumentUpdateOne) Mutation() *FetchDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the FetchDocumentUpdate builder.
func (_u *FetchDocumentUpdateOne) Where(ps ...predicate.FetchDocument) *FetchDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FetchDocumentUpdateOne) Select(field string, fields ...string) *FetchDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FetchDocument entity.
func (_u *FetchDocumentUpdateOne) Save(ctx context.Context) (*FetchDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FetchDocumentUpdateOne) SaveX(ctx context.Context) *FetchDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FetchDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FetchDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FetchDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fetchdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FetchDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fetchdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FetchDocument.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FetchDocumentUpdateOne) sqlSave(ctx context.Context) (_node *FetchDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fetchdocument.Table, fetchdocument.Columns, sqlgraph.NewFieldSpec(fetchdocument.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FetchDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fetchdocument.FieldID)
		for _, f := range fields {
			if !fetchdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fetchdocument.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fetchdocument.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentLength(); ok {
		_spec.SetField(fetchdocument.FieldContentLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentLength(); ok {
		_spec.AddField(fetchdocument.FieldContentLength, field.TypeInt, value)
	}
	if _u.mutation.ContentLengthCleared() {
		_spec.ClearField(fetchdocument.FieldContentLength, field.TypeInt)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(fetchdocument.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(fetchdocument.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ContentPath(); ok {
		_spec.SetField(fetchdocument.FieldContentPath, field.TypeString, value)
	}
	if _u.mutation.ContentPathCleared() {
		_spec.ClearField(fetchdocument.FieldContentPath, field.TypeString)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(fetchdocument.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(fetchdocument.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(fetchdocument.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(fetchdocument.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fetchdocument.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fetchdocument.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FetchMetadata(); ok {
		_spec.SetField(fetchdocument.FieldFetchMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FetchMetadataCleared() {
		_spec.ClearField(fetchdocument.FieldFetchMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(fetchdocument.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(fetchdocument.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fetchdocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fetchdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FetchDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fetchdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
