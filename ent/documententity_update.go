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
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// DocumentEntityUpdate is the builder for updating DocumentEntity entities.
type DocumentEntityUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentEntityMutation
}

// Where appends a list predicates to the DocumentEntityUpdate builder.
func (_u *DocumentEntityUpdate) Where(ps ...predicate.DocumentEntity) *DocumentEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuote sets the "quote" field.
func (_u *DocumentEntityUpdate) SetQuote(v string) *DocumentEntityUpdate {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *DocumentEntityUpdate) SetNillableQuote(v *string) *DocumentEntityUpdate {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// ClearQuote clears the value of the "quote" field.
func (_u *DocumentEntityUpdate) ClearQuote() *DocumentEntityUpdate {
	_u.mutation.ClearQuote()
	return _u
}

// SetStartOffset sets the "start_offset" field.
func (_u *DocumentEntityUpdate) SetStartOffset(v int) *DocumentEntityUpdate {
	_u.mutation.ResetStartOffset()
	_u.mutation.SetStartOffset(v)
	return _u
}

// SetNillableStartOffset sets the "start_offset" field if the given value is not nil.
func (_u *DocumentEntityUpdate) SetNillableStartOffset(v *int) *DocumentEntityUpdate {
	if v != nil {
		_u.SetStartOffset(*v)
	}
	return _u
}

// AddStartOffset adds value to the "start_offset" field.
func (_u *DocumentEntityUpdate) AddStartOffset(v int) *DocumentEntityUpdate {
	_u.mutation.AddStartOffset(v)
	return _u
}

// ClearStartOffset clears the value of the "start_offset" field.
func (_u *DocumentEntityUpdate) ClearStartOffset() *DocumentEntityUpdate {
	_u.mutation.ClearStartOffset()
	return _u
}

// SetEndOffset sets the "end_offset" field.
func (_u *DocumentEntityUpdate) SetEndOffset(v int) *DocumentEntityUpdate {
	_u.mutation.ResetEndOffset()
	_u.mutation.SetEndOffset(v)
	return _u
}

// SetNillableEndOffset sets the "end_offset" field if the given value is not nil.
func (_u *DocumentEntityUpdate) SetNillableEndOffset(v *int) *DocumentEntityUpdate {
	if v != nil {
		_u.SetEndOffset(*v)
	}
	return _u
}

// AddEndOffset adds value to the "end_offset" field.
func (_u *DocumentEntityUpdate) AddEndOffset(v int) *DocumentEntityUpdate {
	_u.mutation.AddEndOffset(v)
	return _u
}

// ClearEndOffset clears the value of the "end_offset" field.
func (_u *DocumentEntityUpdate) ClearEndOffset() *DocumentEntityUpdate {
	_u.mutation.ClearEndOffset()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentEntityUpdate) SetConfidence(v float64) *DocumentEntityUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentEntityUpdate) SetNillableConfidence(v *float64) *DocumentEntityUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentEntityUpdate) AddConfidence(v float64) *DocumentEntityUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *DocumentEntityUpdate) SetWorkflowID(v string) *DocumentEntityUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *DocumentEntityUpdate) SetNillableWorkflowID(v *string) *DocumentEntityUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentEntityUpdate) SetCreatedAt(v time.Time) *DocumentEntityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentEntityUpdate) SetNillableCreatedAt(v *time.Time) *DocumentEntityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the DocumentEntityMutation object of the builder.
func (_u *DocumentEntityUpdate) Mutation() *DocumentEntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentEntityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEntityUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentEntity.document"`)
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentEntity.entity"`)
	}
	return nil
}

func (_u *DocumentEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documententity.Table, documententity.Columns, sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(documententity.FieldQuote, field.TypeString, value)
	}
	if _u.mutation.QuoteCleared() {
		_spec.ClearField(documententity.FieldQuote, field.TypeString)
	}
	if value, ok := _u.mutation.StartOffset(); ok {
		_spec.SetField(documententity.FieldStartOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartOffset(); ok {
		_spec.AddField(documententity.FieldStartOffset, field.TypeInt, value)
	}
	if _u.mutation.StartOffsetCleared() {
		_spec.ClearField(documententity.FieldStartOffset, field.TypeInt)
	}
	if value, ok := _u.mutation.EndOffset(); ok {
		_spec.SetField(documententity.FieldEndOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndOffset(); ok {
		_spec.AddField(documententity.FieldEndOffset, field.TypeInt, value)
	}
	if _u.mutation.EndOffsetCleared() {
		_spec.ClearField(documententity.FieldEndOffset, field.TypeInt)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(documententity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(documententity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(documententity.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documententity.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documententity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentEntityUpdateOne is the builder for updating a single DocumentEntity entity.
type DocumentEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentEntityMutation
}

// SetQuote sets the "quote" field.
func (_u *DocumentEntityUpdateOne) SetQuote(v string) *DocumentEntityUpdateOne {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *DocumentEntityUpdateOne) SetNillableQuote(v *string) *DocumentEntityUpdateOne {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// ClearQuote clears the value of the "quote" field.
func (_u *DocumentEntityUpdateOne) ClearQuote() *DocumentEntityUpdateOne {
	_u.mutation.ClearQuote()
	return _u
}

// SetStartOffset sets the "start_offset" field.
func (_u *DocumentEntityUpdateOne) SetStartOffset(v int) *DocumentEntityUpdateOne {
	_u.mutation.ResetStartOffset()
	_u.mutation.SetStartOffset(v)
	return _u
}

// SetNillableStartOffset sets the "start_offset" field if the given value is not nil.
func (_u *DocumentEntityUpdateOne) SetNillableStartOffset(v *int) *DocumentEntityUpdateOne {
	if v != nil {
		_u.SetStartOffset(*v)
	}
	return _u
}

// AddStartOffset adds value to the "start_offset" field.
func (_u *DocumentEntityUpdateOne) AddStartOffset(v int) *DocumentEntityUpdateOne {
	_u.mutation.AddStartOffset(v)
	return _u
}

// ClearStartOffset clears the value of the "start_offset" field.
func (_u *DocumentEntityUpdateOne) ClearStartOffset() *DocumentEntityUpdateOne {
	_u.mutation.ClearStartOffset()
	return _u
}

// SetEndOffset sets the "end_offset" field.
func (_u *DocumentEntityUpdateOne) SetEndOffset(v int) *DocumentEntityUpdateOne {
	_u.mutation.ResetEndOffset()
	_u.mutation.SetEndOffset(v)
	return _u
}

// SetNillableEndOffset sets the "end_offset" field if the given value is not nil.
func (_u *DocumentEntityUpdateOne) SetNillableEndOffset(v *int) *DocumentEntityUpdateOne {
	if v != nil {
		_u.SetEndOffset(*v)
	}
	return _u
}

// AddEndOffset adds value to the "end_offset" field.
func (_u *DocumentEntityUpdateOne) AddEndOffset(v int) *DocumentEntityUpdateOne {
	_u.mutation.AddEndOffset(v)
	return _u
}

// ClearEndOffset clears the value of the "end_offset" field.
func (_u *DocumentEntityUpdateOne) ClearEndOffset() *DocumentEntityUpdateOne {
	_u.mutation.ClearEndOffset()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentEntityUpdateOne) SetConfidence(v float64) *DocumentEntityUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentEntityUpdateOne) SetNillableConfidence(v *float64) *DocumentEntityUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentEntityUpdateOne) AddConfidence(v float64) *DocumentEntityUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *DocumentEntityUpdateOne) SetWorkflowID(v string) *DocumentEntityUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *DocumentEntityUpdateOne) SetNillableWorkflowID(v *string) *DocumentEntityUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentEntityUpdateOne) SetCreatedAt(v time.Time) *DocumentEntityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentEntityUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentEntityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the DocumentEntityMutation object of the builder.
func (_u *DocumentEntityUpdateOne) Mutation() *DocumentEntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentEntityUpdate builder.
func (_u *DocumentEntityUpdateOne) Where(ps ...predicate.DocumentEntity) *DocumentEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentEntityUpdateOne) Select(field string, fields ...string) *DocumentEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentEntity entity.
func (_u *DocumentEntityUpdateOne) Save(ctx context.Context) (*DocumentEntity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEntityUpdateOne) SaveX(ctx context.Context) *DocumentEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEntityUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentEntity.document"`)
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentEntity.entity"`)
	}
	return nil
}

func (_u *DocumentEntityUpdateOne) sqlSave(ctx context.Context) (_node *DocumentEntity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documententity.Table, documententity.Columns, sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documententity.FieldID)
		for _, f := range fields {
			if !documententity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documententity.FieldID {
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
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(documententity.FieldQuote, field.TypeString, value)
	}
	if _u.mutation.QuoteCleared() {
		_spec.ClearField(documententity.FieldQuote, field.TypeString)
	}
	if value, ok := _u.mutation.StartOffset(); ok {
		_spec.SetField(documententity.FieldStartOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartOffset(); ok {
		_spec.AddField(documententity.FieldStartOffset, field.TypeInt, value)
	}
	if _u.mutation.StartOffsetCleared() {
		_spec.ClearField(documententity.FieldStartOffset, field.TypeInt)
	}
	if value, ok := _u.mutation.EndOffset(); ok {
		_spec.SetField(documententity.FieldEndOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndOffset(); ok {
		_spec.AddField(documententity.FieldEndOffset, field.TypeInt, value)
	}
	if _u.mutation.EndOffsetCleared() {
		_spec.ClearField(documententity.FieldEndOffset, field.TypeInt)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(documententity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(documententity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(documententity.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documententity.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &DocumentEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documententity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
