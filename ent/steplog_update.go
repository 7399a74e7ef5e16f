// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/predicate"
	"github.com/kurt-labs/kurt/ent/steplog"
)

// StepLogUpdate is the builder for updating StepLog entities.
type StepLogUpdate struct {
	config
	hooks    []Hook
	mutation *StepLogMutation
}

// Where appends a list predicates to the StepLogUpdate builder.
func (_u *StepLogUpdate) Where(ps ...predicate.StepLog) *StepLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepLogUpdate) SetStepID(v string) *StepLogUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableStepID(v *string) *StepLogUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *StepLogUpdate) SetTool(v string) *StepLogUpdate {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableTool(v *string) *StepLogUpdate {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepLogUpdate) SetStatus(v steplog.Status) *StepLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableStatus(v *steplog.Status) *StepLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepLogUpdate) SetStartedAt(v time.Time) *StepLogUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableStartedAt(v *time.Time) *StepLogUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepLogUpdate) ClearStartedAt() *StepLogUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepLogUpdate) SetCompletedAt(v time.Time) *StepLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableCompletedAt(v *time.Time) *StepLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepLogUpdate) ClearCompletedAt() *StepLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInputCount sets the "input_count" field.
func (_u *StepLogUpdate) SetInputCount(v int) *StepLogUpdate {
	_u.mutation.ResetInputCount()
	_u.mutation.SetInputCount(v)
	return _u
}

// SetNillableInputCount sets the "input_count" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableInputCount(v *int) *StepLogUpdate {
	if v != nil {
		_u.SetInputCount(*v)
	}
	return _u
}

// AddInputCount adds value to the "input_count" field.
func (_u *StepLogUpdate) AddInputCount(v int) *StepLogUpdate {
	_u.mutation.AddInputCount(v)
	return _u
}

// SetOutputCount sets the "output_count" field.
func (_u *StepLogUpdate) SetOutputCount(v int) *StepLogUpdate {
	_u.mutation.ResetOutputCount()
	_u.mutation.SetOutputCount(v)
	return _u
}

// SetNillableOutputCount sets the "output_count" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableOutputCount(v *int) *StepLogUpdate {
	if v != nil {
		_u.SetOutputCount(*v)
	}
	return _u
}

// AddOutputCount adds value to the "output_count" field.
func (_u *StepLogUpdate) AddOutputCount(v int) *StepLogUpdate {
	_u.mutation.AddOutputCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *StepLogUpdate) SetErrorCount(v int) *StepLogUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableErrorCount(v *int) *StepLogUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *StepLogUpdate) AddErrorCount(v int) *StepLogUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetInputHash sets the "input_hash" field.
func (_u *StepLogUpdate) SetInputHash(v string) *StepLogUpdate {
	_u.mutation.SetInputHash(v)
	return _u
}

// SetNillableInputHash sets the "input_hash" field if the given value is not nil.
func (_u *StepLogUpdate) SetNillableInputHash(v *string) *StepLogUpdate {
	if v != nil {
		_u.SetInputHash(*v)
	}
	return _u
}

// ClearInputHash clears the value of the "input_hash" field.
func (_u *StepLogUpdate) ClearInputHash() *StepLogUpdate {
	_u.mutation.ClearInputHash()
	return _u
}

// SetErrors sets the "errors" field.
func (_u *StepLogUpdate) SetErrors(v []map[string]interface{}) *StepLogUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *StepLogUpdate) AppendErrors(v []map[string]interface{}) *StepLogUpdate {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *StepLogUpdate) ClearErrors() *StepLogUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetStepMetadata sets the "step_metadata" field.
func (_u *StepLogUpdate) SetStepMetadata(v map[string]interface{}) *StepLogUpdate {
	_u.mutation.SetStepMetadata(v)
	return _u
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (_u *StepLogUpdate) ClearStepMetadata() *StepLogUpdate {
	_u.mutation.ClearStepMetadata()
	return _u
}

// Mutation returns the StepLogMutation object of the builder.
func (_u *StepLogUpdate) Mutation() *StepLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := steplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepLog.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepLog.run"`)
	}
	return nil
}

func (_u *StepLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(steplog.Table, steplog.Columns, sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(steplog.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(steplog.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(steplog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(steplog.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(steplog.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(steplog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(steplog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InputCount(); ok {
		_spec.SetField(steplog.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputCount(); ok {
		_spec.AddField(steplog.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputCount(); ok {
		_spec.SetField(steplog.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputCount(); ok {
		_spec.AddField(steplog.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(steplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(steplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputHash(); ok {
		_spec.SetField(steplog.FieldInputHash, field.TypeString, value)
	}
	if _u.mutation.InputHashCleared() {
		_spec.ClearField(steplog.FieldInputHash, field.TypeString)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(steplog.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, steplog.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(steplog.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepMetadata(); ok {
		_spec.SetField(steplog.FieldStepMetadata, field.TypeJSON, value)
	}
	if _u.mutation.StepMetadataCleared() {
		_spec.ClearField(steplog.FieldStepMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepLogUpdateOne is the builder for updating a single StepLog entity.
type StepLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepLogMutation
}

// SetStepID sets the "step_id" field.
func (_u *StepLogUpdateOne) SetStepID(v string) *StepLogUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableStepID(v *string) *StepLogUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *StepLogUpdateOne) SetTool(v string) *StepLogUpdateOne {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableTool(v *string) *StepLogUpdateOne {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepLogUpdateOne) SetStatus(v steplog.Status) *StepLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableStatus(v *steplog.Status) *StepLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepLogUpdateOne) SetStartedAt(v time.Time) *StepLogUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableStartedAt(v *time.Time) *StepLogUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepLogUpdateOne) ClearStartedAt() *StepLogUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepLogUpdateOne) SetCompletedAt(v time.Time) *StepLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableCompletedAt(v *time.Time) *StepLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepLogUpdateOne) ClearCompletedAt() *StepLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInputCount sets the "input_count" field.
func (_u *StepLogUpdateOne) SetInputCount(v int) *StepLogUpdateOne {
	_u.mutation.ResetInputCount()
	_u.mutation.SetInputCount(v)
	return _u
}

// SetNillableInputCount sets the "input_count" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableInputCount(v *int) *StepLogUpdateOne {
	if v != nil {
		_u.SetInputCount(*v)
	}
	return _u
}

// AddInputCount adds value to the "input_count" field.
func (_u *StepLogUpdateOne) AddInputCount(v int) *StepLogUpdateOne {
	_u.mutation.AddInputCount(v)
	return _u
}

// SetOutputCount sets the "output_count" field.
func (_u *StepLogUpdateOne) SetOutputCount(v int) *StepLogUpdateOne {
	_u.mutation.ResetOutputCount()
	_u.mutation.SetOutputCount(v)
	return _u
}

// SetNillableOutputCount sets the "output_count" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableOutputCount(v *int) *StepLogUpdateOne {
	if v != nil {
		_u.SetOutputCount(*v)
	}
	return _u
}

// AddOutputCount adds value to the "output_count" field.
func (_u *StepLogUpdateOne) AddOutputCount(v int) *StepLogUpdateOne {
	_u.mutation.AddOutputCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *StepLogUpdateOne) SetErrorCount(v int) *StepLogUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableErrorCount(v *int) *StepLogUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *StepLogUpdateOne) AddErrorCount(v int) *StepLogUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetInputHash sets the "input_hash" field.
func (_u *StepLogUpdateOne) SetInputHash(v string) *StepLogUpdateOne {
	_u.mutation.SetInputHash(v)
	return _u
}

// SetNillableInputHash sets the "input_hash" field if the given value is not nil.
func (_u *StepLogUpdateOne) SetNillableInputHash(v *string) *StepLogUpdateOne {
	if v != nil {
		_u.SetInputHash(*v)
	}
	return _u
}

// ClearInputHash clears the value of the "input_hash" field.
func (_u *StepLogUpdateOne) ClearInputHash() *StepLogUpdateOne {
	_u.mutation.ClearInputHash()
	return _u
}

// SetErrors sets the "errors" field.
func (_u *StepLogUpdateOne) SetErrors(v []map[string]interface{}) *StepLogUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *StepLogUpdateOne) AppendErrors(v []map[string]interface{}) *StepLogUpdateOne {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *StepLogUpdateOne) ClearErrors() *StepLogUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetStepMetadata sets the "step_metadata" field.
func (_u *StepLogUpdateOne) SetStepMetadata(v map[string]interface{}) *StepLogUpdateOne {
	_u.mutation.SetStepMetadata(v)
	return _u
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (_u *StepLogUpdateOne) ClearStepMetadata() *StepLogUpdateOne {
	_u.mutation.ClearStepMetadata()
	return _u
}

// Mutation returns the StepLogMutation object of the builder.
func (_u *StepLogUpdateOne) Mutation() *StepLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepLogUpdate builder.
func (_u *StepLogUpdateOne) Where(ps ...predicate.StepLog) *StepLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepLogUpdateOne) Select(field string, fields ...string) *StepLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepLog entity.
func (_u *StepLogUpdateOne) Save(ctx context.Context) (*StepLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepLogUpdateOne) SaveX(ctx context.Context) *StepLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := steplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepLog.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepLog.run"`)
	}
	return nil
}

func (_u *StepLogUpdateOne) sqlSave(ctx context.Context) (_node *StepLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(steplog.Table, steplog.Columns, sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, steplog.FieldID)
		for _, f := range fields {
			if !steplog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != steplog.FieldID {
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
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(steplog.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(steplog.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(steplog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(steplog.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(steplog.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(steplog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(steplog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InputCount(); ok {
		_spec.SetField(steplog.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputCount(); ok {
		_spec.AddField(steplog.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputCount(); ok {
		_spec.SetField(steplog.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputCount(); ok {
		_spec.AddField(steplog.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(steplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(steplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputHash(); ok {
		_spec.SetField(steplog.FieldInputHash, field.TypeString, value)
	}
	if _u.mutation.InputHashCleared() {
		_spec.ClearField(steplog.FieldInputHash, field.TypeString)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(steplog.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, steplog.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(steplog.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepMetadata(); ok {
		_spec.SetField(steplog.FieldStepMetadata, field.TypeJSON, value)
	}
	if _u.mutation.StepMetadataCleared() {
		_spec.ClearField(steplog.FieldStepMetadata, field.TypeJSON)
	}
	_node = &StepLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
