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
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// StepLogCreate is the builder for creating a StepLog entity.
type StepLogCreate struct {
	config
	mutation *StepLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *StepLogCreate) SetRunID(v string) *StepLogCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *StepLogCreate) SetStepID(v string) *StepLogCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *StepLogCreate) SetTool(v string) *StepLogCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepLogCreate) SetStatus(v steplog.Status) *StepLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableStatus(v *steplog.Status) *StepLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepLogCreate) SetStartedAt(v time.Time) *StepLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableStartedAt(v *time.Time) *StepLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepLogCreate) SetCompletedAt(v time.Time) *StepLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableCompletedAt(v *time.Time) *StepLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetInputCount sets the "input_count" field.
func (_c *StepLogCreate) SetInputCount(v int) *StepLogCreate {
	_c.mutation.SetInputCount(v)
	return _c
}

// SetNillableInputCount sets the "input_count" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableInputCount(v *int) *StepLogCreate {
	if v != nil {
		_c.SetInputCount(*v)
	}
	return _c
}

// SetOutputCount sets the "output_count" field.
func (_c *StepLogCreate) SetOutputCount(v int) *StepLogCreate {
	_c.mutation.SetOutputCount(v)
	return _c
}

// SetNillableOutputCount sets the "output_count" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableOutputCount(v *int) *StepLogCreate {
	if v != nil {
		_c.SetOutputCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *StepLogCreate) SetErrorCount(v int) *StepLogCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableErrorCount(v *int) *StepLogCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetInputHash sets the "input_hash" field.
func (_c *StepLogCreate) SetInputHash(v string) *StepLogCreate {
	_c.mutation.SetInputHash(v)
	return _c
}

// SetNillableInputHash sets the "input_hash" field if the given value is not nil.
func (_c *StepLogCreate) SetNillableInputHash(v *string) *StepLogCreate {
	if v != nil {
		_c.SetInputHash(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *StepLogCreate) SetErrors(v []map[string]interface{}) *StepLogCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetStepMetadata sets the "step_metadata" field.
func (_c *StepLogCreate) SetStepMetadata(v map[string]interface{}) *StepLogCreate {
	_c.mutation.SetStepMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StepLogCreate) SetID(v string) *StepLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *StepLogCreate) SetRun(v *WorkflowRun) *StepLogCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StepLogMutation object of the builder.
func (_c *StepLogCreate) Mutation() *StepLogMutation {
	return _c.mutation
}

// Save creates the StepLog in the database.
func (_c *StepLogCreate) Save(ctx context.Context) (*StepLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepLogCreate) SaveX(ctx context.Context) *StepLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := steplog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputCount(); !ok {
		v := steplog.DefaultInputCount
		_c.mutation.SetInputCount(v)
	}
	if _, ok := _c.mutation.OutputCount(); !ok {
		v := steplog.DefaultOutputCount
		_c.mutation.SetOutputCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := steplog.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepLogCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StepLog.run_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "StepLog.step_id"`)}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "StepLog.tool"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := steplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputCount(); !ok {
		return &ValidationError{Name: "input_count", err: errors.New(`ent: missing required field "StepLog.input_count"`)}
	}
	if _, ok := _c.mutation.OutputCount(); !ok {
		return &ValidationError{Name: "output_count", err: errors.New(`ent: missing required field "StepLog.output_count"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "StepLog.error_count"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StepLog.run"`)}
	}
	return nil
}

func (_c *StepLogCreate) sqlSave(ctx context.Context) (*StepLog, error) {
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
			return nil, fmt.Errorf("unexpected StepLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepLogCreate) createSpec() (*StepLog, *sqlgraph.CreateSpec) {
	var (
		_node = &StepLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(steplog.Table, sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(steplog.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(steplog.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(steplog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(steplog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(steplog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.InputCount(); ok {
		_spec.SetField(steplog.FieldInputCount, field.TypeInt, value)
		_node.InputCount = value
	}
	if value, ok := _c.mutation.OutputCount(); ok {
		_spec.SetField(steplog.FieldOutputCount, field.TypeInt, value)
		_node.OutputCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(steplog.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.InputHash(); ok {
		_spec.SetField(steplog.FieldInputHash, field.TypeString, value)
		_node.InputHash = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(steplog.FieldErrors, field.TypeJSON, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.StepMetadata(); ok {
		_spec.SetField(steplog.FieldStepMetadata, field.TypeJSON, value)
		_node.StepMetadata = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   steplog.RunTable,
			Columns: []string{steplog.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepLog.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepLogUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepLogCreate) OnConflict(opts ...sql.ConflictOption) *StepLogUpsertOne {
	_c.conflict = opts
	return &StepLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepLogCreate) OnConflictColumns(columns ...string) *StepLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepLogUpsertOne{
		create: _c,
	}
}

type (
	// StepLogUpsertOne is the builder for "upsert"-ing
	//  one StepLog node.
	StepLogUpsertOne struct {
		create *StepLogCreate
	}

	// StepLogUpsert is the "OnConflict" setter.
	StepLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepID sets the "step_id" field.
func (u *StepLogUpsert) SetStepID(v string) *StepLogUpsert {
	u.Set(steplog.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateStepID() *StepLogUpsert {
	u.SetExcluded(steplog.FieldStepID)
	return u
}

// SetTool sets the "tool" field.
func (u *StepLogUpsert) SetTool(v string) *StepLogUpsert {
	u.Set(steplog.FieldTool, v)
	return u
}

// UpdateTool sets the "tool" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateTool() *StepLogUpsert {
	u.SetExcluded(steplog.FieldTool)
	return u
}

// SetStatus sets the "status" field.
func (u *StepLogUpsert) SetStatus(v steplog.Status) *StepLogUpsert {
	u.Set(steplog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateStatus() *StepLogUpsert {
	u.SetExcluded(steplog.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StepLogUpsert) SetStartedAt(v time.Time) *StepLogUpsert {
	u.Set(steplog.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateStartedAt() *StepLogUpsert {
	u.SetExcluded(steplog.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepLogUpsert) ClearStartedAt() *StepLogUpsert {
	u.SetNull(steplog.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepLogUpsert) SetCompletedAt(v time.Time) *StepLogUpsert {
	u.Set(steplog.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateCompletedAt() *StepLogUpsert {
	u.SetExcluded(steplog.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepLogUpsert) ClearCompletedAt() *StepLogUpsert {
	u.SetNull(steplog.FieldCompletedAt)
	return u
}

// SetInputCount sets the "input_count" field.
func (u *StepLogUpsert) SetInputCount(v int) *StepLogUpsert {
	u.Set(steplog.FieldInputCount, v)
	return u
}

// UpdateInputCount sets the "input_count" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateInputCount() *StepLogUpsert {
	u.SetExcluded(steplog.FieldInputCount)
	return u
}

// AddInputCount adds v to the "input_count" field.
func (u *StepLogUpsert) AddInputCount(v int) *StepLogUpsert {
	u.Add(steplog.FieldInputCount, v)
	return u
}

// SetOutputCount sets the "output_count" field.
func (u *StepLogUpsert) SetOutputCount(v int) *StepLogUpsert {
	u.Set(steplog.FieldOutputCount, v)
	return u
}

// UpdateOutputCount sets the "output_count" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateOutputCount() *StepLogUpsert {
	u.SetExcluded(steplog.FieldOutputCount)
	return u
}

// AddOutputCount adds v to the "output_count" field.
func (u *StepLogUpsert) AddOutputCount(v int) *StepLogUpsert {
	u.Add(steplog.FieldOutputCount, v)
	return u
}

// SetErrorCount sets the "error_count" field.
func (u *StepLogUpsert) SetErrorCount(v int) *StepLogUpsert {
	u.Set(steplog.FieldErrorCount, v)
	return u
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateErrorCount() *StepLogUpsert {
	u.SetExcluded(steplog.FieldErrorCount)
	return u
}

// AddErrorCount adds v to the "error_count" field.
func (u *StepLogUpsert) AddErrorCount(v int) *StepLogUpsert {
	u.Add(steplog.FieldErrorCount, v)
	return u
}

// SetInputHash sets the "input_hash" field.
func (u *StepLogUpsert) SetInputHash(v string) *StepLogUpsert {
	u.Set(steplog.FieldInputHash, v)
	return u
}

// UpdateInputHash sets the "input_hash" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateInputHash() *StepLogUpsert {
	u.SetExcluded(steplog.FieldInputHash)
	return u
}

// ClearInputHash clears the value of the "input_hash" field.
func (u *StepLogUpsert) ClearInputHash() *StepLogUpsert {
	u.SetNull(steplog.FieldInputHash)
	return u
}

// SetErrors sets the "errors" field.
func (u *StepLogUpsert) SetErrors(v []map[string]interface{}) *StepLogUpsert {
	u.Set(steplog.FieldErrors, v)
	return u
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateErrors() *StepLogUpsert {
	u.SetExcluded(steplog.FieldErrors)
	return u
}

// ClearErrors clears the value of the "errors" field.
func (u *StepLogUpsert) ClearErrors() *StepLogUpsert {
	u.SetNull(steplog.FieldErrors)
	return u
}

// SetStepMetadata sets the "step_metadata" field.
func (u *StepLogUpsert) SetStepMetadata(v map[string]interface{}) *StepLogUpsert {
	u.Set(steplog.FieldStepMetadata, v)
	return u
}

// UpdateStepMetadata sets the "step_metadata" field to the value that was provided on create.
func (u *StepLogUpsert) UpdateStepMetadata() *StepLogUpsert {
	u.SetExcluded(steplog.FieldStepMetadata)
	return u
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (u *StepLogUpsert) ClearStepMetadata() *StepLogUpsert {
	u.SetNull(steplog.FieldStepMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StepLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(steplog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepLogUpsertOne) UpdateNewValues() *StepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(steplog.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(steplog.FieldRunID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepLogUpsertOne) Ignore() *StepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepLogUpsertOne) DoNothing() *StepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepLogCreate.OnConflict
// documentation for more info.
func (u *StepLogUpsertOne) Update(set func(*StepLogUpsert)) *StepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepLogUpsertOne) SetStepID(v string) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateStepID() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStepID()
	})
}

// SetTool sets the "tool" field.
func (u *StepLogUpsertOne) SetTool(v string) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetTool(v)
	})
}

// UpdateTool sets the "tool" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateTool() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateTool()
	})
}

// SetStatus sets the "status" field.
func (u *StepLogUpsertOne) SetStatus(v steplog.Status) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateStatus() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepLogUpsertOne) SetStartedAt(v time.Time) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateStartedAt() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepLogUpsertOne) ClearStartedAt() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepLogUpsertOne) SetCompletedAt(v time.Time) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateCompletedAt() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepLogUpsertOne) ClearCompletedAt() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetInputCount sets the "input_count" field.
func (u *StepLogUpsertOne) SetInputCount(v int) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetInputCount(v)
	})
}

// AddInputCount adds v to the "input_count" field.
func (u *StepLogUpsertOne) AddInputCount(v int) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.AddInputCount(v)
	})
}

// UpdateInputCount sets the "input_count" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateInputCount() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateInputCount()
	})
}

// SetOutputCount sets the "output_count" field.
func (u *StepLogUpsertOne) SetOutputCount(v int) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetOutputCount(v)
	})
}

// AddOutputCount adds v to the "output_count" field.
func (u *StepLogUpsertOne) AddOutputCount(v int) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.AddOutputCount(v)
	})
}

// UpdateOutputCount sets the "output_count" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateOutputCount() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateOutputCount()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *StepLogUpsertOne) SetErrorCount(v int) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *StepLogUpsertOne) AddErrorCount(v int) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateErrorCount() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateErrorCount()
	})
}

// SetInputHash sets the "input_hash" field.
func (u *StepLogUpsertOne) SetInputHash(v string) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetInputHash(v)
	})
}

// UpdateInputHash sets the "input_hash" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateInputHash() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateInputHash()
	})
}

// ClearInputHash clears the value of the "input_hash" field.
func (u *StepLogUpsertOne) ClearInputHash() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearInputHash()
	})
}

// SetErrors sets the "errors" field.
func (u *StepLogUpsertOne) SetErrors(v []map[string]interface{}) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateErrors() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateErrors()
	})
}

// ClearErrors clears the value of the "errors" field.
func (u *StepLogUpsertOne) ClearErrors() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearErrors()
	})
}

// SetStepMetadata sets the "step_metadata" field.
func (u *StepLogUpsertOne) SetStepMetadata(v map[string]interface{}) *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStepMetadata(v)
	})
}

// UpdateStepMetadata sets the "step_metadata" field to the value that was provided on create.
func (u *StepLogUpsertOne) UpdateStepMetadata() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStepMetadata()
	})
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (u *StepLogUpsertOne) ClearStepMetadata() *StepLogUpsertOne {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearStepMetadata()
	})
}

// Exec executes the query.
func (u *StepLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepLogUpsertOne.ID is not supported by MySQL driver. Use StepLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepLogCreateBulk is the builder for creating many StepLog entities in bulk.
type StepLogCreateBulk struct {
	config
	err      error
	builders []*StepLogCreate
	conflict []sql.ConflictOption
}

// Save creates the StepLog entities in the database.
func (_c *StepLogCreateBulk) Save(ctx context.Context) ([]*StepLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepLogMutation)
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
func (_c *StepLogCreateBulk) SaveX(ctx context.Context) []*StepLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepLogUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepLogUpsertBulk {
	_c.conflict = opts
	return &StepLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepLogCreateBulk) OnConflictColumns(columns ...string) *StepLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepLogUpsertBulk{
		create: _c,
	}
}

// StepLogUpsertBulk is the builder for "upsert"-ing
// a bulk of StepLog nodes.
type StepLogUpsertBulk struct {
	create *StepLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StepLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(steplog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepLogUpsertBulk) UpdateNewValues() *StepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(steplog.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(steplog.FieldRunID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepLogUpsertBulk) Ignore() *StepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepLogUpsertBulk) DoNothing() *StepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepLogCreateBulk.OnConflict
// documentation for more info.
func (u *StepLogUpsertBulk) Update(set func(*StepLogUpsert)) *StepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepLogUpsertBulk) SetStepID(v string) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateStepID() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStepID()
	})
}

// SetTool sets the "tool" field.
func (u *StepLogUpsertBulk) SetTool(v string) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetTool(v)
	})
}

// UpdateTool sets the "tool" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateTool() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateTool()
	})
}

// SetStatus sets the "status" field.
func (u *StepLogUpsertBulk) SetStatus(v steplog.Status) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateStatus() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepLogUpsertBulk) SetStartedAt(v time.Time) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateStartedAt() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepLogUpsertBulk) ClearStartedAt() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepLogUpsertBulk) SetCompletedAt(v time.Time) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateCompletedAt() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepLogUpsertBulk) ClearCompletedAt() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetInputCount sets the "input_count" field.
func (u *StepLogUpsertBulk) SetInputCount(v int) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetInputCount(v)
	})
}

// AddInputCount adds v to the "input_count" field.
func (u *StepLogUpsertBulk) AddInputCount(v int) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.AddInputCount(v)
	})
}

// UpdateInputCount sets the "input_count" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateInputCount() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateInputCount()
	})
}

// SetOutputCount sets the "output_count" field.
func (u *StepLogUpsertBulk) SetOutputCount(v int) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetOutputCount(v)
	})
}

// AddOutputCount adds v to the "output_count" field.
func (u *StepLogUpsertBulk) AddOutputCount(v int) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.AddOutputCount(v)
	})
}

// UpdateOutputCount sets the "output_count" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateOutputCount() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateOutputCount()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *StepLogUpsertBulk) SetErrorCount(v int) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *StepLogUpsertBulk) AddErrorCount(v int) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateErrorCount() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateErrorCount()
	})
}

// SetInputHash sets the "input_hash" field.
func (u *StepLogUpsertBulk) SetInputHash(v string) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetInputHash(v)
	})
}

// UpdateInputHash sets the "input_hash" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateInputHash() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateInputHash()
	})
}

// ClearInputHash clears the value of the "input_hash" field.
func (u *StepLogUpsertBulk) ClearInputHash() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearInputHash()
	})
}

// SetErrors sets the "errors" field.
func (u *StepLogUpsertBulk) SetErrors(v []map[string]interface{}) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateErrors() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateErrors()
	})
}

// ClearErrors clears the value of the "errors" field.
func (u *StepLogUpsertBulk) ClearErrors() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearErrors()
	})
}

// SetStepMetadata sets the "step_metadata" field.
func (u *StepLogUpsertBulk) SetStepMetadata(v map[string]interface{}) *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.SetStepMetadata(v)
	})
}

// UpdateStepMetadata sets the "step_metadata" field to the value that was provided on create.
func (u *StepLogUpsertBulk) UpdateStepMetadata() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.UpdateStepMetadata()
	})
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (u *StepLogUpsertBulk) ClearStepMetadata() *StepLogUpsertBulk {
	return u.Update(func(s *StepLogUpsert) {
		s.ClearStepMetadata()
	})
}

// Exec executes the query.
func (u *StepLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
