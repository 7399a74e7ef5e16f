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
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// StepEventCreate is the builder for creating a StepEvent entity.
type StepEventCreate struct {
	config
	mutation *StepEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *StepEventCreate) SetRunID(v string) *StepEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *StepEventCreate) SetStepID(v string) *StepEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableStepID(v *string) *StepEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetSubstep sets the "substep" field.
func (_c *StepEventCreate) SetSubstep(v string) *StepEventCreate {
	_c.mutation.SetSubstep(v)
	return _c
}

// SetNillableSubstep sets the "substep" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableSubstep(v *string) *StepEventCreate {
	if v != nil {
		_c.SetSubstep(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepEventCreate) SetStatus(v stepevent.Status) *StepEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableStatus(v *stepevent.Status) *StepEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrent sets the "current" field.
func (_c *StepEventCreate) SetCurrent(v int) *StepEventCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableCurrent(v *int) *StepEventCreate {
	if v != nil {
		_c.SetCurrent(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *StepEventCreate) SetTotal(v int) *StepEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableTotal(v *int) *StepEventCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *StepEventCreate) SetMessage(v string) *StepEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableMessage(v *string) *StepEventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetStream sets the "stream" field.
func (_c *StepEventCreate) SetStream(v string) *StepEventCreate {
	_c.mutation.SetStream(v)
	return _c
}

// SetNillableStream sets the "stream" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableStream(v *string) *StepEventCreate {
	if v != nil {
		_c.SetStream(*v)
	}
	return _c
}

// SetEventMetadata sets the "event_metadata" field.
func (_c *StepEventCreate) SetEventMetadata(v map[string]interface{}) *StepEventCreate {
	_c.mutation.SetEventMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepEventCreate) SetCreatedAt(v time.Time) *StepEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableCreatedAt(v *time.Time) *StepEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *StepEventCreate) SetRun(v *WorkflowRun) *StepEventCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StepEventMutation object of the builder.
func (_c *StepEventCreate) Mutation() *StepEventMutation {
	return _c.mutation
}

// Save creates the StepEvent in the database.
func (_c *StepEventCreate) Save(ctx context.Context) (*StepEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepEventCreate) SaveX(ctx context.Context) *StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stepevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Stream(); !ok {
		v := stepevent.DefaultStream
		_c.mutation.SetStream(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stepevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepEventCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StepEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stepevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stream(); !ok {
		return &ValidationError{Name: "stream", err: errors.New(`ent: missing required field "StepEvent.stream"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StepEvent.run"`)}
	}
	return nil
}

func (_c *StepEventCreate) sqlSave(ctx context.Context) (*StepEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepEventCreate) createSpec() (*StepEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StepEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepevent.Table, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(stepevent.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Substep(); ok {
		_spec.SetField(stepevent.FieldSubstep, field.TypeString, value)
		_node.Substep = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stepevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(stepevent.FieldCurrent, field.TypeInt, value)
		_node.Current = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(stepevent.FieldTotal, field.TypeInt, value)
		_node.Total = &value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(stepevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Stream(); ok {
		_spec.SetField(stepevent.FieldStream, field.TypeString, value)
		_node.Stream = value
	}
	if value, ok := _c.mutation.EventMetadata(); ok {
		_spec.SetField(stepevent.FieldEventMetadata, field.TypeJSON, value)
		_node.EventMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stepevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepevent.RunTable,
			Columns: []string{stepevent.RunColumn},
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
//	client.StepEvent.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepEventUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepEventCreate) OnConflict(opts ...sql.ConflictOption) *StepEventUpsertOne {
	_c.conflict = opts
	return &StepEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepEventCreate) OnConflictColumns(columns ...string) *StepEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepEventUpsertOne{
		create: _c,
	}
}

type (
	// StepEventUpsertOne is the builder for "upsert"-ing
	//  one StepEvent node.
	StepEventUpsertOne struct {
		create *StepEventCreate
	}

	// StepEventUpsert is the "OnConflict" setter.
	StepEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepID sets the "step_id" field.
func (u *StepEventUpsert) SetStepID(v string) *StepEventUpsert {
	u.Set(stepevent.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateStepID() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *StepEventUpsert) ClearStepID() *StepEventUpsert {
	u.SetNull(stepevent.FieldStepID)
	return u
}

// SetSubstep sets the "substep" field.
func (u *StepEventUpsert) SetSubstep(v string) *StepEventUpsert {
	u.Set(stepevent.FieldSubstep, v)
	return u
}

// UpdateSubstep sets the "substep" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateSubstep() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldSubstep)
	return u
}

// ClearSubstep clears the value of the "substep" field.
func (u *StepEventUpsert) ClearSubstep() *StepEventUpsert {
	u.SetNull(stepevent.FieldSubstep)
	return u
}

// SetStatus sets the "status" field.
func (u *StepEventUpsert) SetStatus(v stepevent.Status) *StepEventUpsert {
	u.Set(stepevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateStatus() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldStatus)
	return u
}

// SetCurrent sets the "current" field.
func (u *StepEventUpsert) SetCurrent(v int) *StepEventUpsert {
	u.Set(stepevent.FieldCurrent, v)
	return u
}

// UpdateCurrent sets the "current" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateCurrent() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldCurrent)
	return u
}

// AddCurrent adds v to the "current" field.
func (u *StepEventUpsert) AddCurrent(v int) *StepEventUpsert {
	u.Add(stepevent.FieldCurrent, v)
	return u
}

// ClearCurrent clears the value of the "current" field.
func (u *StepEventUpsert) ClearCurrent() *StepEventUpsert {
	u.SetNull(stepevent.FieldCurrent)
	return u
}

// SetTotal sets the "total" field.
func (u *StepEventUpsert) SetTotal(v int) *StepEventUpsert {
	u.Set(stepevent.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateTotal() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *StepEventUpsert) AddTotal(v int) *StepEventUpsert {
	u.Add(stepevent.FieldTotal, v)
	return u
}

// ClearTotal clears the value of the "total" field.
func (u *StepEventUpsert) ClearTotal() *StepEventUpsert {
	u.SetNull(stepevent.FieldTotal)
	return u
}

// SetMessage sets the "message" field.
func (u *StepEventUpsert) SetMessage(v string) *StepEventUpsert {
	u.Set(stepevent.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateMessage() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *StepEventUpsert) ClearMessage() *StepEventUpsert {
	u.SetNull(stepevent.FieldMessage)
	return u
}

// SetStream sets the "stream" field.
func (u *StepEventUpsert) SetStream(v string) *StepEventUpsert {
	u.Set(stepevent.FieldStream, v)
	return u
}

// UpdateStream sets the "stream" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateStream() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldStream)
	return u
}

// SetEventMetadata sets the "event_metadata" field.
func (u *StepEventUpsert) SetEventMetadata(v map[string]interface{}) *StepEventUpsert {
	u.Set(stepevent.FieldEventMetadata, v)
	return u
}

// UpdateEventMetadata sets the "event_metadata" field to the value that was provided on create.
func (u *StepEventUpsert) UpdateEventMetadata() *StepEventUpsert {
	u.SetExcluded(stepevent.FieldEventMetadata)
	return u
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (u *StepEventUpsert) ClearEventMetadata() *StepEventUpsert {
	u.SetNull(stepevent.FieldEventMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StepEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StepEventUpsertOne) UpdateNewValues() *StepEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(stepevent.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stepevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepEventUpsertOne) Ignore() *StepEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepEventUpsertOne) DoNothing() *StepEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepEventCreate.OnConflict
// documentation for more info.
func (u *StepEventUpsertOne) Update(set func(*StepEventUpsert)) *StepEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepEventUpsertOne) SetStepID(v string) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateStepID() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *StepEventUpsertOne) ClearStepID() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearStepID()
	})
}

// SetSubstep sets the "substep" field.
func (u *StepEventUpsertOne) SetSubstep(v string) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetSubstep(v)
	})
}

// UpdateSubstep sets the "substep" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateSubstep() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateSubstep()
	})
}

// ClearSubstep clears the value of the "substep" field.
func (u *StepEventUpsertOne) ClearSubstep() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearSubstep()
	})
}

// SetStatus sets the "status" field.
func (u *StepEventUpsertOne) SetStatus(v stepevent.Status) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateStatus() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrent sets the "current" field.
func (u *StepEventUpsertOne) SetCurrent(v int) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetCurrent(v)
	})
}

// AddCurrent adds v to the "current" field.
func (u *StepEventUpsertOne) AddCurrent(v int) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.AddCurrent(v)
	})
}

// UpdateCurrent sets the "current" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateCurrent() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateCurrent()
	})
}

// ClearCurrent clears the value of the "current" field.
func (u *StepEventUpsertOne) ClearCurrent() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearCurrent()
	})
}

// SetTotal sets the "total" field.
func (u *StepEventUpsertOne) SetTotal(v int) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *StepEventUpsertOne) AddTotal(v int) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateTotal() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateTotal()
	})
}

// ClearTotal clears the value of the "total" field.
func (u *StepEventUpsertOne) ClearTotal() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearTotal()
	})
}

// SetMessage sets the "message" field.
func (u *StepEventUpsertOne) SetMessage(v string) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateMessage() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *StepEventUpsertOne) ClearMessage() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearMessage()
	})
}

// SetStream sets the "stream" field.
func (u *StepEventUpsertOne) SetStream(v string) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetStream(v)
	})
}

// UpdateStream sets the "stream" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateStream() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateStream()
	})
}

// SetEventMetadata sets the "event_metadata" field.
func (u *StepEventUpsertOne) SetEventMetadata(v map[string]interface{}) *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.SetEventMetadata(v)
	})
}

// UpdateEventMetadata sets the "event_metadata" field to the value that was provided on create.
func (u *StepEventUpsertOne) UpdateEventMetadata() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateEventMetadata()
	})
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (u *StepEventUpsertOne) ClearEventMetadata() *StepEventUpsertOne {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearEventMetadata()
	})
}

// Exec executes the query.
func (u *StepEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepEventCreateBulk is the builder for creating many StepEvent entities in bulk.
type StepEventCreateBulk struct {
	config
	err      error
	builders []*StepEventCreate
	conflict []sql.ConflictOption
}

// Save creates the StepEvent entities in the database.
func (_c *StepEventCreateBulk) Save(ctx context.Context) ([]*StepEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *StepEventCreateBulk) SaveX(ctx context.Context) []*StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepEventUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepEventUpsertBulk {
	_c.conflict = opts
	return &StepEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepEventCreateBulk) OnConflictColumns(columns ...string) *StepEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepEventUpsertBulk{
		create: _c,
	}
}

// StepEventUpsertBulk is the builder for "upsert"-ing
// a bulk of StepEvent nodes.
type StepEventUpsertBulk struct {
	create *StepEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StepEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StepEventUpsertBulk) UpdateNewValues() *StepEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(stepevent.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stepevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepEventUpsertBulk) Ignore() *StepEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepEventUpsertBulk) DoNothing() *StepEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepEventCreateBulk.OnConflict
// documentation for more info.
func (u *StepEventUpsertBulk) Update(set func(*StepEventUpsert)) *StepEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepEventUpsertBulk) SetStepID(v string) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateStepID() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *StepEventUpsertBulk) ClearStepID() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearStepID()
	})
}

// SetSubstep sets the "substep" field.
func (u *StepEventUpsertBulk) SetSubstep(v string) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetSubstep(v)
	})
}

// UpdateSubstep sets the "substep" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateSubstep() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateSubstep()
	})
}

// ClearSubstep clears the value of the "substep" field.
func (u *StepEventUpsertBulk) ClearSubstep() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearSubstep()
	})
}

// SetStatus sets the "status" field.
func (u *StepEventUpsertBulk) SetStatus(v stepevent.Status) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateStatus() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrent sets the "current" field.
func (u *StepEventUpsertBulk) SetCurrent(v int) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetCurrent(v)
	})
}

// AddCurrent adds v to the "current" field.
func (u *StepEventUpsertBulk) AddCurrent(v int) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.AddCurrent(v)
	})
}

// UpdateCurrent sets the "current" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateCurrent() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateCurrent()
	})
}

// ClearCurrent clears the value of the "current" field.
func (u *StepEventUpsertBulk) ClearCurrent() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearCurrent()
	})
}

// SetTotal sets the "total" field.
func (u *StepEventUpsertBulk) SetTotal(v int) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *StepEventUpsertBulk) AddTotal(v int) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateTotal() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateTotal()
	})
}

// ClearTotal clears the value of the "total" field.
func (u *StepEventUpsertBulk) ClearTotal() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearTotal()
	})
}

// SetMessage sets the "message" field.
func (u *StepEventUpsertBulk) SetMessage(v string) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateMessage() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *StepEventUpsertBulk) ClearMessage() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearMessage()
	})
}

// SetStream sets the "stream" field.
func (u *StepEventUpsertBulk) SetStream(v string) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetStream(v)
	})
}

// UpdateStream sets the "stream" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateStream() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateStream()
	})
}

// SetEventMetadata sets the "event_metadata" field.
func (u *StepEventUpsertBulk) SetEventMetadata(v map[string]interface{}) *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.SetEventMetadata(v)
	})
}

// UpdateEventMetadata sets the "event_metadata" field to the value that was provided on create.
func (u *StepEventUpsertBulk) UpdateEventMetadata() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.UpdateEventMetadata()
	})
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (u *StepEventUpsertBulk) ClearEventMetadata() *StepEventUpsertBulk {
	return u.Update(func(s *StepEventUpsert) {
		s.ClearEventMetadata()
	})
}

// Exec executes the query.
func (u *StepEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
