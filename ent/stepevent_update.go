// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/predicate"
	"github.com/kurt-labs/kurt/ent/stepevent"
)

// StepEventUpdate is the builder for updating StepEvent entities.
type StepEventUpdate struct {
	config
	hooks    []Hook
	mutation *StepEventMutation
}

// Where appends a list predicates to the StepEventUpdate builder.
func (_u *StepEventUpdate) Where(ps ...predicate.StepEvent) *StepEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepEventUpdate) SetStepID(v string) *StepEventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableStepID(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *StepEventUpdate) ClearStepID() *StepEventUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetSubstep sets the "substep" field.
func (_u *StepEventUpdate) SetSubstep(v string) *StepEventUpdate {
	_u.mutation.SetSubstep(v)
	return _u
}

// SetNillableSubstep sets the "substep" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableSubstep(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetSubstep(*v)
	}
	return _u
}

// ClearSubstep clears the value of the "substep" field.
func (_u *StepEventUpdate) ClearSubstep() *StepEventUpdate {
	_u.mutation.ClearSubstep()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepEventUpdate) SetStatus(v stepevent.Status) *StepEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableStatus(v *stepevent.Status) *StepEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrent sets the "current" field.
func (_u *StepEventUpdate) SetCurrent(v int) *StepEventUpdate {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableCurrent(v *int) *StepEventUpdate {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *StepEventUpdate) AddCurrent(v int) *StepEventUpdate {
	_u.mutation.AddCurrent(v)
	return _u
}

// ClearCurrent clears the value of the "current" field.
func (_u *StepEventUpdate) ClearCurrent() *StepEventUpdate {
	_u.mutation.ClearCurrent()
	return _u
}

// SetTotal sets the "total" field.
func (_u *StepEventUpdate) SetTotal(v int) *StepEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableTotal(v *int) *StepEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *StepEventUpdate) AddTotal(v int) *StepEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *StepEventUpdate) ClearTotal() *StepEventUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetMessage sets the "message" field.
func (_u *StepEventUpdate) SetMessage(v string) *StepEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableMessage(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *StepEventUpdate) ClearMessage() *StepEventUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetStream sets the "stream" field.
func (_u *StepEventUpdate) SetStream(v string) *StepEventUpdate {
	_u.mutation.SetStream(v)
	return _u
}

// SetNillableStream sets the "stream" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableStream(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetStream(*v)
	}
	return _u
}

// SetEventMetadata sets the "event_metadata" field.
func (_u *StepEventUpdate) SetEventMetadata(v map[string]interface{}) *StepEventUpdate {
	_u.mutation.SetEventMetadata(v)
	return _u
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (_u *StepEventUpdate) ClearEventMetadata() *StepEventUpdate {
	_u.mutation.ClearEventMetadata()
	return _u
}

// Mutation returns the StepEventMutation object of the builder.
func (_u *StepEventUpdate) Mutation() *StepEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepEvent.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepEvent.run"`)
	}
	return nil
}

func (_u *StepEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepevent.Table, stepevent.Columns, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(stepevent.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(stepevent.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.Substep(); ok {
		_spec.SetField(stepevent.FieldSubstep, field.TypeString, value)
	}
	if _u.mutation.SubstepCleared() {
		_spec.ClearField(stepevent.FieldSubstep, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(stepevent.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(stepevent.FieldCurrent, field.TypeInt, value)
	}
	if _u.mutation.CurrentCleared() {
		_spec.ClearField(stepevent.FieldCurrent, field.TypeInt)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(stepevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(stepevent.FieldTotal, field.TypeInt, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(stepevent.FieldTotal, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(stepevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(stepevent.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Stream(); ok {
		_spec.SetField(stepevent.FieldStream, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventMetadata(); ok {
		_spec.SetField(stepevent.FieldEventMetadata, field.TypeJSON, value)
	}
	if _u.mutation.EventMetadataCleared() {
		_spec.ClearField(stepevent.FieldEventMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepEventUpdateOne is the builder for updating a single StepEvent entity.
type StepEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepEventMutation
}

// SetStepID sets the "step_id" field.
func (_u *StepEventUpdateOne) SetStepID(v string) *StepEventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableStepID(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *StepEventUpdateOne) ClearStepID() *StepEventUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetSubstep sets the "substep" field.
func (_u *StepEventUpdateOne) SetSubstep(v string) *StepEventUpdateOne {
	_u.mutation.SetSubstep(v)
	return _u
}

// SetNillableSubstep sets the "substep" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableSubstep(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetSubstep(*v)
	}
	return _u
}

// ClearSubstep clears the value of the "substep" field.
func (_u *StepEventUpdateOne) ClearSubstep() *StepEventUpdateOne {
	_u.mutation.ClearSubstep()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepEventUpdateOne) SetStatus(v stepevent.Status) *StepEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableStatus(v *stepevent.Status) *StepEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrent sets the "current" field.
func (_u *StepEventUpdateOne) SetCurrent(v int) *StepEventUpdateOne {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableCurrent(v *int) *StepEventUpdateOne {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *StepEventUpdateOne) AddCurrent(v int) *StepEventUpdateOne {
	_u.mutation.AddCurrent(v)
	return _u
}

// ClearCurrent clears the value of the "current" field.
func (_u *StepEventUpdateOne) ClearCurrent() *StepEventUpdateOne {
	_u.mutation.ClearCurrent()
	return _u
}

// SetTotal sets the "total" field.
func (_u *StepEventUpdateOne) SetTotal(v int) *StepEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableTotal(v *int) *StepEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *StepEventUpdateOne) AddTotal(v int) *StepEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *StepEventUpdateOne) ClearTotal() *StepEventUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetMessage sets the "message" field.
func (_u *StepEventUpdateOne) SetMessage(v string) *StepEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableMessage(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *StepEventUpdateOne) ClearMessage() *StepEventUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetStream sets the "stream" field.
func (_u *StepEventUpdateOne) SetStream(v string) *StepEventUpdateOne {
	_u.mutation.SetStream(v)
	return _u
}

// SetNillableStream sets the "stream" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableStream(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetStream(*v)
	}
	return _u
}

// SetEventMetadata sets the "event_metadata" field.
func (_u *StepEventUpdateOne) SetEventMetadata(v map[string]interface{}) *StepEventUpdateOne {
	_u.mutation.SetEventMetadata(v)
	return _u
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (_u *StepEventUpdateOne) ClearEventMetadata() *StepEventUpdateOne {
	_u.mutation.ClearEventMetadata()
	return _u
}

// Mutation returns the StepEventMutation object of the builder.
func (_u *StepEventUpdateOne) Mutation() *StepEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepEventUpdate builder.
func (_u *StepEventUpdateOne) Where(ps ...predicate.StepEvent) *StepEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepEventUpdateOne) Select(field string, fields ...string) *StepEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepEvent entity.
func (_u *StepEventUpdateOne) Save(ctx context.Context) (*StepEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepEventUpdateOne) SaveX(ctx context.Context) *StepEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepEvent.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepEvent.run"`)
	}
	return nil
}

func (_u *StepEventUpdateOne) sqlSave(ctx context.Context) (_node *StepEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepevent.Table, stepevent.Columns, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepevent.FieldID)
		for _, f := range fields {
			if !stepevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepevent.FieldID {
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
		_spec.SetField(stepevent.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(stepevent.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.Substep(); ok {
		_spec.SetField(stepevent.FieldSubstep, field.TypeString, value)
	}
	if _u.mutation.SubstepCleared() {
		_spec.ClearField(stepevent.FieldSubstep, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(stepevent.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(stepevent.FieldCurrent, field.TypeInt, value)
	}
	if _u.mutation.CurrentCleared() {
		_spec.ClearField(stepevent.FieldCurrent, field.TypeInt)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(stepevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(stepevent.FieldTotal, field.TypeInt, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(stepevent.FieldTotal, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(stepevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(stepevent.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Stream(); ok {
		_spec.SetField(stepevent.FieldStream, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventMetadata(); ok {
		_spec.SetField(stepevent.FieldEventMetadata, field.TypeJSON, value)
	}
	if _u.mutation.EventMetadataCleared() {
		_spec.ClearField(stepevent.FieldEventMetadata, field.TypeJSON)
	}
	_node = &StepEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
