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
	"github.com/kurt-labs/kurt/ent/predicate"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// WorkflowRunUpdate is the builder for updating WorkflowRun entities.
type WorkflowRunUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdate) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowName sets the "workflow_name" field.
func (_u *WorkflowRunUpdate) SetWorkflowName(v string) *WorkflowRunUpdate {
	_u.mutation.SetWorkflowName(v)
	return _u
}

// SetNillableWorkflowName sets the "workflow_name" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableWorkflowName(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetWorkflowName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdate) SetStatus(v workflowrun.Status) *WorkflowRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *WorkflowRunUpdate) SetInputs(v map[string]interface{}) *WorkflowRunUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *WorkflowRunUpdate) ClearInputs() *WorkflowRunUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdate) SetErrorMessage(v string) *WorkflowRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableErrorMessage(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdate) ClearErrorMessage() *WorkflowRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRunMetadata sets the "run_metadata" field.
func (_u *WorkflowRunUpdate) SetRunMetadata(v map[string]interface{}) *WorkflowRunUpdate {
	_u.mutation.SetRunMetadata(v)
	return _u
}

// ClearRunMetadata clears the value of the "run_metadata" field.
func (_u *WorkflowRunUpdate) ClearRunMetadata() *WorkflowRunUpdate {
	_u.mutation.ClearRunMetadata()
	return _u
}

// SetParentWorkflowID sets the "parent_workflow_id" field.
func (_u *WorkflowRunUpdate) SetParentWorkflowID(v string) *WorkflowRunUpdate {
	_u.mutation.SetParentWorkflowID(v)
	return _u
}

// SetNillableParentWorkflowID sets the "parent_workflow_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableParentWorkflowID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetParentWorkflowID(*v)
	}
	return _u
}

// ClearParentWorkflowID clears the value of the "parent_workflow_id" field.
func (_u *WorkflowRunUpdate) ClearParentWorkflowID() *WorkflowRunUpdate {
	_u.mutation.ClearParentWorkflowID()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkflowRunUpdate) SetPriority(v int) *WorkflowRunUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillablePriority(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkflowRunUpdate) AddPriority(v int) *WorkflowRunUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowRunUpdate) SetCreatedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdate) SetStartedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdate) ClearStartedAt() *WorkflowRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdate) SetCompletedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdate) ClearCompletedAt() *WorkflowRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdate) SetPodID(v string) *WorkflowRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillablePodID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdate) ClearPodID() *WorkflowRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) ClearLastHeartbeatAt() *WorkflowRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddStepLogIDs adds the "step_logs" edge to the StepLog entity by IDs.
func (_u *WorkflowRunUpdate) AddStepLogIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddStepLogIDs(ids...)
	return _u
}

// AddStepLogs adds the "step_logs" edges to the StepLog entity.
func (_u *WorkflowRunUpdate) AddStepLogs(v ...*StepLog) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepLogIDs(ids...)
}

// AddStepEventIDs adds the "step_events" edge to the StepEvent entity by IDs.
func (_u *WorkflowRunUpdate) AddStepEventIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.AddStepEventIDs(ids...)
	return _u
}

// AddStepEvents adds the "step_events" edges to the StepEvent entity.
func (_u *WorkflowRunUpdate) AddStepEvents(v ...*StepEvent) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdate) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearStepLogs clears all "step_logs" edges to the StepLog entity.
func (_u *WorkflowRunUpdate) ClearStepLogs() *WorkflowRunUpdate {
	_u.mutation.ClearStepLogs()
	return _u
}

// RemoveStepLogIDs removes the "step_logs" edge to StepLog entities by IDs.
func (_u *WorkflowRunUpdate) RemoveStepLogIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveStepLogIDs(ids...)
	return _u
}

// RemoveStepLogs removes "step_logs" edges to StepLog entities.
func (_u *WorkflowRunUpdate) RemoveStepLogs(v ...*StepLog) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepLogIDs(ids...)
}

// ClearStepEvents clears all "step_events" edges to the StepEvent entity.
func (_u *WorkflowRunUpdate) ClearStepEvents() *WorkflowRunUpdate {
	_u.mutation.ClearStepEvents()
	return _u
}

// RemoveStepEventIDs removes the "step_events" edge to StepEvent entities by IDs.
func (_u *WorkflowRunUpdate) RemoveStepEventIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.RemoveStepEventIDs(ids...)
	return _u
}

// RemoveStepEvents removes "step_events" edges to StepEvent entities.
func (_u *WorkflowRunUpdate) RemoveStepEvents(v ...*StepEvent) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(workflowrun.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(workflowrun.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RunMetadata(); ok {
		_spec.SetField(workflowrun.FieldRunMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RunMetadataCleared() {
		_spec.ClearField(workflowrun.FieldRunMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentWorkflowID(); ok {
		_spec.SetField(workflowrun.FieldParentWorkflowID, field.TypeString, value)
	}
	if _u.mutation.ParentWorkflowIDCleared() {
		_spec.ClearField(workflowrun.FieldParentWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workflowrun.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workflowrun.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.StepLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepLogsTable,
			Columns: []string{workflowrun.StepLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepLogsIDs(); len(nodes) > 0 && !_u.mutation.StepLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepLogsTable,
			Columns: []string{workflowrun.StepLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepLogsTable,
			Columns: []string{workflowrun.StepLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepEventsTable,
			Columns: []string{workflowrun.StepEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepEventsIDs(); len(nodes) > 0 && !_u.mutation.StepEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepEventsTable,
			Columns: []string{workflowrun.StepEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepEventsTable,
			Columns: []string{workflowrun.StepEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRunUpdateOne is the builder for updating a single WorkflowRun entity.
type WorkflowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// SetWorkflowName sets the "workflow_name" field.
func (_u *WorkflowRunUpdateOne) SetWorkflowName(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetWorkflowName(v)
	return _u
}

// SetNillableWorkflowName sets the "workflow_name" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableWorkflowName(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetWorkflowName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdateOne) SetStatus(v workflowrun.Status) *WorkflowRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *WorkflowRunUpdateOne) SetInputs(v map[string]interface{}) *WorkflowRunUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *WorkflowRunUpdateOne) ClearInputs() *WorkflowRunUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdateOne) SetErrorMessage(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableErrorMessage(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdateOne) ClearErrorMessage() *WorkflowRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRunMetadata sets the "run_metadata" field.
func (_u *WorkflowRunUpdateOne) SetRunMetadata(v map[string]interface{}) *WorkflowRunUpdateOne {
	_u.mutation.SetRunMetadata(v)
	return _u
}

// ClearRunMetadata clears the value of the "run_metadata" field.
func (_u *WorkflowRunUpdateOne) ClearRunMetadata() *WorkflowRunUpdateOne {
	_u.mutation.ClearRunMetadata()
	return _u
}

// SetParentWorkflowID sets the "parent_workflow_id" field.
func (_u *WorkflowRunUpdateOne) SetParentWorkflowID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetParentWorkflowID(v)
	return _u
}

// SetNillableParentWorkflowID sets the "parent_workflow_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableParentWorkflowID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetParentWorkflowID(*v)
	}
	return _u
}

// ClearParentWorkflowID clears the value of the "parent_workflow_id" field.
func (_u *WorkflowRunUpdateOne) ClearParentWorkflowID() *WorkflowRunUpdateOne {
	_u.mutation.ClearParentWorkflowID()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkflowRunUpdateOne) SetPriority(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillablePriority(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkflowRunUpdateOne) AddPriority(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowRunUpdateOne) SetCreatedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdateOne) SetStartedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdateOne) ClearStartedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdateOne) SetCompletedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdateOne) ClearCompletedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdateOne) SetPodID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillablePodID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdateOne) ClearPodID() *WorkflowRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) ClearLastHeartbeatAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddStepLogIDs adds the "step_logs" edge to the StepLog entity by IDs.
func (_u *WorkflowRunUpdateOne) AddStepLogIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddStepLogIDs(ids...)
	return _u
}

// AddStepLogs adds the "step_logs" edges to the StepLog entity.
func (_u *WorkflowRunUpdateOne) AddStepLogs(v ...*StepLog) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepLogIDs(ids...)
}

// AddStepEventIDs adds the "step_events" edge to the StepEvent entity by IDs.
func (_u *WorkflowRunUpdateOne) AddStepEventIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.AddStepEventIDs(ids...)
	return _u
}

// AddStepEvents adds the "step_events" edges to the StepEvent entity.
func (_u *WorkflowRunUpdateOne) AddStepEvents(v ...*StepEvent) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdateOne) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearStepLogs clears all "step_logs" edges to the StepLog entity.
func (_u *WorkflowRunUpdateOne) ClearStepLogs() *WorkflowRunUpdateOne {
	_u.mutation.ClearStepLogs()
	return _u
}

// RemoveStepLogIDs removes the "step_logs" edge to StepLog entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveStepLogIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveStepLogIDs(ids...)
	return _u
}

// RemoveStepLogs removes "step_logs" edges to StepLog entities.
func (_u *WorkflowRunUpdateOne) RemoveStepLogs(v ...*StepLog) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepLogIDs(ids...)
}

// ClearStepEvents clears all "step_events" edges to the StepEvent entity.
func (_u *WorkflowRunUpdateOne) ClearStepEvents() *WorkflowRunUpdateOne {
	_u.mutation.ClearStepEvents()
	return _u
}

// RemoveStepEventIDs removes the "step_events" edge to StepEvent entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveStepEventIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.RemoveStepEventIDs(ids...)
	return _u
}

// RemoveStepEvents removes "step_events" edges to StepEvent entities.
func (_u *WorkflowRunUpdateOne) RemoveStepEvents(v ...*StepEvent) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepEventIDs(ids...)
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdateOne) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRunUpdateOne) Select(field string, fields ...string) *WorkflowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRun entity.
func (_u *WorkflowRunUpdateOne) Save(ctx context.Context) (*WorkflowRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) SaveX(ctx context.Context) *WorkflowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrun.FieldID)
		for _, f := range fields {
			if !workflowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrun.FieldID {
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
	if value, ok := _u.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(workflowrun.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(workflowrun.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RunMetadata(); ok {
		_spec.SetField(workflowrun.FieldRunMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RunMetadataCleared() {
		_spec.ClearField(workflowrun.FieldRunMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentWorkflowID(); ok {
		_spec.SetField(workflowrun.FieldParentWorkflowID, field.TypeString, value)
	}
	if _u.mutation.ParentWorkflowIDCleared() {
		_spec.ClearField(workflowrun.FieldParentWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workflowrun.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workflowrun.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.StepLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepLogsTable,
			Columns: []string{workflowrun.StepLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepLogsIDs(); len(nodes) > 0 && !_u.mutation.StepLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepLogsTable,
			Columns: []string{workflowrun.StepLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepLogsTable,
			Columns: []string{workflowrun.StepLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steplog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepEventsTable,
			Columns: []string{workflowrun.StepEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepEventsIDs(); len(nodes) > 0 && !_u.mutation.StepEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepEventsTable,
			Columns: []string{workflowrun.StepEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.StepEventsTable,
			Columns: []string{workflowrun.StepEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
