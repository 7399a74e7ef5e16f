package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	"github.com/kurt-labs/kurt/pkg/events"
)

// SubmitOptions carries optional submission parameters.
type SubmitOptions struct {
	Priority         int
	ParentWorkflowID string
	Metadata         map[string]interface{}
}

// Runtime is the front door of the workflow engine: it submits runs, executes
// them synchronously when asked, and drives the cancel/retry transitions.
// Background execution is the queue worker's job; both paths share the Runner.
type Runtime struct {
	client    *ent.Client
	runner    *Runner
	workflows *WorkflowRegistry
	registry  *Registry
	publisher *events.Publisher
	podID     string
}

// NewRuntime wires the runtime. publisher may be nil.
func NewRuntime(client *ent.Client, runner *Runner, workflows *WorkflowRegistry, registry *Registry, publisher *events.Publisher, podID string) *Runtime {
	return &Runtime{
		client:    client,
		runner:    runner,
		workflows: workflows,
		registry:  registry,
		publisher: publisher,
		podID:     podID,
	}
}

// Runner exposes the underlying runner (used by the queue worker).
func (rt *Runtime) Runner() *Runner { return rt.runner }

// Submit validates the workflow and its inputs and creates a pending run for
// the worker pool to claim. Validation failures surface before any step runs.
func (rt *Runtime) Submit(ctx context.Context, workflowName string, inputs map[string]any, opts SubmitOptions) (*ent.WorkflowRun, error) {
	def, ok := rt.workflows.Get(workflowName)
	if !ok {
		return nil, NewNotFoundError("workflow", workflowName)
	}
	if err := def.Validate(rt.registry); err != nil {
		return nil, err
	}
	resolved, err := def.ResolveInputs(inputs)
	if err != nil {
		return nil, err
	}

	create := rt.client.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetWorkflowName(workflowName).
		SetStatus(workflowrun.StatusPending).
		SetInputs(resolved).
		SetPriority(opts.Priority)
	if opts.ParentWorkflowID != "" {
		create = create.SetParentWorkflowID(opts.ParentWorkflowID)
	}
	if len(opts.Metadata) > 0 {
		create = create.SetRunMetadata(opts.Metadata)
	}

	run, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating workflow run: %w", err)
	}

	rt.publishStatus(ctx, run.ID, StatusPending)
	slog.Info("Workflow submitted",
		"workflow_id", run.ID, "workflow_name", workflowName, "priority", opts.Priority)
	return run, nil
}

// RunSync submits a run and executes it in the calling goroutine, bypassing
// the worker pool. Used by the CLI where the caller waits for the result.
func (rt *Runtime) RunSync(ctx context.Context, workflowName string, inputs map[string]any, opts SubmitOptions) (*ent.WorkflowRun, error) {
	run, err := rt.Submit(ctx, workflowName, inputs, opts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := rt.client.WorkflowRun.UpdateOneID(run.ID).
		SetStatus(workflowrun.StatusRunning).
		SetStartedAt(now).
		SetPodID(rt.podID).
		SetLastHeartbeatAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("starting workflow run: %w", err)
	}
	rt.publishStatus(ctx, run.ID, StatusRunning)

	result := rt.runner.Execute(ctx, run)
	if err := rt.Finalize(ctx, run.ID, result); err != nil {
		return nil, err
	}
	return rt.client.WorkflowRun.Get(ctx, run.ID)
}

// Finalize records the execution outcome on the run row and notifies
// subscribers. A requeue result puts the run back on the pending queue.
func (rt *Runtime) Finalize(ctx context.Context, runID string, result RunResult) error {
	// Finalization must survive a canceled execution context.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if result.Requeue {
		err := rt.client.WorkflowRun.UpdateOneID(runID).
			SetStatus(workflowrun.StatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(writeCtx)
		if err != nil {
			return fmt.Errorf("requeueing workflow run: %w", err)
		}
		rt.publishStatus(writeCtx, runID, StatusPending)
		slog.Info("Workflow requeued for another worker", "workflow_id", runID)
		return nil
	}

	update := rt.client.WorkflowRun.UpdateOneID(runID).
		SetStatus(workflowrun.Status(result.Status)).
		SetCompletedAt(time.Now()).
		ClearPodID()
	if result.ErrorMessage != "" {
		update = update.SetErrorMessage(result.ErrorMessage)
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("finalizing workflow run: %w", err)
	}

	rt.publishStatus(writeCtx, runID, result.Status)
	slog.Info("Workflow finished",
		"workflow_id", runID, "status", result.Status, "error", result.ErrorMessage)
	return nil
}

// Cancel requests cancellation of a run. A pending run is canceled outright;
// a running run moves to canceling and the runner observes it at the next
// step boundary. Terminal runs cannot be canceled.
func (rt *Runtime) Cancel(ctx context.Context, runID string) error {
	run, err := rt.client.WorkflowRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewNotFoundError("workflow run", runID)
		}
		return fmt.Errorf("loading workflow run: %w", err)
	}

	switch run.Status {
	case workflowrun.StatusPending:
		// Never claimed, nothing is executing. Conditional update so a
		// worker claiming it concurrently wins at most one of the races.
		n, err := rt.client.WorkflowRun.Update().
			Where(workflowrun.ID(runID), workflowrun.StatusEQ(workflowrun.StatusPending)).
			SetStatus(workflowrun.StatusCanceled).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("canceling pending run: %w", err)
		}
		if n == 0 {
			// Claimed in between; fall through to the canceling path.
			return rt.Cancel(ctx, runID)
		}
		rt.publishStatus(ctx, runID, StatusCanceled)
		return nil

	case workflowrun.StatusRunning:
		err := rt.client.WorkflowRun.Update().
			Where(workflowrun.ID(runID), workflowrun.StatusEQ(workflowrun.StatusRunning)).
			SetStatus(workflowrun.StatusCanceling).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("marking run canceling: %w", err)
		}
		rt.publishStatus(ctx, runID, StatusCanceling)
		slog.Info("Cancellation requested", "workflow_id", runID)
		return nil

	case workflowrun.StatusCanceling:
		return nil // Already in flight.

	default:
		return NewValidationError("workflow run %s is already %s", runID, run.Status)
	}
}

// Retry creates a new pending run with the same workflow and inputs as a
// terminal run. The new run's metadata records the lineage under retry_of.
func (rt *Runtime) Retry(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	run, err := rt.client.WorkflowRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("workflow run", runID)
		}
		return nil, fmt.Errorf("loading workflow run: %w", err)
	}
	if !IsTerminal(string(run.Status)) {
		return nil, NewValidationError("workflow run %s is still %s", runID, run.Status)
	}

	return rt.Submit(ctx, run.WorkflowName, run.Inputs, SubmitOptions{
		Priority: run.Priority,
		Metadata: map[string]interface{}{"retry_of": runID},
	})
}

// publishStatus broadcasts a transient workflow.status event to the run's
// channel and the global list channel.
func (rt *Runtime) publishStatus(ctx context.Context, runID, status string) {
	if rt.publisher == nil {
		return
	}
	if err := rt.publisher.PublishWorkflowStatus(ctx, events.WorkflowStatusPayload{
		WorkflowID: runID,
		Status:     status,
		Display:    DisplayStatus(status),
	}); err != nil {
		slog.Warn("Failed to publish workflow status",
			"workflow_id", runID, "status", status, "error", err)
	}
}
