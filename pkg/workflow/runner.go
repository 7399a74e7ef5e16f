package workflow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	"github.com/kurt-labs/kurt/pkg/events"
)

// Step log statuses (mirrors the ent enum).
const (
	StepPending   = "pending"
	StepRunning   = "running"
	StepCompleted = "completed"
	StepFailed    = "failed"
	StepSkipped   = "skipped"
	StepCanceled  = "canceled"
)

// outputItemsKey is where a completed step's output snapshot lives inside
// step_metadata, so a crashed run can resume without re-executing the step.
const outputItemsKey = "output_items"

// RunnerConfig tunes execution behavior.
type RunnerConfig struct {
	// MaxRetries is the retry budget for transient step failures.
	MaxRetries int

	// RetryInitialInterval seeds the exponential backoff between retries.
	RetryInitialInterval time.Duration

	// SubTaskConcurrency bounds the default per-step fan-out queue.
	SubTaskConcurrency int
}

// DefaultRunnerConfig returns the standard execution settings.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		MaxRetries:           3,
		RetryInitialInterval: time.Second,
		SubTaskConcurrency:   5,
	}
}

// RunResult is the terminal outcome of one execution attempt.
type RunResult struct {
	Status       string
	ErrorMessage string

	// Requeue is set when execution stopped because the worker is shutting
	// down; the run goes back to pending instead of a terminal status.
	Requeue bool
}

// Runner executes a workflow run level by level against the tool registry,
// persisting a step_log row per step so a crashed run resumes from the last
// completed step.
type Runner struct {
	client    *ent.Client
	registry  *Registry
	workflows *WorkflowRegistry
	publisher *events.Publisher
	cfg       RunnerConfig
}

// NewRunner creates a runner. publisher may be nil (no event streaming).
func NewRunner(client *ent.Client, registry *Registry, workflows *WorkflowRegistry, publisher *events.Publisher, cfg RunnerConfig) *Runner {
	if cfg.MaxRetries == 0 {
		cfg = DefaultRunnerConfig()
	}
	return &Runner{
		client:    client,
		registry:  registry,
		workflows: workflows,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Execute runs the workflow to a terminal state. The caller (queue worker or
// synchronous runtime) owns the workflow_runs status transitions around it.
func (r *Runner) Execute(ctx context.Context, run *ent.WorkflowRun) RunResult {
	def, ok := r.workflows.Get(run.WorkflowName)
	if !ok {
		return RunResult{Status: StatusFailed, ErrorMessage: fmt.Sprintf("unknown workflow %q", run.WorkflowName)}
	}
	if err := def.Validate(r.registry); err != nil {
		return RunResult{Status: StatusFailed, ErrorMessage: err.Error()}
	}
	dag, err := BuildDAG(def.Steps)
	if err != nil {
		return RunResult{Status: StatusFailed, ErrorMessage: err.Error()}
	}

	emitter := NewEmitter(run.ID, r.client, r.publisher)
	canceled := r.cancelCheck(run.ID)

	// Resume support: steps already completed by a previous attempt keep
	// their outputs and are not re-executed.
	outputs := make(map[string][]Item)
	executed := make(map[string]bool)
	hadErrors := false

	prior, err := r.client.StepLog.Query().
		Where(steplog.RunID(run.ID)).
		All(ctx)
	if err != nil {
		return RunResult{Status: StatusFailed, ErrorMessage: fmt.Sprintf("loading step logs: %v", err)}
	}
	for _, sl := range prior {
		if sl.Status == steplog.StatusCompleted {
			executed[sl.StepID] = true
			outputs[sl.StepID] = itemsFromMetadata(sl.StepMetadata)
			if sl.ErrorCount > 0 {
				hadErrors = true
			}
		}
	}
	if len(executed) > 0 {
		slog.Info("Resuming workflow from checkpoint",
			"workflow_id", run.ID, "completed_steps", len(executed))
	}

	for _, level := range dag.Levels {
		if ctx.Err() != nil {
			r.markRemaining(run, def, executed, StepCanceled)
			return RunResult{Status: StatusPending, Requeue: true}
		}
		if canceled(ctx) {
			r.markRemaining(run, def, executed, StepCanceled)
			return RunResult{Status: StatusCanceled, ErrorMessage: "canceled by user"}
		}

		type levelResult struct {
			items  []Item
			errors int
			err    error
			cont   bool
		}
		results := make(map[string]*levelResult, len(level))
		var mu sync.Mutex
		var wg sync.WaitGroup

		for _, name := range level {
			if executed[name] {
				continue
			}
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				items, errCount, err := r.runStep(ctx, run, def, name, outputs, emitter)
				mu.Lock()
				results[name] = &levelResult{
					items:  items,
					errors: errCount,
					err:    err,
					cont:   def.Steps[name].ContinueOnError,
				}
				mu.Unlock()
			}(name)
		}
		wg.Wait()

		var hardFailure error
		for _, name := range level {
			res, ran := results[name]
			if !ran {
				continue
			}
			executed[name] = true
			if res.err != nil {
				if res.cont {
					hadErrors = true
					outputs[name] = nil
					continue
				}
				if hardFailure == nil {
					hardFailure = fmt.Errorf("step %q failed: %w", name, res.err)
				}
				continue
			}
			outputs[name] = res.items
			if res.errors > 0 {
				hadErrors = true
			}
		}

		if hardFailure != nil {
			r.markRemaining(run, def, executed, StepCanceled)
			return RunResult{Status: StatusFailed, ErrorMessage: hardFailure.Error()}
		}
	}

	if hadErrors {
		return RunResult{Status: StatusCompletedWithErrors}
	}
	return RunResult{Status: StatusCompleted}
}

// runStep executes one step with retry on transient errors and persists its
// step_log row through the running/completed/failed transitions.
func (r *Runner) runStep(ctx context.Context, run *ent.WorkflowRun, def *Definition, name string, outputs map[string][]Item, emitter *Emitter) ([]Item, int, error) {
	step := def.Steps[name]
	tool, ok := r.registry.Get(step.Type)
	if !ok {
		return nil, 0, NewValidationError("step %q: unknown step type %q", name, step.Type)
	}

	// Fan-in: dependency outputs concatenated in depends_on declaration order.
	var items []Item
	for _, dep := range step.DependsOn {
		items = append(items, outputs[dep]...)
	}
	in := ToolInput{Items: items, Config: step.Config, Inputs: run.Inputs}

	now := time.Now()
	err := r.client.StepLog.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetStepID(name).
		SetTool(step.Type).
		SetStatus(steplog.StatusRunning).
		SetStartedAt(now).
		SetInputCount(len(items)).
		SetInputHash(hashItems(items)).
		OnConflictColumns(steplog.FieldRunID, steplog.FieldStepID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("recording step start: %w", err)
	}
	emitter.Emit(ctx, Event{StepID: name, Status: StepRunning, Message: fmt.Sprintf("step %s started", name)})

	canceled := r.cancelCheck(run.ID)
	tasks := NewTaskQueue(name, r.cfg.SubTaskConcurrency)
	tasks.SetCancelCheck(canceled)
	sc := &StepContext{
		RunID:    run.ID,
		StepID:   name,
		Tool:     step.Type,
		Events:   emitter,
		Tasks:    tasks,
		Canceled: canceled,
	}

	var result *ToolResult
	operation := func() error {
		res, err := tool.Run(ctx, sc, in)
		if err != nil {
			if IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		// A batch step that produced nothing but errors failed as a whole;
		// with Strict set, any sub-task failure fails the step.
		if len(res.Errors) > 0 && (res.Strict || len(res.OutputData) == 0) {
			return backoff.Permanent(fmt.Errorf("%d of %d items failed: %s",
				len(res.Errors), len(in.Items), res.Errors[0].Message))
		}
		result = res
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.cfg.RetryInitialInterval
	err = backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.cfg.MaxRetries)), ctx),
		func(err error, next time.Duration) {
			slog.Warn("Step failed, retrying",
				"workflow_id", run.ID, "step_id", name, "retry_in", next, "error", err)
			emitter.Log(ctx, name, fmt.Sprintf("retrying in %s: %v", next.Round(time.Millisecond), err))
		},
	)

	completedAt := time.Now()
	if err != nil {
		if updErr := r.client.StepLog.Update().
			Where(steplog.RunID(run.ID), steplog.StepID(name)).
			SetStatus(steplog.StatusFailed).
			SetCompletedAt(completedAt).
			SetErrors([]map[string]interface{}{{
				"item_id": "", "kind": string(KindOf(err)), "message": err.Error(),
			}}).
			Exec(ctx); updErr != nil {
			slog.Error("Failed to record step failure",
				"workflow_id", run.ID, "step_id", name, "error", updErr)
		}
		emitter.Emit(ctx, Event{StepID: name, Status: StepFailed, Message: err.Error()})
		return nil, 0, err
	}

	metadata := map[string]interface{}{outputItemsKey: result.OutputData}
	if len(result.Metadata) > 0 {
		metadata["tool"] = result.Metadata
	}
	if updErr := r.client.StepLog.Update().
		Where(steplog.RunID(run.ID), steplog.StepID(name)).
		SetStatus(steplog.StatusCompleted).
		SetCompletedAt(completedAt).
		SetOutputCount(len(result.OutputData)).
		SetErrorCount(len(result.Errors)).
		SetErrors(itemErrorsJSON(result.Errors)).
		SetStepMetadata(metadata).
		Exec(ctx); updErr != nil {
		// The checkpoint is what resume depends on; without it the step
		// would silently re-run, so surface the write failure as a step failure.
		return nil, 0, fmt.Errorf("recording step completion: %w", updErr)
	}

	total := len(result.OutputData)
	emitter.Emit(ctx, Event{
		StepID:  name,
		Status:  StepCompleted,
		Current: &total,
		Total:   &total,
		Message: fmt.Sprintf("step %s completed: %d items, %d errors", name, len(result.OutputData), len(result.Errors)),
	})
	return result.OutputData, len(result.Errors), nil
}

// cancelCheck returns a predicate reporting whether the run has entered the
// canceling state. It reads from a background-derived context so a canceled
// step context cannot mask the check.
func (r *Runner) cancelCheck(runID string) func(ctx context.Context) bool {
	return func(ctx context.Context) bool {
		checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		run, err := r.client.WorkflowRun.Get(checkCtx, runID)
		if err != nil {
			slog.Warn("Cancel check failed", "workflow_id", runID, "error", err)
			return false
		}
		return run.Status == workflowrun.StatusCanceling
	}
}

// markRemaining writes terminal step_log rows for every step that never ran,
// so the logs view accounts for the whole DAG.
func (r *Runner) markRemaining(run *ent.WorkflowRun, def *Definition, executed map[string]bool, status string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range def.sortedStepNames() {
		if executed[name] {
			continue
		}
		err := r.client.StepLog.Create().
			SetID(uuid.New().String()).
			SetRunID(run.ID).
			SetStepID(name).
			SetTool(def.Steps[name].Type).
			SetStatus(steplog.Status(status)).
			OnConflictColumns(steplog.FieldRunID, steplog.FieldStepID).
			Ignore().
			Exec(ctx)
		if err != nil {
			slog.Warn("Failed to mark unreached step",
				"workflow_id", run.ID, "step_id", name, "status", status, "error", err)
		}
	}
}

// hashItems returns the SHA-256 hex digest of the canonical JSON encoding of
// a step's input items.
func hashItems(items []Item) string {
	data, err := json.Marshal(items)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// itemErrorsJSON converts per-item errors into the step_log JSON shape.
func itemErrorsJSON(errs []ItemError) []map[string]interface{} {
	if len(errs) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, len(errs))
	for i, e := range errs {
		out[i] = map[string]interface{}{
			"item_id": e.ItemID,
			"kind":    e.Kind,
			"message": e.Message,
		}
	}
	return out
}

// itemsFromMetadata restores a completed step's output snapshot from its
// step_metadata after a JSON round-trip.
func itemsFromMetadata(metadata map[string]interface{}) []Item {
	raw, ok := metadata[outputItemsKey].([]interface{})
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items
}
