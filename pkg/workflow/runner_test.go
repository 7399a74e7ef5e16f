package workflow

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	util "github.com/kurt-labs/kurt/test/util"
)

// fakeTool runs a closure and counts invocations.
type fakeTool struct {
	name  string
	calls atomic.Int32
	run   func(ctx context.Context, sc *StepContext, in ToolInput) (*ToolResult, error)
}

func (f *fakeTool) Name() string { return f.name }

func (f *fakeTool) Run(ctx context.Context, sc *StepContext, in ToolInput) (*ToolResult, error) {
	f.calls.Add(1)
	return f.run(ctx, sc, in)
}

// newTestRuntime wires a runtime against a fresh test schema with millisecond
// retry backoff so transient-failure tests finish quickly.
func newTestRuntime(t *testing.T, tools ...Tool) (*Runtime, *ent.Client, *WorkflowRegistry) {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)

	registry := NewRegistry()
	for _, tool := range tools {
		registry.Register(tool)
	}
	workflows := NewWorkflowRegistry()
	runner := NewRunner(entClient, registry, workflows, nil, RunnerConfig{
		MaxRetries:           2,
		RetryInitialInterval: time.Millisecond,
		SubTaskConcurrency:   2,
	})
	rt := NewRuntime(entClient, runner, workflows, registry, nil, "test-pod")
	return rt, entClient, workflows
}

func stepLogByID(t *testing.T, client *ent.Client, runID, stepID string) *ent.StepLog {
	t.Helper()
	sl, err := client.StepLog.Query().
		Where(steplog.RunID(runID), steplog.StepID(stepID)).
		Only(context.Background())
	require.NoError(t, err)
	return sl
}

func TestRunSync_CompletesChain(t *testing.T) {
	var mu sync.Mutex
	var annotateGot []Item
	var annotateSource string

	produce := &fakeTool{name: "produce", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{OutputData: []Item{{"url": "https://example.com/a"}, {"url": "https://example.com/b"}}}, nil
	}}
	annotate := &fakeTool{name: "annotate", run: func(_ context.Context, _ *StepContext, in ToolInput) (*ToolResult, error) {
		mu.Lock()
		annotateGot = in.Items
		annotateSource = in.GetString("source", "")
		mu.Unlock()
		return &ToolResult{OutputData: in.Items}, nil
	}}

	rt, entClient, workflows := newTestRuntime(t, produce, annotate)
	workflows.Register(&Definition{
		Name:   "fetch-chain",
		Inputs: map[string]InputDef{"source": {Type: "string", Required: true}},
		Steps: map[string]StepDef{
			"produce":  {Type: "produce"},
			"annotate": {Type: "annotate", DependsOn: []string{"produce"}},
		},
	})

	run, err := rt.RunSync(context.Background(), "fetch-chain",
		map[string]any{"source": "sitemap"}, SubmitOptions{})
	require.NoError(t, err)

	assert.Equal(t, workflowrun.StatusCompleted, run.Status)
	assert.NotNil(t, run.StartedAt)
	assert.NotNil(t, run.CompletedAt)
	assert.Nil(t, run.ErrorMessage)

	// Dependency outputs arrived downstream, and workflow inputs were visible.
	require.Len(t, annotateGot, 2)
	assert.Equal(t, "https://example.com/a", annotateGot[0]["url"])
	assert.Equal(t, "sitemap", annotateSource)

	produceLog := stepLogByID(t, entClient, run.ID, "produce")
	assert.Equal(t, steplog.StatusCompleted, produceLog.Status)
	assert.Equal(t, 0, produceLog.InputCount)
	assert.Equal(t, 2, produceLog.OutputCount)

	annotateLog := stepLogByID(t, entClient, run.ID, "annotate")
	assert.Equal(t, steplog.StatusCompleted, annotateLog.Status)
	assert.Equal(t, 2, annotateLog.InputCount)
	assert.NotEmpty(t, annotateLog.InputHash)
}

func TestRunSync_ContinueOnError(t *testing.T) {
	var afterInputs int
	flaky := &fakeTool{name: "flaky", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return nil, Permanent(fmt.Errorf("source unreachable"))
	}}
	after := &fakeTool{name: "after", run: func(_ context.Context, _ *StepContext, in ToolInput) (*ToolResult, error) {
		afterInputs = len(in.Items)
		return &ToolResult{}, nil
	}}

	rt, entClient, workflows := newTestRuntime(t, flaky, after)
	workflows.Register(&Definition{
		Name: "tolerant",
		Steps: map[string]StepDef{
			"flaky": {Type: "flaky", ContinueOnError: true},
			"after": {Type: "after", DependsOn: []string{"flaky"}},
		},
	})

	run, err := rt.RunSync(context.Background(), "tolerant", nil, SubmitOptions{})
	require.NoError(t, err)

	// The failed step degrades the run to a warning; downstream still ran
	// with an empty input set.
	assert.Equal(t, workflowrun.StatusCompletedWithErrors, run.Status)
	assert.Equal(t, int32(1), after.calls.Load())
	assert.Equal(t, 0, afterInputs)

	assert.Equal(t, steplog.StatusFailed, stepLogByID(t, entClient, run.ID, "flaky").Status)
	assert.Equal(t, steplog.StatusCompleted, stepLogByID(t, entClient, run.ID, "after").Status)
}

func TestRunSync_HardFailureCancelsDownstream(t *testing.T) {
	extract := &fakeTool{name: "extract", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return nil, Permanent(fmt.Errorf("document store corrupted"))
	}}
	cluster := &fakeTool{name: "cluster", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{}, nil
	}}

	rt, entClient, workflows := newTestRuntime(t, extract, cluster)
	workflows.Register(&Definition{
		Name: "strict-chain",
		Steps: map[string]StepDef{
			"extract": {Type: "extract"},
			"cluster": {Type: "cluster", DependsOn: []string{"extract"}},
		},
	})

	run, err := rt.RunSync(context.Background(), "strict-chain", nil, SubmitOptions{})
	require.NoError(t, err)

	assert.Equal(t, workflowrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, `step "extract" failed`)

	// Downstream never executed; the aborted run marks it canceled.
	assert.Equal(t, int32(0), cluster.calls.Load())
	assert.Equal(t, steplog.StatusCanceled, stepLogByID(t, entClient, run.ID, "cluster").Status)

	extractLog := stepLogByID(t, entClient, run.ID, "extract")
	assert.Equal(t, steplog.StatusFailed, extractLog.Status)
	require.Len(t, extractLog.Errors, 1)
	assert.Equal(t, string(KindPermanent), extractLog.Errors[0]["kind"])
}

func TestRunSync_TransientErrorsRetried(t *testing.T) {
	wobbly := &fakeTool{name: "wobbly"}
	wobbly.run = func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		if wobbly.calls.Load() < 3 {
			return nil, Transient(fmt.Errorf("rate limited"))
		}
		return &ToolResult{OutputData: []Item{{"ok": true}}}, nil
	}

	rt, _, workflows := newTestRuntime(t, wobbly)
	workflows.Register(&Definition{
		Name:  "retrying",
		Steps: map[string]StepDef{"wobbly": {Type: "wobbly"}},
	})

	run, err := rt.RunSync(context.Background(), "retrying", nil, SubmitOptions{})
	require.NoError(t, err)

	// Two transient failures consumed the retry budget's first two attempts;
	// the third attempt succeeded.
	assert.Equal(t, workflowrun.StatusCompleted, run.Status)
	assert.Equal(t, int32(3), wobbly.calls.Load())
}

func TestRunSync_PerItemErrorsDegradeRun(t *testing.T) {
	partial := &fakeTool{name: "partial", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{
			OutputData: []Item{{"url": "https://example.com/ok"}},
			Errors:     []ItemError{{ItemID: "https://example.com/bad", Kind: string(KindPermanent), Message: "404"}},
		}, nil
	}}

	rt, entClient, workflows := newTestRuntime(t, partial)
	workflows.Register(&Definition{
		Name:  "partial-batch",
		Steps: map[string]StepDef{"partial": {Type: "partial"}},
	})

	run, err := rt.RunSync(context.Background(), "partial-batch", nil, SubmitOptions{})
	require.NoError(t, err)

	assert.Equal(t, workflowrun.StatusCompletedWithErrors, run.Status)

	sl := stepLogByID(t, entClient, run.ID, "partial")
	assert.Equal(t, steplog.StatusCompleted, sl.Status)
	assert.Equal(t, 1, sl.OutputCount)
	assert.Equal(t, 1, sl.ErrorCount)
	require.Len(t, sl.Errors, 1)
	assert.Equal(t, "https://example.com/bad", sl.Errors[0]["item_id"])
}

func TestRunSync_StrictStepFailsOnAnyItemError(t *testing.T) {
	strict := &fakeTool{name: "strict", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{
			OutputData: []Item{{"url": "https://example.com/ok"}},
			Errors:     []ItemError{{ItemID: "bad", Kind: string(KindPermanent), Message: "boom"}},
			Strict:     true,
		}, nil
	}}

	rt, _, workflows := newTestRuntime(t, strict)
	workflows.Register(&Definition{
		Name:  "all-or-nothing",
		Steps: map[string]StepDef{"strict": {Type: "strict"}},
	})

	run, err := rt.RunSync(context.Background(), "all-or-nothing", nil, SubmitOptions{})
	require.NoError(t, err)

	assert.Equal(t, workflowrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "1 of 0 items failed")
}

func TestRunSync_CancellationStopsBetweenLevels(t *testing.T) {
	rt, entClient, workflows := newTestRuntime(t)

	// The first step flips the run to canceling mid-flight, standing in for
	// an operator hitting cancel while the step executes.
	first := &fakeTool{name: "first", run: func(ctx context.Context, sc *StepContext, _ ToolInput) (*ToolResult, error) {
		err := entClient.WorkflowRun.Update().
			Where(workflowrun.ID(sc.RunID), workflowrun.StatusEQ(workflowrun.StatusRunning)).
			SetStatus(workflowrun.StatusCanceling).
			Exec(ctx)
		if err != nil {
			return nil, err
		}
		return &ToolResult{OutputData: []Item{{"n": 1}}}, nil
	}}
	second := &fakeTool{name: "second", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{}, nil
	}}
	rt.registry.Register(first)
	rt.registry.Register(second)

	workflows.Register(&Definition{
		Name: "cancelable",
		Steps: map[string]StepDef{
			"first":  {Type: "first"},
			"second": {Type: "second", DependsOn: []string{"first"}},
		},
	})

	run, err := rt.RunSync(context.Background(), "cancelable", nil, SubmitOptions{})
	require.NoError(t, err)

	assert.Equal(t, workflowrun.StatusCanceled, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, "canceled by user", *run.ErrorMessage)

	// The completed step keeps its checkpoint; the unreached one is marked.
	assert.Equal(t, int32(0), second.calls.Load())
	assert.Equal(t, steplog.StatusCompleted, stepLogByID(t, entClient, run.ID, "first").Status)
	assert.Equal(t, steplog.StatusCanceled, stepLogByID(t, entClient, run.ID, "second").Status)
}

func TestExecute_ResumesFromCheckpoint(t *testing.T) {
	var consumed []Item
	produce := &fakeTool{name: "produce", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return nil, fmt.Errorf("must not re-run a completed step")
	}}
	consume := &fakeTool{name: "consume", run: func(_ context.Context, _ *StepContext, in ToolInput) (*ToolResult, error) {
		consumed = in.Items
		return &ToolResult{OutputData: in.Items}, nil
	}}

	rt, entClient, workflows := newTestRuntime(t, produce, consume)
	workflows.Register(&Definition{
		Name: "resumable",
		Steps: map[string]StepDef{
			"produce": {Type: "produce"},
			"consume": {Type: "consume", DependsOn: []string{"produce"}},
		},
	})

	ctx := context.Background()
	run, err := entClient.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetWorkflowName("resumable").
		SetStatus(workflowrun.StatusRunning).
		SetInputs(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	// Checkpoint from a previous attempt: produce already completed with one
	// output item snapshotted in step_metadata.
	err = entClient.StepLog.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetStepID("produce").
		SetTool("produce").
		SetStatus(steplog.StatusCompleted).
		SetOutputCount(1).
		SetStepMetadata(map[string]interface{}{
			"output_items": []interface{}{map[string]interface{}{"url": "https://example.com/a"}},
		}).
		Exec(ctx)
	require.NoError(t, err)

	result := rt.Runner().Execute(ctx, run)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, int32(0), produce.calls.Load())
	assert.Equal(t, int32(1), consume.calls.Load())
	require.Len(t, consumed, 1)
	assert.Equal(t, "https://example.com/a", consumed[0]["url"])
}

func TestSubmit_Validation(t *testing.T) {
	noop := &fakeTool{name: "noop", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{}, nil
	}}
	rt, _, workflows := newTestRuntime(t, noop)
	workflows.Register(&Definition{
		Name:   "guarded",
		Inputs: map[string]InputDef{"project": {Type: "string", Required: true}},
		Steps:  map[string]StepDef{"noop": {Type: "noop"}},
	})
	workflows.Register(&Definition{
		Name: "cyclic",
		Steps: map[string]StepDef{
			"a": {Type: "noop", DependsOn: []string{"b"}},
			"b": {Type: "noop", DependsOn: []string{"a"}},
		},
	})

	ctx := context.Background()

	// An unknown workflow name is a lookup failure, not an input problem;
	// the API maps it to 404.
	_, err := rt.Submit(ctx, "no-such-workflow", nil, SubmitOptions{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "no-such-workflow")

	_, err = rt.Submit(ctx, "guarded", nil, SubmitOptions{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "project")

	_, err = rt.Submit(ctx, "cyclic", nil, SubmitOptions{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCancel_PendingRun(t *testing.T) {
	noop := &fakeTool{name: "noop", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{}, nil
	}}
	rt, entClient, workflows := newTestRuntime(t, noop)
	workflows.Register(&Definition{
		Name:  "queued",
		Steps: map[string]StepDef{"noop": {Type: "noop"}},
	})

	ctx := context.Background()
	run, err := rt.Submit(ctx, "queued", nil, SubmitOptions{})
	require.NoError(t, err)

	require.NoError(t, rt.Cancel(ctx, run.ID))

	got, err := entClient.WorkflowRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusCanceled, got.Status)
	assert.NotNil(t, got.CompletedAt)

	// A terminal run cannot be canceled again.
	err = rt.Cancel(ctx, run.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Unknown runs surface as not-found.
	err = rt.Cancel(ctx, "no-such-run")
	assert.True(t, IsNotFound(err))
}

func TestRetry_ClonesTerminalRun(t *testing.T) {
	noop := &fakeTool{name: "noop", run: func(_ context.Context, _ *StepContext, _ ToolInput) (*ToolResult, error) {
		return &ToolResult{}, nil
	}}
	rt, _, workflows := newTestRuntime(t, noop)
	workflows.Register(&Definition{
		Name:   "retryable",
		Inputs: map[string]InputDef{"source": {Type: "string", Required: true}},
		Steps:  map[string]StepDef{"noop": {Type: "noop"}},
	})

	ctx := context.Background()
	run, err := rt.RunSync(ctx, "retryable", map[string]any{"source": "manual"}, SubmitOptions{Priority: 7})
	require.NoError(t, err)
	require.Equal(t, workflowrun.StatusCompleted, run.Status)

	clone, err := rt.Retry(ctx, run.ID)
	require.NoError(t, err)
	assert.NotEqual(t, run.ID, clone.ID)
	assert.Equal(t, workflowrun.StatusPending, clone.Status)
	assert.Equal(t, "manual", clone.Inputs["source"])
	assert.Equal(t, 7, clone.Priority)
	assert.Equal(t, run.ID, clone.RunMetadata["retry_of"])

	// The clone is pending, hence not retryable itself.
	_, err = rt.Retry(ctx, clone.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
