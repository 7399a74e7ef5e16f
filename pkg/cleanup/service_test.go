package cleanup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	"github.com/kurt-labs/kurt/pkg/config"
	util "github.com/kurt-labs/kurt/test/util"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cfg := &config.RetentionConfig{
		RunRetentionDays:     90,
		EventRetentionDays:   7,
		StagingRetentionDays: 30,
		CleanupInterval:      time.Hour,
	}
	return NewService(cfg, client), client
}

// createRun seeds a workflow run with one step log. completedAt nil means the
// run never finished.
func createRun(t *testing.T, client *ent.Client, id string, status workflowrun.Status, completedAt *time.Time) {
	t.Helper()
	ctx := context.Background()

	err := client.WorkflowRun.Create().
		SetID(id).
		SetWorkflowName("index").
		SetStatus(status).
		SetNillableCompletedAt(completedAt).
		Exec(ctx)
	require.NoError(t, err)

	err = client.StepLog.Create().
		SetID(id + "-log").
		SetRunID(id).
		SetStepID("map").
		SetTool("map").
		SetStatus(steplog.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)
}

func daysAgo(n int) *time.Time {
	ts := time.Now().AddDate(0, 0, -n)
	return &ts
}

func TestRunAll_DeletesExpiredRuns(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createRun(t, client, "wf-expired", workflowrun.StatusCompleted, daysAgo(120))
	createRun(t, client, "wf-recent", workflowrun.StatusCompleted, daysAgo(1))
	createRun(t, client, "wf-failed-old", workflowrun.StatusFailed, daysAgo(91))

	err := client.StepEvent.Create().
		SetRunID("wf-expired").
		SetStepID("map").
		SetStatus(stepevent.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	_, err = client.WorkflowRun.Get(ctx, "wf-expired")
	assert.True(t, ent.IsNotFound(err), "run past retention should be deleted")
	_, err = client.WorkflowRun.Get(ctx, "wf-failed-old")
	assert.True(t, ent.IsNotFound(err), "failed run past retention should be deleted")
	_, err = client.WorkflowRun.Get(ctx, "wf-recent")
	assert.NoError(t, err, "recent run must survive")

	// Step logs and events of deleted runs go with them.
	logs, err := client.StepLog.Query().
		Where(steplog.RunIDEQ("wf-expired")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, logs)

	events, err := client.StepEvent.Query().
		Where(stepevent.RunIDEQ("wf-expired")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, events)

	logs, err = client.StepLog.Query().
		Where(steplog.RunIDEQ("wf-recent")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logs)
}

func TestRunAll_NeverTouchesActiveRuns(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	// A completed_at far in the past must not matter while the status is
	// non-terminal (e.g. a retried run that is executing again).
	createRun(t, client, "wf-running", workflowrun.StatusRunning, daysAgo(365))
	createRun(t, client, "wf-pending", workflowrun.StatusPending, nil)
	createRun(t, client, "wf-canceling", workflowrun.StatusCanceling, daysAgo(365))

	svc.RunAll(ctx)

	count, err := client.WorkflowRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRunAll_EventTTL(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createRun(t, client, "wf-1", workflowrun.StatusCompleted, daysAgo(1))

	err := client.StepEvent.Create().
		SetRunID("wf-1").
		SetStepID("map").
		SetStatus(stepevent.StatusCompleted).
		SetCreatedAt(time.Now().AddDate(0, 0, -30)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.StepEvent.Create().
		SetRunID("wf-1").
		SetStepID("fetch").
		SetStatus(stepevent.StatusRunning).
		Exec(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	// Events age out independently of their run; the run itself is recent
	// and keeps its step logs.
	remaining, err := client.StepEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fetch", remaining[0].StepID)

	_, err = client.WorkflowRun.Get(ctx, "wf-1")
	assert.NoError(t, err)
}

func TestRunAll_StagingCleanup(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createRun(t, client, "wf-stale", workflowrun.StatusCompletedWithErrors, daysAgo(45))
	createRun(t, client, "wf-fresh", workflowrun.StatusCompleted, daysAgo(5))

	err := client.Document.Create().
		SetID("doc-1").
		SetSourceURL("https://example.com/guide").
		Exec(ctx)
	require.NoError(t, err)

	for i, wfID := range []string{"wf-stale", "wf-fresh"} {
		err = client.Discovery.Create().
			SetID(fmt.Sprintf("disc-%d", i)).
			SetWorkflowID(wfID).
			SetDocumentID("doc-1").
			Exec(ctx)
		require.NoError(t, err)

		err = client.SectionExtraction.Create().
			SetID(fmt.Sprintf("sec-%d", i)).
			SetWorkflowID(wfID).
			SetDocumentID("doc-1").
			SetSectionID(fmt.Sprintf("doc-1:s%d", i)).
			SetSectionIndex(0).
			SetContent("Example content.").
			Exec(ctx)
		require.NoError(t, err)
	}

	svc.RunAll(ctx)

	// Staging rows of the long-terminal workflow are gone; the run itself is
	// inside the run retention window and stays.
	count, err := client.Discovery.Query().
		Where(discovery.WorkflowIDEQ("wf-stale")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = client.SectionExtraction.Query().
		Where(sectionextraction.WorkflowIDEQ("wf-stale")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = client.WorkflowRun.Get(ctx, "wf-stale")
	assert.NoError(t, err)

	count, err = client.Discovery.Query().
		Where(discovery.WorkflowIDEQ("wf-fresh")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Canonical knowledge is never touched.
	_, err = client.Document.Get(ctx, "doc-1")
	assert.NoError(t, err)
}

func TestRunAll_Idempotent(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createRun(t, client, "wf-old", workflowrun.StatusCanceled, daysAgo(200))

	svc.RunAll(ctx)
	svc.RunAll(ctx)

	count, err := client.WorkflowRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
