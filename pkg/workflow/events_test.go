package workflow

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	util "github.com/kurt-labs/kurt/test/util"
)

func createEmitterRun(t *testing.T, client *ent.Client) *ent.WorkflowRun {
	t.Helper()
	run, err := client.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetWorkflowName("ingest").
		SetStatus(workflowrun.StatusRunning).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestSetValue_Durable(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	run := createEmitterRun(t, client)
	ctx := context.Background()

	e := NewEmitter(run.ID, client, nil)
	e.SetValue(ctx, "stage", "fetching")
	e.SetValue(ctx, "stage", "indexing")
	e.SetValue(ctx, "documents_total", 42)

	got, err := client.WorkflowRun.Get(ctx, run.ID)
	require.NoError(t, err)

	values := Values(got)
	require.NotNil(t, values)
	assert.Equal(t, "indexing", values["stage"], "reads return the last-written value")
	assert.EqualValues(t, 42, values["documents_total"])
}

func TestSetValue_ConcurrentStepsKeepAllKeys(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	run := createEmitterRun(t, client)
	ctx := context.Background()

	// Steps within a level run in parallel and write through the same
	// emitter; no write may be lost to another's read-modify-write.
	e := NewEmitter(run.ID, client, nil)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e.SetValue(ctx, fmt.Sprintf("step_%d_count", i), i)
		}(i)
	}
	wg.Wait()

	got, err := client.WorkflowRun.Get(ctx, run.ID)
	require.NoError(t, err)

	values := Values(got)
	require.NotNil(t, values)
	for i := 0; i < writers; i++ {
		assert.Contains(t, values, fmt.Sprintf("step_%d_count", i))
	}
}
