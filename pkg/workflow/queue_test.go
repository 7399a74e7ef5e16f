package workflow

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueue_OutcomesInEnqueueOrder(t *testing.T) {
	q := NewTaskQueue("test", 4)
	for i := 0; i < 10; i++ {
		i := i
		q.Enqueue(Task{
			ID: fmt.Sprintf("task-%d", i),
			Fn: func(ctx context.Context) (*ToolResult, error) {
				return &ToolResult{Metadata: map[string]any{"n": i}}, nil
			},
		})
	}

	outcomes := q.Join(context.Background())
	require.Len(t, outcomes, 10)
	for i, out := range outcomes {
		assert.Equal(t, fmt.Sprintf("task-%d", i), out.ID)
		require.NotNil(t, out.Result)
		assert.Equal(t, i, out.Result.Metadata["n"])
	}
}

func TestTaskQueue_ConcurrencyLimit(t *testing.T) {
	const limit = 3
	q := NewTaskQueue("test", limit)

	var inFlight, peak int32
	for i := 0; i < 20; i++ {
		q.Enqueue(Task{
			ID: fmt.Sprintf("task-%d", i),
			Fn: func(ctx context.Context) (*ToolResult, error) {
				cur := atomic.AddInt32(&inFlight, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return &ToolResult{}, nil
			},
		})
	}

	q.Join(context.Background())
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(limit))
	assert.Greater(t, atomic.LoadInt32(&peak), int32(0))
}

func TestTaskQueue_PriorityOrdersExecution(t *testing.T) {
	q := NewTaskQueue("test", 1)

	var mu sync.Mutex
	var order []string
	record := func(id string) func(ctx context.Context) (*ToolResult, error) {
		return func(ctx context.Context) (*ToolResult, error) {
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
			return &ToolResult{}, nil
		}
	}

	q.Enqueue(Task{ID: "low-a", Priority: 5, Fn: record("low-a")})
	q.Enqueue(Task{ID: "high", Priority: 1, Fn: record("high")})
	q.Enqueue(Task{ID: "low-b", Priority: 5, Fn: record("low-b")})

	outcomes := q.Join(context.Background())

	// Priority first, FIFO within a priority.
	assert.Equal(t, []string{"high", "low-a", "low-b"}, order)

	// Outcomes still come back in enqueue order.
	require.Len(t, outcomes, 3)
	assert.Equal(t, "low-a", outcomes[0].ID)
	assert.Equal(t, "high", outcomes[1].ID)
	assert.Equal(t, "low-b", outcomes[2].ID)
}

func TestTaskQueue_CancellationDrainsPending(t *testing.T) {
	q := NewTaskQueue("fetch", 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ran int32
	for i := 0; i < 10; i++ {
		i := i
		q.Enqueue(Task{
			ID: fmt.Sprintf("task-%d", i),
			Fn: func(ctx context.Context) (*ToolResult, error) {
				n := atomic.AddInt32(&ran, 1)
				if n == 3 {
					// Cancel while the third task is in flight; it still
					// finishes and reports normally.
					cancel()
					time.Sleep(10 * time.Millisecond)
				}
				return &ToolResult{}, nil
			},
		})
	}

	outcomes := q.Join(ctx)
	require.Len(t, outcomes, 10)

	var completed, skipped int
	for _, out := range outcomes {
		if out.Skipped {
			skipped++
			assert.Nil(t, out.Result)
		} else {
			completed++
			assert.NoError(t, out.Err)
		}
	}
	assert.Equal(t, 3, completed)
	assert.Equal(t, 7, skipped)
}

func TestTaskQueue_CancelCheckDrainsPending(t *testing.T) {
	// A user cancel flips the run's durable canceling flag; the join context
	// stays alive. The queue must still stop dispatching.
	q := NewTaskQueue("fetch", 1)

	var canceling atomic.Bool
	q.SetCancelCheck(func(ctx context.Context) bool {
		return canceling.Load()
	})

	var ran int32
	for i := 0; i < 10; i++ {
		q.Enqueue(Task{
			ID: fmt.Sprintf("batch-%d", i),
			Fn: func(ctx context.Context) (*ToolResult, error) {
				if atomic.AddInt32(&ran, 1) == 3 {
					canceling.Store(true)
				}
				return &ToolResult{}, nil
			},
		})
	}

	outcomes := q.Join(context.Background())
	require.Len(t, outcomes, 10)

	var completed, skipped int
	for _, out := range outcomes {
		if out.Skipped {
			skipped++
		} else {
			completed++
		}
	}
	assert.Equal(t, 3, completed)
	assert.Equal(t, 7, skipped)
	assert.Equal(t, int32(3), atomic.LoadInt32(&ran), "no task may run after the flag flips")
}

func TestTaskQueue_ErrorsStayPerTask(t *testing.T) {
	q := NewTaskQueue("test", 2)
	q.Enqueue(Task{ID: "ok", Fn: func(ctx context.Context) (*ToolResult, error) {
		return &ToolResult{}, nil
	}})
	q.Enqueue(Task{ID: "boom", Fn: func(ctx context.Context) (*ToolResult, error) {
		return nil, fmt.Errorf("engine exploded")
	}})

	outcomes := q.Join(context.Background())
	require.Len(t, outcomes, 2)
	assert.NoError(t, outcomes[0].Err)
	assert.EqualError(t, outcomes[1].Err, "engine exploded")
}

func TestTaskQueue_JoinEmpty(t *testing.T) {
	q := NewTaskQueue("test", 4)
	assert.Nil(t, q.Join(context.Background()))
	assert.Equal(t, 0, q.Len())
}

func TestTaskQueue_Reusable(t *testing.T) {
	q := NewTaskQueue("test", 2)

	q.Enqueue(Task{ID: "first", Fn: func(ctx context.Context) (*ToolResult, error) {
		return &ToolResult{}, nil
	}})
	first := q.Join(context.Background())
	require.Len(t, first, 1)

	q.Enqueue(Task{ID: "second", Fn: func(ctx context.Context) (*ToolResult, error) {
		return &ToolResult{}, nil
	}})
	second := q.Join(context.Background())
	require.Len(t, second, 1)
	assert.Equal(t, "second", second[0].ID)
}
