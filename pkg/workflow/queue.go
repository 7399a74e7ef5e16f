package workflow

import (
	"context"
	"sort"
	"sync"
)

// Task is one unit of fan-out work enqueued by a step. Tasks inherit the
// parent workflow's identity for UI linking via the substep field on events.
type Task struct {
	ID       string
	Priority int
	Fn       func(ctx context.Context) (*ToolResult, error)

	seq int // enqueue order, FIFO tie-break within a priority
}

// TaskOutcome pairs a task with its result or error.
type TaskOutcome struct {
	ID      string
	Result  *ToolResult
	Err     error
	Skipped bool // drained without execution after cancellation
}

// TaskQueue is a bounded-concurrency sub-task queue. It is FIFO with optional
// priority ordering (lower first). A step enqueues tasks then blocks on Join;
// cancellation drains pending tasks without running them while in-flight
// tasks run to completion and report normally. Cancellation is observed two
// ways: the Join context, and an optional cancel predicate polled between
// tasks (a user cancel flips a durable flag rather than the step context).
type TaskQueue struct {
	name        string
	concurrency int
	canceled    func(ctx context.Context) bool

	mu      sync.Mutex
	pending []*Task
	seq     int

	outcomes []TaskOutcome
}

// NewTaskQueue creates a named queue with the given concurrency limit.
// Concurrency below 1 is clamped to 1.
func NewTaskQueue(name string, concurrency int) *TaskQueue {
	if concurrency < 1 {
		concurrency = 1
	}
	return &TaskQueue{name: name, concurrency: concurrency}
}

// Name returns the queue name.
func (q *TaskQueue) Name() string { return q.name }

// SetCancelCheck installs a predicate consulted before each task starts.
// Once it reports true, tasks not yet started are drained as skipped. It must
// be set before Join runs.
func (q *TaskQueue) SetCancelCheck(fn func(ctx context.Context) bool) {
	q.canceled = fn
}

func (q *TaskQueue) isCanceled(ctx context.Context) bool {
	return q.canceled != nil && q.canceled(ctx)
}

// Enqueue adds a task to the queue. Tasks execute when Join runs.
func (q *TaskQueue) Enqueue(t Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	t.seq = q.seq
	q.seq++
	q.pending = append(q.pending, &t)
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Join runs all pending tasks with at most `concurrency` in flight and
// returns outcomes in enqueue order. When ctx is canceled, tasks not yet
// started are drained and reported as skipped; running tasks finish.
func (q *TaskQueue) Join(ctx context.Context) []TaskOutcome {
	q.mu.Lock()
	tasks := q.pending
	q.pending = nil
	q.mu.Unlock()

	if len(tasks) == 0 {
		return nil
	}

	// Renumber so seq is the position within this Join batch; the queue may
	// be reused across multiple enqueue/join cycles within one step.
	for i, t := range tasks {
		t.seq = i
	}

	// Priority ascending, then FIFO.
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		return tasks[i].seq < tasks[j].seq
	})

	outcomes := make([]TaskOutcome, len(tasks))
	next := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < q.concurrency && w < len(tasks); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				t := tasks[i]
				if q.isCanceled(ctx) {
					outcomes[i] = TaskOutcome{ID: t.ID, Skipped: true}
					continue
				}
				res, err := t.Fn(ctx)
				outcomes[i] = TaskOutcome{ID: t.ID, Result: res, Err: err}
			}
		}()
	}

	// Feed indices; stop feeding (drain) once ctx is canceled.
	for i := range tasks {
		select {
		case <-ctx.Done():
			for j := i; j < len(tasks); j++ {
				outcomes[j] = TaskOutcome{ID: tasks[j].ID, Skipped: true}
			}
			close(next)
			wg.Wait()
			return restoreOrder(tasks, outcomes)
		case next <- i:
		}
	}
	close(next)
	wg.Wait()

	return restoreOrder(tasks, outcomes)
}

// restoreOrder maps outcomes from execution (priority) order back to the
// original enqueue order so fan-in stays deterministic.
func restoreOrder(tasks []*Task, outcomes []TaskOutcome) []TaskOutcome {
	ordered := make([]TaskOutcome, len(outcomes))
	idx := make([]int, len(tasks))
	for i, t := range tasks {
		idx[i] = t.seq
	}
	for i, out := range outcomes {
		ordered[idx[i]] = out
	}
	return ordered
}
