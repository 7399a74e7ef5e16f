// Package queue provides the durable workflow run queue: worker pool,
// claiming, heartbeats, and orphan recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor executes a claimed workflow run to a terminal outcome.
// The executor writes step_log checkpoints progressively; the worker only
// handles claiming, heartbeat, and the terminal status transition.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.WorkflowRun) workflow.RunResult
}

// RunFinalizer records a run's terminal outcome (or requeues it).
// Implemented by workflow.Runtime.
type RunFinalizer interface {
	Finalize(ctx context.Context, runID string, result workflow.RunResult) error
}

// Config tunes the worker pool.
type Config struct {
	WorkerCount             int
	MaxConcurrentRuns       int
	PollInterval            time.Duration
	PollIntervalJitter      time.Duration
	RunTimeout              time.Duration
	HeartbeatInterval       time.Duration
	OrphanDetectionInterval time.Duration
	OrphanThreshold         time.Duration

	// OrphanMaxRequeues caps how often an orphaned run is put back on the
	// queue before it is failed outright.
	OrphanMaxRequeues int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		WorkerCount:             2,
		MaxConcurrentRuns:       4,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              2 * time.Hour,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         3 * time.Minute,
		OrphanMaxRequeues:       3,
	}
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
