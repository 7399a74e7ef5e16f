package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how workflow runs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and executes runs.
	WorkerCount int `toml:"worker_count"`

	// MaxConcurrentRuns is the global limit of concurrent runs being
	// executed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int `toml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `toml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `toml:"poll_interval_jitter"`

	// RunTimeout is the maximum time a workflow run may execute.
	RunTimeout time.Duration `toml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `toml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration `toml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `toml:"orphan_threshold"`

	// OrphanMaxRequeues caps how often an orphaned run is requeued before
	// it is failed outright.
	OrphanMaxRequeues int `toml:"orphan_max_requeues"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at.
	HeartbeatInterval time.Duration `toml:"heartbeat_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       4,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              2 * time.Hour,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         3 * time.Minute,
		OrphanMaxRequeues:       3,
		HeartbeatInterval:       15 * time.Second,
	}
}
