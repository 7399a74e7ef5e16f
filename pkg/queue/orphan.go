package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and puts
// them back on the pending queue so another worker resumes them from the
// last completed step. A run orphaned too many times is failed instead.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.WorkflowRun.Query().
		Where(
			workflowrun.StatusEQ(workflowrun.StatusRunning),
			workflowrun.LastHeartbeatAtNotNil(),
			workflowrun.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"workflow_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun requeues a single orphaned run, or fails it once the
// requeue budget is exhausted.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.WorkflowRun) error {
	log := slog.With("workflow_id", run.ID, "old_pod_id", run.PodID)

	lastHeartbeat := "unknown"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}

	requeues := orphanRequeues(run.RunMetadata)
	if requeues >= p.config.OrphanMaxRequeues {
		err := run.Update().
			SetStatus(workflowrun.StatusFailed).
			SetCompletedAt(time.Now()).
			SetErrorMessage(fmt.Sprintf("Orphaned %d times; last heartbeat from pod %s at %s", requeues, podID, lastHeartbeat)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to fail exhausted orphan: %w", err)
		}
		log.Error("Orphaned run failed after exhausting requeue budget",
			"requeues", requeues, "last_heartbeat", lastHeartbeat)
		return nil
	}

	metadata := run.RunMetadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["orphan_requeues"] = requeues + 1

	// Conditional on still being running: the owning pod may have come back
	// and finished between the scan and this write.
	n, err := p.client.WorkflowRun.Update().
		Where(
			workflowrun.ID(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusRunning),
		).
		SetStatus(workflowrun.StatusPending).
		SetRunMetadata(metadata).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned run: %w", err)
	}
	if n == 0 {
		log.Info("Orphan recovered itself before requeue")
		return nil
	}

	log.Warn("Orphaned run requeued for resume",
		"requeues", requeues+1, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues runs owned by this pod that were running
// when the pod previously crashed. Their step_log checkpoints survive, so a
// worker picks them up and resumes from the last completed step.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.WorkflowRun.Query().
		Where(
			workflowrun.StatusEQ(workflowrun.StatusRunning),
			workflowrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, run := range orphans {
		err := run.Update().
			SetStatus(workflowrun.StatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"workflow_id", run.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "workflow_id", run.ID)
	}

	return nil
}

// orphanRequeues reads the requeue counter out of run metadata, tolerating
// the float64 shape JSON round-trips produce.
func orphanRequeues(metadata map[string]interface{}) int {
	switch v := metadata["orphan_requeues"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
