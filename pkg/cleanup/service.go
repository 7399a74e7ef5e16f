// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/fetchdocument"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	"github.com/kurt-labs/kurt/pkg/config"
)

// terminalStatuses are the workflow states retention may touch. Runs still
// pending or executing are never cleaned.
var terminalStatuses = []workflowrun.Status{
	workflowrun.StatusCompleted,
	workflowrun.StatusCompletedWithErrors,
	workflowrun.StatusFailed,
	workflowrun.StatusCanceled,
}

// Service periodically enforces retention policies:
//   - Deletes step_events past their TTL
//   - Deletes staging rows of long-terminal workflows
//   - Deletes terminal workflow runs (and their step logs) past retention
//
// Canonical knowledge (documents, entities, claims) is never touched.
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"event_retention_days", s.config.EventRetentionDays,
		"staging_retention_days", s.config.StagingRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one cleanup pass.
func (s *Service) RunAll(ctx context.Context) {
	s.cleanupEvents(ctx)
	s.cleanupStaging(ctx)
	s.cleanupRuns(ctx)
}

func (s *Service) cleanupEvents(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.EventRetentionDays)
	count, err := s.client.StepEvent.Delete().
		Where(stepevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old step events", "count", count)
	}
}

// cleanupStaging removes per-workflow staging rows once the workflow has
// been terminal longer than the staging retention window.
func (s *Service) cleanupStaging(ctx context.Context) {
	runIDs, err := s.expiredRunIDs(ctx, s.config.StagingRetentionDays)
	if err != nil {
		slog.Error("Retention: loading expired workflows failed", "error", err)
		return
	}
	if len(runIDs) == 0 {
		return
	}

	total := 0
	for _, del := range []func(context.Context, []string) (int, error){
		s.deleteDiscoveries,
		s.deleteFetchDocuments,
		s.deleteSectionExtractions,
		s.deleteEntityResolutions,
		s.deleteClaimGroups,
		s.deleteClaimResolutions,
	} {
		count, err := del(ctx, runIDs)
		if err != nil {
			slog.Error("Retention: staging cleanup failed", "error", err)
			return
		}
		total += count
	}

	if total > 0 {
		slog.Info("Retention: deleted staging rows",
			"count", total, "workflows", len(runIDs))
	}
}

// cleanupRuns removes terminal workflow runs past the run retention window,
// step logs first.
func (s *Service) cleanupRuns(ctx context.Context) {
	runIDs, err := s.expiredRunIDs(ctx, s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: loading expired workflows failed", "error", err)
		return
	}
	if len(runIDs) == 0 {
		return
	}

	if _, err := s.client.StepLog.Delete().
		Where(steplog.RunIDIn(runIDs...)).
		Exec(ctx); err != nil {
		slog.Error("Retention: step log cleanup failed", "error", err)
		return
	}
	if _, err := s.client.StepEvent.Delete().
		Where(stepevent.RunIDIn(runIDs...)).
		Exec(ctx); err != nil {
		slog.Error("Retention: run event cleanup failed", "error", err)
		return
	}

	count, err := s.client.WorkflowRun.Delete().
		Where(workflowrun.IDIn(runIDs...)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: run cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old workflow runs", "count", count)
	}
}

// expiredRunIDs returns ids of runs that reached a terminal state more than
// the given number of days ago.
func (s *Service) expiredRunIDs(ctx context.Context, days int) ([]string, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	ids, err := s.client.WorkflowRun.Query().
		Where(
			workflowrun.StatusIn(terminalStatuses...),
			workflowrun.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying expired workflow runs: %w", err)
	}
	return ids, nil
}

func (s *Service) deleteDiscoveries(ctx context.Context, runIDs []string) (int, error) {
	return s.client.Discovery.Delete().
		Where(discovery.WorkflowIDIn(runIDs...)).
		Exec(ctx)
}

func (s *Service) deleteFetchDocuments(ctx context.Context, runIDs []string) (int, error) {
	return s.client.FetchDocument.Delete().
		Where(fetchdocument.WorkflowIDIn(runIDs...)).
		Exec(ctx)
}

func (s *Service) deleteSectionExtractions(ctx context.Context, runIDs []string) (int, error) {
	return s.client.SectionExtraction.Delete().
		Where(sectionextraction.WorkflowIDIn(runIDs...)).
		Exec(ctx)
}

func (s *Service) deleteEntityResolutions(ctx context.Context, runIDs []string) (int, error) {
	return s.client.EntityResolution.Delete().
		Where(entityresolution.WorkflowIDIn(runIDs...)).
		Exec(ctx)
}

func (s *Service) deleteClaimGroups(ctx context.Context, runIDs []string) (int, error) {
	return s.client.ClaimGroup.Delete().
		Where(claimgroup.WorkflowIDIn(runIDs...)).
		Exec(ctx)
}

func (s *Service) deleteClaimResolutions(ctx context.Context, runIDs []string) (int, error) {
	return s.client.ClaimResolution.Delete().
		Where(claimresolution.WorkflowIDIn(runIDs...)).
		Exec(ctx)
}
