package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	"github.com/kurt-labs/kurt/pkg/models"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// WorkflowService serves workflow run listings and composite status.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// ListOptions filter a workflow listing. Status takes a display value; the
// inverse mapping expands it to the matching internal statuses.
type ListOptions struct {
	Status       string
	Search       string
	WorkflowType string
	ParentID     string
	Limit        int
	Offset       int
}

// ListWorkflows returns a filtered, paginated workflow listing.
func (s *WorkflowService) ListWorkflows(ctx context.Context, opts ListOptions) (*models.WorkflowList, error) {
	query := s.client.WorkflowRun.Query()

	if opts.Status != "" {
		internal := workflow.InternalStatuses(opts.Status)
		if len(internal) == 0 {
			return nil, NewValidationError("status", fmt.Sprintf("unknown display status %q", opts.Status))
		}
		statuses := make([]workflowrun.Status, len(internal))
		for i, st := range internal {
			statuses[i] = workflowrun.Status(st)
		}
		query = query.Where(workflowrun.StatusIn(statuses...))
	}
	if opts.Search != "" {
		query = query.Where(workflowrun.WorkflowNameContainsFold(opts.Search))
	}
	if opts.ParentID != "" {
		query = query.Where(workflowrun.ParentWorkflowID(opts.ParentID))
	}
	if opts.WorkflowType != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(workflowrun.FieldRunMetadata, opts.WorkflowType, sqljson.Path("workflow_type")))
		})
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting workflows: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Order(workflowrun.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workflows: %w", err)
	}

	list := &models.WorkflowList{
		Workflows: make([]models.WorkflowSummary, 0, len(runs)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for _, run := range runs {
		list.Workflows = append(list.Workflows, summarize(run))
	}
	return list, nil
}

// GetWorkflow returns one workflow's detail.
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*models.WorkflowDetail, error) {
	run, err := s.client.WorkflowRun.Get(ctx, workflowID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading workflow %s: %w", workflowID, err)
	}
	detail := detailOf(run)
	return &detail, nil
}

// LiveStatus returns the composite status: workflow detail, step states, and
// the current-value store.
func (s *WorkflowService) LiveStatus(ctx context.Context, workflowID string) (*models.LiveStatus, error) {
	run, err := s.client.WorkflowRun.Get(ctx, workflowID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading workflow %s: %w", workflowID, err)
	}

	logs, err := s.client.StepLog.Query().
		Where(steplog.RunID(workflowID)).
		Order(steplog.ByStartedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading step logs for %s: %w", workflowID, err)
	}

	status := &models.LiveStatus{
		Workflow: detailOf(run),
		Steps:    make([]models.StepStatus, 0, len(logs)),
		Values:   workflow.Values(run),
	}
	for _, l := range logs {
		step := models.StepStatus{
			StepID:      l.StepID,
			Tool:        l.Tool,
			Status:      string(l.Status),
			InputCount:  l.InputCount,
			OutputCount: l.OutputCount,
			ErrorCount:  l.ErrorCount,
		}
		step.StartedAt = l.StartedAt
		step.CompletedAt = l.CompletedAt
		status.Steps = append(status.Steps, step)
	}
	return status, nil
}

func summarize(run *ent.WorkflowRun) models.WorkflowSummary {
	summary := models.WorkflowSummary{
		WorkflowID:   run.ID,
		WorkflowName: run.WorkflowName,
		Status:       workflow.DisplayStatus(string(run.Status)),
		CreatedAt:    run.CreatedAt,
		StartedAt:    run.StartedAt,
		CompletedAt:  run.CompletedAt,
	}
	if run.ParentWorkflowID != nil {
		summary.ParentID = *run.ParentWorkflowID
	}
	if run.ErrorMessage != nil {
		summary.Error = *run.ErrorMessage
	}
	if run.RunMetadata != nil {
		if t, ok := run.RunMetadata["workflow_type"].(string); ok {
			summary.WorkflowType = t
		}
	}
	return summary
}

func detailOf(run *ent.WorkflowRun) models.WorkflowDetail {
	return models.WorkflowDetail{
		WorkflowSummary: summarize(run),
		Inputs:          run.Inputs,
		Metadata:        run.RunMetadata,
	}
}
