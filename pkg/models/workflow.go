// Package models defines the response shapes shared by the service layer,
// the HTTP API, and the CLI.
package models

import "time"

// WorkflowSummary is one row of a workflow listing. Status carries the
// display value (PENDING, SUCCESS, ERROR, WARNING, CANCELLED).
type WorkflowSummary struct {
	WorkflowID   string     `json:"workflow_id"`
	WorkflowName string     `json:"workflow_name"`
	Status       string     `json:"status"`
	WorkflowType string     `json:"workflow_type,omitempty"`
	ParentID     string     `json:"parent_id,omitempty"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// WorkflowDetail extends the summary with inputs and metadata.
type WorkflowDetail struct {
	WorkflowSummary
	Inputs   map[string]interface{} `json:"inputs,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// WorkflowList is a paginated listing.
type WorkflowList struct {
	Workflows []WorkflowSummary `json:"workflows"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// StepStatus is the live state of one step within a workflow.
type StepStatus struct {
	StepID      string     `json:"step_id"`
	Tool        string     `json:"tool"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	InputCount  int        `json:"input_count"`
	OutputCount int        `json:"output_count"`
	ErrorCount  int        `json:"error_count"`
}

// LiveStatus is the composite status the status endpoint and its SSE stream
// serve: workflow state, per-step state, and the current-value store.
type LiveStatus struct {
	Workflow WorkflowDetail         `json:"workflow"`
	Steps    []StepStatus           `json:"steps"`
	Values   map[string]interface{} `json:"values,omitempty"`
}

// EventRecord is one persisted step event served by the logs endpoints.
// ID is the pagination cursor.
type EventRecord struct {
	ID        int                    `json:"id"`
	StepID    string                 `json:"step_id,omitempty"`
	Substep   string                 `json:"substep,omitempty"`
	Status    string                 `json:"status"`
	Current   *int                   `json:"current,omitempty"`
	Total     *int                   `json:"total,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Stream    string                 `json:"stream"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
