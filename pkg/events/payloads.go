package events

// StepEventPayload is the wire form of one append-only stream event.
// The db id is injected as db_event_id at publish time for cursor tracking.
type StepEventPayload struct {
	Type       string         `json:"type"`
	WorkflowID string         `json:"workflow_id"`
	StepID     string         `json:"step_id,omitempty"`
	Substep    string         `json:"substep,omitempty"`
	Status     string         `json:"status"`
	Current    *int           `json:"current,omitempty"`
	Total      *int           `json:"total,omitempty"`
	Message    string         `json:"message,omitempty"`
	Stream     string         `json:"stream,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

// WorkflowStatusPayload announces a workflow_run status transition.
type WorkflowStatusPayload struct {
	Type       string `json:"type"`
	WorkflowID string `json:"workflow_id"`
	Status     string `json:"status"`
	Display    string `json:"display,omitempty"`
	Stage      string `json:"stage,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// StageValuePayload announces a current-value update (SetEvent channel).
type StageValuePayload struct {
	Type       string `json:"type"`
	WorkflowID string `json:"workflow_id"`
	Key        string `json:"key"`
	Value      any    `json:"value"`
	Timestamp  string `json:"timestamp"`
}
