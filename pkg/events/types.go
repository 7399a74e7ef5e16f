// Package events provides real-time event delivery via WebSocket/SSE and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two channels exist per the runtime's observability contract:
//
//   - Streams: append-only step events, persisted to the step_events table
//     (the table's auto-increment id is the catchup cursor) and broadcast
//     via NOTIFY in the same transaction.
//   - Current values: workflow status and stage markers, durable on the
//     workflow_runs row and broadcast as transient NOTIFY-only events.
//
// Channel naming: "workflow:{workflow_id}" for a single run,
// "workflows" for the global list page.
package events

// Persistent event types (stored in step_events + NOTIFY).
const (
	EventTypeStepEvent = "step.event"
)

// Transient event types (NOTIFY only; durable state lives on workflow_runs).
const (
	EventTypeWorkflowStatus = "workflow.status"
	EventTypeStageValue     = "workflow.stage"
)

// GlobalWorkflowsChannel carries workflow-level status events for the list view.
const GlobalWorkflowsChannel = "workflows"

// WorkflowChannel returns the channel name for a specific run's events.
func WorkflowChannel(workflowID string) string {
	return "workflow:" + workflowID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "workflow:abc-123"
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
