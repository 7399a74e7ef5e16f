package workflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/pkg/events"
)

// Stream names for the append-only channel.
const (
	StreamProgress = "progress"
	StreamLogs     = "logs"
)

// Event is one entry written to the append-only stream.
type Event struct {
	StepID   string
	Substep  string
	Status   string // pending, running, progress, completed, failed
	Current  *int
	Total    *int
	Message  string
	Stream   string // defaults to progress
	Metadata map[string]any
}

// Emitter is the runtime's handle on the two observability channels: the
// append-only stream (step events) and the current-value store (stage
// markers on the workflow_run row). Emission is best-effort; failures are
// logged and never fail a step.
type Emitter struct {
	runID     string
	client    *ent.Client
	publisher *events.Publisher

	// valueMu serializes SetValue's read-modify-write of run_metadata;
	// steps within a level run concurrently and share this emitter.
	valueMu sync.Mutex
}

// NewEmitter creates an emitter for one workflow run. publisher may be nil
// (event streaming disabled, e.g. in unit tests).
func NewEmitter(runID string, client *ent.Client, publisher *events.Publisher) *Emitter {
	return &Emitter{runID: runID, client: client, publisher: publisher}
}

// RunID returns the workflow run this emitter belongs to.
func (e *Emitter) RunID() string { return e.runID }

// Emit appends an event to the stream.
func (e *Emitter) Emit(ctx context.Context, ev Event) {
	if e == nil || e.publisher == nil {
		return
	}
	_, err := e.publisher.PublishStepEvent(ctx, events.StepEventPayload{
		WorkflowID: e.runID,
		StepID:     ev.StepID,
		Substep:    ev.Substep,
		Status:     ev.Status,
		Current:    ev.Current,
		Total:      ev.Total,
		Message:    ev.Message,
		Stream:     ev.Stream,
		Metadata:   ev.Metadata,
	})
	if err != nil {
		slog.Warn("Failed to publish step event",
			"workflow_id", e.runID, "step_id", ev.StepID, "error", err)
	}
}

// Log appends a message to the logs stream.
func (e *Emitter) Log(ctx context.Context, stepID, message string) {
	e.Emit(ctx, Event{StepID: stepID, Status: "progress", Message: message, Stream: StreamLogs})
}

// Progress appends a counted progress event for a step or substep.
func (e *Emitter) Progress(ctx context.Context, stepID, substep string, current, total int, message string) {
	e.Emit(ctx, Event{
		StepID:  stepID,
		Substep: substep,
		Status:  "progress",
		Current: &current,
		Total:   &total,
		Message: message,
	})
}

// SetValue writes a current-value entry (e.g. stage=fetching). The value is
// durable in workflow_run.run_metadata under the "values" key; a transient
// notify fans it out to live subscribers. Reads return the last-written value.
func (e *Emitter) SetValue(ctx context.Context, key string, value any) {
	if e == nil || e.client == nil {
		return
	}

	e.valueMu.Lock()
	defer e.valueMu.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run, err := e.client.WorkflowRun.Get(writeCtx, e.runID)
	if err != nil {
		slog.Warn("SetValue: failed to load run", "workflow_id", e.runID, "error", err)
		return
	}

	metadata := run.RunMetadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	values, _ := metadata["values"].(map[string]interface{})
	if values == nil {
		values = map[string]interface{}{}
	}
	values[key] = value
	metadata["values"] = values

	if err := e.client.WorkflowRun.UpdateOneID(e.runID).
		SetRunMetadata(metadata).
		Exec(writeCtx); err != nil {
		slog.Warn("SetValue: failed to persist", "workflow_id", e.runID, "key", key, "error", err)
		return
	}

	if e.publisher != nil {
		if err := e.publisher.PublishStageValue(ctx, events.StageValuePayload{
			WorkflowID: e.runID,
			Key:        key,
			Value:      value,
		}); err != nil {
			slog.Warn("SetValue: notify failed", "workflow_id", e.runID, "key", key, "error", err)
		}
	}
}

// Values returns the current-value store for a run.
func Values(run *ent.WorkflowRun) map[string]interface{} {
	if run == nil || run.RunMetadata == nil {
		return nil
	}
	values, _ := run.RunMetadata["values"].(map[string]interface{})
	return values
}
