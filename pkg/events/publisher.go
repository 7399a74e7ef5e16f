package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher publishes workflow events for live delivery.
// Step events are persisted to the step_events table then broadcast via
// NOTIFY in the same transaction (pg_notify is transactional — held until
// COMMIT, so subscribers never see an event that failed to persist).
// Status and stage updates are NOTIFY-only: their durable state lives on
// the workflow_runs row.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishStepEvent persists a step event and broadcasts it to the run's
// channel. Returns the monotonic event id (the stream cursor).
func (p *Publisher) PublishStepEvent(ctx context.Context, payload StepEventPayload) (int64, error) {
	payload.Type = EventTypeStepEvent
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if payload.Stream == "" {
		payload.Stream = "progress"
	}

	metadataJSON, err := json.Marshal(payload.Metadata)
	if err != nil {
		return 0, fmt.Errorf("marshaling step event metadata: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO step_events (run_id, step_id, substep, status, current, total, message, stream, event_metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		payload.WorkflowID, payload.StepID, payload.Substep, payload.Status,
		payload.Current, payload.Total, payload.Message, payload.Stream,
		metadataJSON, time.Now().UTC(),
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("persisting step event: %w", err)
	}

	notifyPayload, err := injectEventID(payload, eventID)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)",
		WorkflowChannel(payload.WorkflowID), notifyPayload)
	if err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing event transaction: %w", err)
	}
	return eventID, nil
}

// PublishWorkflowStatus broadcasts a status transition to the run channel and
// the global workflows channel. Best-effort: the durable status is already on
// workflow_runs, so a failed notify is logged and swallowed by callers.
func (p *Publisher) PublishWorkflowStatus(ctx context.Context, payload WorkflowStatusPayload) error {
	payload.Type = EventTypeWorkflowStatus
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling workflow status payload: %w", err)
	}

	var firstErr error
	if err := p.notifyOnly(ctx, WorkflowChannel(payload.WorkflowID), data); err != nil {
		slog.Warn("Failed to publish workflow status to run channel",
			"workflow_id", payload.WorkflowID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalWorkflowsChannel, data); err != nil {
		slog.Warn("Failed to publish workflow status to global channel",
			"workflow_id", payload.WorkflowID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishStageValue broadcasts a current-value update (NOTIFY only).
func (p *Publisher) PublishStageValue(ctx context.Context, payload StageValuePayload) error {
	payload.Type = EventTypeStageValue
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling stage value payload: %w", err)
	}
	return p.notifyOnly(ctx, WorkflowChannel(payload.WorkflowID), data)
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persistence.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectEventID adds db_event_id to the NOTIFY copy of a step event so
// clients can track their catchup cursor, then applies size truncation.
func injectEventID(payload StepEventPayload, eventID int64) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling step event payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("unmarshaling payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields
// so the client can fetch the full event from the database.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type       string `json:"type"`
		WorkflowID string `json:"workflow_id"`
		DBEventID  *int64 `json:"db_event_id"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("extracting routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"workflow_id": routing.WorkflowID,
		"truncated":   true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}
	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("marshaling truncated payload: %w", err)
	}
	return string(out), nil
}
