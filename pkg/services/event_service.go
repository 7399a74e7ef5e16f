package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/pkg/events"
	"github.com/kurt-labs/kurt/pkg/models"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// EventService serves the persisted step-event stream. It backs the logs
// endpoints and implements events.CatchupQuerier for the hub.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListEvents returns step events with id > sinceID for a workflow, oldest
// first, optionally restricted to one step.
func (s *EventService) ListEvents(ctx context.Context, workflowID, stepID string, sinceID, limit int) ([]models.EventRecord, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	query := s.client.StepEvent.Query().
		Where(
			stepevent.RunID(workflowID),
			stepevent.IDGT(sinceID),
		)
	if stepID != "" {
		query = query.Where(stepevent.StepID(stepID))
	}

	rows, err := query.
		Order(stepevent.ByID()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events for %s: %w", workflowID, err)
	}

	out := make([]models.EventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordOf(row))
	}
	return out, nil
}

// GetCatchupEvents implements events.CatchupQuerier: persisted events with
// id > sinceID in the wire payload shape live subscribers receive.
func (s *EventService) GetCatchupEvents(ctx context.Context, workflowID string, sinceID, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.StepEvent.Query().
		Where(
			stepevent.RunID(workflowID),
			stepevent.IDGT(sinceID),
		).
		Order(stepevent.ByID()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catchup events for %s: %w", workflowID, err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		payload := map[string]interface{}{
			"type":        events.EventTypeStepEvent,
			"workflow_id": row.RunID,
			"status":      string(row.Status),
			"stream":      row.Stream,
			"timestamp":   row.CreatedAt.UTC().Format(time.RFC3339Nano),
			"db_event_id": int64(row.ID),
		}
		if row.StepID != "" {
			payload["step_id"] = row.StepID
		}
		if row.Substep != "" {
			payload["substep"] = row.Substep
		}
		if row.Current != nil {
			payload["current"] = *row.Current
		}
		if row.Total != nil {
			payload["total"] = *row.Total
		}
		if row.Message != "" {
			payload["message"] = row.Message
		}
		if len(row.EventMetadata) > 0 {
			payload["metadata"] = row.EventMetadata
		}
		out = append(out, events.CatchupEvent{ID: row.ID, Payload: payload})
	}
	return out, nil
}

func recordOf(row *ent.StepEvent) models.EventRecord {
	return models.EventRecord{
		ID:        row.ID,
		StepID:    row.StepID,
		Substep:   row.Substep,
		Status:    string(row.Status),
		Current:   row.Current,
		Total:     row.Total,
		Message:   row.Message,
		Stream:    row.Stream,
		Metadata:  row.EventMetadata,
		CreatedAt: row.CreatedAt,
	}
}
