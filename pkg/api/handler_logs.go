package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kurt-labs/kurt/pkg/events"
)

// sseKeepaliveInterval is how often an idle SSE stream emits a comment to
// keep intermediaries from closing the connection.
const sseKeepaliveInterval = 30 * time.Second

// StreamStatus handles GET /api/workflows/:id/status/stream. Emits the
// current composite status immediately, then every event on the run's
// channel as it arrives.
func (s *Server) StreamStatus(c *gin.Context) {
	workflowID := c.Param("id")

	status, err := s.workflows.LiveStatus(c.Request.Context(), workflowID)
	if err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	sub, err := s.hub.Subscribe(c.Request.Context(), events.WorkflowChannel(workflowID), 0)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	sseHeaders(c)

	if snapshot, err := json.Marshal(status); err == nil {
		writeSSE(c, "status", snapshot)
	}
	flusher.Flush()

	s.pumpSSE(c, flusher, sub)
}

// StreamLogs handles GET /api/workflows/:id/logs/stream. Replays durable
// events after since_id, then follows the live stream.
func (s *Server) StreamLogs(c *gin.Context) {
	workflowID := c.Param("id")
	sinceID := intQuery(c, "since_id", 0)

	if _, err := s.workflows.GetWorkflow(c.Request.Context(), workflowID); err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	// Subscribe with catchup: the hub replays durable events after sinceID
	// before handing over to the live feed, so no event is skipped between
	// the replay query and the NOTIFY subscription.
	sub, err := s.hub.Subscribe(c.Request.Context(), events.WorkflowChannel(workflowID), sinceID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	sseHeaders(c)
	flusher.Flush()

	s.pumpSSE(c, flusher, sub)
}

func (s *Server) pumpSSE(c *gin.Context, flusher http.Flusher, sub *events.Subscription) {
	keepalive := time.NewTicker(sseKeepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-sub.Done:
			return
		case payload, ok := <-sub.Events:
			if !ok {
				return
			}
			writeSSE(c, "event", payload)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(c.Writer, ": keepalive\n\n")
			flusher.Flush()
		}
	}
}

func sseHeaders(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
}

func writeSSE(c *gin.Context, event string, data []byte) {
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, data)
}
