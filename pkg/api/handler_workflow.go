package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kurt-labs/kurt/pkg/services"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// ListWorkflows handles GET /api/workflows.
func (s *Server) ListWorkflows(c *gin.Context) {
	opts := services.ListOptions{
		Status:       c.Query("status"),
		Search:       c.Query("search"),
		WorkflowType: c.Query("workflow_type"),
		ParentID:     c.Query("parent_id"),
		Limit:        intQuery(c, "limit", 0),
		Offset:       intQuery(c, "offset", 0),
	}
	list, err := s.workflows.ListWorkflows(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetWorkflow handles GET /api/workflows/:id.
func (s *Server) GetWorkflow(c *gin.Context) {
	detail, err := s.workflows.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetStatus handles GET /api/workflows/:id/status. The composite view: run
// detail, per-step states, and the current value of every emitted key.
func (s *Server) GetStatus(c *gin.Context) {
	status, err := s.workflows.LiveStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CancelWorkflow handles POST /api/workflows/:id/cancel. The durable flag is
// flipped first; if this instance is executing the workflow, its context is
// interrupted too so in-flight steps stop at the next boundary.
func (s *Server) CancelWorkflow(c *gin.Context) {
	workflowID := c.Param("id")
	if err := s.runtime.Cancel(c.Request.Context(), workflowID); err != nil {
		respondError(c, err)
		return
	}
	if s.pool != nil {
		s.pool.CancelRun(workflowID)
	}
	c.JSON(http.StatusAccepted, gin.H{"workflow_id": workflowID, "status": workflow.StatusCanceling})
}

// RetryWorkflow handles POST /api/workflows/:id/retry. Starts a fresh run
// with the same workflow and inputs and returns the new run's id.
func (s *Server) RetryWorkflow(c *gin.Context) {
	run, err := s.runtime.Retry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"workflow_id": run.ID,
		"retry_of":    c.Param("id"),
		"status":      string(run.Status),
	})
}

// GetLogs handles GET /api/workflows/:id/logs.
func (s *Server) GetLogs(c *gin.Context) {
	events, err := s.eventsSvc.ListEvents(c.Request.Context(),
		c.Param("id"), c.Query("step_id"),
		intQuery(c, "since_id", 0), intQuery(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
