// Package api serves the read-only HTTP surface: workflow listings,
// composite status, the event stream (paginated and live), and the
// WebSocket endpoint.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/database"
	"github.com/kurt-labs/kurt/pkg/events"
	"github.com/kurt-labs/kurt/pkg/queue"
	"github.com/kurt-labs/kurt/pkg/services"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// Server is the HTTP server and its collaborators.
type Server struct {
	db      *database.Client
	runtime *workflow.Runtime
	pool    *queue.WorkerPool
	hub     *events.Hub
	cfg     config.ServerConfig

	workflows *services.WorkflowService
	eventsSvc *services.EventService
	documents *services.DocumentService
	entities  *services.EntityService
	claims    *services.ClaimService

	httpServer *http.Server
}

// NewServer creates the API server. pool may be nil when the process runs
// without workers (health then omits queue depth).
func NewServer(db *database.Client, runtime *workflow.Runtime, pool *queue.WorkerPool, hub *events.Hub, cfg config.ServerConfig) *Server {
	return &Server{
		db:        db,
		runtime:   runtime,
		pool:      pool,
		hub:       hub,
		cfg:       cfg,
		workflows: services.NewWorkflowService(db.Client),
		eventsSvc: services.NewEventService(db.Client),
		documents: services.NewDocumentService(db.Client),
		entities:  services.NewEntityService(db.Client),
		claims:    services.NewClaimService(db.Client),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.Health)
	router.GET("/ws", s.HandleWebSocket)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/workflows", s.ListWorkflows)
		apiGroup.GET("/workflows/:id", s.GetWorkflow)
		apiGroup.GET("/workflows/:id/status", s.GetStatus)
		apiGroup.GET("/workflows/:id/status/stream", s.StreamStatus)
		apiGroup.GET("/workflows/:id/logs", s.GetLogs)
		apiGroup.GET("/workflows/:id/logs/stream", s.StreamLogs)
		apiGroup.POST("/workflows/:id/cancel", s.CancelWorkflow)
		apiGroup.POST("/workflows/:id/retry", s.RetryWorkflow)

		apiGroup.GET("/documents", s.ListDocuments)
		apiGroup.GET("/documents/:id", s.GetDocument)
		apiGroup.GET("/entities", s.ListEntities)
		apiGroup.GET("/entities/:id", s.GetEntity)
		apiGroup.GET("/claims", s.SearchClaims)
	}
	return router
}

// Start serves HTTP until Shutdown. Blocks.
func (s *Server) Start() error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{"status": "healthy", "database": dbHealth}
	if s.pool != nil {
		resp["queue"] = s.pool.Health()
	}
	c.JSON(http.StatusOK, resp)
}
