package api

import (
	"log/slog"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// HandleWebSocket handles GET /ws. Upgrades the connection and hands it to
// the event hub, which owns the subscribe/catchup protocol.
func (s *Server) HandleWebSocket(c *gin.Context) {
	opts := &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedWSOrigins,
	}
	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.Warn("WebSocket accept failed", "error", err)
		return
	}
	s.hub.HandleConnection(c.Request.Context(), conn)
}
