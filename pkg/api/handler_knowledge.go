package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDocuments handles GET /api/documents.
func (s *Server) ListDocuments(c *gin.Context) {
	docs, total, err := s.documents.ListDocuments(c.Request.Context(),
		c.Query("search"), c.Query("source_type"),
		intQuery(c, "limit", 0), intQuery(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "total": total})
}

// GetDocument handles GET /api/documents/:id.
func (s *Server) GetDocument(c *gin.Context) {
	doc, err := s.documents.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListEntities handles GET /api/entities.
func (s *Server) ListEntities(c *gin.Context) {
	entities, total, err := s.entities.ListEntities(c.Request.Context(),
		c.Query("search"), c.Query("entity_type"),
		intQuery(c, "limit", 0), intQuery(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entities": entities, "total": total})
}

// GetEntity handles GET /api/entities/:id. Merged-away entities resolve to
// the surviving entity.
func (s *Server) GetEntity(c *gin.Context) {
	entity, err := s.entities.GetEntity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// SearchClaims handles GET /api/claims.
func (s *Server) SearchClaims(c *gin.Context) {
	claims, total, err := s.claims.SearchClaims(c.Request.Context(),
		c.Query("search"), c.Query("entity_id"), c.Query("claim_type"),
		intQuery(c, "limit", 0), intQuery(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims, "total": total})
}
