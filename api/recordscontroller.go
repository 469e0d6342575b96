package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRecordRoutes registers dataset endpoints.
func (s *Server) RegisterRecordRoutes(r *gin.Engine) {
	g := r.Group("/api")
	g.GET("/records", s.handleGetRecords)
	g.POST("/refresh", s.handleRefresh)
}

// handleGetRecords returns the ranked record set from the last collection run.
func (s *Server) handleGetRecords(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"record_count": len(s.records),
		"collected_at": s.collectedAt,
		"records":      s.records,
	})
}

// handleRefresh triggers a collection run asynchronously and returns 202
// Accepted immediately.
func (s *Server) handleRefresh(c *gin.Context) {
	go s.Refresh(context.Background())
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}
