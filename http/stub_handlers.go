package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleAuthStub keeps the auth mount alive while there is no real
// authentication behind it.
// GET /api/auth
func (s *Server) handleAuthStub(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "auth route active"})
}

// handleUploadStub returns a placeholder image URL so the article editor
// works without real storage behind it.
// POST /api/uploads
func (s *Server) handleUploadStub(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"image_url": "/placeholder.jpg"})
}
