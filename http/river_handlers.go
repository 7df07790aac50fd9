package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rivervalleyreport/backend/river"
)

// handleRiverData returns the station snapshot for a USGS gauge.
// GET /api/river-data?site=03322420
func (s *Server) handleRiverData(c *gin.Context) {
	site := c.Query("site")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	snapshot, err := s.rivers.StationSnapshot(ctx, site)
	if err != nil {
		if errors.Is(err, river.ErrEmptyStationID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?site= gauge id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
