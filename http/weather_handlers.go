package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rivervalleyreport/backend/weather"
)

// handleWeather returns current conditions for a coordinate pair.
// GET /api/weather?lat=37.9&lon=-87.6
func (s *Server) handleWeather(c *gin.Context) {
	lat, lon, ok := coordQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	report, err := s.forecast.CurrentConditions(ctx, lat, lon)
	if err != nil {
		writeWeatherError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleAQI returns the latest air quality index with its severity category.
// GET /api/aqi?lat=37.9&lon=-87.6
func (s *Server) handleAQI(c *gin.Context) {
	lat, lon, ok := coordQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	report, err := s.forecast.AirQuality(ctx, lat, lon)
	if err != nil {
		writeWeatherError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// coordQuery parses lat/lon query params, writing a 400 when either is
// missing or not a number.
func coordQuery(c *gin.Context) (lat, lon float64, ok bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return 0, 0, false
	}
	return lat, lon, true
}

func writeWeatherError(c *gin.Context, err error) {
	if errors.Is(err, weather.ErrInvalidCoordinates) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
