package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"airaware-backend/service"
	"airaware-backend/weatherapi"

	"github.com/gin-gonic/gin"
)

const defaultTrendHours = 24

// AirHandler handles the public air-pollution trends endpoint
type AirHandler struct {
	airService *service.AirService
}

// NewAirHandler creates a new air handler
func NewAirHandler(airService *service.AirService) *AirHandler {
	return &AirHandler{airService: airService}
}

// Trends handles GET /api/air/trends?city=&hours=
func (h *AirHandler) Trends(c *gin.Context) {
	city := c.Query("city")

	hours := defaultTrendHours
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "hours must be an integer")
			return
		}
		hours = parsed
	}

	points, err := h.airService.Trends(c.Request.Context(), city, hours)
	if err != nil {
		var upstreamErr *service.UpstreamError
		switch {
		case errors.Is(err, weatherapi.ErrCityNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", weatherapi.ErrCityNotFound.Error())
		case errors.As(err, &upstreamErr):
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPSTREAM_ERROR",
					"message": "Failed to fetch air pollution history",
					"detail":  upstreamErr.Error(),
				},
			})
		default:
			respondServiceError(c, err)
		}
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"city":   city,
		"hours":  hours,
		"points": points,
	})
}
