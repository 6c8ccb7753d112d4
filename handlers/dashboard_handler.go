package handlers

import (
	"errors"
	"net/http"

	"airaware-backend/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /api/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	dashboard, err := h.dashboardService.Build(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, dashboard)
}

// Refresh handles POST /api/dashboard/refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	dashboard, err := h.dashboardService.Refresh(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoLocation) {
			respondData(c, http.StatusOK, gin.H{
				"state": gin.H{"needs_location": true},
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, dashboard)
}
