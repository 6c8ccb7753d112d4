package handlers

import (
	"net/http"

	"airaware-backend/service"

	"github.com/gin-gonic/gin"
)

// ThresholdHandler handles HTTP requests for thresholds
type ThresholdHandler struct {
	thresholdService *service.ThresholdService
}

// NewThresholdHandler creates a new threshold handler
func NewThresholdHandler(thresholdService *service.ThresholdService) *ThresholdHandler {
	return &ThresholdHandler{thresholdService: thresholdService}
}

// ThresholdRequest is the request body for setting thresholds
type ThresholdRequest struct {
	Sensitivity string `json:"sensitivity" binding:"required"`
}

func thresholdPayload(result *service.ThresholdResult) gin.H {
	return gin.H{
		"trigger_aqi":           result.Threshold.TriggerAqi,
		"use_default":           result.Threshold.UseDefault,
		"effective_trigger_aqi": result.EffectiveTriggerAqi,
		"updated_at":            result.Threshold.UpdatedAt,
	}
}

// Get handles GET /api/thresholds
func (h *ThresholdHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	result, err := h.thresholdService.Get(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, thresholdPayload(result))
}

// Set handles POST /api/thresholds
func (h *ThresholdHandler) Set(c *gin.Context) {
	h.upsert(c, http.StatusCreated)
}

// Update handles PATCH /api/thresholds
func (h *ThresholdHandler) Update(c *gin.Context) {
	h.upsert(c, http.StatusOK)
}

func (h *ThresholdHandler) upsert(c *gin.Context, status int) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	var req ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "sensitivity is required")
		return
	}

	result, err := h.thresholdService.Set(c.Request.Context(), userID, req.Sensitivity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, status, thresholdPayload(result))
}

// Defaults handles GET /api/thresholds/defaults — public
func (h *ThresholdHandler) Defaults(c *gin.Context) {
	respondData(c, http.StatusOK, h.thresholdService.GetDefaults())
}
