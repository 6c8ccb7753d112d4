package handlers

import (
	"net/http"

	"airaware-backend/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for locations
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// LocationRequest is the request body for setting or updating a location.
// Exactly one of city/postcode must be supplied.
type LocationRequest struct {
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// Get handles GET /api/location
func (h *LocationHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	location, err := h.locationService.Active(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, location)
}

// Set handles POST /api/location
func (h *LocationHandler) Set(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	location, err := h.locationService.Set(c.Request.Context(), userID, req.City, req.Postcode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, location)
}

// Update handles PATCH /api/location
func (h *LocationHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), userID, req.City, req.Postcode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, location)
}

// Delete handles DELETE /api/location
func (h *LocationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

// History handles GET /api/location/history
func (h *LocationHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	locations, err := h.locationService.History(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, locations)
}

// Validate handles GET /api/location/validate — a resolution dry run that
// persists nothing and needs no auth
func (h *LocationHandler) Validate(c *gin.Context) {
	resolved, err := h.locationService.Resolve(c.Request.Context(), c.Query("city"), c.Query("postcode"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, resolved)
}
