package handlers

import (
	"errors"
	"log"
	"net/http"

	"airaware-backend/repository"
	"airaware-backend/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondServiceError maps service-layer failures onto HTTP statuses.
// Unexpected errors are logged and reduced to a generic message.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, "EMAIL_TAKEN", service.ErrEmailTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", service.ErrInvalidCredentials.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Server error")
	}
}
