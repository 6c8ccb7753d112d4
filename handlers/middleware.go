package handlers

import (
	"net/http"
	"strings"

	"airaware-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextUserID = "userID"
	contextEmail  = "userEmail"
)

// RequireAuth verifies the bearer token and attaches {id, email} to the request
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextUserID, userID)
		c.Set(contextEmail, claims.Email)
		c.Next()
	}
}

// currentUserID returns the authenticated user's id attached by RequireAuth
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func currentEmail(c *gin.Context) string {
	return c.GetString(contextEmail)
}
