package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Alejandro-Val/FinanceTracker/utils"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user id in the context. Every protected query is scoped by this id.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			// WebSocket clients can't set headers; allow a token query param.
			header = "Bearer " + c.Query("token")
		}

		if !strings.HasPrefix(header, "Bearer ") || len(header) <= len("Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization token"})
			c.Abort()
			return
		}

		userID, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" if the request is not
// authenticated.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	id, _ := userID.(string)
	return id
}
