package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

// GatewayAuth trusts identity from gateway headers (X-User-ID, X-User-Role).
// This is used when the API runs behind an edge gateway that already
// validated the caller.
//
// When AUTH_MODE=gateway, the API trusts these headers unconditionally.
// This should ONLY be used with proper network isolation.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		userRole := c.GetHeader("X-User-Role")

		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Missing X-User-ID header from gateway",
			})
			c.Abort()
			return
		}

		if userRole == "" || !models.ValidRole(userRole) {
			userRole = models.RoleUser
		}

		c.Set("user_id", userID)
		c.Set("user_role", userRole)

		c.Next()
	}
}
