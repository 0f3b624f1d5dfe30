package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

// AdminRequired ensures the caller carries the admin role. The role is set
// by whichever auth middleware ran first, so this works across auth modes.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
