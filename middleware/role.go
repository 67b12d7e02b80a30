package middleware

import (
	"net/http"

	"autodetail/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to one account role. Runs after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireOwner gates a route to business owner accounts.
func RequireOwner() gin.HandlerFunc {
	return RequireRole(models.RoleOwner)
}
