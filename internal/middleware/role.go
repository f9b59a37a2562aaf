package middleware

import (
	"sambapos/internal/auth"

	"github.com/gin-gonic/gin"
)

func RequireRole(allowedRoles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(403, gin.H{"error": "role missing"})
			return
		}

		role, ok := value.(auth.Role)
		if !ok {
			c.AbortWithStatusJSON(403, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
	}
}
