package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the admin surface with a shared key. There are no
// user accounts; this is the only protected area.
func ValidateAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey == "" || apiKey != key {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
