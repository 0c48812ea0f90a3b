package middlewares

import (
	"net/http"

	"bookstore/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates mutating endpoints behind the admin email allow-list.
// No identity at all is 401; an authenticated non-admin is 403. Both abort
// before any handler runs, so a denied request never partially applies.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get("email")
		if !exists || email.(string) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		if !utils.IsAdmin(email.(string)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}
