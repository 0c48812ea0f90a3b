package middlewares

import (
	"net/http"
	"strings"

	"bookstore/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	// Authorization header first (API clients), cookie second (browser).
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}
	tokenCookie, err := c.Request.Cookie("Bearer")
	if err != nil {
		return ""
	}
	return tokenCookie.Value
}

// RequireAuth aborts with 401 unless the request carries a valid token. On
// success the claimed email and name are stored on the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization token required",
			})
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			return
		}

		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// OptionalAuth stores the identity when a valid token is present and lets the
// request through either way.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := utils.VerifyToken(tokenString); err == nil {
				c.Set("email", claims.Email)
				c.Set("name", claims.Name)
			}
		}
		c.Next()
	}
}
