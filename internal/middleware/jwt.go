package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"rental_listing/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuthMiddleware validates bearer tokens and stores the caller's user id
// in the request context.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Next()
	}
}
