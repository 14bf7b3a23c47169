package middleware

import (
	"net/http" // HTTP status codes

	"rental_listing/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// StaffOnlyMiddleware checks the caller's staff flag on each request. Role
// flags live on the user row, so a demoted user loses access immediately.
func StaffOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		if !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}
