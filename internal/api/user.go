package api

import (
	"net/http" // HTTP status codes

	"rental_listing/internal/domain" // Importing domain models
	"rental_listing/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest carries the fields needed to create a user. The password
// is accepted here and never echoed back.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the bearer token issued on login.
type AuthResponse struct {
	Token string `json:"token"`
}

// UserResponse is the user shape returned by the user endpoints.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := domain.CreateUser(db, req.Email, req.Password, req.Name)
		if err != nil {
			// Duplicate email and empty email both map to a client error.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to create user"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
		}).Info("User registered")
		c.JSON(http.StatusCreated, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}

// LoginHandler authenticates a user and returns a bearer token. Failures are
// reported with a single generic message regardless of which field was wrong.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnableToAuthenticate.Error()})
			return
		}
		user, err := domain.Authenticate(db, req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnableToAuthenticate.Error()})
			return
		}
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// UpdateMeRequest holds the optional profile fields for a partial update.
type UpdateMeRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// MeHandler returns the authenticated caller's profile
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}

// UpdateMeHandler partially updates the authenticated caller's profile. Only
// the caller's own record is reachable.
func UpdateMeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdateMeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if req.Email != nil {
			user.Email = domain.NormalizeEmail(*req.Email)
		}
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Password != nil {
			if err := user.SetPassword(*req.Password); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
				return
			}
		}
		if err := db.Save(&user).Error; err != nil {
			// Duplicate email on update is a client error, same as on create.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to update profile"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("Profile updated")
		c.JSON(http.StatusOK, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}
