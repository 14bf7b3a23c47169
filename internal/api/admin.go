package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"rental_listing/internal/domain" // Importing domain models
	"rental_listing/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// UserAdminResponse represents the user data returned to staff
type UserAdminResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// ListUsersHandler returns all users, paginated. Staff only.
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		// Cache key carries the pagination parameters
		cacheKey := "admin:users:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		var cached struct {
			Users      []UserAdminResponse `json:"users"`
			Page       int                 `json:"page"`
			PageSize   int                 `json:"page_size"`
			Total      int64               `json:"total"`
			TotalPages int                 `json:"total_pages"`
		}
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}
		page := 1      // Default page
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v
			}
		}
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v
			}
		}
		offset := (page - 1) * pageSize
		var total int64
		if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		var users []domain.User
		if err := db.Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize
		resp := make([]UserAdminResponse, len(users))
		for i, u := range users {
			resp[i] = UserAdminResponse{
				ID:          u.ID,
				Email:       u.Email,
				Name:        u.Name,
				IsActive:    u.IsActive,
				IsStaff:     u.IsStaff,
				IsSuperuser: u.IsSuperuser,
			}
		}
		respData := gin.H{
			"users":       resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages,
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData)
	}
}
