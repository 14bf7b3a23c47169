package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"rental_listing/internal/domain" // Importing domain models
	"rental_listing/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"golang.org/x/text/cases"      // Title casing for the country filter
	"golang.org/x/text/language"   // Language tag for the title caser
	"gorm.io/gorm"                 // GORM ORM library
)

// NameResponse is the single-field shape shared by all catalog endpoints.
type NameResponse struct {
	Name string `json:"name"`
}

const catalogCacheTTL = 60 * time.Second

// ListPropertyTypesHandler lists all property types available
func ListPropertyTypesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "listing:property_types"
		var cached []NameResponse
		// Serve from cache when possible
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		var types []domain.PropertyType
		if err := db.Find(&types).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property types"})
			return
		}
		resp := make([]NameResponse, len(types))
		for i, t := range types {
			resp[i] = NameResponse{Name: t.Name}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, catalogCacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}

// ListCountriesHandler lists all countries available
func ListCountriesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "listing:countries"
		var cached []NameResponse
		// Serve from cache when possible
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		var countries []domain.Country
		if err := db.Find(&countries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries"})
			return
		}
		resp := make([]NameResponse, len(countries))
		for i, country := range countries {
			resp[i] = NameResponse{Name: country.Name}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, catalogCacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}

// ListAmenitiesHandler lists all amenities available
func ListAmenitiesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "listing:amenities"
		var cached []NameResponse
		// Serve from cache when possible
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		var amenities []domain.Amenity
		if err := db.Find(&amenities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch amenities"})
			return
		}
		resp := make([]NameResponse, len(amenities))
		for i, amenity := range amenities {
			resp[i] = NameResponse{Name: amenity.Name}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, catalogCacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}

// ListLocationsHandler lists locations, optionally filtered by country name.
// The filter value is title-cased before lookup, so "nigeria" matches a
// stored "Nigeria". An unknown country is a 404, not an empty list.
func ListLocationsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	titleCaser := cases.Title(language.English)
	return func(c *gin.Context) {
		countryName := c.Query("country")
		ctx := context.Background()
		cacheKey := "listing:locations:country=" + countryName
		var cached []NameResponse
		// Serve from cache when possible
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		query := db.Model(&domain.Location{})
		if countryName != "" {
			var country domain.Country
			if err := db.Where("name = ?", titleCaser.String(countryName)).First(&country).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
				return
			}
			query = query.Where("country_id = ?", country.ID)
		}
		var locations []domain.Location
		if err := query.Find(&locations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
			return
		}
		resp := make([]NameResponse, len(locations))
		for i, location := range locations {
			resp[i] = NameResponse{Name: location.Name}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, catalogCacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}
