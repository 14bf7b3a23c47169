package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"rental_listing/internal/domain" // Importing domain models
	"rental_listing/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CreatePropertyRequest carries the flat fields used to create a listing.
// Reference fields are display strings; the handler resolves or creates the
// underlying catalog rows.
type CreatePropertyRequest struct {
	Name         string  `json:"name" binding:"required"`
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
	Location     string  `json:"location" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	PropertyType string  `json:"property_type" binding:"required"`
	Unit         string  `json:"unit"` // Defaults to MONTH when omitted
	Description  string  `json:"description"`
}

// UpdatePropertyRequest holds the optional fields for a partial update.
type UpdatePropertyRequest struct {
	Name         *string  `json:"name"`
	PricePerUnit *float64 `json:"price_per_unit"`
	Available    *bool    `json:"available"`
	Description  *string  `json:"description"`
}

// PropertySummaryResponse is the list-endpoint shape of a property.
type PropertySummaryResponse struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	PricePerUnit float64      `json:"price_per_unit"`
	Available    bool         `json:"available"`
	PropertyType NameResponse `json:"property_type"`
}

// PropertyDetailResponse adds the nested location, country and unit names to
// the summary.
type PropertyDetailResponse struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	PricePerUnit float64      `json:"price_per_unit"`
	Available    bool         `json:"available"`
	Description  string       `json:"description"`
	PropertyType NameResponse `json:"property_type"`
	Location     NameResponse `json:"location"`
	Country      NameResponse `json:"country"`
	Unit         NameResponse `json:"unit"`
}

func propertyDetail(p domain.Property) PropertyDetailResponse {
	return PropertyDetailResponse{
		ID:           p.ID,
		Name:         p.Name,
		PricePerUnit: p.PricePerUnit,
		Available:    p.Available,
		Description:  p.Description,
		PropertyType: NameResponse{Name: p.PropertyType.Name},
		Location:     NameResponse{Name: p.Location.Name},
		Country:      NameResponse{Name: p.Location.Country.Name},
		Unit:         NameResponse{Name: p.Unit.Name},
	}
}

// invalidateListingCaches drops the cached listings a property write can
// stale: the property list, the catalogs the upsert may have grown and the
// location listings for the touched country.
func invalidateListingCaches(ctx context.Context, rdb *redis.Client, countryName string) {
	_ = utils.DeleteCache(ctx, rdb, "listing:properties")
	_ = utils.DeleteCache(ctx, rdb, "listing:countries")
	_ = utils.DeleteCache(ctx, rdb, "listing:property_types")
	_ = utils.DeleteCache(ctx, rdb, "listing:locations:country=")
	if countryName != "" {
		_ = utils.DeleteCache(ctx, rdb, "listing:locations:country="+countryName)
	}
}

// ListPropertiesHandler returns summaries of all properties
func ListPropertiesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "listing:properties"
		var cached []PropertySummaryResponse
		// Serve from cache when possible
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		var properties []domain.Property
		if err := db.Preload("PropertyType").Find(&properties).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}
		resp := make([]PropertySummaryResponse, len(properties))
		for i, p := range properties {
			resp[i] = PropertySummaryResponse{
				ID:           p.ID,
				Name:         p.Name,
				PricePerUnit: p.PricePerUnit,
				Available:    p.Available,
				PropertyType: NameResponse{Name: p.PropertyType.Name},
			}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp)
	}
}

// CreatePropertyHandler creates a property owned by the authenticated caller.
// Country, property type, unit and location are resolved from their display
// strings and created when missing, all inside one transaction.
func CreatePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreatePropertyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := domain.ValidatePrice(req.PricePerUnit); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		unitName, err := domain.ValidateUnitName(req.Unit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var property domain.Property
		err = db.Transaction(func(tx *gorm.DB) error {
			var country domain.Country
			if err := tx.Where(domain.Country{Name: req.Country}).FirstOrCreate(&country).Error; err != nil {
				return err
			}
			var propertyType domain.PropertyType
			if err := tx.Where(domain.PropertyType{Name: req.PropertyType}).FirstOrCreate(&propertyType).Error; err != nil {
				return err
			}
			var unit domain.Unit
			if err := tx.Where(domain.Unit{Name: unitName}).FirstOrCreate(&unit).Error; err != nil {
				return err
			}
			var location domain.Location
			if err := tx.Where(domain.Location{Name: req.Location, CountryID: country.ID}).FirstOrCreate(&location).Error; err != nil {
				return err
			}
			property = domain.Property{
				Name:           req.Name,
				PricePerUnit:   req.PricePerUnit,
				Available:      true,
				Description:    req.Description,
				OwnerID:        userID.(uint),
				LocationID:     location.ID,
				PropertyTypeID: propertyType.ID,
				UnitID:         unit.ID,
			}
			if err := tx.Create(&property).Error; err != nil {
				return err
			}
			// Load the associations for the response
			return tx.Preload("PropertyType").Preload("Unit").Preload("Location.Country").First(&property, property.ID).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": userID,
				"name":     req.Name,
				"error":    err.Error(),
			}).Error("Property creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"owner_id":    userID,
			"property_id": property.ID,
			"name":        property.Name,
		}).Info("Property created")
		invalidateListingCaches(context.Background(), rdb, req.Country)
		c.JSON(http.StatusCreated, propertyDetail(property))
	}
}

// RetrievePropertyHandler returns the detail view of one property
func RetrievePropertyHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var property domain.Property
		err := db.Preload("PropertyType").Preload("Unit").Preload("Location.Country").
			First(&property, "id = ?", c.Param("id")).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
			return
		}
		c.JSON(http.StatusOK, propertyDetail(property))
	}
}

// UpdatePropertyHandler partially updates a property owned by the caller
func UpdatePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdatePropertyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.PricePerUnit != nil {
			if err := domain.ValidatePrice(*req.PricePerUnit); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		var property domain.Property
		if err := db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		// Only the owner may change a listing
		if property.OwnerID != userID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this property"})
			return
		}
		if req.Name != nil {
			property.Name = *req.Name
		}
		if req.PricePerUnit != nil {
			property.PricePerUnit = *req.PricePerUnit
		}
		if req.Available != nil {
			property.Available = *req.Available
		}
		if req.Description != nil {
			property.Description = *req.Description
		}
		if err := db.Save(&property).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"owner_id":    userID,
			"property_id": property.ID,
		}).Info("Property updated")
		invalidateListingCaches(context.Background(), rdb, "")
		if err := db.Preload("PropertyType").Preload("Unit").Preload("Location.Country").First(&property, property.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
			return
		}
		c.JSON(http.StatusOK, propertyDetail(property))
	}
}

// DeletePropertyHandler removes a property owned by the caller
func DeletePropertyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var property domain.Property
		if err := db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		// Only the owner may remove a listing
		if property.OwnerID != userID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this property"})
			return
		}
		if err := db.Delete(&property).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"owner_id":    userID,
			"property_id": property.ID,
		}).Info("Property deleted")
		invalidateListingCaches(context.Background(), rdb, "")
		c.Status(http.StatusNoContent)
	}
}
