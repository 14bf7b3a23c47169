package api

import (
	"rental_listing/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter assembles the full route table. rdb may be nil, in which case
// list caching is disabled.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default()
	// Unsupported verbs on a known path must answer 405, not 404
	r.HandleMethodNotAllowed = true

	auth := middleware.JWTAuthMiddleware(jwtSecret)

	// User routes
	user := r.Group("/user")
	user.POST("/create/", RegisterHandler(db))
	user.POST("/login/", LoginHandler(db, jwtSecret))
	user.GET("/me/", auth, MeHandler(db))
	user.PATCH("/me/", auth, UpdateMeHandler(db))

	// Listing routes: catalogs and property detail are public reads,
	// property writes require a bearer token
	listing := r.Group("/listing")
	listing.GET("/property_types/", ListPropertyTypesHandler(db, rdb))
	listing.GET("/countries/", ListCountriesHandler(db, rdb))
	listing.GET("/locations/", ListLocationsHandler(db, rdb))
	listing.GET("/amenities/", ListAmenitiesHandler(db, rdb))
	listing.GET("/properties/", ListPropertiesHandler(db, rdb))
	listing.POST("/properties/", auth, CreatePropertyHandler(db, rdb))
	listing.GET("/properties/:id/", RetrievePropertyHandler(db))
	listing.PATCH("/properties/:id/", auth, UpdatePropertyHandler(db, rdb))
	listing.DELETE("/properties/:id/", auth, DeletePropertyHandler(db, rdb))

	// Admin routes (staff only)
	admin := r.Group("/admin")
	admin.Use(auth, middleware.StaffOnlyMiddleware(db))
	admin.GET("/users/", ListUsersHandler(db, rdb))

	return r
}
